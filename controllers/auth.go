package controllers

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/servimart/vendor-dashboard/db"
	"github.com/servimart/vendor-dashboard/models"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key" // Replace with secure key in production
	}
	return []byte(secret)
}

func issueAccessToken(vendor *models.Vendor) (string, error) {
	claims := jwt.MapClaims{
		"vendor_id": vendor.ID,
		"email":     vendor.ContactEmail,
		"name":      vendor.Name,
		"exp":       time.Now().Add(time.Hour * 24).Unix(), // 24 hour expiration
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// Register handles vendor registration
func Register(c *fiber.Ctx) error {
	vendor := new(models.Vendor)

	var input struct {
		Name         string `json:"name"`
		ContactEmail string `json:"contact_email"`
		Password     string `json:"password"`
		Phone        string `json:"phone"`
		BusinessName string `json:"business_name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	// Validate input
	if input.ContactEmail == "" || input.Password == "" || input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields: name, contact_email, password",
		})
	}

	// Check if vendor already exists
	var existingVendor models.Vendor
	if db.DB.Where("contact_email = ?", input.ContactEmail).First(&existingVendor).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Vendor with this email already exists",
		})
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}

	vendor.Name = input.Name
	vendor.ContactEmail = input.ContactEmail
	vendor.Password = string(hashedPassword)
	vendor.Phone = input.Phone
	vendor.BusinessName = input.BusinessName
	vendor.IsActive = true

	if err := db.DB.Create(&vendor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create vendor",
		})
	}

	tokenString, err := issueAccessToken(vendor)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"token":   tokenString,
		"vendor":  vendor,
	})
}

// Login handles vendor authentication
func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"contact_email"`
		Password string `json:"password"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	// Lookup miss and hash mismatch return the same response so callers
	// cannot enumerate registered emails.
	var vendor models.Vendor
	if db.DB.Where("contact_email = ?", input.Email).First(&vendor).RowsAffected == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(vendor.Password), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	tokenString, err := issueAccessToken(&vendor)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	// Refresh token with longer expiration
	refreshClaims := jwt.MapClaims{
		"vendor_id": vendor.ID,
		"email":     vendor.ContactEmail,
		"exp":       time.Now().Add(time.Hour * 24 * 7).Unix(), // 7 day expiration
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString(jwtSecret())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate refresh token",
		})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"token":        tokenString,
		"refreshToken": refreshTokenString,
		"vendor": fiber.Map{
			"id":            vendor.ID,
			"name":          vendor.Name,
			"contact_email": vendor.ContactEmail,
			"business_name": vendor.BusinessName,
		},
	})
}

// RefreshToken generates a new access token using a refresh token
func RefreshToken(c *fiber.Ctx) error {
	type RefreshRequest struct {
		RefreshToken string `json:"refreshToken"`
	}

	refreshRequest := new(RefreshRequest)
	if err := c.BodyParser(refreshRequest); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	token, err := jwt.Parse(refreshRequest.RefreshToken, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid refresh token",
		})
	}

	claims := token.Claims.(jwt.MapClaims)
	newClaims := jwt.MapClaims{
		"vendor_id": claims["vendor_id"],
		"email":     claims["email"],
		"exp":       time.Now().Add(time.Hour * 24).Unix(),
	}

	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, newClaims)
	tokenString, err := newToken.SignedString(jwtSecret())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"token": tokenString,
	})
}
