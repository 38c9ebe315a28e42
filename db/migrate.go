package db

import (
	"fmt"
	"log"

	"github.com/servimart/vendor-dashboard/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.Vendor{},
		&models.ServiceCategory{},
		&models.Service{},
		&models.ServicePincode{},
		&models.ServiceOrder{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
