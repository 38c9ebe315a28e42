package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/servimart/vendor-dashboard/db"
	"github.com/servimart/vendor-dashboard/models"
	"github.com/xuri/excelize/v2"
)

// ExportOrders streams the vendor's service orders as an XLSX attachment
func ExportOrders(c *fiber.Ctx) error {
	vendorID := c.Locals("vendorID").(uint)

	var orders []models.ServiceOrder
	if err := db.DB.Preload("Service").
		Where("vendor_id = ?", vendorID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	f := excelize.NewFile()
	sheet := "Orders"
	if _, err := f.NewSheet(sheet); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build export",
		})
	}
	f.DeleteSheet("Sheet1")

	headers := []string{"Order ID", "Service", "Customer", "Email", "Status", "Payment", "Price", "Date", "Time"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, o := range orders {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), o.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), o.Service.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), o.CustomerName)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), o.CustomerEmail)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), string(o.ServiceStatus))
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), string(o.PaymentStatus))
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), o.FinalPrice)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), o.ScheduledDate)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), o.ScheduledTime)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to write export",
		})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=service-orders.xlsx`)
	return c.Send(buf.Bytes())
}
