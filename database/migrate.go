package database

import (
	"dashboard-app/models"

	"gorm.io/gorm"
)

// Migrate keeps the schema in sync. The transactional tables are owned
// by the warehouse system of record; migrating them here only matters
// for fresh development databases.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserDashboard{},
		&models.LoginLog{},

		&models.Supplier{},
		&models.Customer{},
		&models.Product{},
		&models.Inventory{},

		&models.InboundHeader{},
		&models.InboundDetail{},
		&models.InboundBarcode{},

		&models.OutboundHeader{},
		&models.OutboundDetail{},
		&models.OutboundBarcode{},
		&models.OutboundPicking{},

		&models.OrderHeader{},
		&models.OrderDetail{},

		&models.OutboundHistory{},
	)
}
