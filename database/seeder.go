package database

import (
	"errors"

	"dashboard-app/models"
	"dashboard-app/utils/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdminUser creates the initial dashboard login when the table is
// empty so a fresh deployment is reachable.
func SeedAdminUser(db *gorm.DB) error {
	var existing models.UserDashboard
	err := db.First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.UserDashboard{
		Username: "admin",
		Email:    "admin@localhost",
		Password: string(hashed),
		Name:     "Administrator",
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logger.Info("seeded default admin user", zap.String("username", admin.Username))
	return nil
}
