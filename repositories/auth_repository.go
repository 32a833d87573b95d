package repositories

import (
	"time"

	"dashboard-app/models"

	"gorm.io/gorm"
)

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

// FindUserByLogin looks a dashboard account up by username or email.
func (r *AuthRepository) FindUserByLogin(login string) (models.UserDashboard, error) {
	var user models.UserDashboard
	err := r.db.Where("username = ? OR email = ?", login, login).First(&user).Error
	return user, err
}

func (r *AuthRepository) CreateLoginLog(log *models.LoginLog) error {
	return r.db.Create(log).Error
}

// CloseLoginSession stamps logout_at on the still-open audit row of the
// session and reports how many rows it closed.
func (r *AuthRepository) CloseLoginSession(sessionID string, at time.Time) (int64, error) {
	result := r.db.Model(&models.LoginLog{}).
		Where("session_id = ? AND logout_at IS NULL", sessionID).
		Update("logout_at", &at)
	return result.RowsAffected, result.Error
}

func (r *AuthRepository) CreateDashboardUser(user *models.UserDashboard) error {
	return r.db.Create(user).Error
}
