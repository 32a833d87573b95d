package models

import (
	"time"

	"dashboard-app/controllers/idgen"
	"dashboard-app/types"

	"gorm.io/gorm"
)

// User is a warehouse operator account owned by the WMS itself. The
// dashboard only joins it for display (e.g. who scanned a barcode);
// dashboard logins live in UserDashboard.
type User struct {
	gorm.Model
	Username string `json:"username" gorm:"unique"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

// UserDashboard is a dashboard login account.
type UserDashboard struct {
	gorm.Model
	Username string `json:"username" gorm:"unique;not null" validate:"required"`
	Email    string `json:"email" gorm:"unique;not null" validate:"required,email"`
	Password string `json:"-" gorm:"not null" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
}

// LoginLog is the audit row written for every login attempt and closed
// on logout via session_id.
type LoginLog struct {
	ID            types.SnowflakeID `json:"id" gorm:"primaryKey"`
	UserID        *uint             `json:"user_id"`
	Username      string            `json:"username"`
	SessionID     string            `json:"session_id" gorm:"index"`
	IPAddress     string            `json:"ip_address"`
	UserAgent     string            `json:"user_agent"`
	Browser       string            `json:"browser"`
	OS            string            `json:"os"`
	DeviceType    string            `json:"device_type"`
	LoginStatus   string            `json:"login_status"`
	FailureReason *string           `json:"failure_reason"`
	LoginAt       *time.Time        `json:"login_at"`
	LogoutAt      *time.Time        `json:"logout_at"`
	CreatedAt     time.Time         `json:"created_at"`
}

func (l *LoginLog) BeforeCreate(tx *gorm.DB) (err error) {
	l.ID = types.SnowflakeID(idgen.GenerateID())
	return
}
