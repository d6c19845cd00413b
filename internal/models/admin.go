package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin is the local record of a back-office operator. Authentication is
// delegated to the external identity provider; this row maps the provider
// subject to a display name plus a break-glass credential hash used only by
// the seeding tool.
type Admin struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Subject      string         `gorm:"uniqueIndex;not null" json:"subject"` // identity provider subject
	DisplayName  string         `gorm:"not null" json:"display_name"`
	PasswordHash string         `gorm:"type:varchar(200)" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Admin) TableName() string {
	return "admins"
}
