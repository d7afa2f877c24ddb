package models

import (
	"time"

	"gorm.io/gorm"
)

// UserModel represents the database persistence model for staff
// accounts. Users are looked up by email before any scope exists, so
// they carry a plain tenant column rather than the scope embed.
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	SID          string `gorm:"column:sid;uniqueIndex;not null;size:32"`
	TenantID     uint   `gorm:"not null;index"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string `gorm:"not null;size:255"`
	Name         string `gorm:"size:100"`
	Role         string `gorm:"not null;size:20"`
	ActiveFarmID *uint
	Active       bool `gorm:"not null;default:true"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}
