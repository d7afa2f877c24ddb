package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TenantModel represents the database persistence model for tenants.
// Tenants sit above the scoping boundary and carry no scope columns.
type TenantModel struct {
	ID     uint           `gorm:"primarykey"`
	SID    string         `gorm:"column:sid;uniqueIndex;not null;size:32"`
	Name   string         `gorm:"not null;size:200"`
	Plan   string         `gorm:"not null;default:FREE;size:20"`
	Limits datatypes.JSON `gorm:"type:json"`
	Active bool           `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (TenantModel) TableName() string {
	return "tenants"
}

// FarmModel represents the database persistence model for farms. Farms
// belong to a tenant but are themselves the unit the farm scope points
// at, so they carry a plain tenant column rather than the scope embed.
type FarmModel struct {
	ID       uint   `gorm:"primarykey"`
	SID      string `gorm:"column:sid;uniqueIndex;not null;size:32"`
	TenantID uint   `gorm:"not null;index"`
	Name     string `gorm:"not null;size:200"`
	Location string `gorm:"size:500"`
	Currency string `gorm:"not null;size:3"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (FarmModel) TableName() string {
	return "farms"
}
