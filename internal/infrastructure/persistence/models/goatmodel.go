package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/marai-app/marai/internal/shared/db"
)

// GoatModel represents the database persistence model for herd animals.
// This is the anti-corruption layer between domain and database.
type GoatModel struct {
	ID            uint   `gorm:"primarykey"`
	SID           string `gorm:"column:sid;uniqueIndex;not null;size:32"`
	TagID         string `gorm:"not null;size:64;index"`
	Gender        string `gorm:"not null;size:10"`
	Status        string `gorm:"not null;default:ACTIVE;size:20;index"`
	BirthDate     time.Time
	WeightKg      *float64
	BreedID       *uint `gorm:"index"`
	MotherID      *uint `gorm:"index"`
	FatherID      *uint `gorm:"index"`
	BreedingID    *uint `gorm:"index"`
	BirthRecordID *uint
	Notes         string `gorm:"type:text"`
	db.TenantFarmScope
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (GoatModel) TableName() string {
	return "goats"
}

// BreedModel represents the database persistence model for the breed
// lookup table. Breeds are shared across a tenant's farms.
type BreedModel struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"not null;size:100"`
	Description string `gorm:"size:500"`
	db.TenantOnlyScope
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (BreedModel) TableName() string {
	return "breeds"
}
