package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/marai-app/marai/internal/shared/db"
)

// BreedingModel represents the database persistence model for mating
// records.
type BreedingModel struct {
	ID           uint   `gorm:"primarykey"`
	SID          string `gorm:"column:sid;uniqueIndex;not null;size:32"`
	MotherID     uint   `gorm:"not null;index"`
	FatherID     *uint  `gorm:"index"`
	Status       string `gorm:"not null;default:PLANNED;size:20;index"`
	MatingDate   time.Time
	ExpectedDate *time.Time
	BirthDate    *time.Time
	Notes        string `gorm:"type:text"`
	db.TenantFarmScope
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (BreedingModel) TableName() string {
	return "breedings"
}

// BirthModel represents the database persistence model for per-kid
// birth events.
type BirthModel struct {
	ID         uint   `gorm:"primarykey"`
	SID        string `gorm:"column:sid;uniqueIndex;not null;size:32"`
	BreedingID uint   `gorm:"not null;index"`
	GoatID     *uint  `gorm:"index"`
	TagID      string `gorm:"not null;size:64"`
	Gender     string `gorm:"not null;size:10"`
	BirthDate  time.Time
	Outcome    string `gorm:"not null;size:20"`
	WeightKg   *float64
	Notes      string `gorm:"type:text"`
	db.TenantFarmScope
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (BirthModel) TableName() string {
	return "births"
}
