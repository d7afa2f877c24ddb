package models

import (
	"time"

	"github.com/marai-app/marai/internal/shared/db"
)

// SaleModel represents the database persistence model for animal
// sales.
type SaleModel struct {
	ID            uint      `gorm:"primarykey"`
	SID           string    `gorm:"column:sid;uniqueIndex;not null;size:32"`
	GoatID        uint      `gorm:"not null;index"`
	BuyerName     string    `gorm:"not null;size:200"`
	Amount        float64   `gorm:"not null"`
	Currency      string    `gorm:"not null;size:3"`
	SaleDate      time.Time `gorm:"index"`
	PaymentStatus string    `gorm:"not null;size:20;default:PAID"`
	Notes         string    `gorm:"type:text"`
	db.TenantFarmScope
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (SaleModel) TableName() string {
	return "sales"
}
