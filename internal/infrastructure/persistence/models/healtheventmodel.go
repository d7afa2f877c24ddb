package models

import (
	"time"

	"github.com/marai-app/marai/internal/shared/db"
)

// HealthEventModel represents the database persistence model for
// veterinary events.
type HealthEventModel struct {
	ID          uint   `gorm:"primarykey"`
	SID         string `gorm:"column:sid;uniqueIndex;not null;size:32"`
	GoatID      uint   `gorm:"not null;index"`
	EventType   string `gorm:"not null;size:20;index"`
	EventDate   time.Time
	Description string `gorm:"type:text"`
	VetName     string `gorm:"size:100"`
	Cost        *float64
	db.TenantFarmScope
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (HealthEventModel) TableName() string {
	return "health_events"
}
