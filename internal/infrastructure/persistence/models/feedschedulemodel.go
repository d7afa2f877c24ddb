package models

import (
	"time"

	"github.com/marai-app/marai/internal/shared/db"
)

// FeedScheduleModel represents the database persistence model for
// feeding schedules.
type FeedScheduleModel struct {
	ID          uint   `gorm:"primarykey"`
	SID         string `gorm:"column:sid;uniqueIndex;not null;size:32"`
	Name        string `gorm:"not null;size:200"`
	FeedType    string `gorm:"not null;size:100"`
	TimesPerDay int    `gorm:"not null;default:1"`
	AmountKg    *float64
	Notes       string `gorm:"type:text"`
	db.TenantFarmScope
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (FeedScheduleModel) TableName() string {
	return "feed_schedules"
}
