package models

import (
	"time"

	"github.com/marai-app/marai/internal/shared/db"
)

// SettingModel represents the database persistence model for per-farm
// settings.
type SettingModel struct {
	ID    uint   `gorm:"primarykey"`
	Key   string `gorm:"column:setting_key;not null;size:100;index"`
	Value string `gorm:"column:setting_value;type:text"`
	db.TenantFarmScope
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (SettingModel) TableName() string {
	return "settings"
}

// ActivityLogModel represents the database persistence model for the
// tenant activity log. Entries are shared across a tenant's farms.
type ActivityLogModel struct {
	ID       uint   `gorm:"primarykey"`
	UserID   *uint  `gorm:"index"`
	Action   string `gorm:"not null;size:100;index"`
	Resource string `gorm:"size:100"`
	Detail   string `gorm:"type:text"`
	db.TenantOnlyScope
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (ActivityLogModel) TableName() string {
	return "activity_logs"
}
