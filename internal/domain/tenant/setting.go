package tenant

import (
	"fmt"
	"strings"
	"time"

	"github.com/marai-app/marai/internal/shared/biztime"
)

// Setting is a per-farm key-value configuration entry. Values are
// opaque strings; callers interpret them.
type Setting struct {
	id        uint
	key       string
	value     string
	createdAt time.Time
	updatedAt time.Time
}

// NewSetting creates a setting entry.
func NewSetting(key, value string) (*Setting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("setting key is required")
	}

	now := biztime.NowUTC()
	return &Setting{
		key:       key,
		value:     value,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructSetting rebuilds a setting from persistence.
func ReconstructSetting(id uint, key, value string, createdAt, updatedAt time.Time) (*Setting, error) {
	if id == 0 {
		return nil, fmt.Errorf("setting ID cannot be zero")
	}
	return &Setting{
		id:        id,
		key:       key,
		value:     value,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (s *Setting) ID() uint             { return s.id }
func (s *Setting) Key() string          { return s.key }
func (s *Setting) Value() string        { return s.value }
func (s *Setting) CreatedAt() time.Time { return s.createdAt }
func (s *Setting) UpdatedAt() time.Time { return s.updatedAt }

func (s *Setting) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("setting ID already set")
	}
	s.id = id
	return nil
}

// UpdateValue replaces the stored value.
func (s *Setting) UpdateValue(value string) {
	s.value = value
	s.updatedAt = biztime.NowUTC()
}
