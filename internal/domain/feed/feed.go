// Package feed holds feeding schedules per farm.
package feed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/marai-app/marai/internal/shared/biztime"
)

// Schedule is a recurring feeding plan for a group of animals on a
// farm.
type Schedule struct {
	id          uint
	sid         string
	name        string
	feedType    string
	timesPerDay int
	amountKg    *float64
	notes       string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewSchedule creates a feeding schedule.
func NewSchedule(name, feedType string, timesPerDay int, amountKg *float64, notes string) (*Schedule, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("schedule name is required")
	}
	feedType = strings.TrimSpace(feedType)
	if feedType == "" {
		return nil, fmt.Errorf("feed type is required")
	}
	if timesPerDay < 1 || timesPerDay > 12 {
		return nil, fmt.Errorf("times per day must be between 1 and 12")
	}
	if amountKg != nil && *amountKg <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	now := biztime.NowUTC()
	return &Schedule{
		name:        name,
		feedType:    feedType,
		timesPerDay: timesPerDay,
		amountKg:    amountKg,
		notes:       notes,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Reconstruct rebuilds a feeding schedule from persistence.
func Reconstruct(id uint, sid, name, feedType string, timesPerDay int, amountKg *float64, notes string, createdAt, updatedAt time.Time) (*Schedule, error) {
	if id == 0 {
		return nil, fmt.Errorf("schedule ID cannot be zero")
	}
	return &Schedule{
		id:          id,
		sid:         sid,
		name:        name,
		feedType:    feedType,
		timesPerDay: timesPerDay,
		amountKg:    amountKg,
		notes:       notes,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (s *Schedule) ID() uint             { return s.id }
func (s *Schedule) SID() string          { return s.sid }
func (s *Schedule) Name() string         { return s.name }
func (s *Schedule) FeedType() string     { return s.feedType }
func (s *Schedule) TimesPerDay() int     { return s.timesPerDay }
func (s *Schedule) AmountKg() *float64   { return s.amountKg }
func (s *Schedule) Notes() string        { return s.notes }
func (s *Schedule) CreatedAt() time.Time { return s.createdAt }
func (s *Schedule) UpdatedAt() time.Time { return s.updatedAt }

func (s *Schedule) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("schedule ID already set")
	}
	s.id = id
	return nil
}

func (s *Schedule) SetSID(sid string) {
	if s.sid == "" {
		s.sid = sid
	}
}

// Update replaces the schedule's editable fields.
func (s *Schedule) Update(name, feedType string, timesPerDay int, amountKg *float64, notes string) error {
	updated, err := NewSchedule(name, feedType, timesPerDay, amountKg, notes)
	if err != nil {
		return err
	}
	s.name = updated.name
	s.feedType = updated.feedType
	s.timesPerDay = updated.timesPerDay
	s.amountKg = updated.amountKg
	s.notes = updated.notes
	s.updatedAt = biztime.NowUTC()
	return nil
}

// Repository defines data access for feeding schedules.
type Repository interface {
	// Create persists a new schedule
	Create(ctx context.Context, s *Schedule) error

	// GetBySID retrieves a schedule by external SID
	GetBySID(ctx context.Context, sid string) (*Schedule, error)

	// Update persists changes to an existing schedule
	Update(ctx context.Context, s *Schedule) error

	// Delete removes a schedule by internal ID
	Delete(ctx context.Context, id uint) error

	// List retrieves all schedules in scope
	List(ctx context.Context) ([]*Schedule, error)
}
