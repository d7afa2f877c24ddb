// Package health holds veterinary event records for herd animals.
package health

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/marai-app/marai/internal/shared/biztime"
	"github.com/marai-app/marai/internal/shared/query"
)

// EventType classifies a health event.
type EventType string

const (
	EventVaccination EventType = "VACCINATION"
	EventTreatment   EventType = "TREATMENT"
	EventCheckup     EventType = "CHECKUP"
	EventDeworming   EventType = "DEWORMING"
	EventQuarantine  EventType = "QUARANTINE"
)

func (e EventType) IsValid() bool {
	switch e {
	case EventVaccination, EventTreatment, EventCheckup, EventDeworming, EventQuarantine:
		return true
	}
	return false
}

func (e EventType) String() string { return string(e) }

// Event is a single veterinary record against one animal.
type Event struct {
	id          uint
	sid         string
	goatID      uint
	eventType   EventType
	eventDate   time.Time
	description string
	vetName     string
	cost        *float64
	createdAt   time.Time
	updatedAt   time.Time
}

// NewEvent creates a health event for an animal.
func NewEvent(goatID uint, eventType EventType, eventDate time.Time, description, vetName string, cost *float64) (*Event, error) {
	if goatID == 0 {
		return nil, fmt.Errorf("animal is required")
	}
	if !eventType.IsValid() {
		return nil, fmt.Errorf("invalid event type: %s", eventType)
	}
	if eventDate.IsZero() {
		return nil, fmt.Errorf("event date is required")
	}
	if cost != nil && *cost < 0 {
		return nil, fmt.Errorf("cost cannot be negative")
	}

	now := biztime.NowUTC()
	return &Event{
		goatID:      goatID,
		eventType:   eventType,
		eventDate:   biztime.DateOnly(eventDate),
		description: strings.TrimSpace(description),
		vetName:     strings.TrimSpace(vetName),
		cost:        cost,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Reconstruct rebuilds a health event from persistence.
func Reconstruct(id uint, sid string, goatID uint, eventType EventType, eventDate time.Time, description, vetName string, cost *float64, createdAt, updatedAt time.Time) (*Event, error) {
	if id == 0 {
		return nil, fmt.Errorf("event ID cannot be zero")
	}
	if !eventType.IsValid() {
		return nil, fmt.Errorf("invalid event type: %s", eventType)
	}
	return &Event{
		id:          id,
		sid:         sid,
		goatID:      goatID,
		eventType:   eventType,
		eventDate:   eventDate,
		description: description,
		vetName:     vetName,
		cost:        cost,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (e *Event) ID() uint             { return e.id }
func (e *Event) SID() string          { return e.sid }
func (e *Event) GoatID() uint         { return e.goatID }
func (e *Event) Type() EventType      { return e.eventType }
func (e *Event) EventDate() time.Time { return e.eventDate }
func (e *Event) Description() string  { return e.description }
func (e *Event) VetName() string      { return e.vetName }
func (e *Event) Cost() *float64       { return e.cost }
func (e *Event) CreatedAt() time.Time { return e.createdAt }
func (e *Event) UpdatedAt() time.Time { return e.updatedAt }

func (e *Event) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("event ID already set")
	}
	e.id = id
	return nil
}

func (e *Event) SetSID(sid string) {
	if e.sid == "" {
		e.sid = sid
	}
}

// Repository defines data access for health events.
type Repository interface {
	// Create persists a new health event
	Create(ctx context.Context, e *Event) error

	// GetBySID retrieves a health event by external SID
	GetBySID(ctx context.Context, sid string) (*Event, error)

	// Delete removes a health event by internal ID
	Delete(ctx context.Context, id uint) error

	// List retrieves a paginated, filtered list of health events
	List(ctx context.Context, filter ListFilter) ([]*Event, int64, error)
}

// ListFilter represents filtering and pagination options for health
// event lists.
type ListFilter struct {
	query.BaseFilter
	GoatID    *uint      `json:"goat_id,omitempty"`
	EventType *EventType `json:"event_type,omitempty"`
}
