// Package breeding holds the mating and birth records that drive
// on-farm lineage.
package breeding

import (
	"fmt"
	"time"

	"github.com/marai-app/marai/internal/shared/biztime"
)

// Status of a breeding record.
type Status string

const (
	StatusPlanned   Status = "PLANNED"
	StatusPregnant  Status = "PREGNANT"
	StatusDelivered Status = "DELIVERED"
	StatusFailed    Status = "FAILED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPlanned, StatusPregnant, StatusDelivered, StatusFailed:
		return true
	}
	return false
}

func (s Status) String() string { return string(s) }

// Breeding is a mating record between a mother and an optional sire. A
// delivery may only be recorded against a PREGNANT breeding; recording
// one moves it to DELIVERED exactly once.
type Breeding struct {
	id           uint
	sid          string
	motherID     uint
	fatherID     *uint
	status       Status
	matingDate   time.Time
	expectedDate *time.Time
	birthDate    *time.Time
	notes        string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewBreeding creates a planned mating record.
func NewBreeding(motherID uint, fatherID *uint, matingDate time.Time, expectedDate *time.Time, notes string) (*Breeding, error) {
	if motherID == 0 {
		return nil, fmt.Errorf("mother is required")
	}
	if matingDate.IsZero() {
		return nil, fmt.Errorf("mating date is required")
	}
	if fatherID != nil && *fatherID == motherID {
		return nil, fmt.Errorf("mother and father cannot be the same animal")
	}

	now := biztime.NowUTC()
	return &Breeding{
		motherID:     motherID,
		fatherID:     fatherID,
		status:       StatusPlanned,
		matingDate:   biztime.DateOnly(matingDate),
		expectedDate: expectedDate,
		notes:        notes,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstruct rebuilds a breeding record from persistence.
func Reconstruct(
	id uint,
	sid string,
	motherID uint,
	fatherID *uint,
	status Status,
	matingDate time.Time,
	expectedDate, birthDate *time.Time,
	notes string,
	createdAt, updatedAt time.Time,
) (*Breeding, error) {
	if id == 0 {
		return nil, fmt.Errorf("breeding ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid breeding status: %s", status)
	}
	return &Breeding{
		id:           id,
		sid:          sid,
		motherID:     motherID,
		fatherID:     fatherID,
		status:       status,
		matingDate:   matingDate,
		expectedDate: expectedDate,
		birthDate:    birthDate,
		notes:        notes,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (b *Breeding) ID() uint                  { return b.id }
func (b *Breeding) SID() string               { return b.sid }
func (b *Breeding) MotherID() uint            { return b.motherID }
func (b *Breeding) FatherID() *uint           { return b.fatherID }
func (b *Breeding) Status() Status            { return b.status }
func (b *Breeding) MatingDate() time.Time     { return b.matingDate }
func (b *Breeding) ExpectedDate() *time.Time  { return b.expectedDate }
func (b *Breeding) BirthDate() *time.Time     { return b.birthDate }
func (b *Breeding) Notes() string             { return b.notes }
func (b *Breeding) CreatedAt() time.Time      { return b.createdAt }
func (b *Breeding) UpdatedAt() time.Time      { return b.updatedAt }

func (b *Breeding) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("breeding ID already set")
	}
	b.id = id
	return nil
}

func (b *Breeding) SetSID(sid string) {
	if b.sid == "" {
		b.sid = sid
	}
}

// IsPregnant reports whether a delivery may be recorded against this
// record.
func (b *Breeding) IsPregnant() bool { return b.status == StatusPregnant }

// IsDelivered reports whether a delivery has already been recorded.
func (b *Breeding) IsDelivered() bool { return b.status == StatusDelivered }

// ConfirmPregnancy moves a planned breeding to PREGNANT.
func (b *Breeding) ConfirmPregnancy() error {
	if b.status != StatusPlanned {
		return fmt.Errorf("cannot confirm pregnancy from status %s", b.status)
	}
	b.status = StatusPregnant
	b.updatedAt = biztime.NowUTC()
	return nil
}

// MarkFailed records that the pregnancy did not carry to term.
func (b *Breeding) MarkFailed() error {
	if b.status == StatusDelivered {
		return fmt.Errorf("cannot fail a delivered breeding")
	}
	b.status = StatusFailed
	b.updatedAt = biztime.NowUTC()
	return nil
}

// MarkDelivered records the delivery outcome. Only valid from PREGNANT;
// callers treat any other state as a conflict.
func (b *Breeding) MarkDelivered(birthDate time.Time) error {
	if b.status != StatusPregnant {
		return fmt.Errorf("cannot deliver from status %s", b.status)
	}
	if birthDate.IsZero() {
		return fmt.Errorf("birth date is required")
	}
	d := biztime.DateOnly(birthDate)
	b.birthDate = &d
	b.status = StatusDelivered
	b.updatedAt = biztime.NowUTC()
	return nil
}
