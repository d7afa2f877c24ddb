package breeding

import (
	"fmt"
	"time"

	"github.com/marai-app/marai/internal/domain/goat"
	"github.com/marai-app/marai/internal/shared/biztime"
)

// Outcome of an individual birth.
type Outcome string

const (
	OutcomeAlive     Outcome = "ALIVE"
	OutcomeStillborn Outcome = "STILLBORN"
	OutcomeDied      Outcome = "DIED"
)

func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeAlive, OutcomeStillborn, OutcomeDied:
		return true
	}
	return false
}

func (o Outcome) String() string { return string(o) }

// Birth is a per-kid birth event tied to a breeding. Each kid of a
// litter gets its own row; the breeding reference groups the litter.
type Birth struct {
	id         uint
	sid        string
	breedingID uint
	goatID     *uint
	tagID      string
	gender     goat.Gender
	birthDate  time.Time
	outcome    Outcome
	weightKg   *float64
	notes      string
	createdAt  time.Time
	updatedAt  time.Time
}

// NewBirth creates a birth event for one kid of a delivery. The tag is
// the resolved one: callers substitute a placeholder before this point.
func NewBirth(breedingID uint, tagID string, gender goat.Gender, birthDate time.Time, outcome Outcome, weightKg *float64, notes string) (*Birth, error) {
	if breedingID == 0 {
		return nil, fmt.Errorf("breeding reference is required")
	}
	if tagID == "" {
		return nil, fmt.Errorf("tag identifier is required")
	}
	if !gender.IsValid() {
		return nil, fmt.Errorf("invalid gender: %s", gender)
	}
	if birthDate.IsZero() {
		return nil, fmt.Errorf("birth date is required")
	}
	if !outcome.IsValid() {
		return nil, fmt.Errorf("invalid birth outcome: %s", outcome)
	}
	if weightKg != nil && *weightKg < 0 {
		return nil, fmt.Errorf("weight cannot be negative")
	}

	now := biztime.NowUTC()
	return &Birth{
		breedingID: breedingID,
		tagID:      tagID,
		gender:     gender,
		birthDate:  biztime.DateOnly(birthDate),
		outcome:    outcome,
		weightKg:   weightKg,
		notes:      notes,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructBirth rebuilds a birth event from persistence.
func ReconstructBirth(
	id uint,
	sid string,
	breedingID uint,
	goatID *uint,
	tagID string,
	gender goat.Gender,
	birthDate time.Time,
	outcome Outcome,
	weightKg *float64,
	notes string,
	createdAt, updatedAt time.Time,
) (*Birth, error) {
	if id == 0 {
		return nil, fmt.Errorf("birth ID cannot be zero")
	}
	if !outcome.IsValid() {
		return nil, fmt.Errorf("invalid birth outcome: %s", outcome)
	}
	return &Birth{
		id:         id,
		sid:        sid,
		breedingID: breedingID,
		goatID:     goatID,
		tagID:      tagID,
		gender:     gender,
		birthDate:  birthDate,
		outcome:    outcome,
		weightKg:   weightKg,
		notes:      notes,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (b *Birth) ID() uint             { return b.id }
func (b *Birth) SID() string          { return b.sid }
func (b *Birth) BreedingID() uint     { return b.breedingID }
func (b *Birth) GoatID() *uint        { return b.goatID }
func (b *Birth) TagID() string        { return b.tagID }
func (b *Birth) Gender() goat.Gender  { return b.gender }
func (b *Birth) BirthDate() time.Time { return b.birthDate }
func (b *Birth) Outcome() Outcome     { return b.outcome }
func (b *Birth) WeightKg() *float64   { return b.weightKg }
func (b *Birth) Notes() string        { return b.notes }
func (b *Birth) CreatedAt() time.Time { return b.createdAt }
func (b *Birth) UpdatedAt() time.Time { return b.updatedAt }

func (b *Birth) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("birth ID already set")
	}
	b.id = id
	return nil
}

func (b *Birth) SetSID(sid string) {
	if b.sid == "" {
		b.sid = sid
	}
}

// LinkGoat attaches the animal created for this birth event.
func (b *Birth) LinkGoat(goatID uint) {
	b.goatID = &goatID
	b.updatedAt = biztime.NowUTC()
}

// PlaceholderTag derives a deterministic temporary tag for kid index i
// (zero-based) of the delivery, used when no tag was supplied. The farm
// assigns a real tag later.
func PlaceholderTag(breedingSID string, i int) string {
	ref := breedingSID
	if len(ref) > 8 {
		ref = ref[:8]
	}
	return fmt.Sprintf("TEMP-%s-%d", ref, i+1)
}
