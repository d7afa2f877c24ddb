package goat

import (
	"fmt"
	"strings"
	"time"

	"github.com/marai-app/marai/internal/shared/biztime"
)

// Goat is the herd animal entity. Tenant and farm ownership are carried
// by the persistence layer, never by the entity itself.
type Goat struct {
	id            uint
	sid           string
	tagID         string
	gender        Gender
	status        Status
	birthDate     time.Time
	weightKg      *float64
	breedID       *uint
	motherID      *uint
	fatherID      *uint
	breedingID    *uint
	birthRecordID *uint
	notes         string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewGoat creates a new animal entered directly into the herd
// (purchased or registered, as opposed to born on-farm).
func NewGoat(tagID string, gender Gender, birthDate time.Time, weightKg *float64, breedID *uint) (*Goat, error) {
	tagID = strings.TrimSpace(tagID)
	if tagID == "" {
		return nil, fmt.Errorf("tag identifier is required")
	}
	if !gender.IsValid() {
		return nil, fmt.Errorf("invalid gender: %s", gender)
	}
	if birthDate.IsZero() {
		return nil, fmt.Errorf("birth date is required")
	}
	if weightKg != nil && *weightKg < 0 {
		return nil, fmt.Errorf("weight cannot be negative")
	}

	now := biztime.NowUTC()
	return &Goat{
		tagID:     tagID,
		gender:    gender,
		status:    StatusActive,
		birthDate: biztime.DateOnly(birthDate),
		weightKg:  weightKg,
		breedID:   breedID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// NewOffspring creates an animal born on-farm out of a recorded
// delivery. Breed is inherited from the mother, parent links come from
// the breeding record. Offspring are created ACTIVE regardless of
// survival outcome; the Birth row keeps the outcome.
func NewOffspring(tagID string, gender Gender, birthDate time.Time, weightKg *float64, mother *Goat, fatherID *uint, breedingID uint) (*Goat, error) {
	g, err := NewGoat(tagID, gender, birthDate, weightKg, mother.BreedID())
	if err != nil {
		return nil, err
	}
	motherID := mother.ID()
	g.motherID = &motherID
	g.fatherID = fatherID
	g.breedingID = &breedingID
	return g, nil
}

// Reconstruct rebuilds a goat from persistence.
func Reconstruct(
	id uint,
	sid string,
	tagID string,
	gender Gender,
	status Status,
	birthDate time.Time,
	weightKg *float64,
	breedID, motherID, fatherID, breedingID, birthRecordID *uint,
	notes string,
	createdAt, updatedAt time.Time,
) (*Goat, error) {
	if id == 0 {
		return nil, fmt.Errorf("goat ID cannot be zero")
	}
	if !gender.IsValid() {
		return nil, fmt.Errorf("invalid gender: %s", gender)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	return &Goat{
		id:            id,
		sid:           sid,
		tagID:         tagID,
		gender:        gender,
		status:        status,
		birthDate:     birthDate,
		weightKg:      weightKg,
		breedID:       breedID,
		motherID:      motherID,
		fatherID:      fatherID,
		breedingID:    breedingID,
		birthRecordID: birthRecordID,
		notes:         notes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (g *Goat) ID() uint              { return g.id }
func (g *Goat) SID() string           { return g.sid }
func (g *Goat) TagID() string         { return g.tagID }
func (g *Goat) Gender() Gender        { return g.gender }
func (g *Goat) Status() Status        { return g.status }
func (g *Goat) BirthDate() time.Time  { return g.birthDate }
func (g *Goat) WeightKg() *float64    { return g.weightKg }
func (g *Goat) BreedID() *uint        { return g.breedID }
func (g *Goat) MotherID() *uint       { return g.motherID }
func (g *Goat) FatherID() *uint       { return g.fatherID }
func (g *Goat) BreedingID() *uint     { return g.breedingID }
func (g *Goat) BirthRecordID() *uint  { return g.birthRecordID }
func (g *Goat) Notes() string         { return g.notes }
func (g *Goat) CreatedAt() time.Time  { return g.createdAt }
func (g *Goat) UpdatedAt() time.Time  { return g.updatedAt }

func (g *Goat) SetID(id uint) error {
	if g.id != 0 {
		return fmt.Errorf("goat ID already set")
	}
	g.id = id
	return nil
}

func (g *Goat) SetSID(sid string) {
	if g.sid == "" {
		g.sid = sid
	}
}

// SetBirthRecord links the goat back to the Birth row it was created
// from.
func (g *Goat) SetBirthRecord(birthRecordID uint) {
	g.birthRecordID = &birthRecordID
}

// IsActive reports whether the animal is in the ACTIVE lifecycle state.
func (g *Goat) IsActive() bool { return g.status == StatusActive }

// ChangeStatus moves the animal to a new lifecycle status.
func (g *Goat) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	g.status = status
	g.updatedAt = biztime.NowUTC()
	return nil
}

// UpdateWeight records a new weight measurement.
func (g *Goat) UpdateWeight(weightKg float64) error {
	if weightKg < 0 {
		return fmt.Errorf("weight cannot be negative")
	}
	g.weightKg = &weightKg
	g.updatedAt = biztime.NowUTC()
	return nil
}

// UpdateNotes replaces the free-form notes.
func (g *Goat) UpdateNotes(notes string) {
	g.notes = notes
	g.updatedAt = biztime.NowUTC()
}
