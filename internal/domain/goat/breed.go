package goat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/marai-app/marai/internal/shared/biztime"
)

// Breed is a tenant-level lookup entry. Breeds are shared across a
// tenant's farms, so they scope by tenant only.
type Breed struct {
	id          uint
	name        string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewBreed creates a breed lookup entry.
func NewBreed(name, description string) (*Breed, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("breed name is required")
	}

	now := biztime.NowUTC()
	return &Breed{
		name:        name,
		description: strings.TrimSpace(description),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructBreed rebuilds a breed from persistence.
func ReconstructBreed(id uint, name, description string, createdAt, updatedAt time.Time) (*Breed, error) {
	if id == 0 {
		return nil, fmt.Errorf("breed ID cannot be zero")
	}
	return &Breed{
		id:          id,
		name:        name,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (b *Breed) ID() uint             { return b.id }
func (b *Breed) Name() string         { return b.name }
func (b *Breed) Description() string  { return b.description }
func (b *Breed) CreatedAt() time.Time { return b.createdAt }
func (b *Breed) UpdatedAt() time.Time { return b.updatedAt }

func (b *Breed) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("breed ID already set")
	}
	b.id = id
	return nil
}

// BreedRepository defines data access for the breed lookup table.
type BreedRepository interface {
	// Create persists a new breed
	Create(ctx context.Context, b *Breed) error

	// GetByID retrieves a breed by internal ID
	GetByID(ctx context.Context, id uint) (*Breed, error)

	// GetByName retrieves a breed by exact name
	GetByName(ctx context.Context, name string) (*Breed, error)

	// List retrieves all breeds in scope
	List(ctx context.Context) ([]*Breed, error)

	// Delete removes a breed by internal ID
	Delete(ctx context.Context, id uint) error
}
