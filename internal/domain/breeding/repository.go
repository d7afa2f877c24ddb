package breeding

import (
	"context"

	"github.com/marai-app/marai/internal/shared/query"
)

// Repository defines data access for breeding and birth records.
type Repository interface {
	// Create persists a new breeding record
	Create(ctx context.Context, b *Breeding) error

	// GetByID retrieves a breeding record by internal ID
	GetByID(ctx context.Context, id uint) (*Breeding, error)

	// GetBySID retrieves a breeding record by external SID
	GetBySID(ctx context.Context, sid string) (*Breeding, error)

	// GetBySIDForUpdate retrieves a breeding record by SID with a row
	// lock held for the duration of the surrounding transaction. Must
	// be called inside a transaction.
	GetBySIDForUpdate(ctx context.Context, sid string) (*Breeding, error)

	// Update persists changes to an existing breeding record
	Update(ctx context.Context, b *Breeding) error

	// Delete removes a breeding record by internal ID
	Delete(ctx context.Context, id uint) error

	// List retrieves a paginated, filtered list of breeding records
	List(ctx context.Context, filter ListFilter) ([]*Breeding, int64, error)

	// CreateBirth persists a birth event
	CreateBirth(ctx context.Context, b *Birth) error

	// UpdateBirth persists changes to a birth event
	UpdateBirth(ctx context.Context, b *Birth) error

	// ListBirths retrieves all birth events of a breeding record
	ListBirths(ctx context.Context, breedingID uint) ([]*Birth, error)
}

// ListFilter represents filtering and pagination options for breeding
// lists.
type ListFilter struct {
	query.BaseFilter
	Status   *Status `json:"status,omitempty"`
	MotherID *uint   `json:"mother_id,omitempty"`
}
