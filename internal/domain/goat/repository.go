package goat

import (
	"context"

	"github.com/marai-app/marai/internal/shared/query"
)

// Repository defines data access for herd animals. Implementations
// apply tenant/farm scoping to every operation.
type Repository interface {
	// Create persists a new goat
	Create(ctx context.Context, g *Goat) error

	// GetByID retrieves a goat by internal ID
	GetByID(ctx context.Context, id uint) (*Goat, error)

	// GetBySID retrieves a goat by external SID
	GetBySID(ctx context.Context, sid string) (*Goat, error)

	// GetByTagID retrieves a goat by its tag identifier
	GetByTagID(ctx context.Context, tagID string) (*Goat, error)

	// Update persists changes to an existing goat
	Update(ctx context.Context, g *Goat) error

	// Delete removes a goat by internal ID
	Delete(ctx context.Context, id uint) error

	// List retrieves a paginated, filtered list of goats
	List(ctx context.Context, filter ListFilter) ([]*Goat, int64, error)

	// ListOffspring retrieves all goats mothered or fathered by the
	// given animal
	ListOffspring(ctx context.Context, parentID uint) ([]*Goat, error)

	// ListSiblings retrieves the litter siblings of the given goat:
	// animals from the same breeding with the same mother
	ListSiblings(ctx context.Context, g *Goat) ([]*Goat, error)

	// CountActive returns the number of non-deleted goats in scope,
	// used for plan limit checks
	CountActive(ctx context.Context) (int64, error)
}

// ListFilter represents filtering and pagination options for goat lists.
type ListFilter struct {
	query.BaseFilter
	Gender   *Gender `json:"gender,omitempty"`
	Status   *Status `json:"status,omitempty"`
	BreedID  *uint   `json:"breed_id,omitempty"`
	MotherID *uint   `json:"mother_id,omitempty"`
	TagID    string  `json:"tag_id,omitempty"`
}
