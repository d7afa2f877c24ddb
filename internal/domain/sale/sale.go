// Package sale holds animal sale records.
package sale

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/marai-app/marai/internal/shared/biztime"
	"github.com/marai-app/marai/internal/shared/query"
)

// PaymentStatus tracks whether the buyer has settled the sale.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
)

func (p PaymentStatus) IsValid() bool {
	return p == PaymentPending || p == PaymentPaid
}

func (p PaymentStatus) String() string { return string(p) }

// Sale records the sale of one animal. Amounts are stored as value
// plus ISO currency code; formatting happens at the presentation
// layer.
type Sale struct {
	id            uint
	sid           string
	goatID        uint
	buyerName     string
	amount        float64
	currency      string
	saleDate      time.Time
	paymentStatus PaymentStatus
	notes         string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewSale creates a sale record for an animal.
func NewSale(goatID uint, buyerName string, amount float64, currency string, saleDate time.Time, paymentStatus PaymentStatus, notes string) (*Sale, error) {
	if goatID == 0 {
		return nil, fmt.Errorf("animal is required")
	}
	buyerName = strings.TrimSpace(buyerName)
	if buyerName == "" {
		return nil, fmt.Errorf("buyer name is required")
	}
	if amount < 0 {
		return nil, fmt.Errorf("amount cannot be negative")
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return nil, fmt.Errorf("currency must be a 3-letter ISO code")
	}
	if saleDate.IsZero() {
		return nil, fmt.Errorf("sale date is required")
	}
	if paymentStatus == "" {
		paymentStatus = PaymentPaid
	}
	if !paymentStatus.IsValid() {
		return nil, fmt.Errorf("invalid payment status: %s", paymentStatus)
	}

	now := biztime.NowUTC()
	return &Sale{
		goatID:        goatID,
		buyerName:     buyerName,
		amount:        amount,
		currency:      currency,
		saleDate:      biztime.DateOnly(saleDate),
		paymentStatus: paymentStatus,
		notes:         notes,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// Reconstruct rebuilds a sale record from persistence.
func Reconstruct(id uint, sid string, goatID uint, buyerName string, amount float64, currency string, saleDate time.Time, paymentStatus PaymentStatus, notes string, createdAt, updatedAt time.Time) (*Sale, error) {
	if id == 0 {
		return nil, fmt.Errorf("sale ID cannot be zero")
	}
	return &Sale{
		id:            id,
		sid:           sid,
		goatID:        goatID,
		buyerName:     buyerName,
		amount:        amount,
		currency:      currency,
		saleDate:      saleDate,
		paymentStatus: paymentStatus,
		notes:         notes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (s *Sale) ID() uint             { return s.id }
func (s *Sale) SID() string          { return s.sid }
func (s *Sale) GoatID() uint         { return s.goatID }
func (s *Sale) BuyerName() string    { return s.buyerName }
func (s *Sale) Amount() float64      { return s.amount }
func (s *Sale) Currency() string     { return s.currency }
func (s *Sale) SaleDate() time.Time  { return s.saleDate }

func (s *Sale) PaymentStatus() PaymentStatus { return s.paymentStatus }

func (s *Sale) Notes() string        { return s.notes }
func (s *Sale) CreatedAt() time.Time { return s.createdAt }
func (s *Sale) UpdatedAt() time.Time { return s.updatedAt }

// MarkPaid settles an outstanding sale.
func (s *Sale) MarkPaid() {
	s.paymentStatus = PaymentPaid
	s.updatedAt = biztime.NowUTC()
}

func (s *Sale) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("sale ID already set")
	}
	s.id = id
	return nil
}

func (s *Sale) SetSID(sid string) {
	if s.sid == "" {
		s.sid = sid
	}
}

// Repository defines data access for sale records.
type Repository interface {
	// Create persists a new sale record
	Create(ctx context.Context, s *Sale) error

	// GetBySID retrieves a sale record by external SID
	GetBySID(ctx context.Context, sid string) (*Sale, error)

	// Update persists changes to an existing sale record
	Update(ctx context.Context, s *Sale) error

	// Delete removes a sale record by internal ID
	Delete(ctx context.Context, id uint) error

	// List retrieves a paginated, filtered list of sale records
	List(ctx context.Context, filter ListFilter) ([]*Sale, int64, error)

	// SumAmount totals sale amounts in scope within a date range
	SumAmount(ctx context.Context, from, to time.Time) (float64, error)
}

// ListFilter represents filtering and pagination options for sale
// lists.
type ListFilter struct {
	query.BaseFilter
	GoatID *uint      `json:"goat_id,omitempty"`
	From   *time.Time `json:"from,omitempty"`
	To     *time.Time `json:"to,omitempty"`
}
