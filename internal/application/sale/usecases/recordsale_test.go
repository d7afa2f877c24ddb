package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainGoat "github.com/marai-app/marai/internal/domain/goat"
	domainSale "github.com/marai-app/marai/internal/domain/sale"
	"github.com/marai-app/marai/internal/shared/errors"
)

func reconstructGoat(t *testing.T, id uint, sid string, status domainGoat.Status) *domainGoat.Goat {
	t.Helper()
	g, err := domainGoat.Reconstruct(
		id, sid, "GT-001", domainGoat.GenderFemale, status,
		time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
		nil, nil, nil, nil, nil, nil, "",
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return g
}

func TestRecordSaleUseCase_Execute(t *testing.T) {
	saleDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	cmd := RecordSaleCommand{
		GoatSID:   "gt_1",
		BuyerName: "Al Rashid Farm",
		Amount:    1200,
		Currency:  "SAR",
		SaleDate:  saleDate,
	}

	t.Run("records sale and marks goat sold", func(t *testing.T) {
		goatEntity := reconstructGoat(t, 1, "gt_1", domainGoat.StatusActive)

		var updatedGoat *domainGoat.Goat
		goatRepo := &mockGoatRepo{
			getBySIDFn: func(_ context.Context, sid string) (*domainGoat.Goat, error) {
				return goatEntity, nil
			},
			updateFn: func(_ context.Context, g *domainGoat.Goat) error {
				updatedGoat = g
				return nil
			},
		}
		saleRepo := &mockSaleRepo{
			createFn: func(_ context.Context, s *domainSale.Sale) error {
				s.SetSID("sl_1")
				return s.SetID(10)
			},
		}

		uc := NewRecordSaleUseCase(saleRepo, goatRepo, testLogger())
		result, err := uc.Execute(context.Background(), cmd)
		require.NoError(t, err)

		assert.Equal(t, "sl_1", result.SID)
		assert.Equal(t, "gt_1", result.GoatSID)
		assert.Equal(t, "PAID", result.PaymentStatus)
		require.NotNil(t, updatedGoat)
		assert.Equal(t, domainGoat.StatusSold, updatedGoat.Status())
	})

	t.Run("rejects a goat that is already sold", func(t *testing.T) {
		goatRepo := &mockGoatRepo{
			getBySIDFn: func(_ context.Context, sid string) (*domainGoat.Goat, error) {
				return reconstructGoat(t, 1, "gt_1", domainGoat.StatusSold), nil
			},
		}

		uc := NewRecordSaleUseCase(&mockSaleRepo{}, goatRepo, testLogger())
		_, err := uc.Execute(context.Background(), cmd)
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("rejects a goat that is not active", func(t *testing.T) {
		goatRepo := &mockGoatRepo{
			getBySIDFn: func(_ context.Context, sid string) (*domainGoat.Goat, error) {
				return reconstructGoat(t, 1, "gt_1", domainGoat.StatusDeceased), nil
			},
		}

		uc := NewRecordSaleUseCase(&mockSaleRepo{}, goatRepo, testLogger())
		_, err := uc.Execute(context.Background(), cmd)
		require.Error(t, err)
		assert.True(t, errors.IsPreconditionFailedError(err))
	})

	t.Run("unknown goat returns not found", func(t *testing.T) {
		uc := NewRecordSaleUseCase(&mockSaleRepo{}, &mockGoatRepo{}, testLogger())
		_, err := uc.Execute(context.Background(), cmd)
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func reconstructSale(t *testing.T, status domainSale.PaymentStatus) *domainSale.Sale {
	t.Helper()
	s, err := domainSale.Reconstruct(
		10, "sl_1", 1, "Al Rashid Farm", 1200, "SAR",
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		status, "",
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return s
}

func TestMarkSalePaidUseCase_Execute(t *testing.T) {
	t.Run("settles a pending sale", func(t *testing.T) {
		var updated *domainSale.Sale
		saleRepo := &mockSaleRepo{
			getBySIDFn: func(_ context.Context, sid string) (*domainSale.Sale, error) {
				assert.Equal(t, "sl_1", sid)
				return reconstructSale(t, domainSale.PaymentPending), nil
			},
			updateFn: func(_ context.Context, s *domainSale.Sale) error {
				updated = s
				return nil
			},
		}

		uc := NewMarkSalePaidUseCase(saleRepo, testLogger())
		result, err := uc.Execute(context.Background(), "sl_1")
		require.NoError(t, err)

		assert.Equal(t, "PAID", result.PaymentStatus)
		require.NotNil(t, updated)
		assert.Equal(t, domainSale.PaymentPaid, updated.PaymentStatus())
	})

	t.Run("rejects an already-paid sale", func(t *testing.T) {
		saleRepo := &mockSaleRepo{
			getBySIDFn: func(_ context.Context, sid string) (*domainSale.Sale, error) {
				return reconstructSale(t, domainSale.PaymentPaid), nil
			},
		}

		uc := NewMarkSalePaidUseCase(saleRepo, testLogger())
		_, err := uc.Execute(context.Background(), "sl_1")
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("unknown sale returns not found", func(t *testing.T) {
		uc := NewMarkSalePaidUseCase(&mockSaleRepo{}, testLogger())
		_, err := uc.Execute(context.Background(), "sl_missing")
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestSalesSummaryUseCase_Execute(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	t.Run("totals sales in range", func(t *testing.T) {
		saleRepo := &mockSaleRepo{
			sumAmountFn: func(_ context.Context, gotFrom, gotTo time.Time) (float64, error) {
				assert.Equal(t, from, gotFrom)
				assert.Equal(t, to, gotTo)
				return 5400, nil
			},
		}

		uc := NewSalesSummaryUseCase(saleRepo, testLogger())
		result, err := uc.Execute(context.Background(), from, to)
		require.NoError(t, err)
		assert.Equal(t, float64(5400), result.Total)
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		uc := NewSalesSummaryUseCase(&mockSaleRepo{}, testLogger())
		_, err := uc.Execute(context.Background(), to, from)
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}
