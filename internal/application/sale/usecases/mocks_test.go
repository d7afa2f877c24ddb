package usecases

import (
	"context"
	"io"
	"log/slog"
	"time"

	domainGoat "github.com/marai-app/marai/internal/domain/goat"
	domainSale "github.com/marai-app/marai/internal/domain/sale"
	"github.com/marai-app/marai/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockSaleRepo struct {
	createFn    func(ctx context.Context, s *domainSale.Sale) error
	getBySIDFn  func(ctx context.Context, sid string) (*domainSale.Sale, error)
	updateFn    func(ctx context.Context, s *domainSale.Sale) error
	deleteFn    func(ctx context.Context, id uint) error
	listFn      func(ctx context.Context, filter domainSale.ListFilter) ([]*domainSale.Sale, int64, error)
	sumAmountFn func(ctx context.Context, from, to time.Time) (float64, error)
}

func (m *mockSaleRepo) Create(ctx context.Context, s *domainSale.Sale) error {
	if m.createFn != nil {
		return m.createFn(ctx, s)
	}
	return nil
}

func (m *mockSaleRepo) GetBySID(ctx context.Context, sid string) (*domainSale.Sale, error) {
	if m.getBySIDFn != nil {
		return m.getBySIDFn(ctx, sid)
	}
	return nil, nil
}

func (m *mockSaleRepo) Update(ctx context.Context, s *domainSale.Sale) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, s)
	}
	return nil
}

func (m *mockSaleRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockSaleRepo) List(ctx context.Context, filter domainSale.ListFilter) ([]*domainSale.Sale, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockSaleRepo) SumAmount(ctx context.Context, from, to time.Time) (float64, error) {
	if m.sumAmountFn != nil {
		return m.sumAmountFn(ctx, from, to)
	}
	return 0, nil
}

type mockGoatRepo struct {
	createFn        func(ctx context.Context, g *domainGoat.Goat) error
	getByIDFn       func(ctx context.Context, id uint) (*domainGoat.Goat, error)
	getBySIDFn      func(ctx context.Context, sid string) (*domainGoat.Goat, error)
	getByTagIDFn    func(ctx context.Context, tagID string) (*domainGoat.Goat, error)
	updateFn        func(ctx context.Context, g *domainGoat.Goat) error
	deleteFn        func(ctx context.Context, id uint) error
	listFn          func(ctx context.Context, filter domainGoat.ListFilter) ([]*domainGoat.Goat, int64, error)
	listOffspringFn func(ctx context.Context, parentID uint) ([]*domainGoat.Goat, error)
	listSiblingsFn  func(ctx context.Context, g *domainGoat.Goat) ([]*domainGoat.Goat, error)
	countActiveFn   func(ctx context.Context) (int64, error)
}

func (m *mockGoatRepo) Create(ctx context.Context, g *domainGoat.Goat) error {
	if m.createFn != nil {
		return m.createFn(ctx, g)
	}
	return nil
}

func (m *mockGoatRepo) GetByID(ctx context.Context, id uint) (*domainGoat.Goat, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockGoatRepo) GetBySID(ctx context.Context, sid string) (*domainGoat.Goat, error) {
	if m.getBySIDFn != nil {
		return m.getBySIDFn(ctx, sid)
	}
	return nil, nil
}

func (m *mockGoatRepo) GetByTagID(ctx context.Context, tagID string) (*domainGoat.Goat, error) {
	if m.getByTagIDFn != nil {
		return m.getByTagIDFn(ctx, tagID)
	}
	return nil, nil
}

func (m *mockGoatRepo) Update(ctx context.Context, g *domainGoat.Goat) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, g)
	}
	return nil
}

func (m *mockGoatRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockGoatRepo) List(ctx context.Context, filter domainGoat.ListFilter) ([]*domainGoat.Goat, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockGoatRepo) ListOffspring(ctx context.Context, parentID uint) ([]*domainGoat.Goat, error) {
	if m.listOffspringFn != nil {
		return m.listOffspringFn(ctx, parentID)
	}
	return nil, nil
}

func (m *mockGoatRepo) ListSiblings(ctx context.Context, g *domainGoat.Goat) ([]*domainGoat.Goat, error) {
	if m.listSiblingsFn != nil {
		return m.listSiblingsFn(ctx, g)
	}
	return nil, nil
}

func (m *mockGoatRepo) CountActive(ctx context.Context) (int64, error) {
	if m.countActiveFn != nil {
		return m.countActiveFn(ctx)
	}
	return 0, nil
}
