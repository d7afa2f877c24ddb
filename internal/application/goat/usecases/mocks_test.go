package usecases

import (
	"context"
	"io"
	"log/slog"

	"github.com/marai-app/marai/internal/domain/goat"
	"github.com/marai-app/marai/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockGoatRepo struct {
	createFn        func(ctx context.Context, g *goat.Goat) error
	getByIDFn       func(ctx context.Context, id uint) (*goat.Goat, error)
	getBySIDFn      func(ctx context.Context, sid string) (*goat.Goat, error)
	getByTagIDFn    func(ctx context.Context, tagID string) (*goat.Goat, error)
	updateFn        func(ctx context.Context, g *goat.Goat) error
	deleteFn        func(ctx context.Context, id uint) error
	listFn          func(ctx context.Context, filter goat.ListFilter) ([]*goat.Goat, int64, error)
	listOffspringFn func(ctx context.Context, parentID uint) ([]*goat.Goat, error)
	listSiblingsFn  func(ctx context.Context, g *goat.Goat) ([]*goat.Goat, error)
	countActiveFn   func(ctx context.Context) (int64, error)
}

func (m *mockGoatRepo) Create(ctx context.Context, g *goat.Goat) error {
	if m.createFn != nil {
		return m.createFn(ctx, g)
	}
	return nil
}

func (m *mockGoatRepo) GetByID(ctx context.Context, id uint) (*goat.Goat, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockGoatRepo) GetBySID(ctx context.Context, sid string) (*goat.Goat, error) {
	if m.getBySIDFn != nil {
		return m.getBySIDFn(ctx, sid)
	}
	return nil, nil
}

func (m *mockGoatRepo) GetByTagID(ctx context.Context, tagID string) (*goat.Goat, error) {
	if m.getByTagIDFn != nil {
		return m.getByTagIDFn(ctx, tagID)
	}
	return nil, nil
}

func (m *mockGoatRepo) Update(ctx context.Context, g *goat.Goat) error {
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

func (m *mockGoatRepo) List(ctx context.Context, filter goat.ListFilter) ([]*goat.Goat, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockGoatRepo) ListOffspring(ctx context.Context, parentID uint) ([]*goat.Goat, error) {
	if m.listOffspringFn != nil {
		return m.listOffspringFn(ctx, parentID)
	}
	return nil, nil
}

func (m *mockGoatRepo) ListSiblings(ctx context.Context, g *goat.Goat) ([]*goat.Goat, error) {
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

type mockBreedRepo struct {
	createFn    func(ctx context.Context, b *goat.Breed) error
	getByIDFn   func(ctx context.Context, id uint) (*goat.Breed, error)
	getByNameFn func(ctx context.Context, name string) (*goat.Breed, error)
	listFn      func(ctx context.Context) ([]*goat.Breed, error)
	deleteFn    func(ctx context.Context, id uint) error
}

func (m *mockBreedRepo) Create(ctx context.Context, b *goat.Breed) error {
	if m.createFn != nil {
		return m.createFn(ctx, b)
	}
	return nil
}

func (m *mockBreedRepo) GetByID(ctx context.Context, id uint) (*goat.Breed, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockBreedRepo) GetByName(ctx context.Context, name string) (*goat.Breed, error) {
	if m.getByNameFn != nil {
		return m.getByNameFn(ctx, name)
	}
	return nil, nil
}

func (m *mockBreedRepo) List(ctx context.Context) ([]*goat.Breed, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockBreedRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}
