package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/marai-app/marai/internal/domain/breeding"
	"github.com/marai-app/marai/internal/domain/goat"
	"github.com/marai-app/marai/internal/shared/db"
	"github.com/marai-app/marai/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// testTxManager returns a transaction manager over an in-memory
// database so use cases exercise real begin/commit/rollback paths
// while repositories stay mocked.
func testTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db.NewTransactionManager(gdb)
}

type mockBreedingRepo struct {
	createFn            func(ctx context.Context, b *breeding.Breeding) error
	getByIDFn           func(ctx context.Context, id uint) (*breeding.Breeding, error)
	getBySIDFn          func(ctx context.Context, sid string) (*breeding.Breeding, error)
	getBySIDForUpdateFn func(ctx context.Context, sid string) (*breeding.Breeding, error)
	updateFn            func(ctx context.Context, b *breeding.Breeding) error
	deleteFn            func(ctx context.Context, id uint) error
	listFn              func(ctx context.Context, filter breeding.ListFilter) ([]*breeding.Breeding, int64, error)
	createBirthFn       func(ctx context.Context, b *breeding.Birth) error
	updateBirthFn       func(ctx context.Context, b *breeding.Birth) error
	listBirthsFn        func(ctx context.Context, breedingID uint) ([]*breeding.Birth, error)
}

func (m *mockBreedingRepo) Create(ctx context.Context, b *breeding.Breeding) error {
	if m.createFn != nil {
		return m.createFn(ctx, b)
	}
	return nil
}

func (m *mockBreedingRepo) GetByID(ctx context.Context, id uint) (*breeding.Breeding, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockBreedingRepo) GetBySID(ctx context.Context, sid string) (*breeding.Breeding, error) {
	if m.getBySIDFn != nil {
		return m.getBySIDFn(ctx, sid)
	}
	return nil, nil
}

func (m *mockBreedingRepo) GetBySIDForUpdate(ctx context.Context, sid string) (*breeding.Breeding, error) {
	if m.getBySIDForUpdateFn != nil {
		return m.getBySIDForUpdateFn(ctx, sid)
	}
	return nil, nil
}

func (m *mockBreedingRepo) Update(ctx context.Context, b *breeding.Breeding) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, b)
	}
	return nil
}

func (m *mockBreedingRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockBreedingRepo) List(ctx context.Context, filter breeding.ListFilter) ([]*breeding.Breeding, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockBreedingRepo) CreateBirth(ctx context.Context, b *breeding.Birth) error {
	if m.createBirthFn != nil {
		return m.createBirthFn(ctx, b)
	}
	return nil
}

func (m *mockBreedingRepo) UpdateBirth(ctx context.Context, b *breeding.Birth) error {
	if m.updateBirthFn != nil {
		return m.updateBirthFn(ctx, b)
	}
	return nil
}

func (m *mockBreedingRepo) ListBirths(ctx context.Context, breedingID uint) ([]*breeding.Birth, error) {
	if m.listBirthsFn != nil {
		return m.listBirthsFn(ctx, breedingID)
	}
	return nil, nil
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
