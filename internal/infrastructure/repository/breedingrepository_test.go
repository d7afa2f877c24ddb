package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marai-app/marai/internal/domain/breeding"
	"github.com/marai-app/marai/internal/domain/goat"
	"github.com/marai-app/marai/internal/shared/db"
)

func mustCreateBreeding(t *testing.T, repo breeding.Repository, tenantID, farmID uint, motherID uint) *breeding.Breeding {
	t.Helper()
	b, err := breeding.NewBreeding(motherID, nil, date(2025, time.February, 1), nil, "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(scopedCtx(tenantID, farmID), b))
	return b
}

func TestBreedingRepository_ScopedAccess(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewBreedingRepository(gdb, testLogger())

	b := mustCreateBreeding(t, repo, 1, 1, 10)

	t.Run("visible in own scope", func(t *testing.T) {
		got, err := repo.GetBySID(scopedCtx(1, 1), b.SID())
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, breeding.StatusPlanned, got.Status())
	})

	t.Run("invisible to other tenants", func(t *testing.T) {
		got, err := repo.GetBySID(scopedCtx(2, 1), b.SID())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("for-update lookup works without the lock clause on sqlite", func(t *testing.T) {
		got, err := repo.GetBySIDForUpdate(scopedCtx(1, 1), b.SID())
		require.NoError(t, err)
		require.NotNil(t, got)
	})
}

func TestBreedingRepository_BirthsOrderedByInsertion(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewBreedingRepository(gdb, testLogger())
	ctx := scopedCtx(1, 1)

	b := mustCreateBreeding(t, repo, 1, 1, 10)

	for i := 0; i < 3; i++ {
		tag := fmt.Sprintf("KID-%d", i+1)
		birth, err := breeding.NewBirth(b.ID(), tag, goat.GenderFemale, date(2025, time.June, 1), breeding.OutcomeAlive, nil, "")
		require.NoError(t, err)
		require.NoError(t, repo.CreateBirth(ctx, birth))
	}

	births, err := repo.ListBirths(ctx, b.ID())
	require.NoError(t, err)
	require.Len(t, births, 3)
	for i := 1; i < len(births); i++ {
		assert.Less(t, births[i-1].ID(), births[i].ID())
	}
	assert.Equal(t, "KID-1", births[0].TagID())
	assert.Equal(t, goat.GenderFemale, births[0].Gender())
}

func TestTransactionRollback_NoPartialBirthRecords(t *testing.T) {
	gdb := newTestDB(t)
	log := testLogger()
	breedingRepo := NewBreedingRepository(gdb, log)
	goatRepo := NewGoatRepository(gdb, log)
	txManager := db.NewTransactionManager(gdb)
	ctx := scopedCtx(1, 1)

	mother := mustCreateGoat(t, goatRepo, 1, 1, "DOE-9", goat.GenderFemale)
	rec := mustCreateBreeding(t, breedingRepo, 1, 1, mother.ID())

	err := txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		birth, err := breeding.NewBirth(rec.ID(), "KID-9", goat.GenderMale, date(2025, time.July, 1), breeding.OutcomeAlive, nil, "")
		if err != nil {
			return err
		}
		if err := breedingRepo.CreateBirth(txCtx, birth); err != nil {
			return err
		}

		kid, err := goat.NewOffspring("KID-9", goat.GenderMale, date(2025, time.July, 1), nil, mother, nil, rec.ID())
		if err != nil {
			return err
		}
		if err := goatRepo.Create(txCtx, kid); err != nil {
			return err
		}

		return fmt.Errorf("boom")
	})
	require.Error(t, err)

	births, err := breedingRepo.ListBirths(ctx, rec.ID())
	require.NoError(t, err)
	assert.Empty(t, births)

	kid, err := goatRepo.GetByTagID(ctx, "KID-9")
	require.NoError(t, err)
	assert.Nil(t, kid)
}

func TestTransactionCommit_PersistsAllRows(t *testing.T) {
	gdb := newTestDB(t)
	log := testLogger()
	breedingRepo := NewBreedingRepository(gdb, log)
	goatRepo := NewGoatRepository(gdb, log)
	txManager := db.NewTransactionManager(gdb)
	ctx := scopedCtx(1, 1)

	mother := mustCreateGoat(t, goatRepo, 1, 1, "DOE-8", goat.GenderFemale)
	rec := mustCreateBreeding(t, breedingRepo, 1, 1, mother.ID())
	require.NoError(t, rec.ConfirmPregnancy())
	require.NoError(t, breedingRepo.Update(ctx, rec))

	err := txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		locked, err := breedingRepo.GetBySIDForUpdate(txCtx, rec.SID())
		if err != nil {
			return err
		}

		birth, err := breeding.NewBirth(locked.ID(), "KID-8", goat.GenderFemale, date(2025, time.August, 2), breeding.OutcomeAlive, nil, "")
		if err != nil {
			return err
		}
		if err := breedingRepo.CreateBirth(txCtx, birth); err != nil {
			return err
		}

		kid, err := goat.NewOffspring("KID-8", goat.GenderFemale, date(2025, time.August, 2), nil, mother, nil, locked.ID())
		if err != nil {
			return err
		}
		kid.SetBirthRecord(birth.ID())
		if err := goatRepo.Create(txCtx, kid); err != nil {
			return err
		}
		birth.LinkGoat(kid.ID())
		if err := breedingRepo.UpdateBirth(txCtx, birth); err != nil {
			return err
		}

		if err := locked.MarkDelivered(date(2025, time.August, 2)); err != nil {
			return err
		}
		return breedingRepo.Update(txCtx, locked)
	})
	require.NoError(t, err)

	got, err := breedingRepo.GetBySID(ctx, rec.SID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, breeding.StatusDelivered, got.Status())

	births, err := breedingRepo.ListBirths(ctx, rec.ID())
	require.NoError(t, err)
	require.Len(t, births, 1)
	require.NotNil(t, births[0].GoatID())
	assert.Equal(t, "KID-8", births[0].TagID())

	kid, err := goatRepo.GetByTagID(ctx, "KID-8")
	require.NoError(t, err)
	require.NotNil(t, kid)
	assert.Equal(t, goat.StatusActive, kid.Status())
}
