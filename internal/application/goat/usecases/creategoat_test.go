package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marai-app/marai/internal/domain/goat"
	"github.com/marai-app/marai/internal/shared/errors"
)

func TestCreateGoatUseCase_Execute(t *testing.T) {
	birthDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("registers a goat with a new breed", func(t *testing.T) {
		var createdBreed *goat.Breed
		var createdGoat *goat.Goat

		breedRepo := &mockBreedRepo{
			createFn: func(_ context.Context, b *goat.Breed) error {
				require.NoError(t, b.SetID(7))
				createdBreed = b
				return nil
			},
		}
		goatRepo := &mockGoatRepo{
			createFn: func(_ context.Context, g *goat.Goat) error {
				g.SetSID("gt_new")
				require.NoError(t, g.SetID(1))
				createdGoat = g
				return nil
			},
		}

		uc := NewCreateGoatUseCase(goatRepo, breedRepo, testLogger())
		result, err := uc.Execute(context.Background(), CreateGoatCommand{
			TagID:     "GT-001",
			Gender:    goat.GenderFemale,
			BirthDate: birthDate,
			BreedName: "Ardi",
		})
		require.NoError(t, err)

		assert.Equal(t, "gt_new", result.SID)
		assert.Equal(t, "Ardi", result.BreedName)
		require.NotNil(t, createdBreed)
		require.NotNil(t, createdGoat.BreedID())
		assert.Equal(t, uint(7), *createdGoat.BreedID())
	})

	t.Run("reuses an existing breed", func(t *testing.T) {
		existing, err := goat.ReconstructBreed(3, "Damascus", "", time.Now(), time.Now())
		require.NoError(t, err)

		breedCreated := false
		breedRepo := &mockBreedRepo{
			getByNameFn: func(_ context.Context, name string) (*goat.Breed, error) {
				return existing, nil
			},
			createFn: func(_ context.Context, _ *goat.Breed) error {
				breedCreated = true
				return nil
			},
		}
		goatRepo := &mockGoatRepo{
			createFn: func(_ context.Context, g *goat.Goat) error {
				g.SetSID("gt_x")
				return g.SetID(2)
			},
		}

		uc := NewCreateGoatUseCase(goatRepo, breedRepo, testLogger())
		result, err := uc.Execute(context.Background(), CreateGoatCommand{
			TagID:     "GT-002",
			Gender:    goat.GenderMale,
			BirthDate: birthDate,
			BreedName: "Damascus",
		})
		require.NoError(t, err)
		assert.Equal(t, "Damascus", result.BreedName)
		assert.False(t, breedCreated)
	})

	t.Run("duplicate tag is a conflict", func(t *testing.T) {
		taken, err := goat.Reconstruct(5, "gt_taken", "GT-001", goat.GenderMale, goat.StatusActive,
			birthDate, nil, nil, nil, nil, nil, nil, "", birthDate, birthDate)
		require.NoError(t, err)

		goatRepo := &mockGoatRepo{
			getByTagIDFn: func(_ context.Context, _ string) (*goat.Goat, error) {
				return taken, nil
			},
		}

		uc := NewCreateGoatUseCase(goatRepo, &mockBreedRepo{}, testLogger())
		_, err = uc.Execute(context.Background(), CreateGoatCommand{
			TagID:     "GT-001",
			Gender:    goat.GenderFemale,
			BirthDate: birthDate,
		})
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("plan limit rejection passes through", func(t *testing.T) {
		uc := NewCreateGoatUseCase(&mockGoatRepo{}, &mockBreedRepo{}, testLogger())
		uc.SetLimitChecker(limitCheckerFunc(func(_ context.Context) error {
			return errors.NewPreconditionFailedError("herd limit reached for plan")
		}))

		_, err := uc.Execute(context.Background(), CreateGoatCommand{
			TagID:     "GT-003",
			Gender:    goat.GenderFemale,
			BirthDate: birthDate,
		})
		assert.True(t, errors.IsPreconditionFailedError(err))
	})

	t.Run("missing tag", func(t *testing.T) {
		uc := NewCreateGoatUseCase(&mockGoatRepo{}, &mockBreedRepo{}, testLogger())
		_, err := uc.Execute(context.Background(), CreateGoatCommand{
			Gender:    goat.GenderFemale,
			BirthDate: birthDate,
		})
		assert.True(t, errors.IsValidationError(err))
	})
}

type limitCheckerFunc func(ctx context.Context) error

func (f limitCheckerFunc) CheckHerdLimit(ctx context.Context) error { return f(ctx) }

func TestGetLineageUseCase_Execute(t *testing.T) {
	birthDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	motherID, fatherID, breedingID := uint(10), uint(20), uint(99)

	kid, err := goat.Reconstruct(1, "gt_kid", "KID-1", goat.GenderMale, goat.StatusActive,
		birthDate, nil, nil, &motherID, &fatherID, &breedingID, nil, "", birthDate, birthDate)
	require.NoError(t, err)
	mother, err := goat.Reconstruct(10, "gt_mother", "DOE-1", goat.GenderFemale, goat.StatusActive,
		birthDate.AddDate(-3, 0, 0), nil, nil, nil, nil, nil, nil, "", birthDate, birthDate)
	require.NoError(t, err)
	sibling, err := goat.Reconstruct(2, "gt_sib", "KID-2", goat.GenderFemale, goat.StatusActive,
		birthDate, nil, nil, &motherID, &fatherID, &breedingID, nil, "", birthDate, birthDate)
	require.NoError(t, err)

	goatRepo := &mockGoatRepo{
		getBySIDFn: func(_ context.Context, sid string) (*goat.Goat, error) {
			if sid == "gt_kid" {
				return kid, nil
			}
			return nil, nil
		},
		getByIDFn: func(_ context.Context, id uint) (*goat.Goat, error) {
			if id == motherID {
				return mother, nil
			}
			return nil, nil
		},
		listSiblingsFn: func(_ context.Context, _ *goat.Goat) ([]*goat.Goat, error) {
			return []*goat.Goat{sibling}, nil
		},
	}

	uc := NewGetLineageUseCase(goatRepo, testLogger())

	t.Run("full lineage", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), "gt_kid")
		require.NoError(t, err)

		assert.Equal(t, "gt_kid", result.Goat.SID)
		require.NotNil(t, result.Mother)
		assert.Equal(t, "gt_mother", result.Mother.SID)
		assert.Nil(t, result.Father, "missing father row is tolerated")
		require.Len(t, result.Siblings, 1)
		assert.Equal(t, "gt_sib", result.Siblings[0].SID)
		assert.Empty(t, result.Offspring)
	})

	t.Run("unknown goat", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), "gt_missing")
		assert.True(t, errors.IsNotFoundError(err))
	})
}
