package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marai-app/marai/internal/domain/goat"
)

func mustCreateGoat(t *testing.T, repo goat.Repository, tenantID, farmID uint, tagID string, gender goat.Gender) *goat.Goat {
	t.Helper()
	g, err := goat.NewGoat(tagID, gender, date(2023, time.March, 1), nil, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(scopedCtx(tenantID, farmID), g))
	require.NotZero(t, g.ID())
	require.NotEmpty(t, g.SID())
	return g
}

func TestGoatRepository_TenantIsolation(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewGoatRepository(gdb, testLogger())

	mustCreateGoat(t, repo, 1, 1, "A-001", goat.GenderFemale)
	mustCreateGoat(t, repo, 1, 1, "A-002", goat.GenderMale)
	other := mustCreateGoat(t, repo, 2, 5, "B-001", goat.GenderFemale)

	t.Run("list returns only rows of the bound tenant and farm", func(t *testing.T) {
		goats, total, err := repo.List(scopedCtx(1, 1), goat.ListFilter{})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		for _, g := range goats {
			assert.NotEqual(t, "B-001", g.TagID())
		}

		goats, total, err = repo.List(scopedCtx(2, 5), goat.ListFilter{})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, goats, 1)
		assert.Equal(t, "B-001", goats[0].TagID())
	})

	t.Run("lookup under the wrong tenant misses", func(t *testing.T) {
		got, err := repo.GetBySID(scopedCtx(1, 1), other.SID())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("lookup under the right tenant hits", func(t *testing.T) {
		got, err := repo.GetBySID(scopedCtx(2, 5), other.SID())
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, other.ID(), got.ID())
	})

	t.Run("same tenant different farm is isolated", func(t *testing.T) {
		_, total, err := repo.List(scopedCtx(1, 2), goat.ListFilter{})
		require.NoError(t, err)
		assert.EqualValues(t, 0, total)
	})

	t.Run("tag lookup is farm scoped", func(t *testing.T) {
		got, err := repo.GetByTagID(scopedCtx(2, 5), "A-001")
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = repo.GetByTagID(scopedCtx(1, 1), "A-001")
		require.NoError(t, err)
		require.NotNil(t, got)
	})

	t.Run("count active only counts the bound farm", func(t *testing.T) {
		count, err := repo.CountActive(scopedCtx(1, 1))
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)
	})
}

func TestGoatRepository_UpdateAndDeleteScoped(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewGoatRepository(gdb, testLogger())

	g := mustCreateGoat(t, repo, 1, 1, "A-010", goat.GenderFemale)

	t.Run("update under wrong tenant does not touch the row", func(t *testing.T) {
		require.NoError(t, g.ChangeStatus(goat.StatusQuarantine))
		err := repo.Update(scopedCtx(2, 1), g)
		assert.Error(t, err)

		got, err := repo.GetBySID(scopedCtx(1, 1), g.SID())
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, goat.StatusActive, got.Status())
	})

	t.Run("update under right tenant persists", func(t *testing.T) {
		err := repo.Update(scopedCtx(1, 1), g)
		require.NoError(t, err)

		got, err := repo.GetBySID(scopedCtx(1, 1), g.SID())
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, goat.StatusQuarantine, got.Status())
	})

	t.Run("delete under wrong tenant leaves the row", func(t *testing.T) {
		err := repo.Delete(scopedCtx(2, 1), g.ID())
		assert.Error(t, err)

		got, err := repo.GetBySID(scopedCtx(1, 1), g.SID())
		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("delete under right tenant removes the row", func(t *testing.T) {
		require.NoError(t, repo.Delete(scopedCtx(1, 1), g.ID()))

		got, err := repo.GetBySID(scopedCtx(1, 1), g.SID())
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestGoatRepository_Lineage(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewGoatRepository(gdb, testLogger())
	ctx := scopedCtx(1, 1)

	mother := mustCreateGoat(t, repo, 1, 1, "DOE-1", goat.GenderFemale)
	father := mustCreateGoat(t, repo, 1, 1, "BUCK-1", goat.GenderMale)

	makeKid := func(tag string) *goat.Goat {
		kid, err := goat.NewOffspring(tag, goat.GenderFemale, date(2025, time.January, 10), nil, mother, ptrUint(father.ID()), 7)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, kid))
		return kid
	}

	kid1 := makeKid("KID-1")
	kid2 := makeKid("KID-2")

	t.Run("offspring lists both parents' kids", func(t *testing.T) {
		kids, err := repo.ListOffspring(ctx, mother.ID())
		require.NoError(t, err)
		assert.Len(t, kids, 2)

		kids, err = repo.ListOffspring(ctx, father.ID())
		require.NoError(t, err)
		assert.Len(t, kids, 2)
	})

	t.Run("siblings excludes the animal itself", func(t *testing.T) {
		sibs, err := repo.ListSiblings(ctx, kid1)
		require.NoError(t, err)
		require.Len(t, sibs, 1)
		assert.Equal(t, kid2.ID(), sibs[0].ID())
	})
}

func ptrUint(v uint) *uint { return &v }
