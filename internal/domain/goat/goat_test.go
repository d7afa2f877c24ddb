package goat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGoat(t *testing.T) {
	birthDate := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	weight := 3.5
	breedID := uint(7)

	t.Run("valid goat", func(t *testing.T) {
		g, err := NewGoat("GT-001", GenderFemale, birthDate, &weight, &breedID)
		require.NoError(t, err)
		assert.Equal(t, "GT-001", g.TagID())
		assert.Equal(t, GenderFemale, g.Gender())
		assert.Equal(t, StatusActive, g.Status())
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), g.BirthDate())
		assert.Equal(t, &weight, g.WeightKg())
		assert.Equal(t, &breedID, g.BreedID())
		assert.Nil(t, g.MotherID())
		assert.Nil(t, g.FatherID())
	})

	t.Run("trims tag whitespace", func(t *testing.T) {
		g, err := NewGoat("  GT-002  ", GenderMale, birthDate, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "GT-002", g.TagID())
	})

	t.Run("empty tag", func(t *testing.T) {
		_, err := NewGoat("   ", GenderMale, birthDate, nil, nil)
		assert.Error(t, err)
	})

	t.Run("invalid gender", func(t *testing.T) {
		_, err := NewGoat("GT-003", Gender("OTHER"), birthDate, nil, nil)
		assert.Error(t, err)
	})

	t.Run("zero birth date", func(t *testing.T) {
		_, err := NewGoat("GT-004", GenderMale, time.Time{}, nil, nil)
		assert.Error(t, err)
	})

	t.Run("negative weight", func(t *testing.T) {
		neg := -1.0
		_, err := NewGoat("GT-005", GenderMale, birthDate, &neg, nil)
		assert.Error(t, err)
	})
}

func TestNewOffspring(t *testing.T) {
	breedID := uint(3)
	mother, err := NewGoat("DOE-1", GenderFemale, time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), nil, &breedID)
	require.NoError(t, err)
	require.NoError(t, mother.SetID(10))

	fatherID := uint(20)
	birthDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	kid, err := NewOffspring("KID-1", GenderMale, birthDate, nil, mother, &fatherID, 99)
	require.NoError(t, err)

	assert.Equal(t, StatusActive, kid.Status())
	assert.Equal(t, &breedID, kid.BreedID(), "breed inherited from mother")
	require.NotNil(t, kid.MotherID())
	assert.Equal(t, uint(10), *kid.MotherID())
	assert.Equal(t, &fatherID, kid.FatherID())
	require.NotNil(t, kid.BreedingID())
	assert.Equal(t, uint(99), *kid.BreedingID())
}

func TestGoat_SetID(t *testing.T) {
	g, err := NewGoat("GT-010", GenderMale, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), nil, nil)
	require.NoError(t, err)

	require.NoError(t, g.SetID(5))
	assert.Equal(t, uint(5), g.ID())
	assert.Error(t, g.SetID(6), "ID is immutable once set")
}

func TestGoat_ChangeStatus(t *testing.T) {
	g, err := NewGoat("GT-011", GenderFemale, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), nil, nil)
	require.NoError(t, err)

	require.NoError(t, g.ChangeStatus(StatusSold))
	assert.Equal(t, StatusSold, g.Status())
	assert.False(t, g.IsActive())

	assert.Error(t, g.ChangeStatus(Status("MISSING")))
	assert.Equal(t, StatusSold, g.Status())
}

func TestGoat_SetBirthRecord(t *testing.T) {
	g, err := NewGoat("GT-012", GenderMale, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), nil, nil)
	require.NoError(t, err)

	g.SetBirthRecord(42)
	require.NotNil(t, g.BirthRecordID())
	assert.Equal(t, uint(42), *g.BirthRecordID())
}

func TestReconstruct(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid", func(t *testing.T) {
		g, err := Reconstruct(1, "gt_abc", "GT-001", GenderFemale, StatusActive,
			now, nil, nil, nil, nil, nil, nil, "", now, now)
		require.NoError(t, err)
		assert.Equal(t, uint(1), g.ID())
		assert.Equal(t, "gt_abc", g.SID())
	})

	t.Run("zero ID", func(t *testing.T) {
		_, err := Reconstruct(0, "gt_abc", "GT-001", GenderFemale, StatusActive,
			now, nil, nil, nil, nil, nil, nil, "", now, now)
		assert.Error(t, err)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := Reconstruct(1, "gt_abc", "GT-001", GenderFemale, Status("GONE"),
			now, nil, nil, nil, nil, nil, nil, "", now, now)
		assert.Error(t, err)
	})
}
