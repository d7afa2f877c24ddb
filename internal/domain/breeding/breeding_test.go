package breeding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marai-app/marai/internal/domain/goat"
)

func TestNewBreeding(t *testing.T) {
	matingDate := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	t.Run("valid", func(t *testing.T) {
		fatherID := uint(20)
		b, err := NewBreeding(10, &fatherID, matingDate, nil, "first mating")
		require.NoError(t, err)
		assert.Equal(t, uint(10), b.MotherID())
		assert.Equal(t, &fatherID, b.FatherID())
		assert.Equal(t, StatusPlanned, b.Status())
	})

	t.Run("unknown sire allowed", func(t *testing.T) {
		b, err := NewBreeding(10, nil, matingDate, nil, "")
		require.NoError(t, err)
		assert.Nil(t, b.FatherID())
	})

	t.Run("missing mother", func(t *testing.T) {
		_, err := NewBreeding(0, nil, matingDate, nil, "")
		assert.Error(t, err)
	})

	t.Run("self mating rejected", func(t *testing.T) {
		same := uint(10)
		_, err := NewBreeding(10, &same, matingDate, nil, "")
		assert.Error(t, err)
	})

	t.Run("zero mating date", func(t *testing.T) {
		_, err := NewBreeding(10, nil, time.Time{}, nil, "")
		assert.Error(t, err)
	})
}

func TestBreeding_StatusTransitions(t *testing.T) {
	matingDate := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	birthDate := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	newPregnant := func(t *testing.T) *Breeding {
		t.Helper()
		b, err := NewBreeding(10, nil, matingDate, nil, "")
		require.NoError(t, err)
		require.NoError(t, b.ConfirmPregnancy())
		return b
	}

	t.Run("confirm pregnancy", func(t *testing.T) {
		b := newPregnant(t)
		assert.True(t, b.IsPregnant())
		assert.Error(t, b.ConfirmPregnancy(), "confirming twice fails")
	})

	t.Run("deliver from pregnant", func(t *testing.T) {
		b := newPregnant(t)
		require.NoError(t, b.MarkDelivered(birthDate))
		assert.True(t, b.IsDelivered())
		require.NotNil(t, b.BirthDate())
		assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), *b.BirthDate(),
			"birth date normalized to date only")
	})

	t.Run("deliver twice fails", func(t *testing.T) {
		b := newPregnant(t)
		require.NoError(t, b.MarkDelivered(birthDate))
		assert.Error(t, b.MarkDelivered(birthDate))
	})

	t.Run("deliver from planned fails", func(t *testing.T) {
		b, err := NewBreeding(10, nil, matingDate, nil, "")
		require.NoError(t, err)
		assert.Error(t, b.MarkDelivered(birthDate))
	})

	t.Run("deliver with zero date fails", func(t *testing.T) {
		b := newPregnant(t)
		assert.Error(t, b.MarkDelivered(time.Time{}))
		assert.True(t, b.IsPregnant())
	})

	t.Run("fail before delivery", func(t *testing.T) {
		b := newPregnant(t)
		require.NoError(t, b.MarkFailed())
		assert.Equal(t, StatusFailed, b.Status())
	})

	t.Run("cannot fail after delivery", func(t *testing.T) {
		b := newPregnant(t)
		require.NoError(t, b.MarkDelivered(birthDate))
		assert.Error(t, b.MarkFailed())
	})
}

func TestNewBirth(t *testing.T) {
	birthDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("valid", func(t *testing.T) {
		w := 2.8
		b, err := NewBirth(99, "KID-1", goat.GenderFemale, birthDate, OutcomeAlive, &w, "")
		require.NoError(t, err)
		assert.Equal(t, uint(99), b.BreedingID())
		assert.Equal(t, "KID-1", b.TagID())
		assert.Equal(t, goat.GenderFemale, b.Gender())
		assert.Equal(t, OutcomeAlive, b.Outcome())
		assert.Nil(t, b.GoatID())
	})

	t.Run("missing breeding", func(t *testing.T) {
		_, err := NewBirth(0, "KID-1", goat.GenderFemale, birthDate, OutcomeAlive, nil, "")
		assert.Error(t, err)
	})

	t.Run("missing tag", func(t *testing.T) {
		_, err := NewBirth(99, "", goat.GenderFemale, birthDate, OutcomeAlive, nil, "")
		assert.Error(t, err)
	})

	t.Run("invalid gender", func(t *testing.T) {
		_, err := NewBirth(99, "KID-1", goat.Gender("OTHER"), birthDate, OutcomeAlive, nil, "")
		assert.Error(t, err)
	})

	t.Run("invalid outcome", func(t *testing.T) {
		_, err := NewBirth(99, "KID-1", goat.GenderFemale, birthDate, Outcome("LOST"), nil, "")
		assert.Error(t, err)
	})

	t.Run("negative weight", func(t *testing.T) {
		w := -0.5
		_, err := NewBirth(99, "KID-1", goat.GenderFemale, birthDate, OutcomeAlive, &w, "")
		assert.Error(t, err)
	})
}

func TestBirth_LinkGoat(t *testing.T) {
	b, err := NewBirth(99, "KID-1", goat.GenderMale, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), OutcomeStillborn, nil, "")
	require.NoError(t, err)

	b.LinkGoat(7)
	require.NotNil(t, b.GoatID())
	assert.Equal(t, uint(7), *b.GoatID())
}

func TestPlaceholderTag(t *testing.T) {
	assert.Equal(t, "TEMP-b1234567-1", PlaceholderTag("b1234567890abc", 0))
	assert.Equal(t, "TEMP-b1234567-3", PlaceholderTag("b1234567890abc", 2))
	assert.Equal(t, "TEMP-b12-1", PlaceholderTag("b12", 0), "short SIDs are kept whole")
}
