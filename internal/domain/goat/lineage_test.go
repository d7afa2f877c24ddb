package goat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reconstructKid(t *testing.T, id uint, motherID, breedingID *uint) *Goat {
	t.Helper()
	now := time.Now().UTC()
	g, err := Reconstruct(id, "", "KID", GenderMale, StatusActive,
		now, nil, nil, motherID, nil, breedingID, nil, "", now, now)
	require.NoError(t, err)
	return g
}

func TestAreSiblings(t *testing.T) {
	mother := uint(10)
	otherMother := uint(11)
	litter := uint(100)
	otherLitter := uint(101)

	t.Run("same litter same mother", func(t *testing.T) {
		a := reconstructKid(t, 1, &mother, &litter)
		b := reconstructKid(t, 2, &mother, &litter)
		assert.True(t, AreSiblings(a, b))
		assert.True(t, AreSiblings(b, a))
	})

	t.Run("same litter different mother is not siblings", func(t *testing.T) {
		a := reconstructKid(t, 1, &mother, &litter)
		b := reconstructKid(t, 2, &otherMother, &litter)
		assert.False(t, AreSiblings(a, b))
	})

	t.Run("same mother different litter is not siblings", func(t *testing.T) {
		a := reconstructKid(t, 1, &mother, &litter)
		b := reconstructKid(t, 2, &mother, &otherLitter)
		assert.False(t, AreSiblings(a, b))
	})

	t.Run("animal is not its own sibling", func(t *testing.T) {
		a := reconstructKid(t, 1, &mother, &litter)
		assert.False(t, AreSiblings(a, a))
	})

	t.Run("missing lineage is not siblings", func(t *testing.T) {
		a := reconstructKid(t, 1, &mother, nil)
		b := reconstructKid(t, 2, &mother, &litter)
		assert.False(t, AreSiblings(a, b))

		c := reconstructKid(t, 3, nil, &litter)
		assert.False(t, AreSiblings(b, c))
	})

	t.Run("nil animals", func(t *testing.T) {
		a := reconstructKid(t, 1, &mother, &litter)
		assert.False(t, AreSiblings(nil, a))
		assert.False(t, AreSiblings(a, nil))
	})
}
