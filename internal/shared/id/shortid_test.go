package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Length(t *testing.T) {
	id, err := Generate(12)
	require.NoError(t, err)
	assert.Len(t, id, 12)

	// non-positive lengths fall back to the default
	id, err = Generate(0)
	require.NoError(t, err)
	assert.Len(t, id, DefaultLength)
}

func TestGenerate_Alphabet(t *testing.T) {
	id, err := Generate(64)
	require.NoError(t, err)
	for _, r := range id {
		assert.Contains(t, alphabet, string(r))
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	id, err := GenerateWithPrefix(PrefixBreeding, DefaultLength)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "brd_"))

	prefix, short, err := ParsePrefixedID(id)
	require.NoError(t, err)
	assert.Equal(t, PrefixBreeding, prefix)
	assert.Len(t, short, DefaultLength)
}

func TestValidatePrefix(t *testing.T) {
	assert.NoError(t, ValidatePrefix("gt_abc123", PrefixGoat))
	assert.Error(t, ValidatePrefix("gt_abc123", PrefixBreeding))
	assert.Error(t, ValidatePrefix("noprefix", PrefixGoat))
}

func TestGenerate_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := MustGenerate(DefaultLength)
		assert.False(t, seen[id])
		seen[id] = true
	}
}
