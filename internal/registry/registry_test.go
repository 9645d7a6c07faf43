package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	r := New()

	p, err := r.Lookup("cat")
	require.NoError(t, err)
	assert.Equal(t, "cat", p.Key)
	assert.Equal(t, "Domestic cat", p.DisplayName)
	assert.Equal(t, 18.0, p.MaxLifespan)
}

func TestLookupUnknown(t *testing.T) {
	r := New()

	_, err := r.Lookup("dragon")
	require.Error(t, err)

	var unknown *UnknownAnimalError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "dragon", unknown.Key)
	assert.Equal(t, "unknown animal type: dragon", err.Error())
}

func TestLookupIsCaseSensitive(t *testing.T) {
	r := New()

	// Keys are lowercase identifiers; callers normalize first.
	_, err := r.Lookup("CAT")
	assert.Error(t, err)

	_, err = r.Lookup(Normalize("CAT"))
	assert.NoError(t, err)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"cat", "cat"},
		{"CAT", "cat"},
		{"  Small_Dog ", "small_dog"},
		{"", ""},
		{"  ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Normalize(tt.input), "Normalize(%q)", tt.input)
	}
}

func TestKeysDeclarationOrder(t *testing.T) {
	r := New()

	keys := r.Keys()
	assert.Equal(t, []string{
		"small_dog", "medium_dog", "big_dog", "cat", "horse", "pig",
		"parakeet", "snake", "goldfish", "rabbit", "hamster",
	}, keys)
}

func TestProfilesAreWellFormed(t *testing.T) {
	r := New()

	profiles := r.Profiles()
	require.Len(t, profiles, 11)

	seen := make(map[string]bool)
	for _, p := range profiles {
		assert.False(t, seen[p.Key], "duplicate key %q", p.Key)
		seen[p.Key] = true
		assert.NotEmpty(t, p.DisplayName, "%s display name", p.Key)
		assert.Greater(t, p.MaxLifespan, 0.0, "%s max lifespan", p.Key)
		assert.Greater(t, p.AgingExponent, 0.0, "%s exponent", p.Key)
		assert.LessOrEqual(t, p.AgingExponent, 1.0, "%s exponent", p.Key)
	}
}

func TestProfilesReturnsCopy(t *testing.T) {
	r := New()

	profiles := r.Profiles()
	profiles[0].MaxLifespan = 999

	p, err := r.Lookup("small_dog")
	require.NoError(t, err)
	assert.Equal(t, 16.0, p.MaxLifespan)
}

func TestDuplicateKeyPanics(t *testing.T) {
	assert.Panics(t, func() {
		newFrom([]Profile{
			{Key: "cat", DisplayName: "a", MaxLifespan: 1, AgingExponent: 1},
			{Key: "cat", DisplayName: "b", MaxLifespan: 1, AgingExponent: 1},
		})
	})
}
