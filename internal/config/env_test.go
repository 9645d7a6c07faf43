package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnv(t *testing.T) {
	Reset()

	os.Setenv("NO_COLOR", "1")
	os.Setenv("ANIMAL_AGE_WIDTH", "72")
	defer func() {
		os.Unsetenv("NO_COLOR")
		os.Unsetenv("ANIMAL_AGE_WIDTH")
		Reset()
	}()

	e := Get()

	assert.True(t, e.NoColor)
	assert.Equal(t, 72, e.Width)
}

func TestEnvNoColorPresenceOnly(t *testing.T) {
	Reset()

	// The NO_COLOR convention keys off presence, even when set to empty.
	os.Setenv("NO_COLOR", "")
	defer func() {
		os.Unsetenv("NO_COLOR")
		Reset()
	}()

	assert.True(t, Get().NoColor)
}

func TestEnvDefaults(t *testing.T) {
	Reset()

	os.Unsetenv("NO_COLOR")
	os.Unsetenv("ANIMAL_AGE_WIDTH")
	defer Reset()

	e := Get()

	assert.False(t, e.NoColor)
	assert.Equal(t, 0, e.Width)
}

func TestEnvBadWidthIgnored(t *testing.T) {
	Reset()

	os.Setenv("ANIMAL_AGE_WIDTH", "not-a-number")
	defer func() {
		os.Unsetenv("ANIMAL_AGE_WIDTH")
		Reset()
	}()

	assert.Equal(t, 0, Get().Width)
}

func TestEnvSingleton(t *testing.T) {
	Reset()
	defer Reset()

	e1 := Get()
	e2 := Get()

	assert.Same(t, e1, e2)
}
