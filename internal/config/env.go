// Package config provides environment-derived settings for the CLI.
package config

import (
	"os"
	"strconv"
	"sync"
)

// Env holds settings read from the environment.
type Env struct {
	// NoColor disables ANSI styling (NO_COLOR, any value)
	NoColor bool

	// Width overrides the probed terminal width (ANIMAL_AGE_WIDTH)
	Width int
}

var (
	env     *Env
	envOnce sync.Once
)

// Get returns the process-wide environment snapshot, loading it once.
func Get() *Env {
	envOnce.Do(func() {
		env = load()
	})
	return env
}

// Reset clears the cached snapshot so the next Get reloads. Test hook.
func Reset() {
	envOnce = sync.Once{}
	env = nil
}

func load() *Env {
	e := &Env{}

	// https://no-color.org: presence, not value, disables color.
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		e.NoColor = true
	}

	if v := os.Getenv("ANIMAL_AGE_WIDTH"); v != "" {
		if w, err := strconv.Atoi(v); err == nil && w > 0 {
			e.Width = w
		}
	}

	return e
}
