// Package registry holds the static table of supported animal types.
package registry

import (
	"fmt"
	"strings"
)

// Profile describes one supported animal type. Profiles are immutable
// value records; the aging exponent parameterizes the conversion curve.
type Profile struct {
	Key           string
	DisplayName   string
	MaxLifespan   float64
	AgingExponent float64
}

// UnknownAnimalError reports a lookup miss for an animal key.
type UnknownAnimalError struct {
	Key string
}

func (e *UnknownAnimalError) Error() string {
	return fmt.Sprintf("unknown animal type: %s", e.Key)
}

// Registry is a read-only lookup table of animal profiles, built once at
// startup. Declaration order is preserved for listing and suggestion ranking.
type Registry struct {
	profiles []Profile
	byKey    map[string]int
}

// Exponents are calibrated so each curve reaches the 80-year human
// baseline at the species' maximum lifespan. See DESIGN.md.
var defaultProfiles = []Profile{
	{Key: "small_dog", DisplayName: "Small dog (e.g., terrier)", MaxLifespan: 16, AgingExponent: 0.5594},
	{Key: "medium_dog", DisplayName: "Medium dog (e.g., spaniel)", MaxLifespan: 14, AgingExponent: 0.6873},
	{Key: "big_dog", DisplayName: "Large dog (e.g., retriever)", MaxLifespan: 10, AgingExponent: 0.9268},
	{Key: "cat", DisplayName: "Domestic cat", MaxLifespan: 18, AgingExponent: 0.5663},
	{Key: "horse", DisplayName: "Horse", MaxLifespan: 30, AgingExponent: 0.6307},
	{Key: "pig", DisplayName: "Pig", MaxLifespan: 20, AgingExponent: 0.9031},
	{Key: "parakeet", DisplayName: "Parakeet / budgie", MaxLifespan: 10, AgingExponent: 0.85},
	{Key: "snake", DisplayName: "Common pet snake", MaxLifespan: 20, AgingExponent: 0.8778},
	{Key: "goldfish", DisplayName: "Goldfish", MaxLifespan: 15, AgingExponent: 0.9},
	{Key: "rabbit", DisplayName: "Rabbit", MaxLifespan: 12, AgingExponent: 0.6719},
	{Key: "hamster", DisplayName: "Hamster", MaxLifespan: 3, AgingExponent: 0.95},
}

// New builds the default registry.
func New() *Registry {
	return newFrom(defaultProfiles)
}

func newFrom(profiles []Profile) *Registry {
	r := &Registry{
		profiles: profiles,
		byKey:    make(map[string]int, len(profiles)),
	}
	for i, p := range profiles {
		if _, dup := r.byKey[p.Key]; dup {
			panic(fmt.Sprintf("registry: duplicate animal key %q", p.Key))
		}
		r.byKey[p.Key] = i
	}
	return r
}

// Normalize maps raw user input onto the registry key convention:
// surrounding whitespace trimmed, lowercased.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Lookup returns the profile for a normalized key.
func (r *Registry) Lookup(key string) (Profile, error) {
	i, ok := r.byKey[key]
	if !ok {
		return Profile{}, &UnknownAnimalError{Key: key}
	}
	return r.profiles[i], nil
}

// Keys returns all animal keys in declaration order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.profiles))
	for i, p := range r.profiles {
		keys[i] = p.Key
	}
	return keys
}

// Profiles returns all profiles in declaration order.
func (r *Registry) Profiles() []Profile {
	out := make([]Profile, len(r.profiles))
	copy(out, r.profiles)
	return out
}
