// Package convert computes human-equivalent ages and lifespan progress.
package convert

import (
	"fmt"
	"math"

	"github.com/joss/animal-age/internal/registry"
)

// HumanMaxLifespan is the fixed human baseline every species curve is
// anchored to.
const HumanMaxLifespan = 80.0

// InvalidAgeError reports a negative input age.
type InvalidAgeError struct {
	Age float64
}

func (e *InvalidAgeError) Error() string {
	return fmt.Sprintf("invalid age: %g (age cannot be negative)", e.Age)
}

// Result is one pet's conversion outcome. Progress ratios are raw and may
// exceed 1.0; display clamping is the renderer's job.
type Result struct {
	Animal            string  `json:"animal"`
	Age               float64 `json:"age"`
	HumanAge          float64 `json:"human_age"`
	AnimalMaxLifespan float64 `json:"animal_max_lifespan"`
	HumanMaxLifespan  float64 `json:"human_max_lifespan"`
	AnimalProgress    float64 `json:"animal_progress"`
	HumanProgress     float64 `json:"human_progress"`
}

// Curve is the shared conversion shape: a power law anchored at zero and at
// the 80-year human baseline. Exponents below 1 make early years count
// disproportionately; the exponent is the per-species tuning parameter.
type Curve struct {
	Exponent float64
}

// HumanYears maps a real age onto the human scale for a species with the
// given maximum lifespan. Strictly increasing in age, zero at zero, and
// exactly HumanMaxLifespan at maxLifespan.
func (c Curve) HumanYears(age, maxLifespan float64) float64 {
	return HumanMaxLifespan * math.Pow(age/maxLifespan, c.Exponent)
}

// ValidateAge rejects negative ages. Zero is a valid age.
func ValidateAge(age float64) error {
	if age < 0 {
		return &InvalidAgeError{Age: age}
	}
	return nil
}

// Convert computes the conversion result for one pet. Human-equivalent age
// is rounded to one decimal before the human progress ratio is derived, so
// displayed and structured values agree.
func Convert(age float64, p registry.Profile) (Result, error) {
	if err := ValidateAge(age); err != nil {
		return Result{}, err
	}

	curve := Curve{Exponent: p.AgingExponent}
	humanAge := round1(curve.HumanYears(age, p.MaxLifespan))

	return Result{
		Animal:            p.Key,
		Age:               age,
		HumanAge:          humanAge,
		AnimalMaxLifespan: p.MaxLifespan,
		HumanMaxLifespan:  HumanMaxLifespan,
		AnimalProgress:    age / p.MaxLifespan,
		HumanProgress:     humanAge / HumanMaxLifespan,
	}, nil
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
