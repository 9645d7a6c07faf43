// Package batch orchestrates one invocation: resolve each requested animal,
// convert, and dispatch to the renderer.
package batch

import (
	"errors"
	"io"

	"github.com/joss/animal-age/internal/convert"
	"github.com/joss/animal-age/internal/fuzzy"
	"github.com/joss/animal-age/internal/registry"
	"github.com/joss/animal-age/internal/render"
)

// Mode selects the output format.
type Mode int

const (
	ModeBar Mode = iota
	ModeJSON
)

// maxSuggestions bounds the ranked suggestion list for an unknown key.
const maxSuggestions = 3

// ErrNoAnimals reports an empty batch.
var ErrNoAnimals = errors.New("no animal types given")

// Outcome is the per-key result of a batch. Exactly one of Result or Err is
// set; Suggestions accompany an unknown-animal error.
type Outcome struct {
	Raw         string
	Key         string
	Result      *convert.Result
	Suggestions []fuzzy.Suggestion
	Err         error
}

// Orchestrator resolves, converts, and renders a batch of animal keys
// against a shared age.
type Orchestrator struct {
	reg      *registry.Registry
	renderer *render.Renderer
}

// New creates an orchestrator over an immutable registry.
func New(reg *registry.Registry, renderer *render.Renderer) *Orchestrator {
	return &Orchestrator{reg: reg, renderer: renderer}
}

// Process resolves every raw key in order against the shared age. A negative
// age or an empty key list fails the whole batch; an unknown key only fails
// its own entry, which carries ranked suggestions instead of a result.
// Duplicates are processed independently; output order is input order.
func (o *Orchestrator) Process(rawKeys []string, age float64) ([]Outcome, error) {
	if len(rawKeys) == 0 {
		return nil, ErrNoAnimals
	}
	if err := convert.ValidateAge(age); err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, 0, len(rawKeys))
	for _, raw := range rawKeys {
		key := registry.Normalize(raw)
		out := Outcome{Raw: raw, Key: key}

		profile, err := o.reg.Lookup(key)
		if err != nil {
			out.Err = err
			out.Suggestions = fuzzy.Suggest(key, o.reg.Keys(), maxSuggestions)
			outcomes = append(outcomes, out)
			continue
		}

		result, err := convert.Convert(age, profile)
		if err != nil {
			// Age was validated up front; any failure here fails
			// the batch rather than being silently skipped.
			return nil, err
		}
		out.Result = &result
		outcomes = append(outcomes, out)
	}
	return outcomes, nil
}

// Run processes the batch and writes rendered output: results to out,
// unknown-animal messages to errOut. It returns the number of keys that
// could not be resolved; the caller maps that onto the exit code.
func (o *Orchestrator) Run(out, errOut io.Writer, rawKeys []string, age float64, mode Mode) (int, error) {
	outcomes, err := o.Process(rawKeys, age)
	if err != nil {
		return 0, err
	}

	unresolved := 0
	results := make([]convert.Result, 0, len(outcomes))
	for _, oc := range outcomes {
		if oc.Err != nil {
			unresolved++
			io.WriteString(errOut, o.renderer.Unknown(oc.Raw, oc.Suggestions))
			continue
		}
		results = append(results, *oc.Result)
	}

	if len(results) == 0 {
		return unresolved, nil
	}

	switch mode {
	case ModeJSON:
		s, err := o.renderer.JSON(results)
		if err != nil {
			return unresolved, err
		}
		io.WriteString(out, s)
	default:
		io.WriteString(out, o.renderer.Results(results))
	}

	return unresolved, nil
}
