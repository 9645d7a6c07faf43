// Package render formats conversion results for terminal and JSON output.
// Presentation only: raw progress ratios stay unclamped in the data model,
// clamping here is purely visual.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"

	"github.com/joss/animal-age/internal/ansi"
	"github.com/joss/animal-age/internal/convert"
	"github.com/joss/animal-age/internal/fuzzy"
)

const (
	// maxBarWidth caps the bar regardless of terminal size.
	maxBarWidth = 50

	// barGutter is the space reserved around the bar for the label
	// separator and the trailing percentage.
	barGutter = 8

	// overageThreshold triggers the lifespan warning: age beyond
	// 150% of the species maximum.
	overageThreshold = 1.5

	minLabelWidth = 10
)

// Renderer formats output with a fixed color policy and terminal width.
type Renderer struct {
	colorEnabled bool
	termWidth    int

	cyan   *color.Color
	yellow *color.Color
	red    *color.Color

	listHeader func(string) string
	listKey    func(string) string
}

// New creates a renderer. Color is decided once up front, never sniffed from
// the output stream, so rendering is deterministic. A non-positive width
// falls back to 80 columns.
func New(colorEnabled bool, termWidth int) *Renderer {
	if termWidth <= 0 {
		termWidth = 80
	}
	r := &Renderer{
		colorEnabled: colorEnabled,
		termWidth:    termWidth,
		cyan:         color.New(color.FgCyan),
		yellow:       color.New(color.FgYellow),
		red:          color.New(color.FgRed),
	}
	for _, c := range []*color.Color{r.cyan, r.yellow, r.red} {
		if colorEnabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	r.initListStyles()
	return r
}

// Results renders the human-readable block: one summary line per pet, then
// paired lifespan bars. The human-scale bar is the primary axis; both bars
// are visually clamped at 100% while the underlying ratios stay raw.
func (r *Renderer) Results(results []convert.Result) string {
	if len(results) == 0 {
		return ""
	}

	var sb strings.Builder

	for _, res := range results {
		fmt.Fprintf(&sb, "%g years old %s ≈ %.1f human years\n", res.Age, res.Animal, res.HumanAge)
	}

	labelWidth := minLabelWidth
	for _, res := range results {
		humanLabel := r.humanLabel(res, len(results))
		if n := len(humanLabel); n > labelWidth {
			labelWidth = n
		}
		if n := len(res.Animal); n > labelWidth {
			labelWidth = n
		}
	}

	sb.WriteString("\nLife Progress:\n\n")
	for i, res := range results {
		r.writeBar(&sb, r.humanLabel(res, len(results)), math.Min(res.HumanAge, res.HumanMaxLifespan), res.HumanMaxLifespan, labelWidth)
		r.writeBar(&sb, res.Animal, math.Min(res.Age, res.AnimalMaxLifespan), res.AnimalMaxLifespan, labelWidth)
		if res.AnimalProgress > overageThreshold {
			sb.WriteString(r.yellow.Sprintf("Warning: age %g exceeds the typical %s lifespan of %g years.", res.Age, res.Animal, res.AnimalMaxLifespan))
			sb.WriteString("\n")
		}
		if i+1 < len(results) {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// Unknown renders the error message for an unresolvable key, naming the
// closest suggestion when one exists.
func (r *Renderer) Unknown(raw string, suggestions []fuzzy.Suggestion) string {
	var sb strings.Builder
	if len(suggestions) > 0 {
		fmt.Fprintf(&sb, "Unknown animal type: %s. Did you mean '%s'?\n", raw, suggestions[0].Key)
	} else {
		fmt.Fprintf(&sb, "Unknown animal type: %s\n", raw)
	}
	sb.WriteString("Use --list to view valid options.\n")
	return sb.String()
}

func (r *Renderer) humanLabel(res convert.Result, total int) string {
	if total == 1 {
		return "Human"
	}
	return fmt.Sprintf("human(%s)", res.Animal)
}

// writeBar emits one proportional bar line: padded label, fill, percentage.
func (r *Renderer) writeBar(sb *strings.Builder, label string, value, max float64, labelWidth int) {
	available := r.termWidth - labelWidth - barGutter
	if available < 0 {
		available = 0
	}
	total := available
	if total > maxBarWidth {
		total = maxBarWidth
	}

	pct := value / max
	filled := int(pct * float64(total))
	if filled > total {
		filled = total
	}
	empty := total - filled

	bar := strings.Repeat("=", filled) + strings.Repeat(" ", empty)
	bar = r.barColor(pct).Sprint(bar)

	// Pad by visible length so colored bars line up with plain ones.
	pad := labelWidth - ansi.VisibleLength(label)
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(sb, "%s%s |%s| %3.0f%%\n", label, strings.Repeat(" ", pad), bar, pct*100)
}

func (r *Renderer) barColor(pct float64) *color.Color {
	switch {
	case pct >= 0.8:
		return r.red
	case pct >= 0.6:
		return r.yellow
	default:
		return r.cyan
	}
}
