package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/joss/animal-age/internal/ansi"
	"github.com/joss/animal-age/internal/registry"
)

const listKeyWidth = 12

func (r *Renderer) initListStyles() {
	lr := lipgloss.NewRenderer(io.Discard)
	if r.colorEnabled {
		lr.SetColorProfile(termenv.ANSI)
	} else {
		lr.SetColorProfile(termenv.Ascii)
	}
	header := lr.NewStyle().Bold(true)
	key := lr.NewStyle().Foreground(lipgloss.Color("6"))
	// Style.Render is variadic; the fields take a single string.
	r.listHeader = func(s string) string { return header.Render(s) }
	r.listKey = func(s string) string { return key.Render(s) }
}

// List renders the registry in declaration order for --list output.
func (r *Renderer) List(profiles []registry.Profile) string {
	var sb strings.Builder
	sb.WriteString(r.listHeader("Available animals:"))
	sb.WriteString("\n\n")
	for _, p := range profiles {
		key := r.listKey(p.Key)
		pad := listKeyWidth - ansi.VisibleLength(key)
		if pad < 0 {
			pad = 0
		}
		fmt.Fprintf(&sb, "  %s%s - %s\n", key, strings.Repeat(" ", pad), p.DisplayName)
	}
	return sb.String()
}
