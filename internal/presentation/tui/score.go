// Package tui renders generation results for the terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/descant"
)

// RenderScore lays out both voices as aligned columns, counterpoint on the
// side it was generated for. Colors degrade gracefully on dumb terminals
// via termenv's profile detection.
func RenderScore(score *descant.Score) string {
	p := termenv.ColorProfile()

	width := 0
	for _, cell := range append(append([]string{}, score.Cantus...), score.Counterpoint...) {
		if len(cell) > width {
			width = len(cell)
		}
	}

	pad := func(cells []string) []string {
		out := make([]string, len(cells))
		for i, c := range cells {
			out[i] = fmt.Sprintf("%-*s", width, c)
		}
		return out
	}

	counterpoint := termenv.String("cpt  " + strings.Join(pad(score.Counterpoint), "  ")).
		Foreground(p.Color("#c084fc")).String()
	cantus := termenv.String("c.f. " + strings.Join(pad(score.Cantus), "  ")).
		Foreground(p.Color("#818cf8")).String()

	var b strings.Builder
	if score.Direction == "below" {
		b.WriteString(cantus)
		b.WriteString("\n")
		b.WriteString(counterpoint)
	} else {
		b.WriteString(counterpoint)
		b.WriteString("\n")
		b.WriteString(cantus)
	}
	b.WriteString("\n")
	return b.String()
}

// ModesMarkdown builds the markdown catalog of modes for glamour rendering.
func ModesMarkdown(modes []string) string {
	var b strings.Builder
	b.WriteString("# Supported Modes\n\n")
	b.WriteString("Pass any of these to `--mode` (spaces and hyphens are interchangeable):\n\n")
	for _, m := range modes {
		b.WriteString(fmt.Sprintf("- `%s`\n", m))
	}
	return b.String()
}
