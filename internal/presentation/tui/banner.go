package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the ZOF ASCII banner with a teal gradient to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{`  _____________  ______`, "#2dd4bf"},
		{` /__  / __ \__ \/ ____/`, "#34d399"},
		{`   / / / / /_/ / /_    `, "#4ade80"},
		{`  / /_/ /_/ __ / __/   `, "#a3e635"},
		{` /____|____/_/ /_/     `, "#facc15"},
	}
	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	sub := termenv.String("  zero of functions solver " + version).Faint()
	fmt.Fprintln(w, sub)
	fmt.Fprintln(w)
}
