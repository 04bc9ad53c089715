package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/muesli/termenv"

	"github.com/zofmath/zof/pkg/domain"
)

const ruleWidth = 70

// RenderResult writes the iteration table and summary for a solve
// outcome. Output is plain text with light termenv styling; columns are
// right-aligned scientific notation.
func RenderResult(w io.Writer, res *domain.Result) {
	p := termenv.ColorProfile()
	heavy := strings.Repeat("=", ruleWidth)
	light := strings.Repeat("-", ruleWidth)

	fmt.Fprintln(w)
	fmt.Fprintln(w, heavy)
	fmt.Fprintf(w, "Method: %s\n", termenv.String(res.Method.DisplayName()).Bold())
	fmt.Fprintln(w, heavy)

	fmt.Fprintln(w, "\nIteration Details:")
	fmt.Fprintln(w, light)

	headers := make([]string, 0, len(res.Trace.Columns)+2)
	headers = append(headers, "iteration")
	headers = append(headers, res.Trace.Columns...)
	headers = append(headers, "error")
	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = pad(h)
	}
	fmt.Fprintln(w, strings.Join(cells, " | "))
	fmt.Fprintln(w, light)

	for _, s := range res.Trace.Steps {
		row := make([]string, 0, len(headers))
		row = append(row, pad(strconv.Itoa(s.Iteration)))
		for _, v := range s.Values {
			row = append(row, pad(fmt.Sprintf("%.6e", v)))
		}
		row = append(row, pad(fmt.Sprintf("%.6e", s.Error)))
		fmt.Fprintln(w, strings.Join(row, " | "))
	}
	fmt.Fprintln(w, light)

	root := termenv.String(fmt.Sprintf("%.10f", res.Root)).Foreground(p.Color("#4ade80")).Bold()
	fmt.Fprintf(w, "\nFinal Root: %s\n", root)
	fmt.Fprintf(w, "Final Error: %.6e\n", res.FinalError)
	fmt.Fprintf(w, "Iterations: %d\n", res.Iterations)

	if res.Warning != "" {
		warn := termenv.String("Warning: " + res.Warning).Foreground(p.Color("#facc15"))
		fmt.Fprintf(w, "\n%s\n", warn)
	}
	fmt.Fprintln(w, heavy)
	fmt.Fprintln(w)
}

// RenderError writes a solve failure the same way the table renders,
// so interactive users see one consistent frame.
func RenderError(w io.Writer, method domain.Method, err error) {
	p := termenv.ColorProfile()
	heavy := strings.Repeat("=", ruleWidth)
	fmt.Fprintln(w)
	fmt.Fprintln(w, heavy)
	fmt.Fprintf(w, "Method: %s\n", termenv.String(method.DisplayName()).Bold())
	fmt.Fprintln(w, heavy)
	msg := termenv.String("Error: " + err.Error()).Foreground(p.Color("#f87171"))
	fmt.Fprintf(w, "\n%s\n", msg)
	fmt.Fprintln(w, heavy)
	fmt.Fprintln(w)
}

func pad(s string) string {
	n := utf8.RuneCountInString(s)
	if n >= 12 {
		return s
	}
	return strings.Repeat(" ", 12-n) + s
}
