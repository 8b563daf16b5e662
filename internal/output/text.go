package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/dshills/ecmerge/internal/compare"
)

// TextWriter outputs a summary table followed by one table per section.
type TextWriter struct {
	Limit int
	Color bool
}

func (t *TextWriter) Write(w io.Writer, report *compare.Report) error {
	ew := &errWriter{w: w}
	paint := t.painter(w)

	ew.printf("Comparing %s and %s\n\n", report.SourceA, report.SourceB)

	summary := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("same", "diff", "onlyA", "onlyB").
		Row(
			strconv.Itoa(report.Totals.Same),
			strconv.Itoa(report.Totals.Diff),
			strconv.Itoa(report.Totals.OnlyA),
			strconv.Itoa(report.Totals.OnlyB),
		)
	ew.println(summary.String())

	for _, r := range report.Sections {
		ew.printf("\n%s\n", r.Header)

		rows := sectionRows(r, t.Limit)
		if len(rows) == 0 {
			ew.println("(no properties)")
			continue
		}

		tbl := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("key", "status", "A", "B")
		for _, rw := range rows {
			tbl.Row(rw.key, paint(rw.status), rw.a, rw.b)
		}
		ew.println(tbl.String())
	}

	return ew.err
}

// painter returns a function that renders a status tag, coloured when
// t.Color is set.
func (t *TextWriter) painter(w io.Writer) func(compare.Status) string {
	if !t.Color {
		return func(s compare.Status) string { return string(s) }
	}
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI)
	styles := map[compare.Status]lipgloss.Style{
		compare.StatusSame:  r.NewStyle().Foreground(lipgloss.Color("2")),
		compare.StatusDiff:  r.NewStyle().Foreground(lipgloss.Color("1")),
		compare.StatusOnlyA: r.NewStyle().Foreground(lipgloss.Color("3")),
		compare.StatusOnlyB: r.NewStyle().Foreground(lipgloss.Color("6")),
	}
	return func(s compare.Status) string {
		return styles[s].Render(string(s))
	}
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
