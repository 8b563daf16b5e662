package output

import (
	"io"
	"strings"

	"github.com/dshills/ecmerge/internal/compare"
)

// MarkdownWriter outputs the report as markdown tables.
type MarkdownWriter struct {
	Limit int
}

func (m *MarkdownWriter) Write(w io.Writer, report *compare.Report) error {
	ew := &errWriter{w: w}

	ew.printf("## .editorconfig comparison\n\n")
	ew.printf("`%s` vs `%s`\n\n", report.SourceA, report.SourceB)

	ew.printf("| same | diff | onlyA | onlyB |\n")
	ew.printf("|------|------|-------|-------|\n")
	ew.printf("| %d | %d | %d | %d |\n",
		report.Totals.Same, report.Totals.Diff, report.Totals.OnlyA, report.Totals.OnlyB)

	for _, r := range report.Sections {
		ew.printf("\n### `%s`\n\n", r.Header)

		rows := sectionRows(r, m.Limit)
		if len(rows) == 0 {
			ew.println("_No properties._")
			continue
		}

		ew.printf("| key | status | A | B |\n")
		ew.printf("|-----|--------|---|---|\n")
		for _, rw := range rows {
			ew.printf("| %s | %s | %s | %s |\n",
				mdCell(rw.key), rw.status, mdCell(rw.a), mdCell(rw.b))
		}
	}

	return ew.err
}

func mdCell(s string) string {
	if s == "" {
		return " "
	}
	return strings.ReplaceAll(s, "|", `\|`)
}
