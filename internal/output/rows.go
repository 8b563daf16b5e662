package output

import "github.com/dshills/ecmerge/internal/compare"

// row is one rendered line of a section table.
type row struct {
	key    string
	status compare.Status
	a, b   string
}

// sectionRows flattens a section into rows: same, diff, onlyA, then onlyB.
func sectionRows(r compare.Result, limit int) []row {
	var rows []row
	add := func(ds []compare.Diff, status compare.Status) {
		for _, d := range ds {
			rows = append(rows, row{
				key:    d.Key,
				status: status,
				a:      Truncate(d.A(), limit),
				b:      Truncate(d.B(), limit),
			})
		}
	}
	add(r.Same, compare.StatusSame)
	add(r.Diff, compare.StatusDiff)
	add(r.OnlyA, compare.StatusOnlyA)
	add(r.OnlyB, compare.StatusOnlyB)
	return rows
}
