package compare

import "github.com/dshills/ecmerge/internal/editorconfig"

// Status names the bucket a property falls into.
type Status string

const (
	StatusSame  Status = "same"
	StatusDiff  Status = "diff"
	StatusOnlyA Status = "onlyA"
	StatusOnlyB Status = "onlyB"
)

// Diff is one property's value on each side. A nil value means the key is
// absent on that side.
type Diff struct {
	Key    string  `json:"key"`
	ValueA *string `json:"valueA,omitempty"`
	ValueB *string `json:"valueB,omitempty"`
}

// A returns the A-side value, or "" when absent.
func (d Diff) A() string {
	if d.ValueA == nil {
		return ""
	}
	return *d.ValueA
}

// B returns the B-side value, or "" when absent.
func (d Diff) B() string {
	if d.ValueB == nil {
		return ""
	}
	return *d.ValueB
}

// Result is the comparison of one section header.
type Result struct {
	Header string `json:"header"`
	Same   []Diff `json:"same"`
	Diff   []Diff `json:"diff"`
	OnlyA  []Diff `json:"onlyA"`
	OnlyB  []Diff `json:"onlyB"`
}

func newResult(header string) Result {
	return Result{
		Header: header,
		Same:   []Diff{},
		Diff:   []Diff{},
		OnlyA:  []Diff{},
		OnlyB:  []Diff{},
	}
}

// Counts returns the size of each bucket.
func (r Result) Counts() Counts {
	return Counts{
		Same:  len(r.Same),
		Diff:  len(r.Diff),
		OnlyA: len(r.OnlyA),
		OnlyB: len(r.OnlyB),
	}
}

// Counts holds per-bucket totals.
type Counts struct {
	Same  int `json:"same"`
	Diff  int `json:"diff"`
	OnlyA int `json:"onlyA"`
	OnlyB int `json:"onlyB"`
}

// Differs reports whether anything other than same entries was counted.
func (c Counts) Differs() bool {
	return c.Diff > 0 || c.OnlyA > 0 || c.OnlyB > 0
}

// Totals sums the counts of all results.
func Totals(results []Result) Counts {
	var c Counts
	for _, r := range results {
		rc := r.Counts()
		c.Same += rc.Same
		c.Diff += rc.Diff
		c.OnlyA += rc.OnlyA
		c.OnlyB += rc.OnlyB
	}
	return c
}

// CompareAll matches sections of a and b by header and compares each pair.
func CompareAll(a, b []*editorconfig.Section) []Result {
	byHeaderA := index(a)
	byHeaderB := index(b)

	var results []Result

	for _, sa := range a {
		if sb, ok := byHeaderB[sa.Header]; ok {
			results = append(results, CompareSection(sa, sb))
		}
	}

	for _, sa := range a {
		if _, ok := byHeaderB[sa.Header]; ok {
			continue
		}
		r := newResult(sa.Header)
		for _, k := range sa.Properties.Keys() {
			v, _ := sa.Properties.Get(k)
			r.OnlyA = append(r.OnlyA, Diff{Key: k, ValueA: &v})
		}
		results = append(results, r)
	}

	for _, sb := range b {
		if _, ok := byHeaderA[sb.Header]; ok {
			continue
		}
		r := newResult(sb.Header)
		for _, k := range sb.Properties.Keys() {
			v, _ := sb.Properties.Get(k)
			r.OnlyB = append(r.OnlyB, Diff{Key: k, ValueB: &v})
		}
		results = append(results, r)
	}

	return results
}

// CompareSection compares two sections that share a header. Same, Diff and
// OnlyA follow a's key order; OnlyB follows b's.
func CompareSection(a, b *editorconfig.Section) Result {
	r := newResult(a.Header)

	for _, k := range a.Properties.Keys() {
		va, _ := a.Properties.Get(k)
		vb, ok := b.Properties.Get(k)
		if !ok {
			r.OnlyA = append(r.OnlyA, Diff{Key: k, ValueA: &va})
			continue
		}
		d := Diff{Key: k, ValueA: &va, ValueB: &vb}
		if va == vb {
			r.Same = append(r.Same, d)
		} else {
			r.Diff = append(r.Diff, d)
		}
	}

	for _, k := range b.Properties.Keys() {
		if a.Properties.Has(k) {
			continue
		}
		vb, _ := b.Properties.Get(k)
		r.OnlyB = append(r.OnlyB, Diff{Key: k, ValueB: &vb})
	}

	return r
}

// index maps headers to sections. Parse never yields duplicate headers, but
// the first occurrence wins if a caller builds such a slice by hand.
func index(sections []*editorconfig.Section) map[string]*editorconfig.Section {
	m := make(map[string]*editorconfig.Section, len(sections))
	for _, s := range sections {
		if _, ok := m[s.Header]; !ok {
			m[s.Header] = s
		}
	}
	return m
}
