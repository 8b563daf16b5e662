package merge

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dshills/ecmerge/internal/compare"
)

// Options controls how merged output is written.
type Options struct {
	// LabelA and LabelB head the blocks of keys only one source defines.
	// The CLI uses the input paths.
	LabelA   string
	LabelB   string
	Resolver Resolver
}

// Write emits the merged sections to w. Every line ends in "\n".
func Write(w io.Writer, results []compare.Result, opts Options) error {
	if opts.Resolver == nil {
		opts.Resolver = Prefer(SideA)
	}
	ew := &errWriter{w: w}

	for _, r := range results {
		ew.line("")
		ew.line(r.Header)

		for _, d := range r.Same {
			ew.kv(d.Key, d.A())
		}

		if len(r.Diff) != 0 {
			ew.line("")
			ew.line("# conflict")
			for _, d := range r.Diff {
				side, err := opts.Resolver.Resolve(d)
				if err != nil {
					return fmt.Errorf("resolving %s %s: %w", r.Header, d.Key, err)
				}
				if side == SideB {
					ew.kv(d.Key, d.B())
				} else {
					ew.kv(d.Key, d.A())
				}
			}
		}

		if len(r.OnlyA) != 0 {
			ew.line("")
			ew.line("# " + opts.LabelA)
			for _, d := range r.OnlyA {
				ew.kv(d.Key, d.A())
			}
		}

		if len(r.OnlyB) != 0 {
			ew.line("")
			ew.line("# " + opts.LabelB)
			for _, d := range r.OnlyB {
				ew.kv(d.Key, d.B())
			}
		}

		if ew.err != nil {
			return ew.err
		}
	}

	return ew.err
}

// Merge resolves every conflict and returns the complete merged text.
// Nothing is returned if any resolution fails.
func Merge(results []compare.Result, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, results, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) line(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, "%s\n", s)
}

func (ew *errWriter) kv(key, value string) {
	ew.line(key + " = " + value)
}
