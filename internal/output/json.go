package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dshills/ecmerge/internal/compare"
)

// JSONWriter streams the report as indented JSON. Values are written in full
// and verbatim: no truncation and no HTML escaping of <, > or &.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, report *compare.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encoding report as JSON: %w", err)
	}
	return nil
}
