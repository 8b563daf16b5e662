package output

import (
	"fmt"
	"io"
	"os"

	"github.com/dshills/ecmerge/internal/compare"
)

// Formats lists the accepted format names.
var Formats = []string{"text", "json", "markdown"}

// Options tunes how values are rendered.
type Options struct {
	// Limit is the maximum display width of a value; 0 disables truncation.
	Limit int
	// Color enables ANSI colours in text output.
	Color bool
}

// Writer writes a report in a specific format.
type Writer interface {
	Write(w io.Writer, report *compare.Report) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string, opts Options) (Writer, error) {
	switch format {
	case "text", "":
		return &TextWriter{Limit: opts.Limit, Color: opts.Color}, nil
	case "json":
		return &JSONWriter{}, nil
	case "markdown", "md":
		return &MarkdownWriter{Limit: opts.Limit}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteReport writes the report to outPath, or to stdout when outPath is empty.
// A failure to close the report file is returned as well.
func WriteReport(report *compare.Report, format, outPath string, opts Options, stdout io.Writer) (err error) {
	writer, err := GetWriter(format, opts)
	if err != nil {
		return err
	}

	if outPath == "" {
		return writer.Write(stdout, report)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()

	return writer.Write(f, report)
}
