package editorconfig

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var headerPattern = regexp.MustCompile(`^\[.+\]$`)

var lineBreak = regexp.MustCompile(`\r\n|\n`)

// byteOrderMark is dropped from the start of files; editors on Windows
// commonly write one.
const byteOrderMark = "\ufeff"

// ReadError reports a config file that could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Parse converts raw config text into sections, ordered by the first
// appearance of each distinct header.
func Parse(text string) []*Section {
	var result []*Section
	index := make(map[string]*Section)
	var current *Section

	for _, line := range lineBreak.Split(text, -1) {
		if strings.HasPrefix(line, "#") {
			continue
		}
		if headerPattern.MatchString(line) {
			s, ok := index[line]
			if !ok {
				s = NewSection(line)
				index[line] = s
				result = append(result, s)
			}
			current = s
			continue
		}
		if current == nil {
			continue
		}

		kv := strings.Split(line, "=")
		if len(kv) != 2 {
			continue
		}
		current.Properties.Set(strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1]))
	}

	return result
}

// ParseFile reads the file at path as UTF-8 text, without a leading byte order
// mark, and parses it.
func ParseFile(path string) ([]*Section, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return Parse(strings.TrimPrefix(string(data), byteOrderMark)), nil
}

// Format serializes sections as header lines followed by "key = value" lines.
// Parsing the result yields sections equal to the input.
func Format(sections []*Section) string {
	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(s.Header)
		b.WriteString("\n")
		for _, k := range s.Properties.Keys() {
			v, _ := s.Properties.Get(k)
			fmt.Fprintf(&b, "%s = %s\n", k, v)
		}
	}
	return b.String()
}
