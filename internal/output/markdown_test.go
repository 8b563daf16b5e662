package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dshills/ecmerge/internal/compare"
	"github.com/dshills/ecmerge/internal/editorconfig"
)

func TestMarkdownWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &MarkdownWriter{Limit: 40}
	if err := w.Write(&buf, sampleReport()); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "## .editorconfig comparison") {
		t.Error("Missing heading")
	}
	if !strings.Contains(out, "| 1 | 1 | 2 | 1 |") {
		t.Errorf("Summary row wrong:\n%s", out)
	}
	if !strings.Contains(out, "### `[*]`") {
		t.Error("Missing section heading")
	}
	if !strings.Contains(out, "| indent_size | diff | 2 | 4 |") {
		t.Error("Missing diff row")
	}
	if !strings.Contains(out, "| only_in_b | onlyB |   | y |") {
		t.Errorf("onlyB row should have an empty A cell:\n%s", out)
	}
}

func TestMarkdownWriter_EscapesPipes(t *testing.T) {
	a := editorconfig.Parse("[*]\nk = a|b\n")
	report := compare.NewReport("a", "b", compare.CompareAll(a, nil))

	var buf bytes.Buffer
	if err := (&MarkdownWriter{}).Write(&buf, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if !strings.Contains(buf.String(), `a\|b`) {
		t.Error("pipe should be escaped")
	}
}
