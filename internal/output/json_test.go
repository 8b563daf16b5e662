package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dshills/ecmerge/internal/compare"
	"github.com/dshills/ecmerge/internal/editorconfig"
)

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &JSONWriter{}
	if err := w.Write(&buf, sampleReport()); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}

	if parsed["sourceA"] != "a/.editorconfig" {
		t.Errorf("sourceA = %v", parsed["sourceA"])
	}
	totals, ok := parsed["totals"].(map[string]interface{})
	if !ok {
		t.Fatal("totals missing")
	}
	if totals["diff"] != float64(1) {
		t.Errorf("totals.diff = %v, want 1", totals["diff"])
	}

	sections, ok := parsed["sections"].([]interface{})
	if !ok || len(sections) != 2 {
		t.Fatalf("sections = %v, want 2 entries", parsed["sections"])
	}
	first := sections[0].(map[string]interface{})
	onlyA := first["onlyA"].([]interface{})
	entry := onlyA[0].(map[string]interface{})
	if _, has := entry["valueB"]; has {
		t.Error("absent valueB should be omitted")
	}
}

func TestJSONWriter_NoHTMLEscaping(t *testing.T) {
	a := editorconfig.Parse("[*]\nspelling_exclusions = <generated> & vendor\n")
	report := compare.NewReport("a", "b", compare.CompareAll(a, nil))

	var buf bytes.Buffer
	if err := (&JSONWriter{}).Write(&buf, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if !strings.Contains(buf.String(), `"valueA": "<generated> & vendor"`) {
		t.Errorf("value should be written verbatim:\n%s", buf.String())
	}
	if !strings.HasSuffix(buf.String(), "}\n") {
		t.Error("output should end with a newline")
	}
}
