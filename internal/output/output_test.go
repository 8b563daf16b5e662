package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteReport_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	var stdout bytes.Buffer
	if err := WriteReport(sampleReport(), "json", path, Options{}, &stdout); err != nil {
		t.Fatalf("WriteReport error: %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should stay empty, got %q", stdout.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("report file not written: %v", err)
	}
	if !strings.Contains(string(data), `"sourceA": "a/.editorconfig"`) {
		t.Errorf("report file content:\n%s", data)
	}
}

func TestWriteReport_Stdout(t *testing.T) {
	var stdout bytes.Buffer
	if err := WriteReport(sampleReport(), "markdown", "", Options{Limit: 40}, &stdout); err != nil {
		t.Fatalf("WriteReport error: %v", err)
	}
	if !strings.Contains(stdout.String(), "## .editorconfig comparison") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestWriteReport_Errors(t *testing.T) {
	dir := t.TempDir()

	if err := WriteReport(sampleReport(), "sarif", "", Options{}, &bytes.Buffer{}); err == nil {
		t.Error("unknown format should fail")
	}

	err := WriteReport(sampleReport(), "text", dir, Options{}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("writing to a directory path should fail")
	}
	if !strings.Contains(err.Error(), "creating output file") {
		t.Errorf("error = %v", err)
	}
}
