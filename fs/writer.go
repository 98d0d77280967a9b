// Package fs writes conversion output to the local file system.
package fs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ducflair/ducpdf"
)

// OutputPath returns the default container path for the source document at
// input: its base name with the DUC extension, inside dir. An empty dir
// keeps the directory of input.
// Example: docs/report.pdf → out/report.duc
func OutputPath(input, dir string) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, base+ducpdf.Extension)
}

// DebugPath returns the JSON debug dump path next to a container path.
// Example: out/report.duc → out/report.json
func DebugPath(output string) string {
	return strings.TrimSuffix(output, ducpdf.Extension) + ".json"
}

// Writer writes containers and debug dumps.
// Files are written to a temporary sibling and renamed into place, so a
// failed write never leaves a truncated file behind.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteContainer writes data verbatim to path, appending the DUC extension
// if it is missing. Returns the path actually written.
func (w *Writer) WriteContainer(path string, data []byte) (string, error) {
	path = ducpdf.OutputPath(path)
	if err := writeFile(path, data); err != nil {
		return "", err
	}
	return path, nil
}

// WriteDebugJSON writes records to path as an indented JSON array.
func (w *Writer) WriteDebugJSON(path string, records []ducpdf.DebugRecord) error {
	data, err := FormatDebugJSON(records)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

// FormatDebugJSON renders records as an indented UTF-8 JSON array.
// Non-ASCII text and HTML characters are written unescaped.
func FormatDebugJSON(records []ducpdf.DebugRecord) ([]byte, error) {
	if records == nil {
		records = []ducpdf.DebugRecord{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("failed to encode debug records: %w", err)
	}
	return buf.Bytes(), nil
}

func writeFile(path string, data []byte) error {
	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	// Atomically rename temp to final
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
