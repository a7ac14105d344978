package export

import (
	"fmt"
	"strings"
)

// TextExporter writes the key on the first line and one plaintext per
// following line.
type TextExporter struct{}

// NewTextExporter creates a new plain text exporter
func NewTextExporter() *TextExporter {
	return &TextExporter{}
}

// Export converts a result to plain text
func (e *TextExporter) Export(r *Result) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "key: %s (%d/%d known)\n", r.Key, r.Known, r.Length)
	for _, p := range r.Plaintexts {
		sb.WriteString(p)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// GetFileExtension returns the file extension for plain text
func (e *TextExporter) GetFileExtension() string {
	return ".txt"
}

// GetFormatName returns the format name
func (e *TextExporter) GetFormatName() string {
	return "Text"
}
