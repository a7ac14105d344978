// Package export writes the recovered key and plaintexts to text-based formats
package export

import (
	"fmt"
	"os"

	"padbreak/core"
)

// Format represents an export format
type Format string

const (
	// FormatJSON exports a JSON document (default)
	FormatJSON Format = "json"
	// FormatText exports the hex key followed by one plaintext per line
	FormatText Format = "text"
)

// Result is what gets persisted at the end of a session.
type Result struct {
	Key        string   `json:"key"`    // hex, unknown slots as a doubled placeholder
	Known      int      `json:"known"`  // number of known key bytes
	Length     int      `json:"length"` // number of key slots
	Plaintexts []string `json:"plaintexts"`
}

// NewResult builds a result from the editor state.
func NewResult(key core.Key, plaintexts []string, placeholder string) *Result {
	if plaintexts == nil {
		plaintexts = []string{}
	}
	return &Result{
		Key:        key.Hex(placeholder),
		Known:      key.KnownCount(),
		Length:     len(key),
		Plaintexts: plaintexts,
	}
}

// Exporter interface for different export formats
type Exporter interface {
	// Export converts a result to the target format
	Export(r *Result) (string, error)
	// GetFileExtension returns the recommended file extension for this format
	GetFileExtension() string
	// GetFormatName returns a human-readable name for this format
	GetFormatName() string
}

// NewExporter creates an exporter for the specified format
func NewExporter(format Format) (Exporter, error) {
	switch format {
	case FormatJSON:
		return NewJSONExporter(), nil
	case FormatText:
		return NewTextExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "text", "txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// GetAvailableFormats returns a list of all available export formats
func GetAvailableFormats() []Format {
	return []Format{
		FormatJSON,
		FormatText,
	}
}

// DefaultBaseName is the output file name, without extension, used when
// none is given.
const DefaultBaseName = "result"

// DefaultOutput returns the output file name for format: DefaultBaseName
// with the exporter's extension.
func DefaultOutput(format Format) (string, error) {
	exporter, err := NewExporter(format)
	if err != nil {
		return "", err
	}
	return DefaultBaseName + exporter.GetFileExtension(), nil
}

// WriteFile exports r with the given format and writes it to filename.
func WriteFile(filename string, format Format, r *Result) error {
	exporter, err := NewExporter(format)
	if err != nil {
		return err
	}
	return Write(filename, exporter, r)
}

// Write exports r with exporter and writes it to filename.
func Write(filename string, exporter Exporter, r *Result) error {
	output, err := exporter.Export(r)
	if err != nil {
		return fmt.Errorf("exporting result: %w", err)
	}

	if err := os.WriteFile(filename, []byte(output), 0644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}
