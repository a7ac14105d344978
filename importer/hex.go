// Package importer loads ciphertexts from hex-encoded text files.
package importer

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"padbreak/core"
)

// ErrInvalidHex is wrapped by every ParseError.
var ErrInvalidHex = errors.New("invalid hexadecimal string")

// ParseError reports a line that is not a valid hex ciphertext.
type ParseError struct {
	Line   int // 1-based
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Line, ErrInvalidHex, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidHex
}

// ParseHex reads one hex ciphertext per line. Surrounding whitespace is
// trimmed, and blank lines and lines starting with '#' are skipped.
func ParseHex(r io.Reader) ([]core.Ciphertext, error) {
	var res []core.Ciphertext

	scanner := bufio.NewScanner(r)
	// Ciphertexts can be long single lines
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		c, err := decodeLine(line)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Reason: err.Error()}
		}
		res = append(res, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading ciphertexts: %w", err)
	}

	return res, nil
}

func decodeLine(line string) (core.Ciphertext, error) {
	if len(line)%2 != 0 {
		return nil, fmt.Errorf("odd length %d", len(line))
	}
	b, err := hex.DecodeString(line)
	if err != nil {
		var invalid hex.InvalidByteError
		if errors.As(err, &invalid) {
			return nil, fmt.Errorf("unexpected character %q", rune(invalid))
		}
		return nil, err
	}
	return core.Ciphertext(b), nil
}

// LoadFile reads a ciphertext file.
func LoadFile(filename string) ([]core.Ciphertext, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	res, err := ParseHex(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return res, nil
}
