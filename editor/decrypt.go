package editor

import (
	"strings"

	"padbreak/core"
)

// Cell is one decrypted byte as shown on screen.
type Cell struct {
	Rune        rune
	Placeholder bool // byte is unknown or not printable
}

// printable reports whether b can be shown as is: a visible ASCII character
// or a space.
func printable(b byte) bool {
	return b >= 0x20 && b <= 0x7E
}

// DecryptRow decrypts one ciphertext with a partial key. Every byte yields a
// cell; bytes without a known key slot, or that decrypt to something
// unprintable, yield the placeholder.
func DecryptRow(key core.Key, ciphertext core.Ciphertext, placeholder rune) []Cell {
	cells := make([]Cell, len(ciphertext))
	for i, c := range ciphertext {
		if i < len(key) && key[i].Known {
			if p := key[i].Value ^ c; printable(p) {
				cells[i] = Cell{Rune: rune(p)}
				continue
			}
		}
		cells[i] = Cell{Rune: placeholder, Placeholder: true}
	}
	return cells
}

// DecryptedRows returns the partial decryption of every ciphertext in
// display order.
func (e *KeyEditor) DecryptedRows() [][]Cell {
	rows := make([][]Cell, len(e.ciphertexts))
	for i, c := range e.ciphertexts {
		rows[i] = DecryptRow(e.key, c, e.placeholder)
	}
	return rows
}

// Plaintexts returns the decrypted rows as strings.
func (e *KeyEditor) Plaintexts() []string {
	rows := e.DecryptedRows()
	res := make([]string, len(rows))
	for i, row := range rows {
		res[i] = CellsString(row)
	}
	return res
}

// CellsString joins the runes of a row of cells.
func CellsString(cells []Cell) string {
	var sb strings.Builder
	for _, c := range cells {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
