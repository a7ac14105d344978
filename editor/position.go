package editor

// RowsFor returns the number of display rows a ciphertext of the given
// length occupies at wrap width maxX. A row is always reserved after the
// last full one, even when the length is an exact multiple. maxX must be
// at least 1.
func RowsFor(length, maxX int) int {
	return length/maxX + 1
}

// MapPosition translates a cursor cell into a ciphertext index and a byte
// offset. Ciphertexts are stacked in the given order, each wrapped at maxX.
// A row below every ciphertext falls back to (y, x) so callers can reject it
// with a bounds check instead of panicking.
func MapPosition(lengths []int, maxX, x, y int) (text, offset int) {
	if maxX < 1 {
		return y, x
	}

	start := 0
	for i, length := range lengths {
		next := start + RowsFor(length, maxX)
		if y < next {
			return i, (y-start)*maxX + x
		}
		start = next
	}
	return y, x
}

// CursorFor is the inverse of MapPosition: it returns the cell showing the
// given byte. ok is false when the byte does not exist.
func CursorFor(lengths []int, maxX, text, offset int) (x, y int, ok bool) {
	if maxX < 1 || text < 0 || text >= len(lengths) {
		return 0, 0, false
	}
	if offset < 0 || offset >= lengths[text] {
		return 0, 0, false
	}

	start := 0
	for _, length := range lengths[:text] {
		start += RowsFor(length, maxX)
	}
	return offset % maxX, start + offset/maxX, true
}
