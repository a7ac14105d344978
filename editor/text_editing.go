package editor

import (
	"padbreak/core"
)

// EnterChar records c as the plaintext of the byte under the cursor by
// solving key = ciphertext ^ c, then moves right. The key slot is shared by
// every ciphertext at that offset. Cells that do not show a byte, and runes
// that do not fit in a byte, are ignored.
func (e *KeyEditor) EnterChar(c rune) {
	if c < 0 || c > 0xFF {
		return
	}

	text, offset := e.Position()
	if text < 0 || text >= len(e.ciphertexts) {
		return
	}
	ciphertext := e.ciphertexts[text]
	if offset < 0 || offset >= len(ciphertext) {
		return
	}

	// The recovered key only reaches the second longest ciphertext
	e.key = e.key.Grow(offset + 1)
	e.key[offset] = core.Known(ciphertext[offset] ^ byte(c))
	e.history.SaveState(e.key)

	e.MoveRight()
}

// DeleteChar forgets a key byte. Unlike EnterChar it addresses the key by the
// raw cursor column, not by the mapped byte offset, so on any row but the
// first of a ciphertext it clears a different slot than the one under the
// cursor. Column 0 is never cleared. With shiftLeft the cursor also moves
// left (Backspace); without it stays put (Delete).
func (e *KeyEditor) DeleteChar(shiftLeft bool) {
	if e.cursorX == 0 {
		return
	}

	if e.cursorX < len(e.key) && e.key[e.cursorX].Known {
		e.key[e.cursorX] = core.Unknown
		e.history.SaveState(e.key)
	}

	if shiftLeft {
		e.MoveLeft()
	}
}

// Undo restores the key before the last edit. The cursor is not moved.
func (e *KeyEditor) Undo() bool {
	key, ok := e.history.Undo()
	if !ok {
		return false
	}
	e.key = key
	return true
}

// Redo reapplies the last undone edit.
func (e *KeyEditor) Redo() bool {
	key, ok := e.history.Redo()
	if !ok {
		return false
	}
	e.key = key
	return true
}
