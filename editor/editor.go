package editor

import (
	"padbreak/core"
)

// DefaultPlaceholder is shown for bytes that cannot be decrypted.
const DefaultPlaceholder = '_'

// Viewport is the decryption panel as seen by the renderer. MinX and MinY are
// the absolute screen cell of the panel's first column and row; MaxX and MaxY
// bound the cursor and MaxX is also the wrap width.
type Viewport struct {
	MinX, MinY int
	MaxX, MaxY int
}

// KeyEditor owns the ciphertexts, the editable key and the cursor of one
// interactive session. It is not safe for concurrent use.
type KeyEditor struct {
	ciphertexts []core.Ciphertext // read-only after construction
	key         core.Key

	// Cursor, relative to the panel
	cursorX int
	cursorY int

	viewport    Viewport
	placeholder rune

	history *KeyHistory
}

// NewKeyEditor creates an editor over ciphertexts, starting from a copy of key.
func NewKeyEditor(ciphertexts []core.Ciphertext, key core.Key) *KeyEditor {
	e := &KeyEditor{
		ciphertexts: ciphertexts,
		key:         key.Clone(),
		placeholder: DefaultPlaceholder,
		history:     NewKeyHistory(100),
	}

	// Save initial state so the first edit can be undone
	e.history.SaveState(e.key)

	return e
}

// SetPlaceholder changes the glyph used for unknown bytes.
func (e *KeyEditor) SetPlaceholder(r rune) {
	e.placeholder = r
}

// Placeholder returns the glyph used for unknown bytes.
func (e *KeyEditor) Placeholder() rune {
	return e.placeholder
}

// SetHistoryLimit replaces the undo history with one keeping at most n
// states. The current key becomes the only state.
func (e *KeyEditor) SetHistoryLimit(n int) {
	e.history = NewKeyHistory(n)
	e.history.SaveState(e.key)
}

// SetViewport updates the panel geometry after the screen is created or
// resized. The cursor is pulled back inside the new bounds.
func (e *KeyEditor) SetViewport(v Viewport) {
	e.viewport = v
	e.cursorX = clamp(e.cursorX, 0, max(v.MaxX, 0))
	e.cursorY = clamp(e.cursorY, 0, max(v.MaxY, 0))
}

// Viewport returns the current panel geometry.
func (e *KeyEditor) Viewport() Viewport {
	return e.viewport
}

// Cursor returns the cursor cell relative to the panel.
func (e *KeyEditor) Cursor() (x, y int) {
	return e.cursorX, e.cursorY
}

// Key returns a copy of the current key.
func (e *KeyEditor) Key() core.Key {
	return e.key.Clone()
}

// KeyHex renders the key for display, two cells per slot.
func (e *KeyEditor) KeyHex() string {
	return e.key.Hex(string(e.placeholder))
}

// Ciphertexts returns the ciphertexts in display order.
func (e *KeyEditor) Ciphertexts() []core.Ciphertext {
	return e.ciphertexts
}

// Position returns the (ciphertext, byte offset) under the cursor. The pair
// may point past the end of the data; callers must check.
func (e *KeyEditor) Position() (text, offset int) {
	return MapPosition(core.Lengths(e.ciphertexts), e.viewport.MaxX, e.cursorX, e.cursorY)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
