package editor

import "padbreak/core"

// Cursor movement wraps around instead of clamping so long wrapped texts can
// be traversed quickly from either edge.

// MoveLeft moves the cursor one column left, wrapping to MaxX.
func (e *KeyEditor) MoveLeft() {
	if e.cursorX <= 0 {
		e.cursorX = e.viewport.MaxX
	} else {
		e.cursorX--
	}
}

// MoveRight moves the cursor one column right, wrapping to 0.
func (e *KeyEditor) MoveRight() {
	if e.cursorX >= e.viewport.MaxX {
		e.cursorX = 0
	} else {
		e.cursorX++
	}
}

// MoveUp moves the cursor one row up, wrapping to MaxY.
func (e *KeyEditor) MoveUp() {
	if e.cursorY <= 0 {
		e.cursorY = e.viewport.MaxY
	} else {
		e.cursorY--
	}
}

// MoveDown moves the cursor one row down, wrapping to 0.
func (e *KeyEditor) MoveDown() {
	if e.cursorY >= e.viewport.MaxY {
		e.cursorY = 0
	} else {
		e.cursorY++
	}
}

// MoveHome moves the cursor to the first column (Home).
func (e *KeyEditor) MoveHome() {
	e.cursorX = 0
}

// MoveEnd moves the cursor to the last column (End).
func (e *KeyEditor) MoveEnd() {
	e.cursorX = e.viewport.MaxX
}

// MoveTo jumps to an absolute screen cell, e.g. from a mouse click.
// Cells outside the viewport bounds are ignored.
func (e *KeyEditor) MoveTo(x, y int) {
	v := e.viewport
	if x < v.MinX || x > v.MaxX || y < v.MinY || y > v.MaxY {
		return
	}
	e.cursorX = x - v.MinX
	e.cursorY = y - v.MinY
}

// MoveToCell places the cursor on a panel-relative cell. Cells outside
// [0, MaxX] x [0, MaxY] are ignored.
func (e *KeyEditor) MoveToCell(x, y int) {
	if x < 0 || x > e.viewport.MaxX || y < 0 || y > e.viewport.MaxY {
		return
	}
	e.cursorX = x
	e.cursorY = y
}

// MoveToByte places the cursor on the cell displaying the given byte of a
// ciphertext. It reports false and leaves the cursor alone when the byte
// does not exist or is not on screen.
func (e *KeyEditor) MoveToByte(text, offset int) bool {
	x, y, ok := CursorFor(core.Lengths(e.ciphertexts), e.viewport.MaxX, text, offset)
	if !ok || y > e.viewport.MaxY {
		return false
	}
	e.cursorX = x
	e.cursorY = y
	return true
}
