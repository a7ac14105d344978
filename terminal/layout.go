package terminal

import "padbreak/editor"

// Rect is a screen area in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Inner returns the area inside a one cell border.
func (r Rect) Inner() Rect {
	return Rect{
		X:      r.X + 1,
		Y:      r.Y + 1,
		Width:  max(r.Width-2, 0),
		Height: max(r.Height-2, 0),
	}
}

// Layout splits the screen into the decryption panel on top, the key panel
// below it and a status line on the last row.
type Layout struct {
	Decryption Rect
	Key        Rect
	Status     Rect
}

// ComputeLayout lays out a width x height screen. keyPercent is the share of
// the usable height given to the key panel.
func ComputeLayout(width, height, margin, keyPercent int) Layout {
	usableW := max(width-2*margin, 0)
	usableH := max(height-2*margin-1, 0) // last row is the status line

	keyH := usableH * keyPercent / 100
	decH := usableH - keyH

	return Layout{
		Decryption: Rect{X: margin, Y: margin, Width: usableW, Height: decH},
		Key:        Rect{X: margin, Y: margin + decH, Width: usableW, Height: keyH},
		Status:     Rect{X: 0, Y: max(height-1, 0), Width: width, Height: 1},
	}
}

// Viewport returns the editor geometry for the decryption panel. The last
// inner column is left free so a wrapped row is MaxX cells wide while the
// cursor can still reach column MaxX.
func (l Layout) Viewport() editor.Viewport {
	inner := l.Decryption.Inner()
	return editor.Viewport{
		MinX: inner.X,
		MinY: inner.Y,
		MaxX: max(inner.Width-1, 1),
		MaxY: max(inner.Height-1, 0),
	}
}
