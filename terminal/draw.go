package terminal

import (
	"fmt"

	"padbreak/config"
	"padbreak/editor"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

type styles struct {
	text        tcell.Style
	placeholder tcell.Style
	border      tcell.Style
	status      tcell.Style
}

func newStyles(cfg config.Config) styles {
	c := cfg.Colors
	return styles{
		text:        config.Style(c.TextFG, ""),
		placeholder: config.Style(c.PlaceholderFG, c.PlaceholderBG).Bold(true),
		border:      config.Style(c.BorderFG, ""),
		status:      config.Style(c.StatusFG, c.StatusBG),
	}
}

// draw renders the whole screen from the editor state.
func (s *session) draw() {
	s.screen.Clear()

	s.drawBox(s.layout.Decryption, " Decryption ")
	s.drawDecryption()

	s.drawBox(s.layout.Key, " Key ")
	s.drawKey()

	s.showStatusLine()
	s.positionCursor()
}

// drawDecryption writes every ciphertext's decrypted cells, wrapped at the
// viewport width, in the same geometry the editor maps positions with.
func (s *session) drawDecryption() {
	inner := s.layout.Decryption.Inner()
	wrap := s.layout.Viewport().MaxX

	start := 0
	for _, row := range s.ed.DecryptedRows() {
		for i, cell := range row {
			y := start + i/wrap
			if y >= inner.Height {
				break
			}
			style := s.styles.text
			if cell.Placeholder {
				style = s.styles.placeholder
			}
			s.screen.SetContent(inner.X+i%wrap, inner.Y+y, cell.Rune, nil, style)
		}
		start += editor.RowsFor(len(row), wrap)
	}
}

// drawKey writes the key as hex pairs, wrapping on whole slots.
func (s *session) drawKey() {
	inner := s.layout.Key.Inner()
	if inner.Width < 2 {
		return
	}

	perRow := inner.Width / 2
	placeholder := string(s.ed.Placeholder())
	for i, b := range s.ed.Key() {
		y := i / perRow
		if y >= inner.Height {
			break
		}
		x := inner.X + (i%perRow)*2
		if b.Known {
			drawText(s.screen, x, inner.Y+y, 2, s.styles.text, b.String())
		} else {
			drawText(s.screen, x, inner.Y+y, 2, s.styles.placeholder, placeholder+placeholder)
		}
	}
}

// drawBox draws a single line border with a title on the top edge.
func (s *session) drawBox(r Rect, title string) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	right, bottom := r.X+r.Width-1, r.Y+r.Height-1

	for x := r.X + 1; x < right; x++ {
		s.screen.SetContent(x, r.Y, tcell.RuneHLine, nil, s.styles.border)
		s.screen.SetContent(x, bottom, tcell.RuneHLine, nil, s.styles.border)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.screen.SetContent(r.X, y, tcell.RuneVLine, nil, s.styles.border)
		s.screen.SetContent(right, y, tcell.RuneVLine, nil, s.styles.border)
	}
	s.screen.SetContent(r.X, r.Y, tcell.RuneULCorner, nil, s.styles.border)
	s.screen.SetContent(right, r.Y, tcell.RuneURCorner, nil, s.styles.border)
	s.screen.SetContent(r.X, bottom, tcell.RuneLLCorner, nil, s.styles.border)
	s.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, s.styles.border)

	drawText(s.screen, r.X+1, r.Y, r.Width-2, s.styles.border.Bold(true), title)
}

// showStatusLine shows the key coverage, the last message and a key hint.
func (s *session) showStatusLine() {
	r := s.layout.Status
	for x := 0; x < r.Width; x++ {
		s.screen.SetContent(x, r.Y, ' ', nil, s.styles.status)
	}

	key := s.ed.Key()
	text, offset := s.ed.Position()
	line := fmt.Sprintf(" %d/%d known | text %d/%d byte %d | %s",
		key.KnownCount(), len(key), text+1, len(s.ed.Ciphertexts()), offset, editor.GetCompactHelp())
	if s.status != "" {
		line = fmt.Sprintf(" %s |%s", s.status, line)
	}
	drawText(s.screen, 0, r.Y, r.Width, s.styles.status, line)
}

// positionCursor places the terminal caret on the editor cursor.
func (s *session) positionCursor() {
	v := s.layout.Viewport()
	x, y := s.ed.Cursor()
	s.screen.ShowCursor(v.MinX+x, v.MinY+y)
}

// drawText writes str from (x, y), clipped to width cells. Wide runes take
// two cells.
func drawText(screen tcell.Screen, x, y, width int, style tcell.Style, str string) int {
	used := 0
	for _, r := range str {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			w = 1
		}
		if used+w > width {
			break
		}
		screen.SetContent(x+used, y, r, nil, style)
		used += w
	}
	return used
}
