// Package terminal runs the interactive key editor on a tcell screen.
package terminal

import (
	"fmt"
	"io"

	"padbreak/config"
	"padbreak/editor"
	"padbreak/export"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// Options configures a terminal session
type Options struct {
	Config config.Config
	Output string        // file the result is saved to
	Format export.Format // format of the saved result
	Logger *logrus.Logger
}

// session is the state of one running UI. The editor owns the key and the
// cursor; the session only adds what is needed to draw them.
type session struct {
	screen tcell.Screen
	ed     *editor.KeyEditor
	opts   Options
	log    *logrus.Logger
	styles styles

	layout Layout
	status string // last message shown in the status line
}

// RunTUILoop opens the terminal, runs the editor until the user quits and
// restores the terminal, even on panic.
func RunTUILoop(ed *editor.KeyEditor, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to setup terminal: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse()
	screen.Clear()

	return newSession(screen, ed, opts).run()
}

func newSession(screen tcell.Screen, ed *editor.KeyEditor, opts Options) *session {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &session{
		screen: screen,
		ed:     ed,
		opts:   opts,
		log:    logger,
		styles: newStyles(opts.Config),
	}
}

// run is the main loop: draw, wait for one event, apply it.
func (s *session) run() error {
	s.resize()

	for {
		s.draw()
		s.screen.Show()

		switch ev := s.screen.PollEvent().(type) {
		case nil:
			// Screen finalized
			return nil

		case *tcell.EventResize:
			s.screen.Sync()
			s.resize()

		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlS {
				// A failure is shown in the status line
				_ = s.save()
				continue
			}
			keyEvent, ok := translateKey(ev)
			if !ok {
				continue
			}
			if s.ed.HandleKey(keyEvent) {
				return s.save()
			}

		case *tcell.EventMouse:
			if ev.Buttons()&tcell.Button1 != 0 {
				x, y := ev.Position()
				s.ed.MoveTo(x, y)
			}
		}
	}
}

// resize recomputes the layout from the screen size and hands the new
// viewport to the editor.
func (s *session) resize() {
	width, height := s.screen.Size()
	s.layout = ComputeLayout(width, height, s.opts.Config.Margin, s.opts.Config.KeyPanelPercent)
	s.ed.SetViewport(s.layout.Viewport())

	s.log.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
		"wrap":   s.layout.Viewport().MaxX,
	}).Debug("terminal resized")
}

// save writes the current result to the output file, reporting the outcome
// in the status line. Without an output file it does nothing.
func (s *session) save() error {
	if s.opts.Output == "" {
		return nil
	}

	exporter, err := export.NewExporter(s.opts.Format)
	if err != nil {
		return s.saveFailed(err)
	}

	result := export.NewResult(s.ed.Key(), s.ed.Plaintexts(), string(s.ed.Placeholder()))
	if err := export.Write(s.opts.Output, exporter, result); err != nil {
		return s.saveFailed(err)
	}

	s.status = fmt.Sprintf("saved %s (%s)", s.opts.Output, exporter.GetFormatName())
	s.log.WithFields(logrus.Fields{
		"output": s.opts.Output,
		"format": exporter.GetFormatName(),
		"known":  result.Known,
		"length": result.Length,
	}).Info("result saved")
	return nil
}

func (s *session) saveFailed(err error) error {
	s.status = fmt.Sprintf("save failed: %v", err)
	s.log.WithError(err).Error("saving result")
	return fmt.Errorf("saving result: %w", err)
}

// translateKey converts a tcell key event into an editor key event. ok is
// false for keys the editor does not handle.
func translateKey(ev *tcell.EventKey) (editor.KeyEvent, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return editor.KeyEvent{Rune: ev.Rune()}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return editor.KeyEvent{SpecialKey: editor.KeyBackspace}, true
	case tcell.KeyDelete:
		return editor.KeyEvent{SpecialKey: editor.KeyDelete}, true
	case tcell.KeyLeft:
		return editor.KeyEvent{SpecialKey: editor.KeyArrowLeft}, true
	case tcell.KeyRight:
		return editor.KeyEvent{SpecialKey: editor.KeyArrowRight}, true
	case tcell.KeyUp:
		return editor.KeyEvent{SpecialKey: editor.KeyArrowUp}, true
	case tcell.KeyDown:
		return editor.KeyEvent{SpecialKey: editor.KeyArrowDown}, true
	case tcell.KeyHome:
		return editor.KeyEvent{SpecialKey: editor.KeyHome}, true
	case tcell.KeyEnd:
		return editor.KeyEvent{SpecialKey: editor.KeyEnd}, true
	case tcell.KeyCtrlZ:
		return editor.KeyEvent{SpecialKey: editor.KeyUndo}, true
	case tcell.KeyCtrlY:
		return editor.KeyEvent{SpecialKey: editor.KeyRedo}, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return editor.KeyEvent{SpecialKey: editor.KeyEscape}, true
	}
	return editor.KeyEvent{}, false
}
