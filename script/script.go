// Package script replays recorded edits against a key editor, so a set of
// plaintext guesses can be reapplied without the terminal UI.
package script

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"padbreak/editor"

	"github.com/sirupsen/logrus"
)

// Command represents a single scripted action
type Command struct {
	Type  string `json:"type"`            // "key", "text", "move", "click", "byte", "resize", "pause"
	Value string `json:"value,omitempty"` // key name, character or text
	X     int    `json:"x,omitempty"`
	Y     int    `json:"y,omitempty"`
}

// Script represents a replay script
type Script struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Commands    []Command `json:"commands"`
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a JSON script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	for i, cmd := range s.Commands {
		if err := cmd.validate(); err != nil {
			return nil, fmt.Errorf("command %d: %w", i, err)
		}
	}
	return &s, nil
}

func (c Command) validate() error {
	switch c.Type {
	case "key":
		if _, ok := editor.ParseKeyName(c.Value); ok {
			return nil
		}
		if utf8.RuneCountInString(c.Value) != 1 {
			return fmt.Errorf("unknown key %q", c.Value)
		}
	case "text", "move", "click", "pause":
	case "byte":
		if c.X < 0 || c.Y < 0 {
			return fmt.Errorf("invalid byte %d of text %d", c.Y, c.X)
		}
	case "resize":
		if c.X < 1 || c.Y < 0 {
			return fmt.Errorf("invalid size %dx%d", c.X, c.Y)
		}
	default:
		return fmt.Errorf("unknown command type %q", c.Type)
	}
	return nil
}

// Player applies scripts to an editor.
type Player struct {
	log *logrus.Logger
}

// NewPlayer creates a player. A nil logger discards output.
func NewPlayer(logger *logrus.Logger) *Player {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &Player{log: logger}
}

// Play runs every command in order. It returns true when the script ended the
// session with an escape key; the remaining commands are skipped.
func (p *Player) Play(s *Script, e *editor.KeyEditor) bool {
	for i, cmd := range s.Commands {
		p.log.WithFields(logrus.Fields{
			"script":  s.Name,
			"command": i,
			"type":    cmd.Type,
		}).Debug("replaying command")

		if p.apply(cmd, e) {
			p.log.WithField("script", s.Name).Info("script requested quit")
			return true
		}
	}
	return false
}

func (p *Player) apply(cmd Command, e *editor.KeyEditor) bool {
	switch cmd.Type {
	case "key":
		if k, ok := editor.ParseKeyName(cmd.Value); ok {
			return e.HandleKey(editor.KeyEvent{SpecialKey: k})
		}
		r, _ := utf8.DecodeRuneInString(cmd.Value)
		return e.HandleKey(editor.KeyEvent{Rune: r})

	case "text":
		for _, r := range cmd.Value {
			e.HandleKey(editor.KeyEvent{Rune: r})
		}

	case "move":
		e.MoveToCell(cmd.X, cmd.Y)

	case "click":
		e.MoveTo(cmd.X, cmd.Y)

	case "byte":
		// X is the ciphertext, Y the byte offset
		e.MoveToByte(cmd.X, cmd.Y)

	case "resize":
		v := e.Viewport()
		v.MaxX, v.MaxY = cmd.X, cmd.Y
		e.SetViewport(v)

	case "pause":
		// Kept for scripts recorded interactively, nothing to do
	}
	return false
}

// Example returns an example script.
func Example() string {
	s := Script{
		Name:        "cribs",
		Description: "Guess the start of the first two messages",
		Commands: []Command{
			{Type: "move", X: 0, Y: 0},
			{Type: "text", Value: "attack at "},
			{Type: "key", Value: "home"},
			{Type: "key", Value: "down"},
			{Type: "key", Value: "down"},
			{Type: "text", Value: "the "},
			{Type: "key", Value: "backspace"},
			{Type: "key", Value: "undo"},
		},
	}

	data, _ := json.MarshalIndent(s, "", "  ")
	return string(data)
}
