// Package config loads the YAML configuration and builds the logger.
package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"padbreak/export"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// DefaultFile is looked up in the working directory when no -config flag is
// given. It is optional.
const DefaultFile = "padbreak.yaml"

type Colors struct {
	PlaceholderFG string `yaml:"placeholder_fg"`
	PlaceholderBG string `yaml:"placeholder_bg"`
	TextFG        string `yaml:"text_fg"`
	BorderFG      string `yaml:"border_fg"`
	StatusFG      string `yaml:"status_fg"`
	StatusBG      string `yaml:"status_bg"`
}

type Config struct {
	Placeholder     string `yaml:"placeholder"`
	KeyPanelPercent int    `yaml:"key_panel_percent"`
	Margin          int    `yaml:"margin"`
	HistorySize     int    `yaml:"history_size"`
	Format          string `yaml:"format"`
	LogLevel        string `yaml:"log_level"`
	Colors          Colors `yaml:"colors"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Placeholder:     "_",
		KeyPanelPercent: 20,
		Margin:          2,
		HistorySize:     100,
		Format:          string(export.FormatJSON),
		LogLevel:        "info",
		Colors: Colors{
			PlaceholderFG: "red",
			PlaceholderBG: "darkgray",
			TextFG:        "white",
			BorderFG:      "gray",
			StatusFG:      "black",
			StatusBG:      "yellow",
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional behaves like Load but returns the defaults when the file
// does not exist.
func LoadOptional(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks value ranges and names.
func (c Config) Validate() error {
	if utf8.RuneCountInString(c.Placeholder) != 1 {
		return fmt.Errorf("placeholder must be a single character, got %q", c.Placeholder)
	}
	if c.KeyPanelPercent < 5 || c.KeyPanelPercent > 90 {
		return fmt.Errorf("key_panel_percent must be between 5 and 90, got %d", c.KeyPanelPercent)
	}
	if c.Margin < 0 {
		return fmt.Errorf("margin must not be negative, got %d", c.Margin)
	}
	if c.HistorySize < 1 {
		return fmt.Errorf("history_size must be positive, got %d", c.HistorySize)
	}
	if _, err := export.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	for _, col := range []struct{ name, value string }{
		{"placeholder_fg", c.Colors.PlaceholderFG},
		{"placeholder_bg", c.Colors.PlaceholderBG},
		{"text_fg", c.Colors.TextFG},
		{"border_fg", c.Colors.BorderFG},
		{"status_fg", c.Colors.StatusFG},
		{"status_bg", c.Colors.StatusBG},
	} {
		if !validColor(col.value) {
			return fmt.Errorf("colors.%s: unknown color %q", col.name, col.value)
		}
	}
	return nil
}

// PlaceholderRune returns the placeholder glyph.
func (c Config) PlaceholderRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Placeholder)
	return r
}

func validColor(name string) bool {
	if name == "" || name == "default" {
		return true
	}
	return tcell.GetColor(name) != tcell.ColorDefault
}

// Style builds a tcell style from two color names. Empty names keep the
// terminal default.
func Style(fg, bg string) tcell.Style {
	style := tcell.StyleDefault
	if fg != "" {
		style = style.Foreground(tcell.GetColor(fg))
	}
	if bg != "" {
		style = style.Background(tcell.GetColor(bg))
	}
	return style
}
