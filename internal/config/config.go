// Package config provides YAML-based game configuration loading and
// environment-driven defaults for the patience platform.
package config

import (
	"errors"
	"fmt"
)

// KlondikeConfig contains all configuration for the Klondike game.
type KlondikeConfig struct {
	Layout LayoutConfig `yaml:"layout"`
	Input  InputConfig  `yaml:"input"`
}

// LayoutConfig defines card geometry in terminal cells.
type LayoutConfig struct {
	CardWidth  int `yaml:"card_width"`
	CardHeight int `yaml:"card_height"`
	GapX       int `yaml:"gap_x"`      // Columns between decks
	GapY       int `yaml:"gap_y"`      // Rows between the top row and the piles
	MarginX    int `yaml:"margin_x"`   // Left margin
	MarginTop  int `yaml:"margin_top"` // Rows reserved above the top row (status line)
	FanDown    int `yaml:"fan_down"`   // Rows shown per face-down card in a pile
	FanUp      int `yaml:"fan_up"`     // Rows shown per face-up card in a pile
}

// InputConfig defines pointer behaviour.
type InputConfig struct {
	RightClickShortcut bool `yaml:"right_click_shortcut"` // Right press sends a card to its first legal deck
	PauseOnBlur        bool `yaml:"pause_on_blur"`        // Focus loss pauses the clock
}

// Validate reports the first invalid setting.
func (c KlondikeConfig) Validate() error {
	l := c.Layout
	if l.CardWidth < 5 {
		return fmt.Errorf("config: card_width must be at least 5, got %d", l.CardWidth)
	}
	if l.CardHeight < 3 {
		return fmt.Errorf("config: card_height must be at least 3, got %d", l.CardHeight)
	}
	if l.FanDown < 1 || l.FanUp < 1 {
		return errors.New("config: fan_down and fan_up must be positive")
	}
	if l.FanDown > l.CardHeight || l.FanUp > l.CardHeight {
		return errors.New("config: fan rows cannot exceed card_height")
	}
	if l.GapX < 0 || l.GapY < 0 || l.MarginX < 0 || l.MarginTop < 0 {
		return errors.New("config: gaps and margins cannot be negative")
	}
	return nil
}
