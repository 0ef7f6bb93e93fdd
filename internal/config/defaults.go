package config

import (
	_ "embed"
)

//go:embed defaults/klondike.yaml
var defaultKlondikeYAML []byte

// DefaultKlondikeConfig returns the default Klondike configuration.
func DefaultKlondikeConfig() KlondikeConfig {
	return KlondikeConfig{
		Layout: LayoutConfig{
			CardWidth:  7,
			CardHeight: 5,
			GapX:       2,
			GapY:       1,
			MarginX:    1,
			MarginTop:  1,
			FanDown:    1,
			FanUp:      2,
		},
		Input: InputConfig{
			RightClickShortcut: true,
			PauseOnBlur:        true,
		},
	}
}
