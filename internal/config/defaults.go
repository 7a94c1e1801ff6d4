package config

import (
	_ "embed"
)

//go:embed defaults/freecell.yaml
var defaultFreecellYAML []byte

// DefaultFreecellConfig returns the default FreeCell configuration.
func DefaultFreecellConfig() FreecellConfig {
	return FreecellConfig{
		Display: DisplayConfig{
			UnicodeSuits: true,
			ShowHints:    true,
		},
		Gameplay: GameplayConfig{
			AutoFinish: true,
			Timer:      true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "freecell":
		return defaultFreecellYAML
	default:
		return nil
	}
}
