// Package config provides YAML-based configuration loading for the
// platform. Settings cover presentation and convenience features only;
// the card rules themselves are fixed.
package config

// FreecellConfig contains all configuration for the FreeCell game.
type FreecellConfig struct {
	Display  DisplayConfig  `yaml:"display"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// DisplayConfig defines how the board is drawn.
type DisplayConfig struct {
	// UnicodeSuits selects the suit symbols; with false the
	// single-letter fallbacks S/H/D/C are used.
	UnicodeSuits bool `yaml:"unicode_suits"`

	// ShowHints shows the key binding help line under the board.
	ShowHints bool `yaml:"show_hints"`
}

// GameplayConfig defines convenience behavior around the fixed rules.
type GameplayConfig struct {
	// AutoFinish enables the key that sweeps every playable card to
	// the foundations.
	AutoFinish bool `yaml:"auto_finish"`

	// Timer enables the play clock. With false the elapsed time stays
	// at zero and is hidden from the HUD.
	Timer bool `yaml:"timer"`
}
