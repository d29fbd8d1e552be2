package options

import "github.com/mesh-intelligence/wardrobe/pkg/types"

// DefaultSchema builds the stock option schema used by the CLI. Every call
// returns a fresh schema with default values, so callers own their mutations.
func DefaultSchema() *Schema {
	return NewSchema(
		NewMenu("Gameplay",
			NewChoice("Difficulty", types.CategorySetting, "Easy", "Normal", "Hard"),
			NewChoice("Logic", types.CategorySetting, "Glitchless", "Advanced", "None"),
			NewToggle("Permadeath", types.CategorySetting),
			NewRange("Starting Lives", types.CategorySetting, 1, 9, 3),
		),
		NewMenu("World",
			NewToggle("Open World", types.CategorySetting),
			NewToggle("Shuffle Entrances", types.CategorySetting),
			NewRange("Trial Count", types.CategorySetting, 0, 6, 6),
			NewChoice("Boss Keys", types.CategorySetting, "Vanilla", "Own Dungeon", "Anywhere"),
		),
		NewMenu("Timesavers",
			NewToggle("Skip Intro", types.CategorySetting),
			NewToggle("Fast Text", types.CategorySetting),
			// Display name wraps across two menu lines; the preset store
			// strips the break before using it as a key.
			NewChoice("Hint\nDistribution", types.CategorySetting, "Useless", "Balanced", "Strong"),
		),
		NewMenu("Exclusions",
			NewToggle("Exclude Desert Region", types.CategoryToggle),
			NewToggle("Exclude Deep Caves", types.CategoryToggle),
		),
		NewMenu("Appearance",
			NewChoice("UI Theme", types.CategoryCosmetic, "Classic", "Midnight", "Sunrise"),
			NewChoice("Player Color", types.CategoryCosmetic, "Green", "Blue", "Crimson", "Random"),
			NewToggle("Show Timer", types.CategoryCosmetic),
			NewRange("HUD Scale", types.CategoryCosmetic, 50, 150, 100),
		),
		NewMenu("Audio",
			NewToggle("Mute Music", types.CategoryCosmetic),
			NewChoice("Soundtrack", types.CategoryCosmetic, "Original", "Remastered"),
		),
		NewActionMenu("Presets"),
	)
}
