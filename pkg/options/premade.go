package options

import "github.com/mesh-intelligence/wardrobe/pkg/types"

// PremadeValue names one option and the text to select for it.
type PremadeValue struct {
	Option string
	Text   string
}

// Premade is a fixed, shipped preset: a name, a short description, and the
// option values it applies. The tables below are read-only configuration
// data, initialized once at load.
type Premade struct {
	Name        string
	Description string
	Values      []PremadeValue
}

// Apply selects each named value on the provider. Options the schema no
// longer has, and texts an option no longer accepts, are skipped silently —
// the same tolerance the preset loader has for drifted documents.
func (p Premade) Apply(schema *Schema) {
	for _, v := range p.Values {
		if opt, ok := schema.Find(v.Option); ok {
			opt.SetFromText(v.Text)
		}
	}
}

// Premades lists the shipped presets in display order.
var Premades = []Premade{
	{
		Name:        "Intended",
		Description: "The game as designed: closed world, full trials, no shuffling.",
		Values: []PremadeValue{
			{"Difficulty", "Normal"},
			{"Logic", "Glitchless"},
			{"Permadeath", "Off"},
			{"Open World", "Off"},
			{"Shuffle Entrances", "Off"},
			{"Trial Count", "6"},
			{"Boss Keys", "Vanilla"},
			{"Skip Intro", "Off"},
			{"Fast Text", "Off"},
			{"Hint Distribution", "Balanced"},
		},
	},
	{
		Name:        "Racing",
		Description: "Fast, fair settings for head-to-head races.",
		Values: []PremadeValue{
			{"Difficulty", "Normal"},
			{"Logic", "Glitchless"},
			{"Open World", "On"},
			{"Shuffle Entrances", "On"},
			{"Trial Count", "0"},
			{"Boss Keys", "Own Dungeon"},
			{"Skip Intro", "On"},
			{"Fast Text", "On"},
			{"Hint Distribution", "Balanced"},
			{"Starting Lives", "5"},
		},
	},
	{
		Name:        "Full Chaos",
		Description: "Everything shuffled, no logic, no mercy.",
		Values: []PremadeValue{
			{"Difficulty", "Hard"},
			{"Logic", "None"},
			{"Permadeath", "On"},
			{"Open World", "On"},
			{"Shuffle Entrances", "On"},
			{"Trial Count", "6"},
			{"Boss Keys", "Anywhere"},
			{"Hint Distribution", "Useless"},
			{"Starting Lives", "1"},
		},
	},
}

// FindPremade returns the shipped preset with the given name.
func FindPremade(name string) (Premade, bool) {
	for _, p := range Premades {
		if p.Name == name {
			return p, true
		}
	}
	return Premade{}, false
}

// Touches reports whether any value in p names an option of the given
// category in schema. The CLI uses it to decide which caches to refresh
// after applying.
func (p Premade) Touches(schema *Schema, category types.Category) bool {
	for _, v := range p.Values {
		if opt, ok := schema.Find(v.Option); ok && opt.Category() == category {
			return true
		}
	}
	return false
}
