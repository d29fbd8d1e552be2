package types

// Category partitions options into preset files. An option participates only
// in preset operations requested for its own category.
type Category int

// Option categories. Setting and Cosmetic each map to their own preset
// directory; Toggle options are not persisted as presets.
const (
	CategorySetting Category = iota
	CategoryCosmetic
	CategoryToggle
)

// String returns the lower-case category name.
func (c Category) String() string {
	switch c {
	case CategorySetting:
		return "setting"
	case CategoryCosmetic:
		return "cosmetic"
	case CategoryToggle:
		return "toggle"
	}
	return "unknown"
}

// ParseCategory maps a category name to its Category value.
// Returns ErrCategoryUnsupported for unrecognized names.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "setting", "settings":
		return CategorySetting, nil
	case "cosmetic", "cosmetics":
		return CategoryCosmetic, nil
	case "toggle", "toggles":
		return CategoryToggle, nil
	}
	return 0, ErrCategoryUnsupported
}

// Option is a single configurable value. Names may contain line breaks for
// display purposes; they are normalized before being used as lookup keys.
type Option interface {
	// Name returns the option's stable display name, unique within its
	// provider.
	Name() string

	// Category returns the option's category.
	Category() Category

	// Value returns the current selection as display text.
	Value() string

	// SetFromText sets the selection from display text. Text that matches no
	// known choice leaves the option unchanged and returns false; callers
	// applying saved documents ignore the result.
	SetFromText(text string) bool
}

// Provider enumerates the live option set. The order is stable across calls
// unless the option schema itself changes.
type Provider interface {
	Options() []Option
}
