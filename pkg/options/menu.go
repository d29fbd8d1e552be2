package options

import (
	"strings"

	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

// MenuKind distinguishes menus that carry options from menus that carry
// actions (preset pickers, generators). Only option menus participate in
// preset traversal.
type MenuKind int

const (
	MenuOptions MenuKind = iota
	MenuAction
)

// Menu is a named, ordered group of options.
type Menu struct {
	name string
	kind MenuKind
	opts []types.Option
}

// NewMenu returns an option menu with the given options, in order.
func NewMenu(name string, opts ...types.Option) *Menu {
	return &Menu{name: name, kind: MenuOptions, opts: opts}
}

// NewActionMenu returns a menu that holds no persistable options.
func NewActionMenu(name string) *Menu {
	return &Menu{name: name, kind: MenuAction}
}

// Name returns the menu name.
func (m *Menu) Name() string { return m.name }

// Kind returns the menu kind.
func (m *Menu) Kind() MenuKind { return m.kind }

// Schema is an ordered list of menus implementing types.Provider. Traversal
// order is menu order, then option order within each menu, and is stable
// across calls.
type Schema struct {
	menus []*Menu
}

// NewSchema returns a Schema over the given menus.
func NewSchema(menus ...*Menu) *Schema {
	return &Schema{menus: menus}
}

// Options flattens the option menus in traversal order. Action menus are
// skipped.
func (s *Schema) Options() []types.Option {
	var opts []types.Option
	for _, m := range s.menus {
		if m.kind != MenuOptions {
			continue
		}
		opts = append(opts, m.opts...)
	}
	return opts
}

// Find returns the option whose normalized name matches name. Comparison
// strips line breaks on both sides, the same normalization the preset store
// applies.
func (s *Schema) Find(name string) (types.Option, bool) {
	want := normalize(name)
	for _, opt := range s.Options() {
		if normalize(opt.Name()) == want {
			return opt, true
		}
	}
	return nil, false
}

// normalize strips line breaks from display names for lookup.
func normalize(s string) string {
	return strings.NewReplacer("\n", "", "\r", "").Replace(s)
}
