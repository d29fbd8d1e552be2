// Package options provides the concrete option model behind the preset
// store: polymorphic option kinds (toggle, enumerated choice, bounded
// integer), menus that group them, and the premade preset tables.
//
// Each kind owns its valid-value set and its text conversion, so no caller
// needs to switch on option categories or kinds.
package options

import (
	"strconv"

	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

// Toggle is a two-state option rendered as "Off"/"On".
type Toggle struct {
	name     string
	category types.Category
	on       bool
}

// Toggle display texts.
const (
	toggleOff = "Off"
	toggleOn  = "On"
)

// NewToggle returns a Toggle in the Off state.
func NewToggle(name string, category types.Category) *Toggle {
	return &Toggle{name: name, category: category}
}

func (t *Toggle) Name() string             { return t.name }
func (t *Toggle) Category() types.Category { return t.category }

// On reports whether the toggle is set.
func (t *Toggle) On() bool { return t.on }

func (t *Toggle) Value() string {
	if t.on {
		return toggleOn
	}
	return toggleOff
}

func (t *Toggle) SetFromText(text string) bool {
	switch text {
	case toggleOn:
		t.on = true
	case toggleOff:
		t.on = false
	default:
		return false
	}
	return true
}

// Choice is an enumerated option selecting one of an ordered list of texts.
type Choice struct {
	name     string
	category types.Category
	choices  []string
	index    int
}

// NewChoice returns a Choice selecting the first entry. Panics if choices is
// empty; choice lists are compile-time schema data.
func NewChoice(name string, category types.Category, choices ...string) *Choice {
	if len(choices) == 0 {
		panic("options: choice " + name + " has no choices")
	}
	return &Choice{name: name, category: category, choices: choices}
}

func (c *Choice) Name() string             { return c.name }
func (c *Choice) Category() types.Category { return c.category }
func (c *Choice) Value() string            { return c.choices[c.index] }

// Index returns the selected choice index.
func (c *Choice) Index() int { return c.index }

// SetIndex selects the choice at i. Out-of-range indexes are ignored.
func (c *Choice) SetIndex(i int) bool {
	if i < 0 || i >= len(c.choices) {
		return false
	}
	c.index = i
	return true
}

func (c *Choice) SetFromText(text string) bool {
	for i, ch := range c.choices {
		if ch == text {
			c.index = i
			return true
		}
	}
	return false
}

// Range is a bounded integer option rendered in decimal.
type Range struct {
	name     string
	category types.Category
	min, max int
	value    int
}

// NewRange returns a Range with the given bounds and initial value. The
// initial value is clamped into [min, max].
func NewRange(name string, category types.Category, min, max, initial int) *Range {
	r := &Range{name: name, category: category, min: min, max: max, value: initial}
	if r.value < min {
		r.value = min
	}
	if r.value > max {
		r.value = max
	}
	return r
}

func (r *Range) Name() string             { return r.name }
func (r *Range) Category() types.Category { return r.category }
func (r *Range) Value() string            { return strconv.Itoa(r.value) }

// Int returns the current value.
func (r *Range) Int() int { return r.value }

func (r *Range) SetFromText(text string) bool {
	n, err := strconv.Atoi(text)
	if err != nil || n < r.min || n > r.max {
		return false
	}
	r.value = n
	return true
}
