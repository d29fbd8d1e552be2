// Package resync re-applies a saved preset document onto the live option
// list. The document mirrors the provider's traversal order at save time,
// which may have drifted since: options get added, removed, or reordered
// between versions. Name equality (after line-break normalization) is the
// only correlation key; the matcher exploits the common no-drift case to stay
// linear, falling back to a scan from the start of the document when the
// orderings diverge.
package resync

import (
	"github.com/mesh-intelligence/wardrobe/internal/codec"
	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

// Matcher is a two-pointer state machine over a parsed preset document. The
// cursor tracks the expected next entry; a slow-path scan restarts from entry
// zero whenever the cursor entry does not match the current option.
//
// A Matcher is built per load operation and discarded afterwards.
type Matcher struct {
	entries []codec.Entry
	cursor  int
	scans   int
}

// NewMatcher returns a Matcher positioned at the first entry.
func NewMatcher(entries []codec.Entry) *Matcher {
	return &Matcher{entries: entries}
}

// Apply walks opts in provider order and assigns each option of the given
// category its saved value, if the document has one. Options of other
// categories are skipped entirely and do not advance the cursor. Options
// absent from the document keep their current value; document entries with no
// live option are ignored. Apply never adds or removes options.
func (m *Matcher) Apply(opts []types.Option, category types.Category) {
	for _, opt := range opts {
		if opt.Category() != category {
			continue
		}

		if value, ok := m.match(codec.NormalizeName(opt.Name())); ok {
			// The option decides what to do with text that matches none of
			// its choices; a failed set leaves it unchanged.
			opt.SetFromText(value)
		}

		// Reset to the beginning if we reached the end, so entries earlier
		// in the document stay reachable for later options.
		if m.cursor >= len(m.entries) {
			m.cursor = 0
		}
	}
}

// match finds the saved value for the normalized option name. Fast path: the
// cursor entry matches and the cursor advances by one. Slow path: scan from
// the first entry; on a hit the cursor moves to the entry after the match, on
// a miss it is left at the end of the document.
func (m *Matcher) match(name string) (string, bool) {
	if len(m.entries) == 0 {
		return "", false
	}

	if m.cursor < len(m.entries) && codec.NormalizeName(m.entries[m.cursor].Name) == name {
		value := m.entries[m.cursor].Value
		m.cursor++
		return value, true
	}

	m.scans++
	for i := range m.entries {
		if codec.NormalizeName(m.entries[i].Name) == name {
			m.cursor = i + 1
			return m.entries[i].Value, true
		}
	}

	m.cursor = len(m.entries)
	return "", false
}

// Scans reports how many times Apply took the slow-path scan. Zero means the
// document order matched the live traversal order exactly.
func (m *Matcher) Scans() int {
	return m.scans
}
