// Package corpus provides the typed character corpus that feeds the
// dependency-ordering pipeline. A corpus is loaded once from structured
// input, validated for structural well-formedness, and read-only afterwards.
package corpus

import (
	"errors"
	"fmt"
	"sort"
)

// ErrDuplicateID is returned when the same character id appears twice in the input.
var ErrDuplicateID = errors.New("duplicate character id")

// ErrDanglingRef is returned when a component references an id absent from the corpus.
var ErrDanglingRef = errors.New("dangling component reference")

// ErrSelfDependency is returned when a character lists itself as a component.
var ErrSelfDependency = errors.New("self-referencing component")

// ErrNotFound is returned when a lookup references an id absent from the corpus.
var ErrNotFound = errors.New("character not found")

// Character is a single entry in the corpus: a radical, a kanji, or both.
// The radical/kanji duality is a role flag on one entity, never two
// identities for the same glyph.
type Character struct {
	// ID is the glyph itself (or a stable code point rendering of it).
	ID string

	// IsRadical marks the character as usable as a graphic component.
	// A radical may still be a standalone kanji elsewhere.
	IsRadical bool

	// Components lists the IDs of the direct prerequisites this character
	// is composed of. Empty for atomic radicals.
	Components []string

	// Frequency is an ordinal rank (1 = most common). Zero means unranked;
	// unranked characters sort after every ranked one.
	Frequency int

	// Grade is the school grade the character is taught in. Zero = unknown.
	Grade int

	// Strokes is the stroke count. Zero = unknown.
	Strokes int

	// Meaning, Readings and Note carry dictionary metadata for display.
	// They never influence the computed order.
	Meaning  string
	Readings []string
	Note     string
}

// Corpus is a validated, immutable collection of characters keyed by id.
type Corpus struct {
	byID map[string]*Character
}

// Load validates the given entries and returns a read-only corpus.
// It fails with ErrDuplicateID if an id appears twice, ErrSelfDependency
// if a character lists itself as a component, and ErrDanglingRef if a
// component references an id not present among the entries. Rejecting
// dangling references (rather than treating them as atomic) surfaces
// authoring mistakes at load time.
func Load(entries []Character) (*Corpus, error) {
	byID := make(map[string]*Character, len(entries))
	for i := range entries {
		ch := entries[i]
		if _, exists := byID[ch.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, ch.ID)
		}
		byID[ch.ID] = &ch
	}
	for _, ch := range byID {
		for _, comp := range ch.Components {
			if comp == ch.ID {
				return nil, fmt.Errorf("%w: %s", ErrSelfDependency, ch.ID)
			}
			if _, ok := byID[comp]; !ok {
				return nil, fmt.Errorf("%w: %s -> %s", ErrDanglingRef, ch.ID, comp)
			}
		}
	}
	return &Corpus{byID: byID}, nil
}

// Get returns the character with the given id, or ErrNotFound.
func (c *Corpus) Get(id string) (*Character, error) {
	ch, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return ch, nil
}

// Has reports whether the corpus contains the given id.
func (c *Corpus) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Len returns the number of characters in the corpus.
func (c *Corpus) Len() int {
	return len(c.byID)
}

// IDs returns all character ids sorted by code point. The sorted copy keeps
// every downstream traversal independent of map iteration order.
func (c *Corpus) IDs() []string {
	ids := make([]string, 0, len(c.byID))
	for id := range c.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
