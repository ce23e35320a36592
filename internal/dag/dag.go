// Package dag builds the character dependency graph and computes the
// deterministic learning order over it. Nodes are kept in an arena indexed
// by stable integer handles assigned at build time; all adjacency is
// handle-to-handle, so a built graph is immutable and freely shareable.
package dag

import (
	"fmt"
	"sort"

	"github.com/tategaki/kanjiorder/internal/corpus"
)

// Graph is the immutable dependency graph over a corpus snapshot.
// An edge runs from a component (prerequisite) to each character built
// from it: "learn the component first."
type Graph struct {
	chars []*corpus.Character // arena; the handle of a node is its index
	index map[string]int      // id → handle
	comps [][]int             // handle → component handles (deduped, ascending)
	deps  [][]int             // handle → dependent handles (deduped, ascending)
	edges int
}

// Build converts a validated corpus into a dependency graph in O(V+E).
// Handles are assigned in code-point order of the ids so identical corpora
// always produce identical graphs. Duplicate component references collapse
// to a single edge; a self reference fails with corpus.ErrSelfDependency
// and an unknown component with corpus.ErrDanglingRef (both normally caught
// at load time, re-checked here because Build owns the edge contract).
func Build(c *corpus.Corpus) (*Graph, error) {
	ids := c.IDs()
	g := &Graph{
		chars: make([]*corpus.Character, len(ids)),
		index: make(map[string]int, len(ids)),
		comps: make([][]int, len(ids)),
		deps:  make([][]int, len(ids)),
	}
	for h, id := range ids {
		ch, err := c.Get(id)
		if err != nil {
			return nil, err
		}
		g.chars[h] = ch
		g.index[id] = h
	}

	for h, ch := range g.chars {
		seen := make(map[int]bool, len(ch.Components))
		for _, comp := range ch.Components {
			if comp == ch.ID {
				return nil, fmt.Errorf("%w: %s", corpus.ErrSelfDependency, ch.ID)
			}
			ch2, ok := g.index[comp]
			if !ok {
				return nil, fmt.Errorf("%w: %s -> %s", corpus.ErrDanglingRef, ch.ID, comp)
			}
			if seen[ch2] {
				continue
			}
			seen[ch2] = true
			g.comps[h] = append(g.comps[h], ch2)
			g.deps[ch2] = append(g.deps[ch2], h)
			g.edges++
		}
		sort.Ints(g.comps[h])
	}
	for h := range g.deps {
		sort.Ints(g.deps[h])
	}
	return g, nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.chars)
}

// EdgeCount returns the number of distinct component edges.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Contains reports whether the graph has a node for the given id.
func (g *Graph) Contains(id string) bool {
	_, ok := g.index[id]
	return ok
}

// Character returns the character behind the given id, or corpus.ErrNotFound.
func (g *Graph) Character(id string) (*corpus.Character, error) {
	h, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", corpus.ErrNotFound, id)
	}
	return g.chars[h], nil
}

// Components returns the ids of the direct prerequisites of id, in
// code-point order.
func (g *Graph) Components(id string) ([]string, error) {
	h, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", corpus.ErrNotFound, id)
	}
	return g.idsOf(g.comps[h]), nil
}

// Dependents returns the ids of the characters directly built from id, in
// code-point order.
func (g *Graph) Dependents(id string) ([]string, error) {
	h, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", corpus.ErrNotFound, id)
	}
	return g.idsOf(g.deps[h]), nil
}

// idsOf maps handles back to ids. Handle order is code-point order, so the
// result is already sorted.
func (g *Graph) idsOf(handles []int) []string {
	ids := make([]string, len(handles))
	for i, h := range handles {
		ids[i] = g.chars[h].ID
	}
	return ids
}
