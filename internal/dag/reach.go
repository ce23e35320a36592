package dag

import (
	"fmt"

	"github.com/tategaki/kanjiorder/internal/corpus"
)

// Prerequisites returns every character transitively required before id
// can be learned, in code-point order. The id itself is not included.
func (g *Graph) Prerequisites(id string) ([]string, error) {
	h, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", corpus.ErrNotFound, id)
	}
	return g.idsOf(g.reachable(h, g.comps)), nil
}

// Unlocks returns every character that transitively depends on id, in
// code-point order: the characters that learning id helps unlock.
func (g *Graph) Unlocks(id string) ([]string, error) {
	h, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", corpus.ErrNotFound, id)
	}
	return g.idsOf(g.reachable(h, g.deps)), nil
}

// UnlockCount returns the number of transitive dependents of id. This is
// the "how many kanji does this component enable" score.
func (g *Graph) UnlockCount(id string) (int, error) {
	h, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", corpus.ErrNotFound, id)
	}
	return len(g.reachable(h, g.deps)), nil
}

// reachable collects all handles reachable from start over the given
// adjacency, excluding start, returned in ascending handle order.
func (g *Graph) reachable(start int, adj [][]int) []int {
	visited := make([]bool, len(g.chars))
	stack := []int{start}
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range adj[h] {
			if !visited[next] {
				visited[next] = true
				stack = append(stack, next)
			}
		}
	}
	visited[start] = false

	var out []int
	for h, v := range visited {
		if v {
			out = append(out, h)
		}
	}
	return out
}
