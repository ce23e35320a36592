package dag

import (
	"container/heap"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/tategaki/kanjiorder/internal/corpus"
)

// ErrCycle is the sentinel wrapped by CycleError; check with errors.Is.
var ErrCycle = errors.New("cycle detected")

// CycleError reports an unresolved circular prerequisite chain. Unresolved
// holds the ids that could not be ordered, in code-point order. The engine
// never emits a partial order: a silently truncated learning order would
// drop reachable characters without warning.
type CycleError struct {
	Unresolved []string
}

// Error implements error.
func (e *CycleError) Error() string {
	return fmt.Sprintf("cycle detected among %d characters: %v", len(e.Unresolved), e.Unresolved)
}

// Unwrap makes errors.Is(err, ErrCycle) hold for CycleError values.
func (e *CycleError) Unwrap() error {
	return ErrCycle
}

// sortKey is the composite tie-break key: frequency rank, then grade, then
// stroke count (ascending, undefined last), then the id itself. Deriving a
// strict total order from one struct keeps the determinism property testable
// in isolation.
type sortKey struct {
	freq    int
	grade   int
	strokes int
	id      string
}

// keyFor maps the zero "undefined" ordinals to +inf so they sort last.
func keyFor(ch *corpus.Character) sortKey {
	k := sortKey{freq: ch.Frequency, grade: ch.Grade, strokes: ch.Strokes, id: ch.ID}
	if k.freq == 0 {
		k.freq = math.MaxInt
	}
	if k.grade == 0 {
		k.grade = math.MaxInt
	}
	if k.strokes == 0 {
		k.strokes = math.MaxInt
	}
	return k
}

func (a sortKey) less(b sortKey) bool {
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	if a.grade != b.grade {
		return a.grade < b.grade
	}
	if a.strokes != b.strokes {
		return a.strokes < b.strokes
	}
	return a.id < b.id
}

// readyHeap is a min-heap of node handles ordered by their sort keys.
// keys is the shared per-handle key table owned by the caller.
type readyHeap struct {
	handles []int
	keys    []sortKey
}

func (h *readyHeap) Len() int { return len(h.handles) }

func (h *readyHeap) Less(i, j int) bool {
	return h.keys[h.handles[i]].less(h.keys[h.handles[j]])
}

func (h *readyHeap) Swap(i, j int) {
	h.handles[i], h.handles[j] = h.handles[j], h.handles[i]
}

func (h *readyHeap) Push(x any) {
	h.handles = append(h.handles, x.(int))
}

func (h *readyHeap) Pop() any {
	n := len(h.handles)
	v := h.handles[n-1]
	h.handles = h.handles[:n-1]
	return v
}

// Order computes the deterministic learning order: Kahn's algorithm where
// the ready set is a priority queue over the composite sort key. Runs in
// O((V+E) log V). Returns a CycleError if any node stays unresolved.
func (g *Graph) Order() ([]string, error) {
	keys := make([]sortKey, len(g.chars))
	for h, ch := range g.chars {
		keys[h] = keyFor(ch)
	}
	all := make([]int, len(g.chars))
	for h := range all {
		all[h] = h
	}
	seq, err := g.orderSubset(all, keys)
	if err != nil {
		return nil, err
	}
	return g.idsOf(seq), nil
}

// orderSubset runs the heap-driven Kahn loop over a closed subset of
// handles (every component of a subset member must itself be a member).
// Returns the ordered handles, or a CycleError naming the leftovers.
func (g *Graph) orderSubset(handles []int, keys []sortKey) ([]int, error) {
	inDegree := make(map[int]int, len(handles))
	for _, h := range handles {
		inDegree[h] = len(g.comps[h])
	}

	ready := &readyHeap{keys: keys}
	for _, h := range handles {
		if inDegree[h] == 0 {
			ready.handles = append(ready.handles, h)
		}
	}
	heap.Init(ready)

	seq := make([]int, 0, len(handles))
	for ready.Len() > 0 {
		h := heap.Pop(ready).(int)
		seq = append(seq, h)
		for _, dep := range g.deps[h] {
			if _, tracked := inDegree[dep]; !tracked {
				continue
			}
			inDegree[dep]--
			if inDegree[dep] == 0 {
				heap.Push(ready, dep)
			}
		}
	}

	if len(seq) != len(handles) {
		emitted := make(map[int]bool, len(seq))
		for _, h := range seq {
			emitted[h] = true
		}
		var unresolved []string
		for _, h := range handles {
			if !emitted[h] {
				unresolved = append(unresolved, g.chars[h].ID)
			}
		}
		sort.Strings(unresolved)
		return nil, &CycleError{Unresolved: unresolved}
	}
	return seq, nil
}
