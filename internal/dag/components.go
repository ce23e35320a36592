package dag

import (
	"container/heap"
	"errors"
	"sort"
	"sync"
)

// Groups partitions the graph into connected groups of characters that
// share no dependency edges with any other group. Each group's members are
// returned in code-point order; groups are ordered by their lowest member,
// so the partition is deterministic.
func (g *Graph) Groups() [][]string {
	groups := g.groupHandles()
	out := make([][]string, len(groups))
	for i, members := range groups {
		out[i] = g.idsOf(members)
	}
	return out
}

// groupHandles computes the connected components via union-find. Members
// are ascending handles; components are ordered by their smallest handle.
func (g *Graph) groupHandles() [][]int {
	uf := newUnionFind(len(g.chars))
	for h, comps := range g.comps {
		for _, c := range comps {
			uf.union(h, c)
		}
	}

	byRoot := make(map[int][]int)
	var roots []int
	for h := range g.chars {
		root := uf.find(h)
		if _, seen := byRoot[root]; !seen {
			roots = append(roots, root)
		}
		byRoot[root] = append(byRoot[root], h)
	}

	// Handles were visited in ascending order, so roots is already ordered
	// by each component's smallest member and the member lists are sorted.
	groups := make([][]int, len(roots))
	for i, root := range roots {
		groups[i] = byRoot[root]
	}
	return groups
}

// OrderParallel computes the same learning order as Order by running the
// heap-driven Kahn loop per connected group on separate goroutines and
// merging the sub-orders with a deterministic k-way merge over the
// composite key. Because groups share no edges, a group's next emission is
// always its own minimum ready node, so merging group heads by key
// reproduces the global order exactly. Correctness never depends on this
// path; it exists for very large corpora.
func (g *Graph) OrderParallel() ([]string, error) {
	keys := make([]sortKey, len(g.chars))
	for h, ch := range g.chars {
		keys[h] = keyFor(ch)
	}

	groups := g.groupHandles()
	subOrders := make([][]int, len(groups))
	subErrs := make([]error, len(groups))

	var wg sync.WaitGroup
	for i, members := range groups {
		wg.Add(1)
		go func() {
			defer wg.Done()
			subOrders[i], subErrs[i] = g.orderSubset(members, keys)
		}()
	}
	wg.Wait()

	// A cycle in any group fails the whole ordering; gather every
	// unresolved id so diagnostics match the sequential path.
	var unresolved []string
	for _, err := range subErrs {
		var ce *CycleError
		if errors.As(err, &ce) {
			unresolved = append(unresolved, ce.Unresolved...)
		} else if err != nil {
			return nil, err
		}
	}
	if len(unresolved) > 0 {
		sort.Strings(unresolved)
		return nil, &CycleError{Unresolved: unresolved}
	}

	return g.idsOf(mergeByKey(subOrders, keys)), nil
}

// mergeByKey merges per-group orders by repeatedly taking the head with
// the smallest composite key.
func mergeByKey(subOrders [][]int, keys []sortKey) []int {
	total := 0
	for _, sub := range subOrders {
		total += len(sub)
	}

	mh := &mergeHeap{keys: keys}
	for i, sub := range subOrders {
		if len(sub) > 0 {
			mh.heads = append(mh.heads, mergeHead{group: i, handle: sub[0]})
		}
	}
	heap.Init(mh)

	next := make([]int, len(subOrders)) // per-group cursor past the head
	for i := range next {
		next[i] = 1
	}

	merged := make([]int, 0, total)
	for mh.Len() > 0 {
		head := heap.Pop(mh).(mergeHead)
		merged = append(merged, head.handle)
		sub := subOrders[head.group]
		if next[head.group] < len(sub) {
			heap.Push(mh, mergeHead{group: head.group, handle: sub[next[head.group]]})
			next[head.group]++
		}
	}
	return merged
}

type mergeHead struct {
	group  int
	handle int
}

type mergeHeap struct {
	heads []mergeHead
	keys  []sortKey
}

func (m *mergeHeap) Len() int { return len(m.heads) }

func (m *mergeHeap) Less(i, j int) bool {
	return m.keys[m.heads[i].handle].less(m.keys[m.heads[j].handle])
}

func (m *mergeHeap) Swap(i, j int) {
	m.heads[i], m.heads[j] = m.heads[j], m.heads[i]
}

func (m *mergeHeap) Push(x any) {
	m.heads = append(m.heads, x.(mergeHead))
}

func (m *mergeHeap) Pop() any {
	n := len(m.heads)
	v := m.heads[n-1]
	m.heads = m.heads[:n-1]
	return v
}
