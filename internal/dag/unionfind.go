package dag

// unionFind is a disjoint-set structure over the arena handles, with path
// compression and union by rank. It partitions the graph into connected
// groups that share no dependency edges.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

// find returns the representative of the set containing h, compressing the
// path as it goes.
func (uf *unionFind) find(h int) int {
	if uf.parent[h] != h {
		uf.parent[h] = uf.find(uf.parent[h])
	}
	return uf.parent[h]
}

// union merges the sets containing a and b, attaching the shorter tree
// under the taller one.
func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	switch {
	case uf.rank[ra] < uf.rank[rb]:
		uf.parent[ra] = rb
	case uf.rank[ra] > uf.rank[rb]:
		uf.parent[rb] = ra
	default:
		uf.parent[rb] = ra
		uf.rank[ra]++
	}
}
