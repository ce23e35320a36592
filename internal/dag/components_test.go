package dag

import (
	"errors"
	"testing"

	"github.com/tategaki/kanjiorder/internal/corpus"
)

// twoGroupCorpus holds two independent families: the 木 tree family and
// the 日/月 pair, plus an isolated character.
func twoGroupCorpus() []corpus.Character {
	return []corpus.Character{
		{ID: "木", Frequency: 1},
		{ID: "林", Components: []string{"木"}, Frequency: 5},
		{ID: "森", Components: []string{"木", "林"}, Frequency: 10},
		{ID: "日", Frequency: 2},
		{ID: "月", Frequency: 3},
		{ID: "明", Components: []string{"日", "月"}, Frequency: 8},
		{ID: "水", Frequency: 4},
	}
}

func TestGroups(t *testing.T) {
	t.Parallel()
	g := buildGraph(t, twoGroupCorpus())
	groups := g.Groups()
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3: %v", len(groups), groups)
	}

	sizes := make(map[int]int)
	for _, members := range groups {
		sizes[len(members)]++
	}
	if sizes[3] != 2 || sizes[1] != 1 {
		t.Errorf("group sizes wrong: %v", groups)
	}

	// Deterministic: groups ordered by their lowest member, members sorted.
	again := g.Groups()
	for i := range groups {
		if len(groups[i]) != len(again[i]) {
			t.Fatalf("partition not stable: %v vs %v", groups, again)
		}
		for j := range groups[i] {
			if groups[i][j] != again[i][j] {
				t.Fatalf("partition not stable: %v vs %v", groups, again)
			}
		}
	}
}

func TestOrderParallel_MatchesSequential(t *testing.T) {
	t.Parallel()
	g := buildGraph(t, twoGroupCorpus())

	sequential, err := g.Order()
	if err != nil {
		t.Fatalf("Order: %v", err)
	}
	parallel, err := g.OrderParallel()
	if err != nil {
		t.Fatalf("OrderParallel: %v", err)
	}

	if len(sequential) != len(parallel) {
		t.Fatalf("lengths differ: %d vs %d", len(sequential), len(parallel))
	}
	for i := range sequential {
		if sequential[i] != parallel[i] {
			t.Fatalf("orders diverge at %d:\n sequential %v\n parallel   %v",
				i, sequential, parallel)
		}
	}
}

func TestOrderParallel_Cycle(t *testing.T) {
	t.Parallel()
	g := buildGraph(t, []corpus.Character{
		{ID: "木"},
		{ID: "A", Components: []string{"B"}},
		{ID: "B", Components: []string{"A"}},
	})
	_, err := g.OrderParallel()
	var ce *CycleError
	if !errors.As(err, &ce) {
		t.Fatalf("got %v, want *CycleError", err)
	}
	if len(ce.Unresolved) != 2 || ce.Unresolved[0] != "A" || ce.Unresolved[1] != "B" {
		t.Errorf("Unresolved = %v, want [A B]", ce.Unresolved)
	}
}

func TestPageRank(t *testing.T) {
	t.Parallel()

	t.Run("empty graph", func(t *testing.T) {
		t.Parallel()
		g := buildGraph(t, nil)
		if scores := g.PageRank(DefaultPageRankOptions()); len(scores) != 0 {
			t.Errorf("scores = %v, want empty", scores)
		}
	})

	t.Run("components outrank dependents", func(t *testing.T) {
		t.Parallel()
		g := buildGraph(t, treeCorpus())
		scores := g.PageRank(DefaultPageRankOptions())

		if scores["木"] <= scores["森"] {
			t.Errorf("score(木)=%f should exceed score(森)=%f", scores["木"], scores["森"])
		}

		var sum float64
		for _, s := range scores {
			sum += s
		}
		if sum < 0.99 || sum > 1.01 {
			t.Errorf("scores sum to %f, want ~1.0", sum)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()
		g := buildGraph(t, twoGroupCorpus())
		a := g.PageRank(DefaultPageRankOptions())
		b := g.PageRank(DefaultPageRankOptions())
		for id := range a {
			if a[id] != b[id] {
				t.Fatalf("score(%s) differs between runs: %v vs %v", id, a[id], b[id])
			}
		}
	})
}
