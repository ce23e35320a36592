package plan

import (
	"errors"
	"testing"

	"github.com/tategaki/kanjiorder/internal/corpus"
	"github.com/tategaki/kanjiorder/internal/dag"
)

func TestPlanner_Rebuild(t *testing.T) {
	t.Parallel()
	var p Planner

	if p.Snapshot() != nil {
		t.Fatal("zero-value planner should have no snapshot")
	}

	snap, err := p.Rebuild([]corpus.Character{
		{ID: "木", Frequency: 1},
		{ID: "林", Components: []string{"木"}, Frequency: 5},
	})
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	if snap.Order.Len() != 2 {
		t.Errorf("order has %d entries, want 2", snap.Order.Len())
	}
	if p.Snapshot() != snap {
		t.Error("published snapshot differs from returned one")
	}
}

func TestPlanner_FailedRebuildKeepsOldSnapshot(t *testing.T) {
	t.Parallel()
	var p Planner

	good, err := p.Rebuild([]corpus.Character{{ID: "木"}})
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	t.Run("load failure", func(t *testing.T) {
		_, err := p.Rebuild([]corpus.Character{{ID: "木"}, {ID: "木"}})
		if !errors.Is(err, corpus.ErrDuplicateID) {
			t.Errorf("got %v, want ErrDuplicateID", err)
		}
		if p.Snapshot() != good {
			t.Error("failed rebuild replaced the published snapshot")
		}
	})

	t.Run("cycle failure", func(t *testing.T) {
		_, err := p.Rebuild([]corpus.Character{
			{ID: "A", Components: []string{"B"}},
			{ID: "B", Components: []string{"A"}},
		})
		if !errors.Is(err, dag.ErrCycle) {
			t.Errorf("got %v, want ErrCycle", err)
		}
		if p.Snapshot() != good {
			t.Error("failed rebuild replaced the published snapshot")
		}
	})
}

func TestPlanner_NewSnapshotLeavesOldValid(t *testing.T) {
	t.Parallel()
	var p Planner

	first, err := p.Rebuild([]corpus.Character{{ID: "木"}})
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	second, err := p.Rebuild([]corpus.Character{{ID: "木"}, {ID: "水"}})
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	// A reader holding the first snapshot keeps a fully working view.
	if _, err := first.Order.IndexOf("木"); err != nil {
		t.Errorf("old snapshot broken after swap: %v", err)
	}
	if first.Order.Len() != 1 || second.Order.Len() != 2 {
		t.Errorf("snapshot lengths = %d/%d, want 1/2", first.Order.Len(), second.Order.Len())
	}
	if p.Snapshot() != second {
		t.Error("latest snapshot not published")
	}
}
