// Package plan owns the corpus → graph → order pipeline and its snapshot
// lifecycle. A snapshot is computed once per corpus revision and published
// atomically; in-flight readers keep whatever snapshot they already hold.
package plan

import (
	"sync/atomic"
	"time"

	"github.com/tategaki/kanjiorder/internal/corpus"
	"github.com/tategaki/kanjiorder/internal/dag"
	"github.com/tategaki/kanjiorder/internal/order"
)

// Snapshot is one immutable result of the full pipeline.
type Snapshot struct {
	Corpus  *corpus.Corpus
	Graph   *dag.Graph
	Order   *order.Order
	BuiltAt time.Time
}

// Planner recomputes snapshots from corpus revisions. The zero value is
// usable; Snapshot returns nil until the first successful Rebuild.
type Planner struct {
	current atomic.Pointer[Snapshot]
}

// Rebuild runs the whole pipeline over the given entries and, on success,
// publishes the result as the current snapshot. On any failure the
// previous snapshot stays published untouched, so a bad corpus edit can
// never take down readers of the last good order.
func (p *Planner) Rebuild(entries []corpus.Character) (*Snapshot, error) {
	c, err := corpus.Load(entries)
	if err != nil {
		return nil, err
	}
	g, err := dag.Build(c)
	if err != nil {
		return nil, err
	}
	seq, err := g.Order()
	if err != nil {
		return nil, err
	}
	o, err := order.New(c, seq)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Corpus:  c,
		Graph:   g,
		Order:   o,
		BuiltAt: time.Now(),
	}
	p.current.Store(snap)
	return snap, nil
}

// Snapshot returns the current published snapshot, or nil if no rebuild
// has succeeded yet. The returned snapshot remains valid even if a newer
// one is published while the caller still holds it.
func (p *Planner) Snapshot() *Snapshot {
	return p.current.Load()
}
