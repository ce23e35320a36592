// Package order exposes a computed learning order to consumers as an
// indexable, filterable sequence. An Order is immutable after construction
// and safe for any number of concurrent readers.
package order

import (
	"fmt"
	"iter"

	"github.com/tategaki/kanjiorder/internal/corpus"
)

// Order is one computed learning-order snapshot over a corpus.
type Order struct {
	corpus *corpus.Corpus
	seq    []string
	pos    map[string]int
}

// New binds an ordered id sequence to the corpus it was computed from.
// Every id in seq must exist in the corpus; New fails otherwise so a
// mismatched corpus/order pair can never be published.
func New(c *corpus.Corpus, seq []string) (*Order, error) {
	pos := make(map[string]int, len(seq))
	for i, id := range seq {
		if !c.Has(id) {
			return nil, fmt.Errorf("%w: ordered id %s", corpus.ErrNotFound, id)
		}
		pos[id] = i
	}
	own := make([]string, len(seq))
	copy(own, seq)
	return &Order{corpus: c, seq: own, pos: pos}, nil
}

// Len returns the number of characters in the order.
func (o *Order) Len() int {
	return len(o.seq)
}

// At returns the character at the given position. It panics on an
// out-of-range position, matching slice semantics.
func (o *Order) At(i int) *corpus.Character {
	ch, err := o.corpus.Get(o.seq[i])
	if err != nil {
		panic(fmt.Sprintf("order out of sync with corpus: %v", err))
	}
	return ch
}

// IDs returns a copy of the full ordered sequence.
func (o *Order) IDs() []string {
	out := make([]string, len(o.seq))
	copy(out, o.seq)
	return out
}

// IndexOf returns the position of id in the order, or corpus.ErrNotFound.
func (o *Order) IndexOf(id string) (int, error) {
	i, ok := o.pos[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", corpus.ErrNotFound, id)
	}
	return i, nil
}

// RangeUpTo returns the ordered prefix from position 0 through and
// including id: everything that must be learned to reach it.
func (o *Order) RangeUpTo(id string) ([]string, error) {
	i, err := o.IndexOf(id)
	if err != nil {
		return nil, err
	}
	out := make([]string, i+1)
	copy(out, o.seq[:i+1])
	return out, nil
}

// Filter returns a lazy sequence of (position, character) pairs satisfying
// pred, in learning order. The sequence is restartable: each range over it
// re-evaluates pred against the cached order without recomputing anything.
func (o *Order) Filter(pred func(*corpus.Character) bool) iter.Seq2[int, *corpus.Character] {
	return func(yield func(int, *corpus.Character) bool) {
		for i := range o.seq {
			ch := o.At(i)
			if !pred(ch) {
				continue
			}
			if !yield(i, ch) {
				return
			}
		}
	}
}

// Radicals returns the lazy sub-sequence of characters flagged as radicals.
func (o *Order) Radicals() iter.Seq2[int, *corpus.Character] {
	return o.Filter(func(ch *corpus.Character) bool { return ch.IsRadical })
}
