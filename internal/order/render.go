package order

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tategaki/kanjiorder/internal/ansi"
	"github.com/tategaki/kanjiorder/internal/dag"
)

// Renderer produces a textual view of a learning order. Each
// implementation is a distinct presentation of the same snapshot.
type Renderer interface {
	Render(g *dag.Graph, o *Order) string
}

// ListRenderer renders the order as a numbered list, one character per
// line, with the direct components annotated.
type ListRenderer struct {
	// Color enables ANSI coloring: radicals cyan, kanji plain.
	Color bool

	// Limit caps the number of lines; zero renders everything.
	Limit int
}

// Render produces the numbered list.
func (r ListRenderer) Render(g *dag.Graph, o *Order) string {
	if o.Len() == 0 {
		return "No characters in corpus.\n"
	}

	n := o.Len()
	if r.Limit > 0 && r.Limit < n {
		n = r.Limit
	}

	var b strings.Builder
	for i := 0; i < n; i++ {
		ch := o.At(i)
		glyph := ch.ID
		if r.Color && ch.IsRadical {
			glyph = ansi.Cyan + glyph + ansi.Reset
		}
		fmt.Fprintf(&b, "%4d. %s", i+1, glyph)
		if comps, err := g.Components(ch.ID); err == nil && len(comps) > 0 {
			fmt.Fprintf(&b, "  [%s]", strings.Join(comps, " "))
		}
		b.WriteByte('\n')
	}
	if n < o.Len() {
		fmt.Fprintf(&b, "... %d more\n", o.Len()-n)
	}
	return b.String()
}

// DetailRenderer renders each character with its dictionary metadata:
// readings, meaning, stroke count, and note when present.
type DetailRenderer struct {
	Color bool
	Limit int
}

// Render produces the annotated list.
func (r DetailRenderer) Render(g *dag.Graph, o *Order) string {
	if o.Len() == 0 {
		return "No characters in corpus.\n"
	}

	n := o.Len()
	if r.Limit > 0 && r.Limit < n {
		n = r.Limit
	}

	var b strings.Builder
	for i := 0; i < n; i++ {
		ch := o.At(i)
		role := "kanji"
		if ch.IsRadical {
			role = "radical"
		}
		glyph := ch.ID
		if r.Color && ch.IsRadical {
			glyph = ansi.Cyan + glyph + ansi.Reset
		}
		fmt.Fprintf(&b, "%4d. %s  (%s", i+1, glyph, role)
		if ch.Strokes > 0 {
			fmt.Fprintf(&b, ", %d strokes", ch.Strokes)
		}
		b.WriteString(")\n")
		if len(ch.Readings) > 0 {
			fmt.Fprintf(&b, "      readings: %s\n", strings.Join(ch.Readings, "、"))
		}
		if ch.Meaning != "" {
			fmt.Fprintf(&b, "      meaning:  %s\n", ch.Meaning)
		}
		if ch.Note != "" {
			fmt.Fprintf(&b, "      note:     %s\n", ch.Note)
		}
	}
	if n < o.Len() {
		fmt.Fprintf(&b, "... %d more\n", o.Len()-n)
	}
	return b.String()
}

// GroupRenderer renders the order split into its independent dependency
// groups; each group can be studied without touching the others.
type GroupRenderer struct {
	Color bool
}

// Render produces the per-group view.
func (r GroupRenderer) Render(g *dag.Graph, o *Order) string {
	groups := g.Groups()
	if len(groups) == 0 {
		return "No characters in corpus.\n"
	}

	// Present each group in learning order rather than code-point order.
	pos := make(map[string]int, o.Len())
	for i, id := range o.IDs() {
		pos[id] = i
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d independent groups\n\n", len(groups))
	for i, members := range groups {
		ordered := make([]string, len(members))
		copy(ordered, members)
		sort.Slice(ordered, func(a, b int) bool { return pos[ordered[a]] < pos[ordered[b]] })

		fmt.Fprintf(&b, "group %d (%d characters): %s\n", i+1, len(members), strings.Join(ordered, " "))
	}
	return b.String()
}
