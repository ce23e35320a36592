// Package edict parses EDICT2-format dictionary files and derives ordinal
// frequency ranks for characters from how many popular terms they appear in.
package edict

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
)

// ErrMalformedEntry is returned when a dictionary line cannot be parsed.
var ErrMalformedEntry = errors.New("malformed dictionary entry")

// EDICT2 headword layouts: "writing [reading] /..." or "writing /...".
var (
	writingReadingRE = regexp.MustCompile(`^([^ ]+) \[([^\[\]]+)\].+$`)
	writingRE        = regexp.MustCompile(`^([^ ]+).+$`)
)

// Term is one dictionary entry: one or more writings, optional kana
// readings, glosses, and the EDICT popularity marker.
type Term struct {
	ID       string
	Writings []string
	Readings []string
	Meanings []string
	Popular  bool
}

// ParseTerms reads an EDICT2 dictionary. The first line is the file header
// and is skipped; blank lines are ignored.
func ParseTerms(r io.Reader) ([]Term, error) {
	var terms []Term
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if lineNo == 1 || line == "" {
			continue
		}
		term, err := ParseTerm(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		terms = append(terms, term)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}
	return terms, nil
}

// ParseTerm parses a single EDICT2 line. Fields are separated by "/"; the
// last field is the entry id, the first is the headword, and the rest are
// glosses. A "(P)" gloss marks the term as popular and is not kept as a
// meaning.
func ParseTerm(line string) (Term, error) {
	var fields []string
	for _, f := range strings.Split(line, "/") {
		if f != "" {
			fields = append(fields, f)
		}
	}
	if len(fields) < 2 {
		return Term{}, fmt.Errorf("%w: %q", ErrMalformedEntry, line)
	}

	term := Term{ID: fields[len(fields)-1]}
	for _, f := range fields[1 : len(fields)-1] {
		if strings.EqualFold(f, "(P)") {
			term.Popular = true
			continue
		}
		term.Meanings = append(term.Meanings, f)
	}

	head := fields[0]
	if m := writingReadingRE.FindStringSubmatch(head); m != nil {
		term.Writings = splitHeadList(m[1])
		term.Readings = splitHeadList(m[2])
	} else if m := writingRE.FindStringSubmatch(head); m != nil {
		term.Writings = splitHeadList(m[1])
	} else {
		return Term{}, fmt.Errorf("%w: headword %q", ErrMalformedEntry, head)
	}
	return term, nil
}

// splitHeadList splits a ";"-separated headword list, trimming whitespace.
func splitHeadList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GroupByChar indexes terms by every distinct character appearing in any
// of their writings.
func GroupByChar(terms []Term) map[string][]*Term {
	groups := make(map[string][]*Term)
	for i := range terms {
		term := &terms[i]
		seen := make(map[string]bool)
		for _, w := range term.Writings {
			for _, r := range w {
				id := string(r)
				if !seen[id] {
					seen[id] = true
					groups[id] = append(groups[id], term)
				}
			}
		}
	}
	return groups
}

// PopularCounts returns, for each character, the number of popular terms
// it appears in. Characters that appear only in unpopular terms are omitted.
func PopularCounts(terms []Term) map[string]int {
	counts := make(map[string]int)
	for id, group := range GroupByChar(terms) {
		n := 0
		for _, term := range group {
			if term.Popular {
				n++
			}
		}
		if n > 0 {
			counts[id] = n
		}
	}
	return counts
}

// Ranks converts per-character popularity counts into ordinal frequency
// ranks starting at 1: higher count means lower rank number. Ties break on
// code-point order so the result never depends on map iteration order.
func Ranks(counts map[string]int) map[string]int {
	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if counts[ids[i]] != counts[ids[j]] {
			return counts[ids[i]] > counts[ids[j]]
		}
		return ids[i] < ids[j]
	})

	ranks := make(map[string]int, len(ids))
	for i, id := range ids {
		ranks[id] = i + 1
	}
	return ranks
}
