package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedLine is returned when a TSV corpus line does not have the
// expected field layout.
var ErrMalformedLine = errors.New("malformed corpus line")

// tsvFieldCount is the number of tab-separated fields per corpus line:
// glyph, components, stroke count, readings, meaning, radical flag, note.
const tsvFieldCount = 7

// ParseTSV reads the tab-separated corpus format. Each non-empty line is
//
//	glyph<TAB>components<TAB>strokes<TAB>readings<TAB>meaning<TAB>radical<TAB>note
//
// where components is a run of glyphs with no separator, readings are
// separated by "、", and radical is "1" or "0". Blank lines are skipped.
// ParseTSV only parses; structural validation happens in Load.
func ParseTSV(r io.Reader) ([]Character, error) {
	var entries []Character
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		ch, err := parseTSVLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		entries = append(entries, ch)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}
	return entries, nil
}

func parseTSVLine(line string) (Character, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != tsvFieldCount {
		return Character{}, fmt.Errorf("%w: %d fields, want %d", ErrMalformedLine, len(fields), tsvFieldCount)
	}

	glyphs := []rune(fields[0])
	if len(glyphs) == 0 {
		return Character{}, fmt.Errorf("%w: empty glyph", ErrMalformedLine)
	}
	id := string(glyphs[0])

	var components []string
	for _, r := range fields[1] {
		components = append(components, string(r))
	}

	strokes, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return Character{}, fmt.Errorf("%w: stroke count %q", ErrMalformedLine, fields[2])
	}

	var readings []string
	for _, rd := range strings.Split(fields[3], "、") {
		rd = strings.TrimSpace(rd)
		if rd != "" {
			readings = append(readings, rd)
		}
	}

	return Character{
		ID:         id,
		Components: components,
		Strokes:    strokes,
		Readings:   readings,
		Meaning:    fields[4],
		IsRadical:  strings.EqualFold(fields[5], "1"),
		Note:       fields[6],
	}, nil
}
