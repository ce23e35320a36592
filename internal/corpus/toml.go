package corpus

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// tomlFile is the TOML-serializable corpus document: an array of character
// tables under the [[character]] key.
type tomlFile struct {
	Characters []tomlCharacter `toml:"character"`
}

// tomlCharacter mirrors Character with TOML field tags. Components are
// written as an array of glyph strings rather than a glyph run so authors
// can diff entries line by line.
type tomlCharacter struct {
	ID         string   `toml:"id"`
	Radical    bool     `toml:"radical,omitempty"`
	Components []string `toml:"components,omitempty"`
	Frequency  int      `toml:"frequency,omitempty"`
	Grade      int      `toml:"grade,omitempty"`
	Strokes    int      `toml:"strokes,omitempty"`
	Meaning    string   `toml:"meaning,omitempty"`
	Readings   []string `toml:"readings,omitempty"`
	Note       string   `toml:"note,omitempty"`
}

// ParseTOML decodes a TOML corpus document.
func ParseTOML(data []byte) ([]Character, error) {
	var f tomlFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing corpus TOML: %w", err)
	}
	entries := make([]Character, 0, len(f.Characters))
	for _, tc := range f.Characters {
		entries = append(entries, Character{
			ID:         tc.ID,
			IsRadical:  tc.Radical,
			Components: tc.Components,
			Frequency:  tc.Frequency,
			Grade:      tc.Grade,
			Strokes:    tc.Strokes,
			Meaning:    tc.Meaning,
			Readings:   tc.Readings,
			Note:       tc.Note,
		})
	}
	return entries, nil
}

// LoadTOMLFile reads and decodes a TOML corpus file.
func LoadTOMLFile(path string) ([]Character, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus file: %w", err)
	}
	return ParseTOML(data)
}

// LoadTSVFile reads and decodes a TSV corpus file.
func LoadTSVFile(path string) ([]Character, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus file: %w", err)
	}
	defer f.Close()
	return ParseTSV(f)
}
