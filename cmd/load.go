package cmd

import (
	"fmt"
	"os"

	"github.com/tategaki/kanjiorder/internal/config"
	"github.com/tategaki/kanjiorder/internal/corpus"
	"github.com/tategaki/kanjiorder/internal/edict"
	"github.com/tategaki/kanjiorder/internal/plan"
)

// loadEntries reads the corpus file in the configured format and, when an
// EDICT2 dictionary is configured, fills in frequency ranks derived from
// popular-term counts for characters that carry no explicit rank.
func loadEntries(cfg config.Config) ([]corpus.Character, error) {
	var entries []corpus.Character
	var err error
	switch cfg.CorpusFormat {
	case "tsv":
		entries, err = corpus.LoadTSVFile(cfg.CorpusPath)
	case "toml":
		entries, err = corpus.LoadTOMLFile(cfg.CorpusPath)
	default:
		return nil, fmt.Errorf("unknown corpus format %q (want tsv or toml)", cfg.CorpusFormat)
	}
	if err != nil {
		return nil, err
	}

	if cfg.EdictPath != "" {
		if err := applyDerivedRanks(entries, cfg.EdictPath); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// applyDerivedRanks parses the dictionary and sets Frequency on entries
// that have none. Explicit corpus ranks always win over derived ones.
func applyDerivedRanks(entries []corpus.Character, edictPath string) error {
	f, err := os.Open(edictPath)
	if err != nil {
		return fmt.Errorf("reading dictionary: %w", err)
	}
	defer f.Close()

	terms, err := edict.ParseTerms(f)
	if err != nil {
		return err
	}
	ranks := edict.Ranks(edict.PopularCounts(terms))
	for i := range entries {
		if entries[i].Frequency == 0 {
			entries[i].Frequency = ranks[entries[i].ID]
		}
	}
	return nil
}

// buildSnapshot runs the full pipeline over the configured inputs.
func buildSnapshot(cfg config.Config) (*plan.Snapshot, error) {
	entries, err := loadEntries(cfg)
	if err != nil {
		return nil, err
	}
	var p plan.Planner
	return p.Rebuild(entries)
}
