package config

import "github.com/spf13/viper"

// Config holds all runtime configuration for a kanjiorder invocation.
// Values are populated from .kanjiorder.yaml, KANJIORDER_* env vars, and
// CLI flags.
type Config struct {
	// CorpusPath is the character corpus file.
	CorpusPath string `mapstructure:"corpus_path"`

	// CorpusFormat selects the corpus decoder: "tsv" or "toml".
	CorpusFormat string `mapstructure:"corpus_format"`

	// EdictPath optionally points at an EDICT2 dictionary used to derive
	// frequency ranks for characters that carry none. Empty disables it.
	EdictPath string `mapstructure:"edict_path"`

	// Color toggles ANSI colors in terminal output.
	Color bool `mapstructure:"color"`

	// DebounceMS is the watch-mode debounce window in milliseconds.
	DebounceMS int `mapstructure:"debounce_ms"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("corpus_path", "data/characters.txt")
	viper.SetDefault("corpus_format", "tsv")
	viper.SetDefault("edict_path", "")
	viper.SetDefault("color", true)
	viper.SetDefault("debounce_ms", 200)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
