package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "kanjiorder",
	Short: "Dependency-ordered kanji learning sequence",
	Long: "Kanjiorder computes a deterministic learning order for kanji: every radical\n" +
		"and component appears before the characters built from it, with frequency,\n" +
		"grade, and stroke count breaking ties.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .kanjiorder.yaml)")
	rootCmd.PersistentFlags().String("corpus", "", "corpus file path")
	rootCmd.PersistentFlags().String("format", "", "corpus format: tsv or toml")
	rootCmd.PersistentFlags().String("edict", "", "EDICT2 dictionary for derived frequency ranks")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable ANSI colors")

	_ = viper.BindPFlag("corpus_path", rootCmd.PersistentFlags().Lookup("corpus"))
	_ = viper.BindPFlag("corpus_format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("edict_path", rootCmd.PersistentFlags().Lookup("edict"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".kanjiorder")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("KANJIORDER")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()

	if noColor, _ := rootCmd.Flags().GetBool("no-color"); noColor {
		viper.Set("color", false)
	}
}
