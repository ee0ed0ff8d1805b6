package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-rhythm/internal/config"
)

var flagConfigEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the highway config",
	Long: `Print the default highway config as YAML. Save it to
~/.rhythm/configs/highway.yaml or pass it to 'rhythm play --config' to
customise the hit window, timing and endless mode.

With --effective, prints the config a game would use after the search
order and --difficulty preset are applied.

Examples:
  rhythm config > ~/.rhythm/configs/highway.yaml
  rhythm config --effective --difficulty hard`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigEffective, "effective", false, "Print the resolved config instead of the defaults")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom highway config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagConfigEffective {
		os.Stdout.Write(config.GetDefaultYAML("highway"))
		return
	}

	cfg, err := config.LoadHighway(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyHighwayPreset(&cfg, preset)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
