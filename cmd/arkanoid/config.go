package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the built-in default configuration as YAML.

Save it to ~/.arcade/configs/arkanoid.yaml or ./configs/arkanoid.yaml and
edit it; files only need the settings they change.

With --resolved, prints the configuration a game would actually use after
the config search and the difficulty preset.

Examples:
  arkanoid config > ~/.arcade/configs/arkanoid.yaml
  arkanoid config --resolved --difficulty hard
  arkanoid config --resolved --config ./my-arkanoid.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective configuration instead of the default")
	addGameConfigFlags(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if !flagResolved {
		_, err := out.Write(config.GetDefaultYAML("arkanoid"))
		return err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, err := config.LoadArkanoid(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyArkanoidPreset(&cfg, preset)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: cannot encode: %w", err)
	}
	_, err = out.Write(data)
	return err
}
