package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration snake would play with, as YAML.

The configuration is searched in this order:
  --config path, ~/.arcade/configs/snake.yaml, ./configs/snake.yaml,
  then the built-in default. --difficulty is applied on top.

Examples:
  snake config
  snake config --difficulty hard
  snake config --defaults > ~/.arcade/configs/snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in default file")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagConfigDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, source, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	data, err := config.MarshalSnake(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	fmt.Fprintf(out, "# source: %s\n", source)
	if flagDifficulty != "" {
		fmt.Fprintf(out, "# difficulty: %s\n", flagDifficulty)
	}
	_, err = out.Write(data)
	return err
}
