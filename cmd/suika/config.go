package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-suika/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the game config as YAML after applying the search order:
--config, ~/.suika/configs/suika.yaml, ./configs/suika.yaml, then the
built-in defaults.

Examples:
  suika config
  suika config --config ./my-suika.yaml
  suika config > ~/.suika/configs/suika.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	cfg, err := config.LoadSuikaLogged(flagConfig, logger)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
