package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rinkside/rinkside/internal/data"
	"github.com/rinkside/rinkside/internal/model"
	"github.com/rinkside/rinkside/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var snapshotPath string
	var skinName string

	cmd := &cobra.Command{
		Use:           "rinkside",
		Short:         "NHL dashboard for the terminal",
		Long:          "rinkside shows scores, standings, and rosters in the terminal.\nDrill into teams and players with enter, back out with escape.",
		Version:       fmt.Sprintf("%s (commit %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if snapshotPath != "" {
				cfg.Snapshot = snapshotPath
			}
			if skinName != "" {
				cfg.Skin = skinName
			}
			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default is $HOME/.config/rinkside/config.yml)")
	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "league snapshot file overriding the bundled data")
	cmd.Flags().StringVar(&skinName, "skin", "", "skin name under $HOME/.config/rinkside/skins")
	return cmd
}

func run(cfg cliConfig) error {
	var provider model.Provider
	var err error
	if cfg.Snapshot != "" {
		provider, err = data.LoadFile(cfg.Snapshot)
	} else {
		provider, err = data.NewFixtureProvider()
	}
	if err != nil {
		return fmt.Errorf("loading league data: %w", err)
	}

	skin, err := tui.LoadSkin(cfg.Skin, configDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using default skin)\n", err)
	}

	return tui.Start(provider, skin, cfg.Wrap)
}
