package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wjt/fewerror/internal/app"
	"github.com/wjt/fewerror/internal/state"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Show the reply state for the configured identity",
	RunE:  runState,
}

func runState(cmd *cobra.Command, args []string) error {
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return err
	}

	st, err := state.Load(cfg.Identity, cfg.StateDir, state.Options{
		Timeout:        cfg.Timeout(),
		PerWordTimeout: cfg.PerWordTimeout(),
		Logger:         logger,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s\n", state.Filename(cfg.Identity, cfg.StateDir), st)
	return nil
}
