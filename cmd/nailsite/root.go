package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xw1nchester/nailsite/internal/config"
	"github.com/xw1nchester/nailsite/internal/logging"
)

type rootFlags struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "nailsite",
		Short:         "nailsite renders public salon sites from the salon backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file (defaults to $CONFIG_PATH)")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))

	return cmd
}

func (f *rootFlags) load() (*config.Config, *zap.Logger, error) {
	path := config.ResolvePath(f.configPath)
	if path == "" {
		return nil, nil, fmt.Errorf("config path is empty: pass --config or set CONFIG_PATH")
	}

	cfg, err := config.LoadByPath(path)
	if err != nil {
		return nil, nil, err
	}

	log, err := logging.New(cfg.Env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return cfg, log, nil
}
