package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/elysium/internal/config"
	"github.com/3-lines-studio/elysium/internal/logging"
)

type rootFlags struct {
	configPath string
	dev        bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "elysium",
		Short:         "Elysium serves server-rendered component pages",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to config file (default: ./elysium.{yaml,toml,json})")
	cmd.PersistentFlags().BoolVar(&flags.dev, "dev", false, "Enable dev mode (overrides config)")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newMigrateCmd(flags))
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig resolves the config and builds the logger writing to the
// command's stderr.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	if flags.dev {
		cfg.Dev = true
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return config.Config{}, nil, err
	}
	slog.SetDefault(logger)
	return cfg, logger, nil
}
