package main

import (
	"github.com/spf13/cobra"

	"github.com/3-lines-studio/elysium/internal/adapters/cli"
	"github.com/3-lines-studio/elysium/internal/db"
	"github.com/3-lines-studio/elysium/internal/usecase"
)

func newMigrateCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd, rootFlags)
			if err != nil {
				return err
			}

			client, err := db.Open(cmd.Context(), cfg.Database.Driver, cfg.Database.URL)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			output := cli.NewOutputTo(cmd.OutOrStdout(), cmd.ErrOrStderr())
			return usecase.NewMigrateService(client, output).Run(cmd.Context(), string(client.Dialect))
		},
	}
}
