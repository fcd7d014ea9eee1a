package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/elysium/internal/adapters/cli"
	"github.com/3-lines-studio/elysium/internal/initcmd"
	"github.com/3-lines-studio/elysium/internal/templates"
)

func newInitCmd() *cobra.Command {
	var template string

	cmd := &cobra.Command{
		Use:   "init <project-dir>",
		Short: "Scaffold a new Elysium project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectDir, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("failed to resolve project directory: %w", err)
			}
			return initcmd.Run(projectDir, template, cli.NewOutputTo(cmd.OutOrStdout(), cmd.ErrOrStderr()))
		},
	}

	cmd.Flags().StringVar(&template, "template", "minimal",
		"Template to use ("+strings.Join(templates.Names(), ", ")+")")

	return cmd
}

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor [project-dir]",
		Short: "Recreate missing project directories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectDir := "."
			if len(args) == 1 {
				projectDir = args[0]
			}
			return initcmd.Repair(projectDir, cli.NewOutputTo(cmd.OutOrStdout(), cmd.ErrOrStderr()))
		},
	}
}
