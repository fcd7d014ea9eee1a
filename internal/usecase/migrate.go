package usecase

import (
	"context"
	"fmt"
)

type MigrateService struct {
	migrator Migrator
	output   CLIOutput
}

func NewMigrateService(migrator Migrator, output CLIOutput) *MigrateService {
	return &MigrateService{
		migrator: migrator,
		output:   output,
	}
}

func (s *MigrateService) Run(ctx context.Context, target string) error {
	s.output.PrintHeader("Elysium Migrate")
	s.output.PrintStep("", "Applying migrations to %s", target)

	version, err := s.migrator.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("migrate %s: %w", target, err)
	}

	s.output.PrintSuccess("Schema at version %d", version)
	return nil
}
