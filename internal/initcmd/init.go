package initcmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/3-lines-studio/elysium/internal/adapters/cli"
	"github.com/3-lines-studio/elysium/internal/templates"
)

// Run scaffolds a new project from templateName into projectDir, which must
// be missing or empty.
func Run(projectDir string, templateName string, out *cli.Output) error {
	out.PrintHeader("Elysium Init")

	if _, err := os.Stat(projectDir); err == nil {
		entries, err := os.ReadDir(projectDir)
		if err != nil {
			return fmt.Errorf("failed to read directory: %w", err)
		}
		if len(entries) > 0 {
			return fmt.Errorf("directory '%s' already exists and is not empty", projectDir)
		}
	}

	templateFS, err := templates.GetTemplate(templateName)
	if err != nil {
		if errors.Is(err, templates.ErrInvalidTemplate) {
			return fmt.Errorf("invalid template '%s'", templateName)
		}
		return err
	}

	if err := os.MkdirAll(projectDir, 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	data := templates.TemplateData{
		Module: templates.DeriveModuleName(projectDir),
	}

	createdCount := 0

	err = fs.WalkDir(templateFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			targetDir := filepath.Join(projectDir, path)
			if err := os.MkdirAll(targetDir, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", targetDir, err)
			}
			return nil
		}

		content, err := fs.ReadFile(templateFS, path)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", path, err)
		}

		targetPath, isTemplate := templates.ProcessFilename(path)
		targetPath = filepath.Join(projectDir, targetPath)

		if err := os.WriteFile(targetPath, templates.ProcessContent(content, isTemplate, data), 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", targetPath, err)
		}

		if isTemplate {
			out.PrintStep("", "%s (generated)", targetPath)
		} else {
			out.PrintStep("", "%s", targetPath)
		}
		createdCount++

		return nil
	})
	if err != nil {
		return err
	}

	created, err := ensureProjectDirs(projectDir, out)
	if err != nil {
		return err
	}
	createdCount += created

	out.PrintSuccess("Created %d files using '%s' template", createdCount, templateName)
	out.PrintStep("", "Next steps:")
	out.PrintStep("", "cd %s", projectDir)
	out.PrintStep("", "go mod tidy")
	out.PrintStep("", "ELYSIUM_DEV=1 go run .")

	return nil
}

// Repair recreates the directories a project expects at runtime.
func Repair(projectDir string, out *cli.Output) error {
	out.PrintHeader("Elysium Doctor")

	if _, err := ensureProjectDirs(projectDir, out); err != nil {
		return err
	}

	out.PrintDone("Repair complete!")
	return nil
}

// ensureProjectDirs creates public/ and data/ with a .gitkeep each. public/
// must exist for go:embed and data/ holds the SQLite database.
func ensureProjectDirs(projectDir string, out *cli.Output) (int, error) {
	created := 0
	for _, dir := range []string{"public", "data"} {
		path := filepath.Join(projectDir, dir)
		gitkeepPath := filepath.Join(path, ".gitkeep")

		if err := os.MkdirAll(path, 0755); err != nil {
			return created, fmt.Errorf("failed to create %s directory: %w", dir, err)
		}

		if _, err := os.Stat(gitkeepPath); os.IsNotExist(err) {
			if err := os.WriteFile(gitkeepPath, nil, 0644); err != nil {
				return created, fmt.Errorf("failed to create .gitkeep: %w", err)
			}
			out.PrintSuccess("Created %s", gitkeepPath)
			created++
		}
	}
	return created, nil
}
