package templates

import (
	"embed"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
)

//go:embed all:minimal
var minimalFS embed.FS

var validTemplates = []string{"minimal"}

var ErrInvalidTemplate = errors.New("invalid template name")

func GetTemplate(name string) (fs.FS, error) {
	switch name {
	case "minimal":
		return fs.Sub(minimalFS, "minimal")
	default:
		return nil, ErrInvalidTemplate
	}
}

func Names() []string {
	return append([]string(nil), validTemplates...)
}

type TemplateData struct {
	Module string
}

// ProcessFilename strips the .tmpl suffix and reports whether the file
// needs placeholder substitution.
func ProcessFilename(filename string) (string, bool) {
	if before, ok := strings.CutSuffix(filename, ".tmpl"); ok {
		return before, true
	}
	return filename, false
}

func ProcessContent(content []byte, isTemplate bool, data TemplateData) []byte {
	if !isTemplate {
		return content
	}
	return []byte(strings.ReplaceAll(string(content), "{{.Module}}", data.Module))
}

func DeriveModuleName(projectDir string) string {
	base := filepath.Base(projectDir)
	if base == "." || base == "/" || base == "" {
		return "myapp"
	}
	return base
}
