package templates

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestGetTemplate(t *testing.T) {
	fsys, err := GetTemplate("minimal")
	if err != nil {
		t.Fatalf("GetTemplate(minimal) error = %v", err)
	}

	for _, name := range []string{"main.go.tmpl", "go.mod.tmpl", "elysium.yaml", "public/app.css", ".gitignore"} {
		if _, err := fs.Stat(fsys, name); err != nil {
			t.Errorf("expected %s in template: %v", name, err)
		}
	}

	if _, err := GetTemplate("spa"); !errors.Is(err, ErrInvalidTemplate) {
		t.Errorf("expected ErrInvalidTemplate, got %v", err)
	}
}

func TestProcessFilename(t *testing.T) {
	tests := []struct {
		in       string
		want     string
		template bool
	}{
		{"main.go.tmpl", "main.go", true},
		{"public/app.css", "public/app.css", false},
		{"tmpl", "tmpl", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, isTemplate := ProcessFilename(tt.in)
			if got != tt.want || isTemplate != tt.template {
				t.Errorf("ProcessFilename(%q) = %q, %v; want %q, %v", tt.in, got, isTemplate, tt.want, tt.template)
			}
		})
	}
}

func TestProcessContent(t *testing.T) {
	data := TemplateData{Module: "shop"}
	in := []byte("module {{.Module}}\n")

	if got := string(ProcessContent(in, true, data)); got != "module shop\n" {
		t.Errorf("unexpected content %q", got)
	}
	if got := string(ProcessContent(in, false, data)); got != string(in) {
		t.Errorf("non-template content changed: %q", got)
	}
}

func TestDeriveModuleName(t *testing.T) {
	tests := map[string]string{
		"/tmp/shop": "shop",
		".":         "myapp",
		"/":         "myapp",
	}
	for in, want := range tests {
		if got := DeriveModuleName(in); got != want {
			t.Errorf("DeriveModuleName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNames(t *testing.T) {
	if got := strings.Join(Names(), ","); got != "minimal" {
		t.Errorf("Names() = %q", got)
	}
}
