package core

import (
	"fmt"
	"path"
	"strings"
)

func NormalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if p != "/" && strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

func ValidateRoutePath(p string) error {
	if p == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("path must start with /")
	}

	if strings.Contains(p, "?") {
		return fmt.Errorf("path cannot contain query string")
	}

	if strings.Contains(p, "#") {
		return fmt.Errorf("path cannot contain fragment")
	}

	if strings.Contains(p, "..") {
		return fmt.Errorf("path cannot contain parent directory references")
	}

	return nil
}

// CleanAssetPath turns a request path below prefix into a slash-separated
// relative file path. ok is false when the path escapes the asset root.
func CleanAssetPath(requestPath, prefix string) (string, bool) {
	rel := strings.TrimPrefix(requestPath, prefix)
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" || strings.Contains(rel, "..") {
		return "", false
	}
	cleaned := path.Clean(rel)
	if cleaned == "." || strings.HasPrefix(cleaned, "/") {
		return "", false
	}
	return cleaned, true
}
