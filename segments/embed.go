package segments

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var templatesFS embed.FS

//go:embed scripts/*.tengo
var scriptsFS embed.FS

// Load reads a template file, preferring the on-disk copy so edits show up
// without a rebuild during development, and falling back to the embedded FS.
func Load(name string) ([]byte, error) {
	clean := cleanTemplatePath(name)
	if data, err := os.ReadFile(diskTemplatePath(clean)); err == nil {
		return data, nil
	}
	return templatesFS.ReadFile(clean)
}

func loadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(filepath.Join("segments", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return scriptsFS.ReadFile(clean)
}

func cleanTemplatePath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "segments/"); ok {
		return after
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}

	s := filepath.ToSlash(path)

	if after, ok := strings.CutPrefix(s, "segments/scripts/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "segments/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}

	return fmt.Sprintf("scripts/%s", s)
}

func diskTemplatePath(clean string) string {
	return filepath.Join("segments", filepath.FromSlash(clean))
}
