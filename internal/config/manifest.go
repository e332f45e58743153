package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/ksyq12/stead/internal/logger"
)

const manifestFile = "package.json"

// manifest is the subset of package.json the resolver cares about.
type manifest struct {
	Name string `json:"name"`
}

// resolveProjectName derives the project name from the package manifest
// in dir, falling back to the directory basename. Any manifest read or
// parse failure falls back silently; a broken manifest is never fatal.
func resolveProjectName(dir string) string {
	if name, ok := manifestName(dir); ok {
		return name
	}
	return filepath.Base(dir)
}

// manifestName reads the name field from dir's package.json. Scoped
// names like "@scope/my-app" resolve to their last path segment.
func manifestName(dir string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(dir, manifestFile))
	if err != nil {
		logger.Debug("manifest not readable in %s: %v", dir, err)
		return "", false
	}

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		logger.Debug("manifest parse failed in %s: %v", dir, err)
		return "", false
	}
	if m.Name == "" {
		return "", false
	}

	name := m.Name
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	if name == "" {
		return "", false
	}
	return name, true
}
