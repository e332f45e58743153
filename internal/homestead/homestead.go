// Package homestead reads, merges, and writes the Homestead box
// configuration (Homestead.yaml).
//
// The merge is idempotent and append-only: entries already present in
// the folders, sites, or databases collections are never modified,
// reordered, or duplicated. Top-level keys the tool does not know
// about are carried through the round-trip untouched.
package homestead

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ksyq12/stead/internal/config"
	"github.com/ksyq12/stead/internal/errors"
	"github.com/ksyq12/stead/internal/logger"
)

// BoxFile is the name of the box configuration document inside the
// Homestead directory.
const BoxFile = "Homestead.yaml"

// Guest-side locations shared with the box.
const (
	GuestProjectRoot = "/home/vagrant/stead"
	GuestSSLDir      = "/home/vagrant/.steadssl"
)

// folderTypeNFS is the sync type used for new shared folders.
const folderTypeNFS = "nfs"

// Folder is a shared-folder mapping. Map is the host path and the
// uniqueness key.
type Folder struct {
	Map  string `yaml:"map"`
	To   string `yaml:"to"`
	Type string `yaml:"type,omitempty"`
}

// Site is a virtual-host mapping. Map is the domain and the
// uniqueness key.
type Site struct {
	Map string `yaml:"map"`
	To  string `yaml:"to"`
}

// BoxConfig is the Homestead.yaml document. Keys other than the three
// merged collections are preserved verbatim via the inline map.
type BoxConfig struct {
	IP        string                 `yaml:"ip,omitempty"`
	Folders   []Folder               `yaml:"folders"`
	Sites     []Site                 `yaml:"sites"`
	Databases []string               `yaml:"databases"`
	Extra     map[string]interface{} `yaml:",inline"`
}

// Path returns the box configuration path inside homesteadDir.
func Path(homesteadDir string) string {
	return filepath.Join(homesteadDir, BoxFile)
}

// Load reads and parses the box configuration. Absent collections are
// initialized to empty sequences so a merge can always append.
func Load(path string) (*BoxConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeBox, fmt.Sprintf("failed to read %s", path), err)
	}

	box := &BoxConfig{}
	if err := yaml.Unmarshal(data, box); err != nil {
		return nil, errors.Wrap(errors.ErrCodeBox, fmt.Sprintf("failed to parse %s", path), err)
	}

	if box.Folders == nil {
		box.Folders = []Folder{}
	}
	if box.Sites == nil {
		box.Sites = []Site{}
	}
	if box.Databases == nil {
		box.Databases = []string{}
	}

	return box, nil
}

// Save serializes the box configuration and rewrites path in full.
func (b *BoxConfig) Save(path string) error {
	data, err := yaml.Marshal(b)
	if err != nil {
		return errors.Wrap(errors.ErrCodeBox, "failed to marshal box configuration", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeBox, fmt.Sprintf("failed to write %s", path), err)
	}
	return nil
}

// GuestProjectPath returns the guest path the project directory is
// shared at.
func GuestProjectPath(project string) string {
	return path.Join(GuestProjectRoot, project)
}

// GuestSitePath returns the guest web root a site maps to.
func GuestSitePath(project string) string {
	return path.Join(GuestProjectRoot, project, "www")
}

// Merge appends the project's folder, site, and database entries to
// the box configuration. Entries whose uniqueness key is already
// present are left alone, so merging twice is the same as merging
// once.
func (b *BoxConfig) Merge(project *config.Project) {
	b.Folders = ensureEntry(b.Folders,
		func(f Folder) string { return f.Map },
		Folder{Map: project.WorkDir, To: GuestProjectPath(project.Name), Type: folderTypeNFS})

	b.Folders = ensureEntry(b.Folders,
		func(f Folder) string { return f.Map },
		Folder{Map: project.SSLPath, To: GuestSSLDir, Type: folderTypeNFS})

	b.Sites = ensureEntry(b.Sites,
		func(s Site) string { return s.Map },
		Site{Map: project.LocalDomain, To: GuestSitePath(project.Name)})

	b.Databases = ensureEntry(b.Databases,
		func(d string) string { return d },
		project.Name)

	logger.DebugFields("box config merged", map[string]interface{}{
		"folders":   len(b.Folders),
		"sites":     len(b.Sites),
		"databases": len(b.Databases),
	})
}

// ensureEntry appends entry to entries unless an element with the same
// key is already present. Existing elements are never touched.
func ensureEntry[T any](entries []T, key func(T) string, entry T) []T {
	want := key(entry)
	for _, e := range entries {
		if key(e) == want {
			return entries
		}
	}
	return append(entries, entry)
}
