package homestead

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ksyq12/stead/internal/config"
)

func testProject() *config.Project {
	return &config.Project{
		Name:        "myapp",
		LocalDomain: "myapp.local",
		WorkDir:     "/home/user/code/myapp",
		SSLPath:     "/home/user/.steadssl",
	}
}

func writeBox(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), BoxFile)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write box file: %v", err)
	}
	return path
}

func TestLoadInitializesAbsentCollections(t *testing.T) {
	path := writeBox(t, "ip: 192.168.10.10\n")

	box, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if box.IP != "192.168.10.10" {
		t.Errorf("expected ip 192.168.10.10, got %s", box.IP)
	}
	if box.Folders == nil || box.Sites == nil || box.Databases == nil {
		t.Error("absent collections should be initialized to empty sequences")
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), BoxFile)); err == nil {
			t.Error("expected error for missing box file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeBox(t, "ip: [broken\n")
		if _, err := Load(path); err == nil {
			t.Error("expected error for malformed yaml")
		}
	})
}

func TestMergeAppendsEntries(t *testing.T) {
	path := writeBox(t, "ip: 192.168.10.10\nfolders: []\nsites: []\ndatabases: []\n")

	box, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	box.Merge(testProject())

	if len(box.Folders) != 2 {
		t.Fatalf("expected 2 folders, got %d", len(box.Folders))
	}
	if box.Folders[0].Map != "/home/user/code/myapp" || box.Folders[0].To != "/home/vagrant/stead/myapp" {
		t.Errorf("unexpected project folder: %+v", box.Folders[0])
	}
	if box.Folders[0].Type != "nfs" {
		t.Errorf("expected nfs folder type, got %s", box.Folders[0].Type)
	}
	if box.Folders[1].Map != "/home/user/.steadssl" || box.Folders[1].To != "/home/vagrant/.steadssl" {
		t.Errorf("unexpected ssl folder: %+v", box.Folders[1])
	}

	if len(box.Sites) != 1 {
		t.Fatalf("expected 1 site, got %d", len(box.Sites))
	}
	if box.Sites[0].Map != "myapp.local" || box.Sites[0].To != "/home/vagrant/stead/myapp/www" {
		t.Errorf("unexpected site: %+v", box.Sites[0])
	}

	if !reflect.DeepEqual(box.Databases, []string{"myapp"}) {
		t.Errorf("unexpected databases: %v", box.Databases)
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	path := writeBox(t, "ip: 192.168.10.10\n")

	box, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	project := testProject()
	box.Merge(project)

	folders := append([]Folder{}, box.Folders...)
	sites := append([]Site{}, box.Sites...)
	databases := append([]string{}, box.Databases...)

	box.Merge(project)

	if !reflect.DeepEqual(box.Folders, folders) {
		t.Errorf("second merge changed folders: %v", box.Folders)
	}
	if !reflect.DeepEqual(box.Sites, sites) {
		t.Errorf("second merge changed sites: %v", box.Sites)
	}
	if !reflect.DeepEqual(box.Databases, databases) {
		t.Errorf("second merge changed databases: %v", box.Databases)
	}
}

func TestMergePreservesExistingEntries(t *testing.T) {
	path := writeBox(t, `ip: 192.168.10.10
folders:
  - map: /home/user/code/other
    to: /home/vagrant/stead/other
    type: nfs
sites:
  - map: other.local
    to: /home/vagrant/stead/other/www
databases:
  - other
`)

	box, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	box.Merge(testProject())

	// Existing entries stay first and untouched
	if box.Folders[0].Map != "/home/user/code/other" {
		t.Errorf("existing folder was moved or modified: %+v", box.Folders[0])
	}
	if box.Sites[0].Map != "other.local" {
		t.Errorf("existing site was moved or modified: %+v", box.Sites[0])
	}
	if box.Databases[0] != "other" {
		t.Errorf("existing database was moved or modified: %v", box.Databases)
	}

	if len(box.Folders) != 3 || len(box.Sites) != 2 || len(box.Databases) != 2 {
		t.Errorf("unexpected collection sizes: folders=%d sites=%d databases=%d",
			len(box.Folders), len(box.Sites), len(box.Databases))
	}
}

func TestMergeSkipsDuplicateKeys(t *testing.T) {
	// The site domain and database already exist; only folders get added
	path := writeBox(t, `ip: 192.168.10.10
sites:
  - map: myapp.local
    to: /somewhere/else
databases:
  - myapp
`)

	box, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	box.Merge(testProject())

	if len(box.Sites) != 1 {
		t.Errorf("duplicate site appended: %v", box.Sites)
	}
	if box.Sites[0].To != "/somewhere/else" {
		t.Error("existing site entry was overwritten")
	}
	if len(box.Databases) != 1 {
		t.Errorf("duplicate database appended: %v", box.Databases)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := writeBox(t, `ip: 192.168.10.10
memory: 2048
cpus: 2
provider: virtualbox
`)

	box, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	box.Merge(testProject())
	if err := box.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	if reloaded.IP != "192.168.10.10" {
		t.Errorf("ip lost in round-trip: %s", reloaded.IP)
	}
	if len(reloaded.Folders) != 2 || len(reloaded.Sites) != 1 || len(reloaded.Databases) != 1 {
		t.Error("merged entries lost in round-trip")
	}

	// Unknown top-level keys survive the rewrite
	data, _ := os.ReadFile(path)
	for _, key := range []string{"memory", "cpus", "provider"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("unknown key %s dropped by rewrite", key)
		}
	}
}

func TestGuestPaths(t *testing.T) {
	if got := GuestProjectPath("myapp"); got != "/home/vagrant/stead/myapp" {
		t.Errorf("GuestProjectPath = %s", got)
	}
	if got := GuestSitePath("myapp"); got != "/home/vagrant/stead/myapp/www" {
		t.Errorf("GuestSitePath = %s", got)
	}
}
