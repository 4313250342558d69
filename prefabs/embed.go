package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Dir is where on-disk prefab overrides live, relative to the working
// directory.
const Dir = "prefabs"

//go:embed *.yaml
var PrefabsFS embed.FS

// Load returns the on-disk prefab if one exists, else the embedded copy.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// ModTime returns the modification time of the file at path.
func ModTime(path string) (time.Time, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// ModTracker remembers the last modification time seen per file, so reloads
// can skip watcher events that left a file untouched.
type ModTracker struct {
	seen map[string]time.Time
}

func NewModTracker() *ModTracker {
	return &ModTracker{seen: make(map[string]time.Time)}
}

// Changed reports whether path was modified since the last call for it. A
// file that cannot be stat'ed counts as changed so the loader can report it.
func (t *ModTracker) Changed(path string) bool {
	mod, ok := ModTime(path)
	if !ok {
		delete(t.seen, path)
		return true
	}
	if prev, seen := t.seen[path]; seen && prev.Equal(mod) {
		return false
	}
	t.seen[path] = mod
	return true
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, Dir+"/"); ok {
		return after
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
