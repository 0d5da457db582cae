package vault

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry represents a markdown document in the vault.
type Entry struct {
	Name  string
	Path  string // slash separated, relative to the vault root
	Depth int
}

// Vault is the directory documents are resolved against. Blacklist patterns
// are written relative to it.
type Vault struct {
	Root string
}

func New(root string) *Vault {
	return &Vault{Root: root}
}

// Rel returns path relative to the vault root with forward slashes. Paths
// outside the root are returned cleaned and slash separated.
func (v *Vault) Rel(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.ToSlash(filepath.Clean(path))
	}
	root, err := filepath.Abs(v.Root)
	if err != nil {
		return filepath.ToSlash(abs)
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(abs)
	}
	return filepath.ToSlash(rel)
}

// Abs resolves a vault-relative path. Absolute paths are returned as is.
func (v *Vault) Abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(v.Root, filepath.FromSlash(path))
}

// ListNotes returns every markdown file under the root, skipping hidden
// files and directories, sorted by path.
func (v *Vault) ListNotes() ([]Entry, error) {
	var entries []Entry

	err := filepath.WalkDir(v.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // skip errors
		}

		name := d.Name()
		if path != v.Root && strings.HasPrefix(name, ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(name, ".md") {
			return nil
		}

		rel, _ := filepath.Rel(v.Root, path)
		rel = filepath.ToSlash(rel)
		entries = append(entries, Entry{
			Name:  name,
			Path:  rel,
			Depth: strings.Count(rel, "/"),
		})
		return nil
	})

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})

	return entries, err
}
