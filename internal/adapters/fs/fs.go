// Package fs provides the real-filesystem adapters: the traversal capability
// used by the walker and an xxhash file hasher.
package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/sift/internal/core/ports"
)

var _ ports.Filesystem = (*Filesystem)(nil)

// Filesystem implements ports.Filesystem on the host filesystem.
type Filesystem struct{}

// NewFilesystem creates a new Filesystem.
func NewFilesystem() *Filesystem {
	return &Filesystem{}
}

// ListDir returns the entry names of path in the order the OS reports them.
func (f *Filesystem) ListDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names, nil
}

// Inspect classifies path with Lstat so a symlink is reported as a symlink,
// never as its target.
func (f *Filesystem) Inspect(path string) (ports.EntryInfo, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return ports.EntryInfo{}, err
	}
	return ports.EntryInfo{
		Dir:     info.IsDir(),
		Symlink: info.Mode()&os.ModeSymlink != 0,
	}, nil
}

// Resolve joins a directory and an entry name.
func (f *Filesystem) Resolve(base, name string) string {
	return filepath.Join(base, name)
}

// Rel returns path relative to base.
func (f *Filesystem) Rel(base, path string) (string, error) {
	return filepath.Rel(base, path)
}
