package ports

// EntryInfo is the classification of a single filesystem entry. An entry
// that is neither a directory nor a symlink is treated as a regular file.
type EntryInfo struct {
	Dir     bool
	Symlink bool
}

// Filesystem defines the capability interface the walker traverses through.
// Any conforming implementation (real filesystem, in-memory tree, mock) may
// be substituted.
//
//go:generate mockgen -source=fs.go -destination=mocks/mock_fs.go -package=mocks
type Filesystem interface {
	// ListDir returns the names of path's entries in the order the
	// underlying filesystem reports them. The order is implementation
	// defined and not guaranteed sorted.
	ListDir(path string) ([]string, error)

	// Inspect classifies the entry at path without following symlinks.
	Inspect(path string) (EntryInfo, error)

	// Resolve joins a directory and an entry name into the entry's path.
	Resolve(base, name string) string

	// Rel returns path expressed relative to base.
	Rel(base, path string) (string, error)
}
