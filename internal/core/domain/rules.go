// Package domain contains the core types for the sift scanner.
package domain

import "slices"

// ExcludeRules is the exclusion configuration for one scan: two independent
// ordered sequences of regular-expression patterns. Dirs patterns are tested
// against a directory's full resolved path and prune the whole subtree on a
// match; Exts patterns are tested against a file's full resolved path and
// skip the file on a match. Both default to empty (nothing excluded).
type ExcludeRules struct {
	Dirs []string
	Exts []string
}

// Clone returns a copy of the rules whose pattern slices do not share backing
// storage with the receiver. The walker clones the caller's rules at the
// start of a traversal so later mutations by the caller cannot leak in.
func (r ExcludeRules) Clone() ExcludeRules {
	return ExcludeRules{
		Dirs: slices.Clone(r.Dirs),
		Exts: slices.Clone(r.Exts),
	}
}

// Merge returns the receiver's rules followed by other's, preserving the
// declaration order within each source. Earlier patterns win ties, so rules
// loaded from a config file stay ahead of rules appended on the command line.
func (r ExcludeRules) Merge(other ExcludeRules) ExcludeRules {
	return ExcludeRules{
		Dirs: append(slices.Clone(r.Dirs), other.Dirs...),
		Exts: append(slices.Clone(r.Exts), other.Exts...),
	}
}

// IsEmpty reports whether no patterns are configured.
func (r ExcludeRules) IsEmpty() bool {
	return len(r.Dirs) == 0 && len(r.Exts) == 0
}
