// Package walker implements depth-first directory traversal with exclusion
// filtering, symlink skipping, and per-entry error isolation.
package walker

import (
	"context"

	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/sift/internal/core/ports"
	"go.trai.ch/sift/internal/engine/matcher"
	"go.trai.ch/zerr"
)

// FileFunc is the file sink: called exactly once per non-excluded file, in
// listing order, with the file's path relative to the traversal root and the
// effective exclusion rules.
type FileFunc func(rel string, rules domain.ExcludeRules) error

// ErrorFunc receives every failure observed during a traversal.
type ErrorFunc func(err error)

// Walker enumerates a directory tree through a ports.Filesystem capability.
// One Walker may serve any number of concurrent Walk calls; all per-call
// state lives on the stack of the call.
type Walker struct {
	fs      ports.Filesystem
	matcher *matcher.Matcher
	logger  ports.Logger
	debug   bool
}

// New creates a Walker over the given filesystem. The logger is the default
// diagnostic channel for traversals that supply no error sink.
func New(fsys ports.Filesystem, m *matcher.Matcher, log ports.Logger) *Walker {
	return &Walker{
		fs:      fsys,
		matcher: m,
		logger:  log,
	}
}

// WithDebug enables per-entry debug traces, including the matcher's
// pattern-hit traces.
func (w *Walker) WithDebug() *Walker {
	w.debug = true
	w.matcher.WithDebug()
	return w
}

// Walk enumerates root depth-first in listing order and dispatches each
// non-excluded file to onFile. It returns the number of files dispatched;
// the sink's outcome does not affect the count.
//
// Every failure — listing a directory, classifying an entry, computing a
// relative path, or the sink itself — is routed to onError (or, when onError
// is nil, to the Walker's logger) and never escapes Walk. A listing failure
// prunes that directory's subtree only; any other failure skips that entry
// only. If listing root itself fails, Walk reports one error and returns 0.
//
// Symbolic links are skipped unconditionally, before any pattern evaluation.
// That is the sole cycle-avoidance mechanism: since links are never
// descended, no visited-set bookkeeping is needed.
//
// Cancelling ctx stops the traversal at the next directory listing; the
// cancellation is reported through the error path like a listing failure and
// Walk returns the count accumulated so far.
func (w *Walker) Walk(ctx context.Context, root string, rules domain.ExcludeRules, onFile FileFunc, onError ErrorFunc) int {
	if onError == nil {
		onError = func(err error) { w.logger.Error(err) }
	}

	t := &traversal{
		root: root,
		// The caller keeps ownership of its rules; the traversal works on
		// a copy so concurrent mutation cannot change matching mid-walk.
		rules:   rules.Clone(),
		onFile:  onFile,
		onError: onError,
	}
	w.walkDir(ctx, t, root)
	return t.files
}

// traversal is the per-call mutable state: the fixed relative-path base, the
// effective rules, the sinks, and the dispatch counter.
type traversal struct {
	root    string
	rules   domain.ExcludeRules
	onFile  FileFunc
	onError ErrorFunc
	files   int
}

func (w *Walker) walkDir(ctx context.Context, t *traversal, dir string) {
	if err := ctx.Err(); err != nil {
		t.onError(zerr.With(zerr.Wrap(err, "traversal cancelled"), "path", dir))
		return
	}

	names, err := w.fs.ListDir(dir)
	if err != nil {
		t.onError(zerr.With(zerr.Wrap(err, "failed to list directory"), "path", dir))
		return
	}

	for _, name := range names {
		path := w.fs.Resolve(dir, name)

		info, err := w.fs.Inspect(path)
		if err != nil {
			// One bad entry must not abort its siblings.
			t.onError(zerr.With(zerr.Wrap(err, "failed to inspect entry"), "path", path))
			continue
		}

		switch {
		case info.Symlink:
			if w.debug {
				w.logger.Debug("skipping symlink " + path)
			}
		case info.Dir:
			if pattern, ok := w.matcher.FirstMatch(path, t.rules.Dirs); ok {
				if w.debug {
					w.logger.Debug("pruning directory " + path + " (pattern " + pattern + ")")
				}
				continue
			}
			// Recurse with the original root so relative paths stay
			// anchored to the top of the traversal.
			w.walkDir(ctx, t, path)
		default:
			w.visitFile(t, path)
		}
	}
}

func (w *Walker) visitFile(t *traversal, path string) {
	if pattern, ok := w.matcher.FirstMatch(path, t.rules.Exts); ok {
		if w.debug {
			w.logger.Debug("skipping file " + path + " (pattern " + pattern + ")")
		}
		return
	}

	// Counted at dispatch: a failing sink does not decrement.
	t.files++
	if w.debug {
		w.logger.Debug("visiting file " + path)
	}

	rel, err := w.fs.Rel(t.root, path)
	if err != nil {
		t.onError(zerr.With(zerr.Wrap(err, "failed to compute relative path"), "path", path))
		return
	}

	if err := t.onFile(rel, t.rules); err != nil {
		t.onError(zerr.With(zerr.Wrap(err, "file sink failed"), "path", rel))
	}
}
