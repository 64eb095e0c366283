// Package app implements the application layer for sift.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/sift/internal/adapters/config"
	"go.trai.ch/sift/internal/adapters/fs"
	"go.trai.ch/sift/internal/adapters/logger"
	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/sift/internal/core/ports"
	"go.trai.ch/sift/internal/engine/walker"
	"go.trai.ch/sift/internal/ui/output"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	loader ports.RulesLoader
	walker *walker.Walker
	hasher *fs.Hasher
	logger *logger.Logger
	out    io.Writer
	errOut io.Writer
}

// New creates a new App instance.
func New(loader ports.RulesLoader, w *walker.Walker, hasher *fs.Hasher, log *logger.Logger) *App {
	return &App{
		loader: loader,
		walker: w,
		hasher: hasher,
		logger: log,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

// WithOutput redirects the result and summary streams.
// This is primarily used for testing.
func (a *App) WithOutput(out, errOut io.Writer) *App {
	a.out = out
	a.errOut = errOut
	return a
}

// ScanOptions configuration for the Scan method.
type ScanOptions struct {
	ConfigPath  string
	ExcludeDirs []string
	ExcludeExts []string
	CountOnly   bool
	Hash        bool
	Strict      bool
	Verbose     bool
	JSON        bool
}

// Scan walks each root, prints the surviving files, and summarizes per-root
// counts. Roots are scanned concurrently, one independent traversal each;
// within a root the traversal is strictly sequential. Traversal errors are
// logged and tolerated unless Strict is set, in which case any error makes
// Scan return domain.ErrScanIncomplete after the whole tree has still been
// processed.
func (a *App) Scan(ctx context.Context, roots []string, opts ScanOptions) error {
	a.logger.SetJSON(opts.JSON)
	a.logger.SetVerbose(opts.Verbose)
	if opts.Verbose {
		a.walker.WithDebug()
	}

	rules, err := a.resolveRules(opts)
	if err != nil {
		return err
	}

	if len(roots) == 0 {
		roots = []string{"."}
	}

	renderer := output.NewRenderer(a.out, a.errOut)
	reports := make([]domain.Report, len(roots))

	g, ctx := errgroup.WithContext(ctx)
	for i, root := range roots {
		g.Go(func() error {
			reports[i] = a.scanRoot(ctx, root, rules, opts, renderer)
			return nil
		})
	}
	// Walks never fail; the group is only a join point.
	_ = g.Wait()

	renderer.Summary(reports)

	totalErrors := 0
	for _, rep := range reports {
		totalErrors += rep.Errors
	}
	if opts.Strict && totalErrors > 0 {
		return zerr.With(domain.ErrScanIncomplete, "errors", totalErrors)
	}
	return nil
}

// scanRoot runs one traversal and reports its dispatch and error counts.
func (a *App) scanRoot(ctx context.Context, root string, rules domain.ExcludeRules, opts ScanOptions, renderer *output.Renderer) domain.Report {
	errCount := 0
	onError := func(err error) {
		errCount++
		a.logger.Error(err)
	}

	onFile := func(rel string, _ domain.ExcludeRules) error {
		switch {
		case opts.CountOnly:
			return nil
		case opts.Hash:
			hash, err := a.hasher.HashFile(filepath.Join(root, rel))
			if err != nil {
				return err
			}
			renderer.HashedFile(hash, rel)
			return nil
		default:
			renderer.File(rel)
			return nil
		}
	}

	files := a.walker.Walk(ctx, root, rules, onFile, onError)
	return domain.Report{Root: root, Files: files, Errors: errCount}
}

// resolveRules combines the rules file (explicit path, or the default file
// when present) with patterns given on the command line. File patterns come
// first, so they win first-match ties.
func (a *App) resolveRules(opts ScanOptions) (domain.ExcludeRules, error) {
	var fileRules domain.ExcludeRules

	switch {
	case opts.ConfigPath != "":
		rules, err := a.loader.Load(opts.ConfigPath)
		if err != nil {
			return domain.ExcludeRules{}, zerr.Wrap(err, "failed to load rules")
		}
		fileRules = rules
	default:
		rules, err := a.loader.Load(config.DefaultFilename)
		switch {
		case err == nil:
			fileRules = rules
			a.logger.Debug(fmt.Sprintf("loaded rules from %s", config.DefaultFilename))
		case errors.Is(err, os.ErrNotExist):
			// No default rules file; scan everything.
		default:
			return domain.ExcludeRules{}, zerr.Wrap(err, "failed to load rules")
		}
	}

	return fileRules.Merge(domain.ExcludeRules{
		Dirs: opts.ExcludeDirs,
		Exts: opts.ExcludeExts,
	}), nil
}
