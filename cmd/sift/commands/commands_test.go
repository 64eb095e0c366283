package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sift/cmd/sift/commands"
	"go.trai.ch/sift/internal/app"
	"go.trai.ch/sift/internal/build"
)

type mockApp struct {
	scanFunc func(ctx context.Context, roots []string, opts app.ScanOptions) error
}

func (m *mockApp) Scan(ctx context.Context, roots []string, opts app.ScanOptions) error {
	if m.scanFunc != nil {
		return m.scanFunc(ctx, roots, opts)
	}
	return nil
}

func TestCommands_Scan(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.ScanOptions
		var capturedRoots []string
		called := false

		mock := &mockApp{
			scanFunc: func(_ context.Context, roots []string, opts app.ScanOptions) error {
				capturedOpts = opts
				capturedRoots = roots
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"scan", "src", "docs",
			"--exclude-dir", `node_modules`,
			"--exclude-ext", `\.log$`,
			"--exclude-ext", `\.tmp$`,
			"--config", "rules.yaml",
			"--count", "--hash", "--strict", "--verbose", "--json",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, []string{"src", "docs"}, capturedRoots)
		assert.Equal(t, []string{`node_modules`}, capturedOpts.ExcludeDirs)
		assert.Equal(t, []string{`\.log$`, `\.tmp$`}, capturedOpts.ExcludeExts)
		assert.Equal(t, "rules.yaml", capturedOpts.ConfigPath)
		assert.True(t, capturedOpts.CountOnly)
		assert.True(t, capturedOpts.Hash)
		assert.True(t, capturedOpts.Strict)
		assert.True(t, capturedOpts.Verbose)
		assert.True(t, capturedOpts.JSON)
	})

	t.Run("defaults to no roots and empty options", func(t *testing.T) {
		var capturedOpts app.ScanOptions
		var capturedRoots []string

		mock := &mockApp{
			scanFunc: func(_ context.Context, roots []string, opts app.ScanOptions) error {
				capturedOpts = opts
				capturedRoots = roots
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"scan"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Empty(t, capturedRoots)
		assert.Empty(t, capturedOpts.ExcludeDirs)
		assert.Empty(t, capturedOpts.ExcludeExts)
		assert.False(t, capturedOpts.Strict)
	})

	t.Run("comma stays inside a single pattern", func(t *testing.T) {
		var capturedOpts app.ScanOptions

		mock := &mockApp{
			scanFunc: func(_ context.Context, _ []string, opts app.ScanOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"scan", ".", "--exclude-ext", `\.(log|tmp){1,2}$`})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, []string{`\.(log|tmp){1,2}$`}, capturedOpts.ExcludeExts)
	})

	t.Run("returns error on scan failure", func(t *testing.T) {
		mock := &mockApp{
			scanFunc: func(_ context.Context, _ []string, _ app.ScanOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"scan", "."})
		cli.SetOutput(&bytes.Buffer{}, &bytes.Buffer{})

		err := cli.Execute(context.Background())
		require.Error(t, err)
	})
}

func TestCommands_Version(t *testing.T) {
	var out bytes.Buffer

	cli := commands.New(&mockApp{})
	cli.SetArgs([]string{"version"})
	cli.SetOutput(&out, &bytes.Buffer{})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "sift version "+build.Version)
}
