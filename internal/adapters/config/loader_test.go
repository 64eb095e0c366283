package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sift/internal/adapters/config"
	"go.trai.ch/sift/internal/core/domain"
)

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writeRules(t, `
version: "1"
excludeDirs:
  - node_modules
  - \.git$
excludeExt:
  - \.log$
  - \.tmp$
`)

	loader := config.NewLoader()
	rules, err := loader.Load(path)
	require.NoError(t, err)

	// File order is the tie-break order; it must survive loading.
	assert.Equal(t, []string{`node_modules`, `\.git$`}, rules.Dirs)
	assert.Equal(t, []string{`\.log$`, `\.tmp$`}, rules.Exts)
}

func TestLoader_LoadEmptySections(t *testing.T) {
	path := writeRules(t, `version: "1"`)

	loader := config.NewLoader()
	rules, err := loader.Load(path)
	require.NoError(t, err)
	assert.True(t, rules.IsEmpty())
}

func TestLoader_LoadMissingFile(t *testing.T) {
	loader := config.NewLoader()
	_, err := loader.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_LoadMalformedYAML(t *testing.T) {
	path := writeRules(t, "excludeDirs: [unclosed")

	loader := config.NewLoader()
	_, err := loader.Load(path)
	require.Error(t, err)
}

func TestLoader_LoadUnsupportedVersion(t *testing.T) {
	path := writeRules(t, `version: "9"`)

	loader := config.NewLoader()
	_, err := loader.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedConfigVersion)
}
