package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/sift/internal/core/domain"
)

func TestExcludeRules_Clone(t *testing.T) {
	original := domain.ExcludeRules{
		Dirs: []string{`node_modules`},
		Exts: []string{`\.log$`},
	}

	clone := original.Clone()
	clone.Dirs[0] = "changed"
	clone.Exts = append(clone.Exts, `\.tmp$`)

	assert.Equal(t, []string{`node_modules`}, original.Dirs)
	assert.Equal(t, []string{`\.log$`}, original.Exts)
}

func TestExcludeRules_Merge(t *testing.T) {
	file := domain.ExcludeRules{Dirs: []string{`\.git$`}, Exts: []string{`\.log$`}}
	flags := domain.ExcludeRules{Dirs: []string{`node_modules`}, Exts: []string{`\.tmp$`}}

	merged := file.Merge(flags)

	// File rules stay ahead so they win first-match ties.
	assert.Equal(t, []string{`\.git$`, `node_modules`}, merged.Dirs)
	assert.Equal(t, []string{`\.log$`, `\.tmp$`}, merged.Exts)

	// Merging must not alias the receiver's backing array.
	merged.Dirs[0] = "changed"
	assert.Equal(t, []string{`\.git$`}, file.Dirs)
}

func TestExcludeRules_IsEmpty(t *testing.T) {
	assert.True(t, domain.ExcludeRules{}.IsEmpty())
	assert.False(t, domain.ExcludeRules{Dirs: []string{`x`}}.IsEmpty())
	assert.False(t, domain.ExcludeRules{Exts: []string{`x`}}.IsEmpty())
}

func TestReport_Clean(t *testing.T) {
	assert.True(t, domain.Report{Root: ".", Files: 10}.Clean())
	assert.False(t, domain.Report{Root: ".", Files: 10, Errors: 1}.Clean())
}
