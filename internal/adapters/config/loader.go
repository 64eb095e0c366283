// Package config provides the YAML rules-file loader for sift.
package config

import (
	"os"

	"go.trai.ch/sift/internal/core/domain"
	"go.trai.ch/sift/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the rules file looked up in the working directory when
// no --config flag is given.
const DefaultFilename = "sift.yaml"

var _ ports.RulesLoader = (*Loader)(nil)

// Loader implements ports.RulesLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// rulesFile represents the structure of the sift.yaml configuration file.
type rulesFile struct {
	Version     string   `yaml:"version"`
	ExcludeDirs []string `yaml:"excludeDirs"`
	ExcludeExt  []string `yaml:"excludeExt"`
}

// Load reads the rules file at path. Pattern order in the file is preserved;
// it is the tie-break order for matching.
func (l *Loader) Load(path string) (domain.ExcludeRules, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return domain.ExcludeRules{}, zerr.Wrap(err, "failed to read rules file")
	}

	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.ExcludeRules{}, zerr.Wrap(err, "failed to parse rules file")
	}

	if file.Version != "" && file.Version != "1" {
		return domain.ExcludeRules{}, zerr.With(domain.ErrUnsupportedConfigVersion, "version", file.Version)
	}

	return domain.ExcludeRules{
		Dirs: file.ExcludeDirs,
		Exts: file.ExcludeExt,
	}, nil
}
