package ports

import "go.trai.ch/sift/internal/core/domain"

// RulesLoader defines the interface for loading exclusion rules from a
// configuration file.
//
//go:generate mockgen -source=rules_loader.go -destination=mocks/mock_rules_loader.go -package=mocks
type RulesLoader interface {
	// Load reads the rules file at path. Implementations decide how a
	// missing file is reported; the CLI treats a missing default-path file
	// as empty rules and a missing explicit path as an error.
	Load(path string) (domain.ExcludeRules, error)
}
