// Package matcher evaluates paths against ordered lists of regular-expression
// patterns. It is the filtering leaf under the directory walker.
package matcher

import (
	"fmt"
	"regexp"
	"sync"

	"go.trai.ch/sift/internal/core/ports"
)

// Matcher compiles and evaluates exclusion patterns. It holds no per-call
// state; compiled patterns (and known-bad ones) are cached under a mutex, so
// a single Matcher is safe to share across concurrent traversals.
type Matcher struct {
	logger ports.Logger
	debug  bool

	mu    sync.RWMutex
	cache map[string]*regexp.Regexp // nil entry means the pattern failed to compile
}

// New creates a Matcher that reports malformed patterns through log.
func New(log ports.Logger) *Matcher {
	return &Matcher{
		logger: log,
		cache:  make(map[string]*regexp.Regexp),
	}
}

// WithDebug enables debug traces for pattern evaluation.
func (m *Matcher) WithDebug() *Matcher {
	m.debug = true
	return m
}

// FirstMatch returns the first pattern in declaration order that matches
// text, or ok=false when the list is empty or nothing matches. Evaluation
// short-circuits at the first hit, so when several patterns would match the
// earliest-declared one is reported. A pattern that fails to compile is
// treated as non-matching and evaluation continues with the next one.
func (m *Matcher) FirstMatch(text string, patterns []string) (string, bool) {
	for _, pattern := range patterns {
		re := m.compile(pattern)
		if re == nil {
			continue
		}
		if re.MatchString(text) {
			if m.debug {
				m.logger.Debug(fmt.Sprintf("pattern %q matched %q", pattern, text))
			}
			return pattern, true
		}
	}
	return "", false
}

// Matches reports whether at least one pattern matches text.
func (m *Matcher) Matches(text string, patterns []string) bool {
	_, ok := m.FirstMatch(text, patterns)
	return ok
}

// compile returns the compiled pattern, or nil for a malformed one. The
// result is cached either way so a bad pattern is reported once, not once
// per entry.
func (m *Matcher) compile(pattern string) *regexp.Regexp {
	m.mu.RLock()
	re, seen := m.cache[pattern]
	m.mu.RUnlock()
	if seen {
		return re
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		m.logger.Debug(fmt.Sprintf("skipping malformed pattern %q: %v", pattern, err))
		re = nil
	}

	m.mu.Lock()
	m.cache[pattern] = re
	m.mu.Unlock()
	return re
}
