// Package override resolves force-include patterns into a set of paths that
// must never be excluded by ignore rules.
package override

import (
	"path/filepath"
	"sort"

	"github.com/baldierot/fjoin/internal/resolver"
	"github.com/baldierot/fjoin/internal/utils"
)

// Set is a resolved force-include set, keyed by absolute path.
type Set struct {
	paths map[string]struct{}
}

// Resolve expands each pattern independently against the filesystem rooted
// at workDir (files only) and unions the results. A pattern that matches
// nothing is not an error.
func Resolve(workDir string, patterns []string, logger utils.Logger) *Set {
	if logger == nil {
		logger = &utils.NoopLogger{}
	}

	set := &Set{paths: make(map[string]struct{})}
	for _, pattern := range patterns {
		matches, err := resolver.Expand(workDir, pattern)
		if err != nil {
			logger.Warn("Skipping malformed include pattern %q: %v", pattern, err)
			continue
		}
		if len(matches) == 0 {
			logger.Debug("override.Resolve: include pattern %q matched nothing", pattern)
		}
		for _, abs := range matches {
			set.paths[abs] = struct{}{}
		}
	}
	logger.Debug("override.Resolve: %d forced path(s) from %d pattern(s)",
		len(set.paths), len(patterns))
	return set
}

// Contains reports whether the given absolute path was force-included.
func (s *Set) Contains(absPath string) bool {
	if s == nil {
		return false
	}
	_, ok := s.paths[filepath.Clean(absPath)]
	return ok
}

// Len returns the number of resolved paths in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.paths)
}

// Paths returns the resolved paths, sorted for stable reporting.
func (s *Set) Paths() []string {
	if s == nil {
		return nil
	}
	paths := make([]string, 0, len(s.paths))
	for p := range s.paths {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
