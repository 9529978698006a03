// Package resolver expands path and glob arguments into candidate files.
//
// Every argument is treated uniformly as a glob pattern; a literal filename
// is a degenerate glob matching itself. Results are deduplicated by absolute
// path, preserving first-occurrence order across arguments. That order is
// the only ordering guarantee in the system and is carried through to the
// final output.
package resolver

import (
	"fmt"
	"path/filepath"

	"github.com/baldierot/fjoin/internal/utils"
	"github.com/bmatcuk/doublestar/v4"
)

// Candidate is one resolved file, pending an inclusion decision.
type Candidate struct {
	Abs string // absolute filesystem path, used for identity and overrides
	Rel string // path relative to the working directory, used for matching and display
}

// Resolver expands arguments against the filesystem rooted at a working
// directory.
type Resolver struct {
	workDir string
	exclude map[string]struct{}
	logger  utils.Logger
}

// Option is a functional option for configuring the Resolver
type Option func(*Resolver)

// WithLogger sets a custom logger for the resolver
func WithLogger(logger utils.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithExclude drops the given absolute paths from resolution results. Used
// to keep the output file itself out of the candidate list.
func WithExclude(absPaths ...string) Option {
	return func(r *Resolver) {
		for _, p := range absPaths {
			r.exclude[filepath.Clean(p)] = struct{}{}
		}
	}
}

// New creates a Resolver rooted at workDir.
func New(workDir string, opts ...Option) (*Resolver, error) {
	absWorkDir, err := filepath.Abs(workDir)
	if err != nil {
		return nil, fmt.Errorf("resolver: failed to get absolute path for workDir '%s': %w", workDir, err)
	}

	r := &Resolver{
		workDir: absWorkDir,
		exclude: make(map[string]struct{}),
		logger:  &utils.NoopLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Resolve expands each argument and returns the deduplicated candidate
// list. A pattern that matches nothing contributes zero candidates; a
// malformed pattern is logged and skipped. Directories are never returned.
func (r *Resolver) Resolve(args []string) []Candidate {
	seen := make(map[string]struct{})
	var candidates []Candidate

	for _, arg := range args {
		matches, err := Expand(r.workDir, arg)
		if err != nil {
			r.logger.Warn("Skipping malformed pattern %q: %v", arg, err)
			continue
		}
		r.logger.Debug("resolver.Resolve: %q matched %d path(s)", arg, len(matches))

		for _, abs := range matches {
			if _, excluded := r.exclude[abs]; excluded {
				r.logger.Debug("resolver.Resolve: excluding %s", abs)
				continue
			}
			if _, dup := seen[abs]; dup {
				continue
			}
			seen[abs] = struct{}{}

			rel, err := filepath.Rel(r.workDir, abs)
			if err != nil {
				rel = abs
			}
			candidates = append(candidates, Candidate{Abs: abs, Rel: rel})
		}
	}

	return candidates
}

// Expand resolves a single glob pattern against the filesystem, relative to
// workDir unless the pattern is absolute. Only files are returned; '**'
// segments traverse arbitrary depth.
func Expand(workDir, pattern string) ([]string, error) {
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(workDir, pattern)
	}

	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}

	abs := make([]string, 0, len(matches))
	for _, m := range matches {
		abs = append(abs, filepath.Clean(m))
	}
	return abs, nil
}
