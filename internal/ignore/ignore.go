// Package ignore loads ignore-rule sources and matches paths against them
//
// A Store combines the optional repository ignore file with any number of
// user-named custom ignore files. Each source is compiled independently;
// match results carry the pattern that decided them, which drives the
// per-pattern skip attribution in the run report.
package ignore

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/baldierot/fjoin/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// New creates a Store rooted at workDir and loads all configured sources.
func New(workDir string, opts ...Option) (*Store, error) {
	absWorkDir, err := filepath.Abs(workDir)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for workDir '%s': %w", workDir, err)
	}

	store := &Store{
		base:     absWorkDir,
		repoFile: RepoIgnoreName,
		logger:   &utils.NoopLogger{},
	}

	for _, opt := range opts {
		opt(store)
	}

	if err := store.load(); err != nil {
		return nil, err
	}

	return store, nil
}

// NewFromConfig creates a Store from a Config struct
func NewFromConfig(cfg Config) (*Store, error) {
	options := []Option{
		WithDisabled(cfg.Disabled),
	}
	if cfg.RepoFile != "" {
		options = append(options, WithRepoFile(cfg.RepoFile))
	}
	if len(cfg.CustomFiles) > 0 {
		options = append(options, WithCustomFiles(cfg.CustomFiles...))
	}
	if cfg.Logger != nil {
		options = append(options, WithLogger(cfg.Logger))
	}
	return New(cfg.WorkDir, options...)
}

// CreateDisabledStore returns a store that ignores nothing
func CreateDisabledStore() *Store {
	store, _ := New(".", WithDisabled(true))
	return store
}

// load reads and compiles every configured source, in order: the repository
// file first, then custom files in the order they were named.
func (s *Store) load() error {
	if s.disabled {
		s.logger.Debug("ignore.load: Store is disabled, skipping source loading")
		return nil
	}

	if s.repoFile != "" {
		repoPath := filepath.Join(s.base, s.repoFile)
		content, err := os.ReadFile(repoPath)
		if err != nil {
			if !os.IsNotExist(err) {
				return fmt.Errorf("ignore: failed to read repository ignore file '%s': %w", repoPath, err)
			}
			// Optional file; absent means an empty pattern set
			s.logger.Debug("ignore.load: No repository ignore file at %s", repoPath)
			s.sources = append(s.sources, &Source{Kind: SourceRepo, Path: repoPath})
		} else {
			s.sources = append(s.sources, s.compileSource(SourceRepo, repoPath, content))
		}
	}

	for _, path := range s.custom {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("ignore: cannot read ignore file '%s': %w", path, err)
		}
		s.sources = append(s.sources, s.compileSource(SourceCustom, path, content))
	}

	s.logger.Debug("ignore.load: Loaded %d source(s), %d pattern(s) total",
		len(s.sources), s.PatternCount())
	return nil
}

// compileSource parses raw ignore-file content into a Source. Patterns are
// matched relative to the store's working directory regardless of where the
// source file itself lives.
func (s *Store) compileSource(kind SourceKind, path string, content []byte) *Source {
	src := &Source{
		Kind:     kind,
		Path:     path,
		Patterns: parseLines(content),
	}
	if len(src.Patterns) > 0 {
		src.matcher = gitignore.New(bytes.NewReader(content), s.base, nil)
	}
	s.logger.Debug("ignore.compileSource: %s source %s: %d pattern(s)",
		kind, path, len(src.Patterns))
	return src
}

// parseLines strips comments and blank lines, keeping raw pattern text in
// file order.
func parseLines(content []byte) []string {
	var patterns []string
	for _, line := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		patterns = append(patterns, trimmed)
	}
	return patterns
}

// Sources returns the loaded sources in load order.
func (s *Store) Sources() []*Source {
	return s.sources
}

// PatternCount returns the total number of patterns across all sources.
func (s *Store) PatternCount() int {
	count := 0
	for _, src := range s.sources {
		count += len(src.Patterns)
	}
	return count
}

// Disabled reports whether the store was created with matching disabled.
func (s *Store) Disabled() bool {
	return s.disabled
}
