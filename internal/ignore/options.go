package ignore

import "github.com/baldierot/fjoin/internal/utils"

// Option functions for configuration
type Option func(*Store)

// WithRepoFile overrides the repository ignore file name looked up in the
// working directory. An empty name disables the repository source.
func WithRepoFile(name string) Option {
	return func(s *Store) {
		s.repoFile = name
	}
}

// WithCustomFiles names additional ignore files to load. Each one must be
// readable; a missing custom file aborts loading.
func WithCustomFiles(paths ...string) Option {
	return func(s *Store) {
		s.custom = append(s.custom, paths...)
	}
}

func WithLogger(logger utils.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDisabled makes the store ignore nothing regardless of sources.
func WithDisabled(disabled bool) Option {
	return func(s *Store) {
		s.disabled = disabled
	}
}
