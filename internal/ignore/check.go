package ignore

import (
	"path/filepath"
	"strings"
)

// probe is one path tested against a source: the candidate itself, or one
// of its ancestor directories so that directory patterns exclude everything
// beneath them.
type probe struct {
	path  string
	isDir bool
}

// IsIgnored checks whether any loaded source ignores the given path,
// expressed relative to the working directory. Sources combine by union: a
// negation pattern in one source cannot re-include a path another source
// ignores. A path inside an ignored directory is ignored.
func (s *Store) IsIgnored(relativePath string) bool {
	_, _, ignored := s.match(relativePath)
	return ignored
}

// Attribute returns the pattern credited with ignoring the given path: the
// deciding pattern of the first source, in load order, that ignores it. The
// compiled matchers retain per-pattern provenance, so no secondary
// pattern-by-pattern re-test is needed. ok is false when no source yields
// an igniting pattern, which a caller should count as an unattributed skip.
func (s *Store) Attribute(relativePath string) (pattern string, ok bool) {
	pattern, ok, _ = s.match(relativePath)
	return pattern, ok
}

func (s *Store) match(relativePath string) (pattern string, attributed bool, ignored bool) {
	if s == nil || s.disabled {
		return "", false, false
	}
	if relativePath == "" || relativePath == "." {
		return "", false, false // Never ignore the root itself
	}

	probes := matchProbes(filepath.ToSlash(relativePath))
	for _, src := range s.sources {
		if src.matcher == nil {
			continue
		}
		for _, p := range probes {
			match := src.matcher.Relative(p.path, p.isDir)
			if match != nil && match.Ignore() {
				s.logger.Debug("ignore.match: %q ignored by %s source %s (pattern %q)",
					relativePath, src.Kind, src.Path, match.String())
				return match.String(), true, true
			}
		}
	}
	return "", false, false
}

// matchProbes lists the ancestor directories of a path, outermost first,
// followed by the path itself.
func matchProbes(unixPath string) []probe {
	parts := strings.Split(unixPath, "/")
	probes := make([]probe, 0, len(parts))
	for i := 1; i < len(parts); i++ {
		probes = append(probes, probe{path: strings.Join(parts[:i], "/"), isDir: true})
	}
	return append(probes, probe{path: unixPath, isDir: false})
}
