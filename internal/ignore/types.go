// Package ignore loads ignore-rule sources and matches paths against them
package ignore

import (
	"github.com/baldierot/fjoin/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// RepoIgnoreName is the conventional repository ignore file consulted in the
// working directory when present.
const RepoIgnoreName = ".gitignore"

// SourceKind distinguishes the optional repository ignore file from
// explicitly named custom ignore files.
type SourceKind int

const (
	// SourceRepo is the repository ignore file; missing is not an error.
	SourceRepo SourceKind = iota
	// SourceCustom is a user-named ignore file; missing is fatal.
	SourceCustom
)

func (k SourceKind) String() string {
	if k == SourceRepo {
		return "repository"
	}
	return "custom"
}

// Source is one loaded pattern set. Raw pattern lines are retained, in file
// order, for attribution and reporting. Immutable once loaded.
type Source struct {
	Kind     SourceKind
	Path     string   // location the source was loaded from
	Patterns []string // raw pattern lines, comments and blanks stripped

	matcher gitignore.GitIgnore // nil when the source has no patterns
}

// Store holds all loaded ignore sources. Matching is a union across
// sources: a path is ignored if any source ignores it. Negation patterns
// take effect only within their own source.
type Store struct {
	base     string // absolute working directory; all matching is relative to it
	repoFile string
	custom   []string
	sources  []*Source
	logger   utils.Logger
	disabled bool
}

// Config holds configuration options for the ignore store
type Config struct {
	WorkDir     string
	RepoFile    string // defaults to RepoIgnoreName
	CustomFiles []string
	Logger      utils.Logger
	Disabled    bool
}
