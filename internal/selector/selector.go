// Package selector decides, per candidate, whether a file is included,
// force-included, or skipped, and records the outcome.
package selector

import (
	"os"

	"github.com/baldierot/fjoin/internal/binary"
	"github.com/baldierot/fjoin/internal/ignore"
	"github.com/baldierot/fjoin/internal/override"
	"github.com/baldierot/fjoin/internal/report"
	"github.com/baldierot/fjoin/internal/resolver"
	"github.com/baldierot/fjoin/internal/utils"
)

// Selector applies the selection policy. It is a pure function of
// (candidate, store, overrides); all accumulation goes through the Report
// passed to Decide.
type Selector struct {
	store     *ignore.Store
	overrides *override.Set
	isBinary  func(path string) (bool, error)
	logger    utils.Logger
}

// Option is a functional option for configuring the Selector
type Option func(*Selector)

// WithLogger sets a custom logger for the selector
func WithLogger(logger utils.Logger) Option {
	return func(s *Selector) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithBinaryCheck overrides the binary-content detector.
func WithBinaryCheck(check func(path string) (bool, error)) Option {
	return func(s *Selector) {
		if check != nil {
			s.isBinary = check
		}
	}
}

// New creates a Selector over the given ignore store and override set.
func New(store *ignore.Store, overrides *override.Set, opts ...Option) *Selector {
	s := &Selector{
		store:     store,
		overrides: overrides,
		isBinary:  binary.IsBinary,
		logger:    &utils.NoopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Decide classifies one candidate and records the outcome in rep. Called
// once per deduplicated candidate, in resolver order. Precedence:
// directory, binary content, ignore rules, force-include override.
func (s *Selector) Decide(cand resolver.Candidate, rep *report.Report) report.Outcome {
	// Directories should already be excluded by the resolver; re-check for
	// literal non-glob arguments.
	if info, err := os.Stat(cand.Abs); err == nil && info.IsDir() {
		s.logger.Debug("selector.Decide: %s is a directory", cand.Rel)
		return s.record(cand, report.SkippedDirectory, rep)
	}

	isBin, err := s.isBinary(cand.Abs)
	if err != nil {
		// Leave the real error to the read stage; an unreadable file is a
		// recoverable per-candidate failure, not a selection outcome.
		s.logger.Warn("Could not probe '%s' for binary content: %v", cand.Rel, err)
	} else if isBin {
		s.logger.Debug("selector.Decide: %s looks binary", cand.Rel)
		return s.record(cand, report.SkippedBinary, rep)
	}

	if !s.store.IsIgnored(cand.Rel) {
		return s.record(cand, report.Included, rep)
	}

	if s.overrides.Contains(cand.Abs) {
		s.logger.Debug("selector.Decide: %s ignored but force-included", cand.Rel)
		return s.record(cand, report.ForceIncluded, rep)
	}

	if pattern, ok := s.store.Attribute(cand.Rel); ok {
		rep.CreditPattern(pattern)
	} else {
		rep.CreditUnattributed()
	}
	return s.record(cand, report.SkippedIgnored, rep)
}

func (s *Selector) record(cand resolver.Candidate, outcome report.Outcome, rep *report.Report) report.Outcome {
	rep.Record(cand.Rel, outcome)
	return outcome
}
