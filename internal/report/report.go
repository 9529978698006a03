// Package report accumulates selection outcomes and skip statistics for
// end-of-run warnings. It holds no decision logic.
package report

import "sort"

// Outcome classifies what happened to one candidate.
type Outcome int

const (
	Included Outcome = iota
	ForceIncluded
	SkippedIgnored
	SkippedBinary
	SkippedDirectory
)

func (o Outcome) String() string {
	switch o {
	case Included:
		return "included"
	case ForceIncluded:
		return "force-included"
	case SkippedIgnored:
		return "skipped (ignore rule)"
	case SkippedBinary:
		return "skipped (binary)"
	case SkippedDirectory:
		return "skipped (directory)"
	default:
		return "unknown"
	}
}

// PatternHit pairs an ignore pattern with the number of files it excluded.
type PatternHit struct {
	Pattern string
	Count   int
}

// Report accumulates the outcome of every candidate plus the per-pattern
// skip ledger. Built incrementally by the selection step, read once at the
// end of the run. Mutated only by the single thread of control; no locking.
type Report struct {
	Included       []string // display paths, in decision order
	Forced         []string // force-included: processed, but reported as advisories
	SkippedIgnored []string
	SkippedBinary  []string
	SkippedDirs    []string
	ReadFailures   []string // included at decide time but unreadable or oversized at read time

	patternHits  map[string]int
	unattributed int
}

// New creates an empty Report.
func New() *Report {
	return &Report{patternHits: make(map[string]int)}
}

// Record files the outcome for one candidate's display path.
func (r *Report) Record(path string, outcome Outcome) {
	switch outcome {
	case Included:
		r.Included = append(r.Included, path)
	case ForceIncluded:
		r.Forced = append(r.Forced, path)
	case SkippedIgnored:
		r.SkippedIgnored = append(r.SkippedIgnored, path)
	case SkippedBinary:
		r.SkippedBinary = append(r.SkippedBinary, path)
	case SkippedDirectory:
		r.SkippedDirs = append(r.SkippedDirs, path)
	}
}

// CreditPattern increments the skip ledger for the given pattern.
func (r *Report) CreditPattern(pattern string) {
	r.patternHits[pattern]++
}

// CreditUnattributed counts an ignored skip that no individual pattern
// could be credited with.
func (r *Report) CreditUnattributed() {
	r.unattributed++
}

// RecordReadFailure files a path that passed selection but could not be
// read. These are recoverable: the batch continues.
func (r *Report) RecordReadFailure(path string) {
	r.ReadFailures = append(r.ReadFailures, path)
}

// Candidates returns the number of candidates decided so far. It always
// equals the sum of the five outcome lists.
func (r *Report) Candidates() int {
	return len(r.Included) + len(r.Forced) + len(r.SkippedIgnored) +
		len(r.SkippedBinary) + len(r.SkippedDirs)
}

// Accepted returns how many files flowed to rendering.
func (r *Report) Accepted() int {
	return len(r.Included) + len(r.Forced)
}

// PatternHits returns the skip ledger sorted by pattern for stable output.
// The counts sum to len(SkippedIgnored) minus Unattributed.
func (r *Report) PatternHits() []PatternHit {
	hits := make([]PatternHit, 0, len(r.patternHits))
	for pattern, count := range r.patternHits {
		hits = append(hits, PatternHit{Pattern: pattern, Count: count})
	}
	sort.Slice(hits, func(i, j int) bool {
		return hits[i].Pattern < hits[j].Pattern
	})
	return hits
}

// Unattributed returns the number of ignored skips with no credited pattern.
func (r *Report) Unattributed() int {
	return r.unattributed
}
