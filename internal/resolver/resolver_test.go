package resolver

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(name+"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
	return path
}

func newResolver(t *testing.T, dir string, opts ...Option) *Resolver {
	t.Helper()
	r, err := New(dir, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func relPaths(candidates []Candidate) []string {
	rels := make([]string, 0, len(candidates))
	for _, c := range candidates {
		rels = append(rels, filepath.ToSlash(c.Rel))
	}
	return rels
}

func TestResolveLiteralAndGlob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt")
	writeFile(t, dir, "b.log")

	r := newResolver(t, dir)
	got := relPaths(r.Resolve([]string{"a.txt", "*.log"}))

	want := []string{"a.txt", "b.log"}
	if len(got) != len(want) {
		t.Fatalf("Resolve()=%v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Resolve()=%v, want %v", got, want)
		}
	}
}

func TestResolveDeduplicatesAtFirstOccurrence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt")
	writeFile(t, dir, "z.txt")

	// a.txt is matched by both arguments; it must appear once, at the
	// position of its first match.
	r := newResolver(t, dir)
	got := relPaths(r.Resolve([]string{"z.txt", "*.txt"}))

	if len(got) != 2 {
		t.Fatalf("Resolve()=%v, want 2 unique candidates", got)
	}
	if got[0] != "z.txt" || got[1] != "a.txt" {
		t.Fatalf("Resolve()=%v, want [z.txt a.txt]", got)
	}
}

func TestResolveRecursiveGlob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "top.go")
	writeFile(t, dir, "pkg/deep/nested.go")
	writeFile(t, dir, "pkg/readme.md")

	r := newResolver(t, dir)
	got := relPaths(r.Resolve([]string{"**/*.go"}))

	if len(got) != 2 {
		t.Fatalf("Resolve(**/*.go)=%v, want 2 files", got)
	}
}

func TestResolveNeverReturnsDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sub/file.txt")

	r := newResolver(t, dir)
	if got := r.Resolve([]string{"sub"}); len(got) != 0 {
		t.Fatalf("Resolve(sub)=%v, want no candidates for a directory argument", got)
	}
}

func TestResolveNothingMatchedIsNotAnError(t *testing.T) {
	dir := t.TempDir()

	r := newResolver(t, dir)
	if got := r.Resolve([]string{"missing.txt", "*.nope"}); len(got) != 0 {
		t.Fatalf("Resolve()=%v, want no candidates", got)
	}
}

func TestResolveSkipsMalformedPattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt")

	r := newResolver(t, dir)
	got := relPaths(r.Resolve([]string{"[", "a.txt"}))

	if len(got) != 1 || got[0] != "a.txt" {
		t.Fatalf("Resolve()=%v, want [a.txt]", got)
	}
}

func TestResolveExcludesGivenPaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt")
	out := writeFile(t, dir, "out.txt")

	r := newResolver(t, dir, WithExclude(out))
	got := relPaths(r.Resolve([]string{"*.txt"}))

	if len(got) != 1 || got[0] != "a.txt" {
		t.Fatalf("Resolve()=%v, want [a.txt] with out.txt excluded", got)
	}
}

func TestCandidateCarriesAbsoluteAndRelative(t *testing.T) {
	dir := t.TempDir()
	abs := writeFile(t, dir, "sub/file.txt")

	r := newResolver(t, dir)
	got := r.Resolve([]string{"sub/file.txt"})

	if len(got) != 1 {
		t.Fatalf("Resolve()=%v, want 1 candidate", got)
	}
	if got[0].Abs != abs {
		t.Errorf("Abs=%q, want %q", got[0].Abs, abs)
	}
	if filepath.ToSlash(got[0].Rel) != "sub/file.txt" {
		t.Errorf("Rel=%q, want sub/file.txt", got[0].Rel)
	}
}
