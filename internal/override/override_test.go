package override

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

func TestResolveUnionsPatterns(t *testing.T) {
	dir := t.TempDir()
	logPath := writeFile(t, dir, "b.log")
	tmpPath := writeFile(t, dir, "c.tmp")
	txtPath := writeFile(t, dir, "a.txt")

	set := Resolve(dir, []string{"*.log", "*.tmp"}, nil)

	if set.Len() != 2 {
		t.Fatalf("Len()=%d, want 2", set.Len())
	}
	if !set.Contains(logPath) || !set.Contains(tmpPath) {
		t.Errorf("expected %s and %s in the set", logPath, tmpPath)
	}
	if set.Contains(txtPath) {
		t.Errorf("did not expect %s in the set", txtPath)
	}
}

func TestResolveUnmatchedPatternIsNotAnError(t *testing.T) {
	set := Resolve(t.TempDir(), []string{"*.nope"}, nil)
	if set.Len() != 0 {
		t.Fatalf("Len()=%d, want 0", set.Len())
	}
}

func TestResolveExcludesDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "logs/a.log")

	set := Resolve(dir, []string{"*"}, nil)

	if set.Contains(filepath.Join(dir, "logs")) {
		t.Errorf("directories must not be force-included")
	}
}

func TestNilSetContainsNothing(t *testing.T) {
	var set *Set
	if set.Contains("/tmp/x") {
		t.Errorf("nil set must contain nothing")
	}
	if set.Len() != 0 {
		t.Errorf("nil set has non-zero length")
	}
}
