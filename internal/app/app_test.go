package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/baldierot/fjoin/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
	return path
}

func quietConfig(dir string) *config.Config {
	return &config.Config{WorkDir: dir, LogLevel: "none", Quiet: true}
}

func TestRunWritesCombinedOutput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".gitignore", "*.log\n")
	writeFile(t, dir, "a.txt", "alpha\n")
	writeFile(t, dir, "b.log", "beta\n")

	cfg := quietConfig(dir)
	cfg.Args = []string{"a.txt", "b.log"}
	cfg.OutputFile = filepath.Join(dir, "out.md")

	if err := New(cfg).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	out, err := os.ReadFile(cfg.OutputFile)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	got := string(out)

	if !strings.Contains(got, "# a.txt\n\n```txt\nalpha\n```\n") {
		t.Errorf("a.txt missing from output: %q", got)
	}
	if strings.Contains(got, "b.log") {
		t.Errorf("ignored b.log leaked into output: %q", got)
	}
}

func TestRunForceIncludeOverridesIgnoreRules(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".gitignore", "*.log\n")
	writeFile(t, dir, "a.txt", "alpha\n")
	writeFile(t, dir, "b.log", "beta\n")

	cfg := quietConfig(dir)
	cfg.Args = []string{"a.txt", "b.log"}
	cfg.Includes = []string{"*.log"}
	cfg.OutputFile = filepath.Join(dir, "out.md")

	if err := New(cfg).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	out, _ := os.ReadFile(cfg.OutputFile)
	if !strings.Contains(string(out), "# b.log\n") {
		t.Errorf("force-included b.log missing from output: %q", out)
	}
}

func TestRunExistingOutputWithoutForceIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "alpha\n")
	outPath := writeFile(t, dir, "out.md", "precious\n")

	cfg := quietConfig(dir)
	cfg.Args = []string{"a.txt"}
	cfg.OutputFile = outPath

	if err := New(cfg).Run(); err == nil {
		t.Fatalf("expected error for existing output without --force")
	}

	out, _ := os.ReadFile(outPath)
	if string(out) != "precious\n" {
		t.Errorf("existing output was modified: %q", out)
	}
}

func TestRunForceOverwritesOutput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "alpha\n")
	outPath := writeFile(t, dir, "out.md", "old\n")

	cfg := quietConfig(dir)
	cfg.Args = []string{"a.txt"}
	cfg.OutputFile = outPath
	cfg.Force = true

	if err := New(cfg).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	out, _ := os.ReadFile(outPath)
	if !strings.Contains(string(out), "# a.txt\n") {
		t.Errorf("output not overwritten: %q", out)
	}
}

func TestRunZeroCandidatesIsNotFatal(t *testing.T) {
	dir := t.TempDir()

	cfg := quietConfig(dir)
	cfg.Args = []string{"missing.txt"}
	cfg.OutputFile = filepath.Join(dir, "out.md")

	if err := New(cfg).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, err := os.Stat(cfg.OutputFile); !os.IsNotExist(err) {
		t.Errorf("no output file should be created when nothing matched")
	}
}

func TestRunNoArgumentsIsFatal(t *testing.T) {
	cfg := quietConfig(t.TempDir())

	if err := New(cfg).Run(); err == nil {
		t.Fatalf("expected error for empty argument list")
	}
}

func TestRunMissingCustomIgnoreFileIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "alpha\n")

	cfg := quietConfig(dir)
	cfg.Args = []string{"a.txt"}
	cfg.IgnoreFiles = []string{filepath.Join(dir, "absent.ignore")}

	if err := New(cfg).Run(); err == nil {
		t.Fatalf("expected error for missing custom ignore file")
	}
}

func TestRunExcludesItsOwnOutputFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "alpha\n")

	cfg := quietConfig(dir)
	cfg.Args = []string{"*.md", "a.txt"}
	cfg.OutputFile = filepath.Join(dir, "out.md")
	cfg.Force = true

	// First run creates out.md; the second must not concatenate it.
	if err := New(cfg).Run(); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	if err := New(cfg).Run(); err != nil {
		t.Fatalf("second Run: %v", err)
	}

	out, _ := os.ReadFile(cfg.OutputFile)
	if strings.Contains(string(out), "# out.md") {
		t.Errorf("output file concatenated itself: %q", out)
	}
}

func TestRunUnreadableCandidateIsRecoverable(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "alpha\n")
	locked := writeFile(t, dir, "locked.txt", "secret\n")
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatalf("Chmod: %v", err)
	}

	cfg := quietConfig(dir)
	cfg.Args = []string{"locked.txt", "a.txt"}
	cfg.OutputFile = filepath.Join(dir, "out.md")

	if err := New(cfg).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	out, _ := os.ReadFile(cfg.OutputFile)
	if !strings.Contains(string(out), "# a.txt\n") {
		t.Errorf("batch did not continue past the unreadable file: %q", out)
	}
}
