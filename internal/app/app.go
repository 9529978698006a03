// Package app wires configuration, selection, and rendering together
package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/baldierot/fjoin/internal/config"
	"github.com/baldierot/fjoin/internal/logger"
	"github.com/baldierot/fjoin/internal/printer"
	"github.com/baldierot/fjoin/internal/report"
	"github.com/baldierot/fjoin/internal/resolver"
	"github.com/baldierot/fjoin/internal/selector"
	"github.com/baldierot/fjoin/internal/setup"
	"github.com/baldierot/fjoin/internal/version"
	"github.com/fatih/color"
)

// App encapsulates the main application functionality
type App struct {
	cfg *config.Config
	log *logger.Logger
}

// New creates a new App instance
func New(cfg *config.Config) *App {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	log := logger.New(os.Stderr, cfg.Verbose, cfg.UseColors)

	// Explicit log level overrides verbose/quiet flags
	if cfg.LogLevel != "" {
		log.SetLevelName(cfg.LogLevel)
	} else if cfg.Quiet {
		log.SetLevel(logger.LevelWarn)
	}

	return &App{cfg: cfg, log: log}
}

// Run executes the main application logic. A non-nil error means a fatal
// condition; everything else is logged and the run continues.
func (a *App) Run() error {
	startTime := time.Now()

	if a.cfg.ShowVersion {
		fmt.Println(version.Get().String())
		return nil
	}

	// Helper for advisory messages, suppressed by quiet flag
	infoLog := func(format string, args ...interface{}) {
		if !a.cfg.Quiet {
			a.log.Info(format, args...)
		}
	}

	if len(a.cfg.Args) == 0 {
		a.log.Error("No input files or patterns given.")
		return fmt.Errorf("no input files or patterns given")
	}

	workDir, err := filepath.Abs(a.cfg.WorkDir)
	if err != nil {
		a.log.Error("Invalid working directory '%s': %v", a.cfg.WorkDir, err)
		return err
	}
	if info, err := os.Stat(workDir); err != nil || !info.IsDir() {
		a.log.Error("Working directory '%s' is not an accessible directory.", workDir)
		return fmt.Errorf("working directory '%s' is not an accessible directory", workDir)
	}

	// Output destination is validated before any work happens: an existing
	// file without --force is fatal and nothing gets written.
	var outputAbs string
	if a.cfg.OutputFile != "" {
		outputAbs, err = filepath.Abs(a.cfg.OutputFile)
		if err != nil {
			a.log.Error("Invalid output path '%s': %v", a.cfg.OutputFile, err)
			return err
		}
		if _, err := os.Stat(outputAbs); err == nil && !a.cfg.Force {
			a.log.Error("Output file '%s' already exists. Use --force to overwrite.", a.cfg.OutputFile)
			return fmt.Errorf("output file '%s' already exists", a.cfg.OutputFile)
		}
	}

	store, overrides, err := setup.BuildSelection(setup.SelectionConfig{
		WorkDir:     workDir,
		NoIgnore:    a.cfg.NoIgnore,
		IgnoreFiles: a.cfg.IgnoreFiles,
		Includes:    a.cfg.Includes,
		Logger:      a.log,
	}, infoLog)
	if err != nil {
		a.log.Error("Error loading ignore rules: %v", err)
		return err
	}

	resolverOpts := []resolver.Option{resolver.WithLogger(a.log)}
	if outputAbs != "" {
		resolverOpts = append(resolverOpts, resolver.WithExclude(outputAbs))
	}
	res, err := resolver.New(workDir, resolverOpts...)
	if err != nil {
		a.log.Error("Error initializing resolver: %v", err)
		return err
	}

	candidates := res.Resolve(a.cfg.Args)
	if len(candidates) == 0 {
		// Not an error: a literal argument may legitimately match nothing
		infoLog("No files matched the given arguments.")
		return nil
	}
	a.log.Debug("Resolved %d candidate file(s)", len(candidates))

	output, closeOutput, err := a.openOutput(outputAbs)
	if err != nil {
		a.log.Error("Failed to create output file '%s': %v", a.cfg.OutputFile, err)
		return err
	}

	rep := report.New()
	sel := selector.New(store, overrides, selector.WithLogger(a.log))
	p := printer.New().WithOutput(output)

	for _, cand := range candidates {
		outcome := sel.Decide(cand, rep)
		if outcome != report.Included && outcome != report.ForceIncluded {
			continue
		}
		if err := a.render(p, cand, rep); err != nil {
			closeOutput()
			a.log.Error("Failed to write output: %v", err)
			return err
		}
	}

	if err := closeOutput(); err != nil {
		a.log.Error("Failed to finalize output: %v", err)
		return err
	}

	a.summarize(rep, infoLog)
	if a.cfg.OutputFile != "" {
		infoLog("Combined %d file(s) into %s.", p.Count(), a.cfg.OutputFile)
	}
	infoLog("Done in %v.", time.Since(startTime).Round(time.Millisecond))
	return nil
}

// openOutput returns the destination writer and a close function. Writes to
// a file go through a buffered writer flushed on close.
func (a *App) openOutput(outputAbs string) (io.Writer, func() error, error) {
	if outputAbs == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	file, err := os.Create(outputAbs)
	if err != nil {
		return nil, nil, err
	}
	buf := bufio.NewWriter(file)
	closeFn := func() error {
		if err := buf.Flush(); err != nil {
			file.Close()
			return err
		}
		return file.Close()
	}
	return buf, closeFn, nil
}

// render reads one accepted candidate and prints it. Per-file failures are
// recoverable: they are logged and counted, and the batch continues.
func (a *App) render(p *printer.Printer, cand resolver.Candidate, rep *report.Report) error {
	if a.cfg.MaxFileSizeMB > 0 {
		info, err := os.Stat(cand.Abs)
		if err == nil && info.Size() > a.cfg.MaxFileSizeMB*1024*1024 {
			a.log.Warn("Skipping '%s': exceeds size limit of %d MB.", cand.Rel, a.cfg.MaxFileSizeMB)
			rep.RecordReadFailure(cand.Rel)
			return nil
		}
	}

	content, err := os.ReadFile(cand.Abs)
	if err != nil {
		a.log.Warn("Skipping '%s': %v", cand.Rel, err)
		rep.RecordReadFailure(cand.Rel)
		return nil
	}
	return p.PrintFile(cand.Rel, content)
}

// summarize emits the end-of-run skip and force-include advisories.
func (a *App) summarize(rep *report.Report, infoLog setup.InfoLogger) {
	skipped := len(rep.SkippedIgnored) + len(rep.SkippedBinary) + len(rep.SkippedDirs)
	if skipped > 0 {
		infoLog("--- Skipped files (%d) ---", skipped)
		for _, path := range rep.SkippedIgnored {
			infoLog("Skipped: %s [%s]", path, report.SkippedIgnored)
		}
		for _, path := range rep.SkippedBinary {
			infoLog("Skipped: %s [%s]", path, report.SkippedBinary)
		}
		for _, path := range rep.SkippedDirs {
			infoLog("Skipped: %s [%s]", path, report.SkippedDirectory)
		}
		for _, hit := range rep.PatternHits() {
			infoLog("Pattern %q excluded %d file(s).", hit.Pattern, hit.Count)
		}
		if rep.Unattributed() > 0 {
			infoLog("%d exclusion(s) could not be attributed to a specific pattern.", rep.Unattributed())
		}
		infoLog("--- End skipped files ---")
	}

	for _, path := range rep.Forced {
		infoLog("Force-included despite ignore rules: %s", path)
	}
}
