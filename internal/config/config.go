// Package config defines the command-line surface of fjoin
package config

import (
	"os"

	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"
)

// Config holds all application configuration settings
type Config struct {
	// Positional arguments: file paths or glob patterns
	Args []string

	// Directory settings
	WorkDir string

	// Output settings
	OutputFile string
	Force      bool

	// Filtering settings
	NoIgnore    bool
	IgnoreFiles []string
	Includes    []string

	// Processing settings
	MaxFileSizeMB int64

	// Logging settings
	Verbose   bool
	Quiet     bool
	LogLevel  string
	NoColor   bool
	UseColors bool

	// Version info
	ShowVersion bool
}

// New creates a new Config with values from command-line flags
func New() *Config {
	c := &Config{}

	flag.StringVarP(&c.WorkDir, "dir", "C", ".", "Working directory for matching and display paths")
	flag.StringVarP(&c.OutputFile, "output", "o", "", "Write output to this file instead of stdout")
	flag.BoolVarP(&c.Force, "force", "f", false, "Overwrite the output file if it already exists")
	flag.BoolVar(&c.NoIgnore, "no-ignore", false, "Do not consult ignore files")
	flag.StringArrayVar(&c.IgnoreFiles, "ignore-file", nil, "Additional ignore file (gitignore syntax, repeatable)")
	flag.StringArrayVarP(&c.Includes, "include", "i", nil, "Glob whose matches are included even if ignored (repeatable)")
	flag.Int64Var(&c.MaxFileSizeMB, "max-size", 0, "Max file size to include in MB (0 = no limit)")
	flag.BoolVarP(&c.Verbose, "verbose", "v", false, "Enable verbose logging (DEBUG, WARN, ERROR)")
	flag.BoolVarP(&c.Quiet, "quiet", "q", false, "Suppress informational messages and skip warnings")
	flag.StringVar(&c.LogLevel, "log-level", "", "Set the logging level (DEBUG, INFO, WARN, ERROR)")
	flag.BoolVar(&c.NoColor, "no-color", false, "Disable color output")
	flag.BoolVar(&c.ShowVersion, "version", false, "Show version information")

	flag.Parse()
	c.Args = flag.Args()

	// Colors only affect log output on stderr
	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd())

	return c
}
