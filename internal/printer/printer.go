// Package printer handles output formatting of accepted files
package printer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Printer renders each file as a markdown section: a header naming the
// display path, then the content in a fenced code block labeled by file
// extension.
type Printer struct {
	output io.Writer
	count  int
}

// New creates a new Printer writing to stdout by default
func New() *Printer {
	return &Printer{output: os.Stdout}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// PrintFile outputs the content of one file with its path header
func (p *Printer) PrintFile(displayPath string, content []byte) error {
	p.count++

	fence := fenceFor(content)
	lang := strings.TrimPrefix(filepath.Ext(displayPath), ".")

	body := string(content)
	if body != "" && !strings.HasSuffix(body, "\n") {
		body += "\n"
	}

	_, err := fmt.Fprintf(p.output, "# %s\n\n%s%s\n%s%s\n\n",
		filepath.ToSlash(displayPath), fence, lang, body, fence)
	return err
}

// Count returns the number of files printed
func (p *Printer) Count() int {
	return p.count
}

// fenceFor picks a fence longer than any backtick run in the content so
// embedded code blocks stay intact.
func fenceFor(content []byte) string {
	longest := 0
	run := 0
	for _, b := range content {
		if b == '`' {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	if longest < 3 {
		return "```"
	}
	return strings.Repeat("`", longest+1)
}
