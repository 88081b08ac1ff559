// Package actions writes to the GitHub Actions step summary and step output
// files.
package actions

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Delimiter closes a multi-line step output value.
const Delimiter = "EOF"

// AppendSummary appends markdown to the step summary file at path.
func AppendSummary(path, markdown string) error {
	return appendFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, markdown)
		return err
	})
}

// AppendOutput appends a multi-line output named name to the step output
// file at path.
func AppendOutput(path, name, value string) error {
	return appendFile(path, func(w io.Writer) error {
		return WriteOutput(w, name, value)
	})
}

// WriteOutput writes name<<EOF, value, and EOF, each on its own line.
// An empty value still produces the empty line between the markers.
func WriteOutput(w io.Writer, name, value string) error {
	if name == "" {
		return fmt.Errorf("output name is empty")
	}
	if hasLine(value, Delimiter) {
		return fmt.Errorf("output %s: value contains delimiter line %q", name, Delimiter)
	}
	_, err := fmt.Fprintf(w, "%s<<%s\n%s\n%s\n", name, Delimiter, value, Delimiter)
	return err
}

func hasLine(s, line string) bool {
	for _, l := range strings.Split(s, "\n") {
		if l == line {
			return true
		}
	}
	return false
}

func appendFile(path string, write func(io.Writer) error) (err error) {
	if path == "" {
		return fmt.Errorf("sink path is empty")
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := write(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
