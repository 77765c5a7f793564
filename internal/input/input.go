// Package input resolves the message bytes an invocation operates on.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/d2verb/pq-falcon-sigs/internal/safeio"
	"github.com/mattn/go-isatty"
)

// ErrNoInputData is returned when no file was given and stdin is an
// interactive terminal.
var ErrNoInputData = errors.New("no input: pass a file or pipe data to stdin")

// Origin identifies where the input came from.
type Origin string

const (
	OriginFlag       Origin = "flag"
	OriginPositional Origin = "positional"
	OriginStdin      Origin = "stdin"
)

// Source reads input from a file path or standard input.
type Source struct {
	Stdin io.Reader
	// IsTerminal reports whether Stdin is an interactive terminal.
	IsTerminal func() bool
}

// FromStdin returns a Source reading f, detecting terminals with isatty.
func FromStdin(f *os.File) *Source {
	return &Source{
		Stdin: f,
		IsTerminal: func() bool {
			fd := f.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
}

// Resolve returns the message bytes. The explicit path wins over the
// positional one, which wins over stdin.
func (s *Source) Resolve(explicitPath, positionalPath string) ([]byte, Origin, error) {
	switch {
	case explicitPath != "":
		data, err := readPath(explicitPath)
		return data, OriginFlag, err
	case positionalPath != "":
		data, err := readPath(positionalPath)
		return data, OriginPositional, err
	}

	if s.Stdin == nil || (s.IsTerminal != nil && s.IsTerminal()) {
		return nil, OriginStdin, ErrNoInputData
	}
	data, err := io.ReadAll(s.Stdin)
	if err != nil {
		return nil, OriginStdin, fmt.Errorf("read stdin: %w", err)
	}
	return data, OriginStdin, nil
}

func readPath(path string) ([]byte, error) {
	data, err := safeio.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}
