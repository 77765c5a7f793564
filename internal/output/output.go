// Package output writes result bytes to a file or standard output.
package output

import (
	"fmt"
	"io"

	"github.com/d2verb/pq-falcon-sigs/internal/safeio"
)

// Sink is the destination for signed or recovered messages.
type Sink struct {
	Stdout io.Writer
}

// Write stores data at path under the overwrite guard, or writes it
// verbatim to Stdout when path is empty. Stdout is never guarded.
func (s *Sink) Write(path string, data []byte, policy safeio.Policy) error {
	if path == "" {
		if _, err := s.Stdout.Write(data); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
		return nil
	}
	if err := safeio.WriteFile(path, data, policy, safeio.PublicFile); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
