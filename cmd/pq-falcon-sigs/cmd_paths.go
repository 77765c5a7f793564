package main

import (
	"fmt"

	"github.com/d2verb/pq-falcon-sigs/internal/safeio"
	"github.com/d2verb/pq-falcon-sigs/internal/ui"
)

type PathsCmd struct{}

func (c *PathsCmd) Run(g *Globals) error {
	s, err := openSession(g)
	if err != nil {
		return err
	}
	defer s.Close()

	level, err := s.level(g)
	if err != nil {
		return err
	}
	store, err := s.store(g)
	if err != nil {
		return err
	}

	var entries []ui.PathEntry
	for _, p := range []struct{ label, path string }{
		{"Public key", store.PublicPath()},
		{"Secret key", store.SecretPath()},
		{"Config", s.paths.Config},
		{"Log", s.paths.Log},
	} {
		exists, err := safeio.Exists(p.path)
		if err != nil {
			return err
		}
		entries = append(entries, ui.PathEntry{Label: p.label, Path: p.path, Exists: exists})
	}

	fmt.Fprintf(ui.Output, "%s %s\n", ui.Bold("Level:"), ui.Cyan(level.String()))
	ui.PrintPaths(entries)
	return nil
}
