package main

import (
	"fmt"

	"github.com/d2verb/pq-falcon-sigs/internal/ui"
)

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Fprintf(ui.Output, "pq-falcon-sigs version %s (%s)\n", version, commit)
	return nil
}
