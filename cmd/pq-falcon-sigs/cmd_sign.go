package main

import (
	"context"
	"fmt"

	"github.com/d2verb/pq-falcon-sigs/internal/engine"
	"github.com/d2verb/pq-falcon-sigs/internal/ui"
)

// IOFlags select the input and output of sign and verify.
type IOFlags struct {
	File   string `short:"f" type:"path" predictor:"file" help:"Input file (default: FILE argument, else stdin)"`
	Output string `short:"o" type:"path" predictor:"file" help:"Output file (default: stdout)"`
	Force  bool   `help:"Overwrite an existing output file"`
	Path   string `arg:"" optional:"" name:"FILE" predictor:"file" help:"Input file"`
}

type SignCmd struct {
	IOFlags `embed:""`
}

func (c *SignCmd) Run(g *Globals) error {
	s, err := openSession(g)
	if err != nil {
		return err
	}
	defer s.Close()

	level, err := s.level(g)
	if err != nil {
		return err
	}
	eng, err := s.engine(g)
	if err != nil {
		return err
	}

	_, err = eng.Run(context.Background(), engine.Request{
		Mode:           engine.ModeSign,
		Level:          level,
		InputPath:      c.File,
		PositionalPath: c.Path,
		OutputPath:     c.Output,
		Force:          c.Force,
	})
	if err != nil {
		return err
	}

	if c.Output != "" {
		ui.PrintSuccess(fmt.Sprintf("Signed with %s: %s", level, c.Output))
	}
	return nil
}
