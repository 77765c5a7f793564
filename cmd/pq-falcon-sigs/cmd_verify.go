package main

import (
	"context"
	"fmt"

	"github.com/d2verb/pq-falcon-sigs/internal/engine"
	"github.com/d2verb/pq-falcon-sigs/internal/ui"
)

type VerifyCmd struct {
	IOFlags `embed:""`

	PublicKeyBase64 string `short:"B" name:"public-key-base64" placeholder:"BASE64" help:"Inline public key; takes precedence over --public-key"`
}

func (c *VerifyCmd) Run(g *Globals) error {
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

	res, err := eng.Run(context.Background(), engine.Request{
		Mode:            engine.ModeVerify,
		Level:           level,
		PublicKeyBase64: c.PublicKeyBase64,
		InputPath:       c.File,
		PositionalPath:  c.Path,
		OutputPath:      c.Output,
		Force:           c.Force,
	})
	if err != nil {
		return err
	}

	if c.Output != "" {
		ui.PrintSuccess(fmt.Sprintf("Signature OK (%s); message written to %s", res.Fingerprint, c.Output))
	}
	return nil
}
