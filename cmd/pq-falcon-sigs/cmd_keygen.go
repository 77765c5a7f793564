package main

import (
	"context"
	"fmt"

	"github.com/d2verb/pq-falcon-sigs/internal/engine"
	"github.com/d2verb/pq-falcon-sigs/internal/ui"
)

type KeygenCmd struct {
	Force bool `help:"Overwrite existing key files"`
	Print bool `help:"Also print the base64 public key"`
}

func (c *KeygenCmd) Run(g *Globals) error {
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
		Mode:  engine.ModeKeygen,
		Level: level,
		Force: c.Force,
	})
	if err != nil {
		return err
	}

	ui.PrintSuccess(fmt.Sprintf("Generated %s key pair", level))
	details := ui.KeyDetails{
		Level:       level.String(),
		PublicPath:  res.PublicKeyPath,
		SecretPath:  res.SecretKeyPath,
		Fingerprint: res.Fingerprint,
	}
	if c.Print {
		details.PublicKey = res.PublicKeyBase64
	}
	ui.PrintKeyDetails(details)
	return nil
}
