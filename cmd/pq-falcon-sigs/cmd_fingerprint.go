package main

import (
	"github.com/d2verb/pq-falcon-sigs/internal/keys"
	"github.com/d2verb/pq-falcon-sigs/internal/ui"
)

type FingerprintCmd struct {
	PublicKeyBase64 string `short:"B" name:"public-key-base64" placeholder:"BASE64" help:"Inline public key; takes precedence over --public-key"`
	Print           bool   `help:"Also print the base64 public key"`
}

func (c *FingerprintCmd) Run(g *Globals) error {
	s, err := openSession(g)
	if err != nil {
		return err
	}
	defer s.Close()

	level, err := s.level(g)
	if err != nil {
		return err
	}

	var (
		pk   keys.PublicKey
		path string
	)
	if c.PublicKeyBase64 != "" {
		pk, err = keys.DecodePublicBase64(c.PublicKeyBase64, level)
	} else {
		store, storeErr := s.store(g)
		if storeErr != nil {
			return storeErr
		}
		path = store.PublicPath()
		pk, err = store.ReadPublic(level)
	}
	if err != nil {
		return err
	}

	details := ui.KeyDetails{
		Level:       pk.Level().String(),
		PublicPath:  path,
		Fingerprint: pk.Fingerprint(),
	}
	if c.Print {
		details.PublicKey = pk.Base64()
	}
	ui.PrintKeyDetails(details)
	return nil
}
