package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/d2verb/pq-falcon-sigs/internal/config"
	"github.com/d2verb/pq-falcon-sigs/internal/engine"
	"github.com/d2verb/pq-falcon-sigs/internal/falcon"
	"github.com/d2verb/pq-falcon-sigs/internal/input"
	"github.com/d2verb/pq-falcon-sigs/internal/keystore"
	"github.com/d2verb/pq-falcon-sigs/internal/logging"
	"github.com/d2verb/pq-falcon-sigs/internal/output"
	"github.com/d2verb/pq-falcon-sigs/internal/ui"
)

// stdin and stdout carry message bytes. Can be replaced for testing.
var (
	stdin  *input.Source = input.FromStdin(os.Stdin)
	stdout io.Writer     = os.Stdout
)

// session holds what every command needs: paths, config and the log.
type session struct {
	paths  *config.Paths
	cfg    *config.Config
	logger *slog.Logger
	closer io.Closer
}

func openSession(g *Globals) (*session, error) {
	paths, err := config.GetPaths()
	if err != nil {
		return nil, fmt.Errorf("get paths: %w", err)
	}
	cfg, err := config.LoadConfig(paths.Config)
	if err != nil {
		return nil, err
	}

	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("create directories: %w", err)
	}

	s := &session{paths: paths, cfg: cfg, logger: logging.Discard(), closer: io.NopCloser(nil)}
	logger, closer, err := logging.Open(cfg.LogSettings(paths.Log), g.Debug)
	if err != nil {
		ui.PrintWarning(fmt.Sprintf("logging disabled: %v", err))
		return s, nil
	}
	s.logger, s.closer = logger, closer
	return s, nil
}

func (s *session) Close() error {
	return s.closer.Close()
}

// level resolves the security level: flag, then config file, then default.
func (s *session) level(g *Globals) (falcon.Level, error) {
	if g.Level != "" {
		return falcon.ParseLevel(g.Level)
	}
	return s.cfg.SecurityLevel(), nil
}

// store builds the key store, preferring flags over the config file.
func (s *session) store(g *Globals) (*keystore.Store, error) {
	public, secret, err := s.cfg.KeyPaths(s.paths)
	if err != nil {
		return nil, err
	}
	if g.PublicKey != "" {
		public = g.PublicKey
	}
	if g.SecretKey != "" {
		secret = g.SecretKey
	}
	return keystore.New(public, secret, s.logger), nil
}

func (s *session) engine(g *Globals) (*engine.Engine, error) {
	store, err := s.store(g)
	if err != nil {
		return nil, err
	}
	return engine.New(store, stdin, &output.Sink{Stdout: stdout}, s.logger), nil
}
