// Package keystore persists Falcon key pairs as raw key files.
package keystore

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/d2verb/pq-falcon-sigs/internal/falcon"
	"github.com/d2verb/pq-falcon-sigs/internal/keys"
	"github.com/d2verb/pq-falcon-sigs/internal/safeio"
	"github.com/hashicorp/go-multierror"
)

// Store reads and writes one public/secret key file pair.
type Store struct {
	publicPath string
	secretPath string
	logger     *slog.Logger
}

// New creates a store for the given key file paths.
func New(publicPath, secretPath string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{publicPath: publicPath, secretPath: secretPath, logger: logger}
}

// PublicPath returns the public key file path.
func (s *Store) PublicPath() string { return s.publicPath }

// SecretPath returns the secret key file path.
func (s *Store) SecretPath() string { return s.secretPath }

// ReadPublic loads and decodes the public key for level.
func (s *Store) ReadPublic(level falcon.Level) (keys.PublicKey, error) {
	data, err := safeio.ReadFile(s.publicPath)
	if err != nil {
		return keys.PublicKey{}, readError(keys.KindPublic, s.publicPath, err)
	}
	pk, err := keys.DecodePublic(data, level)
	if err != nil {
		return keys.PublicKey{}, fmt.Errorf("%s: %w", s.publicPath, err)
	}
	s.logger.Debug("public key loaded", "path", s.publicPath, "level", level.String())
	return pk, nil
}

// ReadSecret loads and decodes the secret key for level.
func (s *Store) ReadSecret(level falcon.Level) (keys.SecretKey, error) {
	data, err := safeio.ReadFile(s.secretPath)
	if err != nil {
		return keys.SecretKey{}, readError(keys.KindSecret, s.secretPath, err)
	}
	sk, err := keys.DecodeSecret(data, level)
	clear(data)
	if err != nil {
		return keys.SecretKey{}, fmt.Errorf("%s: %w", s.secretPath, err)
	}
	s.logger.Debug("secret key loaded", "path", s.secretPath, "level", level.String())
	return sk, nil
}

// CheckWritable applies the overwrite guard to both key files and reports
// every refusal, not just the first.
func (s *Store) CheckWritable(policy safeio.Policy) error {
	var result *multierror.Error
	for _, path := range []string{s.publicPath, s.secretPath} {
		if err := safeio.CheckWritable(path, policy); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if result == nil {
		return nil
	}
	result.ErrorFormat = formatErrors
	return result
}

// WritePublic writes the public key file.
func (s *Store) WritePublic(pk keys.PublicKey, policy safeio.Policy) error {
	if err := safeio.WriteFile(s.publicPath, keys.Encode(pk), policy, safeio.PublicFile); err != nil {
		return fmt.Errorf("write public key: %w", err)
	}
	s.logger.Info("public key written", "path", s.publicPath, "level", pk.Level().String(), "policy", policy.String())
	return nil
}

// WriteSecret writes the secret key file with owner-only permissions.
func (s *Store) WriteSecret(sk keys.SecretKey, policy safeio.Policy) error {
	data := keys.Encode(sk)
	defer clear(data)

	if err := safeio.WriteFile(s.secretPath, data, policy, safeio.PrivateFile); err != nil {
		return fmt.Errorf("write secret key: %w", err)
	}
	s.logger.Info("secret key written", "path", s.secretPath, "level", sk.Level().String(), "policy", policy.String())
	return nil
}

// RemovePublic deletes the public key file. A missing file is not an error.
func (s *Store) RemovePublic() error {
	if err := os.Remove(s.publicPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove public key: %w", err)
	}
	return nil
}

// MissingKeyError indicates a key file that does not exist.
type MissingKeyError struct {
	Kind keys.Kind
	Path string
	Err  error
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s key not found: %s", e.Kind, e.Path)
}

func (e *MissingKeyError) Unwrap() error {
	return e.Err
}

func readError(kind keys.Kind, path string, err error) error {
	if safeio.IsNotFound(err) {
		return &MissingKeyError{Kind: kind, Path: path, Err: err}
	}
	return fmt.Errorf("read %s key: %w", kind, err)
}

func formatErrors(errs []error) string {
	if len(errs) == 1 {
		return errs[0].Error()
	}
	msg := fmt.Sprintf("%d key files would be overwritten:", len(errs))
	for _, err := range errs {
		msg += "\n  " + err.Error()
	}
	return msg
}
