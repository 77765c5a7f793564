// Package keys gives Falcon key bytes a typed, level-tagged identity and
// validates their length before any cryptographic use.
package keys

import (
	"bytes"
	"encoding/base64"
	"log/slog"
	"strings"

	"github.com/d2verb/pq-falcon-sigs/internal/falcon"
)

// PublicKey is an encoded Falcon verifying key.
type PublicKey struct {
	level falcon.Level
	b     []byte
}

// SecretKey is an encoded Falcon signing key.
type SecretKey struct {
	level falcon.Level
	b     []byte
}

// Level returns the security level the key was decoded for.
func (k PublicKey) Level() falcon.Level { return k.level }

// Bytes returns the encoded key. The slice must not be modified.
func (k PublicKey) Bytes() []byte { return k.b }

// Fingerprint returns the short fingerprint of the key.
func (k PublicKey) Fingerprint() string { return falcon.Fingerprint(k.b) }

// Base64 returns the standard base64 encoding of the key.
func (k PublicKey) Base64() string { return base64.StdEncoding.EncodeToString(k.b) }

// Level returns the security level the key was decoded for.
func (k SecretKey) Level() falcon.Level { return k.level }

// Bytes returns the encoded key. The slice must not be modified.
func (k SecretKey) Bytes() []byte { return k.b }

// Wipe zeroes the key material. The key must not be used afterwards.
func (k SecretKey) Wipe() { clear(k.b) }

// String never includes key material.
func (k SecretKey) String() string { return k.level.String() + " secret key (redacted)" }

// LogValue keeps key material out of structured logs.
func (k SecretKey) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", k.level.String()),
		slog.String("key", "redacted"),
	)
}

// DecodePublic checks b against the public key size of level and wraps it.
func DecodePublic(b []byte, level falcon.Level) (PublicKey, error) {
	if err := checkLength(KindPublic, len(b), level, falcon.Level.PublicKeySize); err != nil {
		return PublicKey{}, err
	}
	return PublicKey{level: level, b: bytes.Clone(b)}, nil
}

// DecodeSecret checks b against the secret key size of level and wraps it.
func DecodeSecret(b []byte, level falcon.Level) (SecretKey, error) {
	if err := checkLength(KindSecret, len(b), level, falcon.Level.SecretKeySize); err != nil {
		return SecretKey{}, err
	}
	return SecretKey{level: level, b: bytes.Clone(b)}, nil
}

// DecodePublicBase64 decodes a base64 key literal (padded or raw) and
// applies DecodePublic.
func DecodePublicBase64(s string, level falcon.Level) (PublicKey, error) {
	s = strings.Join(strings.Fields(s), "")
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		var rawErr error
		b, rawErr = base64.RawStdEncoding.DecodeString(s)
		if rawErr != nil {
			return PublicKey{}, &EncodingError{Err: err}
		}
	}
	return DecodePublic(b, level)
}

// Encode returns a copy of the encoded key bytes. k is a PublicKey or a
// SecretKey.
func Encode[K PublicKey | SecretKey](k K) []byte {
	switch v := any(k).(type) {
	case PublicKey:
		return bytes.Clone(v.b)
	case SecretKey:
		return bytes.Clone(v.b)
	}
	return nil
}

func checkLength(kind Kind, n int, level falcon.Level, size func(falcon.Level) int) error {
	if n == size(level) {
		return nil
	}
	lengthErr := &BadLengthError{Kind: kind, Level: level, Expected: size(level), Actual: n}
	if other := level.Other(); n == size(other) {
		return &LevelMismatchError{Kind: kind, Selected: level, Detected: other, Length: lengthErr}
	}
	return lengthErr
}
