package falcon

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/pornin/go-fn-dsa/fndsa"
)

// ErrVerificationFailed is returned by Open when the signature does not
// validate or the signed message was tampered with.
var ErrVerificationFailed = errors.New("signature verification failed")

// Scheme is the Falcon primitive for one invocation.
type Scheme interface {
	GenerateKey(level Level) (public, secret []byte, err error)
	Sign(level Level, message, secret []byte) ([]byte, error)
	Open(level Level, signed, public []byte) ([]byte, error)
}

// FNDSA implements Scheme with github.com/pornin/go-fn-dsa.
// Signed messages are laid out as signature || message; the signature
// has the fixed size of the level.
type FNDSA struct {
	// Rand is the randomness source; nil selects crypto/rand.
	Rand io.Reader
}

// GenerateKey creates a fresh key pair for level.
func (s FNDSA) GenerateKey(level Level) ([]byte, []byte, error) {
	if !level.Valid() {
		return nil, nil, fmt.Errorf("generate key: unsupported level %d", int(level))
	}
	sk, pk, err := fndsa.KeyGen(level.logn(), s.Rand)
	if err != nil {
		return nil, nil, fmt.Errorf("generate key: %w", err)
	}
	return pk, sk, nil
}

// Sign returns signature || message.
func (s FNDSA) Sign(level Level, message, secret []byte) ([]byte, error) {
	if len(secret) != level.SecretKeySize() {
		return nil, fmt.Errorf("sign: secret key is %d bytes, want %d", len(secret), level.SecretKeySize())
	}
	sig, err := fndsa.Sign(s.Rand, secret, fndsa.DOMAIN_NONE, 0, message)
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}
	if len(sig) != level.SignatureSize() {
		return nil, fmt.Errorf("sign: signature is %d bytes, want %d", len(sig), level.SignatureSize())
	}

	out := make([]byte, 0, len(sig)+len(message))
	out = append(out, sig...)
	return append(out, message...), nil
}

// Open verifies signed and returns the embedded message.
func (s FNDSA) Open(level Level, signed, public []byte) ([]byte, error) {
	if len(public) != level.PublicKeySize() {
		return nil, fmt.Errorf("open: public key is %d bytes, want %d", len(public), level.PublicKeySize())
	}
	n := level.SignatureSize()
	if len(signed) < n {
		return nil, ErrVerificationFailed
	}
	sig, message := signed[:n], signed[n:]
	if !fndsa.Verify(public, fndsa.DOMAIN_NONE, 0, message, sig) {
		return nil, ErrVerificationFailed
	}
	return bytes.Clone(message), nil
}
