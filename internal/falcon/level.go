// Package falcon wraps the FN-DSA (Falcon) signature primitive behind the
// two security levels supported by pq-falcon-sigs.
package falcon

import (
	"fmt"
	"strings"

	"github.com/pornin/go-fn-dsa/fndsa"
)

// Level is a Falcon parameter set.
type Level int

const (
	Level512  Level = 512
	Level1024 Level = 1024
)

// DefaultLevel is used when no level is requested explicitly.
const DefaultLevel = Level1024

// Levels lists the supported levels in ascending order.
var Levels = []Level{Level512, Level1024}

// ParseLevel parses "512" or "1024". A leading "falcon" prefix is accepted.
func ParseLevel(s string) (Level, error) {
	v := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "falcon")
	v = strings.TrimPrefix(v, "-")
	switch v {
	case "512":
		return Level512, nil
	case "1024":
		return Level1024, nil
	default:
		return 0, fmt.Errorf("unsupported security level %q (want 512 or 1024)", s)
	}
}

// Valid reports whether l is one of the supported levels.
func (l Level) Valid() bool {
	return l == Level512 || l == Level1024
}

func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return fmt.Sprintf("falcon-%d", int(l))
}

// logn returns the logarithmic degree used by fndsa.
func (l Level) logn() uint {
	if l == Level512 {
		return 9
	}
	return 10
}

// PublicKeySize returns the encoded public (verifying) key size in bytes.
func (l Level) PublicKeySize() int {
	return fndsa.VerifyingKeySize(l.logn())
}

// SecretKeySize returns the encoded secret (signing) key size in bytes.
func (l Level) SecretKeySize() int {
	return fndsa.SigningKeySize(l.logn())
}

// SignatureSize returns the number of bytes a signed message adds to the
// message it carries.
func (l Level) SignatureSize() int {
	return fndsa.SignatureSize(l.logn())
}

// Other returns the opposite level.
func (l Level) Other() Level {
	if l == Level512 {
		return Level1024
	}
	return Level512
}
