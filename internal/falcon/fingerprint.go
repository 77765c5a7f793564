package falcon

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"
)

const fingerprintSize = 16

// Fingerprint returns a short SHAKE256 digest of an encoded public key,
// formatted as colon-separated groups of four hex digits.
func Fingerprint(public []byte) string {
	var sum [fingerprintSize]byte
	sha3.ShakeSum256(sum[:], public)

	h := hex.EncodeToString(sum[:])
	groups := make([]string, 0, len(h)/4)
	for i := 0; i < len(h); i += 4 {
		groups = append(groups, h[i:i+4])
	}
	return strings.Join(groups, ":")
}
