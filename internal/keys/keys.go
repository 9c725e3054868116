// Package keys derives the fixed-size key material the cipher and MAC
// require from a shared secret of arbitrary length.
//
// Two policies exist and must be applied consistently for both encryption
// and decryption of a given deployment:
//   - Randomized: the secret bytes are used directly, zero-padded or
//     truncated to the AES-256 key size. Encryption picks a fresh IV.
//   - Deterministic: the SHA-256 digest of the full secret is the key, and
//     its first 16 bytes are a fixed IV reused across invocations.
package keys

import "crypto/sha256"

const (
	// CipherKeySize is the AES-256 key size in bytes.
	CipherKeySize = 32
	// FixedIVSize is the IV size carried by the deterministic policy.
	FixedIVSize = 16
)

// Material is the key bundle for one invocation. The cipher key and MAC key
// are derived from the same secret; FixedIV is nil under the randomized
// policy, where the IV is generated per encryption instead.
type Material struct {
	Cipher  []byte
	MAC     []byte
	FixedIV []byte
}

// HasFixedIV reports whether the material carries a deterministic IV.
func (m Material) HasFixedIV() bool {
	return len(m.FixedIV) == FixedIVSize
}

// Randomized derives material under the raw-fit policy: the secret is
// zero-padded or truncated to the cipher key size, and the same bytes key
// the MAC.
func Randomized(secret []byte) Material {
	fitted := make([]byte, CipherKeySize)
	copy(fitted, secret)

	return Material{
		Cipher: fitted,
		MAC:    fitted,
	}
}

// Deterministic derives material under the hash policy: the SHA-256 digest
// of the secret is both cipher key and MAC key, and its first 16 bytes are
// the fixed IV. Compatible with envelopes produced by the legacy deployment.
func Deterministic(secret []byte) Material {
	digest := sha256.Sum256(secret)

	return Material{
		Cipher:  digest[:],
		MAC:     digest[:],
		FixedIV: digest[:FixedIVSize],
	}
}
