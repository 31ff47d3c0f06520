package hybi03

import "crypto/rand"

// maskBytes XORs b in place with the rolling 4-byte key:
//
//	b[i] ^= key[i mod 4]
//
// XOR is its own inverse, so the one routine serves both masking and
// unmasking.
func maskBytes(key [4]byte, b []byte) {
	for i := range b {
		b[i] ^= key[i%4]
	}
}

// newMaskKey returns a fresh random masking key. Per-frame random keys are
// an anti-predictability measure required by the framing protocol, not a
// security boundary.
func newMaskKey() [4]byte {
	var key [4]byte
	rand.Read(key[:])
	return key
}
