// Package credentials implements the keyed password hashing scheme used for
// account registration and login.
//
// Digests are derived with PBKDF2-SHA256 over the plaintext secret, keyed by
// a per-user random salt concatenated with a process-wide pepper. The scheme
// is deterministic for a given (salt, secret) pair and is never reversed; the
// stored digest is only ever recomputed and compared.
package credentials

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	iterations = 4096
	keyLength  = 32
	saltBytes  = 16
)

// Hasher derives and verifies password digests.
type Hasher struct {
	pepper []byte
}

// NewHasher returns a Hasher keyed with the given application secret.
func NewHasher(pepper string) *Hasher {
	return &Hasher{pepper: []byte(pepper)}
}

// Hash derives the hex-encoded digest for a secret under the given salt.
// Identical inputs always produce identical output.
func (h *Hasher) Hash(salt, secret string) string {
	key := append([]byte(salt+"/"), h.pepper...)
	digest := pbkdf2.Key([]byte(secret), key, iterations, keyLength, sha256.New)
	return hex.EncodeToString(digest)
}

// Verify reports whether secret hashes to digest under salt. Comparison is
// constant-time.
func (h *Hasher) Verify(salt, secret, digest string) bool {
	computed := h.Hash(salt, secret)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}

// NewSalt returns a fresh random salt, hex-encoded.
func NewSalt() string {
	b := make([]byte, saltBytes)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("credentials: rand: %v", err))
	}
	return hex.EncodeToString(b)
}
