// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

package sec

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	"golang.org/x/crypto/pbkdf2"
)

const (
	hashIterations = 210_000
	hashKeyLength  = 32
)

// PasswordHasher derives deterministic password digests.
//
// The digest for a given password is stable across calls: credential checks
// compare the stored digest by equality directly in the login query, so the
// derivation must not introduce per-call randomness. PBKDF2 keyed on the
// service secret (as the salt) keeps the digests unguessable without it.
type PasswordHasher struct {
	secret []byte
}

// NewPasswordHasher builds a hasher keyed on the service secret.
func NewPasswordHasher(secret string) *PasswordHasher {
	return &PasswordHasher{secret: []byte(secret)}
}

// Hash derives the digest of a plain-text password.
func (h *PasswordHasher) Hash(plainTextPassword string) string {
	key := pbkdf2.Key([]byte(plainTextPassword), h.secret, hashIterations, hashKeyLength, sha256.New)
	return base64.StdEncoding.EncodeToString(key)
}

// Verify compares a plain-text password against a stored digest in constant
// time.
func (h *PasswordHasher) Verify(plainTextPassword, storedDigest string) bool {
	digest := h.Hash(plainTextPassword)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(storedDigest)) == 1
}
