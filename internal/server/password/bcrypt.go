// Package password hashes and verifies account passwords with bcrypt.
// bcrypt embeds a random salt and cost in the hash string and compares in
// constant time.
package password

import (
	"errors"

	"github.com/puptrack/puptrack/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// Hash returns the bcrypt hash of plaintext at the default cost. Repeated
// calls with the same plaintext produce different hashes (random salt).
func Hash(plaintext string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify reports whether plaintext matches hash. A mismatch is (false, nil);
// a structurally invalid hash is (false, common.ErrMalformedHash).
func Verify(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, common.ErrMalformedHash
}
