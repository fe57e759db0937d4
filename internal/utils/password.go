package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by ComparePasswordAndHash when the
// supplied plaintext does not match the stored digest.
var ErrPasswordMismatch = errors.New("password does not match stored hash")

// bcryptCost balances login latency against brute-force resistance.
const bcryptCost = 12

// HashPassword generates a bcrypt digest of the given plaintext password.
// Empty passwords are rejected.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password provided")
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(h), err
}

// ComparePasswordAndHash validates the given plaintext password against a
// stored bcrypt digest. The comparison is constant-time with respect to
// the password.
//
// Any failure — a mismatch, a corrupt digest, an undecodable cost — is
// reported as [ErrPasswordMismatch] so that callers cannot tell the causes
// apart and accidentally leak them.
func ComparePasswordAndHash(password, storedHash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}
