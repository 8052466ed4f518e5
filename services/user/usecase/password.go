package usecase

import (
	"crypto/sha256"
	"encoding/hex"
)

// hashPassword digests a password for storage and comparison.
//
// This is a plain unsalted sha256 digest: the stored hash of equal passwords
// is identical across users. A salted KDF would be stronger but the login
// contract compares stored digests against hash(password) directly, so the
// digest must stay deterministic.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
