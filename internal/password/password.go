// Package password wraps bcrypt hashing for client and admin credentials.
package password

import "golang.org/x/crypto/bcrypt"

// Hash produces a bcrypt hash at the given cost. Costs outside bcrypt's
// valid range fall back to the library default.
func Hash(plaintext string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash. A mismatch or a
// malformed hash is simply false, never an error.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
