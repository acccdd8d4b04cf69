package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// hashCost matches the work factor the legacy records were migrated with.
const hashCost = 10

// HashPassword returns the bcrypt hash of a plaintext password. Callers must
// reject empty input and must not pass an already-hashed value; use IsHashed
// to detect one.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored bcrypt hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IsHashed reports whether s already carries a bcrypt marker. The migration
// command uses it to skip records hashed on a previous run.
func IsHashed(s string) bool {
	return strings.HasPrefix(s, "$2a$") ||
		strings.HasPrefix(s, "$2b$") ||
		strings.HasPrefix(s, "$2y$")
}
