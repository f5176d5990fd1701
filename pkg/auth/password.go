package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost keeps hashing in the tens-of-milliseconds range. Only the seed
// command hashes; the API only ever verifies.
const bcryptCost = 10

func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
