// Package bcryptpw implementa el port de hashing de claves con bcrypt.
package bcryptpw

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// cost fijo en 10 rounds.
const cost = 10

type Hasher struct{}

func New() *Hasher {
	return &Hasher{}
}

func (h *Hasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

func (h *Hasher) Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
