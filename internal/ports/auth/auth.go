package auth

import "errors"

// ErrInvalidToken cubre firma inválida, token malformado o expirado.
// El guard responde 401 sin distinguir la causa.
var ErrInvalidToken = errors.New("invalid token")

// Claims representa la identidad extraída de un token.
type Claims struct {
	Email string
}

// TokenIssuer emite un token firmado con la identidad embebida.
type TokenIssuer interface {
	Issue(email string) (string, error)
}

// TokenVerifier valida un token y devuelve claims o ErrInvalidToken.
type TokenVerifier interface {
	Verify(token string) (Claims, error)
}

// PasswordHasher encapsula el hash unidireccional de claves.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify devuelve false ante cualquier mismatch, nunca error.
	Verify(plaintext, hashed string) bool
}
