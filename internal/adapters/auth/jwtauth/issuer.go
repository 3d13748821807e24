// Package jwtauth implementa los ports de token con JWT HS256.
package jwtauth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"pet-adoption-api/internal/ports/auth"
)

const defaultTTL = time.Hour

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWT emite y verifica tokens firmados con un secret de proceso.
type JWT struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(secret string) *JWT {
	return &JWT{
		secret: []byte(secret),
		ttl:    defaultTTL,
		now:    time.Now,
	}
}

// Issue firma un token con el email como claim de identidad y expiración
// de una hora.
func (j *JWT) Issue(email string) (string, error) {
	now := j.now()
	c := &claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify valida firma, formato y expiración. Cualquier fallo se reporta
// como auth.ErrInvalidToken, sin filtrar cuál chequeo falló.
func (j *JWT) Verify(tokenString string) (auth.Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&claims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return j.secret, nil
		},
	)
	if err != nil {
		return auth.Claims{}, auth.ErrInvalidToken
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return auth.Claims{}, auth.ErrInvalidToken
	}

	return auth.Claims{Email: c.Email}, nil
}
