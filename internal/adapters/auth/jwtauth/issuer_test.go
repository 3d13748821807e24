package jwtauth

import (
	"errors"
	"testing"
	"time"

	"pet-adoption-api/internal/ports/auth"
)

func TestIssueAndVerify(t *testing.T) {
	j := New("secret-1")

	token, err := j.Issue("ana@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := j.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Email != "ana@example.com" {
		t.Errorf("email = %q, want ana@example.com", claims.Email)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := New("secret-1").Issue("ana@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = New("secret-2").Verify(token)
	if !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	j := New("secret-1")
	j.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := j.Issue("ana@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = New("secret-1").Verify(token)
	if !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	_, err := New("secret-1").Verify("no-es-un-jwt")
	if !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}

	_, err = New("secret-1").Verify("")
	if !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for empty token, got %v", err)
	}
}

func TestIssue_UniqueTokenIDs(t *testing.T) {
	j := New("secret-1")

	t1, err := j.Issue("ana@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	t2, err := j.Issue("ana@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if t1 == t2 {
		t.Error("dos emisiones para el mismo email no deberían coincidir (jti)")
	}
}
