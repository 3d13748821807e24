package bcryptpw

import (
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	h := New()

	hashed, err := h.Hash("Test1234!")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hashed == "Test1234!" {
		t.Fatal("el hash no puede ser el texto plano")
	}
	if !strings.HasPrefix(hashed, "$2") {
		t.Errorf("no parece un hash bcrypt: %q", hashed)
	}

	if !h.Verify("Test1234!", hashed) {
		t.Error("verify con la clave original debe dar true")
	}
	if h.Verify("Otra1234!", hashed) {
		t.Error("verify con otra clave debe dar false")
	}
	if h.Verify("", hashed) {
		t.Error("verify con clave vacía debe dar false")
	}
}

func TestVerify_GarbageHash(t *testing.T) {
	if New().Verify("Test1234!", "no-es-un-hash") {
		t.Error("verify contra un hash inválido debe dar false, no panic")
	}
}

func TestHash_SaltedPerCall(t *testing.T) {
	h := New()

	h1, err := h.Hash("Test1234!")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := h.Hash("Test1234!")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h2 {
		t.Error("dos hashes de la misma clave deben diferir por el salt")
	}
}
