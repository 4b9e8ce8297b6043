package jwt

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mshaffan/inventory-api/pkg/auth"
)

func testUser() auth.User {
	return auth.User{ID: uuid.New(), Name: "A", Email: "a@x.com"}
}

func TestGenerateAndVerify_Success(t *testing.T) {
	t.Parallel()

	g := NewGenerator("super-secret", "inventory-api", time.Hour)
	user := testUser()

	tok, err := g.Generate(context.Background(), user)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	got, err := g.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if got != user.ID {
		t.Fatalf("subject mismatch: got %s want %s", got, user.ID)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	g := NewGenerator("secret", "inventory-api", -1*time.Second)

	tok, err := g.Generate(context.Background(), testUser())
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	_, err = g.Verify(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	g := NewGenerator("right-secret", "inventory-api", time.Hour)
	tok, err := g.Generate(context.Background(), testUser())
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	other := NewGenerator("wrong-secret", "inventory-api", time.Hour)
	if _, err := other.Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	t.Parallel()

	g := NewGenerator("secret", "inventory-api", time.Hour)
	tok, err := g.Generate(context.Background(), testUser())
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	// Flip one bit in the first signature character.
	i := strings.LastIndexByte(tok, '.') + 1
	b := []byte(tok)
	b[i] ^= 0x01
	if _, err := g.Verify(string(b)); err == nil {
		t.Fatal("expected error for tampered signature, got nil")
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	g := NewGenerator("k", "inventory-api", time.Hour)
	if _, err := g.Verify("not.a.jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestVerify_WrongIssuer(t *testing.T) {
	t.Parallel()

	issued := NewGenerator("secret", "someone-else", time.Hour)
	tok, err := issued.Generate(context.Background(), testUser())
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	g := NewGenerator("secret", "inventory-api", time.Hour)
	if _, err := g.Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong issuer, got %v", err)
	}
}

func TestVerify_EmptyIssuerAccepted(t *testing.T) {
	t.Parallel()

	// A generator with no pinned issuer accepts tokens from any issuer.
	issued := NewGenerator("secret", "whoever", time.Hour)
	user := testUser()
	tok, err := issued.Generate(context.Background(), user)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	g := NewGenerator("secret", "", time.Hour)
	got, err := g.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if got != user.ID {
		t.Fatalf("subject mismatch: got %s want %s", got, user.ID)
	}
}
