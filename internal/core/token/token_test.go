package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/projecthub/projecthub/internal/core/domain"
)

func TestIssueValidate_RoundTrip(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	signed, err := issuer.Issue(&domain.User{ID: 42, Username: "alice", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := issuer.Validate(signed)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Subject != 42 {
		t.Fatalf("expected subject 42, got %d", claims.Subject)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("expected role admin, got %s", claims.Role)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	signed, err := NewIssuer("secret-a", time.Hour).Issue(&domain.User{ID: 1, Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewIssuer("secret-b", time.Hour).Validate(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidate_Expired(t *testing.T) {
	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "7",
		"role": "user",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := tkn.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewIssuer("secret", time.Hour).Validate(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidate_Malformed(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	for _, tc := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := issuer.Validate(tc); err != domain.ErrInvalidToken {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", tc, err)
		}
	}
}

func TestValidate_NonNumericSubject(t *testing.T) {
	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "alice",
		"role": "user",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tkn.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewIssuer("secret", time.Hour).Validate(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidate_UnknownRole(t *testing.T) {
	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "7",
		"role": "superuser",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tkn.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewIssuer("secret", time.Hour).Validate(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidate_RejectsWrongAlgorithm(t *testing.T) {
	// alg=none tokens must never pass.
	tkn := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  "7",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tkn.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewIssuer("secret", time.Hour).Validate(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
