package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestSigner(t *testing.T) *Signer {
	t.Helper()
	signer, err := NewSigner([]byte(testSecret), "authenticated", "")
	if err != nil {
		t.Fatalf("NewSigner failed: %v", err)
	}
	return signer
}

func TestTokenLifecycle(t *testing.T) {
	signer := newTestSigner(t)
	userID := uuid.New()

	token, err := signer.IssueToken(userID, "seller@example.com", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	claims, err := signer.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.Subject != userID.String() {
		t.Errorf("Subject = %s, want %s", claims.Subject, userID)
	}
	if claims.Email != "seller@example.com" {
		t.Errorf("Email = %s, want seller@example.com", claims.Email)
	}
}

func TestSecurityScenarios(t *testing.T) {
	signer := newTestSigner(t)

	sign := func(t *testing.T, method jwt.SigningMethod, key interface{}, claims *Claims) string {
		t.Helper()
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		if err != nil {
			t.Fatalf("failed to sign: %v", err)
		}
		return s
	}
	validClaims := func() *Claims {
		return &Claims{
			Email: "seller@example.com",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   uuid.New().String(),
				Audience:  jwt.ClaimStrings{"authenticated"},
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
	}

	t.Run("Rejects Expired Token", func(t *testing.T) {
		claims := validClaims()
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
		if _, err := signer.ValidateToken(sign(t, jwt.SigningMethodHS256, []byte(testSecret), claims)); err == nil {
			t.Error("ValidateToken should have rejected expired token")
		}
	})

	t.Run("Rejects Token Without Expiry", func(t *testing.T) {
		claims := validClaims()
		claims.ExpiresAt = nil
		if _, err := signer.ValidateToken(sign(t, jwt.SigningMethodHS256, []byte(testSecret), claims)); err == nil {
			t.Error("ValidateToken should require exp")
		}
	})

	t.Run("Rejects Wrong Secret", func(t *testing.T) {
		token := sign(t, jwt.SigningMethodHS256, []byte("ffffffffffffffffffffffffffffffff"), validClaims())
		if _, err := signer.ValidateToken(token); err == nil {
			t.Error("ValidateToken should have rejected token signed with another secret")
		}
	})

	t.Run("Rejects Wrong Audience", func(t *testing.T) {
		claims := validClaims()
		claims.Audience = jwt.ClaimStrings{"anon"}
		if _, err := signer.ValidateToken(sign(t, jwt.SigningMethodHS256, []byte(testSecret), claims)); err == nil {
			t.Error("ValidateToken should have rejected anon audience")
		}
	})

	t.Run("Rejects None Algorithm", func(t *testing.T) {
		token := sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, validClaims())
		_, err := signer.ValidateToken(token)
		if err == nil {
			t.Fatal("ValidateToken should have rejected alg none")
		}
		if !strings.Contains(err.Error(), "unexpected signing method") {
			t.Errorf("Expected signing method error, got: %v", err)
		}
	})

	t.Run("Rejects Non UUID Subject", func(t *testing.T) {
		claims := validClaims()
		claims.Subject = "service-role"
		if _, err := signer.ValidateToken(sign(t, jwt.SigningMethodHS256, []byte(testSecret), claims)); err == nil {
			t.Error("ValidateToken should have rejected a non uuid subject")
		}
	})

	t.Run("Rejects Malformed Token", func(t *testing.T) {
		if _, err := signer.ValidateToken("this.is.garbage"); err == nil {
			t.Error("Should reject malformed string")
		}
	})
}

func TestNewSignerValidation(t *testing.T) {
	if _, err := NewSigner([]byte("short"), "", ""); err == nil {
		t.Error("Should fail on a short secret")
	}
}
