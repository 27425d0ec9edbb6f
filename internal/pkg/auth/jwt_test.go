package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/aydink/acadmin/internal/app/models"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "acadmin-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(time.Hour)

	token, err := svc.GenerateToken("S001", models.RoleStudent)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken returned empty token")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.UserID != "S001" {
		t.Errorf("claims.UserID = %q, want %q", claims.UserID, "S001")
	}
	if claims.Role != string(models.RoleStudent) {
		t.Errorf("claims.Role = %q, want %q", claims.Role, models.RoleStudent)
	}
	if claims.Issuer != "acadmin-test" {
		t.Errorf("claims.Issuer = %q, want %q", claims.Issuer, "acadmin-test")
	}
	if claims.ID == "" {
		t.Error("claims.ID should carry a unique token identifier")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, err := svc.GenerateToken("T001", models.RoleTeacher)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	_, err = svc.ValidateToken(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateToken error = %v, want ErrExpiredToken", err)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := newTestService(time.Hour)
	token, err := svc.GenerateToken("T001", models.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	other := NewJWTService(JWTConfig{
		SecretKey:      "different-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "acadmin-test",
	})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("ValidateToken should reject a token signed with a different secret")
	}
}

func TestValidateToken_Empty(t *testing.T) {
	svc := newTestService(time.Hour)
	if _, err := svc.ValidateToken(""); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken(\"\") error = %v, want ErrInvalidToken", err)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newTestService(time.Hour)
	if _, err := svc.ValidateToken("not.a.token"); err == nil {
		t.Error("ValidateToken should reject malformed input")
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"with bearer prefix", "Bearer abc123", "abc123", false},
		{"bare token", "abc123", "abc123", false},
		{"empty header", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractBearerToken(%q) error = %v, wantErr %v", tt.header, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractBearerToken(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}
