package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func TestHashPassword(t *testing.T) {
	password := "secreto123"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "" {
		t.Error("HashPassword() returned empty string")
	}
	if hash == password {
		t.Error("HashPassword() returned unhashed password")
	}

	// Same password must produce different hashes due to the salt.
	hash2, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == hash2 {
		t.Error("HashPassword() should produce different hashes due to salt")
	}
}

func TestCheckPassword(t *testing.T) {
	password := "miClaveSegura"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{name: "correct password", password: password, hash: hash, want: true},
		{name: "incorrect password", password: "otraClave", hash: hash, want: false},
		{name: "empty password", password: "", hash: hash, want: false},
		{name: "garbage hash", password: password, hash: "not-a-hash", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckPassword(tt.password, tt.hash); got != tt.want {
				t.Errorf("CheckPassword() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerateTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "cliente@mail.com", "cliente")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}

	if id, ok := claims["id"].(float64); !ok || uint(id) != 42 {
		t.Errorf("claims id = %v, want 42", claims["id"])
	}
	if claims["email"] != "cliente@mail.com" {
		t.Errorf("claims email = %v, want cliente@mail.com", claims["email"])
	}
	if claims["rol"] != "cliente" {
		t.Errorf("claims rol = %v, want cliente", claims["rol"])
	}
}

func TestVerifyTokenFailsClosed(t *testing.T) {
	valid, err := GenerateToken(1, "a@b.com", "cliente")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    1,
		"email": "a@b.com",
		"rol":   "cliente",
		"exp":   time.Now().Add(-time.Minute).Unix(),
	})
	expiredString, err := expired.SignedString(JWTSecret())
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	wrongKey := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": 1})
	wrongKeyString, err := wrongKey.SignedString([]byte("otra_clave"))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{name: "valid token", token: valid, wantErr: false},
		{name: "malformed token", token: "no.es.un.jwt", wantErr: true},
		{name: "empty token", token: "", wantErr: true},
		{name: "expired token", token: expiredString, wantErr: true},
		{name: "wrong signing key", token: wrongKeyString, wantErr: true},
		{name: "tampered payload", token: valid[:len(valid)-4] + "AAAA", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := VerifyToken(tt.token)
			if tt.wantErr {
				if err == nil {
					t.Error("VerifyToken() expected error, got nil")
				}
				if claims != nil {
					t.Error("VerifyToken() expected nil claims on failure")
				}
			} else if err != nil {
				t.Errorf("VerifyToken() error = %v", err)
			}
		})
	}
}

func TestGenerateRecoverToken(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		token := GenerateRecoverToken()
		if len(token) != 40 {
			t.Fatalf("token length = %d, want 40", len(token))
		}
		if seen[token] {
			t.Fatalf("duplicate token generated: %s", token)
		}
		seen[token] = true
	}
}
