package usecases

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestLoginIssuesToken(t *testing.T) {
	auth, err := NewAuthUsecase("admin", "hunter2", "test-secret")
	if err != nil {
		t.Fatalf("new auth failed: %v", err)
	}

	tokenString, err := auth.Login("admin", "hunter2")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		t.Fatal("expected valid token with map claims")
	}
	if claims["sub"] != "admin" {
		t.Errorf("expected sub claim %q, got %v", "admin", claims["sub"])
	}
	if claims["role"] != "admin" {
		t.Errorf("expected role claim %q, got %v", "admin", claims["role"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Error("expected exp claim to be set")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	auth, err := NewAuthUsecase("admin", "hunter2", "test-secret")
	if err != nil {
		t.Fatalf("new auth failed: %v", err)
	}

	if _, err := auth.Login("admin", "wrong"); err == nil {
		t.Error("expected error for wrong password")
	}
	if _, err := auth.Login("intruder", "hunter2"); err == nil {
		t.Error("expected error for wrong username")
	}
}
