package service

import (
	"errors"
	"testing"

	"leadform/internal/util"
	"leadform/pkg/config"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	hash, err := util.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	admin := config.AdminConfig{
		Email:        "admin@example.com",
		Username:     "admin",
		PasswordHash: hash,
	}
	return NewAuthService(admin, "test-secret")
}

func TestLoginSuccess(t *testing.T) {
	svc := newAuthService(t)

	token, err := svc.Login("admin", "correct-horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}

	username, err := util.ParseJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if username != "admin" {
		t.Fatalf("expected username admin in claims, got %q", username)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)

	token, err := svc.Login("admin", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if token != "" {
		t.Fatal("no token may be issued for a failed login")
	}
}

func TestLoginWrongUsername(t *testing.T) {
	svc := newAuthService(t)

	token, err := svc.Login("root", "correct-horse")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if token != "" {
		t.Fatal("no token may be issued for a failed login")
	}
}
