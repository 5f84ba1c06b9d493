package service

import (
	"errors"
	"testing"

	"go-warehouse-stock/internal/model"
	"go-warehouse-stock/internal/repository"
	"go-warehouse-stock/pkg/token"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))

	resp, err := svc.Register(&RegisterRequest{
		Username: "alice",
		Email:    "alice@x.com",
		Password: "pw1secret",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.User.Role != model.RoleUser {
		t.Fatalf("expected default role user got %s", resp.User.Role)
	}
	if resp.Token == "" {
		t.Fatal("expected a token on register")
	}

	login, err := svc.Login("alice", "pw1secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := token.Validate(login.Token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.Username != "alice" || claims.Email != "alice@x.com" || claims.Role != model.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	id, err := claims.UserID()
	if err != nil || id != resp.User.ID {
		t.Fatalf("subject mismatch: id=%d err=%v", id, err)
	}
}

func TestRegisterConflicts(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))

	if _, err := svc.Register(&RegisterRequest{Username: "alice", Email: "alice@x.com", Password: "pw1secret"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.Register(&RegisterRequest{Username: "alice", Email: "other@x.com", Password: "pw1secret"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken got %v", err)
	}

	_, err = svc.Register(&RegisterRequest{Username: "bob", Email: "alice@x.com", Password: "pw1secret"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken got %v", err)
	}

	var count int64
	db.Model(&model.User{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 user after conflicts got %d", count)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))

	_, err := svc.Register(&RegisterRequest{
		Username: "mallory",
		Email:    "mallory@x.com",
		Password: "pw1secret",
		Role:     model.Role("superuser"),
	})
	if err == nil {
		t.Fatal("expected a validation error for unknown role")
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))
	seedUser(t, db, "alice", model.RoleUser)

	if _, err := svc.Login("alice", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials got %v", err)
	}
	if _, err := svc.Login("nobody", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user got %v", err)
	}
}

func TestValidateTokenRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))
	user := seedUser(t, db, "carol", model.RoleAdmin)

	signed, err := token.Generate(user)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	resp, err := svc.ValidateToken(signed)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if resp.Role != model.RoleAdmin || resp.User.Username != "carol" {
		t.Fatalf("unexpected validation response: %+v", resp)
	}

	if _, err := svc.ValidateToken(signed + "tampered"); err == nil {
		t.Fatal("expected tampered token to be rejected")
	}
}
