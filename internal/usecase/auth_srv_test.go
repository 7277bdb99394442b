package usecase

import (
	"context"
	"errors"
	"testing"

	"bus-booking/internal/dto/request"
	"bus-booking/internal/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newAuthFixture() (AuthService, *session.Store) {
	repo, _, _ := newFakeRepos()
	sessions := session.NewStore()
	return NewAuthService(repo, sessions, zap.NewNop()), sessions
}

func strPtr(s string) *string { return &s }

func TestSignupThenLogin(t *testing.T) {
	svc, sessions := newAuthFixture()
	ctx := context.Background()

	signup, err := svc.Signup(ctx, &request.SignupRequest{
		Name:     "Asha Rao",
		Email:    "Asha@Example.com",
		Password: "secret123",
		Phone:    strPtr("9876543210"),
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if signup.Token == "" {
		t.Fatalf("signup should issue a session token")
	}
	if !sessions.Has(signup.Token) {
		t.Fatalf("signup token should be usable by the auth gate")
	}

	// Login with different casing must find the same account
	login, err := svc.Login(ctx, &request.LoginRequest{
		Email:    "asha@example.COM",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.UserID != signup.UserID {
		t.Fatalf("login resolved a different account: %s vs %s", login.UserID, signup.UserID)
	}
	if !sessions.Has(login.Token) {
		t.Fatalf("login token should be registered")
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	req := &request.SignupRequest{Name: "Asha Rao", Email: "asha@example.com", Password: "secret123"}
	if _, err := svc.Signup(ctx, req); err != nil {
		t.Fatalf("first signup: %v", err)
	}

	req2 := &request.SignupRequest{Name: "Imposter", Email: "ASHA@example.com", Password: "other456"}
	_, err := svc.Signup(ctx, req2)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate email should conflict, got %v", err)
	}
}

func TestSignupValidation(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Signup(context.Background(), &request.SignupRequest{
		Name:     "A",
		Email:    "not-an-email",
		Password: "123",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	if _, err := svc.Signup(ctx, &request.SignupRequest{
		Name: "Asha Rao", Email: "asha@example.com", Password: "secret123",
	}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	_, err := svc.Login(ctx, &request.LoginRequest{Email: "asha@example.com", Password: "wrong999"})
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("wrong password should be unauthenticated, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email: "ghost@example.com", Password: "secret123",
	})
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("unknown email should be unauthenticated, got %v", err)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	svc, sessions := newAuthFixture()
	ctx := context.Background()

	signup, err := svc.Signup(ctx, &request.SignupRequest{
		Name: "Asha Rao", Email: "asha@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	if err := svc.Logout(ctx, signup.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if sessions.Has(signup.Token) {
		t.Fatalf("logout should remove the session")
	}

	// Logging out an already-removed session still succeeds
	if err := svc.Logout(ctx, signup.Token); err != nil {
		t.Fatalf("repeat logout should be a no-op, got %v", err)
	}
}

func TestProfileUnknownUser(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Profile(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing profile should be not found, got %v", err)
	}
}
