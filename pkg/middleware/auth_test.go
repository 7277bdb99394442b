package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bus-booking/internal/session"
	"bus-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func authedProbe(t *testing.T, store *session.Store, header string) *httptest.ResponseRecorder {
	t.Helper()

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
			t.Errorf("user id missing from context")
		}
		if email, ok := utils.GetEmailFromContext(r.Context()); !ok || email == "" {
			t.Errorf("email missing from context")
		}
		w.WriteHeader(http.StatusOK)
	})

	handler := AuthSession(store, zap.NewNop())(inner)

	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthMissingHeader(t *testing.T) {
	rec := authedProbe(t, session.NewStore(), "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthEmptyBearerToken(t *testing.T) {
	rec := authedProbe(t, session.NewStore(), "Bearer ")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthUnknownToken(t *testing.T) {
	rec := authedProbe(t, session.NewStore(), "Bearer "+uuid.New().String())
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthDeletedToken(t *testing.T) {
	store := session.NewStore()
	token := store.Create(uuid.New(), "rider@example.com")
	store.Delete(token)

	rec := authedProbe(t, store, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("deleted token should be rejected, got %d", rec.Code)
	}
}

func TestAuthValidToken(t *testing.T) {
	store := session.NewStore()
	token := store.Create(uuid.New(), "rider@example.com")

	rec := authedProbe(t, store, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("valid token should pass, got %d", rec.Code)
	}
}

func TestAuthRawTokenWithoutBearerPrefix(t *testing.T) {
	store := session.NewStore()
	token := store.Create(uuid.New(), "rider@example.com")

	// Header without the "Bearer " prefix is used verbatim as the token
	rec := authedProbe(t, store, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("raw token header should pass, got %d", rec.Code)
	}
}
