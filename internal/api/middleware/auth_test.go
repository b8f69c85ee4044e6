package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Inkwell/internal/auth"
)

var testSecret = []byte("middleware-test-secret")

func signTestToken(t *testing.T, actorID, name, role string) string {
	t.Helper()
	tokenString, err := auth.SignToken(actorID, name, role, testSecret, time.Hour)
	require.NoError(t, err)
	return tokenString
}

func actorEchoHandler(captured *struct{ id, name, role string }) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.id = GetActorID(r)
		captured.name = GetActorName(r)
		captured.role = GetActorRole(r)
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_ValidToken(t *testing.T) {
	m := NewAuthMiddleware(testSecret)
	var captured struct{ id, name, role string }

	req := httptest.NewRequest(http.MethodPost, "/api/content/1/likes", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "did:plc:alice", "Alice", auth.RoleUser))
	rec := httptest.NewRecorder()

	m.RequireAuth(actorEchoHandler(&captured)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "did:plc:alice", captured.id)
	assert.Equal(t, "Alice", captured.name)
	assert.Equal(t, auth.RoleUser, captured.role)
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(testSecret)

	req := httptest.NewRequest(http.MethodPost, "/api/content/1/likes", nil)
	rec := httptest.NewRecorder()

	m.RequireAuth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "AuthRequired")
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	m := NewAuthMiddleware(testSecret)

	req := httptest.NewRequest(http.MethodPost, "/api/content/1/likes", nil)
	req.Header.Set("Authorization", "Token abc123")
	rec := httptest.NewRecorder()

	m.RequireAuth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	m := NewAuthMiddleware(testSecret)

	req := httptest.NewRequest(http.MethodPost, "/api/content/1/likes", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()

	m.RequireAuth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireModerator_AllowsModerator(t *testing.T) {
	m := NewAuthMiddleware(testSecret)
	var captured struct{ id, name, role string }

	req := httptest.NewRequest(http.MethodDelete, "/api/content/1", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "did:plc:mod", "Mod", auth.RoleModerator))
	rec := httptest.NewRecorder()

	m.RequireModerator(actorEchoHandler(&captured)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, auth.RoleModerator, captured.role)
}

func TestRequireModerator_ForbidsRegularUser(t *testing.T) {
	m := NewAuthMiddleware(testSecret)

	req := httptest.NewRequest(http.MethodDelete, "/api/content/1", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "did:plc:alice", "Alice", auth.RoleUser))
	rec := httptest.NewRecorder()

	m.RequireModerator(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Forbidden")
}

func TestOptionalAuth_AnonymousPassesThrough(t *testing.T) {
	m := NewAuthMiddleware(testSecret)
	var captured struct{ id, name, role string }

	req := httptest.NewRequest(http.MethodGet, "/api/content/1", nil)
	rec := httptest.NewRecorder()

	m.OptionalAuth(actorEchoHandler(&captured)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, captured.id)
}

func TestOptionalAuth_InvalidTokenIsAnonymous(t *testing.T) {
	m := NewAuthMiddleware(testSecret)
	var captured struct{ id, name, role string }

	req := httptest.NewRequest(http.MethodGet, "/api/content/1", nil)
	req.Header.Set("Authorization", "Bearer expired-garbage")
	rec := httptest.NewRecorder()

	m.OptionalAuth(actorEchoHandler(&captured)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, captured.id)
}

func TestOptionalAuth_ValidTokenInjectsActor(t *testing.T) {
	m := NewAuthMiddleware(testSecret)
	var captured struct{ id, name, role string }

	req := httptest.NewRequest(http.MethodGet, "/api/content/1", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "did:plc:alice", "Alice", auth.RoleUser))
	rec := httptest.NewRecorder()

	m.OptionalAuth(actorEchoHandler(&captured)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "did:plc:alice", captured.id)
}

func TestActorFromToken(t *testing.T) {
	m := NewAuthMiddleware(testSecret)

	assert.Equal(t, "did:plc:alice", m.ActorFromToken(signTestToken(t, "did:plc:alice", "Alice", auth.RoleUser)))
	assert.Empty(t, m.ActorFromToken(""))
	assert.Empty(t, m.ActorFromToken("garbage"))
}
