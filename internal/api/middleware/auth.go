package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"Inkwell/internal/auth"
)

// Context keys for storing actor information
type contextKey string

const (
	actorIDKey   contextKey = "actor_id"
	actorNameKey contextKey = "actor_name"
	actorRoleKey contextKey = "actor_role"
)

// AuthMiddleware enforces identity-token authentication for protected routes
// Validates HS256 Bearer tokens issued by the identity provider
type AuthMiddleware struct {
	secret []byte
}

// NewAuthMiddleware creates an auth middleware for the given shared secret
func NewAuthMiddleware(secret []byte) *AuthMiddleware {
	return &AuthMiddleware{secret: secret}
}

// RequireAuth ensures the request carries a valid identity token
// If not authenticated, returns 401; otherwise injects actor id, display
// name and role into the request context
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := m.resolve(w, r, true)
		if !ok {
			return
		}
		next.ServeHTTP(w, r.WithContext(withActor(r.Context(), claims)))
	})
}

// RequireModerator ensures the request carries a valid token with the
// moderator role; returns 403 for authenticated non-moderators
func (m *AuthMiddleware) RequireModerator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := m.resolve(w, r, true)
		if !ok {
			return
		}
		if claims.Role != auth.RoleModerator {
			writeAuthError(w, http.StatusForbidden, "Forbidden", "Moderator role required")
			return
		}
		next.ServeHTTP(w, r.WithContext(withActor(r.Context(), claims)))
	})
}

// OptionalAuth injects actor information when a valid token is present and
// passes the request through anonymously otherwise
// A malformed token is treated as anonymous, not rejected: public reads must
// keep working with stale credentials
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := m.resolve(w, r, false); ok {
			r = r.WithContext(withActor(r.Context(), claims))
		}
		next.ServeHTTP(w, r)
	})
}

// resolve extracts and verifies the bearer token
// When required is false, failures are silent and the caller proceeds
// anonymously
func (m *AuthMiddleware) resolve(w http.ResponseWriter, r *http.Request, required bool) (*auth.Claims, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		if required {
			writeAuthError(w, http.StatusUnauthorized, "AuthRequired", "Missing Authorization header")
		}
		return nil, false
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		if required {
			writeAuthError(w, http.StatusUnauthorized, "AuthRequired", "Invalid Authorization header format. Expected: Bearer <token>")
		}
		return nil, false
	}

	claims, err := auth.VerifyToken(authHeader, m.secret)
	if err != nil {
		if required {
			log.Printf("[AUTH_FAILURE] ip=%s method=%s path=%s error=%v",
				r.RemoteAddr, r.Method, r.URL.Path, err)
			writeAuthError(w, http.StatusUnauthorized, "AuthRequired", "Invalid or expired token")
		}
		return nil, false
	}
	return claims, true
}

// ActorFromToken verifies a raw token string and returns the actor id
// Used by the websocket subscribe path, where browsers can't set headers and
// pass the token as a query parameter instead
func (m *AuthMiddleware) ActorFromToken(tokenString string) string {
	if tokenString == "" {
		return ""
	}
	claims, err := auth.VerifyToken(tokenString, m.secret)
	if err != nil {
		return ""
	}
	return claims.ActorID()
}

func withActor(ctx context.Context, claims *auth.Claims) context.Context {
	ctx = context.WithValue(ctx, actorIDKey, claims.ActorID())
	ctx = context.WithValue(ctx, actorNameKey, claims.DisplayName)
	ctx = context.WithValue(ctx, actorRoleKey, claims.Role)
	return ctx
}

// GetActorID returns the authenticated actor id, or "" for anonymous requests
func GetActorID(r *http.Request) string {
	id, _ := r.Context().Value(actorIDKey).(string)
	return id
}

// GetActorName returns the authenticated actor's display name
func GetActorName(r *http.Request) string {
	name, _ := r.Context().Value(actorNameKey).(string)
	return name
}

// GetActorRole returns the authenticated actor's role claim
func GetActorRole(r *http.Request) string {
	role, _ := r.Context().Value(actorRoleKey).(string)
	return role
}

func writeAuthError(w http.ResponseWriter, status int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   errorType,
		"message": message,
	}); err != nil {
		log.Printf("Failed to encode auth error response: %v", err)
	}
}
