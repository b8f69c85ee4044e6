package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles carried in the identity provider's role claim
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
)

// Claims represents the identity-token claims the engine consumes
// The identity provider resolves credentials elsewhere; this side only
// verifies the shared-secret signature and reads the resolved actor
type Claims struct {
	jwt.RegisteredClaims
	DisplayName string `json:"name,omitempty"`
	Role        string `json:"role,omitempty"`
}

// ActorID returns the resolved actor identifier (the sub claim)
func (c *Claims) ActorID() string {
	return c.Subject
}

// stripBearerPrefix removes the "Bearer " prefix from a token string
func stripBearerPrefix(tokenString string) string {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	return strings.TrimSpace(tokenString)
}

// VerifyToken verifies an HS256 identity token against the shared secret
// and returns its claims
func VerifyToken(tokenString string, secret []byte) (*Claims, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("token verification failed: signing secret not configured")
	}
	tokenString = stripBearerPrefix(tokenString)

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("token verification failed: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token verification failed: signature invalid")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("token verification failed: invalid claims type")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token verification failed: missing sub claim")
	}
	if claims.Role == "" {
		claims.Role = RoleUser
	}

	return claims, nil
}

// SignToken issues an HS256 identity token
// The engine itself never issues tokens in production (the identity provider
// does); this exists for development tooling and tests
func SignToken(actorID, displayName, role string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actorID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		DisplayName: displayName,
		Role:        role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
