package middleware

import (
	"net/http"
	"strings"

	"cargofly/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for handlers downstream.
const (
	ContextKeyUID    = "uid"
	ContextKeyClaims = "claims"
)

// AuthMiddleware validates bearer ID tokens issued by the external auth
// provider. Sign-in and session management happen client-side; the backend
// only ever sees tokens.
type AuthMiddleware struct {
	verifier service.TokenVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate verifies the Authorization header and stores the identity
// claims on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.verifier.VerifyIDToken(c.Request().Context(), tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		c.Set(ContextKeyUID, claims.UID)
		c.Set(ContextKeyClaims, claims)

		return next(c)
	}
}

// UIDFromContext returns the authenticated UID set by Authenticate.
func UIDFromContext(c echo.Context) string {
	uid, _ := c.Get(ContextKeyUID).(string)

	return uid
}

// ClaimsFromContext returns the identity claims set by Authenticate.
func ClaimsFromContext(c echo.Context) *service.AuthClaims {
	claims, _ := c.Get(ContextKeyClaims).(*service.AuthClaims)

	return claims
}
