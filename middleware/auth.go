package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cabin-backend/auth"
	"cabin-backend/utils"
)

const principalKey = "principal"

// RequireAuth reads the session cookie, verifies the token, and stores the
// claims in the request context. Missing or invalid tokens end the request
// with 401.
func RequireAuth(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.CookieName)
		if err != nil || token == "" {
			utils.JSONError(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}
		claims, ok := issuer.Verify(token)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or expired session")
			c.Abort()
			return
		}
		c.Set(principalKey, claims)
		c.Next()
	}
}

// RequireRole gates a route to one role. Must run after RequireAuth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := Principal(c)
		if !ok || claims.Role != role {
			utils.JSONError(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Principal returns the verified claims set by RequireAuth.
func Principal(c *gin.Context) (*auth.Claims, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
