package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"cabin-backend/models"
)

// CookieName is the single well-known cookie carrying the session token.
const CookieName = "cabin-auth-token"

// TokenTTL is the fixed lifetime of an issued token.
const TokenTTL = 24 * time.Hour

// defaultSecret is the development fallback. Set JWT_SECRET in production.
const defaultSecret = "cabin-dev-secret-change-me"

// Claims is the identity assertion embedded in a session token.
// Subject holds the account id.
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies session tokens with a server-held secret.
type TokenIssuer struct {
	secret []byte
}

// NewTokenIssuer returns an issuer for the given secret. An empty secret
// falls back to the development default.
func NewTokenIssuer(secret string) *TokenIssuer {
	if secret == "" {
		secret = defaultSecret
	}
	return &TokenIssuer{secret: []byte(secret)}
}

// Issue signs a token for the account with the fixed TTL.
func (i *TokenIssuer) Issue(account *models.Account) (string, error) {
	now := time.Now()
	claims := Claims{
		Name:  account.Name,
		Email: account.Email,
		Role:  account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify parses and validates a token. It fails closed: any malformed,
// forged, or expired token yields (nil, false) and never an error to the
// caller.
func (i *TokenIssuer) Verify(tokenString string) (*Claims, bool) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	return claims, true
}

// SetAuthCookie stores the token under the well-known cookie name:
// HTTP-only, strict same-site, secure when requested, max-age = TTL, path /.
func SetAuthCookie(c *gin.Context, token string, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, token, int(TokenTTL.Seconds()), "/", "", secure, true)
}

// ClearAuthCookie overwrites the cookie with an empty value so the client
// drops it. Expiry is the only server-side termination; there is no
// revocation list.
func ClearAuthCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, "", -1, "/", "", secure, true)
}
