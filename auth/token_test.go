package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cabin-backend/models"
)

func testAccount() *models.Account {
	return &models.Account{
		ID:    "acc-1",
		Name:  "Admin User",
		Email: "admin@cabin.com",
		Role:  models.RoleAdmin,
	}
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	token, err := issuer.Issue(testAccount())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, ok := issuer.Verify(token)
	require.True(t, ok)
	assert.Equal(t, "acc-1", claims.Subject)
	assert.Equal(t, "Admin User", claims.Name)
	assert.Equal(t, "admin@cabin.com", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-a").Issue(testAccount())
	require.NoError(t, err)

	_, ok := NewTokenIssuer("secret-b").Verify(token)
	assert.False(t, ok)
}

func TestVerify_Malformed(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, ok := issuer.Verify(tok)
		assert.False(t, ok, "token %q should be rejected", tok)
	}
}

func TestVerify_Tampered(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")
	token, err := issuer.Issue(testAccount())
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, ok := issuer.Verify(tampered)
	assert.False(t, ok)
}

func TestVerify_Expired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	claims := Claims{
		Name:  "Admin User",
		Email: "admin@cabin.com",
		Role:  models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "acc-1",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, ok := issuer.Verify(expired)
	assert.False(t, ok)
}

func TestVerify_RejectsNonHMAC(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	// alg=none style token must fail closed
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject: "acc-1",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, ok := issuer.Verify(unsigned)
	assert.False(t, ok)
}
