package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cabin-backend/auth"
	"cabin-backend/controllers"
	"cabin-backend/models"
	"cabin-backend/repository"
	"cabin-backend/services"
)

type testEnv struct {
	router   *gin.Engine
	accounts *services.AccountService
	articles *services.ArticleService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()

	accountRepo := repository.NewMemoryAccountRepository()
	bookingRepo := repository.NewMemoryBookingRepository()
	articleRepo := repository.NewMemoryArticleRepository()
	settingsRepo := repository.NewMemorySettingsRepository(&models.EmailSettings{ID: 1})

	accounts := services.NewAccountService(accountRepo, log)
	mailer := services.NewSMTPMailer(settingsRepo, log)
	bookings := services.NewBookingService(bookingRepo, mailer, log)
	availability := services.NewAvailabilityService(bookingRepo)
	articles := services.NewArticleService(articleRepo, log)
	settings := services.NewSettingsService(settingsRepo, log)

	issuer := auth.NewTokenIssuer("routes-test-secret")
	ctrl := Controllers{
		Auth:         controllers.NewAuthController(accounts, issuer, false),
		Admins:       controllers.NewAdminController(accounts, false),
		Users:        controllers.NewUserController(accounts),
		Bookings:     controllers.NewBookingController(bookings),
		Availability: controllers.NewAvailabilityController(availability),
		Articles:     controllers.NewArticleController(articles),
		Settings:     controllers.NewSettingsController(settings),
	}

	return &testEnv{
		router:   SetupRouter(ctrl, issuer, log),
		accounts: accounts,
		articles: articles,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

// login helper seeds an admin straight through the service so the test does
// not burn the auth rate-limit budget on setup.
func (e *testEnv) seedAdmin(t *testing.T) *models.Account {
	t.Helper()
	admin, err := e.accounts.Create(context.Background(), models.RoleAdmin, "Admin User", "admin@cabin.com", "admin123")
	require.NoError(t, err)
	return admin
}

func (e *testEnv) adminCookie(t *testing.T) *http.Cookie {
	t.Helper()
	e.seedAdmin(t)
	w := e.do(t, http.MethodPost, "/api/auth/login", gin.H{
		"email": "admin@cabin.com", "password": "admin123", "role": models.RoleAdmin,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return sessionCookie(t, w)
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok"`)
}

func TestRegisterLoginMe(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/register", gin.H{
		"name": "Jamie Guest", "email": "jamie@example.com", "password": "hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.do(t, http.MethodPost, "/api/auth/login", gin.H{
		"email": "jamie@example.com", "password": "hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	cookie := sessionCookie(t, w)
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	w = env.do(t, http.MethodGet, "/api/auth/me", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			User struct {
				Email string `json:"email"`
				Role  string `json:"role"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "jamie@example.com", body.Data.User.Email)
	assert.Equal(t, models.RoleUser, body.Data.User.Role)
}

func TestLoginBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.seedAdmin(t)

	w := env.do(t, http.MethodPost, "/api/auth/login", gin.H{
		"email": "admin@cabin.com", "password": "wrong", "role": models.RoleAdmin,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/admins", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodGet, "/api/bookings", nil, &http.Cookie{Name: auth.CookieName, Value: "garbage"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGuestCannotReachAdminRoutes(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.accounts.Create(context.Background(), models.RoleUser, "Jamie Guest", "jamie@example.com", "hunter22")
	require.NoError(t, err)
	w := env.do(t, http.MethodPost, "/api/auth/login", gin.H{
		"email": "jamie@example.com", "password": "hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(t, w)

	w = env.do(t, http.MethodGet, "/api/admins", nil, cookie)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodGet, "/api/settings/email", nil, cookie)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLastAdminCannotBeDeleted(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.adminCookie(t)

	admins, err := env.accounts.List(context.Background(), models.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, admins, 1)

	w := env.do(t, http.MethodDelete, "/api/admins/"+admins[0].ID, nil, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "last")
}

func TestSelfDeleteClearsCookie(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.adminCookie(t)

	// with a second admin in place, self-deletion is allowed
	w := env.do(t, http.MethodPost, "/api/admins", gin.H{
		"name": "Backup Admin", "email": "backup@cabin.com", "password": "s3cret99",
	}, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	self, err := env.accounts.List(context.Background(), models.RoleAdmin)
	require.NoError(t, err)
	var selfID string
	for _, a := range self {
		if a.Email == "admin@cabin.com" {
			selfID = a.ID
		}
	}
	require.NotEmpty(t, selfID)

	w = env.do(t, http.MethodDelete, "/api/admins/"+selfID, nil, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	cleared := sessionCookie(t, w)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}

func TestArticleVisibilityThroughRouter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	published, err := env.articles.Add(ctx, services.ArticleInput{
		Title: "Getting Here", Content: "Take highway 12.", Category: models.CategoryLocation, Published: true,
	})
	require.NoError(t, err)
	draft, err := env.articles.Add(ctx, services.ArticleInput{
		Title: "Draft", Content: "wip", Category: models.CategoryGeneral, Published: false,
	})
	require.NoError(t, err)

	w := env.do(t, http.MethodGet, "/api/articles", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), published.ID)
	assert.NotContains(t, w.Body.String(), draft.ID)

	w = env.do(t, http.MethodGet, "/api/articles/"+draft.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	cookie := env.adminCookie(t)
	w = env.do(t, http.MethodGet, "/api/articles/all", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), draft.ID)
}

func TestAvailabilityIsPublic(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/availability?date=2026-07-04", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"booked":false`)

	w = env.do(t, http.MethodGet, "/api/availability/calendar?year=2026&month=7", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
