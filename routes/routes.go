package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cabin-backend/auth"
	"cabin-backend/controllers"
	"cabin-backend/middleware"
	"cabin-backend/models"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Controllers bundles every handler group the router needs.
type Controllers struct {
	Auth         *controllers.AuthController
	Admins       *controllers.AdminController
	Users        *controllers.UserController
	Bookings     *controllers.BookingController
	Availability *controllers.AvailabilityController
	Articles     *controllers.ArticleController
	Settings     *controllers.SettingsController
}

// SetupRouter wires middleware and the canonical API surface.
func SetupRouter(ctrl Controllers, issuer *auth.TokenIssuer, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Retry-After"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.RequireAuth(issuer)
	requireAdmin := middleware.RequireRole(models.RoleAdmin)
	loginLimiter := middleware.NewClientRateLimiter(5, time.Minute)

	api := r.Group("/api")
	{
		authRoutes := api.Group("/auth")
		authRoutes.Use(loginLimiter.Middleware())
		{
			authRoutes.POST("/login", ctrl.Auth.Login)
			authRoutes.POST("/logout", ctrl.Auth.Logout)
			authRoutes.POST("/register", ctrl.Auth.Register)
			authRoutes.GET("/me", requireAuth, ctrl.Auth.Me)
			authRoutes.POST("/change-password", requireAuth, ctrl.Auth.ChangePassword)
		}

		admins := api.Group("/admins", requireAuth, requireAdmin)
		{
			admins.GET("", ctrl.Admins.List)
			admins.POST("", ctrl.Admins.Create)
			admins.DELETE("/:id", ctrl.Admins.Delete)
		}

		users := api.Group("/users", requireAuth, requireAdmin)
		{
			users.GET("", ctrl.Users.List)
			users.POST("", ctrl.Users.Create)
			users.PUT("/:id", ctrl.Users.Update)
			users.DELETE("/:id", ctrl.Users.Delete)
		}

		bookings := api.Group("/bookings", requireAuth)
		{
			bookings.POST("", ctrl.Bookings.Create)
			bookings.GET("/mine", ctrl.Bookings.Mine)
			bookings.GET("/:id", ctrl.Bookings.Get)
			bookings.PATCH("/:id/guest-dates", ctrl.Bookings.GuestChangeDates)
			bookings.DELETE("/:id/cancel", ctrl.Bookings.Cancel)

			bookings.GET("", requireAdmin, ctrl.Bookings.List)
			bookings.PATCH("/:id/approve", requireAdmin, ctrl.Bookings.Approve)
			bookings.PATCH("/:id/reject", requireAdmin, ctrl.Bookings.Reject)
			bookings.PATCH("/:id/dates", requireAdmin, ctrl.Bookings.ChangeDates)
			bookings.DELETE("/:id", requireAdmin, ctrl.Bookings.Delete)
		}

		availability := api.Group("/availability")
		{
			availability.GET("", ctrl.Availability.Check)
			availability.GET("/calendar", ctrl.Availability.Calendar)
		}

		articles := api.Group("/articles")
		{
			articles.GET("", ctrl.Articles.List)
			articles.GET("/search", ctrl.Articles.Search)

			// admin-only set before the parameterized match
			articles.GET("/all", requireAuth, requireAdmin, ctrl.Articles.ListAll)
			articles.POST("", requireAuth, requireAdmin, ctrl.Articles.Create)
			articles.PUT("/:id", requireAuth, requireAdmin, ctrl.Articles.Update)
			articles.DELETE("/:id", requireAuth, requireAdmin, ctrl.Articles.Delete)

			articles.GET("/:id", ctrl.Articles.Get)
		}

		settings := api.Group("/settings", requireAuth, requireAdmin)
		{
			settings.GET("/email", ctrl.Settings.GetEmailSettings)
			settings.PUT("/email", ctrl.Settings.UpdateEmailSettings)
		}
	}

	return r
}
