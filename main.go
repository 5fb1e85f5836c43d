package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"cabin-backend/auth"
	"cabin-backend/config"
	"cabin-backend/controllers"
	"cabin-backend/repository"
	"cabin-backend/routes"
	"cabin-backend/services"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Info(".env not found, continuing with environment variables")
	}

	production := os.Getenv("APP_ENV") == "production"
	secret := os.Getenv("JWT_SECRET")
	if secret == "" && production {
		log.Fatal("JWT_SECRET must be set in production")
	}
	issuer := auth.NewTokenIssuer(secret)

	db, err := config.ConnectDatabase(log)
	if err != nil {
		log.Fatal("database connect failed", zap.Error(err))
	}
	log.Info("database connection established, migrations applied")

	// Repositories
	accountRepo := repository.NewGormAccountRepository(db)
	bookingRepo := repository.NewGormBookingRepository(db)
	articleRepo := repository.NewGormArticleRepository(db)
	settingsRepo := repository.NewGormSettingsRepository(db)

	// Services
	mailer := services.NewSMTPMailer(settingsRepo, log)
	accountService := services.NewAccountService(accountRepo, log)
	bookingService := services.NewBookingService(bookingRepo, mailer, log)
	availabilityService := services.NewAvailabilityService(bookingRepo)
	articleService := services.NewArticleService(articleRepo, log)
	settingsService := services.NewSettingsService(settingsRepo, log)

	// Controllers
	ctrl := routes.Controllers{
		Auth:         controllers.NewAuthController(accountService, issuer, production),
		Admins:       controllers.NewAdminController(accountService, production),
		Users:        controllers.NewUserController(accountService),
		Bookings:     controllers.NewBookingController(bookingService),
		Availability: controllers.NewAvailabilityController(availabilityService),
		Articles:     controllers.NewArticleController(articleService),
		Settings:     controllers.NewSettingsController(settingsService),
	}

	router := routes.SetupRouter(ctrl, issuer, log)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen and serve failed", zap.Error(err))
		}
	}()

	// Wait for interrupt, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped gracefully")
}
