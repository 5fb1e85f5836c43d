package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"cabin-backend/auth"
	"cabin-backend/models"
	"cabin-backend/repository"
)

// Default admin materialized on first run when no admin account exists.
const (
	DefaultAdminName     = "Admin User"
	DefaultAdminEmail    = "admin@cabin.com"
	DefaultAdminPassword = "admin123"
)

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "cabin_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// ConnectDatabase opens MySQL, runs migrations, and seeds first-run state.
func ConnectDatabase(log *zap.Logger) (*gorm.DB, error) {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Account{},
		&models.Booking{},
		&models.Article{},
		&models.EmailSettings{},
	); err != nil {
		return nil, err
	}

	if err := SeedDatabase(db, log); err != nil {
		return nil, err
	}
	return db, nil
}

// SeedDatabase materializes the default admin when none exists and the
// email-settings singleton row.
func SeedDatabase(db *gorm.DB, log *zap.Logger) error {
	ctx := context.Background()
	accounts := repository.NewGormAccountRepository(db)

	count, err := accounts.Count(ctx, models.RoleAdmin)
	if err != nil {
		return err
	}
	if count == 0 {
		if err := seedDefaultAdmin(ctx, accounts); err != nil {
			return err
		}
		log.Info("default admin seeded", zap.String("email", DefaultAdminEmail))
	}

	settings := repository.NewGormSettingsRepository(db)
	if _, err := settings.Get(ctx); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			return err
		}
		if err := settings.Save(ctx, DefaultEmailSettings()); err != nil {
			return err
		}
		log.Info("default email settings seeded")
	}

	return nil
}

func seedDefaultAdmin(ctx context.Context, accounts *repository.GormAccountRepository) error {
	hash, err := auth.HashPassword(DefaultAdminPassword)
	if err != nil {
		return err
	}
	return accounts.Create(ctx, &models.Account{
		ID:           uuid.NewString(),
		Name:         DefaultAdminName,
		Email:        DefaultAdminEmail,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	})
}

// DefaultEmailSettings mirrors the shipped defaults: enabled, pointing at a
// placeholder SMTP host, so the mailer logs instead of transmitting until an
// operator fills in real credentials.
func DefaultEmailSettings() *models.EmailSettings {
	settings := &models.EmailSettings{
		Enabled: true,
		Host:    "smtp.example.com",
		Port:    587,
		Secure:  false,
		From:    "cabin@example.com",
	}
	_ = settings.SetAuth(models.SMTPAuth{User: "", Pass: ""})
	return settings
}
