// Package services holds the business logic, delegating persistence to
// per-entity repository interfaces. Production wires the gorm-backed
// implementations from the repository package; tests use in-memory fakes.
package services

import (
	"context"

	"cabin-backend/models"
)

// AccountRepository persists admin and guest accounts. Lookups that miss
// return models.ErrNotFound; creates that collide on (email, role) return
// models.ErrDuplicateEmail.
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	FindByID(ctx context.Context, role, id string) (*models.Account, error)
	FindByEmail(ctx context.Context, role, email string) (*models.Account, error)
	List(ctx context.Context, role string) ([]models.Account, error)
	Count(ctx context.Context, role string) (int64, error)
	Update(ctx context.Context, account *models.Account) error
	Delete(ctx context.Context, role, id string) error
}

// BookingRepository persists the reservation ledger.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id string) (*models.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]models.Booking, error)
	List(ctx context.Context) ([]models.Booking, error)
	Update(ctx context.Context, booking *models.Booking) error
	Delete(ctx context.Context, id string) error
}

// ArticleRepository persists knowledge-base articles.
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	FindByID(ctx context.Context, id string) (*models.Article, error)
	List(ctx context.Context) ([]models.Article, error)
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id string) error
}

// SettingsRepository persists the email-settings singleton.
type SettingsRepository interface {
	Get(ctx context.Context) (*models.EmailSettings, error)
	Save(ctx context.Context, settings *models.EmailSettings) error
}
