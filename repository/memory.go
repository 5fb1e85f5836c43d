package repository

import (
	"context"
	"strings"
	"sync"

	"cabin-backend/models"
)

// In-memory implementations of the service repository interfaces. Tests run
// against these; they also back a throwaway dev mode with no database.
// A single mutex per store gives the request-at-a-time semantics the system
// assumes.

// MemoryAccountRepository holds accounts in a slice.
type MemoryAccountRepository struct {
	mu       sync.RWMutex
	accounts []models.Account
}

func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{}
}

func (r *MemoryAccountRepository) Create(_ context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Role == account.Role && strings.EqualFold(a.Email, account.Email) {
			return models.ErrDuplicateEmail
		}
	}
	r.accounts = append(r.accounts, *account)
	return nil
}

func (r *MemoryAccountRepository) FindByID(_ context.Context, role, id string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if a.Role == role && a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *MemoryAccountRepository) FindByEmail(_ context.Context, role, email string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if a.Role == role && strings.EqualFold(a.Email, email) {
			found := a
			return &found, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *MemoryAccountRepository) List(_ context.Context, role string) ([]models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		if a.Role == role {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *MemoryAccountRepository) Count(_ context.Context, role string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, a := range r.accounts {
		if a.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *MemoryAccountRepository) Update(_ context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.accounts {
		if a.Role == account.Role && a.ID == account.ID {
			r.accounts[i] = *account
			return nil
		}
	}
	return models.ErrNotFound
}

func (r *MemoryAccountRepository) Delete(_ context.Context, role, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.accounts {
		if a.Role == role && a.ID == id {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

// MemoryBookingRepository holds bookings in insertion order.
type MemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{}
}

func (r *MemoryBookingRepository) Create(_ context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, *booking)
	return nil
}

func (r *MemoryBookingRepository) FindByID(_ context.Context, id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.bookings {
		if b.ID == id {
			found := b
			return &found, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *MemoryBookingRepository) FindByEmail(_ context.Context, email string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Booking, 0)
	for _, b := range r.bookings {
		if strings.EqualFold(b.GuestEmail, email) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *MemoryBookingRepository) List(_ context.Context) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}

func (r *MemoryBookingRepository) Update(_ context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.bookings {
		if b.ID == booking.ID {
			r.bookings[i] = *booking
			return nil
		}
	}
	return models.ErrNotFound
}

func (r *MemoryBookingRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.bookings {
		if b.ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

// MemoryArticleRepository holds knowledge-base articles in insertion order.
type MemoryArticleRepository struct {
	mu       sync.RWMutex
	articles []models.Article
}

func NewMemoryArticleRepository() *MemoryArticleRepository {
	return &MemoryArticleRepository{}
}

func (r *MemoryArticleRepository) Create(_ context.Context, article *models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.articles = append(r.articles, *article)
	return nil
}

func (r *MemoryArticleRepository) FindByID(_ context.Context, id string) (*models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.articles {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *MemoryArticleRepository) List(_ context.Context) ([]models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Article, len(r.articles))
	copy(out, r.articles)
	return out, nil
}

func (r *MemoryArticleRepository) Update(_ context.Context, article *models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.articles {
		if a.ID == article.ID {
			r.articles[i] = *article
			return nil
		}
	}
	return models.ErrNotFound
}

func (r *MemoryArticleRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.articles {
		if a.ID == id {
			r.articles = append(r.articles[:i], r.articles[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

// MemorySettingsRepository holds the email-settings singleton.
type MemorySettingsRepository struct {
	mu       sync.RWMutex
	settings *models.EmailSettings
}

func NewMemorySettingsRepository(settings *models.EmailSettings) *MemorySettingsRepository {
	return &MemorySettingsRepository{settings: settings}
}

func (r *MemorySettingsRepository) Get(_ context.Context) (*models.EmailSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.settings == nil {
		return nil, models.ErrNotFound
	}
	found := *r.settings
	return &found, nil
}

func (r *MemorySettingsRepository) Save(_ context.Context, settings *models.EmailSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	saved := *settings
	r.settings = &saved
	return nil
}
