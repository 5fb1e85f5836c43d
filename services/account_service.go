package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cabin-backend/auth"
	"cabin-backend/models"
)

// AccountService manages the admin and guest credential populations.
type AccountService struct {
	repo AccountRepository
	log  *zap.Logger
}

func NewAccountService(repo AccountRepository, log *zap.Logger) *AccountService {
	return &AccountService{repo: repo, log: log}
}

// Create hashes the password and stores a new account. Fails with
// models.ErrDuplicateEmail if the email is taken within the role population.
func (s *AccountService) Create(ctx context.Context, role, name, email, password string) (*models.Account, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if _, err := s.repo.FindByEmail(ctx, role, email); err == nil {
		return nil, models.ErrDuplicateEmail
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}
	s.log.Info("account created", zap.String("role", role), zap.String("email", email))
	return account, nil
}

// Verify looks an account up by email and compares the password against the
// stored hash. Returns ErrInvalidCredentials on miss or mismatch; the bcrypt
// comparison is constant-work either way.
func (s *AccountService) Verify(ctx context.Context, role, email, password string) (*models.Account, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	account, err := s.repo.FindByEmail(ctx, role, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(account.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

// Delete removes an account. Deleting the last remaining admin is rejected
// with ErrLastAdmin; handlers are responsible for clearing the session
// cookie when an admin deletes their own account.
func (s *AccountService) Delete(ctx context.Context, role, id string) error {
	if role == models.RoleAdmin {
		count, err := s.repo.Count(ctx, role)
		if err != nil {
			return err
		}
		if count <= 1 {
			return ErrLastAdmin
		}
	}
	if err := s.repo.Delete(ctx, role, id); err != nil {
		return err
	}
	s.log.Info("account deleted", zap.String("role", role), zap.String("id", id))
	return nil
}

// ChangePassword re-hashes and replaces the credential. A wrong current
// password never mutates stored state.
func (s *AccountService) ChangePassword(ctx context.Context, role, email, current, next string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	account, err := s.repo.FindByEmail(ctx, role, email)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(account.PasswordHash, current) {
		return ErrInvalidCredentials
	}
	hash, err := auth.HashPassword(next)
	if err != nil {
		return err
	}
	account.PasswordHash = hash
	return s.repo.Update(ctx, account)
}

// Update changes name and/or email. An email change is checked against the
// role population for duplicates.
func (s *AccountService) Update(ctx context.Context, role, id string, name, email *string) (*models.Account, error) {
	account, err := s.repo.FindByID(ctx, role, id)
	if err != nil {
		return nil, err
	}
	if name != nil && strings.TrimSpace(*name) != "" {
		account.Name = strings.TrimSpace(*name)
	}
	if email != nil {
		newEmail := strings.TrimSpace(strings.ToLower(*email))
		if newEmail != "" && newEmail != account.Email {
			if _, err := s.repo.FindByEmail(ctx, role, newEmail); err == nil {
				return nil, models.ErrDuplicateEmail
			} else if !errors.Is(err, models.ErrNotFound) {
				return nil, err
			}
			account.Email = newEmail
		}
	}
	if err := s.repo.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// GetByID fetches a single account within a role population.
func (s *AccountService) GetByID(ctx context.Context, role, id string) (*models.Account, error) {
	return s.repo.FindByID(ctx, role, id)
}

// List returns all accounts in a role population.
func (s *AccountService) List(ctx context.Context, role string) ([]models.Account, error) {
	return s.repo.List(ctx, role)
}
