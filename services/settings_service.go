package services

import (
	"context"

	"go.uber.org/zap"

	"cabin-backend/models"
)

// SettingsService exposes the email-configuration singleton.
type SettingsService struct {
	repo SettingsRepository
	log  *zap.Logger
}

func NewSettingsService(repo SettingsRepository, log *zap.Logger) *SettingsService {
	return &SettingsService{repo: repo, log: log}
}

func (s *SettingsService) Get(ctx context.Context) (*models.EmailSettings, error) {
	return s.repo.Get(ctx)
}

// Update replaces the configuration. Admin-only at the route layer.
func (s *SettingsService) Update(ctx context.Context, enabled bool, host string, port int, secure bool, authCfg models.SMTPAuth, from string) (*models.EmailSettings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	settings.Enabled = enabled
	settings.Host = host
	settings.Port = port
	settings.Secure = secure
	settings.From = from
	if err := settings.SetAuth(authCfg); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, err
	}
	s.log.Info("email settings updated", zap.Bool("enabled", enabled), zap.String("host", host))
	return settings, nil
}
