package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cabin-backend/models"
)

const settingsRowID = 1

// GormSettingsRepository stores the email-settings singleton as row 1.
type GormSettingsRepository struct {
	db *gorm.DB
}

func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

func (r *GormSettingsRepository) Get(ctx context.Context) (*models.EmailSettings, error) {
	var settings models.EmailSettings
	err := r.db.WithContext(ctx).First(&settings, "id = ?", settingsRowID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &settings, nil
}

func (r *GormSettingsRepository) Save(ctx context.Context, settings *models.EmailSettings) error {
	settings.ID = settingsRowID
	return r.db.WithContext(ctx).Save(settings).Error
}
