// Package repository provides the persistence implementations behind the
// service-layer interfaces: gorm/MySQL for production and in-memory stores
// used by tests.
package repository

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"cabin-backend/models"
)

const mysqlDuplicateEntry = 1062

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

// GormAccountRepository stores accounts in MySQL.
type GormAccountRepository struct {
	db *gorm.DB
}

func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

func (r *GormAccountRepository) Create(ctx context.Context, account *models.Account) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		if isDuplicateKey(err) {
			return models.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *GormAccountRepository) FindByID(ctx context.Context, role, id string) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).Where("role = ? AND id = ?", role, id).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *GormAccountRepository) FindByEmail(ctx context.Context, role, email string) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).Where("role = ? AND email = ?", role, email).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *GormAccountRepository) List(ctx context.Context, role string) ([]models.Account, error) {
	var accounts []models.Account
	err := r.db.WithContext(ctx).Where("role = ?", role).Order("created_at").Find(&accounts).Error
	return accounts, err
}

func (r *GormAccountRepository) Count(ctx context.Context, role string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Account{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *GormAccountRepository) Update(ctx context.Context, account *models.Account) error {
	if err := r.db.WithContext(ctx).Save(account).Error; err != nil {
		if isDuplicateKey(err) {
			return models.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *GormAccountRepository) Delete(ctx context.Context, role, id string) error {
	res := r.db.WithContext(ctx).Where("role = ? AND id = ?", role, id).Delete(&models.Account{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
