// Package adapters provides gorm repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ecourts_backend/internal/feature/auth/domain/entity"
	"ecourts_backend/internal/feature/auth/usecase"
)

// userGorm implements usecase.UserRepository on any gorm dialect.
// The connection must be opened with TranslateError so unique violations surface as gorm.ErrDuplicatedKey.
type userGorm struct {
	db *gorm.DB
}

var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm creates a user repository backed by db.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create inserts u. Returns usecase.ErrUserAlreadyExists when the mobile number is taken.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

// FindByMobile returns the user registered with mobile.
func (r *userGorm) FindByMobile(ctx context.Context, mobile string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("mobile = ?", mobile).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID returns the user with id.
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// List returns every user, newest first.
func (r *userGorm) List(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Delete removes the user with id.
func (r *userGorm) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

// CountByRole returns the total number of users and the number of admins.
func (r *userGorm) CountByRole(ctx context.Context) (int64, int64, error) {
	var total, admins int64
	db := r.db.WithContext(ctx).Model(&entity.User{})
	if err := db.Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.User{}).Where("is_admin = ?", true).Count(&admins).Error; err != nil {
		return 0, 0, err
	}
	return total, admins, nil
}
