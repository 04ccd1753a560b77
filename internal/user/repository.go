package user

import (
	"context"
	"errors"

	"github.com/thesrcielos/CodingTracker/internal/apperrors"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (*User, error)
	FindByIdentifier(ctx context.Context, identifier string) (*User, error)
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) CreateUser(ctx context.Context, username, email, passwordHash string) (*User, error) {
	var exists User
	result := r.db.WithContext(ctx).Where("username = ? OR email = ?", username, email).Limit(1).Find(&exists)
	if result.Error != nil {
		return nil, apperrors.Internal("Register failed", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil, apperrors.Conflict("User exists")
	}

	newUser := User{
		Username: username,
		Email:    email,
		Password: passwordHash,
	}
	if err := r.db.WithContext(ctx).Create(&newUser).Error; err != nil {
		// a concurrent registration can slip past the pre-check
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("User exists")
		}
		return nil, apperrors.Internal("Register failed", err)
	}

	return &newUser, nil
}

func (r *GormUserRepository) FindByIdentifier(ctx context.Context, identifier string) (*User, error) {
	var u User
	result := r.db.WithContext(ctx).Where("username = ? OR email = ?", identifier, identifier).Limit(1).Find(&u)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &u, nil
}
