package repository

import (
	"context"
	"errors"
	"time"

	"food-donation-api/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// UserRepository is the persistence facade for users and their activity log.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID loads a user with the full activity log in insertion order.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("activities.id ASC")
		}).
		First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// AppendActivity pushes one entry onto a user's activity log. A single row
// insert, so concurrent appends can interleave but never lose entries.
func (r *UserRepository) AppendActivity(ctx context.Context, userID string, action models.ActivityAction, ts time.Time) error {
	entry := models.Activity{
		UserID:    userID,
		Action:    action,
		Timestamp: ts,
	}
	return r.db.WithContext(ctx).Create(&entry).Error
}
