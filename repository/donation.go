package repository

import (
	"context"
	"errors"

	"food-donation-api/models"

	"gorm.io/gorm"
)

// DonationRepository is the persistence facade for food donations.
type DonationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

func (r *DonationRepository) Create(ctx context.Context, donation *models.FoodDonation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *DonationRepository) FindByID(ctx context.Context, id string) (*models.FoodDonation, error) {
	var donation models.FoodDonation
	err := r.db.WithContext(ctx).First(&donation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *DonationRepository) FindAll(ctx context.Context) ([]models.FoodDonation, error) {
	donations := []models.FoodDonation{}
	if err := r.db.WithContext(ctx).Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}
