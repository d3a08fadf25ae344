package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"food-donation-api/models"
	"food-donation-api/repository"
	"food-donation-api/validation"
)

// ErrActivityAppend means the donation was written but the donor's activity
// log was not updated. The donation stands; callers surface the partial
// success instead of rolling back.
var ErrActivityAppend = errors.New("activity append failed")

// DonationService orchestrates donation writes and reads.
type DonationService struct {
	donations *repository.DonationRepository
	users     *repository.UserRepository
	now       func() time.Time
}

func NewDonationService(donations *repository.DonationRepository, users *repository.UserRepository) *DonationService {
	return &DonationService{donations: donations, users: users, now: time.Now}
}

// WithClock replaces the service clock for tests.
func (s *DonationService) WithClock(now func() time.Time) *DonationService {
	s.now = now
	return s
}

// Donate persists a donation for userID and appends a "donate" entry to the
// donor's activity log. The two writes are independent; if the append fails
// after the donation landed, the donation is returned alongside
// ErrActivityAppend.
func (s *DonationService) Donate(ctx context.Context, req validation.DonationCreate, userID string) (*models.FoodDonation, *models.User, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, nil, fmt.Errorf("find donor: %w", err)
	}

	donation := &models.FoodDonation{
		UserID:         userID,
		FoodName:       req.FoodName,
		FoodType:       req.FoodType,
		FoodImage:      req.FoodImage,
		Description:    req.Description,
		Quantity:       req.Quantity,
		ExpiryDate:     req.ExpiryDate,
		DonatedDate:    req.DonatedDate,
		PickupLocation: req.PickupLocation,
		PickupTime:     req.PickupTime,
		PhoneNo:        req.PhoneNo,
		Note:           req.Note,
	}
	if err := s.donations.Create(ctx, donation); err != nil {
		return nil, nil, fmt.Errorf("create donation: %w", err)
	}

	if err := s.users.AppendActivity(ctx, userID, models.ActionDonate, s.now()); err != nil {
		return donation, nil, ErrActivityAppend
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return donation, nil, ErrActivityAppend
	}
	return donation, user, nil
}

// GetByID returns one donation or repository.ErrNotFound.
func (s *DonationService) GetByID(ctx context.Context, foodID string) (*models.FoodDonation, error) {
	return s.donations.FindByID(ctx, foodID)
}

// ListAll returns the full donation collection; order is not guaranteed.
func (s *DonationService) ListAll(ctx context.Context) ([]models.FoodDonation, error) {
	return s.donations.FindAll(ctx)
}
