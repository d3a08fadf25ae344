package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FoodDonation struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	UserID         string    `json:"userId" gorm:"index;not null"` // donor back-reference, never cascades
	FoodName       string    `json:"foodName" gorm:"not null"`
	FoodType       string    `json:"foodType" gorm:"not null"`
	FoodImage      string    `json:"foodImage,omitempty"`
	Description    string    `json:"description,omitempty"`
	Quantity       float64   `json:"quantity" gorm:"not null"`
	ExpiryDate     time.Time `json:"expiryDate" gorm:"not null"`
	DonatedDate    time.Time `json:"donatedDate" gorm:"not null"`
	PickupLocation string    `json:"pickupLocation" gorm:"not null"`
	PickupTime     string    `json:"pickupTime" gorm:"not null"`
	PhoneNo        string    `json:"phoneNo" gorm:"not null"`
	Note           string    `json:"note,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func (f *FoodDonation) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
