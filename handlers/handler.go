package handlers

import (
	"time"

	"food-donation-api/services"
)

// Handler holds the services behind every endpoint.
type Handler struct {
	accounts  *services.AccountService
	donations *services.DonationService
	now       func() time.Time
}

func New(accounts *services.AccountService, donations *services.DonationService) *Handler {
	return &Handler{
		accounts:  accounts,
		donations: donations,
		now:       time.Now,
	}
}
