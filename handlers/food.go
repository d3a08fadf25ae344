package handlers

import (
	"errors"
	"net/http"

	"food-donation-api/middleware"
	"food-donation-api/repository"
	"food-donation-api/services"
	"food-donation-api/validation"

	"github.com/gin-gonic/gin"
)

// Donate records a food donation for the authenticated user
func (h *Handler) Donate(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"msg":    "Validation error",
			"errors": []validation.FieldError{{Field: "body", Message: "must be a JSON object"}},
		})
		return
	}

	req, fieldErrs := validation.ParseDonationCreate(raw, h.now())
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"msg":    "Validation error",
			"errors": fieldErrs,
		})
		return
	}

	donation, user, err := h.donations.Donate(c.Request.Context(), req, userID)
	if errors.Is(err, services.ErrActivityAppend) {
		// The donation landed; report it with the failed log update.
		c.JSON(http.StatusCreated, gin.H{
			"msg":          "Food donation successfully recorded",
			"warning":      "activity log was not updated",
			"data":         donation,
			"updated_user": nil,
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"msg":   "An error occurred while donating food",
			"error": "internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg":          "Food donation successfully recorded",
		"data":         donation,
		"updated_user": user,
	})
}

// GetFoodDetail returns a single donation by id (public)
func (h *Handler) GetFoodDetail(c *gin.Context) {
	foodID := c.Param("foodId")

	food, err := h.donations.GetByID(c.Request.Context(), foodID)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error during finding food item",
			"details": "internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"food": food})
}

// ListAllFoods returns every donation on record (public)
func (h *Handler) ListAllFoods(c *gin.Context) {
	foods, err := h.donations.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while retrieving foods"})
		return
	}
	c.JSON(http.StatusOK, foods)
}
