package handlers

import (
	"errors"
	"net/http"

	"food-donation-api/middleware"
	"food-donation-api/services"
	"food-donation-api/validation"

	"github.com/gin-gonic/gin"
)

// Signup creates a new user account and returns it with a bearer token
func (h *Handler) Signup(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "incorrect inputs"})
		return
	}

	req, fieldErrs := validation.ParseSignup(raw)
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"msg":    "incorrect inputs",
			"errors": fieldErrs,
		})
		return
	}

	user, token, err := h.accounts.Signup(c.Request.Context(), req)
	if errors.Is(err, services.ErrDuplicateEmail) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "User already exists"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Error during signup"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg":   "User created successfully",
		"user":  user,
		"token": token,
	})
}

// Signin authenticates a user and returns a bearer token
func (h *Handler) Signin(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid input fields"})
		return
	}

	req, fieldErrs := validation.ParseSignin(raw)
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid input fields"})
		return
	}

	user, token, err := h.accounts.Signin(c.Request.Context(), req)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Incorrect email or password"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Error during signin"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":   "User logged in successfully",
		"user":  user,
		"token": token,
	})
}

// GetProfile returns the authenticated user's stored snapshot
func (h *Handler) GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	user, err := h.accounts.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
