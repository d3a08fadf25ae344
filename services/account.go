package services

import (
	"context"
	"errors"
	"fmt"

	"food-donation-api/auth"
	"food-donation-api/models"
	"food-donation-api/repository"
	"food-donation-api/validation"
)

var (
	// ErrDuplicateEmail means the signup email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; callers must not be able to tell which.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AccountService orchestrates signup and signin.
type AccountService struct {
	users  *repository.UserRepository
	hasher *auth.Hasher
	tokens *auth.TokenService
}

func NewAccountService(users *repository.UserRepository, hasher *auth.Hasher, tokens *auth.TokenService) *AccountService {
	return &AccountService{users: users, hasher: hasher, tokens: tokens}
}

// Signup creates an account and returns the stored user with a fresh token.
// On a duplicate email nothing is written and no token is issued.
func (s *AccountService) Signup(ctx context.Context, req validation.Signup) (*models.User, string, error) {
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, "", ErrDuplicateEmail
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", fmt.Errorf("check existing email: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Gender:       req.Gender,
		Contact:      req.Contact,
		Address:      req.Address,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// Signin verifies credentials and returns the user with a fresh token.
func (s *AccountService) Signin(ctx context.Context, req validation.Signin) (*models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// GetProfile returns the stored user snapshot with activities.
func (s *AccountService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	return s.users.FindByID(ctx, userID)
}
