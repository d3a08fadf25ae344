package services_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"food-donation-api/auth"
	"food-donation-api/config"
	"food-donation-api/repository"
	"food-donation-api/services"
	"food-donation-api/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	accounts  *services.AccountService
	donations *services.DonationService
	tokens    *auth.TokenService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := config.InitDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	tokens, err := auth.NewTokenService([]byte("test-secret"), time.Hour)
	require.NoError(t, err)
	// MinCost keeps the bcrypt work factor out of test runtime.
	hasher := auth.NewHasher(bcrypt.MinCost)

	users := repository.NewUserRepository(db)
	donations := repository.NewDonationRepository(db)
	return &testEnv{
		accounts:  services.NewAccountService(users, hasher, tokens),
		donations: services.NewDonationService(donations, users),
		tokens:    tokens,
	}
}

func signupReq(email string) validation.Signup {
	return validation.Signup{
		Name:     "A",
		Email:    email,
		Gender:   "f",
		Contact:  "123",
		Address:  "addr",
		Password: "pw",
	}
}

func TestAccountService_SignupThenSignin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, token, err := env.accounts.Signup(ctx, signupReq("a@x.com"))
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.NotEqual(t, "pw", user.PasswordHash, "plaintext must never be stored")

	// The issued token resolves back to the new user.
	userID, err := env.tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	// The same credentials sign in.
	signed, token2, err := env.accounts.Signin(ctx, validation.Signin{Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, signed.ID)
	assert.NotEmpty(t, token2)
}

func TestAccountService_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, _, err := env.accounts.Signup(ctx, signupReq("dup@x.com"))
	require.NoError(t, err)

	req := signupReq("dup@x.com")
	req.Name = "Someone Else"
	req.Password = "other"
	_, token, err := env.accounts.Signup(ctx, req)
	assert.ErrorIs(t, err, services.ErrDuplicateEmail)
	assert.Empty(t, token, "no token on duplicate signup")
}

func TestAccountService_InvalidCredentialsIndistinguishable(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, _, err := env.accounts.Signup(ctx, signupReq("real@x.com"))
	require.NoError(t, err)

	_, _, wrongPw := env.accounts.Signin(ctx, validation.Signin{Email: "real@x.com", Password: "nope"})
	_, _, noUser := env.accounts.Signin(ctx, validation.Signin{Email: "ghost@x.com", Password: "pw"})

	assert.ErrorIs(t, wrongPw, services.ErrInvalidCredentials)
	assert.ErrorIs(t, noUser, services.ErrInvalidCredentials)
	assert.Equal(t, wrongPw, noUser, "wrong password and unknown email must be the same error")
}

func TestAccountService_GetProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, _, err := env.accounts.Signup(ctx, signupReq("p@x.com"))
	require.NoError(t, err)

	got, err := env.accounts.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	_, err = env.accounts.GetProfile(ctx, "no-such-id")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
