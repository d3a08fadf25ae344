package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"food-donation-api/models"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds all process-wide settings. It is loaded once at startup
// and read-only afterwards.
type Config struct {
	Port       string
	DBPath     string
	JWTSecret  []byte
	BcryptCost int
	TokenTTL   time.Duration
}

// Load reads configuration from the environment. A missing JWT_SECRET is a
// startup failure, not something to discover on the first signin.
func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	cost := bcrypt.DefaultCost
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < bcrypt.MinCost || n > bcrypt.MaxCost {
			return nil, errors.New("BCRYPT_COST must be a valid bcrypt cost factor")
		}
		cost = n
	}

	ttl := time.Hour
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, errors.New("TOKEN_TTL must be a positive duration")
		}
		ttl = d
	}

	return &Config{
		Port:       getEnv("PORT", "8080"),
		DBPath:     getEnv("DB_PATH", "food_donation.db"),
		JWTSecret:  []byte(secret),
		BcryptCost: cost,
		TokenTTL:   ttl,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the sqlite database and migrates all models.
func InitDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Activity{},
		&models.FoodDonation{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
