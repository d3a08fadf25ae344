package main

import (
	"log"
	"net/http"
	"os"

	"food-donation-api/auth"
	"food-donation-api/config"
	"food-donation-api/handlers"
	"food-donation-api/repository"
	"food-donation-api/routes"
	"food-donation-api/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Load configuration — a missing signing key aborts startup
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	// Initialize database
	db, err := config.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	log.Println("✅ Database connected and migrated successfully")

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}
	hasher := auth.NewHasher(cfg.BcryptCost)

	users := repository.NewUserRepository(db)
	donations := repository.NewDonationRepository(db)

	accountService := services.NewAccountService(users, hasher, tokens)
	donationService := services.NewDonationService(donations, users)
	h := handlers.New(accountService, donationService)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Food Donation API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🥫 Welcome to the Food Donation API",
			"health":  "/health",
			"browse":  "/allfoods",
		})
	})

	// Register all routes
	routes.SetupRoutes(r, h, tokens)

	// Start server
	log.Printf("🚀 Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
