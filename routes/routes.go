package routes

import (
	"food-donation-api/auth"
	"food-donation-api/handlers"
	"food-donation-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler, tokens *auth.TokenService) {
	// ── Public routes ──────────────────────────────────────────────
	r.POST("/signup", h.Signup)
	r.POST("/signin", h.Signin)
	r.GET("/detail/:foodId", h.GetFoodDetail)
	r.GET("/allfoods", h.ListAllFoods)

	// ── Authenticated routes ───────────────────────────────────────
	protected := r.Group("/")
	protected.Use(middleware.AuthRequired(tokens))
	{
		protected.POST("/donate", h.Donate)
		protected.GET("/profile", h.GetProfile)
	}
}
