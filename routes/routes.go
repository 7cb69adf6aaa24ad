package routes

import (
	"restaurant-api/config"
	"restaurant-api/handlers"
	"restaurant-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/login", handlers.Login)
		public.POST("/auth/reset-password", handlers.ResetPassword)

		// Menu & categories (no auth needed)
		public.GET("/categories", handlers.ListCategories)
		public.GET("/menu", handlers.ListMenuItems)
		public.GET("/menu/:id", handlers.GetMenuItem)

		// Offers & page content
		public.GET("/offers/active", handlers.ListActiveOffers)
		public.GET("/content", handlers.GetContent)

		// Contact form
		public.POST("/contact", handlers.SubmitContactMessage)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api")
	admin.Use(middleware.AuthRequired())
	{
		// Category management
		admin.GET("/categories/all", handlers.ListAllCategories)
		admin.GET("/categories/:id", handlers.GetCategory)
		admin.POST("/categories", handlers.CreateCategory)
		admin.PUT("/categories/:id", handlers.UpdateCategory)
		admin.DELETE("/categories/:id", handlers.DeleteCategory)

		// Menu management
		admin.POST("/menu", handlers.CreateMenuItem)
		admin.PUT("/menu/:id", handlers.UpdateMenuItem)
		admin.DELETE("/menu/:id", handlers.DeleteMenuItem)

		// Offer management
		admin.GET("/offers", handlers.ListAllOffers)
		admin.POST("/offers", handlers.CreateOffer)
		admin.PUT("/offers/:id", handlers.UpdateOffer)
		admin.PUT("/offers/:id/toggle", handlers.ToggleOffer)
		admin.DELETE("/offers/:id", handlers.DeleteOffer)

		// Page content
		admin.PUT("/content", handlers.UpdateContent)

		// Contact inbox
		admin.GET("/contact", handlers.ListContactMessages)
		admin.PUT("/contact/:id/read", handlers.MarkMessageRead)
	}

	// Uploaded images are served back from a public static path
	r.Static("/uploads", config.UploadDir)
}
