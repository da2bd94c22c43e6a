package routes

import (
	"food-donation-api/handlers"
	"food-donation-api/middleware"
	"food-donation-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Status lookup by document id (no auth needed)
		public.GET("/donations/status/:documentId", handlers.GetDonationStatus)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
	}

	// ── Hotel routes ───────────────────────────────────────────────
	hotel := r.Group("/api/hotel")
	hotel.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleHotel))
	{
		hotel.POST("/donations", handlers.SubmitDonation)
		hotel.GET("/donations", handlers.GetMyDonations)
	}

	// ── Orphanage routes ───────────────────────────────────────────
	orphanage := r.Group("/api/orphanage")
	orphanage.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleOrphanage))
	{
		orphanage.GET("/donations/pending", handlers.GetPendingDonations)
		orphanage.GET("/donations/past", handlers.GetPastDonations)
		orphanage.PUT("/donations/:id/decision", handlers.DecideDonation)
		orphanage.GET("/donations/:id/document", handlers.GetDonationDocument)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/users", handlers.AdminGetAllUsers)
		admin.PUT("/users/:id", handlers.AdminUpdateUser)
		admin.DELETE("/users/:id", handlers.AdminDeleteUser)

		admin.GET("/donations", handlers.AdminGetAllDonations)
		admin.GET("/donations/:id", handlers.AdminGetDonation)
		admin.DELETE("/donations/:id", handlers.AdminDeleteDonation)
		admin.PUT("/donations/:id/status", handlers.AdminForceDonationStatus)
	}
}
