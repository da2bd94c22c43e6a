package handlers

import (
	"errors"
	"net/http"

	"food-donation-api/config"
	"food-donation-api/matching"
	"food-donation-api/middleware"
	"food-donation-api/models"
	"food-donation-api/notify"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SubmitDonationRequest struct {
	FoodName       string `json:"food_name" binding:"required"`
	Quantity       string `json:"quantity" binding:"required"`
	DocumentPath   string `json:"document_path" binding:"required"`
	DocumentID     string `json:"document_id" binding:"required"`
	OrphanagePhone string `json:"orphanage_phone" binding:"required"`
	HotelAddress   string `json:"hotel_address" binding:"required"`
	DonationDate   string `json:"donation_date" binding:"required"` // YYYY-MM-DD
}

// SubmitDonation creates a new donation (hotel only). Validation order: all
// fields present, recipient resolves to an Orphanage account, document id
// unique at insert.
func SubmitDonation(c *gin.Context) {
	hotelID := middleware.GetUserID(c)

	var req SubmitDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orphanage, err := matching.ResolveRecipient(config.UsersDB, req.OrphanagePhone)
	if err != nil {
		if errors.Is(err, matching.ErrNoRecipient) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No orphanage found with that phone number"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up recipient"})
		return
	}

	donation := models.Donation{
		FoodName:       req.FoodName,
		Quantity:       req.Quantity,
		DocumentPath:   req.DocumentPath,
		DocumentID:     req.DocumentID,
		OrphanageID:    orphanage.ID,
		OrphanagePhone: req.OrphanagePhone,
		HotelID:        hotelID,
		HotelAddress:   req.HotelAddress,
		DonationDate:   req.DonationDate,
		Status:         models.StatusPending,
	}

	// The unique index on document_id makes concurrent submissions with the
	// same id resolve to exactly one winner.
	if err := config.DonationsDB.Create(&donation).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Document ID already exists. Use a unique one."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit donation"})
		return
	}

	history := models.DonationStatusHistory{
		DonationID: donation.ID,
		ToStatus:   models.StatusPending,
		ChangedBy:  hotelID,
		Note:       "Donation submitted by hotel",
	}
	config.DonationsDB.Create(&history)

	recipientName := orphanage.OrganizationName
	if recipientName == "" {
		recipientName = orphanage.Name
	}
	notify.SendAsync(orphanage.Phone,
		"New food donation pending: "+donation.FoodName+" ("+donation.Quantity+"), document "+donation.DocumentID)

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Donation submitted to " + recipientName + " successfully!",
		"donation":  donation,
		"recipient": recipientName,
	})
}

// GetMyDonations returns all donations submitted by the logged-in hotel
func GetMyDonations(c *gin.Context) {
	hotelID := middleware.GetUserID(c)

	var donations []models.Donation
	query := config.DonationsDB.Where("hotel_id = ?", hotelID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("created_at desc").Find(&donations)

	c.JSON(http.StatusOK, gin.H{"count": len(donations), "donations": donations})
}
