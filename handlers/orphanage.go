package handlers

import (
	"net/http"
	"os"

	"food-donation-api/config"
	"food-donation-api/middleware"
	"food-donation-api/models"
	"food-donation-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetPendingDonations lists Pending donations addressed to the logged-in
// orphanage's phone number.
func GetPendingDonations(c *gin.Context) {
	phone := middleware.GetPhone(c)

	var donations []models.Donation
	config.DonationsDB.
		Where("status = ? AND orphanage_phone = ?", models.StatusPending, phone).
		Order("created_at desc").
		Find(&donations)

	c.JSON(http.StatusOK, gin.H{"count": len(donations), "donations": donations})
}

// GetPastDonations lists already-decided donations for the logged-in orphanage
func GetPastDonations(c *gin.Context) {
	phone := middleware.GetPhone(c)

	var donations []models.Donation
	config.DonationsDB.
		Where("status IN ? AND orphanage_phone = ?",
			[]models.DonationStatus{models.StatusAccepted, models.StatusRejected}, phone).
		Order("created_at desc").
		Find(&donations)

	c.JSON(http.StatusOK, gin.H{"count": len(donations), "donations": donations})
}

type DecideDonationRequest struct {
	Status models.DonationStatus `json:"status" binding:"required"` // Accepted or Rejected
	Note   string                `json:"note"`
}

// DecideDonation records the orphanage's accept/reject decision. Legal only
// from Pending; a second decision fails rather than silently overwriting.
func DecideDonation(c *gin.Context) {
	phone := middleware.GetPhone(c)
	userID := middleware.GetUserID(c)
	donationID := c.Param("id")

	var donation models.Donation
	if err := config.DonationsDB.First(&donation, donationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
		return
	}
	if donation.OrphanagePhone != phone {
		c.JSON(http.StatusForbidden, gin.H{"error": "This donation is not addressed to you"})
		return
	}

	var req DecideDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := statemachine.CanTransition(donation.Status, req.Status, "orphanage"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    donation.Status,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(donation.Status),
		})
		return
	}

	prevStatus := donation.Status
	config.DonationsDB.Model(&donation).Update("status", req.Status)

	history := models.DonationStatusHistory{
		DonationID: donation.ID,
		FromStatus: prevStatus,
		ToStatus:   req.Status,
		ChangedBy:  userID,
		Note:       req.Note,
	}
	config.DonationsDB.Create(&history)

	c.JSON(http.StatusOK, gin.H{
		"message":         "Donation " + string(req.Status) + " successfully!",
		"donation_id":     donation.ID,
		"previous_status": string(prevStatus),
		"current_status":  string(req.Status),
	})
}

// GetDonationDocument serves the supporting document for a donation addressed
// to the caller. A missing file is reported, never fatal.
func GetDonationDocument(c *gin.Context) {
	phone := middleware.GetPhone(c)
	donationID := c.Param("id")

	var donation models.Donation
	if err := config.DonationsDB.First(&donation, donationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
		return
	}
	if donation.OrphanagePhone != phone {
		c.JSON(http.StatusForbidden, gin.H{"error": "This donation is not addressed to you"})
		return
	}
	if _, err := os.Stat(donation.DocumentPath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document file not found"})
		return
	}
	c.File(donation.DocumentPath)
}
