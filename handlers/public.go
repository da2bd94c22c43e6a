package handlers

import (
	"net/http"

	"food-donation-api/config"
	"food-donation-api/models"

	"github.com/gin-gonic/gin"
)

// GetDonationStatus returns the current status for a document id. No login
// required: the document id is the external reference handed out at
// submission time.
func GetDonationStatus(c *gin.Context) {
	documentID := c.Param("documentId")

	var donation models.Donation
	if err := config.DonationsDB.
		Where("document_id = ?", documentID).
		First(&donation).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No record found for the given Document ID"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"document_id": donation.DocumentID,
		"status":      donation.Status,
	})
}

// GetStateMachineInfo returns the full state machine for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	info := []gin.H{
		{"from": "Pending", "to": "Accepted", "actor": "orphanage or admin"},
		{"from": "Pending", "to": "Rejected", "actor": "orphanage or admin"},
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []string{"Accepted", "Rejected"},
		"description":     "Food Donation Lifecycle State Machine",
	})
}
