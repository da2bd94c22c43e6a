package handlers

import (
	"net/http"

	"food-donation-api/config"
	"food-donation-api/middleware"
	"food-donation-api/models"

	"github.com/gin-gonic/gin"
)

// AdminGetAllUsers lists or searches registered accounts — admin only.
// The keyword is matched case-insensitively against every visible field;
// empty keyword returns all.
func AdminGetAllUsers(c *gin.Context) {
	var users []models.User
	query := config.UsersDB
	if keyword := c.Query("search"); keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where(
			"name LIKE ? OR email LIKE ? OR phone LIKE ? OR role LIKE ? OR address LIKE ? OR organization_name LIKE ?",
			like, like, like, like, like, like)
	}
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	query.Find(&users)
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

type AdminUpdateUserRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	OrganizationName string `json:"organization_name"`
}

// AdminUpdateUser edits an account's contact details — admin only
func AdminUpdateUser(c *gin.Context) {
	var user models.User
	if err := config.UsersDB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var req AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if req.OrganizationName != "" {
		updates["organization_name"] = req.OrganizationName
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	if err := config.UsersDB.Model(&user).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully", "user": user})
}

// AdminDeleteUser removes an account — admin only
func AdminDeleteUser(c *gin.Context) {
	result := config.UsersDB.Delete(&models.User{}, c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// AdminGetAllDonations lists or searches donation records — admin only.
// Includes a per-status summary for the dashboard.
func AdminGetAllDonations(c *gin.Context) {
	var donations []models.Donation
	query := config.DonationsDB
	if keyword := c.Query("search"); keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where(
			"food_name LIKE ? OR quantity LIKE ? OR document_id LIKE ? OR orphanage_phone LIKE ? OR hotel_address LIKE ? OR status LIKE ?",
			like, like, like, like, like, like)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("created_at desc").Find(&donations)

	summary := map[string]int{}
	for _, d := range donations {
		summary[string(d.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"donation_summary": summary,
		"count":            len(donations),
		"donations":        donations,
	})
}

// AdminGetDonation returns one donation with its full status history
func AdminGetDonation(c *gin.Context) {
	var donation models.Donation
	if err := config.DonationsDB.Preload("StatusHistory").
		First(&donation, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"donation": donation})
}

// AdminDeleteDonation removes a donation record at any state — admin only
func AdminDeleteDonation(c *gin.Context) {
	result := config.DonationsDB.Delete(&models.Donation{}, c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete donation"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Donation deleted successfully"})
}

// AdminForceDonationStatus lets admin override any donation state (emergency
// use, e.g. correcting a wrong decision). The override is history-logged.
func AdminForceDonationStatus(c *gin.Context) {
	adminID := middleware.GetUserID(c)

	var req struct {
		Status models.DonationStatus `json:"status" binding:"required"`
		Reason string                `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var donation models.Donation
	if err := config.DonationsDB.First(&donation, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
		return
	}

	prevStatus := donation.Status
	config.DonationsDB.Model(&donation).Update("status", req.Status)

	history := models.DonationStatusHistory{
		DonationID: donation.ID,
		FromStatus: prevStatus,
		ToStatus:   req.Status,
		ChangedBy:  adminID,
		Note:       "[ADMIN OVERRIDE] " + req.Reason,
	}
	config.DonationsDB.Create(&history)

	c.JSON(http.StatusOK, gin.H{
		"message":         "Donation status force-updated by admin",
		"donation_id":     donation.ID,
		"previous_status": prevStatus,
		"new_status":      req.Status,
	})
}
