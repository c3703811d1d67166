package handlers

import (
	"net/http"

	"ai-act-tracker/internal/database"
	"ai-act-tracker/internal/models"

	"github.com/gin-gonic/gin"
)

// ListAuditLogs returns the latest 200 entries of the caller's organization.
func ListAuditLogs(c *gin.Context) {
	var logs []models.AuditLog
	if err := database.DB.
		Preload("User").
		Where("organization_id = ?", identity(c).OrganizationID).
		Order("created_at desc").
		Limit(200).
		Find(&logs).Error; err != nil {
		respondStoreError(c, err, "failed to load audit log")
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
