package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"ai-act-tracker/internal/database"
	"ai-act-tracker/internal/middleware"
	"ai-act-tracker/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func respondError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// respondStoreError logs the underlying error and hides it from the client.
func respondStoreError(c *gin.Context, err error, msg string) {
	log.Error().Err(err).Str("path", c.FullPath()).Msg(msg)
	respondError(c, http.StatusInternalServerError, msg)
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

func identity(c *gin.Context) middleware.Identity {
	id, _ := middleware.CurrentIdentity(c)
	return id
}

// loadOwnedSystem loads the :id system of the caller's organization.
func loadOwnedSystem(c *gin.Context) (models.AISystem, bool) {
	var sys models.AISystem
	id, ok := parseID(c, "id")
	if !ok {
		return sys, false
	}
	err := database.DB.
		Where("id = ? AND organization_id = ?", id, identity(c).OrganizationID).
		First(&sys).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, "ai system not found")
		return sys, false
	}
	if err != nil {
		respondStoreError(c, err, "failed to load ai system")
		return sys, false
	}
	return sys, true
}

func audit(c *gin.Context, entity string, entityID uint, action, details string) {
	id := identity(c)
	database.CreateAuditLog(id.OrganizationID, id.UserID, entity, entityID, action, details)
}
