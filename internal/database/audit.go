package database

import (
	"ai-act-tracker/internal/models"

	"github.com/rs/zerolog/log"
)

// CreateAuditLog records a change. Failures are logged, never returned.
func CreateAuditLog(orgID, userID uint, entity string, entityID uint, action, details string) {
	if DB == nil {
		return
	}
	record := models.AuditLog{
		OrganizationID: orgID,
		UserID:         userID,
		Entity:         entity,
		EntityID:       entityID,
		Action:         action,
		Details:        details,
	}
	if err := DB.Create(&record).Error; err != nil {
		log.Error().Err(err).Str("entity", entity).Uint("entity_id", entityID).Msg("failed to write audit log")
	}
}
