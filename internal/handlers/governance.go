package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"ai-act-tracker/internal/certification"
	"ai-act-tracker/internal/database"
	"ai-act-tracker/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type roleRequest struct {
	RoleType   certification.RoleType `json:"roleType"`
	PersonName string                 `json:"personName"`
	Email      string                 `json:"email"`
}

// AddRole assigns a governance role, creating the governance structure on
// first use.
func AddRole(c *gin.Context) {
	sys, ok := loadOwnedSystem(c)
	if !ok {
		return
	}

	var body roleRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if !body.RoleType.Valid() {
		respondError(c, http.StatusBadRequest, "invalid role type")
		return
	}
	if strings.TrimSpace(body.PersonName) == "" {
		respondError(c, http.StatusBadRequest, "person name is required")
		return
	}

	active := true
	role := models.GovernanceRole{
		RoleType:   body.RoleType,
		PersonName: strings.TrimSpace(body.PersonName),
		Email:      strings.TrimSpace(body.Email),
		IsActive:   &active,
	}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		gs := models.GovernanceStructure{AISystemID: sys.ID}
		if err := tx.Where("ai_system_id = ?", sys.ID).FirstOrCreate(&gs).Error; err != nil {
			return fmt.Errorf("governance structure: %w", err)
		}
		role.GovernanceStructureID = gs.ID
		return tx.Create(&role).Error
	})
	if err != nil {
		respondStoreError(c, err, "failed to save governance role")
		return
	}

	audit(c, "governance_role", role.ID, "assign",
		fmt.Sprintf("%s assigned to %s", certification.RoleDisplayName(role.RoleType), role.PersonName))
	c.JSON(http.StatusCreated, role)
}

// DeactivateRole keeps the assignment for history but stops it counting
// toward the required roles.
func DeactivateRole(c *gin.Context) {
	sys, ok := loadOwnedSystem(c)
	if !ok {
		return
	}
	roleID, ok := parseID(c, "role_id")
	if !ok {
		return
	}

	var role models.GovernanceRole
	err := database.DB.
		Joins("JOIN governance_structures ON governance_structures.id = governance_roles.governance_structure_id").
		Where("governance_roles.id = ? AND governance_structures.ai_system_id = ?", roleID, sys.ID).
		First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, "governance role not found")
		return
	}
	if err != nil {
		respondStoreError(c, err, "failed to load governance role")
		return
	}

	inactive := false
	role.IsActive = &inactive
	if err := database.DB.Save(&role).Error; err != nil {
		respondStoreError(c, err, "failed to update governance role")
		return
	}

	audit(c, "governance_role", role.ID, "deactivate",
		fmt.Sprintf("%s %s deactivated", certification.RoleDisplayName(role.RoleType), role.PersonName))
	c.JSON(http.StatusOK, role)
}
