package handlers

import (
	"errors"
	"net/http"
	"strings"

	"ai-act-tracker/internal/database"
	"ai-act-tracker/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ListSystems(c *gin.Context) {
	q := database.DB.
		Where("organization_id = ?", identity(c).OrganizationID).
		Order("name asc")

	if cat := c.Query("risk_category"); cat != "" {
		q = q.Where("risk_category = ?", cat)
	}

	var systems []models.AISystem
	if err := q.Find(&systems).Error; err != nil {
		respondStoreError(c, err, "failed to load ai systems")
		return
	}
	c.JSON(http.StatusOK, gin.H{"systems": systems})
}

type systemRequest struct {
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	Purpose      string              `json:"purpose"`
	RiskCategory models.RiskCategory `json:"riskCategory"`
}

func CreateSystem(c *gin.Context) {
	var req systemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if len(req.Name) < 3 {
		respondError(c, http.StatusBadRequest, "name must be at least 3 characters")
		return
	}
	if req.RiskCategory != "" && !req.RiskCategory.Valid() {
		respondError(c, http.StatusBadRequest, "invalid risk category")
		return
	}

	sys := models.AISystem{
		OrganizationID: identity(c).OrganizationID,
		Name:           req.Name,
		Description:    strings.TrimSpace(req.Description),
		Purpose:        strings.TrimSpace(req.Purpose),
		RiskCategory:   req.RiskCategory,
	}
	if err := database.DB.Create(&sys).Error; err != nil {
		respondStoreError(c, err, "failed to save ai system")
		return
	}

	audit(c, "ai_system", sys.ID, "create", "registered AI system: "+sys.Name)
	c.JSON(http.StatusCreated, sys)
}

// ShowSystem returns the system with every section loaded.
func ShowSystem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var sys models.AISystem
	err := database.WithSections(database.DB).
		Where("id = ? AND organization_id = ?", id, identity(c).OrganizationID).
		First(&sys).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, "ai system not found")
		return
	}
	if err != nil {
		respondStoreError(c, err, "failed to load ai system")
		return
	}
	c.JSON(http.StatusOK, sys)
}
