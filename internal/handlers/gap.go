package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"ai-act-tracker/internal/catalog"
	"ai-act-tracker/internal/certification"
	"ai-act-tracker/internal/database"
	"ai-act-tracker/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateGapAssessment starts the gap assessment of a system with every
// catalog requirement in NOT_STARTED state.
func CreateGapAssessment(c *gin.Context) {
	sys, ok := loadOwnedSystem(c)
	if !ok {
		return
	}

	var count int64
	database.DB.Model(&models.GapAssessment{}).Where("ai_system_id = ?", sys.ID).Count(&count)
	if count > 0 {
		respondError(c, http.StatusConflict, "gap assessment already exists")
		return
	}

	entries, err := catalog.Load()
	if err != nil {
		respondStoreError(c, err, "failed to load requirement catalog")
		return
	}

	ga := models.GapAssessment{AISystemID: sys.ID}
	for _, e := range entries {
		ga.Requirements = append(ga.Requirements, models.Requirement{
			Article:  e.Article,
			Title:    e.Title,
			Category: e.Category,
			Status:   certification.StatusNotStarted,
		})
	}
	if err := database.DB.Create(&ga).Error; err != nil {
		respondStoreError(c, err, "failed to save gap assessment")
		return
	}

	audit(c, "ai_system", sys.ID, "gap_assessment_create",
		fmt.Sprintf("gap assessment started with %d requirements", len(ga.Requirements)))
	c.JSON(http.StatusCreated, ga)
}

type requirementStatusRequest struct {
	Status certification.RequirementStatus `json:"status"`
	Notes  *string                         `json:"notes"`
}

func UpdateRequirementStatus(c *gin.Context) {
	sys, ok := loadOwnedSystem(c)
	if !ok {
		return
	}
	reqID, ok := parseID(c, "req_id")
	if !ok {
		return
	}

	var body requirementStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if !body.Status.Valid() {
		respondError(c, http.StatusBadRequest, "invalid requirement status")
		return
	}

	var req models.Requirement
	err := database.DB.
		Joins("JOIN gap_assessments ON gap_assessments.id = requirements.gap_assessment_id").
		Where("requirements.id = ? AND gap_assessments.ai_system_id = ?", reqID, sys.ID).
		First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, "requirement not found")
		return
	}
	if err != nil {
		respondStoreError(c, err, "failed to load requirement")
		return
	}

	old := req.Status
	req.Status = body.Status
	if body.Notes != nil {
		req.Notes = *body.Notes
	}
	if err := database.DB.Save(&req).Error; err != nil {
		respondStoreError(c, err, "failed to update requirement")
		return
	}

	audit(c, "requirement", req.ID, "status_change",
		fmt.Sprintf("%s %s: %s -> %s", req.Article, req.Title, old, req.Status))
	c.JSON(http.StatusOK, req)
}
