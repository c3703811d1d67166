package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ai-act-tracker/internal/certification"
	"ai-act-tracker/internal/database"
	"ai-act-tracker/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// riskLevelFor derives a level from a likelihood x impact product on a
// 5x5 matrix.
func riskLevelFor(likelihood, impact int) certification.RiskLevel {
	switch score := likelihood * impact; {
	case score >= 15:
		return certification.RiskCritical
	case score >= 10:
		return certification.RiskHigh
	case score >= 5:
		return certification.RiskMedium
	default:
		return certification.RiskLow
	}
}

type riskRequest struct {
	Title                  string                          `json:"title"`
	Description            string                          `json:"description"`
	Category               string                          `json:"category"`
	Likelihood             int                             `json:"likelihood"`
	Impact                 int                             `json:"impact"`
	RiskLevel              certification.RiskLevel         `json:"riskLevel"`
	TreatmentDecision      certification.TreatmentDecision `json:"treatmentDecision"`
	TreatmentJustification string                          `json:"treatmentJustification"`
}

func (r riskRequest) validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title is required")
	}
	if r.Likelihood < 1 || r.Likelihood > 5 || r.Impact < 1 || r.Impact > 5 {
		return errors.New("likelihood and impact must be between 1 and 5")
	}
	if r.RiskLevel != "" && !r.RiskLevel.Valid() {
		return errors.New("invalid risk level")
	}
	if !r.TreatmentDecision.Valid() {
		return errors.New("invalid treatment decision")
	}
	return nil
}

// CreateRisk adds a risk to the system's register, creating the register
// on first use.
func CreateRisk(c *gin.Context) {
	sys, ok := loadOwnedSystem(c)
	if !ok {
		return
	}

	var body riskRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := body.validate(); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	level := body.RiskLevel
	if level == "" {
		level = riskLevelFor(body.Likelihood, body.Impact)
	}

	risk := models.Risk{
		Title:                  strings.TrimSpace(body.Title),
		Description:            body.Description,
		Category:               body.Category,
		Likelihood:             body.Likelihood,
		Impact:                 body.Impact,
		RiskLevel:              level,
		TreatmentDecision:      body.TreatmentDecision,
		TreatmentJustification: body.TreatmentJustification,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		rr := models.RiskRegister{AISystemID: sys.ID}
		if err := tx.Where("ai_system_id = ?", sys.ID).FirstOrCreate(&rr).Error; err != nil {
			return fmt.Errorf("risk register: %w", err)
		}
		risk.RiskRegisterID = rr.ID
		return tx.Create(&risk).Error
	})
	if err != nil {
		respondStoreError(c, err, "failed to save risk")
		return
	}

	audit(c, "risk", risk.ID, "create", fmt.Sprintf("%s risk identified: %s", risk.RiskLevel, risk.Title))
	c.JSON(http.StatusCreated, risk)
}

// loadOwnedRisk loads :risk_id within the register of sys.
func loadOwnedRisk(c *gin.Context, sys models.AISystem) (models.Risk, bool) {
	var risk models.Risk
	riskID, ok := parseID(c, "risk_id")
	if !ok {
		return risk, false
	}
	err := database.DB.
		Joins("JOIN risk_registers ON risk_registers.id = risks.risk_register_id").
		Where("risks.id = ? AND risk_registers.ai_system_id = ?", riskID, sys.ID).
		First(&risk).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, "risk not found")
		return risk, false
	}
	if err != nil {
		respondStoreError(c, err, "failed to load risk")
		return risk, false
	}
	return risk, true
}

type mitigationRequest struct {
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
}

func AddMitigation(c *gin.Context) {
	sys, ok := loadOwnedSystem(c)
	if !ok {
		return
	}
	risk, ok := loadOwnedRisk(c, sys)
	if !ok {
		return
	}

	var body mitigationRequest
	if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Description) == "" {
		respondError(c, http.StatusBadRequest, "description is required")
		return
	}

	action := models.MitigationAction{
		RiskID:      risk.ID,
		Description: strings.TrimSpace(body.Description),
		Status:      certification.MitigationPlanned,
		DueDate:     body.DueDate,
	}
	if err := database.DB.Create(&action).Error; err != nil {
		respondStoreError(c, err, "failed to save mitigation action")
		return
	}

	audit(c, "risk", risk.ID, "mitigation_add", "mitigation planned: "+action.Description)
	c.JSON(http.StatusCreated, action)
}

type mitigationStatusRequest struct {
	Status certification.MitigationStatus `json:"status"`
}

// UpdateMitigationStatus moves an action through its lifecycle and stamps
// CompletedAt when it reaches COMPLETED.
func UpdateMitigationStatus(c *gin.Context) {
	sys, ok := loadOwnedSystem(c)
	if !ok {
		return
	}
	actionID, ok := parseID(c, "action_id")
	if !ok {
		return
	}

	var body mitigationStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil || !body.Status.Valid() {
		respondError(c, http.StatusBadRequest, "invalid mitigation status")
		return
	}

	var action models.MitigationAction
	err := database.DB.
		Joins("JOIN risks ON risks.id = mitigation_actions.risk_id").
		Joins("JOIN risk_registers ON risk_registers.id = risks.risk_register_id").
		Where("mitigation_actions.id = ? AND risk_registers.ai_system_id = ?", actionID, sys.ID).
		First(&action).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, "mitigation action not found")
		return
	}
	if err != nil {
		respondStoreError(c, err, "failed to load mitigation action")
		return
	}

	old := action.Status
	action.Status = body.Status
	if body.Status == certification.MitigationCompleted {
		now := time.Now()
		action.CompletedAt = &now
	} else {
		action.CompletedAt = nil
	}
	if err := database.DB.Save(&action).Error; err != nil {
		respondStoreError(c, err, "failed to update mitigation action")
		return
	}

	audit(c, "mitigation_action", action.ID, "status_change", fmt.Sprintf("%s -> %s", old, action.Status))
	c.JSON(http.StatusOK, action)
}
