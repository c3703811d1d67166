package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"ai-act-tracker/internal/certification"
	"ai-act-tracker/internal/database"
	"ai-act-tracker/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// documentationRequest uses pointers so omitted sections keep their text.
type documentationRequest struct {
	IntendedUse        *string `json:"intendedUse"`
	ForeseeableMisuse  *string `json:"foreseeableMisuse"`
	SystemArchitecture *string `json:"systemArchitecture"`
	TrainingData       *string `json:"trainingData"`
	ModelPerformance   *string `json:"modelPerformance"`
	ValidationTesting  *string `json:"validationTesting"`
	HumanOversightDoc  *string `json:"humanOversightDoc"`
	Cybersecurity      *string `json:"cybersecurity"`
}

func (r documentationRequest) apply(doc *models.TechnicalDocumentation) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&doc.IntendedUse, r.IntendedUse)
	set(&doc.ForeseeableMisuse, r.ForeseeableMisuse)
	set(&doc.SystemArchitecture, r.SystemArchitecture)
	set(&doc.TrainingData, r.TrainingData)
	set(&doc.ModelPerformance, r.ModelPerformance)
	set(&doc.ValidationTesting, r.ValidationTesting)
	set(&doc.HumanOversightDoc, r.HumanOversightDoc)
	set(&doc.Cybersecurity, r.Cybersecurity)
}

// documentationCompleteness applies the evaluator's section rule to the
// stored sections.
func documentationCompleteness(doc models.TechnicalDocumentation) float64 {
	return certification.Completeness(&certification.TechnicalDocumentation{
		IntendedUse:        doc.IntendedUse,
		ForeseeableMisuse:  doc.ForeseeableMisuse,
		SystemArchitecture: doc.SystemArchitecture,
		TrainingData:       doc.TrainingData,
		ModelPerformance:   doc.ModelPerformance,
		ValidationTesting:  doc.ValidationTesting,
		HumanOversightDoc:  doc.HumanOversightDoc,
		Cybersecurity:      doc.Cybersecurity,
	})
}

// SaveDocumentation creates or updates the technical documentation and
// recomputes its completeness.
func SaveDocumentation(c *gin.Context) {
	sys, ok := loadOwnedSystem(c)
	if !ok {
		return
	}

	var body documentationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	var doc models.TechnicalDocumentation
	err := database.DB.Where("ai_system_id = ?", sys.ID).First(&doc).Error
	created := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !created {
		respondStoreError(c, err, "failed to load technical documentation")
		return
	}
	if created {
		doc = models.TechnicalDocumentation{AISystemID: sys.ID}
	}

	body.apply(&doc)
	doc.CompletenessPercentage = documentationCompleteness(doc)

	if err := database.DB.Save(&doc).Error; err != nil {
		respondStoreError(c, err, "failed to save technical documentation")
		return
	}

	action := "documentation_update"
	status := http.StatusOK
	if created {
		action = "documentation_create"
		status = http.StatusCreated
	}
	audit(c, "ai_system", sys.ID, action, fmt.Sprintf("documentation %.0f%% complete", doc.CompletenessPercentage))
	c.JSON(status, doc)
}
