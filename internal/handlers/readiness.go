package handlers

import (
	"context"
	"errors"
	"net/http"

	"ai-act-tracker/internal/certification"

	"github.com/gin-gonic/gin"
)

// ReadinessEvaluator is satisfied by *certification.Service.
type ReadinessEvaluator interface {
	Readiness(ctx context.Context, orgID, systemID uint) (certification.Report, error)
}

type ReadinessHandler struct {
	evaluator ReadinessEvaluator
}

func NewReadinessHandler(e ReadinessEvaluator) *ReadinessHandler {
	return &ReadinessHandler{evaluator: e}
}

// Show returns the certification readiness report of the :id system.
func (h *ReadinessHandler) Show(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	report, err := h.evaluator.Readiness(c.Request.Context(), identity(c).OrganizationID, id)
	if errors.Is(err, certification.ErrNotFound) {
		respondError(c, http.StatusNotFound, "ai system not found")
		return
	}
	if err != nil {
		respondStoreError(c, err, "failed to evaluate readiness")
		return
	}
	c.JSON(http.StatusOK, report)
}
