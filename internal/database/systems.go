package database

import (
	"context"
	"errors"
	"fmt"

	"ai-act-tracker/internal/certification"
	"ai-act-tracker/internal/models"

	"gorm.io/gorm"
)

// SystemStore reads AI system snapshots for the readiness evaluation.
type SystemStore struct {
	db *gorm.DB
}

func NewSystemStore(db *gorm.DB) *SystemStore {
	return &SystemStore{db: db}
}

// LoadSystem fetches the system with all sections the evaluation needs. A
// system of another organization is reported as not found.
func (s *SystemStore) LoadSystem(ctx context.Context, orgID, systemID uint) (*certification.System, error) {
	var sys models.AISystem
	err := WithSections(s.db.WithContext(ctx)).
		Where("id = ? AND organization_id = ?", systemID, orgID).
		First(&sys).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, certification.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query ai system: %w", err)
	}
	snap := toSnapshot(sys)
	return &snap, nil
}

// WithSections preloads every section of an AI system.
func WithSections(db *gorm.DB) *gorm.DB {
	return db.
		Preload("GapAssessment.Requirements", byID).
		Preload("RiskRegister.Risks", byID).
		Preload("RiskRegister.Risks.MitigationActions", byID).
		Preload("TechnicalDocumentation").
		Preload("Governance.Roles", byID)
}

// byID keeps preloaded children in insertion order, so category and risk
// lists in the report are stable between evaluations.
func byID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

// toSnapshot copies the loaded rows into the evaluator's value types.
func toSnapshot(sys models.AISystem) certification.System {
	out := certification.System{
		ID:             sys.ID,
		OrganizationID: sys.OrganizationID,
		Name:           sys.Name,
	}

	if ga := sys.GapAssessment; ga != nil {
		snap := &certification.GapAssessment{Requirements: make([]certification.Requirement, 0, len(ga.Requirements))}
		for _, r := range ga.Requirements {
			snap.Requirements = append(snap.Requirements, certification.Requirement{
				Article:  r.Article,
				Title:    r.Title,
				Category: r.Category,
				Status:   r.Status,
			})
		}
		out.GapAssessment = snap
	}

	if rr := sys.RiskRegister; rr != nil {
		snap := &certification.RiskRegister{Risks: make([]certification.Risk, 0, len(rr.Risks))}
		for _, r := range rr.Risks {
			risk := certification.Risk{
				ID:                     r.ID,
				Title:                  r.Title,
				RiskLevel:              r.RiskLevel,
				TreatmentDecision:      r.TreatmentDecision,
				TreatmentJustification: r.TreatmentJustification,
			}
			for _, a := range r.MitigationActions {
				risk.MitigationActions = append(risk.MitigationActions, certification.MitigationAction{Status: a.Status})
			}
			snap.Risks = append(snap.Risks, risk)
		}
		out.RiskRegister = snap
	}

	if doc := sys.TechnicalDocumentation; doc != nil {
		out.TechnicalDocumentation = &certification.TechnicalDocumentation{
			IntendedUse:            doc.IntendedUse,
			ForeseeableMisuse:      doc.ForeseeableMisuse,
			SystemArchitecture:     doc.SystemArchitecture,
			TrainingData:           doc.TrainingData,
			ModelPerformance:       doc.ModelPerformance,
			ValidationTesting:      doc.ValidationTesting,
			HumanOversightDoc:      doc.HumanOversightDoc,
			Cybersecurity:          doc.Cybersecurity,
			CompletenessPercentage: doc.CompletenessPercentage,
		}
	}

	if g := sys.Governance; g != nil {
		snap := &certification.Governance{Roles: make([]certification.Role, 0, len(g.Roles))}
		for _, r := range g.Roles {
			role := certification.Role{RoleType: r.RoleType}
			if r.IsActive != nil {
				active := *r.IsActive
				role.IsActive = &active
			}
			snap.Roles = append(snap.Roles, role)
		}
		out.Governance = snap
	}
	return out
}
