package certification

import (
	"strings"
	"unicode/utf8"
)

type GapAssessmentDetail struct {
	Exists            bool     `json:"exists"`
	Score             float64  `json:"score"`
	ImplementedCount  int      `json:"implementedCount"`
	TotalCount        int      `json:"totalCount"`
	PercentComplete   float64  `json:"percentComplete"`
	MissingCategories []string `json:"missingCategories"`
}

type DocumentationDetail struct {
	Exists          bool     `json:"exists"`
	Completeness    float64  `json:"completeness"`
	MissingSections []string `json:"missingSections"`
}

type RiskManagementDetail struct {
	Exists                   bool         `json:"exists"`
	TotalRisks               int          `json:"totalRisks"`
	HighRisksUnmitigated     int          `json:"highRisksUnmitigated"`
	CriticalRisksUnmitigated int          `json:"criticalRisksUnmitigated"`
	RiskDetails              []RiskDetail `json:"riskDetails"`
}

// RiskDetail describes one HIGH or CRITICAL risk.
type RiskDetail struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Level          RiskLevel `json:"level"`
	Status         string    `json:"status"`
	NeedsAttention bool      `json:"needsAttention"`
}

// Risk detail statuses.
const (
	RiskStatusMitigated       = "Mitigated"
	RiskStatusAccepted        = "Accepted"
	RiskStatusNeedsMitigation = "Needs Mitigation"
)

type GovernanceDetail struct {
	Exists           bool     `json:"exists"`
	RolesCount       int      `json:"rolesCount"`
	MissingRoles     []string `json:"missingRoles"`
	HasRequiredRoles bool     `json:"hasRequiredRoles"`
}

// ValidateGapAssessment reports how much of the applicable requirement set
// is implemented. NOT_APPLICABLE requirements are left out of every count.
func ValidateGapAssessment(ga *GapAssessment) GapAssessmentDetail {
	detail := GapAssessmentDetail{MissingCategories: []string{}}
	if ga == nil {
		return detail
	}
	detail.Exists = true

	type tally struct{ implemented, total int }
	var order []string
	byCategory := make(map[string]*tally)

	for _, req := range ga.Requirements {
		if req.Status == StatusNotApplicable {
			continue
		}
		detail.TotalCount++
		t, ok := byCategory[req.Category]
		if !ok {
			t = &tally{}
			byCategory[req.Category] = t
			order = append(order, req.Category)
		}
		t.total++
		if req.Status == StatusImplemented {
			detail.ImplementedCount++
			t.implemented++
		}
	}

	detail.PercentComplete = percent(detail.ImplementedCount, detail.TotalCount)
	detail.Score = detail.PercentComplete

	for _, category := range order {
		t := byCategory[category]
		if percent(t.implemented, t.total) < MinCategoryCompletion {
			detail.MissingCategories = append(detail.MissingCategories, category)
		}
	}
	return detail
}

// ValidateTechnicalDocumentation lists the sections that are too short to
// count as written. Completeness is taken from the stored percentage.
func ValidateTechnicalDocumentation(doc *TechnicalDocumentation) DocumentationDetail {
	detail := DocumentationDetail{MissingSections: []string{}}
	if doc == nil {
		for _, name := range DocumentationSections {
			detail.MissingSections = append(detail.MissingSections, SectionDisplayName(name))
		}
		return detail
	}
	detail.Exists = true
	detail.Completeness = doc.CompletenessPercentage
	for _, name := range DocumentationSections {
		if !SectionWritten(doc.Section(name)) {
			detail.MissingSections = append(detail.MissingSections, SectionDisplayName(name))
		}
	}
	return detail
}

// SectionWritten reports whether a documentation section is long enough.
func SectionWritten(text string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) >= MinSectionLength
}

// Completeness computes the documentation completeness percentage from the
// section texts, using the same rule as the validator.
func Completeness(doc *TechnicalDocumentation) float64 {
	if doc == nil {
		return 0
	}
	written := 0
	for _, name := range DocumentationSections {
		if SectionWritten(doc.Section(name)) {
			written++
		}
	}
	return percent(written, len(DocumentationSections))
}

// ValidateRiskManagement counts HIGH and CRITICAL risks that are neither
// mitigated nor formally accepted.
func ValidateRiskManagement(rr *RiskRegister) RiskManagementDetail {
	detail := RiskManagementDetail{RiskDetails: []RiskDetail{}}
	if rr == nil {
		return detail
	}
	detail.Exists = true
	detail.TotalRisks = len(rr.Risks)

	for _, risk := range rr.Risks {
		if risk.RiskLevel != RiskHigh && risk.RiskLevel != RiskCritical {
			continue
		}
		accepted := risk.TreatmentDecision == TreatmentAccept &&
			strings.TrimSpace(risk.TreatmentJustification) != ""
		mitigated := hasCompletedAction(risk.MitigationActions)
		needsAttention := !accepted && !mitigated

		if needsAttention {
			if risk.RiskLevel == RiskCritical {
				detail.CriticalRisksUnmitigated++
			} else {
				detail.HighRisksUnmitigated++
			}
		}

		status := RiskStatusNeedsMitigation
		switch {
		case mitigated:
			status = RiskStatusMitigated
		case accepted:
			status = RiskStatusAccepted
		}
		detail.RiskDetails = append(detail.RiskDetails, RiskDetail{
			ID:             risk.ID,
			Title:          risk.Title,
			Level:          risk.RiskLevel,
			Status:         status,
			NeedsAttention: needsAttention,
		})
	}
	return detail
}

func hasCompletedAction(actions []MitigationAction) bool {
	for _, a := range actions {
		if a.Status == MitigationCompleted {
			return true
		}
	}
	return false
}

// ValidateGovernance checks that every required role is held by an active
// assignment.
func ValidateGovernance(g *Governance) GovernanceDetail {
	detail := GovernanceDetail{MissingRoles: []string{}}
	if g == nil {
		for _, rt := range RequiredRoles {
			detail.MissingRoles = append(detail.MissingRoles, RoleDisplayName(rt))
		}
		return detail
	}
	detail.Exists = true

	held := make(map[RoleType]bool)
	for _, role := range g.Roles {
		if !role.Active() {
			continue
		}
		detail.RolesCount++
		held[role.RoleType] = true
	}
	for _, rt := range RequiredRoles {
		if !held[rt] {
			detail.MissingRoles = append(detail.MissingRoles, RoleDisplayName(rt))
		}
	}
	detail.HasRequiredRoles = len(detail.MissingRoles) == 0
	return detail
}

// percent returns part/total*100, or 0 when total is 0.
func percent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
