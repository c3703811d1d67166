package certification

import (
	"fmt"
	"math"
	"strings"
)

// Details holds the output of the four section validators.
type Details struct {
	GapAssessment          GapAssessmentDetail  `json:"gapAssessment"`
	TechnicalDocumentation DocumentationDetail  `json:"technicalDocumentation"`
	RiskManagement         RiskManagementDetail `json:"riskManagement"`
	Governance             GovernanceDetail     `json:"governance"`
}

// Report is the certification readiness of one AI system. Score and Ready
// are computed independently: a high score does not imply readiness.
type Report struct {
	SystemID     uint     `json:"systemId"`
	Ready        bool     `json:"ready"`
	Score        int      `json:"score"`
	Summary      string   `json:"summary"`
	MissingItems []string `json:"missingItems"`
	Warnings     []string `json:"warnings"`
	Details      Details  `json:"details"`
}

// Evaluate runs every validator over the snapshot and builds the report.
// It is a pure function of its input.
func Evaluate(sys System) Report {
	details := Details{
		GapAssessment:          ValidateGapAssessment(sys.GapAssessment),
		TechnicalDocumentation: ValidateTechnicalDocumentation(sys.TechnicalDocumentation),
		RiskManagement:         ValidateRiskManagement(sys.RiskRegister),
		Governance:             ValidateGovernance(sys.Governance),
	}

	missing, warnings := narrate(details)
	score := int(math.Round(Score(details)))
	ready := isReady(details)

	return Report{
		SystemID:     sys.ID,
		Ready:        ready,
		Score:        score,
		Summary:      Summary(score, ready),
		MissingItems: missing,
		Warnings:     warnings,
		Details:      details,
	}
}

// Score combines the section results into the weighted 0-100 readiness
// score. The result is not rounded.
func Score(d Details) float64 {
	var gap, docs, gov float64
	if d.GapAssessment.Exists {
		gap = d.GapAssessment.PercentComplete
	}
	if d.TechnicalDocumentation.Exists {
		docs = d.TechnicalDocumentation.Completeness
	}

	// No register, or an empty one, scores the risk section at 100. A system
	// with no sections at all therefore scores 20, not 0.
	risks := 100.0
	if rm := d.RiskManagement; rm.Exists && rm.TotalRisks > 0 {
		open := rm.HighRisksUnmitigated + rm.CriticalRisksUnmitigated
		risks = math.Max(0, 100-percent(open, rm.TotalRisks))
	}

	if d.Governance.Exists {
		gov = math.Min(100, percent(d.Governance.RolesCount, ExpectedRoleCount))
	}

	return gap*GapAssessmentWeight +
		docs*TechnicalDocumentationWeight +
		risks*RiskManagementWeight +
		gov*GovernanceWeight
}

func isReady(d Details) bool {
	return d.GapAssessment.PercentComplete >= MinGapCompletion &&
		d.TechnicalDocumentation.Completeness >= FullDocumentation &&
		d.RiskManagement.HighRisksUnmitigated == 0 &&
		d.RiskManagement.CriticalRisksUnmitigated == 0 &&
		d.Governance.HasRequiredRoles
}

// narrate produces the blocking items and the warnings, in gap,
// documentation, risk, governance order.
func narrate(d Details) (missing, warnings []string) {
	missing, warnings = []string{}, []string{}

	gap := d.GapAssessment
	switch {
	case !gap.Exists:
		missing = append(missing, "Gap assessment not started")
	case gap.PercentComplete < MinGapCompletion:
		missing = append(missing, fmt.Sprintf(
			"Gap assessment is %.1f%% complete (%.0f%% required): implement %d more requirements",
			gap.PercentComplete, MinGapCompletion, requirementsToTarget(gap.TotalCount, gap.PercentComplete)))
	}
	if gap.Exists && len(gap.MissingCategories) > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"Categories below %.0f%% implementation: %s",
			MinCategoryCompletion, strings.Join(gap.MissingCategories, ", ")))
	}

	docs := d.TechnicalDocumentation
	switch {
	case !docs.Exists:
		missing = append(missing, "Technical documentation not created")
	case docs.Completeness < FullDocumentation:
		msg := fmt.Sprintf("Technical documentation is %.0f%% complete", docs.Completeness)
		if len(docs.MissingSections) > 0 {
			msg += ": missing " + strings.Join(docs.MissingSections, ", ")
		}
		missing = append(missing, msg)
	}

	rm := d.RiskManagement
	switch {
	case !rm.Exists:
		warnings = append(warnings, "No risk register found: risk management assessment recommended")
	case rm.CriticalRisksUnmitigated > 0:
		missing = append(missing, fmt.Sprintf(
			"%d critical risk(s) need mitigation or formal acceptance: %s",
			rm.CriticalRisksUnmitigated, strings.Join(attentionTitles(rm, RiskCritical), ", ")))
	case rm.HighRisksUnmitigated > 0:
		// TODO: report HIGH risks alongside CRITICAL ones once the report
		// consumers can show both tiers.
		missing = append(missing, fmt.Sprintf(
			"%d high risk(s) need mitigation or formal acceptance: %s",
			rm.HighRisksUnmitigated, strings.Join(attentionTitles(rm, RiskHigh), ", ")))
	}

	gov := d.Governance
	switch {
	case !gov.Exists:
		missing = append(missing, "Governance structure not established")
	case !gov.HasRequiredRoles:
		missing = append(missing, "Missing required governance roles: "+strings.Join(gov.MissingRoles, ", "))
	}
	return missing, warnings
}

func attentionTitles(rm RiskManagementDetail, level RiskLevel) []string {
	var titles []string
	for _, rd := range rm.RiskDetails {
		if rd.Level == level && rd.NeedsAttention {
			titles = append(titles, rd.Title)
		}
	}
	return titles
}

// requirementsToTarget is the number of further requirements to implement to
// reach the gap completion threshold: ceil(total * (0.95 - percent/100)).
// The product is rounded to 1e-9 first so float noise does not add one.
func requirementsToTarget(total int, pct float64) int {
	n := float64(total) * (MinGapCompletion/100 - pct/100)
	n = math.Round(n*1e9) / 1e9
	if n <= 0 {
		return 0
	}
	return int(math.Ceil(n))
}

// Summary maps a score to a readiness sentence.
func Summary(score int, ready bool) string {
	switch {
	case ready:
		return fmt.Sprintf("System is ready for certification (score %d%%)", score)
	case score >= almostReadyScore:
		return fmt.Sprintf("Almost Ready (score %d%%)", score)
	case score >= inProgressScore:
		return fmt.Sprintf("In Progress (score %d%%)", score)
	case score >= partiallyCompleteScore:
		return fmt.Sprintf("Partially Complete (score %d%%)", score)
	default:
		return fmt.Sprintf("Getting Started (score %d%%)", score)
	}
}
