package certification

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readySystem() System {
	return System{
		ID:                     42,
		Name:                   "CV screening assistant",
		GapAssessment:          &GapAssessment{Requirements: reqs("Risk Management", 10, 10)},
		TechnicalDocumentation: fullDocs(),
		RiskRegister:           &RiskRegister{Risks: []Risk{{Title: "Latency", RiskLevel: RiskLow}}},
		Governance: &Governance{Roles: []Role{
			{RoleType: RoleSystemOwner},
			{RoleType: RoleRiskOwner},
			{RoleType: RoleComplianceOfficer},
		}},
	}
}

func TestPolicyConstants(t *testing.T) {
	assert.Equal(t, 0.40, GapAssessmentWeight)
	assert.Equal(t, 0.30, TechnicalDocumentationWeight)
	assert.Equal(t, 0.20, RiskManagementWeight)
	assert.Equal(t, 0.10, GovernanceWeight)
	assert.InDelta(t, 1.0, GapAssessmentWeight+TechnicalDocumentationWeight+RiskManagementWeight+GovernanceWeight, 1e-12)

	assert.Equal(t, 95.0, MinGapCompletion)
	assert.Equal(t, 100.0, FullDocumentation)
	assert.Equal(t, 80.0, MinCategoryCompletion)
	assert.Equal(t, 50, MinSectionLength)
	assert.Equal(t, 3, ExpectedRoleCount)
	assert.Equal(t, []RoleType{RoleSystemOwner, RoleRiskOwner, RoleComplianceOfficer}, RequiredRoles)
	assert.Len(t, DocumentationSections, 8)
}

func TestEvaluate_NothingStarted(t *testing.T) {
	r := Evaluate(System{ID: 7})

	assert.False(t, r.Ready)
	// An absent risk register keeps full marks for the risk section, so the
	// score is the risk weight alone.
	assert.Equal(t, 20, r.Score)
	assert.Equal(t, []string{
		"Gap assessment not started",
		"Technical documentation not created",
		"Governance structure not established",
	}, r.MissingItems)
	assert.Equal(t, []string{"No risk register found: risk management assessment recommended"}, r.Warnings)
	assert.Equal(t, []string{"System Owner", "Risk Owner", "Compliance Officer"}, r.Details.Governance.MissingRoles)
	assert.Equal(t, "Getting Started (score 20%)", r.Summary)
}

func TestEvaluate_AllComplete(t *testing.T) {
	r := Evaluate(readySystem())

	assert.True(t, r.Ready)
	assert.Equal(t, 100, r.Score)
	assert.Empty(t, r.MissingItems)
	assert.Empty(t, r.Warnings)
	assert.Equal(t, uint(42), r.SystemID)
	assert.Equal(t, "System is ready for certification (score 100%)", r.Summary)
}

func TestEvaluate_AcceptedCriticalRiskDoesNotBlock(t *testing.T) {
	sys := readySystem()
	sys.RiskRegister = &RiskRegister{Risks: []Risk{{
		Title:                  "Re-identification",
		RiskLevel:              RiskCritical,
		TreatmentDecision:      TreatmentAccept,
		TreatmentJustification: "Data is aggregated above k=50",
	}}}

	r := Evaluate(sys)
	assert.Equal(t, 0, r.Details.RiskManagement.CriticalRisksUnmitigated)
	assert.True(t, r.Ready)
	assert.Equal(t, 100, r.Score)
}

func TestRequirementsToTarget(t *testing.T) {
	tests := []struct {
		total int
		pct   float64
		want  int
	}{
		{200, 94.9, 1},
		{200, 94.5, 1},
		{200, 90, 10},
		{10, 0, 10},
		{10, 50, 5},
		{3, 66.66666666666667, 1},
		{100, 95, 0},
		{100, 99, 0},
		{0, 0, 0},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d@%.2f", tc.total, tc.pct), func(t *testing.T) {
			assert.Equal(t, tc.want, requirementsToTarget(tc.total, tc.pct))
		})
	}
}

func TestEvaluate_GapShortfallMessage(t *testing.T) {
	sys := readySystem()
	sys.GapAssessment = &GapAssessment{Requirements: reqs("Accuracy", 189, 200)}

	r := Evaluate(sys)
	require.False(t, r.Ready)
	require.Len(t, r.MissingItems, 1)
	assert.Equal(t, "Gap assessment is 94.5% complete (95% required): implement 1 more requirements", r.MissingItems[0])
	// 94.5% in a single category is above the category threshold.
	assert.Empty(t, r.Warnings)
	assert.Equal(t, "Almost Ready (score 98%)", r.Summary)
}

func TestEvaluate_CategoryWarning(t *testing.T) {
	sys := readySystem()
	var all []Requirement
	all = append(all, reqs("Transparency", 95, 95)...)
	all = append(all, reqs("Record Keeping", 3, 5)...)
	sys.GapAssessment = &GapAssessment{Requirements: all}

	r := Evaluate(sys)
	assert.InDelta(t, 98.0, r.Details.GapAssessment.PercentComplete, 1e-9)
	assert.Empty(t, r.MissingItems)
	assert.True(t, r.Ready)
	assert.Equal(t, []string{"Categories below 80% implementation: Record Keeping"}, r.Warnings)
}

func TestEvaluate_DocumentationMessage(t *testing.T) {
	sys := readySystem()
	sys.TechnicalDocumentation.TrainingData = ""
	sys.TechnicalDocumentation.Cybersecurity = "TBD"
	sys.TechnicalDocumentation.CompletenessPercentage = 75

	r := Evaluate(sys)
	assert.False(t, r.Ready)
	assert.Equal(t, []string{"Technical documentation is 75% complete: missing Training Data, Cybersecurity"}, r.MissingItems)
}

func TestEvaluate_CriticalTakesPrecedence(t *testing.T) {
	sys := readySystem()
	sys.RiskRegister = &RiskRegister{Risks: []Risk{
		{Title: "Bias", RiskLevel: RiskCritical},
		{Title: "Drift", RiskLevel: RiskHigh},
		{Title: "Opacity", RiskLevel: RiskHigh},
		{Title: "Leakage", RiskLevel: RiskCritical,
			MitigationActions: []MitigationAction{{Status: MitigationCompleted}}},
	}}

	r := Evaluate(sys)
	assert.Equal(t, []string{"1 critical risk(s) need mitigation or formal acceptance: Bias"}, r.MissingItems)
	for _, item := range r.MissingItems {
		assert.NotContains(t, item, "high risk")
	}

	sys.RiskRegister.Risks[0].MitigationActions = []MitigationAction{{Status: MitigationCompleted}}
	r = Evaluate(sys)
	assert.Equal(t, []string{"2 high risk(s) need mitigation or formal acceptance: Drift, Opacity"}, r.MissingItems)
}

func TestEvaluate_GovernanceMessage(t *testing.T) {
	sys := readySystem()
	sys.Governance.Roles[1].IsActive = boolPtr(false)

	r := Evaluate(sys)
	assert.Equal(t, []string{"Missing required governance roles: Risk Owner"}, r.MissingItems)
	assert.False(t, r.Ready)
}

func TestScore_Weighted(t *testing.T) {
	sys := System{
		GapAssessment: &GapAssessment{Requirements: reqs("c", 5, 10)},
		TechnicalDocumentation: &TechnicalDocumentation{
			CompletenessPercentage: 75,
		},
		RiskRegister: &RiskRegister{Risks: []Risk{
			{Title: "a", RiskLevel: RiskCritical},
			{Title: "b", RiskLevel: RiskLow},
			{Title: "c", RiskLevel: RiskLow},
			{Title: "d", RiskLevel: RiskMedium},
		}},
		Governance: &Governance{Roles: []Role{{RoleType: RoleSystemOwner}, {RoleType: RoleRiskOwner}}},
	}

	r := Evaluate(sys)
	assert.InDelta(t, 20+22.5+15+20.0/3, Score(r.Details), 1e-9)
	assert.Equal(t, 64, r.Score)
	assert.Equal(t, "Partially Complete (score 64%)", r.Summary)
}

func TestScore_GovernanceCapped(t *testing.T) {
	d := Details{Governance: GovernanceDetail{Exists: true, RolesCount: 7}}
	// risk section contributes 20 with no register
	assert.InDelta(t, 30.0, Score(d), 1e-9)
}

func TestScore_RiskFloor(t *testing.T) {
	d := Details{RiskManagement: RiskManagementDetail{
		Exists:                   true,
		TotalRisks:               2,
		HighRisksUnmitigated:     2,
		CriticalRisksUnmitigated: 1,
	}}
	assert.Equal(t, 0.0, Score(d))
}

func TestEvaluate_ReadyMatchesMissingItems(t *testing.T) {
	variants := map[string]func(*System){
		"ready":            func(*System) {},
		"no gap":           func(s *System) { s.GapAssessment = nil },
		"gap short":        func(s *System) { s.GapAssessment.Requirements[0].Status = StatusInProgress },
		"gap all n/a":      func(s *System) { s.GapAssessment = &GapAssessment{Requirements: []Requirement{{Status: StatusNotApplicable}}} },
		"no docs":          func(s *System) { s.TechnicalDocumentation = nil },
		"docs 99":          func(s *System) { s.TechnicalDocumentation.CompletenessPercentage = 99 },
		"no register":      func(s *System) { s.RiskRegister = nil },
		"empty register":   func(s *System) { s.RiskRegister = &RiskRegister{} },
		"open high":        func(s *System) { s.RiskRegister.Risks[0].RiskLevel = RiskHigh },
		"open critical":    func(s *System) { s.RiskRegister.Risks[0].RiskLevel = RiskCritical },
		"no governance":    func(s *System) { s.Governance = nil },
		"inactive owner":   func(s *System) { s.Governance.Roles[0].IsActive = boolPtr(false) },
		"unknown role":     func(s *System) { s.Governance.Roles[2].RoleType = "AUDITOR" },
		"unknown req flag": func(s *System) { s.GapAssessment.Requirements[0].Status = "DONE" },
	}
	for name, mutate := range variants {
		t.Run(name, func(t *testing.T) {
			sys := readySystem()
			mutate(&sys)
			r := Evaluate(sys)
			assert.Equal(t, r.Ready, len(r.MissingItems) == 0, "missing items: %v", r.MissingItems)
		})
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	sys := readySystem()
	sys.RiskRegister.Risks = append(sys.RiskRegister.Risks, Risk{Title: "Bias", RiskLevel: RiskHigh})
	sys.GapAssessment.Requirements = append(sys.GapAssessment.Requirements, reqs("Transparency", 1, 4)...)

	first, err := json.Marshal(Evaluate(sys))
	require.NoError(t, err)
	second, err := json.Marshal(Evaluate(sys))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestEvaluate_NoNaN(t *testing.T) {
	sys := System{
		GapAssessment:          &GapAssessment{},
		TechnicalDocumentation: &TechnicalDocumentation{},
		RiskRegister:           &RiskRegister{},
		Governance:             &Governance{},
	}
	r := Evaluate(sys)
	out, err := json.Marshal(r)
	require.NoError(t, err, "NaN or Inf would fail to marshal")
	assert.False(t, strings.Contains(string(out), "NaN"))
	assert.Equal(t, 0.0, r.Details.GapAssessment.PercentComplete)
	assert.Equal(t, 20, r.Score)
}

func TestSummary(t *testing.T) {
	tests := []struct {
		score int
		ready bool
		want  string
	}{
		{100, true, "System is ready for certification (score 100%)"},
		{96, true, "System is ready for certification (score 96%)"},
		{100, false, "Almost Ready (score 100%)"},
		{95, false, "Almost Ready (score 95%)"},
		{94, false, "In Progress (score 94%)"},
		{80, false, "In Progress (score 80%)"},
		{79, false, "Partially Complete (score 79%)"},
		{50, false, "Partially Complete (score 50%)"},
		{49, false, "Getting Started (score 49%)"},
		{0, false, "Getting Started (score 0%)"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Summary(tc.score, tc.ready))
	}
}
