package certification

type RequirementStatus string

const (
	StatusNotStarted    RequirementStatus = "NOT_STARTED"
	StatusInProgress    RequirementStatus = "IN_PROGRESS"
	StatusImplemented   RequirementStatus = "IMPLEMENTED"
	StatusNotApplicable RequirementStatus = "NOT_APPLICABLE"
)

func (s RequirementStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusImplemented, StatusNotApplicable:
		return true
	}
	return false
}

type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

func (l RiskLevel) Valid() bool {
	switch l {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	}
	return false
}

// TreatmentDecision is empty while no decision has been recorded.
type TreatmentDecision string

const (
	TreatmentNone     TreatmentDecision = ""
	TreatmentAccept   TreatmentDecision = "ACCEPT"
	TreatmentMitigate TreatmentDecision = "MITIGATE"
	TreatmentTransfer TreatmentDecision = "TRANSFER"
	TreatmentAvoid    TreatmentDecision = "AVOID"
)

func (d TreatmentDecision) Valid() bool {
	switch d {
	case TreatmentNone, TreatmentAccept, TreatmentMitigate, TreatmentTransfer, TreatmentAvoid:
		return true
	}
	return false
}

type MitigationStatus string

const (
	MitigationPlanned    MitigationStatus = "PLANNED"
	MitigationInProgress MitigationStatus = "IN_PROGRESS"
	MitigationCompleted  MitigationStatus = "COMPLETED"
	MitigationCancelled  MitigationStatus = "CANCELLED"
)

func (s MitigationStatus) Valid() bool {
	switch s {
	case MitigationPlanned, MitigationInProgress, MitigationCompleted, MitigationCancelled:
		return true
	}
	return false
}

type RoleType string

const (
	RoleSystemOwner           RoleType = "SYSTEM_OWNER"
	RoleRiskOwner             RoleType = "RISK_OWNER"
	RoleComplianceOfficer     RoleType = "COMPLIANCE_OFFICER"
	RoleDataProtectionOfficer RoleType = "DATA_PROTECTION_OFFICER"
	RoleTechnicalLead         RoleType = "TECHNICAL_LEAD"
	RoleHumanOversightOfficer RoleType = "HUMAN_OVERSIGHT_OFFICER"
	RoleQualityManager        RoleType = "QUALITY_MANAGER"
)

func (r RoleType) Valid() bool {
	switch r {
	case RoleSystemOwner, RoleRiskOwner, RoleComplianceOfficer, RoleDataProtectionOfficer,
		RoleTechnicalLead, RoleHumanOversightOfficer, RoleQualityManager:
		return true
	}
	return false
}

// System is a read-only snapshot of an AI system and everything the
// readiness evaluation looks at. Nil sections have not been created yet.
type System struct {
	ID             uint
	OrganizationID uint
	Name           string

	GapAssessment          *GapAssessment
	RiskRegister           *RiskRegister
	TechnicalDocumentation *TechnicalDocumentation
	Governance             *Governance
}

type GapAssessment struct {
	Requirements []Requirement
}

type Requirement struct {
	Article  string
	Title    string
	Category string
	Status   RequirementStatus
}

type TechnicalDocumentation struct {
	IntendedUse        string
	ForeseeableMisuse  string
	SystemArchitecture string
	TrainingData       string
	ModelPerformance   string
	ValidationTesting  string
	HumanOversightDoc  string
	Cybersecurity      string

	CompletenessPercentage float64
}

// Section returns the text of a section by its canonical name.
func (d *TechnicalDocumentation) Section(name string) string {
	switch name {
	case "intendedUse":
		return d.IntendedUse
	case "foreseeableMisuse":
		return d.ForeseeableMisuse
	case "systemArchitecture":
		return d.SystemArchitecture
	case "trainingData":
		return d.TrainingData
	case "modelPerformance":
		return d.ModelPerformance
	case "validationTesting":
		return d.ValidationTesting
	case "humanOversightDoc":
		return d.HumanOversightDoc
	case "cybersecurity":
		return d.Cybersecurity
	}
	return ""
}

type RiskRegister struct {
	Risks []Risk
}

type Risk struct {
	ID                     uint
	Title                  string
	RiskLevel              RiskLevel
	TreatmentDecision      TreatmentDecision
	TreatmentJustification string
	MitigationActions      []MitigationAction
}

type MitigationAction struct {
	Status MitigationStatus
}

type Governance struct {
	Roles []Role
}

// Role is a governance role assignment. A nil IsActive counts as active.
type Role struct {
	RoleType RoleType
	IsActive *bool
}

func (r Role) Active() bool {
	return r.IsActive == nil || *r.IsActive
}
