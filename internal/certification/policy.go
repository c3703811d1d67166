package certification

// Weights of each section in the readiness score. They add up to 1.
const (
	GapAssessmentWeight          = 0.40
	TechnicalDocumentationWeight = 0.30
	RiskManagementWeight         = 0.20
	GovernanceWeight             = 0.10
)

// Readiness thresholds.
const (
	// MinGapCompletion is the share of applicable requirements (percent) that
	// must be implemented before a system can be certified.
	MinGapCompletion = 95.0
	// FullDocumentation is the required technical documentation completeness.
	FullDocumentation = 100.0
	// MinCategoryCompletion flags requirement categories below this percent.
	MinCategoryCompletion = 80.0
	// MinSectionLength is the trimmed length a documentation section needs
	// to count as written.
	MinSectionLength = 50
	// ExpectedRoleCount is the number of roles that gives full governance score.
	ExpectedRoleCount = 3
)

// Summary label breakpoints.
const (
	almostReadyScore       = 95
	inProgressScore        = 80
	partiallyCompleteScore = 50
)

// RequiredRoles must all be held by an active role before certification.
var RequiredRoles = []RoleType{RoleSystemOwner, RoleRiskOwner, RoleComplianceOfficer}

// DocumentationSections lists technical documentation sections in canonical order.
var DocumentationSections = []string{
	"intendedUse",
	"foreseeableMisuse",
	"systemArchitecture",
	"trainingData",
	"modelPerformance",
	"validationTesting",
	"humanOversightDoc",
	"cybersecurity",
}
