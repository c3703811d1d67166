package certification

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// ErrNotFound is returned when the AI system does not exist or belongs to
// another organization.
var ErrNotFound = errors.New("ai system not found")

// SystemLoader reads a fully populated snapshot of one AI system.
type SystemLoader interface {
	LoadSystem(ctx context.Context, orgID, systemID uint) (*System, error)
}

// Recorder receives every report the service produces and every
// evaluation that failed to load its system.
type Recorder interface {
	ObserveReport(r Report)
	ObserveFailure(err error)
}

type Service struct {
	loader   SystemLoader
	recorder Recorder
}

// NewService returns a Service. recorder may be nil.
func NewService(loader SystemLoader, recorder Recorder) *Service {
	return &Service{loader: loader, recorder: recorder}
}

// Readiness loads the system and evaluates it. A failed load stops before
// any validation happens.
func (s *Service) Readiness(ctx context.Context, orgID, systemID uint) (Report, error) {
	sys, err := s.loader.LoadSystem(ctx, orgID, systemID)
	if err == nil && sys == nil {
		err = ErrNotFound
	}
	if err != nil {
		if s.recorder != nil {
			s.recorder.ObserveFailure(err)
		}
		return Report{}, fmt.Errorf("load system %d: %w", systemID, err)
	}

	for _, v := range Unrecognized(*sys) {
		log.Warn().
			Uint("system_id", sys.ID).
			Str("field", v.Field).
			Str("value", v.Value).
			Msg("unrecognized value ignored by readiness evaluation")
	}

	report := Evaluate(*sys)
	if s.recorder != nil {
		s.recorder.ObserveReport(report)
	}
	log.Debug().
		Uint("system_id", sys.ID).
		Int("score", report.Score).
		Bool("ready", report.Ready).
		Int("missing_items", len(report.MissingItems)).
		Msg("readiness evaluated")
	return report, nil
}

// UnrecognizedValue is an enumerated field holding a value outside its set.
type UnrecognizedValue struct {
	Field string
	Value string
}

// Unrecognized lists enumerated values the evaluator does not know. Such
// records are not rejected; they just never match any bucket.
func Unrecognized(sys System) []UnrecognizedValue {
	var out []UnrecognizedValue
	if ga := sys.GapAssessment; ga != nil {
		for _, r := range ga.Requirements {
			if !r.Status.Valid() {
				out = append(out, UnrecognizedValue{"requirement.status", string(r.Status)})
			}
		}
	}
	if rr := sys.RiskRegister; rr != nil {
		for _, r := range rr.Risks {
			if !r.RiskLevel.Valid() {
				out = append(out, UnrecognizedValue{"risk.riskLevel", string(r.RiskLevel)})
			}
			if !r.TreatmentDecision.Valid() {
				out = append(out, UnrecognizedValue{"risk.treatmentDecision", string(r.TreatmentDecision)})
			}
			for _, a := range r.MitigationActions {
				if !a.Status.Valid() {
					out = append(out, UnrecognizedValue{"mitigationAction.status", string(a.Status)})
				}
			}
		}
	}
	if g := sys.Governance; g != nil {
		for _, r := range g.Roles {
			if !r.RoleType.Valid() {
				out = append(out, UnrecognizedValue{"role.roleType", string(r.RoleType)})
			}
		}
	}
	return out
}
