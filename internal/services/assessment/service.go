package assessment

import (
	"context"
	"fmt"

	"coschooldata/internal/domain"
	"coschooldata/internal/rlang"
)

// Service forwards CMAS assessment operations to the R data package.
type Service struct {
	runtime domain.Runtime
}

// New constructs an assessment Service over the given runtime.
func New(runtime domain.Runtime) *Service {
	return &Service{runtime: runtime}
}

// named builds the subject/tidy named arguments, validating the subject
// before the runtime is invoked.
func named(subject domain.Subject, tidy bool) (map[string]any, error) {
	if subject == "" {
		subject = domain.SubjectAll
	}
	if !subject.Valid() {
		return nil, fmt.Errorf("fetch assessment: unknown subject %q (one of %v)", subject, domain.Subjects())
	}
	return map[string]any{"subject": subject.String(), "tidy": tidy}, nil
}

// FetchYear fetches assessment data for a single school end-year
// (e.g. 2024 for 2023-24). Tidy selects long format with one row per
// proficiency level; otherwise the wide pct_* columns come back.
func (s *Service) FetchYear(ctx context.Context, endYear int, subject domain.Subject, tidy bool) (*domain.Frame, error) {
	args, err := named(subject, tidy)
	if err != nil {
		return nil, err
	}
	return s.runtime.CallFrame(ctx, "fetch_assessment", []any{endYear}, args)
}

// FetchYears fetches combined assessment data for several end-years.
func (s *Service) FetchYears(ctx context.Context, endYears []int, subject domain.Subject, tidy bool) (*domain.Frame, error) {
	if len(endYears) == 0 {
		return nil, fmt.Errorf("fetch assessment: no years given")
	}
	args, err := named(subject, tidy)
	if err != nil {
		return nil, err
	}
	return s.runtime.CallFrame(ctx, "fetch_assessment_multi", []any{endYears}, args)
}

// AvailableYears returns the end-years with published assessment data plus
// the note and programme name carried in the foreign record, normalising
// whichever record shape the bridge produced.
func (s *Service) AvailableYears(ctx context.Context) (domain.AssessmentYears, error) {
	raw, err := s.runtime.CallRaw(ctx, "get_available_assessment_years", nil, nil)
	if err != nil {
		return domain.AssessmentYears{}, err
	}
	rec, err := rlang.ParseRecord(raw)
	if err != nil {
		return domain.AssessmentYears{}, fmt.Errorf("available assessment years: %w", err)
	}
	years, err := rec.Ints("years")
	if err != nil {
		return domain.AssessmentYears{}, fmt.Errorf("available assessment years: %w", err)
	}
	note, err := rec.String("note")
	if err != nil {
		return domain.AssessmentYears{}, fmt.Errorf("available assessment years: %w", err)
	}
	system, err := rec.String("assessment_system")
	if err != nil {
		return domain.AssessmentYears{}, fmt.Errorf("available assessment years: %w", err)
	}
	return domain.AssessmentYears{Years: years, Note: note, AssessmentSystem: system}, nil
}

// Compile-time assertion that Service implements domain.AssessmentService.
var _ domain.AssessmentService = (*Service)(nil)
