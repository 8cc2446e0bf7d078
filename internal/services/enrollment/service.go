package enrollment

import (
	"context"
	"fmt"

	"coschooldata/internal/domain"
	"coschooldata/internal/rlang"
)

// Service forwards enrollment operations to the R data package.
//
// Every method is a passthrough: arguments are marshalled into the runtime
// call, the foreign function does the real fetching and reshaping, and the
// returned table or record is converted for the caller. No decision logic
// lives here beyond normalising the year-range record shape.
type Service struct {
	runtime domain.Runtime
}

// New constructs an enrollment Service over the given runtime.
func New(runtime domain.Runtime) *Service {
	return &Service{runtime: runtime}
}

// FetchYear fetches enrollment data for a single school end-year
// (e.g. 2025 for 2024-25).
func (s *Service) FetchYear(ctx context.Context, endYear int) (*domain.Frame, error) {
	return s.runtime.CallFrame(ctx, "fetch_enr", []any{endYear}, nil)
}

// FetchYears fetches combined enrollment data for several end-years.
func (s *Service) FetchYears(ctx context.Context, endYears []int) (*domain.Frame, error) {
	if len(endYears) == 0 {
		return nil, fmt.Errorf("fetch enrollment: no years given")
	}
	return s.runtime.CallFrame(ctx, "fetch_enr_multi", []any{endYears}, nil)
}

// Tidy reshapes a fetched enrollment frame into long format, one row per
// school/year/demographic combination. The reshape logic lives entirely in
// the R package.
func (s *Service) Tidy(ctx context.Context, frame *domain.Frame) (*domain.Frame, error) {
	if frame == nil || frame.Empty() {
		return nil, fmt.Errorf("tidy enrollment: empty frame")
	}
	return s.runtime.CallFrame(ctx, "tidy_enr", []any{frame}, nil)
}

// AvailableYears returns the span of end-years with published enrollment
// data, normalising whichever record shape the bridge produced.
func (s *Service) AvailableYears(ctx context.Context) (domain.YearRange, error) {
	raw, err := s.runtime.CallRaw(ctx, "get_available_years", nil, nil)
	if err != nil {
		return domain.YearRange{}, err
	}
	rec, err := rlang.ParseRecord(raw)
	if err != nil {
		return domain.YearRange{}, fmt.Errorf("available enrollment years: %w", err)
	}
	minYear, err := rec.Int("min_year")
	if err != nil {
		return domain.YearRange{}, fmt.Errorf("available enrollment years: %w", err)
	}
	maxYear, err := rec.Int("max_year")
	if err != nil {
		return domain.YearRange{}, fmt.Errorf("available enrollment years: %w", err)
	}
	return domain.YearRange{MinYear: minYear, MaxYear: maxYear}, nil
}

// Compile-time assertion that Service implements domain.EnrollmentService.
var _ domain.EnrollmentService = (*Service)(nil)
