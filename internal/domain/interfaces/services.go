package interfaces

import (
	"context"

	domaintypes "coschooldata/internal/domain/types"
)

// EnrollmentService fetches and reshapes Colorado school enrollment tables.
type EnrollmentService interface {
	FetchYear(ctx context.Context, endYear int) (*domaintypes.Frame, error)
	FetchYears(ctx context.Context, endYears []int) (*domaintypes.Frame, error)
	Tidy(ctx context.Context, frame *domaintypes.Frame) (*domaintypes.Frame, error)
	AvailableYears(ctx context.Context) (domaintypes.YearRange, error)
}

// AssessmentService fetches CMAS assessment tables.
type AssessmentService interface {
	FetchYear(
		ctx context.Context,
		endYear int,
		subject domaintypes.Subject,
		tidy bool,
	) (*domaintypes.Frame, error)
	FetchYears(
		ctx context.Context,
		endYears []int,
		subject domaintypes.Subject,
		tidy bool,
	) (*domaintypes.Frame, error)
	AvailableYears(ctx context.Context) (domaintypes.AssessmentYears, error)
}
