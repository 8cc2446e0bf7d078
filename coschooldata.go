// Package coschooldata is a Go client for Colorado school enrollment and
// CMAS assessment data.
//
// All real data-fetching, caching of source files, and tidying logic lives
// in the coschooldata R package; this module is a bridge. Each operation
// marshals its arguments into an R call over an Rscript subprocess and
// converts the returned table into a Frame.
//
//	client, err := coschooldata.New(coschooldata.Options{})
//	if err != nil { ... }
//	frame, err := client.FetchEnrollment(ctx, 2025)
//
// Calls are synchronous and independent; the R installation is probed once
// per process on first use. Foreign failures surface unchanged as errors
// from the bridge.
package coschooldata

import (
	"context"

	"coschooldata/internal/domain"
	"coschooldata/internal/rlang"
	"coschooldata/internal/services/assessment"
	"coschooldata/internal/services/enrollment"
)

// Version is the module version string.
const Version = "0.1.0"

// Options configures a Client. The zero value uses "Rscript" on PATH and
// the coschooldata R package.
type Options struct {
	// Rscript is the R interpreter binary.
	Rscript string
	// Package overrides the R data package name.
	Package string
	// Runtime replaces the Rscript bridge entirely, mainly for tests.
	Runtime Runtime
}

// Client exposes the data-access facade.
type Client struct {
	runtime    domain.Runtime
	enrollment domain.EnrollmentService
	assessment domain.AssessmentService
}

// New builds a Client from opts.
func New(opts Options) *Client {
	rt := opts.Runtime
	if rt == nil {
		rt = rlang.New(opts.Rscript, opts.Package)
	}
	return &Client{
		runtime:    rt,
		enrollment: enrollment.New(rt),
		assessment: assessment.New(rt),
	}
}

// FetchEnrollment fetches enrollment data for a single school end-year
// (e.g. 2025 for 2024-25).
func (c *Client) FetchEnrollment(ctx context.Context, endYear int) (*Frame, error) {
	return c.enrollment.FetchYear(ctx, endYear)
}

// FetchEnrollmentMulti fetches combined enrollment data for several
// end-years.
func (c *Client) FetchEnrollmentMulti(ctx context.Context, endYears []int) (*Frame, error) {
	return c.enrollment.FetchYears(ctx, endYears)
}

// TidyEnrollment reshapes a fetched enrollment frame to long format, one
// row per school/year/demographic combination.
func (c *Client) TidyEnrollment(ctx context.Context, frame *Frame) (*Frame, error) {
	return c.enrollment.Tidy(ctx, frame)
}

// AvailableYears returns the span of end-years with published enrollment
// data.
func (c *Client) AvailableYears(ctx context.Context) (YearRange, error) {
	return c.enrollment.AvailableYears(ctx)
}

// AssessmentQuery narrows an assessment fetch. The zero value fetches every
// subject in tidy long format, matching the R package defaults.
type AssessmentQuery struct {
	// Subject filters by content area; empty means SubjectAll.
	Subject Subject
	// Wide selects the wide format with separate pct_* columns instead of
	// tidy long format.
	Wide bool
}

// FetchAssessment fetches CMAS assessment data for a single school end-year
// (e.g. 2024 for 2023-24).
func (c *Client) FetchAssessment(ctx context.Context, endYear int, q AssessmentQuery) (*Frame, error) {
	return c.assessment.FetchYear(ctx, endYear, q.Subject, !q.Wide)
}

// FetchAssessmentMulti fetches combined CMAS assessment data for several
// end-years.
func (c *Client) FetchAssessmentMulti(ctx context.Context, endYears []int, q AssessmentQuery) (*Frame, error) {
	return c.assessment.FetchYears(ctx, endYears, q.Subject, !q.Wide)
}

// AvailableAssessmentYears returns the end-years with published assessment
// data plus the note and programme name carried in the foreign record.
func (c *Client) AvailableAssessmentYears(ctx context.Context) (AssessmentYears, error) {
	return c.assessment.AvailableYears(ctx)
}
