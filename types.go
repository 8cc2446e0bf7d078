package coschooldata

import (
	"coschooldata/internal/domain"
)

// Type aliases expose the domain types through the public package.
type (
	// Frame is a column-major data frame relayed from the R package.
	Frame = domain.Frame
	// Column is one named column of a Frame.
	Column = domain.Column
	// Subject filters assessment fetches by content area.
	Subject = domain.Subject
	// YearRange is the span of end-years with published enrollment data.
	YearRange = domain.YearRange
	// AssessmentYears describes the end-years with published assessment data.
	AssessmentYears = domain.AssessmentYears
	// Runtime invokes functions of the underlying R data package.
	Runtime = domain.Runtime
)

// Subject constants re-exported for callers.
const (
	SubjectAll     = domain.SubjectAll
	SubjectELA     = domain.SubjectELA
	SubjectMath    = domain.SubjectMath
	SubjectScience = domain.SubjectScience
	SubjectCSLA    = domain.SubjectCSLA
)

// NewFrame builds an empty frame with the given column names.
var NewFrame = domain.NewFrame
