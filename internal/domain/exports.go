package domain

import (
	interfaces "coschooldata/internal/domain/interfaces"
	types "coschooldata/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Frame           = types.Frame
	Column          = types.Column
	Subject         = types.Subject
	YearRange       = types.YearRange
	AssessmentYears = types.AssessmentYears
)

// Subject constants re-exported for compact imports.
const (
	SubjectAll     = types.SubjectAll
	SubjectELA     = types.SubjectELA
	SubjectMath    = types.SubjectMath
	SubjectScience = types.SubjectScience
	SubjectCSLA    = types.SubjectCSLA
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Runtime           = interfaces.Runtime
	EnrollmentService = interfaces.EnrollmentService
	AssessmentService = interfaces.AssessmentService
	FrameCache        = interfaces.FrameCache
)

// NewFrame re-exports the frame constructor.
var NewFrame = types.NewFrame

// Subjects re-exports the subject list.
var Subjects = types.Subjects
