package types

// YearRange is the span of school end-years with published enrollment data.
type YearRange struct {
	MinYear int `json:"min_year"`
	MaxYear int `json:"max_year"`
}

// Contains reports whether the end-year falls inside the range.
func (r YearRange) Contains(endYear int) bool {
	return endYear >= r.MinYear && endYear <= r.MaxYear
}

// AssessmentYears describes the end-years with published CMAS assessment
// data. Years is not contiguous (no statewide testing in 2020), which the
// Note explains; AssessmentSystem names the testing programme.
type AssessmentYears struct {
	Years            []int  `json:"years"`
	Note             string `json:"note"`
	AssessmentSystem string `json:"assessment_system"`
}
