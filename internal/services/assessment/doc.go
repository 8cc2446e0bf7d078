// Package assessment forwards CMAS assessment fetches to the R data package.
//
// It exposes single-year and multi-year fetches with subject filtering and a
// tidy/wide toggle, plus the available-years lookup.
package assessment
