// Package enrollment forwards enrollment fetches to the R data package.
//
// It exposes single-year and multi-year fetches, the tidy reshape, and the
// available-years lookup, converting between Go frames and the bridge
// payloads.
package enrollment
