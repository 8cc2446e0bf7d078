// Package rlang provides the Rscript implementation of the domain.Runtime
// interface used by coschooldata.
//
// Each call spawns one Rscript subprocess evaluating a generated harness
// expression. Arguments travel to R as JSON over stdin; results come back as
// JSON over stdout. Only validated identifiers are spliced into expression
// text, so argument values never touch the shell or the R parser directly.
//
// Supported operations:
//   - CallFrame: invoke a package function and decode the returned table.
//   - CallRaw: invoke a package function and hand back the raw payload.
//   - PackageVersion: report the installed data package version.
//
// The R installation is probed once per process (interpreter resolvable,
// data package installed) and the outcome retained for the process lifetime.
// Foreign failures are not translated: a non-zero exit surfaces as a
// CallError carrying the function name, exit status, and the tail of stderr.
package rlang
