package rlang

import (
	"fmt"
	"regexp"
)

// identifierPattern matches R identifiers we are willing to splice into an
// expression. Argument values never appear in expression text; they travel
// over stdin.
var identifierPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9._]*$`)

// ValidIdentifier reports whether name is safe to use as a package or
// function name in a generated expression.
func ValidIdentifier(name string) bool {
	return identifierPattern.MatchString(name)
}

// callExpr builds the R expression evaluated by Rscript for one call. The
// harness reads a {"args": [...], "named": {...}} payload from stdin,
// applies the package function, and prints the result as JSON on stdout.
// Data frames are emitted column-major; NA becomes null.
func callExpr(pkg, fn string) (string, error) {
	if !ValidIdentifier(pkg) {
		return "", fmt.Errorf("invalid package name %q", pkg)
	}
	if !ValidIdentifier(fn) {
		return "", fmt.Errorf("invalid function name %q", fn)
	}
	const harness = `input <- jsonlite::fromJSON(file("stdin"), simplifyVector = TRUE, simplifyDataFrame = TRUE, simplifyMatrix = FALSE)
args <- as.list(input$args)
named <- as.list(input$named)
out <- do.call(%s::%s, c(args, named))
cat(jsonlite::toJSON(out, dataframe = "columns", na = "null", auto_unbox = TRUE))`
	return fmt.Sprintf(harness, pkg, fn), nil
}

// probeExpr builds the expression used once per process to verify the data
// package is installed. It prints the package version on success and exits
// with probeMissingStatus when the package cannot be loaded.
func probeExpr(pkg string) (string, error) {
	if !ValidIdentifier(pkg) {
		return "", fmt.Errorf("invalid package name %q", pkg)
	}
	const harness = `if (!requireNamespace("%s", quietly = TRUE)) quit(save = "no", status = %d)
cat(as.character(utils::packageVersion("%s")))`
	return fmt.Sprintf(harness, pkg, probeMissingStatus, pkg), nil
}
