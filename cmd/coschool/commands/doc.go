// Package commands defines the coschool CLI and wires dependencies for subcommands.
//
// Commands
//
//   - enrollment     Fetch enrollment data for one or more end-years
//   - assessment     Fetch CMAS assessment data for one or more end-years
//   - years          Show which end-years have published data
//   - tidy           Reshape an enrollment CSV to long format
//   - check          Verify the R installation and data package
//
// # Implementation
//
// The root command loads configuration from the environment, applies flag
// overrides, and builds the dependency graph (R runtime, payload cache,
// services) before any subcommand runs, so handlers share one app context.
// Tables print as CSV by default; --format json emits row records.
package commands
