// Package logging constructs the slog logger used across simcheck.
//
// Two output formats are supported: a compact console format
// ("RFC3339 LEVEL component: msg key=value") and line-delimited JSON. Log
// output goes to the diagnostic stream (stderr) so stdout stays free for the
// progress spinner and rendered tables.
package logging
