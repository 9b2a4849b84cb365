// Command simcheck scores the textual similarity of file pairs.
//
// The root command reads an input list (two whitespace-separated paths per
// line) and writes one similarity score per line to the output file, with
// -1.0 recorded for pairs that could not be compared. Subcommands cover
// single-pair comparison, configuration utilities, and score cache
// maintenance.
package main
