// Package batch drives pairwise file comparison from an input list.
//
// Each non-empty input line names two files to compare. Failures are isolated
// per line: a malformed line, an unreadable file, or (in strict mode) an
// unparseable source file records the -1.0 sentinel and the batch continues.
// The output file always contains exactly one score per input line, in input
// order. Only I/O errors on the list or output file themselves abort a run.
package batch
