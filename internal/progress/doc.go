// Package progress renders a rate-limited console spinner with a percentage
// readout for long-running comparisons.
//
// The spinner is purely cosmetic: ticks are counted unconditionally, but the
// indicator is only redrawn when a minimum interval has elapsed, so display
// cost never dominates a tight inner loop. Callers decide whether a spinner
// is appropriate at all via IsTerminal.
package progress
