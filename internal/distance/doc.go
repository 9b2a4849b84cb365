// Package distance implements rune-level Levenshtein edit distance and the
// normalized similarity score derived from it.
//
// The implementation keeps a single pair of ping-pong row buffers sized to the
// shorter input, so working memory stays at O(min(len(a), len(b))) while the
// inner loop remains a plain scalar scan. Callers that want progress feedback
// during long comparisons supply a Progress sink that is ticked once per outer
// iteration.
package distance
