// Package scorecache persists similarity scores between runs.
//
// Scores are keyed by the SHA-256 digests of the two canonical (normalized)
// texts plus the normalization mode, with the digest pair ordered so lookups
// are symmetric. The backing store is a SQLite database in the configured
// cache directory; a file lock serializes concurrent simcheck runs against
// the same cache.
package scorecache
