// Package normalize canonicalizes file content before similarity comparison.
//
// Two pipelines exist: plain text (case folding, whitespace removal, quote
// unification) and Go source (structural parse that drops documentation
// comments and re-prints the file in canonical layout, then the plain-text
// pass). Superficial differences between semantically equivalent files are
// removed so the edit distance reflects real divergence.
package normalize
