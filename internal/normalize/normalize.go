package normalize

import (
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Mode identifies which pipeline produced a canonical string.
type Mode string

const (
	// ModeText is the plain-text canonicalization pipeline.
	ModeText Mode = "text"
	// ModeSource is the structural Go-source pipeline.
	ModeSource Mode = "source"
)

// quoteReplacer unifies quote characters to the double quote so quoting
// style never contributes to the edit distance.
var quoteReplacer = strings.NewReplacer(
	"'", `"`,
	"`", `"`,
	"‘", `"`,
	"’", `"`,
	"“", `"`,
	"”", `"`,
)

// Text canonicalizes raw content for comparison: Unicode case folding,
// every whitespace rune deleted, quote characters unified. Pure and
// idempotent.
func Text(raw string) string {
	folded := cases.Fold().String(raw)
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return quoteReplacer.Replace(b.String())
}

// Normalizer selects the pipeline per file and decides how a structural
// parse failure is handled.
type Normalizer struct {
	// CodeExtensions lists the lowercased file extensions (with leading
	// dot) routed through the source pipeline.
	CodeExtensions []string
	// FailOnParseError makes Normalize return the parse error instead of
	// falling back to plain-text canonicalization.
	FailOnParseError bool
}

// Result carries a canonical string and how it was produced.
type Result struct {
	Canonical string
	Mode      Mode
	// ParseErr is set when the source pipeline failed and the plain-text
	// fallback was used instead. Callers may surface it as a warning.
	ParseErr error
}

// Normalize canonicalizes raw according to the pipeline selected by path's
// extension.
func (n Normalizer) Normalize(path, raw string) (Result, error) {
	if !n.isCode(path) {
		return Result{Canonical: Text(raw), Mode: ModeText}, nil
	}
	canonical, err := Source(raw)
	if err != nil {
		if n.FailOnParseError {
			return Result{}, err
		}
		return Result{Canonical: Text(raw), Mode: ModeText, ParseErr: err}, nil
	}
	return Result{Canonical: canonical, Mode: ModeSource}, nil
}

func (n Normalizer) isCode(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	return slices.Contains(n.CodeExtensions, ext)
}
