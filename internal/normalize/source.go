package normalize

import (
	"bytes"
	"fmt"
	"go/parser"
	"go/printer"
	"go/token"
)

// ParseError reports that source-mode normalization could not parse its
// input as Go.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse source: %v", e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

// Source canonicalizes Go source. The file is parsed without comment
// retention, which strips documentation the way docstring masking would in
// other languages, then re-printed into canonical layout before the
// plain-text canonicalization is applied.
func Source(raw string) (string, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "input.go", raw, parser.SkipObjectResolution)
	if err != nil {
		return "", &ParseError{Err: err}
	}

	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, file); err != nil {
		return "", &ParseError{Err: err}
	}
	return Text(buf.String()), nil
}
