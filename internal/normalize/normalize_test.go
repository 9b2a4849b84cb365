package normalize

import (
	"errors"
	"testing"
)

func TestTextCanonicalization(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"lowercases", "Hello World", "helloworld"},
		{"removes whitespace", "a\tb\nc  d\r\ne", "abcde"},
		{"unifies single quotes", "it's 'quoted'", `it"s"quoted"`},
		{"unifies curly quotes", "“fancy” and ‘fancier’", `"fancy"and"fancier"`},
		{"unifies backticks", "`raw`", `"raw"`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.raw); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestTextIdempotent(t *testing.T) {
	inputs := []string{
		"Hello,\tWorld!\n",
		"already canonical",
		"Mixed 'Quotes' and “Styles”",
		"ÅNGSTRÖM units",
	}
	for _, raw := range inputs {
		once := Text(raw)
		twice := Text(once)
		if once != twice {
			t.Errorf("Text not idempotent for %q: %q vs %q", raw, once, twice)
		}
	}
}

func TestTextEquatesReformattedContent(t *testing.T) {
	a := "The Quick Brown Fox"
	b := "the\tquick\nbrown fox"
	if Text(a) != Text(b) {
		t.Errorf("reformatted variants differ: %q vs %q", Text(a), Text(b))
	}
}

func TestSourceDropsComments(t *testing.T) {
	commented := `// Package demo does arithmetic.
package demo

// Add returns the sum of a and b.
// It exists for the test.
func Add(a, b int) int {
	// inline note
	return a + b
}
`
	bare := `package demo

func Add(a, b int) int {
	return a + b
}
`
	gotCommented, err := Source(commented)
	if err != nil {
		t.Fatalf("Source(commented): %v", err)
	}
	gotBare, err := Source(bare)
	if err != nil {
		t.Fatalf("Source(bare): %v", err)
	}
	if gotCommented != gotBare {
		t.Errorf("comment-only difference survived normalization:\n%q\nvs\n%q", gotCommented, gotBare)
	}
}

func TestSourceCanonicalizesLayout(t *testing.T) {
	sparse := `package demo

func   Add(a ,b int)int{
return a+b}
`
	dense := `package demo

func Add(a, b int) int { return a + b }
`
	gotSparse, err := Source(sparse)
	if err != nil {
		t.Fatalf("Source(sparse): %v", err)
	}
	gotDense, err := Source(dense)
	if err != nil {
		t.Fatalf("Source(dense): %v", err)
	}
	if gotSparse != gotDense {
		t.Errorf("layout-only difference survived normalization:\n%q\nvs\n%q", gotSparse, gotDense)
	}
}

func TestSourceParseError(t *testing.T) {
	_, err := Source("func broken( {")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("error %v is not a *ParseError", err)
	}
}

func TestNormalizerDispatch(t *testing.T) {
	n := Normalizer{CodeExtensions: []string{".go"}}

	text, err := n.Normalize("notes.txt", "Some Notes\n")
	if err != nil {
		t.Fatalf("Normalize(text): %v", err)
	}
	if text.Mode != ModeText || text.Canonical != "somenotes" {
		t.Errorf("text dispatch = %+v", text)
	}

	src, err := n.Normalize("main.go", "package main\n\nfunc main() {}\n")
	if err != nil {
		t.Fatalf("Normalize(source): %v", err)
	}
	if src.Mode != ModeSource {
		t.Errorf("source dispatch mode = %q, want %q", src.Mode, ModeSource)
	}
}

func TestNormalizerParseFallback(t *testing.T) {
	n := Normalizer{CodeExtensions: []string{".go"}}

	res, err := n.Normalize("broken.go", "Not Go At All")
	if err != nil {
		t.Fatalf("fallback should absorb the parse error, got %v", err)
	}
	if res.Mode != ModeText {
		t.Errorf("fallback mode = %q, want %q", res.Mode, ModeText)
	}
	if res.ParseErr == nil {
		t.Error("fallback result should carry the parse error for logging")
	}
	if res.Canonical != Text("Not Go At All") {
		t.Errorf("fallback canonical = %q", res.Canonical)
	}
}

func TestNormalizerParseFailure(t *testing.T) {
	n := Normalizer{CodeExtensions: []string{".go"}, FailOnParseError: true}

	_, err := n.Normalize("broken.go", "Not Go At All")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("strict mode error = %v, want *ParseError", err)
	}
}

func TestNormalizerExtensionCaseInsensitive(t *testing.T) {
	n := Normalizer{CodeExtensions: []string{".go"}}
	res, err := n.Normalize("MAIN.GO", "package main\n")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if res.Mode != ModeSource {
		t.Errorf("uppercase extension mode = %q, want %q", res.Mode, ModeSource)
	}
}
