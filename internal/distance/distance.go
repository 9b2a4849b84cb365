package distance

import (
	"math"
	"unicode/utf8"
)

// Progress receives one Tick per outer iteration of Distance. Implementations
// must not influence the computed result; nil disables reporting.
type Progress interface {
	Tick()
}

// Distance returns the Levenshtein edit distance between a and b, counted in
// runes with unit costs for insertion, deletion, and substitution.
//
// The shorter string is bound to the row buffers; the two rows are swapped
// each outer iteration instead of reallocating.
func Distance(a, b string, p Progress) int {
	s1 := []rune(a)
	s2 := []rune(b)
	if len(s1) > len(s2) {
		s1, s2 = s2, s1
	}
	if len(s1) == 0 {
		return len(s2)
	}

	prev := make([]int, len(s1)+1)
	curr := make([]int, len(s1)+1)
	for i := range prev {
		prev[i] = i
	}

	for i2, c2 := range s2 {
		curr[0] = i2 + 1
		for i1, c1 := range s1 {
			if c1 == c2 {
				curr[i1+1] = prev[i1]
			} else {
				curr[i1+1] = 1 + min(prev[i1], prev[i1+1], curr[i1])
			}
		}
		prev, curr = curr, prev
		if p != nil {
			p.Tick()
		}
	}
	return prev[len(s1)]
}

// Similarity converts the edit distance between a and b into a score in
// [0, 1], rounded to three decimal places. Two empty strings compare as
// identical (1.0) by convention; the division is otherwise always defined
// because the distance never exceeds the longer length.
func Similarity(a, b string, p Progress) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	return Score(Distance(a, b, p), longest)
}

// Score derives the similarity score from an already-computed distance and
// the rune length of the longer input.
func Score(d, longest int) float64 {
	if longest == 0 {
		return 1.0
	}
	return Round(1 - float64(d)/float64(longest))
}

// Round rounds a score to three decimal places.
func Round(v float64) float64 {
	return math.Round(v*1000) / 1000
}
