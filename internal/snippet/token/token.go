// Package token indexes word boundaries of plain text.
package token

import (
	"sort"
	"unicode"
)

// Boundaries holds the sorted word-start and word-end offsets of a text, counted in characters.
type Boundaries struct {
	Starts []int // offsets immediately preceding the first character of each word
	Ends   []int // offsets immediately following the last character of each word
}

// Empty reports whether the text had no word characters, in which case no growth to word
// boundaries is possible.
func (b Boundaries) Empty() bool {
	return len(b.Starts) == 0 || len(b.Ends) == 0
}

// Index returns the word boundaries of text. Both slices are nil if text contains no word
// characters.
func Index(text []rune) Boundaries {
	var b Boundaries
	for i, r := range text {
		if !isWordRune(r) {
			continue
		}
		if i == 0 || !isWordRune(text[i-1]) {
			b.Starts = append(b.Starts, i)
		}
		if i == len(text)-1 || !isWordRune(text[i+1]) {
			b.Ends = append(b.Ends, i+1)
		}
	}
	return b
}

// LowerBound returns the leftmost index i such that a[i] >= key, or len(a) if there is none. a
// must be sorted in ascending order; runs of equal values resolve to their first element.
func LowerBound(a []int, key int) int {
	return sort.Search(len(a), func(i int) bool { return a[i] >= key })
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
