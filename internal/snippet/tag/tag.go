// Package tag reads the match spans that an upstream highlighter marked in a field's text.
//
// The highlighter brackets every match with a pair of highlight characters and marks places where
// it already truncated the text with a single separator character. Offsets reported here are in
// the text with both kinds of marker removed.
package tag

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sourcegraph/snipper/internal/snippet"
)

const (
	// RawHighlight is the character the highlighter places before and after each match.
	RawHighlight = '\u001F'

	// RawSeparator is the character the highlighter places where it truncated the text.
	RawSeparator = '\u001E'
)

// Scanner recognizes a pair of marker characters.
type Scanner struct {
	Highlight rune
	Separator rune
}

// DefaultScanner recognizes the raw highlighter characters.
var DefaultScanner = Scanner{Highlight: RawHighlight, Separator: RawSeparator}

// Scan returns the spans marked in tagged, in order, with offsets counted in characters of the
// untagged text. It returns nil if there are no marked spans.
//
// A match that closes immediately before the next one opens continues the same span. Empty
// matches produce no span. An unclosed match is an error wrapping snippet.ErrMalformedTagStream.
func (sc Scanner) Scan(tagged string) ([]snippet.Span, error) {
	var (
		spans  []snippet.Span
		i      int  // character index in tagged
		tags   int  // marker characters seen so far
		inside bool // within a highlight
		prev   rune = -1
	)
	for _, r := range tagged {
		raw := i - tags
		switch r {
		case sc.Highlight:
			tags++
			last := len(spans) - 1
			switch {
			case inside:
				spans[last].Length = raw - spans[last].Offset
				if !spans[last].Closed() {
					spans = spans[:last]
				}
			case prev == sc.Highlight && last >= 0 && spans[last].End() == raw:
				spans[last].Length = 0 // reopen
			default:
				spans = append(spans, snippet.Span{Offset: raw})
			}
			inside = !inside
		case sc.Separator:
			tags++
		}
		prev = r
		i++
	}
	if inside {
		return nil, errors.WithMessagef(snippet.ErrMalformedTagStream, "highlight opened at offset %d is never closed", spans[len(spans)-1].Offset)
	}
	return spans, nil
}

// Strip returns tagged with all marker characters removed.
func (sc Scanner) Strip(tagged string) string {
	return strings.Map(func(r rune) rune {
		if r == sc.Highlight || r == sc.Separator {
			return -1
		}
		return r
	}, tagged)
}
