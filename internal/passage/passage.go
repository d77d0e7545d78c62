// Package passage produces a single short, highlighted passage of a document for a free-text
// query.
package passage

import (
	"context"
	"strings"
)

// Generator finds the first query match in a text and returns the passage around it.
type Generator struct {
	// MaxLength is the number of characters of context around the first match.
	MaxLength int

	// Open and Close are written around every query match in the passage.
	Open, Close string

	// Separator is written where the passage cuts the text.
	Separator string
}

// Passage returns a passage of text around the first match of query. It returns "" if query has
// no terms or none of them occur in text.
func (g Generator) Passage(ctx context.Context, queryStr, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	q := parseQuery(queryStr)
	if len(q.terms) == 0 {
		return "", nil
	}
	matches := q.findAll(text)
	if len(matches) == 0 {
		return "", nil
	}

	runes := []rune(text)
	start, end := excerpt(runes, matches[0][0], matches[0][1], g.MaxLength)

	var b strings.Builder
	if start > 0 {
		b.WriteString(g.Separator)
	}
	c := start
	for _, m := range matches {
		if m[0] < c || m[1] > end {
			continue // overlaps a previous match or falls outside the passage
		}
		b.WriteString(string(runes[c:m[0]]))
		b.WriteString(g.Open)
		b.WriteString(string(runes[m[0]:m[1]]))
		b.WriteString(g.Close)
		c = m[1]
	}
	b.WriteString(string(runes[c:end]))
	if end < len(runes) {
		b.WriteString(g.Separator)
	}
	return b.String(), nil
}
