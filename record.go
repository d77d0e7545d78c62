package snipper

import (
	"strings"

	"github.com/sourcegraph/snipper/internal/snippet"
)

// Range is a highlighted match within a field, in characters of the field's plain text.
type Range struct {
	Offset int `json:"offset"`
	Length int `json:"length"`

	// Category is reserved for classifying matches. It is currently always empty; consumers must
	// tolerate its absence.
	Category string `json:"category,omitempty"`
}

// Record is a composed snippet as returned to callers.
type Record struct {
	Offset int `json:"offset"` // offset of the snippet in the field

	// Content is the snippet text, with the separator tag before and after it when the snippet
	// does not reach the start or end of the field.
	Content string `json:"content"`

	Length int     `json:"length"` // length of the snippet text, without separators
	Ranges []Range `json:"highlightedranges"`

	text       string
	head, tail bool // separators before and after text
}

// FieldSnippets are the snippets composed for one field.
type FieldSnippets struct {
	FieldLength int      `json:"fieldlength"`   // length of the field's plain text
	Snippets    []Record `json:"fieldsnippets"` // nil if there are none
}

func newRecord(s *snippet.Snippet, fieldLength int, tags Tags) Record {
	r := Record{
		Offset: s.Offset(),
		Length: s.Len(),
		text:   s.Content(),
		head:   s.Offset() > 0,
		tail:   s.End() < fieldLength,
	}
	for _, span := range s.Spans() {
		r.Ranges = append(r.Ranges, Range{Offset: span.Offset, Length: span.Length})
	}
	r.Content = r.decorate(tags.Separator, r.text)
	return r
}

func (r Record) decorate(separator, text string) string {
	if r.head {
		text = separator + text
	}
	if r.tail {
		text += separator
	}
	return text
}

// Highlighted returns the snippet text with the open and close tags around each range and the
// separator tag where the field was cut.
func (r Record) Highlighted(tags Tags) string {
	text := []rune(r.text)
	var b strings.Builder
	c := 0
	for _, rg := range r.Ranges {
		start := rg.Offset - r.Offset
		if start < c || start+rg.Length > len(text) {
			continue
		}
		b.WriteString(string(text[c:start]))
		b.WriteString(tags.Open)
		b.WriteString(string(text[start : start+rg.Length]))
		b.WriteString(tags.Close)
		c = start + rg.Length
	}
	b.WriteString(string(text[c:]))
	return r.decorate(tags.Separator, b.String())
}
