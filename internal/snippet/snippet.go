// Package snippet composes display snippets around highlighted matches in a field's plain text.
//
// Matches are grouped by a greedy merge of the closest adjacent pairs (bounded by an upper
// length), and snippets shorter than a lower length are then grown outward to word boundaries,
// picking up any matches the growth exposes.
package snippet

import (
	"sort"

	"github.com/pkg/errors"
)

// Snippet is a contiguous excerpt of plain text and the spans it contains.
type Snippet struct {
	offset  int
	content []rune // nil until content is first set
	spans   []Span // sorted by offset
}

// New returns a snippet covering content, which starts at offset in the text. The content is
// copied.
func New(offset int, content []rune) (*Snippet, error) {
	if content == nil {
		return nil, errors.WithMessage(ErrInvalidContent, "nil content")
	}
	if offset < 0 {
		return nil, errors.WithMessagef(ErrInvalidContent, "negative offset %d", offset)
	}
	return &Snippet{offset: offset, content: append(make([]rune, 0, len(content)), content...)}, nil
}

// Offset returns the offset of the first character of the snippet.
func (s *Snippet) Offset() int { return s.offset }

// End returns the offset just past the last character of the snippet.
func (s *Snippet) End() int { return s.offset + s.Len() }

// Len returns the length of the snippet content in characters.
func (s *Snippet) Len() int { return len(s.content) }

// Content returns the snippet text.
func (s *Snippet) Content() string { return string(s.content) }

// Spans returns the spans attached to the snippet, in ascending order of offset.
func (s *Snippet) Spans() []Span { return s.spans }

// PushFront prepends content, moving the snippet offset left by its length.
func (s *Snippet) PushFront(content []rune) error {
	if content == nil {
		return errors.WithMessage(ErrInvalidContent, "can't prepend nil content")
	}
	if s.content == nil {
		s.content = append([]rune{}, content...)
		return nil
	}
	if s.offset-len(content) < 0 {
		return errors.WithMessagef(ErrInvalidContent, "prepending %d characters at offset %d", len(content), s.offset)
	}
	merged := make([]rune, 0, len(content)+len(s.content))
	merged = append(merged, content...)
	s.content = append(merged, s.content...)
	s.offset -= len(content)
	return nil
}

// PushBack appends content.
func (s *Snippet) PushBack(content []rune) error {
	if content == nil {
		return errors.WithMessage(ErrInvalidContent, "can't append nil content")
	}
	s.content = append(s.content, content...)
	return nil
}

// Attach adds span to the snippet. The span must have a length and lie within the snippet.
func (s *Snippet) Attach(span Span) error {
	switch {
	case !span.Closed():
		return errors.WithMessagef(ErrInvalidSpan, "can't attach unset span %s", span)
	case s.content == nil:
		return errors.WithMessagef(ErrInvalidSpan, "can't attach %s to a snippet without content", span)
	case span.Offset < s.offset || span.End() > s.End():
		return errors.WithMessagef(ErrInvalidSpan, "span %s out of snippet bounds [%d,%d)", span, s.offset, s.End())
	}
	i := sort.Search(len(s.spans), func(i int) bool { return s.spans[i].Offset > span.Offset })
	s.spans = append(s.spans, Span{})
	copy(s.spans[i+1:], s.spans[i:])
	s.spans[i] = span
	return nil
}

// singleton returns a new snippet covering exactly span.
func singleton(text []rune, span Span) (*Snippet, error) {
	s, err := New(span.Offset, text[span.Offset:span.End()])
	if err != nil {
		return nil, err
	}
	if err := s.Attach(span); err != nil {
		return nil, err
	}
	return s, nil
}
