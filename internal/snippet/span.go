package snippet

import (
	"fmt"

	"github.com/pkg/errors"
)

// Span is a range of plain text where a query term matched. Offsets and lengths count characters
// (runes), not bytes.
type Span struct {
	Offset int
	Length int // <= 0 while the closing highlight marker has not been seen
}

// End returns the offset just past the last character of the span.
func (s Span) End() int { return s.Offset + s.Length }

// Closed reports whether the span has a length.
func (s Span) Closed() bool { return s.Length > 0 }

func (s Span) String() string {
	if !s.Closed() {
		return fmt.Sprintf("[%d,?)", s.Offset)
	}
	return fmt.Sprintf("[%d,%d)", s.Offset, s.End())
}

// validateSpans checks that spans are closed, lie within a text of length n and are in ascending,
// non-overlapping order.
func validateSpans(spans []Span, n int) error {
	for i, span := range spans {
		if !span.Closed() {
			return errors.WithMessagef(ErrInvalidSpan, "span %d %s has no length", i, span)
		}
		if span.Offset < 0 || span.End() > n {
			return errors.WithMessagef(ErrInvalidSpan, "span %d %s outside text of length %d", i, span, n)
		}
		if i > 0 && spans[i-1].End() > span.Offset {
			return errors.WithMessagef(ErrInvalidSpan, "span %d %s overlaps or precedes %s", i, span, spans[i-1])
		}
	}
	return nil
}
