package snippet

import (
	"github.com/sourcegraph/snipper/internal/snippet/token"
)

// Bounds is the target length window of a finished snippet, in characters.
type Bounds struct {
	Lower int // snippets shorter than this are grown
	Upper int // merges and growth never exceed this
}

// grower extends short snippets to nearby word boundaries.
type grower struct {
	text   []rune
	tokens token.Boundaries
	bounds Bounds

	// spans is the full span list of the text, with parallel start and end offsets for binary
	// search.
	spans      []Span
	spanStarts []int
	spanEnds   []int
}

func newGrower(text []rune, spans []Span, bounds Bounds) *grower {
	g := &grower{
		text:       text,
		tokens:     token.Index(text),
		bounds:     bounds,
		spans:      spans,
		spanStarts: make([]int, len(spans)),
		spanEnds:   make([]int, len(spans)),
	}
	for i, span := range spans {
		g.spanStarts[i] = span.Offset
		g.spanEnds[i] = span.End()
	}
	return g
}

// grow extends s if it is shorter than the lower bound: first left by half of the missing length,
// then right by what remains, then left again by whatever is still missing. Edges only land on
// word boundaries. Spans from the text that the growth fully covers are attached to s.
//
// It returns ErrNoTokensFound (leaving s unchanged) if the text has no words.
func (g *grower) grow(s *Snippet) error {
	if s.Len() >= g.bounds.Lower {
		return nil
	}
	if g.tokens.Empty() {
		return ErrNoTokensFound
	}

	left0, right0 := s.Offset(), s.End()
	lack := g.bounds.Upper - s.Len()

	n, err := g.growLeft(s, lack/2)
	if err != nil {
		return err
	}
	lack -= n

	n, err = g.growRight(s, lack)
	if err != nil {
		return err
	}
	lack -= n

	if _, err := g.growLeft(s, lack); err != nil {
		return err
	}

	if s.Offset() < left0 {
		if err := g.reattach(s, s.Offset(), left0); err != nil {
			return err
		}
	}
	if right0 < s.End() {
		if err := g.reattach(s, right0, s.End()); err != nil {
			return err
		}
	}
	return nil
}

// growLeft moves the left edge of s to the first word start at or after offset-budget, if that
// is before the current offset. It returns the number of characters prepended.
func (g *grower) growLeft(s *Snippet, budget int) (int, error) {
	starts := g.tokens.Starts
	i := token.LowerBound(starts, s.Offset()-budget)
	if i == len(starts) || starts[i] >= s.Offset() {
		return 0, nil
	}
	content := g.text[starts[i]:s.Offset()]
	if err := s.PushFront(content); err != nil {
		return 0, err
	}
	return len(content), nil
}

// growRight moves the right edge of s to the last word end at or before end+budget, if that is
// after the current end. It returns the number of characters appended.
func (g *grower) growRight(s *Snippet, budget int) (int, error) {
	ends := g.tokens.Ends
	end := s.End()
	i := token.LowerBound(ends, end+budget)
	if i == len(ends) || end+budget < ends[i] {
		i-- // the lower bound may be past the budget
	}
	if i < 0 || ends[i] <= end {
		return 0, nil
	}
	content := g.text[end:ends[i]]
	if err := s.PushBack(content); err != nil {
		return 0, err
	}
	return len(content), nil
}

// reattach attaches to s every span of the text lying fully within [from, to), in ascending
// order.
func (g *grower) reattach(s *Snippet, from, to int) error {
	i := token.LowerBound(g.spanStarts, from)
	if i == len(g.spanStarts) || g.spanStarts[i] >= to {
		return nil
	}
	j := token.LowerBound(g.spanEnds, to)
	if j == len(g.spanEnds) || to < g.spanEnds[j] {
		j--
	}
	for ; i <= j; i++ {
		if err := s.Attach(g.spans[i]); err != nil {
			return err
		}
	}
	return nil
}
