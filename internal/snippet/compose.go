package snippet

import (
	"sort"

	"github.com/pkg/errors"
)

// Validate checks that 0 < Lower < Upper.
func (b Bounds) Validate() error {
	if b.Lower <= 0 || b.Lower >= b.Upper {
		return errors.Errorf("invalid snippet bounds: lower %d, upper %d (want 0 < lower < upper)", b.Lower, b.Upper)
	}
	return nil
}

// Compose returns the snippets of text around spans, sorted by offset. spans must be closed and in
// ascending, non-overlapping order.
//
// Snippets that cannot grow because text has no words are returned at their merged size.
func Compose(text []rune, spans []Span, bounds Bounds) ([]*Snippet, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	snippets, err := Merge(text, spans, bounds.Upper)
	if err != nil {
		return nil, err
	}
	if len(snippets) == 0 {
		return nil, nil
	}

	g := newGrower(text, spans, bounds)
	for _, s := range snippets {
		if err := g.grow(s); err != nil && !errors.Is(err, ErrNoTokensFound) {
			return nil, errors.WithMessagef(err, "growing snippet at offset %d", s.Offset())
		}
	}

	sort.SliceStable(snippets, func(i, j int) bool { return snippets[i].Offset() < snippets[j].Offset() })
	return snippets, nil
}
