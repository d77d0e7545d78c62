package snipper

import (
	"context"

	"github.com/sourcegraph/snipper/internal/snippet/token"
)

// PassageGenerator produces a single short passage of text for a free-text query, for example
// from a search index. It returns "" if it has no passage.
type PassageGenerator interface {
	Passage(ctx context.Context, query, text string) (string, error)
}

// DynamicPassage returns a short passage of the plain text for query. When the passage generator
// has none (or fails), it returns text if it fits within the upper bound, and otherwise its
// beginning cut at the last word end within the upper bound followed by the separator tag.
func (c *Composer) DynamicPassage(ctx context.Context, query, text string) string {
	if c.Passages != nil && query != "" {
		p, err := c.Passages.Passage(ctx, query, text)
		if err != nil {
			c.logf("dynamic passage for query %q: %s", query, err)
		} else if p != "" {
			return p
		}
	}
	return prefixPassage([]rune(text), c.Config.UpperBound, c.Config.Tags.Separator)
}

func prefixPassage(text []rune, upper int, separator string) string {
	if len(text) <= upper {
		return string(text)
	}

	right := upper
	if ends := token.Index(text).Ends; len(ends) > 0 {
		i := token.LowerBound(ends, upper)
		if i == len(ends) || upper < ends[i] {
			i-- // the lower bound may be past the upper bound
		}
		if i >= 0 && ends[i] < right {
			right = ends[i]
		}
	}

	return string(text[:right]) + separator
}
