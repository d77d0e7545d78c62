package snipper

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Field is a document field as produced by the upstream highlighter.
type Field struct {
	Name string `json:"name"`

	// Content is the field text, with highlight and separator marker characters.
	Content string `json:"content"`

	// Snip requests snippets composed around the highlighted matches.
	Snip bool `json:"snip"`

	// DynSnip requests a single dynamic passage for the query.
	DynSnip bool `json:"dynsnip"`
}

// Hit is a search result with its fields.
type Hit struct {
	ID     string  `json:"id"`
	Fields []Field `json:"fields"`
}

// HitResult holds the snippets and passages composed for a hit, keyed by field name.
type HitResult struct {
	ID       string                    `json:"id"`
	Snippets map[string]*FieldSnippets `json:"snippets,omitempty"`
	Passages map[string]string         `json:"passages,omitempty"`
}

// ComposeHit composes the requested snippets and passages of every field of hit.
//
// A field whose snippets cannot be composed (because of invalid spans or an unclosed highlight)
// is logged and reported with its length and no snippets; the other fields are unaffected.
func (c *Composer) ComposeHit(ctx context.Context, query string, bolding bool, hit Hit) (HitResult, error) {
	result := HitResult{ID: hit.ID}
	for _, f := range hit.Fields {
		if !f.Snip && !f.DynSnip {
			continue
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}

		plain := []rune(c.scanner().Strip(f.Content))
		if f.Snip {
			fs, err := c.composeField(f.Content, plain, bolding)
			if err != nil {
				c.logf("hit %q: field %q: %s", hit.ID, f.Name, err)
				fs = &FieldSnippets{FieldLength: len(plain)}
			}
			if result.Snippets == nil {
				result.Snippets = map[string]*FieldSnippets{}
			}
			result.Snippets[f.Name] = fs
		}
		if f.DynSnip {
			if result.Passages == nil {
				result.Passages = map[string]string{}
			}
			result.Passages[f.Name] = c.DynamicPassage(ctx, query, string(plain))
		}
	}
	return result, nil
}

// ComposeHits composes every hit, processing hits in parallel. The results are in the same order
// as hits.
func (c *Composer) ComposeHits(ctx context.Context, query string, bolding bool, hits []Hit) ([]HitResult, error) {
	results := make([]HitResult, len(hits))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, hit := range hits {
		i, hit := i, hit
		g.Go(func() error {
			result, err := c.ComposeHit(ctx, query, bolding, hit)
			if err != nil {
				return errors.WithMessagef(err, "hit %q", hit.ID)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
