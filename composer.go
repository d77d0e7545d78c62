package snipper

import (
	"log"

	"github.com/pkg/errors"
	"github.com/sourcegraph/snipper/internal/passage"
	"github.com/sourcegraph/snipper/internal/snippet"
	"github.com/sourcegraph/snipper/internal/snippet/tag"
)

// Composer composes snippets and passages for document fields. A Composer holds no per-call state
// and may be used concurrently.
type Composer struct {
	Config Config

	// Scanner recognizes the highlighter's marker characters. The zero value means
	// tag.DefaultScanner.
	Scanner tag.Scanner

	// Passages produces dynamic passages. If nil, only the prefix fallback is used.
	Passages PassageGenerator

	// Log receives per-field failure reports. If nil, the standard logger is used.
	Log *log.Logger
}

// NewComposer returns a Composer for conf that uses the built-in dynamic passage generator.
func NewComposer(conf Config) (*Composer, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &Composer{
		Config: conf,
		Passages: passage.Generator{
			MaxLength: conf.PassageLength,
			Open:      conf.Tags.Open,
			Close:     conf.Tags.Close,
			Separator: conf.Tags.Separator,
		},
	}, nil
}

func (c *Composer) scanner() tag.Scanner {
	if c.Scanner == (tag.Scanner{}) {
		return tag.DefaultScanner
	}
	return c.Scanner
}

func (c *Composer) logf(format string, args ...interface{}) {
	if c.Log != nil {
		c.Log.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// ComposeField composes the snippets of a field from its tagged text. If bolding is false, the
// highlight markers are ignored and the field has no snippets.
func (c *Composer) ComposeField(tagged string, bolding bool) (*FieldSnippets, error) {
	return c.composeField(tagged, []rune(c.scanner().Strip(tagged)), bolding)
}

func (c *Composer) composeField(tagged string, plain []rune, bolding bool) (*FieldSnippets, error) {
	fs := &FieldSnippets{FieldLength: len(plain)}
	if !bolding {
		return fs, nil
	}

	spans, err := c.scanner().Scan(tagged)
	if err != nil {
		return nil, err
	}
	if len(spans) == 0 {
		return fs, nil
	}

	snippets, err := snippet.Compose(plain, spans, c.Config.bounds())
	if err != nil {
		return nil, errors.WithMessage(err, "composing snippets")
	}
	for _, s := range snippets {
		fs.Snippets = append(fs.Snippets, newRecord(s, len(plain), c.Config.Tags))
	}
	return fs, nil
}
