package snipper

import (
	"io/ioutil"
	"log"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
	"github.com/sourcegraph/snipper/internal/snippet"
	"github.com/sourcegraph/snipper/internal/snippet/tag"
)

func testComposer(t *testing.T, lower, upper int) *Composer {
	t.Helper()
	conf := DefaultConfig()
	conf.LowerBound, conf.UpperBound = lower, upper
	c, err := NewComposer(conf)
	if err != nil {
		t.Fatal(err)
	}
	c.Log = log.New(ioutil.Discard, "", 0)
	return c
}

var ignoreRecordText = cmpopts.IgnoreUnexported(Record{})

func TestComposer_ComposeField(t *testing.T) {
	tests := map[string]struct {
		tagged       string
		lower, upper int
		want         *FieldSnippets
	}{
		"no highlights": {
			tagged: "hello world",
			lower:  8, upper: 11,
			want: &FieldSnippets{FieldLength: 11},
		},
		"grown to whole field": {
			tagged: "\x1fhello\x1f world",
			lower:  8, upper: 11,
			want: &FieldSnippets{
				FieldLength: 11,
				Snippets: []Record{
					{Offset: 0, Content: "hello world", Length: 11, Ranges: []Range{{Offset: 0, Length: 5}}},
				},
			},
		},
		"adjacent highlights are one range": {
			tagged: "\x1fcat\x1f\x1fdog\x1f",
			lower:  8, upper: 11,
			want: &FieldSnippets{
				FieldLength: 6,
				Snippets: []Record{
					{Offset: 0, Content: "catdog", Length: 6, Ranges: []Range{{Offset: 0, Length: 6}}},
				},
			},
		},
		"cut on both sides": {
			tagged: "one two \x1fthree\x1f four five six",
			lower:  5, upper: 8,
			want: &FieldSnippets{
				FieldLength: 27,
				Snippets: []Record{
					{Offset: 8, Content: "<sep />three<sep />", Length: 5, Ranges: []Range{{Offset: 8, Length: 5}}},
				},
			},
		},
		"upstream separators are not text": {
			tagged: "\x1e\x1fhello\x1f world\x1e",
			lower:  8, upper: 11,
			want: &FieldSnippets{
				FieldLength: 11,
				Snippets: []Record{
					{Offset: 0, Content: "hello world", Length: 11, Ranges: []Range{{Offset: 0, Length: 5}}},
				},
			},
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			c := testComposer(t, test.lower, test.upper)
			got, err := c.ComposeField(test.tagged, true)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, got, ignoreRecordText); diff != "" {
				t.Errorf("field snippets mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComposer_ComposeField_noBolding(t *testing.T) {
	c := testComposer(t, 8, 11)
	got, err := c.ComposeField("\x1fhello\x1f world", false)
	if err != nil {
		t.Fatal(err)
	}
	if want := (&FieldSnippets{FieldLength: 11}); !cmp.Equal(want, got, ignoreRecordText) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestComposer_ComposeField_unclosed(t *testing.T) {
	c := testComposer(t, 8, 11)
	if _, err := c.ComposeField("\x1fhello world", true); !errors.Is(err, snippet.ErrMalformedTagStream) {
		t.Errorf("got error %v, want %v", err, snippet.ErrMalformedTagStream)
	}
}

func TestComposer_ComposeField_customScanner(t *testing.T) {
	c := testComposer(t, 8, 11)
	c.Scanner = tag.Scanner{Highlight: '|', Separator: '~'}
	got, err := c.ComposeField("|hello| world~", true)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Snippets) != 1 {
		t.Fatalf("got %d snippets, want 1", len(got.Snippets))
	}
	if want := "hello world"; got.Snippets[0].Content != want {
		t.Errorf("got content %q, want %q", got.Snippets[0].Content, want)
	}
}

func TestNewComposer_invalid(t *testing.T) {
	conf := DefaultConfig()
	conf.UpperBound = conf.LowerBound
	if _, err := NewComposer(conf); err == nil {
		t.Error("got nil error, want non-nil")
	}
}
