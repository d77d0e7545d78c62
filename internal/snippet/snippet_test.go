package snippet

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

// view is a comparable rendering of a snippet.
type view struct {
	Offset  int
	Content string
	Spans   []Span
}

func views(snippets []*Snippet) []view {
	var v []view
	for _, s := range snippets {
		v = append(v, view{Offset: s.Offset(), Content: s.Content(), Spans: s.Spans()})
	}
	return v
}

func TestNew(t *testing.T) {
	t.Run("nil content", func(t *testing.T) {
		if _, err := New(0, nil); !errors.Is(err, ErrInvalidContent) {
			t.Errorf("got error %v, want %v", err, ErrInvalidContent)
		}
	})
	t.Run("negative offset", func(t *testing.T) {
		if _, err := New(-1, []rune("a")); !errors.Is(err, ErrInvalidContent) {
			t.Errorf("got error %v, want %v", err, ErrInvalidContent)
		}
	})
	t.Run("empty content", func(t *testing.T) {
		s, err := New(3, []rune{})
		if err != nil {
			t.Fatal(err)
		}
		if s.Len() != 0 || s.End() != 3 {
			t.Errorf("got len %d end %d, want 0 and 3", s.Len(), s.End())
		}
	})
	t.Run("content is copied", func(t *testing.T) {
		text := []rune("hello world")
		s, err := New(0, text[:5])
		if err != nil {
			t.Fatal(err)
		}
		if err := s.PushBack([]rune("!!")); err != nil {
			t.Fatal(err)
		}
		if got, want := string(text), "hello world"; got != want {
			t.Errorf("text modified: got %q, want %q", got, want)
		}
		if got, want := s.Content(), "hello!!"; got != want {
			t.Errorf("got content %q, want %q", got, want)
		}
	})
}

func TestSnippet_Push(t *testing.T) {
	s, err := New(4, []rune("two"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.PushFront([]rune("one ")); err != nil {
		t.Fatal(err)
	}
	if err := s.PushBack([]rune(" three")); err != nil {
		t.Fatal(err)
	}
	if got, want := (view{s.Offset(), s.Content(), s.Spans()}), (view{Offset: 0, Content: "one two three"}); !cmp.Equal(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if s.Len() != 13 || s.End() != 13 {
		t.Errorf("got len %d end %d, want 13 and 13", s.Len(), s.End())
	}

	tests := map[string]func() error{
		"nil front":         func() error { return s.PushFront(nil) },
		"nil back":          func() error { return s.PushBack(nil) },
		"front before text": func() error { return s.PushFront([]rune("x")) },
	}
	for name, push := range tests {
		t.Run(name, func(t *testing.T) {
			if err := push(); !errors.Is(err, ErrInvalidContent) {
				t.Errorf("got error %v, want %v", err, ErrInvalidContent)
			}
			if got, want := s.Content(), "one two three"; got != want {
				t.Errorf("content changed on error: got %q, want %q", got, want)
			}
		})
	}
}

func TestSnippet_Attach(t *testing.T) {
	newSnippet := func(t *testing.T) *Snippet {
		t.Helper()
		s, err := New(2, []rune("abcdef"))
		if err != nil {
			t.Fatal(err)
		}
		return s
	}

	t.Run("invalid", func(t *testing.T) {
		tests := map[string]Span{
			"unset length":       {Offset: 3},
			"negative length":    {Offset: 3, Length: -2},
			"starts before":      {Offset: 1, Length: 2},
			"ends after":         {Offset: 6, Length: 3},
			"entirely after":     {Offset: 10, Length: 1},
			"entirely before":    {Offset: 0, Length: 1},
			"touching right end": {Offset: 8, Length: 1},
		}
		for name, span := range tests {
			t.Run(name, func(t *testing.T) {
				s := newSnippet(t)
				if err := s.Attach(span); !errors.Is(err, ErrInvalidSpan) {
					t.Errorf("got error %v, want %v", err, ErrInvalidSpan)
				}
				if len(s.Spans()) != 0 {
					t.Errorf("got spans %v, want none", s.Spans())
				}
			})
		}
	})

	t.Run("keeps order", func(t *testing.T) {
		s := newSnippet(t)
		for _, span := range []Span{{6, 2}, {2, 1}, {4, 1}} {
			if err := s.Attach(span); err != nil {
				t.Fatal(err)
			}
		}
		want := []Span{{2, 1}, {4, 1}, {6, 2}}
		if diff := cmp.Diff(want, s.Spans()); diff != "" {
			t.Errorf("spans mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("whole snippet", func(t *testing.T) {
		s := newSnippet(t)
		if err := s.Attach(Span{Offset: 2, Length: 6}); err != nil {
			t.Errorf("got error %v, want nil", err)
		}
	})
}

func TestValidateSpans(t *testing.T) {
	tests := map[string]struct {
		spans   []Span
		wantErr bool
	}{
		"empty":    {spans: nil},
		"ok":       {spans: []Span{{0, 2}, {3, 1}, {4, 6}}},
		"adjacent": {spans: []Span{{0, 2}, {2, 2}}},
		"unset":    {spans: []Span{{0, 2}, {3, 0}}, wantErr: true},
		"overlap":  {spans: []Span{{0, 3}, {2, 2}}, wantErr: true},
		"unsorted": {spans: []Span{{5, 1}, {0, 1}}, wantErr: true},
		"past end": {spans: []Span{{8, 3}}, wantErr: true},
		"negative": {spans: []Span{{-1, 3}}, wantErr: true},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := validateSpans(test.spans, 10)
			if test.wantErr && !errors.Is(err, ErrInvalidSpan) {
				t.Errorf("got error %v, want %v", err, ErrInvalidSpan)
			}
			if !test.wantErr && err != nil {
				t.Errorf("got error %v, want nil", err)
			}
		})
	}
}
