package snippet

import "github.com/pkg/errors"

var (
	// ErrInvalidSpan is returned when a span is unset (no length), lies outside the text or the
	// snippet it is attached to, or breaks the ascending, non-overlapping order of a span list.
	ErrInvalidSpan = errors.New("invalid span")

	// ErrInvalidContent is returned when nil content is pushed into a snippet or a push would
	// move the snippet before the start of the text.
	ErrInvalidContent = errors.New("invalid content")

	// ErrNoTokensFound is returned by growth when the text has no word characters. It is not
	// fatal: the snippet is kept at its current size.
	ErrNoTokensFound = errors.New("no tokens found")

	// ErrMalformedTagStream is returned when a highlight open marker is never closed. It signals
	// a defect in the upstream highlighter.
	ErrMalformedTagStream = errors.New("malformed tag stream")
)
