// Package snipper composes display snippets around the matches an upstream highlighter marked in
// a document field.
//
// A field's tagged text is scanned for highlighted spans, nearby spans are merged into a few
// excerpts bounded by a maximum length, and short excerpts are grown to word boundaries. Fields
// can alternatively be summarized by a single dynamic passage.
package snipper
