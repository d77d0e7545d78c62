package passage

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// query is a parsed free-text query: its unique, case-insensitive terms.
type query struct {
	input string // the original query input string
	terms []*regexp.Regexp
}

func parseQuery(queryStr string) query {
	// Find unique term strings.
	termStrs := strings.Fields(queryStr)
	uniq := make(map[string]struct{}, len(termStrs))
	terms := make([]*regexp.Regexp, 0, len(termStrs))
	for _, termStr := range termStrs {
		termStr = strings.ToLower(termStr)
		if _, seen := uniq[termStr]; seen {
			continue
		}
		uniq[termStr] = struct{}{}
		terms = append(terms, regexp.MustCompile("(?i)"+regexp.QuoteMeta(termStr)))
	}
	return query{input: queryStr, terms: terms}
}

// match is a [start, end) range of character (not byte) offsets.
type match [2]int

// findAll returns all term matches in text, sorted by start and then end.
func (q query) findAll(text string) []match {
	var matches []match
	for _, term := range q.terms {
		for _, m := range term.FindAllStringIndex(text, -1) {
			start := utf8.RuneCountInString(text[:m[0]])
			matches = append(matches, match{start, start + utf8.RuneCountInString(text[m[0]:m[1]])})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i][0] < matches[j][0] || (matches[i][0] == matches[j][0] && matches[i][1] < matches[j][1])
	})
	return matches
}
