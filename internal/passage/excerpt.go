package passage

import "unicode"

const breakChars = ".\n"

// excerpt returns the bounds of a window of text around [start, end) that extends up to maxChars/2
// characters on each side, cut at sentence breaks where possible and without surrounding spaces.
func excerpt(text []rune, start, end, maxChars int) (int, int) {
	origStart := start
	origEnd := end

	start -= maxChars / 2
	if start < 0 {
		start = 0
	}

	end += maxChars / 2
	if end > len(text) {
		end = len(text)
	}

	if index := indexAny(text[start:origStart], breakChars); index != -1 {
		start += index + 1
		end += index
		if end > len(text) {
			end = len(text)
		}
	}

	if index := lastIndexAny(text[origEnd:end], breakChars); index != -1 {
		end = origEnd + index + 1
	}

	for start < origStart && unicode.IsSpace(text[start]) {
		start++
	}
	for end > origEnd && unicode.IsSpace(text[end-1]) {
		end--
	}
	return start, end
}

func indexAny(s []rune, chars string) int {
	for i, r := range s {
		if containsRune(chars, r) {
			return i
		}
	}
	return -1
}

func lastIndexAny(s []rune, chars string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if containsRune(chars, s[i]) {
			return i
		}
	}
	return -1
}

func containsRune(chars string, r rune) bool {
	for _, c := range chars {
		if c == r {
			return true
		}
	}
	return false
}
