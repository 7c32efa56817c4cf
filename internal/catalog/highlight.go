package catalog

import (
	"regexp"
	"strings"
)

// MatchSpans returns the [start, end) byte ranges of every
// case-insensitive occurrence of query in text. The query is escaped
// before compilation, so regex metacharacters ("C++", "(draft)") match
// literally. Empty queries produce no spans.
func MatchSpans(text, query string) [][2]int {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(query))
	if err != nil {
		// QuoteMeta output always compiles; treat failure as no match.
		return nil
	}
	idx := re.FindAllStringIndex(text, -1)
	spans := make([][2]int, len(idx))
	for i, m := range idx {
		spans[i] = [2]int{m[0], m[1]}
	}
	return spans
}

// Highlight wraps every occurrence of query in text using wrap, for
// terminal or HTML emphasis. Text outside the matches is untouched.
func Highlight(text, query string, wrap func(string) string) string {
	spans := MatchSpans(text, query)
	if len(spans) == 0 {
		return text
	}
	var b strings.Builder
	prev := 0
	for _, s := range spans {
		b.WriteString(text[prev:s[0]])
		b.WriteString(wrap(text[s[0]:s[1]]))
		prev = s[1]
	}
	b.WriteString(text[prev:])
	return b.String()
}
