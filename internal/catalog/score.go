package catalog

import "strings"

// Score tiers. Exact beats prefix beats interior substring beats fuzzy;
// fuzzy tiers decrease strictly with edit distance and hit zero past
// maxFuzzyDistance, so unrelated strings never score.
const (
	scoreBaseline  = 1.0 // empty query: keep visible, don't distort sort
	scoreExact     = 100.0
	scorePrefix    = 80.0
	scoreSubstring = 40.0

	maxFuzzyDistance = 2
)

var fuzzyTiers = [maxFuzzyDistance + 1]float64{30, 20, 10}

// Composite weights. Title dominates so a title hit always outranks an
// incidental description hit.
const (
	weightTitle       = 4.0
	weightAuthor      = 2.0
	weightCategory    = 2.0
	weightTags        = 1.5
	weightDescription = 1.0
)

// FieldScore rates how well text matches query. Higher is better; zero
// means "does not match". Both operands are lowercased; the query is
// always treated as literal text, never a pattern.
func FieldScore(text, query string) float64 {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return scoreBaseline
	}
	text = strings.ToLower(text)

	if strings.HasPrefix(text, query) {
		if text == query {
			return scoreExact
		}
		return scorePrefix
	}
	if strings.Contains(text, query) {
		return scoreSubstring
	}
	return fuzzyScore(text, query)
}

// fuzzyScore compares each whitespace-delimited word of text against the
// whole query and keeps the best (smallest) edit distance.
func fuzzyScore(text, query string) float64 {
	best := -1
	for _, word := range strings.Fields(text) {
		d := Levenshtein(word, query)
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 || best > maxFuzzyDistance {
		return 0
	}
	return fuzzyTiers[best]
}

// BookScore is the weighted composite relevance of a book for a query.
// An empty query yields the neutral baseline for every book.
func BookScore(b Book, query string) float64 {
	if strings.TrimSpace(query) == "" {
		return scoreBaseline
	}

	s := FieldScore(b.Title, query)*weightTitle +
		FieldScore(b.Author, query)*weightAuthor +
		FieldScore(b.Category, query)*weightCategory +
		FieldScore(b.Description, query)*weightDescription

	// Tags score as the best single tag.
	var bestTag float64
	for _, tag := range b.Tags {
		if ts := FieldScore(tag, query); ts > bestTag {
			bestTag = ts
		}
	}
	s += bestTag * weightTags

	return s
}
