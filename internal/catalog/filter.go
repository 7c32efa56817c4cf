package catalog

import (
	"math"
	"strings"
)

// RangeTag names a coarse inclusive bucket on a derived numeric field.
// RangeAny disables the filter.
type RangeTag string

const RangeAny RangeTag = "any"

type bucket struct {
	lo, hi float64
}

// Both endpoints are inclusive (lo <= v <= hi), so adjacent buckets share
// their boundary value. That overlap is long-established behavior; a book
// of exactly 100 MB belongs to both "1to100" and "100to200".
var sizeBuckets = map[RangeTag]bucket{
	"under1":   {0, 1},
	"1to100":   {1, 100},
	"100to200": {100, 200},
	"over200":  {200, math.Inf(1)},
}

var pageBuckets = map[RangeTag]bucket{
	"under100": {0, 100},
	"100to200": {100, 200},
	"200to500": {200, 500},
	"over500":  {500, math.Inf(1)},
}

// SizeRanges and PageRanges list the accepted bucket names in display
// order, for flag validation and help text.
var (
	SizeRanges = []RangeTag{"under1", "1to100", "100to200", "over200"}
	PageRanges = []RangeTag{"under100", "100to200", "200to500", "over500"}
)

// ParseRangeTag validates a user-supplied tag against a bucket list.
// Empty input means RangeAny.
func ParseRangeTag(s string, valid []RangeTag) (RangeTag, bool) {
	if s == "" || s == string(RangeAny) {
		return RangeAny, true
	}
	for _, t := range valid {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

func (b bucket) contains(v float64) bool {
	return v >= b.lo && v <= b.hi
}

// inRange applies one bucket filter to an optional value. A nil value is
// rejected by any active filter: absent data is excluded, never zero.
func inRange(v *float64, tag RangeTag, buckets map[RangeTag]bucket) bool {
	if tag == RangeAny || tag == "" {
		return true
	}
	if v == nil {
		return false
	}
	b, ok := buckets[tag]
	if !ok {
		return false
	}
	return b.contains(*v)
}

// keep decides whether a book survives the query's hard filters and, when
// search text is present, computes its composite score. Checks run in
// order and short-circuit: category, size bucket, pages bucket, score.
func (q Query) keep(b Book, isBookmarked IsBookmarkedFunc) (float64, bool) {
	switch q.Category {
	case "", CategoryAll:
		// no category restriction
	case CategoryBookmarked:
		if isBookmarked == nil || !isBookmarked(b) {
			return 0, false
		}
	default:
		if !strings.EqualFold(b.Category, q.Category) {
			return 0, false
		}
	}

	if !inRange(b.SizeMB, q.Size, sizeBuckets) {
		return 0, false
	}

	var pages *float64
	if b.PageCount != nil {
		p := float64(*b.PageCount)
		pages = &p
	}
	if !inRange(pages, q.Pages, pageBuckets) {
		return 0, false
	}

	score := BookScore(b, q.Search)
	if score <= 0 {
		return 0, false
	}
	return score, true
}
