package catalog

// Book is one normalized entry in the library catalog. Immutable once
// constructed for a given feed load.
type Book struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Author      string   `yaml:"author" json:"author"`
	Category    string   `yaml:"category" json:"category"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Details     string   `yaml:"details,omitempty" json:"details,omitempty"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Cover       string   `yaml:"cover,omitempty" json:"cover,omitempty"`
	DocumentURL string   `yaml:"document_url,omitempty" json:"document_url,omitempty"`

	// Derived from tag tokens at normalization time. Nil means the tag
	// carried no such token — never zero.
	SizeMB    *float64 `yaml:"size_mb,omitempty" json:"size_mb,omitempty"`
	PageCount *int     `yaml:"page_count,omitempty" json:"page_count,omitempty"`
}

// SortKey selects the ordering of query results.
type SortKey string

const (
	SortRelevance SortKey = "relevance"
	SortTitle     SortKey = "title"
	SortAuthor    SortKey = "author"
	SortCategory  SortKey = "category"
	SortSizeAsc   SortKey = "sizeAsc"
	SortSizeDesc  SortKey = "sizeDesc"
	SortPagesAsc  SortKey = "pagesAsc"
	SortPagesDesc SortKey = "pagesDesc"
)

// SortKeys lists every accepted sort key, for flag validation and help text.
var SortKeys = []SortKey{
	SortRelevance, SortTitle, SortAuthor, SortCategory,
	SortSizeAsc, SortSizeDesc, SortPagesAsc, SortPagesDesc,
}

// ParseSortKey validates a user-supplied sort key. An empty string means
// the default (relevance).
func ParseSortKey(s string) (SortKey, bool) {
	if s == "" {
		return SortRelevance, true
	}
	for _, k := range SortKeys {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Special category selectors understood by the filter, alongside plain
// category names.
const (
	CategoryAll        = "all"
	CategoryBookmarked = "bookmarked"
)

// Query holds the parameters for one evaluation pass. Build a fresh value
// per interaction; the engine keeps no state between calls.
type Query struct {
	Search   string
	Category string // CategoryAll, CategoryBookmarked, or a category name
	Size     RangeTag
	Pages    RangeTag
	Sort     SortKey
}

// Result pairs a surviving book with its relevance score.
type Result struct {
	Book  Book
	Score float64
}

// IsBookmarkedFunc reports bookmark membership. The bookmark set is owned
// by the caller; the engine only tests membership.
type IsBookmarkedFunc func(Book) bool
