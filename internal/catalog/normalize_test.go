package catalog_test

import (
	"reflect"
	"testing"

	"github.com/blackwell-systems/librarian/internal/catalog"
)

func sampleRecord() catalog.Record {
	return catalog.Record{
		"title":       "  Gitanjali ",
		"author":      " Rabindranath Tagore ",
		"category":    "poetry",
		"tags":        "classic, 1 MB , 80 pages,",
		"cover":       "covers/gitanjali.png",
		"pdfurl":      "https://example.com/gitanjali.pdf",
		"description": " Song offerings. ",
	}
}

func TestFromRecord_Normalizes(t *testing.T) {
	b, ok := catalog.FromRecord(sampleRecord())
	if !ok {
		t.Fatal("FromRecord rejected a valid record")
	}
	if b.Title != "Gitanjali" {
		t.Errorf("Title = %q, want trimmed %q", b.Title, "Gitanjali")
	}
	if b.Author != "Rabindranath Tagore" {
		t.Errorf("Author = %q, want trimmed", b.Author)
	}
	if b.Category != "Poetry" {
		t.Errorf("Category = %q, want title-cased %q", b.Category, "Poetry")
	}
	if b.Description != "Song offerings." {
		t.Errorf("Description = %q, want trimmed", b.Description)
	}
	wantTags := []string{"classic", "1 MB", "80 pages"}
	if !reflect.DeepEqual(b.Tags, wantTags) {
		t.Errorf("Tags = %v, want %v (trimmed, empties dropped, order kept)", b.Tags, wantTags)
	}
	if b.ID == "" {
		t.Error("expected a synthetic ID")
	}
}

func TestFromRecord_DropsIncompleteRows(t *testing.T) {
	for _, missing := range []string{"title", "author"} {
		r := sampleRecord()
		r[missing] = "   "
		if _, ok := catalog.FromRecord(r); ok {
			t.Errorf("record with blank %s should be dropped", missing)
		}
	}
}

func TestFromRecord_CategoryDefault(t *testing.T) {
	r := sampleRecord()
	r["category"] = ""
	b, ok := catalog.FromRecord(r)
	if !ok {
		t.Fatal("FromRecord rejected record")
	}
	if b.Category != "Other" {
		t.Errorf("Category = %q, want default %q", b.Category, "Other")
	}
}

func TestFromRecord_TitleCasesMultiWordCategory(t *testing.T) {
	r := sampleRecord()
	r["category"] = "sCIENCE fICTION"
	b, _ := catalog.FromRecord(r)
	if b.Category != "Science Fiction" {
		t.Errorf("Category = %q, want %q", b.Category, "Science Fiction")
	}
}

func TestFromRecord_DerivedNumerics(t *testing.T) {
	b, _ := catalog.FromRecord(sampleRecord())
	if b.SizeMB == nil || *b.SizeMB != 1 {
		t.Errorf("SizeMB = %v, want 1", b.SizeMB)
	}
	if b.PageCount == nil || *b.PageCount != 80 {
		t.Errorf("PageCount = %v, want 80", b.PageCount)
	}
}

func TestFromRecord_NumericVariants(t *testing.T) {
	cases := []struct {
		tags      string
		wantSize  *float64
		wantPages *int
	}{
		{"150mb, 700 Pages", fp(150), ip(700)},
		{"2.5 MB, 1 page", fp(2.5), ip(1)},
		{"abc MB, xyz pages", nil, nil}, // malformed numbers stay nil
		{"classic, fiction", nil, nil},  // no unit tokens at all
		{"10 MB, 20 MB", fp(10), nil},   // first match wins
	}
	for _, c := range cases {
		r := sampleRecord()
		r["tags"] = c.tags
		b, _ := catalog.FromRecord(r)
		if !eqF(b.SizeMB, c.wantSize) {
			t.Errorf("tags %q: SizeMB = %v, want %v", c.tags, deref(b.SizeMB), deref(c.wantSize))
		}
		if !eqI(b.PageCount, c.wantPages) {
			t.Errorf("tags %q: PageCount = %v, want %v", c.tags, b.PageCount, c.wantPages)
		}
	}
}

func TestFromRecord_CoverPath(t *testing.T) {
	r := sampleRecord()

	r["cover"] = ""
	b, _ := catalog.FromRecord(r)
	if b.Cover != catalog.PlaceholderCover {
		t.Errorf("empty cover = %q, want placeholder", b.Cover)
	}

	r["cover"] = "https://cdn.example.com/c.jpg"
	b, _ = catalog.FromRecord(r)
	if b.Cover != "https://cdn.example.com/c.jpg" {
		t.Errorf("full URL should pass through, got %q", b.Cover)
	}

	r["cover"] = "img/local.png"
	b, _ = catalog.FromRecord(r)
	if b.Cover != "img/local.png" {
		t.Errorf("relative path should pass through, got %q", b.Cover)
	}
}

func TestFromRecord_DocumentURLPrecedence(t *testing.T) {
	r := sampleRecord()
	r["pdfurl"] = "https://example.com/a.pdf"
	r["pdf"] = "https://example.com/b.pdf"
	r["url"] = "https://example.com/cover.jpg"

	b, _ := catalog.FromRecord(r)
	if b.DocumentURL != "https://example.com/a.pdf" {
		t.Errorf("DocumentURL = %q, want pdfurl to win", b.DocumentURL)
	}

	r["pdfurl"] = ""
	b, _ = catalog.FromRecord(r)
	if b.DocumentURL != "https://example.com/b.pdf" {
		t.Errorf("DocumentURL = %q, want pdf fallback", b.DocumentURL)
	}

	r["pdf"] = ""
	b, _ = catalog.FromRecord(r)
	if b.DocumentURL != "" {
		t.Errorf("DocumentURL = %q, want empty — generic url field must be ignored", b.DocumentURL)
	}
}

func TestFromRecords_CountsDropped(t *testing.T) {
	rows := []catalog.Record{
		sampleRecord(),
		{"title": "No Author"},
		{"author": "No Title"},
	}
	books, dropped := catalog.FromRecords(rows)
	if len(books) != 1 {
		t.Errorf("kept %d books, want 1", len(books))
	}
	if dropped != 2 {
		t.Errorf("dropped = %d, want 2", dropped)
	}
}

func TestFromRecord_StableID(t *testing.T) {
	a, _ := catalog.FromRecord(sampleRecord())
	b, _ := catalog.FromRecord(sampleRecord())
	if a.ID != b.ID {
		t.Error("same record should produce the same ID")
	}

	r := sampleRecord()
	r["author"] = "Someone Else"
	c, _ := catalog.FromRecord(r)
	if c.ID == a.ID {
		t.Error("different author should produce a different ID")
	}
}

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

func eqF(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func eqI(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func deref(p *float64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
