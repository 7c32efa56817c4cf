package feed_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blackwell-systems/librarian/internal/feed"
)

func TestFetch_LowercasesKeys(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"Title": "Gitanjali", "AUTHOR": "Tagore", "PdfURL": "https://e.com/g.pdf"},
			{"title": "Gita", "author": "Vyasa", "year": 1900}
		]`))
	}))
	defer srv.Close()

	rows, err := feed.New(srv.URL).Fetch()
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["title"] != "Gitanjali" {
		t.Errorf("title = %q, want lowercased key to hold value", rows[0]["title"])
	}
	if rows[0]["author"] != "Tagore" {
		t.Errorf("author = %q", rows[0]["author"])
	}
	if rows[0]["pdfurl"] != "https://e.com/g.pdf" {
		t.Errorf("pdfurl = %q", rows[0]["pdfurl"])
	}
	// Numeric cells flatten to their spreadsheet string.
	if rows[1]["year"] != "1900" {
		t.Errorf("year = %q, want %q", rows[1]["year"], "1900")
	}
}

func TestFetch_EmptyFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	rows, err := feed.New(srv.URL).Fetch()
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected 0 rows, got %d", len(rows))
	}
}

func TestFetch_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := feed.New(srv.URL).Fetch()
	if !errors.Is(err, feed.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestFetch_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	if _, err := feed.New(srv.URL).Fetch(); err == nil {
		t.Error("expected parse error, got nil")
	}
}

func TestFetch_NoURL(t *testing.T) {
	_, err := feed.New("").Fetch()
	if !errors.Is(err, feed.ErrNoFeedURL) {
		t.Errorf("err = %v, want ErrNoFeedURL", err)
	}
}
