package feed

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/blackwell-systems/librarian/internal/catalog"
)

// Client fetches the library feed: a single GET returning an array of
// flat string-keyed records (spreadsheet rows exported as JSON).
type Client struct {
	url  string
	http *http.Client
}

// New creates a Client for the given feed URL.
func New(url string) *Client {
	return &Client{
		url: strings.TrimSpace(url),
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Fetch retrieves and decodes the feed. Record keys are lowercased here
// so mixed-case spreadsheet headers never leak downstream. There is no
// retry; callers fall back to the cached snapshot on failure.
func (c *Client) Fetch() ([]catalog.Record, error) {
	if c.url == "" {
		return nil, ErrNoFeedURL
	}

	resp, err := c.http.Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("fetching feed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var raw []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing feed JSON: %w", err)
	}

	rows := make([]catalog.Record, 0, len(raw))
	for _, m := range raw {
		rec := make(catalog.Record, len(m))
		for k, v := range m {
			rec[strings.ToLower(strings.TrimSpace(k))] = stringify(v)
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

// stringify flattens a decoded JSON value to the string the spreadsheet
// cell held. Feeds normally emit strings; numbers show up when a cell is
// purely numeric.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	case float64:
		// %g keeps integer-valued cells free of a trailing ".0".
		return fmt.Sprintf("%g", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func checkStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("feed error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}
