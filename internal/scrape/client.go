// Package scrape fetches the blog listing and article pages and extracts
// readable content from their markup. Scraping third-party markup is
// best-effort: missing elements degrade to empty fields, never errors.
package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// maxBodyBytes caps how much of a response we parse.
const maxBodyBytes = 5 * 1024 * 1024

type Client struct {
	http      *http.Client
	userAgent string
}

func NewClient(timeout time.Duration, userAgent string) *Client {
	return &Client{
		http:      &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// GetDocument fetches the URL and parses the response body as HTML.
func (c *Client) GetDocument(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: HTTP %d %s", url, resp.StatusCode, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", url, err)
	}
	return doc, nil
}

// FetchArticle retrieves and extracts a single article page. A fetch or
// parse failure is an error; structurally incomplete markup is not.
func (c *Client) FetchArticle(ctx context.Context, url string) (Article, error) {
	doc, err := c.GetDocument(ctx, url)
	if err != nil {
		return Article{}, err
	}
	article := ExtractArticle(doc)
	article.Tags = ExtractTags(doc)
	return article, nil
}
