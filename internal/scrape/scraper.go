package scrape

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dootMaster/hugging-face-blog-scraper/internal/logging"
	"github.com/dootMaster/hugging-face-blog-scraper/internal/store"
)

// Scraper fetches the blog listing and persists the extracted posts.
type Scraper struct {
	client     *Client
	store      *store.Store
	base       *url.URL
	listingURL string
}

func NewScraper(client *Client, st *store.Store, baseURL, listingURL string) (*Scraper, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	return &Scraper{client: client, store: st, base: base, listingURL: listingURL}, nil
}

// Scrape fetches the listing page, extracts its posts and saves them as the
// active collection. Fetch and persistence errors propagate: there is no
// sensible partial listing to fall back to.
func (s *Scraper) Scrape(ctx context.Context) ([]store.Post, error) {
	doc, err := s.client.GetDocument(ctx, s.listingURL)
	if err != nil {
		return nil, err
	}

	posts := ExtractListing(doc, s.base)
	logging.Info("scraped listing", "url", s.listingURL, "posts", len(posts))

	if err := s.store.SaveActive(posts); err != nil {
		return nil, fmt.Errorf("saving listing: %w", err)
	}
	return posts, nil
}
