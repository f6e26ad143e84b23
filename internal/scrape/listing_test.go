package scrape

import (
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func listingDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return doc
}

func baseURL(t *testing.T) *url.URL {
	t.Helper()
	u, err := url.Parse("https://huggingface.co")
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func TestExtractListing(t *testing.T) {
	html := `<html><body>
		<a href="/blog/post-a"><h4>Intro to Transformers</h4><time>Jan 2, 2026</time></a>
		<a href="/blog/post-b"><h4>Quantization Deep Dive</h4><time datetime="2026-01-05"></time></a>
		<a href="/pricing">Pricing</a>
	</body></html>`

	posts := ExtractListing(listingDoc(t, html), baseURL(t))
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d: %+v", len(posts), posts)
	}
	if posts[0].Title != "Intro to Transformers" {
		t.Errorf("title: got %q", posts[0].Title)
	}
	if posts[0].Link != "https://huggingface.co/blog/post-a" {
		t.Errorf("link not resolved against base: %q", posts[0].Link)
	}
	if posts[0].Date != "Jan 2, 2026" {
		t.Errorf("date: got %q", posts[0].Date)
	}
	if posts[1].Date != "2026-01-05" {
		t.Errorf("datetime fallback: got %q", posts[1].Date)
	}
}

func TestExtractListingExcludesCJK(t *testing.T) {
	html := `<html><body>
		<a href="/blog/post-a"><h4>Intro to Transformers</h4></a>
		<a href="/blog/post-b"><h4>` + "変換器入門" + `</h4></a>
	</body></html>`

	posts := ExtractListing(listingDoc(t, html), baseURL(t))
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	if posts[0].Link != "https://huggingface.co/blog/post-a" {
		t.Errorf("wrong post survived: %q", posts[0].Link)
	}
}

func TestExtractListingExcludesTagPages(t *testing.T) {
	html := `<html><body>
		<a href="/blog/tag/nlp"><h4>NLP</h4></a>
		<a href="/blog/post-a"><h4>Real Post</h4></a>
	</body></html>`

	posts := ExtractListing(listingDoc(t, html), baseURL(t))
	if len(posts) != 1 || posts[0].Title != "Real Post" {
		t.Fatalf("tag page not excluded: %+v", posts)
	}
}

func TestExtractListingExcludesEmptyTitle(t *testing.T) {
	html := `<html><body>
		<a href="/blog/post-a"><h4>   </h4></a>
		<a href="/blog/post-b"></a>
	</body></html>`

	posts := ExtractListing(listingDoc(t, html), baseURL(t))
	if len(posts) != 0 {
		t.Fatalf("expected no posts, got %+v", posts)
	}
}

func TestExtractListingDedupe(t *testing.T) {
	html := `<html><body>
		<a href="/blog/post-a"><h4>First Occurrence</h4></a>
		<a href="/blog/post-b"><h4>Other Post</h4></a>
		<a href="/blog/post-a"><h4>Second Occurrence</h4></a>
	</body></html>`

	posts := ExtractListing(listingDoc(t, html), baseURL(t))
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts after dedupe, got %d", len(posts))
	}
	if posts[0].Title != "First Occurrence" {
		t.Errorf("dedupe must keep the first occurrence, got %q", posts[0].Title)
	}
	if posts[1].Title != "Other Post" {
		t.Errorf("order not preserved: %+v", posts)
	}
}

func TestExtractListingH2Fallback(t *testing.T) {
	html := `<a href="/blog/post-a"><h2>Fallback Title</h2></a>`
	posts := ExtractListing(listingDoc(t, html), baseURL(t))
	if len(posts) != 1 || posts[0].Title != "Fallback Title" {
		t.Fatalf("h2 fallback failed: %+v", posts)
	}
}

func TestIsEnglishTitle(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"Intro to Transformers", true},
		{"", true},
		{"Café résumé", true},        // Latin accents pass
		{"Привет", true}, // Cyrillic passes: the filter is narrow
		{"変換器", false},                  // Japanese kanji
		{"こんにちは", false},      // Hiragana
		{"カタカナ", false},            // Katakana
		{"한국어", false},                  // Hangul
		{"Mixed 中文 title", false},
	}
	for _, tt := range tests {
		if got := isEnglishTitle(tt.title); got != tt.want {
			t.Errorf("isEnglishTitle(%q) = %v, want %v", tt.title, got, tt.want)
		}
	}
}
