package scrape

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dootMaster/hugging-face-blog-scraper/internal/store"
)

// postPrefix is the path prefix of individual blog posts on the listing page.
const postPrefix = "/blog/"

// ExtractListing collects post entries from the blog listing page. Anchors
// whose path starts with the post prefix become posts; entries with an empty
// title or link, tag-listing links, and posts whose title is not English are
// dropped. Duplicate links keep their first occurrence, in page order.
func ExtractListing(doc *goquery.Document, base *url.URL) []store.Post {
	var posts []store.Post

	doc.Find(`a[href^="` + postPrefix + `"]`).Each(func(_ int, sel *goquery.Selection) {
		href := sel.AttrOr("href", "")
		if href == "" {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		if strings.Contains(ref.Path, "/tag/") {
			return
		}

		// The English check runs on the raw title: Sanitize strips CJK
		// characters, which would make every title look English.
		raw := sel.Find("h4").First().Text()
		if strings.TrimSpace(raw) == "" {
			raw = sel.Find("h2").First().Text()
		}
		title := oneLine(raw)
		if title == "" || !isEnglishTitle(raw) {
			return
		}

		date := oneLine(sel.Find("time").First().Text())
		if date == "" {
			date = oneLine(sel.Find("time").First().AttrOr("datetime", ""))
		}

		posts = append(posts, store.Post{
			Title: title,
			Link:  base.ResolveReference(ref).String(),
			Date:  date,
		})
	})

	return dedupeByLink(posts)
}

// isEnglishTitle is a deliberately coarse filter: a title counts as English
// when it contains no characters from the CJK ranges used by the site's
// translated posts. It is not language detection and will pass other
// non-Latin scripts.
func isEnglishTitle(title string) bool {
	for _, r := range title {
		switch {
		case r >= 0x3040 && r <= 0x309F: // Hiragana
			return false
		case r >= 0x30A0 && r <= 0x30FF: // Katakana
			return false
		case r >= 0x4E00 && r <= 0x9FFF: // CJK Unified Ideographs
			return false
		case r >= 0xAC00 && r <= 0xD7AF: // Hangul Syllables
			return false
		}
	}
	return true
}

func dedupeByLink(posts []store.Post) []store.Post {
	seen := make(map[string]bool, len(posts))
	out := posts[:0]
	for _, p := range posts {
		if seen[p.Link] {
			continue
		}
		seen[p.Link] = true
		out = append(out, p)
	}
	return out
}
