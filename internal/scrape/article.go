package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dootMaster/hugging-face-blog-scraper/internal/textutil"
)

type BlockKind int

const (
	Heading1 BlockKind = iota
	Heading2
	Heading3
	Paragraph
	ListItem
	Code
	Generic
)

// ContentBlock is one semantically-tagged unit of article text, in document
// order. Whitespace-only blocks are never produced.
type ContentBlock struct {
	Kind BlockKind
	Text string
}

// Article is the extracted form of a single post page. It is built on demand
// when a post is opened and never persisted.
type Article struct {
	Title  string
	Date   string
	Author string
	Tags   []string
	Blocks []ContentBlock
}

// bodySelectors are the candidate article-body containers, tried in order;
// the first one present in the page wins.
var bodySelectors = []string{
	"article .blog-content",
	".blog-content",
	"article",
	"main",
}

var authorSelectors = []string{
	`a[rel="author"]`,
	".author a",
	"a.author",
	".contributor a",
}

// ExtractArticle pulls the title, date, author and content blocks out of an
// article page. Absent elements yield empty fields; this never fails.
func ExtractArticle(doc *goquery.Document) Article {
	a := Article{
		Title: oneLine(doc.Find("h1").First().Text()),
		Date:  oneLine(doc.Find("time").First().Text()),
	}
	for _, sel := range authorSelectors {
		if author := oneLine(doc.Find(sel).First().Text()); author != "" {
			a.Author = author
			break
		}
	}

	body := doc.Selection
	for _, sel := range bodySelectors {
		if found := doc.Find(sel).First(); found.Length() > 0 {
			body = found
			break
		}
	}

	body.Find("h1, h2, h3, h4, p, li, pre, code").Each(func(_ int, sel *goquery.Selection) {
		tag := goquery.NodeName(sel)

		// A code element inside pre is already covered by the pre block.
		if tag == "code" && sel.ParentsFiltered("pre").Length() > 0 {
			return
		}

		var block ContentBlock
		switch tag {
		case "h1":
			block = ContentBlock{Heading1, oneLine(sel.Text())}
		case "h2":
			block = ContentBlock{Heading2, oneLine(sel.Text())}
		case "h3", "h4":
			block = ContentBlock{Heading3, oneLine(sel.Text())}
		case "p":
			block = ContentBlock{Paragraph, oneLine(sel.Text())}
		case "li":
			block = ContentBlock{ListItem, oneLine(sel.Text())}
		case "pre", "code":
			// Keep original line breaks; code is never re-flowed.
			block = ContentBlock{Code, strings.Trim(textutil.Sanitize(sel.Text()), "\n")}
		default:
			block = ContentBlock{Generic, oneLine(sel.Text())}
		}

		if strings.TrimSpace(block.Text) == "" {
			return
		}
		a.Blocks = append(a.Blocks, block)
	})

	return a
}

// ExtractTags scans for tag links and keyword metadata. Best-effort only:
// article viewing never depends on it, and failure yields no tags.
func ExtractTags(doc *goquery.Document) []string {
	seen := make(map[string]bool)
	var tags []string
	add := func(raw string) {
		tag := strings.ToLower(strings.TrimSpace(textutil.Sanitize(raw)))
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	doc.Find(`a[href*="/tag/"]`).Each(func(_ int, sel *goquery.Selection) {
		add(sel.Text())
	})
	if kw, ok := doc.Find(`meta[name="keywords"]`).Attr("content"); ok {
		for _, part := range strings.Split(kw, ",") {
			add(part)
		}
	}
	return tags
}

// oneLine sanitizes and collapses text to a single line.
func oneLine(s string) string {
	return strings.Join(strings.Fields(textutil.Sanitize(s)), " ")
}
