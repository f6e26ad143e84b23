package scrape

import (
	"strings"
	"testing"
)

func TestExtractArticle(t *testing.T) {
	html := `<html><body>
		<h1>Intro to Transformers</h1>
		<time>Jan 2, 2026</time>
		<a rel="author" href="/sasha">Sasha Writer</a>
		<article class="blog-content">
			<p>  Hello   world  </p>
			<h2>Background</h2>
			<li>one</li>
			<pre><code>x = 1
y = 2</code></pre>
		</article>
	</body></html>`

	a := ExtractArticle(listingDoc(t, html))
	if a.Title != "Intro to Transformers" {
		t.Errorf("title: %q", a.Title)
	}
	if a.Date != "Jan 2, 2026" {
		t.Errorf("date: %q", a.Date)
	}
	if a.Author != "Sasha Writer" {
		t.Errorf("author: %q", a.Author)
	}

	want := []ContentBlock{
		{Paragraph, "Hello world"},
		{Heading2, "Background"},
		{ListItem, "one"},
		{Code, "x = 1\ny = 2"},
	}
	if len(a.Blocks) != len(want) {
		t.Fatalf("expected %d blocks, got %d: %+v", len(want), len(a.Blocks), a.Blocks)
	}
	for i, b := range want {
		if a.Blocks[i] != b {
			t.Errorf("block %d: got %+v, want %+v", i, a.Blocks[i], b)
		}
	}
}

func TestExtractArticleBlockTable(t *testing.T) {
	html := `<main>
		<h1>Title One</h1>
		<h3>Deep Heading</h3>
		<h4>Deeper Heading</h4>
		<p>A paragraph.</p>
	</main>`

	a := ExtractArticle(listingDoc(t, html))
	kinds := make([]BlockKind, len(a.Blocks))
	for i, b := range a.Blocks {
		kinds[i] = b.Kind
	}
	want := []BlockKind{Heading1, Heading3, Heading3, Paragraph}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d blocks, got %v", len(want), kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("block %d kind = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestExtractArticleSkipsEmptyBlocks(t *testing.T) {
	html := `<article><p>   </p><p></p><p>kept</p><li>
	</li></article>`
	a := ExtractArticle(listingDoc(t, html))
	if len(a.Blocks) != 1 || a.Blocks[0].Text != "kept" {
		t.Fatalf("empty blocks not skipped: %+v", a.Blocks)
	}
}

func TestExtractArticleMissingEverything(t *testing.T) {
	a := ExtractArticle(listingDoc(t, `<html><body><div>nothing structured</div></body></html>`))
	if a.Title != "" || a.Date != "" || a.Author != "" {
		t.Errorf("expected empty fields, got %+v", a)
	}
	if len(a.Blocks) != 0 {
		t.Errorf("expected no blocks, got %+v", a.Blocks)
	}
}

func TestExtractArticleContainerPriority(t *testing.T) {
	// Both a .blog-content and a main exist; the higher-priority container wins
	// and main's stray paragraph is ignored.
	html := `<html><body>
		<article class="blog-content"><p>inside body</p></article>
		<main><p>outside body</p></main>
	</body></html>`
	a := ExtractArticle(listingDoc(t, html))
	if len(a.Blocks) != 1 || a.Blocks[0].Text != "inside body" {
		t.Fatalf("container priority wrong: %+v", a.Blocks)
	}
}

func TestExtractArticleInlineCodeOutsidePre(t *testing.T) {
	html := `<article><p>before</p><code>inline()</code></article>`
	a := ExtractArticle(listingDoc(t, html))
	if len(a.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %+v", a.Blocks)
	}
	if a.Blocks[1].Kind != Code || a.Blocks[1].Text != "inline()" {
		t.Errorf("inline code block: %+v", a.Blocks[1])
	}
}

func TestExtractTags(t *testing.T) {
	html := `<html><head>
		<meta name="keywords" content="NLP, vision,  NLP ">
	</head><body>
		<a href="/blog/tag/transformers">Transformers</a>
		<a href="/blog/tag/nlp"> NLP </a>
	</body></html>`

	tags := ExtractTags(listingDoc(t, html))
	want := []string{"transformers", "nlp", "vision"}
	if len(tags) != len(want) {
		t.Fatalf("expected %v, got %v", want, tags)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("tag %d: got %q, want %q", i, tags[i], want[i])
		}
	}
}

func TestExtractTagsEmpty(t *testing.T) {
	tags := ExtractTags(listingDoc(t, `<html><body><p>no tags</p></body></html>`))
	if len(tags) != 0 {
		t.Errorf("expected no tags, got %v", tags)
	}
}

func TestRender(t *testing.T) {
	a := Article{
		Blocks: []ContentBlock{
			{Heading1, "Title"},
			{Paragraph, "Some paragraph text that is long enough to wrap across lines here"},
			{ListItem, "a list item"},
			{Code, "x = 1\ny = 2"},
		},
	}
	out := Render(a, 30)

	if !strings.Contains(out, "# Title") {
		t.Errorf("missing h1 prefix:\n%s", out)
	}
	if !strings.Contains(out, "  • a list item") {
		t.Errorf("missing bullet:\n%s", out)
	}
	if !strings.Contains(out, "    x = 1\n    y = 2") {
		t.Errorf("code not indented with preserved breaks:\n%s", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "  •") {
			continue // code and list lines have their own width rules
		}
		if len(line) > 30 {
			t.Errorf("line exceeds width: %q", line)
		}
	}
}

func TestRenderHeadingSpacing(t *testing.T) {
	a := Article{
		Blocks: []ContentBlock{
			{Paragraph, "first"},
			{Heading2, "Section"},
			{Paragraph, "second"},
		},
	}
	out := Render(a, 40)
	want := "first\n\n## Section\n\nsecond"
	if out != want {
		t.Errorf("got:\n%q\nwant:\n%q", out, want)
	}
}

func TestRenderEmptyArticle(t *testing.T) {
	if out := Render(Article{}, 80); out != "" {
		t.Errorf("empty article should render to empty string, got %q", out)
	}
}
