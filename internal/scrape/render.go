package scrape

import (
	"strings"

	"github.com/dootMaster/hugging-face-blog-scraper/internal/textutil"
)

// Render flows an article's content blocks into fixed-width plain text.
// Headings get a markdown-style prefix with a blank line on both sides,
// paragraphs wrap to width, list items wrap indented under a bullet, and
// code keeps its own line breaks indented four spaces.
func Render(a Article, width int) string {
	if width < 10 {
		width = 10
	}

	var lines []string
	blank := func() {
		if len(lines) > 0 && lines[len(lines)-1] != "" {
			lines = append(lines, "")
		}
	}
	push := func(s string) {
		lines = append(lines, strings.Split(s, "\n")...)
	}

	for _, b := range a.Blocks {
		switch b.Kind {
		case Heading1:
			blank()
			push(textutil.Wrap("# "+b.Text, width))
			lines = append(lines, "")
		case Heading2:
			blank()
			push(textutil.Wrap("## "+b.Text, width))
			lines = append(lines, "")
		case Heading3:
			blank()
			push(textutil.Wrap("### "+b.Text, width))
			lines = append(lines, "")
		case ListItem:
			wrapped := strings.Split(textutil.Wrap(b.Text, width-4), "\n")
			for i, l := range wrapped {
				if i == 0 {
					lines = append(lines, "  • "+l)
				} else {
					lines = append(lines, "    "+l)
				}
			}
		case Code:
			for _, l := range strings.Split(b.Text, "\n") {
				lines = append(lines, "    "+l)
			}
			lines = append(lines, "")
		default: // Paragraph, Generic
			push(textutil.Wrap(b.Text, width))
			lines = append(lines, "")
		}
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
