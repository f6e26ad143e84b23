// Package textutil holds the plain-text cleanup helpers used when turning
// scraped markup into something a terminal can show.
package textutil

import "strings"

var typographic = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"–", "-",
	"—", "-",
	"…", "...",
	" ", " ",
)

// Sanitize normalizes scraped text to printable ASCII. Typographic quotes,
// dashes and ellipses become their ASCII equivalents; anything else outside
// printable ASCII (plus newline, tab, carriage return) is dropped. Runs of
// horizontal whitespace collapse to a single space and runs of blank lines
// collapse to at most two.
func Sanitize(s string) string {
	s = typographic.Replace(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 32 && r < 127) || r == '\n' || r == '\t' || r == '\r' {
			b.WriteRune(r)
		}
	}
	s = b.String()

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	s = strings.Join(lines, "\n")

	for strings.Contains(s, "\n\n\n") {
		s = strings.ReplaceAll(s, "\n\n\n", "\n\n")
	}

	return strings.TrimSpace(s)
}

// Wrap greedily word-wraps s to the given width. Words are never split: a
// single word longer than width keeps its own overflowing line.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
