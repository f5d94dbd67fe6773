// Package text turns extracted page text into analysis-ready tokens.
// It reflows the raw text of each page into fixed-width lines, then
// splits lines into lowercase word tokens.
package text

import (
	"strings"
	"unicode/utf8"
)

// DefaultWidth is the reflow width in runes. The analysis reproduces a
// fixed-width rendering of each page so that line structure is uniform
// across reports, whatever line breaks the PDFs carry internally.
const DefaultWidth = 100

// Line is one reflowed line tagged with the 1-based page it came from.
type Line struct {
	Page int
	Text string
}

// Reflow collapses the original line breaks of each page and re-wraps
// the words at word boundaries to at most width runes per line. Words
// longer than width are not split; each takes a line of its own. Pages
// are processed in order and their index (1-based) becomes the page tag;
// a page with no words contributes no lines.
func Reflow(pageTexts []string, width int) []Line {
	if width <= 0 {
		width = DefaultWidth
	}

	var lines []Line
	for i, pageText := range pageTexts {
		for _, wrapped := range wrap(pageText, width) {
			lines = append(lines, Line{Page: i + 1, Text: wrapped})
		}
	}
	return lines
}

// wrap greedily packs words into lines of at most width runes. Widths
// are counted in runes, not bytes, so multibyte characters don't shrink
// the effective line length.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var (
		lines  []string
		cur    strings.Builder
		curLen int
	)
	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		switch {
		case curLen == 0:
			cur.WriteString(word)
			curLen = wordLen
		case curLen+1+wordLen <= width:
			cur.WriteByte(' ')
			cur.WriteString(word)
			curLen += 1 + wordLen
		default:
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(word)
			curLen = wordLen
		}
	}
	lines = append(lines, cur.String())
	return lines
}
