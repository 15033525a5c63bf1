package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	// MaxTextLength is the maximum number of bytes of extracted text kept
	// before truncation is applied.
	MaxTextLength = 4000

	// TruncationMarker is appended to the extracted text when it exceeds
	// [MaxTextLength].
	TruncationMarker = "...\n[Content truncated due to length]"
)

// skippedElements are dropped together with their entire subtrees before any
// text is collected. They hold markup plumbing rather than page content.
const skippedElements = "script, style, footer, nav, aside"

// Text extracts readable plain text from HTML markup.
//
// The markup is parsed leniently, non-content subtrees are removed, and each
// remaining text node contributes one line. Lines are then flattened into a
// phrase-per-line stream: every line is trimmed and split on single spaces,
// empty phrases are discarded, and the survivors are rejoined with newlines.
// This is a deliberately lossy normalisation; original line and word
// boundaries are not preserved.
//
// Output longer than [MaxTextLength] bytes is cut at the nearest rune
// boundary at or below the limit and [TruncationMarker] is appended.
//
// Text never fails: unparseable input yields an empty string.
func Text(markup string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return ""
	}

	doc.Find(skippedElements).Remove()

	var nodes []string
	for _, root := range doc.Nodes {
		collectText(root, &nodes)
	}

	return truncate(flatten(nodes))
}

// collectText walks the node tree depth-first and appends the content of
// every text node to out.
func collectText(n *html.Node, out *[]string) {
	if n.Type == html.TextNode {
		*out = append(*out, n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, out)
	}
}

// flatten normalises the collected text nodes into the phrase-per-line form:
// no empty lines, no leading or trailing whitespace on any line.
func flatten(nodes []string) string {
	var phrases []string
	for _, node := range nodes {
		for _, line := range strings.Split(node, "\n") {
			for _, phrase := range strings.Split(strings.TrimSpace(line), " ") {
				if p := strings.TrimSpace(phrase); p != "" {
					phrases = append(phrases, p)
				}
			}
		}
	}
	return strings.Join(phrases, "\n")
}

// truncate enforces the [MaxTextLength] cap, backing off to a rune boundary
// so truncation never produces invalid UTF-8.
func truncate(text string) string {
	if len(text) <= MaxTextLength {
		return text
	}

	cut := MaxTextLength
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}

	return text[:cut] + TruncationMarker
}
