// Package parser extracts searchable plain text from pre-rendered summary
// markup. The producer usually sends both text and html; when text is
// missing the html is the only source for the free-text search index.
package parser

import (
	"strings"

	"golang.org/x/net/html"
)

// ExtractPlainText walks the html fragment and concatenates its text nodes,
// skipping script/style subtrees and collapsing runs of whitespace.
// A parse failure returns "" — search degrades, ingest does not fail.
func ExtractPlainText(htmlStr string) string {
	if strings.TrimSpace(htmlStr) == "" {
		return ""
	}

	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return ""
	}

	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(sb.String()), " ")
}
