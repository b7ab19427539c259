package aocenv

import (
	"strings"

	"golang.org/x/net/html"
)

// articleText reduces a puzzle page to readable terminal text: the content
// of its <article> blocks with paragraphs separated by blank lines and
// code blocks kept verbatim. Pages without an article fall back to the
// text of the whole document.
func articleText(page string) string {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return strings.TrimSpace(page)
	}

	var articles []*html.Node
	var findArticles func(*html.Node)
	findArticles = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "article" {
			articles = append(articles, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			findArticles(c)
		}
	}
	findArticles(doc)

	var sb strings.Builder
	if len(articles) == 0 {
		renderText(&sb, doc)
	} else {
		for i, a := range articles {
			if i > 0 {
				sb.WriteString("\n\n")
			}
			renderText(&sb, a)
		}
	}
	return strings.TrimSpace(collapseBlankLines(sb.String())) + "\n"
}

// renderText walks a node, writing block elements on their own lines and
// inline content as-is.
func renderText(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		switch n.Data {
		case "script", "style":
			return
		case "h1", "h2", "h3":
			sb.WriteString("\n\n")
			renderChildren(sb, n)
			sb.WriteString("\n\n")
			return
		case "p", "pre":
			sb.WriteString("\n")
			renderChildren(sb, n)
			sb.WriteString("\n")
			return
		case "li":
			sb.WriteString("\n  - ")
			renderChildren(sb, n)
			return
		case "ul", "ol":
			renderChildren(sb, n)
			sb.WriteString("\n")
			return
		case "br":
			sb.WriteString("\n")
			return
		}
	}
	renderChildren(sb, n)
}

func renderChildren(sb *strings.Builder, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderText(sb, c)
	}
}

// collapseBlankLines squeezes runs of three or more newlines down to a
// single blank line.
func collapseBlankLines(s string) string {
	for strings.Contains(s, "\n\n\n") {
		s = strings.ReplaceAll(s, "\n\n\n", "\n\n")
	}
	return s
}
