package discord

import (
	"strings"

	"golang.org/x/net/html"
)

// responseText turns an error response body into a single readable line.
// Proxies in front of Discord answer with HTML pages, which are reduced to
// their text content.
func responseText(contentType string, body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return ""
	}
	if strings.Contains(strings.ToLower(contentType), "text/html") || strings.HasPrefix(text, "<") {
		text = htmlToText(text)
	}
	return strings.Join(strings.Fields(text), " ")
}

func htmlToText(input string) string {
	node, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return input
	}

	var builder strings.Builder
	extractText(node, &builder)
	return builder.String()
}

func extractText(node *html.Node, builder *strings.Builder) {
	switch node.Type {
	case html.TextNode:
		builder.WriteString(node.Data)
	case html.ElementNode:
		if node.Data == "script" || node.Data == "style" {
			return
		}
		if node.Data == "br" || node.Data == "p" || node.Data == "li" || node.Data == "title" {
			builder.WriteRune('\n')
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		extractText(child, builder)
	}

	if node.Type == html.ElementNode && (node.Data == "p" || node.Data == "li" || node.Data == "title") {
		builder.WriteRune('\n')
	}
}
