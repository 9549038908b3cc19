package wordsource

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// LoadHTML parses an HTML document and returns the words of its text
// content. Content of script and style elements is skipped.
func LoadHTML(input io.Reader) ([]string, error) {
	doc, err := html.Parse(input)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	collectText(doc, &b)
	words := Words(strings.NewReader(b.String()))
	tracer().Debugf("wordsource: %d words from HTML", len(words))
	return words, nil
}

// collectText appends the text nodes below n to b, separated by blanks. The
// blanks keep text of adjacent elements from melting into one word; they never
// produce words of their own.
func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
