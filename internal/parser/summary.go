package parser

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const htmlWhitespace = " \t\n\f\r"

// StripMarkup removes every tag from an HTML fragment and returns the text
// nodes concatenated in document order. Whitespace inside text nodes is kept
// as-is and character references are decoded, the same way a browser would
// display the fragment.
func StripMarkup(fragment string) (string, error) {
	if !strings.ContainsAny(fragment, "<&") {
		return fragment, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("failed to parse summary HTML: %w", err)
	}

	// The parser drops whitespace ahead of the first tag or text; restore it.
	lead := fragment[:len(fragment)-len(strings.TrimLeft(fragment, htmlWhitespace))]
	return lead + doc.Find("body").Text(), nil
}
