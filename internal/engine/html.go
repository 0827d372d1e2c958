package engine

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ParseHTML builds a queryable document from raw markup.
// x/net/html recovers from malformed input the way browsers do, so an error
// here means the reader itself failed, not that the page was odd.
func ParseHTML(body string) (*goquery.Document, error) {
	root, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return goquery.NewDocumentFromNode(root), nil
}
