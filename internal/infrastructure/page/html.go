// Package page reads book details out of rendered book pages.
package page

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/bnema/bookmark/internal/domain/bookpage"
)

// Selectors of the rendered book detail page.
const (
	SelectorHeading = ".bookInfo h2"
	SelectorDetails = ".bookInfo p"
	SelectorPrice   = ".priceElement p"
	SelectorLink    = ".priceElement a"
	SelectorImage   = ".textbook-image"
)

// FactsFromHTML parses a page and collects its book facts. Relative links
// are resolved against base when it is not nil.
func FactsFromHTML(r io.Reader, base *url.URL) (bookpage.Facts, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return bookpage.Facts{}, fmt.Errorf("failed to parse page: %w", err)
	}
	return FactsFromSelection(doc.Selection, base), nil
}

// FactsFromSelection collects book facts below root.
func FactsFromSelection(root *goquery.Selection, base *url.URL) bookpage.Facts {
	facts := bookpage.Facts{
		Heading:   text(root.Find(SelectorHeading).First()),
		PriceText: text(root.Find(SelectorPrice).First()),
	}

	root.Find(SelectorDetails).Each(func(_ int, s *goquery.Selection) {
		if line := text(s); line != "" {
			facts.Details = append(facts.Details, line)
		}
	})

	if href, ok := root.Find(SelectorLink).First().Attr("href"); ok {
		facts.Link = resolve(base, href)
	}
	if src, ok := root.Find(SelectorImage).First().Attr("src"); ok {
		facts.Image = resolve(base, src)
	}
	return facts
}

func text(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

func resolve(base *url.URL, ref string) string {
	ref = strings.TrimSpace(ref)
	if base == nil || ref == "" {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(u).String()
}
