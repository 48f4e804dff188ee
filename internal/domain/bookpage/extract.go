// Package bookpage turns the visible facts of a rendered book detail page into a Book.
package bookpage

import (
	"strings"

	"github.com/bnema/bookmark/internal/domain/entity"
)

// HeadingSeparator splits "<title> - <isbn>" in the page heading.
const HeadingSeparator = " - "

const (
	isbnLabel      = "ISBN:"
	conditionLabel = "Condition:"
	mediumLabel    = "Medium:"
)

// Facts is the subset of a rendered book page the extractor reads.
// Callers assemble it from whatever surface renders the page.
type Facts struct {
	// Heading is the book heading text, usually "<title> - <isbn>".
	Heading string
	// Details holds secondary labelled lines such as "ISBN: 978..." or "Condition: Used".
	Details []string
	// PriceText is the displayed price, e.g. "$12.34".
	PriceText string
	// Link is the outbound store URL.
	Link string
	// Image is the cover image URL.
	Image string
}

// Extract returns the book described by facts, or nil when the page is not a
// book detail page (no title) or no ISBN can be resolved.
func Extract(facts Facts) *entity.Book {
	heading := strings.TrimSpace(facts.Heading)
	if heading == "" {
		return nil
	}

	title, isbn := splitHeading(heading)
	condition, medium := "", ""

	for _, line := range facts.Details {
		line = strings.TrimSpace(line)
		switch {
		case hasLabel(line, isbnLabel):
			if isbn == "" {
				isbn = stripLabel(line, isbnLabel)
			}
		case hasLabel(line, conditionLabel):
			condition = stripLabel(line, conditionLabel)
		case hasLabel(line, mediumLabel):
			medium = stripLabel(line, mediumLabel)
		}
	}

	if title == "" || isbn == "" {
		return nil
	}

	return &entity.Book{
		Title:     title,
		ISBN:      isbn,
		Price:     NormalizePrice(facts.PriceText),
		Link:      strings.TrimSpace(facts.Link),
		Image:     strings.TrimSpace(facts.Image),
		Condition: orNotAvailable(condition),
		Medium:    orNotAvailable(medium),
	}
}

// NormalizePrice removes the currency symbol and surrounding whitespace.
func NormalizePrice(price string) string {
	price = strings.TrimSpace(price)
	price = strings.Replace(price, "$", "", 1)
	return strings.TrimSpace(price)
}

func splitHeading(heading string) (title, isbn string) {
	// Titles may contain the separator themselves; the isbn is always last.
	idx := strings.LastIndex(heading, HeadingSeparator)
	if idx < 0 {
		return strings.TrimSpace(heading), ""
	}
	title = strings.TrimSpace(heading[:idx])
	isbn = stripLabel(strings.TrimSpace(heading[idx+len(HeadingSeparator):]), isbnLabel)
	return title, isbn
}

func hasLabel(line, label string) bool {
	return strings.HasPrefix(strings.ToLower(line), strings.ToLower(label))
}

func stripLabel(line, label string) string {
	if !hasLabel(line, label) {
		return strings.TrimSpace(line)
	}
	return strings.TrimSpace(line[len(label):])
}

func orNotAvailable(v string) string {
	if v == "" {
		return entity.NotAvailable
	}
	return v
}
