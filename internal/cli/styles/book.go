package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/bookmark/internal/application/port"
	"github.com/bnema/bookmark/internal/domain/entity"
)

// PriceBadge renders a book price, or a muted badge when unknown.
func (t *Theme) PriceBadge(price string) string {
	if price == "" || price == entity.NotAvailable {
		return t.BadgeMuted.Render(entity.NotAvailable)
	}
	return t.Badge.Render("$" + price)
}

// BookLine renders a one-line wishlist entry.
func (t *Theme) BookLine(book entity.Book, selected bool) string {
	line := fmt.Sprintf("%s  %s  %s",
		t.ListItemTitle.Render(book.Title),
		t.ListItemDesc.Render(book.ISBN),
		t.PriceBadge(book.Price),
	)
	if selected {
		return t.ListItemSelected.Render("> " + line)
	}
	return t.ListItem.Render("  " + line)
}

// BookCard renders every attribute of a book in a bordered box.
func (t *Theme) BookCard(book entity.Book) string {
	var b strings.Builder
	b.WriteString(t.BoxHeader.Render(book.Title))
	b.WriteString("\n")
	rows := [][2]string{
		{"ISBN", book.ISBN},
		{"Price", book.Price},
		{"Condition", book.Condition},
		{"Medium", book.Medium},
		{"Link", book.Link},
		{"Image", book.Image},
	}
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		fmt.Fprintf(&b, "%s %s\n", t.Subtle.Render(fmt.Sprintf("%-10s", row[0])), t.Normal.Render(row[1]))
	}
	return t.Box.Render(strings.TrimRight(b.String(), "\n"))
}

// RecommendationLine renders a numbered recommendation.
func (t *Theme) RecommendationLine(row port.RecommendationRow) string {
	return fmt.Sprintf("%s %s\n   %s",
		t.Highlight.Render(fmt.Sprintf("%d.", row.Ordinal)),
		t.Title.Render(row.Title),
		t.Subtle.Render(row.Summary),
	)
}
