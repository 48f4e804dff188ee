package entity

import "strings"

// NotAvailable marks an optional book attribute the page did not expose.
const NotAvailable = "N/A"

// Book is a textbook offer as rendered on a book detail page.
// ISBN is the identity key; two books with the same ISBN are the same wishlist entry.
type Book struct {
	Title     string `json:"title"`
	ISBN      string `json:"isbn"`
	Price     string `json:"price"` // decimal string, no currency symbol
	Link      string `json:"link"`
	Image     string `json:"image"`
	Condition string `json:"condition,omitempty"`
	Medium    string `json:"medium,omitempty"`
}

// Valid reports whether the book carries the fields required to be stored.
func (b Book) Valid() bool {
	return strings.TrimSpace(b.Title) != "" && strings.TrimSpace(b.ISBN) != ""
}

// SameAs reports whether both books share the same identity key.
func (b Book) SameAs(other Book) bool {
	return b.ISBN == other.ISBN
}

// Recommendation is a related title suggested by the recommendation backend.
// It is never persisted.
type Recommendation struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// ToggleResult reports the outcome of a wishlist toggle.
type ToggleResult struct {
	Added bool
}

// Removed reports whether the toggle removed the book.
func (r ToggleResult) Removed() bool {
	return !r.Added
}
