package entity

// Wishlist is the set of saved books keyed by ISBN, in insertion order.
type Wishlist []Book

// IndexOf returns the position of the book with the given ISBN, or -1.
func (w Wishlist) IndexOf(isbn string) int {
	for i, b := range w {
		if b.ISBN == isbn {
			return i
		}
	}
	return -1
}

// Contains reports whether a book with the given ISBN is saved.
func (w Wishlist) Contains(isbn string) bool {
	return w.IndexOf(isbn) >= 0
}

// Toggle returns a new wishlist with the book removed when present,
// or appended when absent. The receiver is not modified.
func (w Wishlist) Toggle(book Book) (Wishlist, ToggleResult) {
	if idx := w.IndexOf(book.ISBN); idx >= 0 {
		return w.without(idx), ToggleResult{Added: false}
	}
	out := make(Wishlist, len(w), len(w)+1)
	copy(out, w)
	return append(out, book), ToggleResult{Added: true}
}

// Remove returns a new wishlist without the given ISBN and whether anything was removed.
func (w Wishlist) Remove(isbn string) (Wishlist, bool) {
	idx := w.IndexOf(isbn)
	if idx < 0 {
		return w, false
	}
	return w.without(idx), true
}

// Dedupe drops later entries whose ISBN already appeared.
func (w Wishlist) Dedupe() Wishlist {
	seen := make(map[string]struct{}, len(w))
	out := make(Wishlist, 0, len(w))
	for _, b := range w {
		if _, ok := seen[b.ISBN]; ok {
			continue
		}
		seen[b.ISBN] = struct{}{}
		out = append(out, b)
	}
	return out
}

func (w Wishlist) without(idx int) Wishlist {
	out := make(Wishlist, 0, len(w)-1)
	out = append(out, w[:idx]...)
	return append(out, w[idx+1:]...)
}
