package entity

import "errors"

// ErrEmptyQuery is returned when a search query is blank after trimming.
var ErrEmptyQuery = errors.New("empty search query")

// ErrInvalidBook is returned when a book lacks a title or ISBN.
var ErrInvalidBook = errors.New("book requires title and isbn")
