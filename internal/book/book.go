package book

import "errors"

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")
