package grid

import "fmt"

// Page is the window selected by a start/length pair. Number is 1-based and
// Offset is always aligned to a page boundary.
type Page struct {
	Number int
	Size   int
	Offset int
}

// NewPage converts a zero-based record offset into the page that contains it:
// Number = start/length + 1. Lengths above maxSize (when positive) are capped.
func NewPage(start, length, maxSize int) (Page, error) {
	if length <= 0 {
		return Page{}, fmt.Errorf("%w: length must be greater than zero", ErrInvalidRequest)
	}
	if maxSize > 0 && length > maxSize {
		length = maxSize
	}
	if start < 0 {
		start = 0
	}
	n := start/length + 1
	return Page{Number: n, Size: length, Offset: (n - 1) * length}, nil
}
