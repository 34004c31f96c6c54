package types

import (
	"fmt"
	"iter"
)

// ValidatePageSize returns ErrInvalidPageSize unless size is positive.
func ValidatePageSize(size int) error {
	if size < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidPageSize, size)
	}
	return nil
}

// Paginate splits records into consecutive pages of size records; the last
// page may be shorter. Pages are numbered from 1 and produced one at a time.
// The sequence holds no state, so ranging over it again starts from the
// first page. A size below one yields no pages.
func Paginate(records []*Record, size int) iter.Seq2[int, []*Record] {
	return func(yield func(int, []*Record) bool) {
		if size < 1 {
			return
		}
		for page, start := 1, 0; start < len(records); page, start = page+1, start+size {
			end := min(start+size, len(records))
			if !yield(page, records[start:end:end]) {
				return
			}
		}
	}
}
