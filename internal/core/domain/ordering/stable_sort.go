package ordering

import (
	"fmt"
	"io"
	"slices"
)

// StableSort reorders items in place according to cmp. Elements that cmp
// reports as equal keep their relative order. A nil comparator leaves items
// untouched.
func StableSort[T any](items []T, cmp Comparator[T]) {
	if cmp == nil || len(items) < 2 {
		return
	}
	slices.SortStableFunc(items, cmp)
}

// SortByLength stably sorts values in place, shortest first.
func SortByLength(values []string) {
	StableSort(values, ByLength)
}

// PrintSortedByLength sorts values in place by length and writes them to w,
// one per line.
//
// Example:
//
//	values := []string{"abc", "ab", "a"}
//	_ = ordering.PrintSortedByLength(os.Stdout, values)
//	// a
//	// ab
//	// abc
func PrintSortedByLength(w io.Writer, values []string) error {
	SortByLength(values)
	for _, v := range values {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}
