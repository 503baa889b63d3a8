package ordering

import (
	"cmp"
	"unicode/utf8"
)

// Comparator is a three-way comparison: negative when a sorts before b, zero
// when they are equivalent, positive when a sorts after b.
type Comparator[T any] func(a, b T) int

// Reversed returns a comparator with the opposite order. Equivalent elements
// stay equivalent, so a stable sort still keeps their input order.
func (c Comparator[T]) Reversed() Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Then returns a comparator that falls back to next when c reports a tie.
func (c Comparator[T]) Then(next Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if r := c(a, b); r != 0 {
			return r
		}
		return next(a, b)
	}
}

// ByLength orders strings by their number of characters (runes), not bytes.
func ByLength(a, b string) int {
	return cmp.Compare(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
}

// Lexical orders strings by byte-wise comparison.
func Lexical(a, b string) int {
	return cmp.Compare(a, b)
}
