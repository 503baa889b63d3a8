// Package ordering provides a generic stable sort driven by a pluggable
// Comparator, and the string comparators used across the service.
//
// The ordering rule is always supplied by the caller:
//
//	ordering.StableSort(names, ordering.ByLength)
//	ordering.StableSort(names, ordering.Comparator[string](ordering.ByLength).Then(ordering.Lexical))
package ordering
