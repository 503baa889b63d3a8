// Package order provides the Order value type and the functions that create it.
//
// An Order is a reference plus an urgent and a common flag. It can be created
// through a default constructor, two named two-argument constructors, and two
// factories. Variant enumerates those paths so they can be selected at runtime
// through Build.
//
// MakeCommonOrder ignores its boolean argument. This is a known, documented issue
// kept for compatibility; the tests assert it.
package order
