// Package kernel provides the shared primitives of the menu domain model.
//
// UUID is the only primitive today: an immutable identifier wrapping
// github.com/google/uuid whose zero value fails validation.
package kernel
