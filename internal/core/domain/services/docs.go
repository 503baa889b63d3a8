// Package services provides domain services that work across several orders
// and do not belong to a single value type.
//
// The package includes:
//   - OrderTriage: puts urgent orders first without disturbing the order of the rest
package services
