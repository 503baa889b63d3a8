package order

import (
	"errors"

	"menu/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through one of
	// the constructors or factories of this package.
	ErrOrderIsNotConstructed = errors.New("Order must be created via a constructor or factory of package order")
)

// Order is a customer order: a free-form reference plus two independent flags.
//
// The flags are not mutually exclusive in the type itself. Which of them carries
// meaning depends on the function that created the order:
//   - New leaves both false
//   - NewWithCommon sets only common
//   - NewWithUrgency and MakeUrgentOrder set only urgent
//   - MakeCommonOrder sets neither (see its documentation)
//
// Fields are fixed at construction; there are no setters.
type Order struct {
	// id is the order reference; empty is allowed
	id string

	// urgent marks orders that should be handled first
	urgent bool

	// common marks regular, non-prioritized orders
	common bool

	guard guard.ConstructorGuard
}

// New creates an order with an empty reference and both flags false.
func New() *Order {
	return &Order{
		guard: guard.NewConstructorGuard(),
	}
}

// NewWithCommon creates an order with the given reference and common flag.
// The urgent flag stays false.
func NewWithCommon(id string, common bool) *Order {
	o := New()
	o.id = id
	o.common = common
	return o
}

// NewWithUrgency creates an order with the given reference and urgent flag.
// The common flag stays false.
//
// The boolean comes first so the two-argument constructors cannot be confused
// at a call site; prefer MakeUrgentOrder in new code, its name says what it builds.
func NewWithUrgency(urgent bool, id string) *Order {
	o := New()
	o.id = id
	o.urgent = urgent
	return o
}

// MakeUrgentOrder returns an order with only the reference and urgent flag set.
//
// Example:
//
//	o := order.MakeUrgentOrder("A", true)
//	o.IsUrgent() // true
//	o.IsCommon() // false
func MakeUrgentOrder(id string, urgent bool) *Order {
	o := New()
	o.id = id
	o.urgent = urgent
	return o
}

// MakeCommonOrder returns an order with only the reference set.
//
// Known issue: the boolean argument is accepted and ignored, so the common flag
// of the result is always false. Callers that need the flag must use NewWithCommon.
func MakeCommonOrder(id string, urgent bool) *Order {
	o := New()
	o.id = id
	return o
}

// Validate reports whether the order was produced by this package.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order reference.
func (o *Order) ID() string {
	return o.id
}

// IsUrgent returns the urgent flag.
func (o *Order) IsUrgent() bool {
	return o.urgent
}

// IsCommon returns the common flag.
func (o *Order) IsCommon() bool {
	return o.common
}

// RestoreOrder rebuilds an order read back from storage with both flags as persisted.
// Unlike the constructors it may set both flags.
func RestoreOrder(id string, urgent bool, common bool) *Order {
	o := New()
	o.id = id
	o.urgent = urgent
	o.common = common
	return o
}
