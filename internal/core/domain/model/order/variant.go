package order

import (
	"fmt"
	"strings"

	"menu/internal/pkg/errs"
)

// Variant names one construction path of Order. It lets callers outside the
// package (HTTP clients, commands) choose a constructor by value.
type Variant int

const (
	// UnknownVariant is the zero value and is never valid.
	UnknownVariant Variant = iota

	// Default builds through New.
	Default

	// CommonByConstructor builds through NewWithCommon.
	CommonByConstructor

	// UrgentByConstructor builds through NewWithUrgency.
	UrgentByConstructor

	// UrgentByFactory builds through MakeUrgentOrder.
	UrgentByFactory

	// CommonByFactory builds through MakeCommonOrder and inherits its known issue.
	CommonByFactory
)

var variantNames = map[Variant]string{
	Default:             "default",
	CommonByConstructor: "common-constructor",
	UrgentByConstructor: "urgent-constructor",
	UrgentByFactory:     "urgent-factory",
	CommonByFactory:     "common-factory",
}

// ParseVariant maps the wire name of a variant back to its value.
// Matching ignores case and surrounding spaces.
func ParseVariant(s string) (Variant, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for v, n := range variantNames {
		if n == name {
			return v, nil
		}
	}
	return UnknownVariant, errs.NewValueIsInvalidErrorWithCause("variant", fmt.Errorf("%q is not a known variant", s))
}

// Validate rejects UnknownVariant and out-of-range values.
func (v Variant) Validate() error {
	if _, ok := variantNames[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("variant", fmt.Errorf("%d is not a valid variant", v))
	}
	return nil
}

// String returns the wire name, or "unknown".
func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return "unknown"
}

// Build creates an order through the constructor named by v.
// flag is passed to the constructor's boolean parameter; Default ignores both id and flag.
//
// Example:
//
//	o, err := order.Build(order.UrgentByFactory, "A-17", true)
func Build(v Variant, id string, flag bool) (*Order, error) {
	switch v {
	case Default:
		return New(), nil
	case CommonByConstructor:
		return NewWithCommon(id, flag), nil
	case UrgentByConstructor:
		return NewWithUrgency(flag, id), nil
	case UrgentByFactory:
		return MakeUrgentOrder(id, flag), nil
	case CommonByFactory:
		return MakeCommonOrder(id, flag), nil
	case UnknownVariant:
	}
	return nil, v.Validate()
}
