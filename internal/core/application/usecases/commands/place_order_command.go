package commands

import (
	"errors"

	"menu/internal/core/domain/model/order"
	"menu/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a request to record a new order.
// The variant selects which order constructor is used; flag feeds its boolean
// argument. The reference is not validated, an empty one is accepted.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand("A-17", order.UrgentByFactory, true)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	reference string
	variant   order.Variant
	flag      bool

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
// Returns an error if the variant is unknown.
func NewPlaceOrderCommand(reference string, variant order.Variant, flag bool) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		reference: reference,
		flag:      flag,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setVariant(variant); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Reference returns the order reference.
func (c PlaceOrderCommand) Reference() string {
	return c.reference
}

// Variant returns the construction path of the order.
func (c PlaceOrderCommand) Variant() order.Variant {
	return c.variant
}

// Flag returns the boolean handed to the order constructor.
func (c PlaceOrderCommand) Flag() bool {
	return c.flag
}

func (c *PlaceOrderCommand) setVariant(variant order.Variant) error {
	if err := variant.Validate(); err != nil {
		return err
	}

	c.variant = variant
	return nil
}
