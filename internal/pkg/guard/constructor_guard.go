// Package guard detects values that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as produced by its designated constructor.
// Embed it as a private field and set it with NewConstructorGuard; a zero-value
// struct then fails Validate.
//
// Example:
//
//	var ErrLabelNotConstructed = errors.New("Label must be created via NewLabel")
//
//	type Label struct {
//	    text  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewLabel(text string) Label {
//	    return Label{text: text, guard: guard.NewConstructorGuard()}
//	}
//
//	func (l Label) Validate() error {
//	    return l.guard.Validate(ErrLabelNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
