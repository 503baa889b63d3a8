// Package errs provides standardized error types for the menu service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes:
//   - ObjectNotFoundError: a lookup matched nothing
//   - ObjectAlreadyExistsError: an insert collided with an existing key
//   - ValueIsInvalidError: a supplied value cannot be used
//   - ValueIsRequiredError: a mandatory value is missing
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works
package errs
