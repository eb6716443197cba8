// Package errs provides standardized error types for the burger application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value (e.g. an ingredient position) is outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - PreconditionIsNotMetError: For when an object is not yet in a state that allows an operation
//   - VersionIsInvalidError: For when an object was changed concurrently since it was read
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
package errs
