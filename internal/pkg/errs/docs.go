// Package errs provides standardized error types for the vehicle-sales
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package defines one error type per failure class:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or violates a rule
//   - ValueIsOutOfRangeError: a bounded value lies outside its range
//   - ObjectNotFoundError: a referenced object does not exist
//   - ObjectAlreadyExistsError: creation would violate uniqueness
//   - OperationIsForbiddenError: state or identity forbids the operation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify by sentinel
//
// The transport layer relies on this classification to translate errors into
// HTTP status codes without inspecting concrete types.
package errs
