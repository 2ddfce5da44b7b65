// Package errs provides standardized error types for the print-order service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes one error type per failure category:
//   - ValueIsRequiredError, ValueIsInvalidError: malformed input or an illegal stage transition
//   - ObjectNotFoundError: a referenced order, vendor or artifact does not exist
//   - NotConfiguredError: a required external capability (object store, upstream feed) is unset
//   - UnauthenticatedError, ForbiddenError: the caller has no identity or lacks the required role
//   - UpstreamError: the object store, broker or order source failed
//   - ConflictError: the operation is disabled in the current deployment
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so callers classify with errors.Is
//
// The HTTP adapter maps the sentinels onto status codes, so every rejection
// carries a machine-checkable category and a human-readable message.
package errs
