// Package errs provides standardized error types for the driver application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the client core and its adapters.
//
// The package includes two families:
//   - Validation errors (ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError,
//     ErrPasswordMismatch) produced locally before any network call
//   - Backend interaction errors (ErrInvalidCredentials, RoleNotAllowedError,
//     EndpointNotFoundError, ErrServer, UnexpectedStatusError, SessionExpiredError,
//     TransportError, TransitionFailedError, FetchError, NavigationUnavailableError)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions
//   - Error() method for formatting the user-visible message
//   - Unwrap() method so errors.Is matches the sentinel
//
// HTTPStatusError is the raw non-2xx report of the REST transport; use cases translate
// it into one of the typed errors above depending on the operation.
package errs
