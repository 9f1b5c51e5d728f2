package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when the backend rejects a login with 401.
	ErrInvalidCredentials = errors.New("invalid credentials, please try again")
	// ErrRoleNotAllowed is the sentinel for RoleNotAllowedError.
	ErrRoleNotAllowed = errors.New("role not allowed")
	// ErrEndpointNotFound is the sentinel for EndpointNotFoundError.
	ErrEndpointNotFound = errors.New("endpoint not found")
	// ErrServer is returned when the backend answers 500.
	ErrServer = errors.New("internal server error, please try again later or switch to the development backend")
	// ErrUnexpectedStatus is the sentinel for UnexpectedStatusError.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrSessionExpired is the sentinel for SessionExpiredError.
	ErrSessionExpired = errors.New("session expired, please log in again")
	// ErrAuthRequired is returned when an authenticated call is attempted without a session.
	ErrAuthRequired = errors.New("authentication required")
	// ErrTransport is the sentinel for TransportError.
	ErrTransport = errors.New("transport failure")
	// ErrTransitionFailed is the sentinel for TransitionFailedError.
	ErrTransitionFailed = errors.New("order status update failed")
	// ErrFetchFailed is the sentinel for FetchError.
	ErrFetchFailed = errors.New("failed to fetch orders")
	// ErrPasswordMismatch is returned by signup when the confirmation differs.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrNavigationUnavailable is the sentinel for NavigationUnavailableError.
	ErrNavigationUnavailable = errors.New("navigation unavailable")
	// ErrHTTPStatus is the sentinel for HTTPStatusError.
	ErrHTTPStatus = errors.New("non-success http status")
)

// RoleNotAllowedError is returned when an authenticated account does not carry the driver role.
type RoleNotAllowedError struct {
	Email string
	Role  string
}

// NewRoleNotAllowedError creates a RoleNotAllowedError.
func NewRoleNotAllowedError(email, role string) *RoleNotAllowedError {
	return &RoleNotAllowedError{Email: email, Role: role}
}

func (e *RoleNotAllowedError) Error() string {
	return fmt.Sprintf("%s: account %s has role '%s'", ErrRoleNotAllowed, e.Email, e.Role)
}

func (e *RoleNotAllowedError) Unwrap() error {
	return ErrRoleNotAllowed
}

// EndpointNotFoundError is returned on a 404 from an auth endpoint.
// The message depends on which environment was targeted.
type EndpointNotFoundError struct {
	Environment string
	URL         string
}

// NewEndpointNotFoundError creates an EndpointNotFoundError.
func NewEndpointNotFoundError(environment, url string) *EndpointNotFoundError {
	return &EndpointNotFoundError{Environment: environment, URL: url}
}

func (e *EndpointNotFoundError) Error() string {
	if e.Environment == "development" {
		return fmt.Sprintf(
			`%s: invalid request to development backend (%s), please use {"email":"demo@email.com","password":"password"}`,
			ErrEndpointNotFound, e.URL)
	}
	return fmt.Sprintf("%s: please contact support or try again later", ErrEndpointNotFound)
}

func (e *EndpointNotFoundError) Unwrap() error {
	return ErrEndpointNotFound
}

// UnexpectedStatusError carries a status code no other error type covers.
type UnexpectedStatusError struct {
	Operation  string
	StatusCode int
}

// NewUnexpectedStatusError creates an UnexpectedStatusError.
func NewUnexpectedStatusError(operation string, statusCode int) *UnexpectedStatusError {
	return &UnexpectedStatusError{Operation: operation, StatusCode: statusCode}
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("%s: %s failed with status %d", ErrUnexpectedStatus, e.Operation, e.StatusCode)
}

func (e *UnexpectedStatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// SessionExpiredError is returned for a 401/403 on any authenticated call.
// By the time callers see it the local session has already been cleared.
type SessionExpiredError struct {
	Operation  string
	StatusCode int
}

// NewSessionExpiredError creates a SessionExpiredError.
func NewSessionExpiredError(operation string, statusCode int) *SessionExpiredError {
	return &SessionExpiredError{Operation: operation, StatusCode: statusCode}
}

func (e *SessionExpiredError) Error() string {
	return fmt.Sprintf("%s (%s answered %d)", ErrSessionExpired, e.Operation, e.StatusCode)
}

func (e *SessionExpiredError) Unwrap() error {
	return ErrSessionExpired
}

// TransportError covers connectivity failures and malformed responses.
type TransportError struct {
	Operation string
	Cause     error
}

// NewTransportError creates a TransportError wrapping cause.
func NewTransportError(operation string, cause error) *TransportError {
	return &TransportError{Operation: operation, Cause: cause}
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrTransport, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrTransport, e.Operation)
}

func (e *TransportError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrTransport}
	}
	return []error{ErrTransport, e.Cause}
}

// TransitionFailedError is returned when a status update fails for a non-auth reason.
// StatusCode is zero when the request never got an answer.
type TransitionFailedError struct {
	OrderID    int64
	Target     string
	StatusCode int
	Cause      error
}

// NewTransitionFailedError creates a TransitionFailedError.
func NewTransitionFailedError(orderID int64, target string, statusCode int, cause error) *TransitionFailedError {
	return &TransitionFailedError{OrderID: orderID, Target: target, StatusCode: statusCode, Cause: cause}
}

func (e *TransitionFailedError) Error() string {
	msg := fmt.Sprintf("%s: order %d to %s", ErrTransitionFailed, e.OrderID, e.Target)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *TransitionFailedError) Unwrap() error {
	return ErrTransitionFailed
}

// FetchError is returned when the order list request answers a non-auth non-2xx status.
type FetchError struct {
	StatusCode int
}

// NewFetchError creates a FetchError.
func NewFetchError(statusCode int) *FetchError {
	return &FetchError{StatusCode: statusCode}
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: status %d", ErrFetchFailed, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return ErrFetchFailed
}

// NavigationUnavailableError is returned when the external map application cannot be used.
type NavigationUnavailableError struct {
	Target string
	Cause  error
}

// NewNavigationUnavailableError creates a NavigationUnavailableError.
func NewNavigationUnavailableError(target string, cause error) *NavigationUnavailableError {
	return &NavigationUnavailableError{Target: target, Cause: cause}
}

func (e *NavigationUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrNavigationUnavailable, e.Target, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrNavigationUnavailable, e.Target)
}

func (e *NavigationUnavailableError) Unwrap() error {
	return ErrNavigationUnavailable
}

// HTTPStatusError is what the REST transport reports for any non-2xx answer.
// Use cases translate it into the error types above.
type HTTPStatusError struct {
	Operation  string
	StatusCode int
	Message    string
	// URL is the request URL, set by the transport when known.
	URL string
}

// NewHTTPStatusError creates an HTTPStatusError.
func NewHTTPStatusError(operation string, statusCode int, message string) *HTTPStatusError {
	return &HTTPStatusError{Operation: operation, StatusCode: statusCode, Message: message}
}

func (e *HTTPStatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s answered %d: %s", ErrHTTPStatus, e.Operation, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s answered %d", ErrHTTPStatus, e.Operation, e.StatusCode)
}

func (e *HTTPStatusError) Unwrap() error {
	return ErrHTTPStatus
}

// IsUnauthorized reports whether status signals an invalid or expired token.
func (e *HTTPStatusError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// AsHTTPStatus extracts an HTTPStatusError from err's chain.
func AsHTTPStatus(err error) (*HTTPStatusError, bool) {
	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
