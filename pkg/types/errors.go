package types

import "errors"

// Remote failure taxonomy. The gateway classifies every failed call into one
// of these so callers can branch with errors.Is.
var (
	// ErrNetworkUnreachable indicates the backend could not be reached at
	// the transport level (connection refused, DNS failure, broken pipe).
	ErrNetworkUnreachable = errors.New("network unreachable")

	// ErrTimeout indicates the call exceeded its fixed deadline. Treated the
	// same as ErrNetworkUnreachable by every fallback path.
	ErrTimeout = errors.New("request timed out")

	// ErrAuthRejected indicates the backend was reachable and explicitly
	// rejected the credential.
	ErrAuthRejected = errors.New("credential rejected")

	// ErrServerError indicates the backend was reachable but returned a
	// failure status or a non-JSON response.
	ErrServerError = errors.New("server error")
)

// Local state errors.
var (
	// ErrMalformedState marks a persisted value that failed to deserialize
	// or validate. Always recovered by clearing the offending key and
	// substituting an empty default; never surfaced to the user.
	ErrMalformedState = errors.New("malformed persisted state")

	// ErrNoSession is returned by operations that require an active session.
	ErrNoSession = errors.New("no active session")

	// ErrPermissionDenied is returned when the active identity's role does
	// not allow the requested operation.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrConfirmationDeclined is returned when the user declines the
	// confirmation gate on a destructive operation. No side effect occurred.
	ErrConfirmationDeclined = errors.New("confirmation declined")
)
