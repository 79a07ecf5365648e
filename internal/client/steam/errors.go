package steam

import "errors"

var (
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrInvalidArgument indicates a request that cannot be sent as given.
	ErrInvalidArgument = errors.New("invalid argument")
)
