package client

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned by New before any network activity when
	// the configuration is incomplete.
	ErrInvalidConfig = errors.New("invalid client config")

	// ErrNetwork matches every *NetworkError.
	ErrNetwork = errors.New("network error")

	// ErrDecode matches every *DecodeError.
	ErrDecode = errors.New("decode error")

	// ErrCountMissing is returned by QueryResult.Count when the response
	// carries no x-log-count header.
	ErrCountMissing = errors.New("count header missing")

	// ErrInvalidCount is returned by QueryResult.Count when the header is
	// not an integer.
	ErrInvalidCount = errors.New("count header invalid")

	// ErrInvalidArgument is returned for unusable call arguments.
	ErrInvalidArgument = errors.New("invalid argument")
)

// NetworkError is a transport-level failure: DNS, connection, timeout or a
// broken response body. It is never retried.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

// DecodeError reports a 2xx response whose body is not the expected JSON.
type DecodeError struct {
	StatusCode int
	RequestID  string
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error: status %d (request id %q): %v", e.StatusCode, e.RequestID, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// RemoteError describes a non-2xx response. Calls do not return it as an
// error; use QueryResult.RemoteError or QueryResult.Err to obtain it.
type RemoteError struct {
	StatusCode int    `json:"-"`
	RequestID  string `json:"-"`
	Code       string `json:"errorCode"`
	Message    string `json:"errorMessage"`
}

func (e *RemoteError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("remote error: status %d (request id %q): %s", e.StatusCode, e.RequestID, e.Message)
	}
	return fmt.Sprintf("remote error: status %d (request id %q): %s: %s", e.StatusCode, e.RequestID, e.Code, e.Message)
}
