package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Response headers carrying query metadata.
const (
	CountHeader     = "x-log-count"
	ProgressHeader  = "x-log-progress"
	RequestIDHeader = "x-log-requestid"
)

// QueryResult wraps one HTTP response: its status, its decoded payload and
// the pagination metadata carried by the response headers.
//
// The metadata accessors are recomputed from the stored header map on every
// call; the map is a private copy and is never modified.
type QueryResult[T any] struct {
	StatusCode int
	Data       T

	header http.Header
	body   []byte
}

func newQueryResult[T any](statusCode int, header http.Header, body []byte, data T) *QueryResult[T] {
	return &QueryResult[T]{
		StatusCode: statusCode,
		Data:       data,
		header:     header.Clone(),
		body:       body,
	}
}

// Header returns a copy of the response headers.
func (r *QueryResult[T]) Header() http.Header {
	return r.header.Clone()
}

// Body returns the raw response body.
func (r *QueryResult[T]) Body() []byte {
	return r.body
}

// IsSuccess reports whether the status code is 2xx.
func (r *QueryResult[T]) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Count returns the x-log-count header as an integer.
// A missing header yields ErrCountMissing and a non-numeric one an error
// matching ErrInvalidCount; the result itself stays usable either way.
func (r *QueryResult[T]) Count() (int64, error) {
	v, ok := r.headerValue(CountHeader)
	if !ok {
		return 0, ErrCountMissing
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCount, v)
	}
	return n, nil
}

// Progress reports ProgressComplete only when x-log-progress is exactly
// "Complete".
func (r *QueryResult[T]) Progress() Progress {
	v, _ := r.headerValue(ProgressHeader)
	return ParseProgress(v)
}

// RequestID returns the server-side tracing identifier.
func (r *QueryResult[T]) RequestID() string {
	v, _ := r.headerValue(RequestIDHeader)
	return v
}

// RemoteError decodes the service error of a non-2xx response.
// It returns nil for 2xx responses.
func (r *QueryResult[T]) RemoteError() *RemoteError {
	if r.IsSuccess() {
		return nil
	}
	remoteErr := &RemoteError{}
	if err := json.Unmarshal(r.body, remoteErr); err != nil || (remoteErr.Code == "" && remoteErr.Message == "") {
		remoteErr = &RemoteError{Message: strings.TrimSpace(string(r.body))}
	}
	remoteErr.StatusCode = r.StatusCode
	remoteErr.RequestID = r.RequestID()
	return remoteErr
}

// Err returns RemoteError as an error, or nil for 2xx responses.
func (r *QueryResult[T]) Err() error {
	if remoteErr := r.RemoteError(); remoteErr != nil {
		return remoteErr
	}
	return nil
}

func (r *QueryResult[T]) headerValue(name string) (string, bool) {
	if vs := r.header.Values(name); len(vs) > 0 {
		return vs[0], true
	}
	// Maps assembled by hand may hold non-canonical keys.
	for k, vs := range r.header {
		if strings.EqualFold(k, name) && len(vs) > 0 {
			return vs[0], true
		}
	}
	return "", false
}
