package transport

import (
	"errors"
	"fmt"
)

var ErrInvalidRequest = errors.New("invalid request")

var (
	errInvalidUTF8 = errors.New("response body is not valid UTF-8")
	errInvalidJSON = errors.New("response body is not valid JSON")
	errNotObject   = errors.New("response body is not a JSON object")
)

// TransportError is returned when the request never produced a complete
// response: DNS, connect, TLS or a body read that was cut short.
type TransportError struct {
	Method string
	Host   string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s %s%s: %v", e.Method, e.Host, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError is returned when the remote host answered with something that is
// not JSON, or JSON that does not fit the expected result type.
type ParseError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error (status: %d): %v", e.StatusCode, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func IsTransportError(err error) (*TransportError, bool) {
	var transportErr *TransportError
	ok := errors.As(err, &transportErr)
	return transportErr, ok
}

func IsParseError(err error) (*ParseError, bool) {
	var parseErr *ParseError
	ok := errors.As(err, &parseErr)
	return parseErr, ok
}

const maxExcerpt = 256

func excerpt(body []byte) string {
	if len(body) > maxExcerpt {
		return string(body[:maxExcerpt])
	}
	return string(body)
}
