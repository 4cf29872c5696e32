package endpoint

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownEndpoint = errors.New("unknown endpoint")
	ErrMissingHost     = errors.New("no host configured for product")
)

// ParamError reports a path parameter that is missing, empty or unexpected.
// It is raised before any network call.
type ParamError struct {
	Endpoint Name
	Param    string
	Message  string
}

func (e *ParamError) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("%s: %s", e.Endpoint, e.Message)
	}
	return fmt.Sprintf("%s: parameter %s %s", e.Endpoint, e.Param, e.Message)
}

// InvalidOperationError is returned when a caller filters by a transaction
// operation the API does not know.
type InvalidOperationError struct {
	Value   string
	Allowed []string
}

func (e *InvalidOperationError) Error() string {
	return fmt.Sprintf("unknown transaction operation %q: allowed values are %s",
		e.Value, strings.Join(e.Allowed, ","))
}

func IsParamError(err error) (*ParamError, bool) {
	var paramErr *ParamError
	ok := errors.As(err, &paramErr)
	return paramErr, ok
}

func IsInvalidOperationError(err error) (*InvalidOperationError, bool) {
	var opErr *InvalidOperationError
	ok := errors.As(err, &opErr)
	return opErr, ok
}
