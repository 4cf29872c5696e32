package payxpert

import (
	"github.com/payxpert/payxpert-go/internal/endpoint"
	"github.com/payxpert/payxpert-go/internal/transport"
)

// Errors returned by the Gateway and Connect clients. Match them with
// errors.Is / errors.As, or with the Is* helpers below. Redirect decryption
// errors live in the redirect package.
type (
	// TransportError: no complete response was received (DNS, connect, TLS,
	// body cut short). Never retried by the SDK.
	TransportError = transport.TransportError
	// ParseError: the host answered with something that is not a JSON object
	// of the expected shape. StatusCode and a body excerpt are kept.
	ParseError = transport.ParseError
	// ParamError: a path parameter is missing, blank or padded with
	// whitespace. Raised before any request.
	ParamError = endpoint.ParamError
	// InvalidOperationError: an export filter outside
	// TransactionOperations(). Raised before any request.
	InvalidOperationError = endpoint.InvalidOperationError
)

var (
	// ErrInvalidRequest wraps request shapes the SDK refuses to send, such as
	// a malformed host or a body that cannot be encoded.
	ErrInvalidRequest  = transport.ErrInvalidRequest
	ErrUnknownEndpoint = endpoint.ErrUnknownEndpoint
	ErrMissingHost     = endpoint.ErrMissingHost
)

func IsTransportError(err error) (*TransportError, bool) {
	return transport.IsTransportError(err)
}

func IsParseError(err error) (*ParseError, bool) {
	return transport.IsParseError(err)
}

func IsParamError(err error) (*ParamError, bool) {
	return endpoint.IsParamError(err)
}

func IsInvalidOperationError(err error) (*InvalidOperationError, bool) {
	return endpoint.IsInvalidOperationError(err)
}

// TransactionOperations lists the filters accepted by
// Gateway().ExportTransactions.
func TransactionOperations() []string {
	return append([]string(nil), endpoint.TransactionOperations...)
}
