package gateway

import "github.com/payxpert/payxpert-go/internal/endpoint"

// SuccessCode is the errorCode of an accepted operation.
const SuccessCode = "000"

// Result is a decoded Gateway answer. Every field the API sent is kept; the
// accessors cover the ones common to all operations.
type Result map[string]any

func (r Result) ErrorCode() string {
	return endpoint.Field(r, "errorCode")
}

func (r Result) ErrorMessage() string {
	return endpoint.Field(r, "errorMessage")
}

func (r Result) TransactionID() string {
	return endpoint.Field(r, "transactionID")
}

func (r Result) SubscriptionID() string {
	return endpoint.Field(r, "subscriptionID")
}

// Succeeded reports whether the API accepted the operation. A non-2xx HTTP
// status with a JSON body still produces a Result; this is the check to make.
func (r Result) Succeeded() bool {
	return r.ErrorCode() == SuccessCode
}
