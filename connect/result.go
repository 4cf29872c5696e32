package connect

import "github.com/payxpert/payxpert-go/internal/endpoint"

// Result is a decoded Connect answer. Connect reports the outcome of
// management calls in code/message and the outcome of a payment in
// errorCode/errorMessage.
type Result map[string]any

func (r Result) Code() string {
	return endpoint.Field(r, "code")
}

func (r Result) Message() string {
	return endpoint.Field(r, "message")
}

func (r Result) ErrorCode() string {
	return endpoint.Field(r, "errorCode")
}

func (r Result) ErrorMessage() string {
	return endpoint.Field(r, "errorMessage")
}

func (r Result) TransactionID() string {
	return endpoint.Field(r, "transactionID")
}

func (r Result) MerchantToken() string {
	return endpoint.Field(r, "merchantToken")
}

func (r Result) CustomerToken() string {
	return endpoint.Field(r, "customerToken")
}

// CustomerRedirectURL is the hosted payment page, set by CreatePayment.
func (r Result) CustomerRedirectURL() string {
	return endpoint.Field(r, "customerRedirectURL")
}
