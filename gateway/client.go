// Package gateway is the client of the PayXpert Gateway API: direct card
// processing, subscriptions, 3-D Secure and blacklisting.
//
// Request bodies are passed through untouched. They may be maps or structs
// with json tags; export filters additionally accept url.Values or structs
// with url tags since they travel in the query string.
//
// Errors are the typed errors re-exported by the payxpert package.
package gateway

import (
	"context"

	"github.com/payxpert/payxpert-go/internal/endpoint"
)

type Client struct {
	d *endpoint.Dispatcher
}

func NewClient(d *endpoint.Dispatcher) *Client {
	return &Client{d: d}
}

func (c *Client) call(ctx context.Context, name endpoint.Name, params []string, body any) (Result, error) {
	return endpoint.CallObject[Result](ctx, c.d, name, params, body)
}

// CreditCardSale authorizes and captures in one step.
func (c *Client) CreditCardSale(ctx context.Context, body any) (Result, error) {
	return c.call(ctx, endpoint.GatewayCreditCardSale, nil, body)
}

// CreditCardAuthorize reserves the amount on the card; capture it later with
// CreditCardCapture.
func (c *Client) CreditCardAuthorize(ctx context.Context, body any) (Result, error) {
	return c.call(ctx, endpoint.GatewayCreditCardAuthorize, nil, body)
}

func (c *Client) CreditCardCapture(ctx context.Context, transactionID string, body any) (Result, error) {
	return c.call(ctx, endpoint.GatewayCreditCardCapture, []string{transactionID}, body)
}

func (c *Client) RefundTransaction(ctx context.Context, transactionID string, body any) (Result, error) {
	return c.call(ctx, endpoint.GatewayRefundTransaction, []string{transactionID}, body)
}

// CreditFundTransfer pays funds back to the card used by a previous
// transaction.
func (c *Client) CreditFundTransfer(ctx context.Context, transactionID string, body any) (Result, error) {
	return c.call(ctx, endpoint.GatewayCreditFundTransfer, []string{transactionID}, body)
}

func (c *Client) CancelTransaction(ctx context.Context, transactionID string, body any) (Result, error) {
	return c.call(ctx, endpoint.GatewayCancelTransaction, []string{transactionID}, body)
}

func (c *Client) RebillTransaction(ctx context.Context, transactionID string, body any) (Result, error) {
	return c.call(ctx, endpoint.GatewayRebillTransaction, []string{transactionID}, body)
}

func (c *Client) QueryTransaction(ctx context.Context, transactionID string) (Result, error) {
	return c.call(ctx, endpoint.GatewayQueryTransaction, []string{transactionID}, nil)
}

// ExportTransactions lists transactions matching query. A non-empty operation
// narrows the export to one of payxpert.TransactionOperations(); any other
// value fails with *payxpert.InvalidOperationError before a request is made.
func (c *Client) ExportTransactions(ctx context.Context, query any, operation string) (Result, error) {
	if operation == "" {
		return c.call(ctx, endpoint.GatewayExportTransactions, nil, query)
	}
	if err := endpoint.ValidateOperation(operation); err != nil {
		return nil, err
	}
	return c.call(ctx, endpoint.GatewayExportTransactionsByOperation, []string{operation}, query)
}

// BlacklistUsers blacklists the customer data attached to a transaction.
func (c *Client) BlacklistUsers(ctx context.Context, transactionID string, body any) (Result, error) {
	return c.call(ctx, endpoint.GatewayBlacklistUsers, []string{transactionID}, body)
}

func (c *Client) ToditoCashSale(ctx context.Context, body any) (Result, error) {
	return c.call(ctx, endpoint.GatewayToditoCashSale, nil, body)
}

// InstantConversion ends the trial period of a subscription now.
func (c *Client) InstantConversion(ctx context.Context, subscriptionID string) (Result, error) {
	return c.call(ctx, endpoint.GatewayInstantConversion, []string{subscriptionID}, nil)
}

// CancelSubscription stops a subscription. cancelReason is one of the
// numeric cancellation reason codes of the API, e.g. 1022.
func (c *Client) CancelSubscription(ctx context.Context, subscriptionID string, cancelReason int) (Result, error) {
	body := map[string]any{"cancelReason": cancelReason}
	return c.call(ctx, endpoint.GatewayCancelSubscription, []string{subscriptionID}, body)
}

func (c *Client) QuerySubscription(ctx context.Context, subscriptionID string) (Result, error) {
	return c.call(ctx, endpoint.GatewayQuerySubscription, []string{subscriptionID}, nil)
}

func (c *Client) ExportSubscriptions(ctx context.Context, query any) (Result, error) {
	return c.call(ctx, endpoint.GatewayExportSubscriptions, nil, query)
}

func (c *Client) ExportSubscriptionOffer(ctx context.Context, offerID string) (Result, error) {
	return c.call(ctx, endpoint.GatewayExportSubscriptionOffer, []string{offerID}, nil)
}

// Check3DSecure asks whether the card is enrolled in 3-D Secure.
func (c *Client) Check3DSecure(ctx context.Context, body any) (Result, error) {
	return c.call(ctx, endpoint.GatewayCheck3DSecure, nil, body)
}

// Parse3DSecure submits the PaRes returned by the issuer's ACS after the
// cardholder authenticated.
func (c *Client) Parse3DSecure(ctx context.Context, transactionID, paRes string) (Result, error) {
	body := map[string]any{
		"transactionID": transactionID,
		"PaRes":         paRes,
	}
	return c.call(ctx, endpoint.GatewayParse3DSecure, []string{transactionID}, body)
}

func (c *Client) BlacklistValue(ctx context.Context, body any) (Result, error) {
	return c.call(ctx, endpoint.GatewayBlacklistValue, nil, body)
}
