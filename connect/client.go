// Package connect is the client of the PayXpert Connect API, the hosted
// checkout. Every call that needs it carries the API version: callers may set
// apiVersion themselves, otherwise the SDK default is used.
//
// Errors are the typed errors re-exported by the payxpert package, except for
// HandleRedirectStatus which returns *redirect.Error.
package connect

import (
	"context"
	"net/url"

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

// CreatePayment prepares a payment and, when the answer carries a customer
// token, adds the customerRedirectURL the shopper should be sent to.
func (c *Client) CreatePayment(ctx context.Context, body any) (Result, error) {
	res, err := c.call(ctx, endpoint.ConnectCreatePayment, nil, body)
	if err != nil {
		return nil, err
	}

	if token := res.CustomerToken(); token != "" {
		res["customerRedirectURL"] = "https://" + c.d.Host(endpoint.ProductConnect) + "/payment/" + url.PathEscape(token)
	}
	return res, nil
}

func (c *Client) PaymentStatus(ctx context.Context, merchantToken string) (Result, error) {
	return c.call(ctx, endpoint.ConnectPaymentStatus, []string{merchantToken}, nil)
}

func (c *Client) TransactionInfo(ctx context.Context, transactionID string) (Result, error) {
	return c.call(ctx, endpoint.ConnectTransactionInfo, []string{transactionID}, nil)
}

func (c *Client) CaptureTransaction(ctx context.Context, transactionID string, amount int64) (Result, error) {
	return c.call(ctx, endpoint.ConnectCaptureTransaction, []string{transactionID}, amountBody(amount))
}

func (c *Client) CancelTransaction(ctx context.Context, transactionID string, amount int64) (Result, error) {
	return c.call(ctx, endpoint.ConnectCancelTransaction, []string{transactionID}, amountBody(amount))
}

func (c *Client) RefundTransaction(ctx context.Context, transactionID string, amount int64) (Result, error) {
	return c.call(ctx, endpoint.ConnectRefundTransaction, []string{transactionID}, amountBody(amount))
}

func (c *Client) RebillTransaction(ctx context.Context, transactionID string, amount int64) (Result, error) {
	return c.call(ctx, endpoint.ConnectRebillTransaction, []string{transactionID}, amountBody(amount))
}

func (c *Client) CancelSubscription(ctx context.Context, subscriptionID string, cancelReason int) (Result, error) {
	body := map[string]any{"cancelReason": cancelReason}
	return c.call(ctx, endpoint.ConnectCancelSubscription, []string{subscriptionID}, body)
}

func (c *Client) WeChatDirectPayment(ctx context.Context, customerToken string, body any) (Result, error) {
	return c.call(ctx, endpoint.ConnectWeChatDirectPayment, []string{customerToken}, body)
}

func (c *Client) AliPayDirectPayment(ctx context.Context, customerToken string, body any) (Result, error) {
	return c.call(ctx, endpoint.ConnectAliPayDirectPayment, []string{customerToken}, body)
}

func (c *Client) AccountInformation(ctx context.Context) (Result, error) {
	return c.call(ctx, endpoint.ConnectAccountInformation, nil, nil)
}

func (c *Client) ExportTransactions(ctx context.Context, query any) (Result, error) {
	return c.call(ctx, endpoint.ConnectExportTransactions, nil, query)
}

func amountBody(amount int64) map[string]any {
	return map[string]any{"amount": amount}
}
