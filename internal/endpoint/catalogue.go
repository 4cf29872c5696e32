package endpoint

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/samber/lo"
)

type Product string

const (
	ProductGateway Product = "gateway"
	ProductConnect Product = "connect"
)

// Name identifies one remote operation.
type Name string

// Gateway operations.
const (
	GatewayCreditCardSale                Name = "gateway.credit_card_sale"
	GatewayCreditCardAuthorize           Name = "gateway.credit_card_authorize"
	GatewayCreditCardCapture             Name = "gateway.credit_card_capture"
	GatewayRefundTransaction             Name = "gateway.refund_transaction"
	GatewayCreditFundTransfer            Name = "gateway.credit_fund_transfer"
	GatewayCancelTransaction             Name = "gateway.cancel_transaction"
	GatewayRebillTransaction             Name = "gateway.rebill_transaction"
	GatewayQueryTransaction              Name = "gateway.query_transaction"
	GatewayExportTransactions            Name = "gateway.export_transactions"
	GatewayExportTransactionsByOperation Name = "gateway.export_transactions_by_operation"
	GatewayBlacklistUsers                Name = "gateway.blacklist_users"
	GatewayToditoCashSale                Name = "gateway.todito_cash_sale"
	GatewayInstantConversion             Name = "gateway.instant_conversion"
	GatewayCancelSubscription            Name = "gateway.cancel_subscription"
	GatewayQuerySubscription             Name = "gateway.query_subscription"
	GatewayExportSubscriptions           Name = "gateway.export_subscriptions"
	GatewayExportSubscriptionOffer       Name = "gateway.export_subscription_offer"
	GatewayCheck3DSecure                 Name = "gateway.check_3dsecure"
	GatewayParse3DSecure                 Name = "gateway.parse_3dsecure"
	GatewayBlacklistValue                Name = "gateway.blacklist_value"
)

// Connect operations.
const (
	ConnectCreatePayment       Name = "connect.create_payment"
	ConnectPaymentStatus       Name = "connect.payment_status"
	ConnectTransactionInfo     Name = "connect.transaction_info"
	ConnectCaptureTransaction  Name = "connect.capture_transaction"
	ConnectCancelTransaction   Name = "connect.cancel_transaction"
	ConnectRefundTransaction   Name = "connect.refund_transaction"
	ConnectRebillTransaction   Name = "connect.rebill_transaction"
	ConnectCancelSubscription  Name = "connect.cancel_subscription"
	ConnectWeChatDirectPayment Name = "connect.wechat_direct_payment"
	ConnectAliPayDirectPayment Name = "connect.alipay_direct_payment"
	ConnectAccountInformation  Name = "connect.account_information"
	ConnectExportTransactions  Name = "connect.export_transactions"
)

// Endpoint maps an operation to its remote resource. Path segments written as
// {param} are filled positionally by Resolve.
type Endpoint struct {
	Name         Name
	Product      Product
	Method       string
	Path         string
	NeedsVersion bool
}

var catalogue = []Endpoint{
	{GatewayCreditCardSale, ProductGateway, http.MethodPost, "/transaction/sale/creditcard", false},
	{GatewayCreditCardAuthorize, ProductGateway, http.MethodPost, "/transaction/authorize/creditcard", false},
	{GatewayCreditCardCapture, ProductGateway, http.MethodPost, "/transaction/{transactionID}/capture", false},
	{GatewayRefundTransaction, ProductGateway, http.MethodPost, "/transaction/{transactionID}/refund", false},
	{GatewayCreditFundTransfer, ProductGateway, http.MethodPost, "/transaction/{transactionID}/credit", false},
	{GatewayCancelTransaction, ProductGateway, http.MethodPost, "/transaction/{transactionID}/cancel", false},
	{GatewayRebillTransaction, ProductGateway, http.MethodPost, "/transaction/{transactionID}/rebill", false},
	{GatewayQueryTransaction, ProductGateway, http.MethodGet, "/transaction/{transactionID}", false},
	{GatewayExportTransactions, ProductGateway, http.MethodGet, "/transactions", false},
	{GatewayExportTransactionsByOperation, ProductGateway, http.MethodGet, "/transactions/{operation}", false},
	{GatewayBlacklistUsers, ProductGateway, http.MethodPost, "/transaction/{transactionID}/blacklist", false},
	{GatewayToditoCashSale, ProductGateway, http.MethodPost, "/transaction/sale/todito", false},
	{GatewayInstantConversion, ProductGateway, http.MethodPost, "/subscription/{subscriptionID}/instantconversion", false},
	{GatewayCancelSubscription, ProductGateway, http.MethodPost, "/subscription/{subscriptionID}/cancel", false},
	{GatewayQuerySubscription, ProductGateway, http.MethodGet, "/subscription/{subscriptionID}", false},
	{GatewayExportSubscriptions, ProductGateway, http.MethodGet, "/subscriptions", false},
	{GatewayExportSubscriptionOffer, ProductGateway, http.MethodGet, "/subscription/offer/{offerID}", false},
	{GatewayCheck3DSecure, ProductGateway, http.MethodPost, "/transaction/3dscheck/creditcard", false},
	{GatewayParse3DSecure, ProductGateway, http.MethodPost, "/transaction/{transactionID}/3dsparse", false},
	{GatewayBlacklistValue, ProductGateway, http.MethodPost, "/blacklist", false},

	{ConnectCreatePayment, ProductConnect, http.MethodPost, "/transaction/prepare", true},
	{ConnectPaymentStatus, ProductConnect, http.MethodGet, "/transaction/{merchantToken}/status", false},
	{ConnectTransactionInfo, ProductConnect, http.MethodGet, "/transaction/{transactionID}/info", true},
	{ConnectCaptureTransaction, ProductConnect, http.MethodPost, "/transaction/{transactionID}/capture", true},
	{ConnectCancelTransaction, ProductConnect, http.MethodPost, "/transaction/{transactionID}/cancel", true},
	{ConnectRefundTransaction, ProductConnect, http.MethodPost, "/transaction/{transactionID}/refund", true},
	{ConnectRebillTransaction, ProductConnect, http.MethodPost, "/transaction/{transactionID}/rebill", true},
	{ConnectCancelSubscription, ProductConnect, http.MethodPost, "/subscription/{subscriptionID}/cancel", true},
	{ConnectWeChatDirectPayment, ProductConnect, http.MethodPost, "/payment/{customerToken}/process/wechat/direct", true},
	{ConnectAliPayDirectPayment, ProductConnect, http.MethodPost, "/payment/{customerToken}/process/alipay/direct", true},
	{ConnectAccountInformation, ProductConnect, http.MethodGet, "/account", false},
	{ConnectExportTransactions, ProductConnect, http.MethodGet, "/transactions/export", false},
}

var byName = lo.KeyBy(catalogue, func(e Endpoint) Name { return e.Name })

// Catalogue returns a copy of every known endpoint.
func Catalogue() []Endpoint {
	out := make([]Endpoint, len(catalogue))
	copy(out, catalogue)
	return out
}

func Lookup(name Name) (Endpoint, bool) {
	e, ok := byName[name]
	return e, ok
}

// Params lists the placeholder names of the path template in order.
func (e Endpoint) Params() []string {
	var params []string
	for _, segment := range strings.Split(e.Path, "/") {
		if isPlaceholder(segment) {
			params = append(params, segment[1:len(segment)-1])
		}
	}
	return params
}

// Resolve fills the path template. Every placeholder needs exactly one
// non-blank value without surrounding whitespace. Values are path-escaped.
func (e Endpoint) Resolve(params ...string) (string, error) {
	names := e.Params()
	if len(params) != len(names) {
		return "", &ParamError{
			Endpoint: e.Name,
			Message:  fmt.Sprintf("expects %d path parameter(s), got %d", len(names), len(params)),
		}
	}

	segments := strings.Split(e.Path, "/")
	next := 0
	for i, segment := range segments {
		if !isPlaceholder(segment) {
			continue
		}
		value := params[next]
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return "", &ParamError{Endpoint: e.Name, Param: names[next], Message: "is required"}
		}
		if trimmed != value {
			return "", &ParamError{Endpoint: e.Name, Param: names[next], Message: "has leading or trailing whitespace"}
		}
		segments[i] = url.PathEscape(value)
		next++
	}
	return strings.Join(segments, "/"), nil
}

func isPlaceholder(segment string) bool {
	return len(segment) > 2 && strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}")
}

// TransactionOperations are the values accepted when exporting Gateway
// transactions filtered by operation.
var TransactionOperations = []string{"sale", "refund", "credit", "authorize", "capture", "cancel", "rebill"}

func ValidateOperation(op string) error {
	if !lo.Contains(TransactionOperations, op) {
		return &InvalidOperationError{Value: op, Allowed: TransactionOperations}
	}
	return nil
}
