package endpoint_test

import (
	"net/http"
	"testing"

	"github.com/payxpert/payxpert-go/internal/endpoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type documented struct {
	product endpoint.Product
	method  string
	path    string
	version bool
}

var documentedEndpoints = map[endpoint.Name]documented{
	endpoint.GatewayCreditCardSale:                {endpoint.ProductGateway, http.MethodPost, "/transaction/sale/creditcard", false},
	endpoint.GatewayCreditCardAuthorize:           {endpoint.ProductGateway, http.MethodPost, "/transaction/authorize/creditcard", false},
	endpoint.GatewayCreditCardCapture:             {endpoint.ProductGateway, http.MethodPost, "/transaction/{transactionID}/capture", false},
	endpoint.GatewayRefundTransaction:             {endpoint.ProductGateway, http.MethodPost, "/transaction/{transactionID}/refund", false},
	endpoint.GatewayCreditFundTransfer:            {endpoint.ProductGateway, http.MethodPost, "/transaction/{transactionID}/credit", false},
	endpoint.GatewayCancelTransaction:             {endpoint.ProductGateway, http.MethodPost, "/transaction/{transactionID}/cancel", false},
	endpoint.GatewayRebillTransaction:             {endpoint.ProductGateway, http.MethodPost, "/transaction/{transactionID}/rebill", false},
	endpoint.GatewayQueryTransaction:              {endpoint.ProductGateway, http.MethodGet, "/transaction/{transactionID}", false},
	endpoint.GatewayExportTransactions:            {endpoint.ProductGateway, http.MethodGet, "/transactions", false},
	endpoint.GatewayExportTransactionsByOperation: {endpoint.ProductGateway, http.MethodGet, "/transactions/{operation}", false},
	endpoint.GatewayBlacklistUsers:                {endpoint.ProductGateway, http.MethodPost, "/transaction/{transactionID}/blacklist", false},
	endpoint.GatewayToditoCashSale:                {endpoint.ProductGateway, http.MethodPost, "/transaction/sale/todito", false},
	endpoint.GatewayInstantConversion:             {endpoint.ProductGateway, http.MethodPost, "/subscription/{subscriptionID}/instantconversion", false},
	endpoint.GatewayCancelSubscription:            {endpoint.ProductGateway, http.MethodPost, "/subscription/{subscriptionID}/cancel", false},
	endpoint.GatewayQuerySubscription:             {endpoint.ProductGateway, http.MethodGet, "/subscription/{subscriptionID}", false},
	endpoint.GatewayExportSubscriptions:           {endpoint.ProductGateway, http.MethodGet, "/subscriptions", false},
	endpoint.GatewayExportSubscriptionOffer:       {endpoint.ProductGateway, http.MethodGet, "/subscription/offer/{offerID}", false},
	endpoint.GatewayCheck3DSecure:                 {endpoint.ProductGateway, http.MethodPost, "/transaction/3dscheck/creditcard", false},
	endpoint.GatewayParse3DSecure:                 {endpoint.ProductGateway, http.MethodPost, "/transaction/{transactionID}/3dsparse", false},
	endpoint.GatewayBlacklistValue:                {endpoint.ProductGateway, http.MethodPost, "/blacklist", false},

	endpoint.ConnectCreatePayment:       {endpoint.ProductConnect, http.MethodPost, "/transaction/prepare", true},
	endpoint.ConnectPaymentStatus:       {endpoint.ProductConnect, http.MethodGet, "/transaction/{merchantToken}/status", false},
	endpoint.ConnectTransactionInfo:     {endpoint.ProductConnect, http.MethodGet, "/transaction/{transactionID}/info", true},
	endpoint.ConnectCaptureTransaction:  {endpoint.ProductConnect, http.MethodPost, "/transaction/{transactionID}/capture", true},
	endpoint.ConnectCancelTransaction:   {endpoint.ProductConnect, http.MethodPost, "/transaction/{transactionID}/cancel", true},
	endpoint.ConnectRefundTransaction:   {endpoint.ProductConnect, http.MethodPost, "/transaction/{transactionID}/refund", true},
	endpoint.ConnectRebillTransaction:   {endpoint.ProductConnect, http.MethodPost, "/transaction/{transactionID}/rebill", true},
	endpoint.ConnectCancelSubscription:  {endpoint.ProductConnect, http.MethodPost, "/subscription/{subscriptionID}/cancel", true},
	endpoint.ConnectWeChatDirectPayment: {endpoint.ProductConnect, http.MethodPost, "/payment/{customerToken}/process/wechat/direct", true},
	endpoint.ConnectAliPayDirectPayment: {endpoint.ProductConnect, http.MethodPost, "/payment/{customerToken}/process/alipay/direct", true},
	endpoint.ConnectAccountInformation:  {endpoint.ProductConnect, http.MethodGet, "/account", false},
	endpoint.ConnectExportTransactions:  {endpoint.ProductConnect, http.MethodGet, "/transactions/export", false},
}

func TestCatalogue_MatchesDocumentedEndpoints(t *testing.T) {
	entries := endpoint.Catalogue()
	require.Len(t, entries, len(documentedEndpoints))

	seen := map[endpoint.Name]int{}
	for _, e := range entries {
		seen[e.Name]++

		doc, ok := documentedEndpoints[e.Name]
		if !assert.True(t, ok, "undocumented endpoint %s", e.Name) {
			continue
		}
		assert.Equal(t, doc.product, e.Product, e.Name)
		assert.Equal(t, doc.method, e.Method, e.Name)
		assert.Equal(t, doc.path, e.Path, e.Name)
		assert.Equal(t, doc.version, e.NeedsVersion, e.Name)
	}

	for name := range documentedEndpoints {
		assert.Equal(t, 1, seen[name], "endpoint %s must appear exactly once", name)
	}
}

func TestCatalogue_ResourcesAreUnique(t *testing.T) {
	type resource struct {
		product endpoint.Product
		method  string
		path    string
	}

	seen := map[resource]endpoint.Name{}
	for _, e := range endpoint.Catalogue() {
		key := resource{e.Product, e.Method, e.Path}
		if other, dup := seen[key]; dup {
			t.Errorf("%s and %s share %s %s on %s", other, e.Name, e.Method, e.Path, e.Product)
		}
		seen[key] = e.Name
	}
}

func TestCatalogue_ReturnsCopy(t *testing.T) {
	entries := endpoint.Catalogue()
	entries[0].Path = "/tampered"

	e, ok := endpoint.Lookup(entries[0].Name)
	require.True(t, ok)
	assert.NotEqual(t, "/tampered", e.Path)
}

func TestLookup(t *testing.T) {
	e, ok := endpoint.Lookup(endpoint.ConnectAccountInformation)
	require.True(t, ok)
	assert.Equal(t, "/account", e.Path)

	_, ok = endpoint.Lookup("gateway.nope")
	assert.False(t, ok)
}

func TestEndpoint_Resolve(t *testing.T) {
	capture, _ := endpoint.Lookup(endpoint.GatewayCreditCardCapture)
	account, _ := endpoint.Lookup(endpoint.ConnectAccountInformation)

	t.Run("fills placeholders", func(t *testing.T) {
		path, err := capture.Resolve("tx-123")

		require.NoError(t, err)
		assert.Equal(t, "/transaction/tx-123/capture", path)
		assert.Equal(t, []string{"transactionID"}, capture.Params())
	})

	t.Run("escapes values", func(t *testing.T) {
		path, err := capture.Resolve("a/b c")

		require.NoError(t, err)
		assert.Equal(t, "/transaction/a%2Fb%20c/capture", path)
	})

	t.Run("static paths take no parameters", func(t *testing.T) {
		path, err := account.Resolve()

		require.NoError(t, err)
		assert.Equal(t, "/account", path)
		assert.Empty(t, account.Params())
	})

	t.Run("rejects empty values", func(t *testing.T) {
		_, err := capture.Resolve("  ")

		paramErr, ok := endpoint.IsParamError(err)
		require.True(t, ok)
		assert.Equal(t, "transactionID", paramErr.Param)
		assert.Contains(t, err.Error(), "transactionID is required")
	})

	t.Run("rejects surrounding whitespace instead of trimming", func(t *testing.T) {
		for _, value := range []string{" tx-123", "tx-123 ", "\ttx-123\n"} {
			path, err := capture.Resolve(value)

			assert.Empty(t, path)
			paramErr, ok := endpoint.IsParamError(err)
			require.True(t, ok, "%q", value)
			assert.Equal(t, "transactionID", paramErr.Param)
			assert.Contains(t, err.Error(), "whitespace")
		}
	})

	t.Run("keeps inner spaces", func(t *testing.T) {
		path, err := capture.Resolve("tx 1")

		require.NoError(t, err)
		assert.Equal(t, "/transaction/tx%201/capture", path)
	})

	t.Run("rejects wrong arity", func(t *testing.T) {
		_, err := capture.Resolve()
		_, ok := endpoint.IsParamError(err)
		assert.True(t, ok)

		_, err = account.Resolve("extra")
		_, ok = endpoint.IsParamError(err)
		assert.True(t, ok)
	})
}

func TestValidateOperation(t *testing.T) {
	for _, op := range []string{"sale", "refund", "credit", "authorize", "capture", "cancel", "rebill"} {
		assert.NoError(t, endpoint.ValidateOperation(op), op)
	}

	err := endpoint.ValidateOperation("chargeback")

	opErr, ok := endpoint.IsInvalidOperationError(err)
	require.True(t, ok)
	assert.Equal(t, "chargeback", opErr.Value)
	assert.Equal(t, endpoint.TransactionOperations, opErr.Allowed)
	assert.Contains(t, err.Error(), "sale,refund,credit,authorize,capture,cancel,rebill")
}
