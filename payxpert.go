// Package payxpert is the entry point of the PayXpert SDK. A Client holds one
// originator identity and exposes the Gateway and Connect product clients
// built on it:
//
//	px, err := payxpert.New(payxpert.Identity{OriginatorID: "102030", OriginatorPassword: "..."})
//	if err != nil {
//		return err
//	}
//	res, err := px.Gateway().QueryTransaction(ctx, transactionID)
//
// Redirect payloads of the hosted checkout are decrypted by the redirect
// package, or by Connect().HandleRedirectStatus.
package payxpert

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/payxpert/payxpert-go/connect"
	"github.com/payxpert/payxpert-go/gateway"
	"github.com/payxpert/payxpert-go/internal/config"
	"github.com/payxpert/payxpert-go/internal/endpoint"
	"github.com/payxpert/payxpert-go/internal/transport"
)

const (
	DefaultGatewayHost = "api.payxpert.com"
	DefaultConnectHost = "connect2.payxpert.com"
)

var ErrMissingCredentials = errors.New("payxpert: originator ID and password are required")

// Identity is the originator account used to sign every request.
type Identity struct {
	OriginatorID       string
	OriginatorPassword string
}

type options struct {
	hosts           endpoint.Hosts
	scheme          string
	jsonContentType bool
	httpClient      *http.Client
	logger          *slog.Logger
}

type Option func(*options)

// WithHosts overrides the product hosts. An empty value keeps the default.
func WithHosts(gatewayHost, connectHost string) Option {
	return func(o *options) {
		if gatewayHost != "" {
			o.hosts.Gateway = gatewayHost
		}
		if connectHost != "" {
			o.hosts.Connect = connectHost
		}
	}
}

// WithScheme switches the URL scheme, e.g. to "http" for a local stub.
func WithScheme(scheme string) Option {
	return func(o *options) { o.scheme = scheme }
}

// WithJSONContentType sends Content-Type: application/json with JSON bodies.
func WithJSONContentType() Option {
	return func(o *options) { o.jsonContentType = true }
}

func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Client is safe for concurrent use. Its identity never changes; use
// WithIdentity to get a client for another account.
type Client struct {
	identity Identity
	opts     options
	gateway  *gateway.Client
	connect  *connect.Client
}

func New(identity Identity, opts ...Option) (*Client, error) {
	o := options{
		hosts:  endpoint.Hosts{Gateway: DefaultGatewayHost, Connect: DefaultConnectHost},
		scheme: "https",
	}
	for _, opt := range opts {
		opt(&o)
	}
	return build(identity, o)
}

// NewFromEnv builds a Client from PAYXPERT_* environment variables, see
// internal/config for the full list.
func NewFromEnv() (*Client, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewFromConfig(cfg, cfg.Logger.NewLogger())
}

func NewFromConfig(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	identity := Identity{
		OriginatorID:       cfg.Credentials.OriginatorID,
		OriginatorPassword: cfg.Credentials.OriginatorPassword,
	}

	opts := []Option{
		WithHosts(cfg.Hosts.Gateway, cfg.Hosts.Connect),
		WithScheme(cfg.HTTP.Scheme),
		WithLogger(logger),
	}
	if cfg.HTTP.Timeout > 0 {
		opts = append(opts, WithHTTPClient(&http.Client{Timeout: cfg.HTTP.Timeout}))
	}
	if cfg.HTTP.JSONContentType {
		opts = append(opts, WithJSONContentType())
	}

	return New(identity, opts...)
}

func build(identity Identity, o options) (*Client, error) {
	creds := transport.Credentials{
		OriginatorID:       identity.OriginatorID,
		OriginatorPassword: identity.OriginatorPassword,
	}
	if creds.IsZero() {
		return nil, ErrMissingCredentials
	}

	sender := transport.NewClient(creds, transport.Config{
		Scheme:          o.scheme,
		JSONContentType: o.jsonContentType,
		HTTPClient:      o.httpClient,
		Logger:          o.logger,
	})
	d := endpoint.NewDispatcher(sender, o.hosts)

	return &Client{
		identity: identity,
		opts:     o,
		gateway:  gateway.NewClient(d),
		connect:  connect.NewClient(d),
	}, nil
}

func (c *Client) Identity() Identity {
	return c.identity
}

func (c *Client) Gateway() *gateway.Client {
	return c.gateway
}

func (c *Client) Connect() *connect.Client {
	return c.connect
}

// WithIdentity returns a new Client for another originator with the same
// hosts and options. c is left as it is.
func (c *Client) WithIdentity(identity Identity) (*Client, error) {
	return build(identity, c.opts)
}
