package endpoint

import (
	"context"
	"fmt"

	"github.com/payxpert/payxpert-go/internal/transport"
)

// Hosts holds the host name of each product, e.g. api.payxpert.com.
type Hosts struct {
	Gateway string
	Connect string
}

func (h Hosts) For(p Product) string {
	switch p {
	case ProductGateway:
		return h.Gateway
	case ProductConnect:
		return h.Connect
	}
	return ""
}

// Dispatcher turns catalogue entries into Request Core calls.
type Dispatcher struct {
	sender transport.Sender
	hosts  Hosts
}

func NewDispatcher(sender transport.Sender, hosts Hosts) *Dispatcher {
	return &Dispatcher{sender: sender, hosts: hosts}
}

func (d *Dispatcher) Host(p Product) string {
	return d.hosts.For(p)
}

// Request builds the Request Core input for an operation without sending it.
func (d *Dispatcher) Request(name Name, params []string, body any) (transport.Request, error) {
	e, ok := Lookup(name)
	if !ok {
		return transport.Request{}, fmt.Errorf("%w: %s", ErrUnknownEndpoint, name)
	}

	host := d.hosts.For(e.Product)
	if host == "" {
		return transport.Request{}, fmt.Errorf("%w: %s", ErrMissingHost, e.Product)
	}

	path, err := e.Resolve(params...)
	if err != nil {
		return transport.Request{}, err
	}

	if e.NeedsVersion {
		body = InjectVersion(body)
	}

	return transport.Request{Host: host, Path: path, Method: e.Method, Body: body}, nil
}

// Call sends the named operation and decodes the answer into a T.
func Call[T any](ctx context.Context, d *Dispatcher, name Name, params []string, body any) (*T, error) {
	req, err := d.Request(name, params, body)
	if err != nil {
		return nil, err
	}
	return transport.Do[T](ctx, d.sender, req)
}

// CallObject is Call for operations whose answer is a JSON object.
func CallObject[M ~map[string]any](ctx context.Context, d *Dispatcher, name Name, params []string, body any) (M, error) {
	req, err := d.Request(name, params, body)
	if err != nil {
		return nil, err
	}
	return transport.DoObject[M](ctx, d.sender, req)
}
