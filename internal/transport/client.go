package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Request fully describes one call: the product host, the resolved path, the
// HTTP method and an optional body.
type Request struct {
	Host   string
	Path   string
	Method string
	Body   any
}

// Response is the buffered answer of the remote host. Body is always valid
// JSON; the status code is informational only.
type Response struct {
	StatusCode int
	Body       []byte
}

// Sender is the Request Core seen from the operation layer.
type Sender interface {
	Send(ctx context.Context, req Request) (*Response, error)
}

type Config struct {
	// Scheme defaults to https.
	Scheme string
	// JSONContentType adds Content-Type: application/json to requests that
	// carry a JSON payload. Off by default.
	JSONContentType bool
	HTTPClient      *http.Client
	Logger          *slog.Logger
}

type Client struct {
	authorization   string
	scheme          string
	jsonContentType bool
	httpClient      *http.Client
	logger          *slog.Logger
}

func NewClient(creds Credentials, cfg Config) *Client {
	c := &Client{
		authorization:   creds.BasicAuth(),
		scheme:          cfg.Scheme,
		jsonContentType: cfg.JSONContentType,
		httpClient:      cfg.HTTPClient,
		logger:          cfg.Logger,
	}
	if c.scheme == "" {
		c.scheme = "https"
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Send performs a single request. GET bodies travel in the query string, any
// other method sends the body as JSON. The call fails only on transport
// errors or when the response is not JSON; the HTTP status is not inspected.
func (c *Client) Send(ctx context.Context, req Request) (*Response, error) {
	path, payload, err := c.prepare(req)
	if err != nil {
		return nil, err
	}

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	target := c.scheme + "://" + req.Host + path
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	httpReq.Header.Set("Authorization", c.authorization)
	if payload != nil && c.jsonContentType {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	c.logger.Debug("sending payment request",
		"request_id", requestID,
		"method", req.Method,
		"host", req.Host,
		"path", path,
	)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("payment request failed",
			"request_id", requestID,
			"host", req.Host,
			"path", req.Path,
			"error", err,
		)
		return nil, &TransportError{Method: req.Method, Host: req.Host, Path: req.Path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("payment response aborted",
			"request_id", requestID,
			"host", req.Host,
			"path", req.Path,
			"error", err,
		)
		return nil, &TransportError{Method: req.Method, Host: req.Host, Path: req.Path, Err: err}
	}

	c.logger.Debug("received payment response",
		"request_id", requestID,
		"status", resp.StatusCode,
		"bytes", len(body),
	)

	if !utf8.Valid(body) {
		return nil, &ParseError{StatusCode: resp.StatusCode, Body: excerpt(body), Err: errInvalidUTF8}
	}
	if !json.Valid(body) {
		return nil, &ParseError{StatusCode: resp.StatusCode, Body: excerpt(body), Err: errInvalidJSON}
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

func (c *Client) prepare(req Request) (string, []byte, error) {
	if req.Host == "" || strings.ContainsAny(req.Host, "/?#") {
		return "", nil, fmt.Errorf("%w: bad host %q", ErrInvalidRequest, req.Host)
	}
	if !strings.HasPrefix(req.Path, "/") {
		return "", nil, fmt.Errorf("%w: path %q must start with /", ErrInvalidRequest, req.Path)
	}

	switch req.Method {
	case http.MethodGet:
		if req.Body == nil {
			return req.Path, nil, nil
		}
		encoded, err := EncodeForm(req.Body)
		if err != nil {
			return "", nil, err
		}
		if encoded == "" {
			return req.Path, nil, nil
		}
		return req.Path + "?" + encoded, nil, nil
	case http.MethodPost:
		if req.Body == nil {
			return req.Path, nil, nil
		}
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return "", nil, fmt.Errorf("%w: error marshalling json: %v", ErrInvalidRequest, err)
		}
		return req.Path, payload, nil
	default:
		return "", nil, fmt.Errorf("%w: unsupported method %q", ErrInvalidRequest, req.Method)
	}
}

// Do sends req and decodes the JSON answer into a T.
func Do[T any](ctx context.Context, s Sender, req Request) (*T, error) {
	resp, err := s.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	var out T
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, &ParseError{StatusCode: resp.StatusCode, Body: excerpt(resp.Body), Err: err}
	}
	return &out, nil
}

// DoObject is Do for answers that must be a JSON object. A null, array or
// scalar answer is a *ParseError.
func DoObject[M ~map[string]any](ctx context.Context, s Sender, req Request) (M, error) {
	resp, err := s.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	var out M
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, &ParseError{StatusCode: resp.StatusCode, Body: excerpt(resp.Body), Err: fmt.Errorf("%w: %v", errNotObject, err)}
	}
	if out == nil {
		return nil, &ParseError{StatusCode: resp.StatusCode, Body: excerpt(resp.Body), Err: errNotObject}
	}
	return out, nil
}
