// Package jsonrpc provides a generic JSON-RPC 2.0 client over HTTP,
// suitable for talking to blockchain nodes.
//
// Every failure mode a caller may want to fail over on is reported as an
// error: transport errors, non-2xx status codes, undecodable bodies,
// JSON-RPC error objects and responses without a result.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	transporthttp "github.com/gabapcia/txtracker/internal/pkg/transport/http"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

var (
	// ErrProviderReturnedError indicates that the remote JSON-RPC server returned an error response.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrUnexpectedStatus indicates the server answered with a non-2xx HTTP status.
	ErrUnexpectedStatus = errors.New("unexpected http status")

	// ErrEmptyResult indicates the response carried neither an error nor a result.
	ErrEmptyResult = errors.New("empty result")
)

// response represents a standard JSON-RPC 2.0 response.
type response struct {
	JsonRPC string `json:"jsonrpc"`
	Error   *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Result json.RawMessage `json:"result"`
}

// Err returns an error if the response includes a JSON-RPC error object or
// has no usable result.
func (r response) Err() error {
	if r.Error != nil {
		return fmt.Errorf("%w: [%d] - %s", ErrProviderReturnedError, r.Error.Code, r.Error.Message)
	}

	if len(r.Result) == 0 || bytes.Equal(r.Result, []byte("null")) {
		return ErrEmptyResult
	}

	return nil
}

// Client defines the interface for a generic JSON-RPC client.
type Client interface {
	// Fetch sends a JSON-RPC request with the given method name and parameters.
	// It returns the raw JSON result or an error if the request or response fails.
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

// client is a reusable JSON-RPC client over HTTP.
type client struct {
	providerEndpoint string
	bearerToken      string
	httpClient       *retryablehttp.Client
}

// Compile-time assertion that client implements the Client interface.
var _ Client = (*client)(nil)

// Fetch sends a JSON-RPC request to the remote server with the given method and parameters.
// The `id` field in the request is generated as a UUID string.
func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if c.bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}

	if err := data.Err(); err != nil {
		return nil, err
	}

	return data.Result, nil
}

// config holds optional configuration parameters for the JSON-RPC client.
type config struct {
	bearerToken string
	httpClient  *retryablehttp.Client
	httpOptions []transporthttp.Option
}

// Option defines a functional option type used to customize the client configuration.
type Option func(*config)

// NewClient creates a new JSON-RPC client pointing to the specified server endpoint.
//
// Unless WithHTTPClient is given, the underlying HTTP client is built by the
// transport/http package from the options passed through WithHTTPOptions.
func NewClient(providerEndpoint string, opts ...Option) *client {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = transporthttp.NewClient(append(cfg.httpOptions, transporthttp.WithPassthroughErrors())...)
	}

	return &client{
		providerEndpoint: providerEndpoint,
		bearerToken:      cfg.bearerToken,
		httpClient:       httpClient,
	}
}

// WithBearerToken sends "Authorization: Bearer <token>" on every request.
func WithBearerToken(token string) Option {
	return func(c *config) {
		c.bearerToken = token
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *retryablehttp.Client) Option {
	return func(c *config) {
		c.httpClient = hc
	}
}

// WithHTTPOptions configures the HTTP client built when WithHTTPClient is not used.
func WithHTTPOptions(opts ...transporthttp.Option) Option {
	return func(c *config) {
		c.httpOptions = append(c.httpOptions, opts...)
	}
}
