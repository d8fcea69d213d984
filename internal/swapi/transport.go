package swapi

import (
	"context"
	"fmt"
	"time"

	"github.com/hooklift/gowsdl/soap"
)

// Caller issues one remote procedure call and returns the raw response
// fields. Implemented by *Client; tests substitute fakes.
type Caller interface {
	Call(ctx context.Context, op string, params Params) (map[string]any, error)
	Endpoint() string
}

// Client is the SOAP transport for the Synergy Wholesale API.
type Client struct {
	soap     *soap.Client
	endpoint string
}

// NewClient creates a SOAP client for the given endpoint. The timeout
// bounds each outbound HTTP request.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		soap: soap.NewClient(endpoint,
			soap.WithRequestTimeout(timeout),
			soap.WithHTTPHeaders(map[string]string{"User-Agent": "swmcp"}),
		),
		endpoint: endpoint,
	}
}

// Endpoint returns the remote API URL this client talks to.
func (c *Client) Endpoint() string { return c.endpoint }

// Call performs one SOAP call. Errors are returned raw; classification into
// transport vs. operation failures happens in the Dispatcher.
func (c *Client) Call(ctx context.Context, op string, params Params) (map[string]any, error) {
	req := &rpcBody{op: op, params: params}
	res := &rpcResult{}

	action := fmt.Sprintf("%s#%s", Namespace, op)
	if err := c.soap.CallContext(ctx, action, req, res); err != nil {
		return nil, err
	}
	if res.Fields == nil {
		res.Fields = map[string]any{}
	}
	return res.Fields, nil
}
