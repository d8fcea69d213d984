// Package swapi wraps outbound calls to the Synergy Wholesale SOAP API:
// credential injection, one call per dispatch, and normalization of the
// response envelope into a uniform success/failure result.
package swapi

import (
	"context"
	"errors"
	"strings"

	"github.com/domainward/swmcp/internal/creds"
	"github.com/hooklift/gowsdl/soap"
)

const errStatusPrefix = "ERR_"

// Dispatcher performs exactly one outbound call per Dispatch and classifies
// the outcome. It holds no per-call state and is safe for concurrent use.
type Dispatcher struct {
	caller Caller
}

// NewDispatcher creates a dispatcher over the given transport.
func NewDispatcher(caller Caller) *Dispatcher {
	return &Dispatcher{caller: caller}
}

// Endpoint returns the remote API URL of the underlying transport.
func (d *Dispatcher) Endpoint() string { return d.caller.Endpoint() }

// Dispatch calls a remote operation with the resolved credentials injected
// ahead of the operation parameters. On success it returns the response
// fields with remote names preserved. Failures are typed: *TransportError
// for network or decoding problems, *OperationError for SOAP faults and
// ERR_* response envelopes. No retries, no caching.
func (d *Dispatcher) Dispatch(ctx context.Context, op string, c creds.Credentials, params Params) (map[string]any, error) {
	authed := make(Params, 0, len(params)+2)
	authed = append(authed,
		Param{Name: "resellerID", Value: c.ResellerID},
		Param{Name: "apiKey", Value: c.APIKey},
	)
	authed = append(authed, params...)

	fields, err := d.caller.Call(ctx, op, authed)
	if err != nil {
		var fault *soap.SOAPFault
		if errors.As(err, &fault) {
			return nil, &OperationError{Op: op, Status: fault.Code, Message: fault.String}
		}
		return nil, &TransportError{Op: op, Err: err}
	}

	if status, ok := fields["status"].(string); ok && strings.HasPrefix(status, errStatusPrefix) {
		message, _ := fields["errorMessage"].(string)
		if message == "" {
			message = "Unknown error occurred"
		}
		return nil, &OperationError{Op: op, Status: status, Message: message, Fields: fields}
	}

	return fields, nil
}
