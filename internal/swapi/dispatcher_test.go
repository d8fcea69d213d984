package swapi

import (
	"context"
	"errors"
	"testing"

	"github.com/domainward/swmcp/internal/creds"
	"github.com/hooklift/gowsdl/soap"
)

type fakeCaller struct {
	calls    int
	lastOp   string
	lastArgs Params
	fields   map[string]any
	err      error
}

func (f *fakeCaller) Call(_ context.Context, op string, params Params) (map[string]any, error) {
	f.calls++
	f.lastOp = op
	f.lastArgs = params
	if f.err != nil {
		return nil, f.err
	}
	return f.fields, nil
}

func (f *fakeCaller) Endpoint() string { return "https://fake.example.com/server.php" }

func testCreds() creds.Credentials {
	return creds.Credentials{ResellerID: "12345", APIKey: "secret"}
}

func TestDispatchInjectsCredentialsFirst(t *testing.T) {
	fake := &fakeCaller{fields: map[string]any{"status": "OK"}}
	d := NewDispatcher(fake)

	_, err := d.Dispatch(context.Background(), "checkDomain", testCreds(), Params{
		{Name: "domainName", Value: "example.com"},
	})
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}

	if fake.calls != 1 {
		t.Fatalf("calls = %d, want exactly 1", fake.calls)
	}
	if fake.lastOp != "checkDomain" {
		t.Fatalf("op = %q, want checkDomain", fake.lastOp)
	}
	if len(fake.lastArgs) != 3 {
		t.Fatalf("len(params) = %d, want 3", len(fake.lastArgs))
	}
	if fake.lastArgs[0].Name != "resellerID" || fake.lastArgs[0].Value != "12345" {
		t.Fatalf("params[0] = %+v, want resellerID first", fake.lastArgs[0])
	}
	if fake.lastArgs[1].Name != "apiKey" || fake.lastArgs[1].Value != "secret" {
		t.Fatalf("params[1] = %+v, want apiKey second", fake.lastArgs[1])
	}
}

func TestDispatchReturnsSuccessFieldsUnchanged(t *testing.T) {
	fake := &fakeCaller{fields: map[string]any{"status": "OK", "balance": "100.00"}}
	d := NewDispatcher(fake)

	fields, err := d.Dispatch(context.Background(), "balanceQuery", testCreds(), nil)
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if fields["balance"] != "100.00" {
		t.Fatalf("balance = %v, want unchanged 100.00", fields["balance"])
	}
}

func TestDispatchClassifiesErrStatusAsOperationError(t *testing.T) {
	fake := &fakeCaller{fields: map[string]any{
		"status":       "ERR_LOGIN_FAILED",
		"errorMessage": "Unable to login",
	}}
	d := NewDispatcher(fake)

	_, err := d.Dispatch(context.Background(), "balanceQuery", testCreds(), nil)
	var opErr *OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("Dispatch() error type = %T, want *OperationError", err)
	}
	if opErr.Status != "ERR_LOGIN_FAILED" {
		t.Fatalf("Status = %q, want ERR_LOGIN_FAILED", opErr.Status)
	}
	if opErr.Message != "Unable to login" {
		t.Fatalf("Message = %q, want verbatim remote message", opErr.Message)
	}
}

func TestDispatchErrStatusWithoutMessageGetsFallback(t *testing.T) {
	fake := &fakeCaller{fields: map[string]any{"status": "ERR_UNKNOWN"}}
	d := NewDispatcher(fake)

	_, err := d.Dispatch(context.Background(), "domainInfo", testCreds(), nil)
	var opErr *OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("Dispatch() error type = %T, want *OperationError", err)
	}
	if opErr.Message != "Unknown error occurred" {
		t.Fatalf("Message = %q, want fallback message", opErr.Message)
	}
}

func TestDispatchClassifiesSOAPFaultAsOperationError(t *testing.T) {
	fake := &fakeCaller{err: &soap.SOAPFault{Code: "SOAP-ENV:Server", String: "Internal error"}}
	d := NewDispatcher(fake)

	_, err := d.Dispatch(context.Background(), "domainInfo", testCreds(), nil)
	var opErr *OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("Dispatch() error type = %T, want *OperationError", err)
	}
	if opErr.Message != "Internal error" {
		t.Fatalf("Message = %q, want fault string", opErr.Message)
	}
}

func TestDispatchClassifiesNetworkFailureAsTransportError(t *testing.T) {
	fake := &fakeCaller{err: errors.New("dial tcp: connection refused")}
	d := NewDispatcher(fake)

	_, err := d.Dispatch(context.Background(), "domainInfo", testCreds(), nil)
	var tErr *TransportError
	if !errors.As(err, &tErr) {
		t.Fatalf("Dispatch() error type = %T, want *TransportError", err)
	}
	if tErr.Op != "domainInfo" {
		t.Fatalf("Op = %q, want domainInfo", tErr.Op)
	}
}

func TestDispatchOKWithoutStatusIsSuccess(t *testing.T) {
	fake := &fakeCaller{fields: map[string]any{"pricing": "data"}}
	d := NewDispatcher(fake)

	fields, err := d.Dispatch(context.Background(), "getDomainPricing", testCreds(), nil)
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if fields["pricing"] != "data" {
		t.Fatalf("pricing = %v, want data", fields["pricing"])
	}
}
