package transfers

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/domainward/swmcp/internal/registry"
	"github.com/domainward/swmcp/internal/swapi"
)

type fakeDispatch struct {
	calls  int
	op     string
	params swapi.Params
	fields map[string]any
	err    error
}

func (f *fakeDispatch) fn() registry.DispatchFunc {
	return func(ctx context.Context, op string, params swapi.Params) (map[string]any, error) {
		f.calls++
		f.op = op
		f.params = params
		if f.err != nil {
			return nil, f.err
		}
		return f.fields, nil
	}
}

func findTool(t *testing.T, name string) registry.Tool {
	t.Helper()
	for _, tool := range Tools() {
		if tool.Name == name {
			return tool
		}
	}
	t.Fatalf("tool %q not in group", name)
	return registry.Tool{}
}

func TestTransferDomainOmitsOptionalParams(t *testing.T) {
	tool := findTool(t, "transfer_domain")
	args, err := tool.ValidateArgs(map[string]any{
		"domain_name": "example.com",
		"auth_code":   "EPP123",
	})
	if err != nil {
		t.Fatalf("ValidateArgs() error = %v", err)
	}

	fake := &fakeDispatch{fields: map[string]any{}}
	if _, err := tool.Handler(context.Background(), &registry.Call{Args: args, Dispatch: fake.fn()}); err != nil {
		t.Fatalf("Handler() error = %v", err)
	}

	if fake.op != "transferDomain" {
		t.Fatalf("op = %q, want transferDomain", fake.op)
	}
	if got, _ := fake.params.Get("authCode"); got != "EPP123" {
		t.Fatalf("authCode = %v, want EPP123", got)
	}
	if _, ok := fake.params.Get("years"); ok {
		t.Fatal("years present, want omitted")
	}
	if _, ok := fake.params.Get("idProtection"); ok {
		t.Fatal("idProtection present, want omitted when false")
	}
}

func TestTransferDomainMapsOptions(t *testing.T) {
	tool := findTool(t, "transfer_domain")
	args, err := tool.ValidateArgs(map[string]any{
		"domain_name":   "example.com",
		"auth_code":     "EPP123",
		"years":         2,
		"id_protection": true,
	})
	if err != nil {
		t.Fatalf("ValidateArgs() error = %v", err)
	}

	fake := &fakeDispatch{fields: map[string]any{}}
	if _, err := tool.Handler(context.Background(), &registry.Call{Args: args, Dispatch: fake.fn()}); err != nil {
		t.Fatalf("Handler() error = %v", err)
	}
	if got, _ := fake.params.Get("years"); got != int64(2) {
		t.Fatalf("years = %v, want 2", got)
	}
	if got, _ := fake.params.Get("idProtection"); got != "on" {
		t.Fatalf("idProtection = %v, want on", got)
	}
}

func TestBulkTransferReportsPerDomainResults(t *testing.T) {
	tool := findTool(t, "bulk_transfer_domain")
	args, err := tool.ValidateArgs(map[string]any{
		"domains": []any{
			map[string]any{"domain_name": "good.com", "auth_code": "EPP1"},
			map[string]any{"domain_name": "noauth.com"},
			map[string]any{"auth_code": "EPP3"},
		},
	})
	if err != nil {
		t.Fatalf("ValidateArgs() error = %v", err)
	}

	fake := &fakeDispatch{fields: map[string]any{"status": "OK"}}
	got, err := tool.Handler(context.Background(), &registry.Call{Args: args, Dispatch: fake.fn()})
	if err != nil {
		t.Fatalf("Handler() error = %v", err)
	}

	if fake.calls != 1 {
		t.Fatalf("dispatch calls = %d, want 1", fake.calls)
	}
	if res, ok := got["good.com"].(map[string]any); !ok || res["status"] != "OK" {
		t.Fatalf("good.com result = %v, want OK", got["good.com"])
	}
	if res, ok := got["noauth.com"].(map[string]any); !ok || res["error"] != "missing auth_code" {
		t.Fatalf("noauth.com result = %v, want missing auth_code", got["noauth.com"])
	}
	if _, ok := got["domain_2"].(map[string]any); !ok {
		t.Fatalf("domain_2 result = %v, want missing domain_name error", got["domain_2"])
	}
}

func TestBulkTransferCapsAtTen(t *testing.T) {
	tool := findTool(t, "bulk_transfer_domain")
	domains := make([]any, 11)
	for i := range domains {
		domains[i] = map[string]any{"domain_name": "example.com", "auth_code": "EPP"}
	}

	if _, err := tool.ValidateArgs(map[string]any{"domains": domains}); !errors.Is(err, mcp.ErrInvalidParams) {
		t.Fatalf("ValidateArgs() error = %v, want invalid params over cap", err)
	}
}

func TestTransferStatusReshapesDomainInfo(t *testing.T) {
	tool := findTool(t, "get_transfer_status")
	args, err := tool.ValidateArgs(map[string]any{"domain_name": "example.com"})
	if err != nil {
		t.Fatalf("ValidateArgs() error = %v", err)
	}

	fake := &fakeDispatch{fields: map[string]any{
		"status":         "transferring",
		"transferStatus": "pending_registry",
		"transferDate":   "2026-08-20",
		"registrar":      "OldCo",
		"locked":         "no",
		"irrelevant":     "dropped",
	}}

	got, err := tool.Handler(context.Background(), &registry.Call{Args: args, Dispatch: fake.fn()})
	if err != nil {
		t.Fatalf("Handler() error = %v", err)
	}

	if fake.op != "domainInfo" {
		t.Fatalf("op = %q, want domainInfo", fake.op)
	}
	if got["domain"] != "example.com" {
		t.Fatalf("domain = %v, want example.com", got["domain"])
	}
	if got["transfer_status"] != "pending_registry" {
		t.Fatalf("transfer_status = %v, want pending_registry", got["transfer_status"])
	}
	if got["current_registrar"] != "OldCo" {
		t.Fatalf("current_registrar = %v, want OldCo", got["current_registrar"])
	}
	if _, ok := got["irrelevant"]; ok {
		t.Fatal("irrelevant field carried through, want dropped")
	}
}

func TestTransferStatusPropagatesErrors(t *testing.T) {
	tool := findTool(t, "get_transfer_status")
	args, err := tool.ValidateArgs(map[string]any{"domain_name": "example.com"})
	if err != nil {
		t.Fatalf("ValidateArgs() error = %v", err)
	}

	fake := &fakeDispatch{err: &swapi.OperationError{Op: "domainInfo", Status: "ERR_DOMAIN_NOT_FOUND", Message: "no such domain"}}
	if _, err := tool.Handler(context.Background(), &registry.Call{Args: args, Dispatch: fake.fn()}); err == nil {
		t.Fatal("Handler() error = nil, want remote error")
	}
}
