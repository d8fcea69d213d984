package creds

import (
	"errors"
	"strings"
	"testing"
)

func TestResolveExplicitOverridesDefaults(t *testing.T) {
	r := NewResolver(Credentials{ResellerID: "default-id", APIKey: "default-key"})

	got, err := r.Resolve("explicit-id", "explicit-key")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got.ResellerID != "explicit-id" || got.APIKey != "explicit-key" {
		t.Fatalf("Resolve() = %+v, want explicit values", got)
	}
}

func TestResolveFallsBackPerField(t *testing.T) {
	r := NewResolver(Credentials{ResellerID: "default-id", APIKey: "default-key"})

	got, err := r.Resolve("explicit-id", "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got.ResellerID != "explicit-id" {
		t.Fatalf("ResellerID = %q, want %q", got.ResellerID, "explicit-id")
	}
	if got.APIKey != "default-key" {
		t.Fatalf("APIKey = %q, want default fallback", got.APIKey)
	}
}

func TestResolveMissingBothFailsClosed(t *testing.T) {
	r := NewResolver(Credentials{})

	_, err := r.Resolve("", "")
	if err == nil {
		t.Fatal("Resolve() error = nil, want *MissingError")
	}

	var missing *MissingError
	if !errors.As(err, &missing) {
		t.Fatalf("Resolve() error type = %T, want *MissingError", err)
	}
	if len(missing.Fields) != 2 {
		t.Fatalf("missing fields = %v, want both", missing.Fields)
	}
}

func TestResolveMissingErrorNamesAbsentField(t *testing.T) {
	r := NewResolver(Credentials{ResellerID: "default-id"})

	_, err := r.Resolve("", "")
	var missing *MissingError
	if !errors.As(err, &missing) {
		t.Fatalf("Resolve() error type = %T, want *MissingError", err)
	}
	if len(missing.Fields) != 1 || missing.Fields[0] != "api_key" {
		t.Fatalf("missing fields = %v, want [api_key]", missing.Fields)
	}
	if !strings.Contains(err.Error(), "api_key") {
		t.Fatalf("error message %q should name api_key", err.Error())
	}
}
