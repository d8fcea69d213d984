// Package creds resolves Synergy Wholesale reseller credentials for a
// single call. Per-call values take precedence over process-wide defaults;
// resolution fails closed when neither source supplies both values.
package creds

import "strings"

// Credentials is the reseller ID / API key pair the remote API requires on
// every call. Values are opaque and never interpreted locally.
type Credentials struct {
	ResellerID string
	APIKey     string
}

// MissingError reports which credential fields could not be resolved.
type MissingError struct {
	Fields []string
}

func (e *MissingError) Error() string {
	return "missing required credentials: " + strings.Join(e.Fields, ", ") +
		"; pass reseller_id and api_key as tool arguments, or set " +
		"SYNERGY_RESELLER_ID and SYNERGY_API_KEY"
}

// Resolver resolves per-call credentials against immutable process defaults.
type Resolver struct {
	defaults Credentials
}

// NewResolver creates a resolver with the given process-wide defaults.
// Either or both default values may be empty.
func NewResolver(defaults Credentials) *Resolver {
	return &Resolver{defaults: defaults}
}

// Resolve returns the effective credentials for one call. Explicit values
// override defaults field by field. If either field ends up empty the call
// must not proceed and a *MissingError names what is absent.
func (r *Resolver) Resolve(resellerID, apiKey string) (Credentials, error) {
	out := Credentials{
		ResellerID: resellerID,
		APIKey:     apiKey,
	}
	if out.ResellerID == "" {
		out.ResellerID = r.defaults.ResellerID
	}
	if out.APIKey == "" {
		out.APIKey = r.defaults.APIKey
	}

	var missing []string
	if out.ResellerID == "" {
		missing = append(missing, "reseller_id")
	}
	if out.APIKey == "" {
		missing = append(missing, "api_key")
	}
	if len(missing) > 0 {
		return Credentials{}, &MissingError{Fields: missing}
	}
	return out, nil
}
