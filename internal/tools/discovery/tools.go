// Package discovery provides the domain discovery and registration tools:
// availability checks, pricing, eligibility and new registrations.
package discovery

import (
	"context"
	"fmt"

	"github.com/domainward/swmcp/internal/pricecache"
	"github.com/domainward/swmcp/internal/registry"
	"github.com/domainward/swmcp/internal/swapi"
)

// Summary describes this tool group for the server instructions.
const Summary = "Domain discovery and registration: availability checks (single and bulk), TLD pricing and eligibility, and new domain registration."

// Bulk request caps enforced locally before any remote call is made.
const (
	maxBulkCheck    = 30
	maxBulkRegister = 10
)

// pricing holds the TLD pricing table between calls. The table is the
// largest response the remote API serves and changes rarely.
var pricing = pricecache.New(pricecache.DefaultTTL)

// Tools returns the discovery tool set.
func Tools() []registry.Tool {
	return []registry.Tool{
		{
			Name:        "check_domain",
			Description: "Check whether a domain is available for registration.",
			Remote:      "checkDomain",
			Fields: []registry.Field{
				{Name: "domain_name", Remote: "domainName", Type: registry.String, Description: "Domain to check", Required: true},
			},
		},
		{
			Name:        "bulk_check_domain",
			Description: "Check availability for up to 30 domains in one call.",
			Remote:      "bulkCheckDomain",
			Fields: []registry.Field{
				{Name: "domain_names", Remote: "domainNameList", Type: registry.StringList, Description: "Domains to check", Required: true, MinItems: 1, MaxItems: maxBulkCheck},
			},
		},
		{
			Name:        "get_domain_pricing",
			Description: "Get registration, renewal and transfer pricing for all TLDs. Results are cached.",
			Fields: []registry.Field{
				{Name: "force_refresh", Type: registry.Boolean, Description: "Bypass the cached pricing table", Default: false},
			},
			Handler: domainPricing,
		},
		{
			Name:        "get_domain_eligibility_fields",
			Description: "Get the eligibility fields required to register under a TLD.",
			Remote:      "getEligibilityFields",
			Fields: []registry.Field{
				{Name: "tld", Type: registry.String, Description: "TLD to query, without the leading dot", Required: true},
			},
		},
		{
			Name:        "list_available_extensions",
			Description: "List all domain extensions available for registration.",
			Remote:      "listAvailableDomainExtensions",
		},
		{
			Name:        "determine_domain_renewable",
			Description: "Check whether a domain currently needs renewal.",
			Remote:      "determineDomainIsRenewable",
			Fields: []registry.Field{
				{Name: "domain_name", Remote: "domainName", Type: registry.String, Description: "Domain to check", Required: true},
			},
		},
		{
			Name:        "register_domain",
			Description: "Register a new domain with nameservers and contact details.",
			Fields:      registerFields(),
			Handler:     registerDomain,
		},
		{
			Name:        "bulk_register_domain",
			Description: "Register up to 10 domains, reporting a per-domain result.",
			Fields: []registry.Field{
				{Name: "domains", Type: registry.ObjectList, Description: "Registration requests, each shaped like register_domain arguments", Required: true, MinItems: 1, MaxItems: maxBulkRegister},
			},
			Handler: bulkRegisterDomain,
		},
	}
}

func registerFields() []registry.Field {
	return []registry.Field{
		{Name: "domain_name", Type: registry.String, Description: "Domain to register", Required: true},
		{Name: "years", Type: registry.Integer, Description: "Registration term in years, 1-10", Required: true},
		{Name: "nameservers", Type: registry.StringList, Description: "Nameservers for the domain", Required: true, MinItems: 2, MaxItems: 6},
		{Name: "registrant_contact", Type: registry.Object, Description: "Registrant contact details", Required: true},
		{Name: "technical_contact", Type: registry.Object, Description: "Technical contact (defaults to registrant)"},
		{Name: "admin_contact", Type: registry.Object, Description: "Admin contact (defaults to registrant)"},
		{Name: "billing_contact", Type: registry.Object, Description: "Billing contact (defaults to registrant)"},
		{Name: "id_protection", Type: registry.Boolean, Description: "Enable WHOIS privacy protection", Default: false},
		{Name: "eligibility_fields", Type: registry.Object, Description: "TLD-specific eligibility data"},
	}
}

func domainPricing(ctx context.Context, call *registry.Call) (map[string]any, error) {
	force, _ := call.Args["force_refresh"].(bool)
	return pricing.Get(force, func() (map[string]any, error) {
		return call.Dispatch(ctx, "getDomainPricing", nil)
	})
}

func registerDomain(ctx context.Context, call *registry.Call) (map[string]any, error) {
	params, err := registerParams(call.Args)
	if err != nil {
		return nil, err
	}
	return call.Dispatch(ctx, "registerDomain", params)
}

// registerParams shapes validated register_domain arguments into remote
// parameters. Contacts not supplied fall back to the registrant contact.
func registerParams(args map[string]any) (swapi.Params, error) {
	years := args["years"].(int64)
	if years < 1 || years > 10 {
		return nil, registry.InvalidParams("argument %q must be between 1 and 10, got %d", "years", years)
	}

	registrant := args["registrant_contact"].(map[string]any)
	params := swapi.Params{
		{Name: "domainName", Value: args["domain_name"]},
		{Name: "years", Value: years},
		{Name: "nameServers", Value: args["nameservers"]},
		{Name: "registrant_contact", Value: registrant},
	}
	for _, role := range []string{"technical_contact", "admin_contact", "billing_contact"} {
		contact, ok := args[role].(map[string]any)
		if !ok {
			contact = registrant
		}
		params = append(params, swapi.Param{Name: role, Value: contact})
	}
	if on, _ := args["id_protection"].(bool); on {
		params = append(params, swapi.Param{Name: "idProtection", Value: "on"})
	}
	if elig, ok := args["eligibility_fields"].(map[string]any); ok && len(elig) > 0 {
		params = append(params, swapi.Param{Name: "eligibilityFields", Value: elig})
	}
	return params, nil
}

func bulkRegisterDomain(ctx context.Context, call *registry.Call) (map[string]any, error) {
	domains := call.Args["domains"].([]any)
	single := registry.Tool{Fields: registerFields()}

	results := make(map[string]any, len(domains))
	for i, item := range domains {
		entry := item.(map[string]any)
		name, _ := entry["domain_name"].(string)
		if name == "" {
			results[fmt.Sprintf("domain_%d", i)] = map[string]any{"error": "missing domain_name"}
			continue
		}

		args := make(map[string]any, len(entry))
		for _, f := range single.Fields {
			if v, ok := entry[f.Name]; ok {
				args[f.Name] = v
			}
		}
		validated, err := single.ValidateArgs(args)
		if err != nil {
			results[name] = map[string]any{"error": err.Error()}
			continue
		}
		params, err := registerParams(validated)
		if err != nil {
			results[name] = map[string]any{"error": err.Error()}
			continue
		}

		fields, err := call.Dispatch(ctx, "registerDomain", params)
		if err != nil {
			results[name] = map[string]any{"error": err.Error()}
			continue
		}
		results[name] = fields
	}
	return results, nil
}
