// Package portfolio provides the domain portfolio tools: listing and
// inspecting owned domains, nameservers, locks, renewals and contacts.
package portfolio

import (
	"context"
	"fmt"

	"github.com/domainward/swmcp/internal/registry"
	"github.com/domainward/swmcp/internal/swapi"
)

// Summary describes this tool group for the server instructions.
const Summary = "Domain portfolio management: listing owned domains, nameservers, transfer locks, auto-renewal, WHOIS privacy, renewals and contacts."

// Bulk request caps enforced locally before any remote call is made.
const (
	maxBulkInfo  = 50
	maxBulkRenew = 20
)

// Tools returns the portfolio tool set.
func Tools() []registry.Tool {
	return []registry.Tool{
		{
			Name:        "list_domains",
			Description: "List domains in the account with pagination.",
			Remote:      "listDomains",
			Fields: []registry.Field{
				{Name: "limit", Type: registry.Integer, Description: "Maximum number of domains to return", Default: int64(100)},
				{Name: "offset", Type: registry.Integer, Description: "Starting position for pagination", Default: int64(0)},
			},
		},
		{
			Name:        "domain_info",
			Description: "Get detailed information for one domain.",
			Remote:      "domainInfo",
			Fields:      domainNameField(),
		},
		{
			Name:        "bulk_domain_info",
			Description: "Get information for up to 50 domains in one call.",
			Remote:      "bulkDomainInfo",
			Fields: []registry.Field{
				{Name: "domain_names", Remote: "domainNameList", Type: registry.StringList, Description: "Domains to query", Required: true, MinItems: 1, MaxItems: maxBulkInfo},
			},
		},
		{
			Name:        "update_nameservers",
			Description: "Replace the nameservers of a domain (2 to 6 entries).",
			Remote:      "updateNameServers",
			Fields: []registry.Field{
				{Name: "domain_name", Remote: "domainName", Type: registry.String, Description: "The domain name", Required: true},
				{Name: "nameservers", Remote: "nameServers", Type: registry.StringList, Description: "New nameserver set", Required: true, MinItems: 2, MaxItems: 6},
			},
		},
		{
			Name:        "update_domain_password",
			Description: "Set a new EPP/auth code for a domain.",
			Remote:      "updateDomainPassword",
			Fields: []registry.Field{
				{Name: "domain_name", Remote: "domainName", Type: registry.String, Description: "The domain name", Required: true},
				{Name: "new_password", Remote: "newPassword", Type: registry.String, Description: "New EPP/auth code", Required: true},
			},
		},
		{
			Name:        "lock_domain",
			Description: "Enable the registrar transfer lock for a domain.",
			Remote:      "lockDomain",
			Fields:      domainNameField(),
		},
		{
			Name:        "unlock_domain",
			Description: "Disable the registrar transfer lock for a domain.",
			Remote:      "unlockDomain",
			Fields:      domainNameField(),
		},
		{
			Name:        "enable_auto_renewal",
			Description: "Enable automatic renewal for a domain.",
			Remote:      "enableAutoRenewal",
			Fields:      domainNameField(),
		},
		{
			Name:        "disable_auto_renewal",
			Description: "Disable automatic renewal for a domain.",
			Remote:      "disableAutoRenewal",
			Fields:      domainNameField(),
		},
		{
			Name:        "enable_id_protection",
			Description: "Enable WHOIS privacy protection for a domain.",
			Remote:      "enableIDPrivacyProtection",
			Fields:      domainNameField(),
		},
		{
			Name:        "disable_id_protection",
			Description: "Disable WHOIS privacy protection for a domain.",
			Remote:      "disableIDPrivacyProtection",
			Fields:      domainNameField(),
		},
		{
			Name:        "renew_domain",
			Description: "Renew a domain for additional years.",
			Remote:      "renewDomain",
			Fields: []registry.Field{
				{Name: "domain_name", Remote: "domainName", Type: registry.String, Description: "Domain to renew", Required: true},
				{Name: "years", Type: registry.Integer, Description: "Renewal term in years", Default: int64(1)},
			},
		},
		{
			Name:        "bulk_renew_domain",
			Description: "Renew up to 20 domains, reporting a per-domain result.",
			Fields: []registry.Field{
				{Name: "domains", Type: registry.ObjectList, Description: "Renewal requests, each with domain_name and optional years", Required: true, MinItems: 1, MaxItems: maxBulkRenew},
			},
			Handler: bulkRenew,
		},
		{
			Name:        "update_contacts",
			Description: "Update one or more contact sets of a domain.",
			Fields: []registry.Field{
				{Name: "domain_name", Type: registry.String, Description: "The domain name", Required: true},
				{Name: "registrant_contact", Type: registry.Object, Description: "New registrant contact"},
				{Name: "technical_contact", Type: registry.Object, Description: "New technical contact"},
				{Name: "admin_contact", Type: registry.Object, Description: "New admin contact"},
				{Name: "billing_contact", Type: registry.Object, Description: "New billing contact"},
			},
			Handler: updateContacts,
		},
		{
			Name:        "list_contacts",
			Description: "Get the contact sets of a domain.",
			Remote:      "listContacts",
			Fields:      domainNameField(),
		},
		{
			Name:        "get_raw_contacts",
			Description: "Get the raw, unredacted contact data of a domain.",
			Remote:      "getRawContacts",
			Fields:      domainNameField(),
		},
		{
			Name:        "list_id_protected_contacts",
			Description: "Get the privacy-protected contact data shown in WHOIS.",
			Remote:      "listIDProtectedContacts",
			Fields:      domainNameField(),
		},
		{
			Name:        "resend_registrant_email",
			Description: "Resend the registrant update confirmation email.",
			Remote:      "resendRegistrantUpdateEmail",
			Fields:      domainNameField(),
		},
		{
			Name:        "cancel_pending_registrant_update",
			Description: "Cancel a pending registrant update for a domain.",
			Remote:      "cancelPendingRegistrantUpdate",
			Fields:      domainNameField(),
		},
	}
}

func domainNameField() []registry.Field {
	return []registry.Field{
		{Name: "domain_name", Remote: "domainName", Type: registry.String, Description: "The domain name", Required: true},
	}
}

func bulkRenew(ctx context.Context, call *registry.Call) (map[string]any, error) {
	domains := call.Args["domains"].([]any)

	results := make(map[string]any, len(domains))
	for i, item := range domains {
		entry := item.(map[string]any)
		name, _ := entry["domain_name"].(string)
		if name == "" {
			results[fmt.Sprintf("domain_%d", i)] = map[string]any{"error": "missing domain_name"}
			continue
		}

		years := int64(1)
		switch v := entry["years"].(type) {
		case float64:
			years = int64(v)
		case int64:
			years = v
		case int:
			years = int64(v)
		}

		fields, err := call.Dispatch(ctx, "renewDomain", swapi.Params{
			{Name: "domainName", Value: name},
			{Name: "years", Value: years},
		})
		if err != nil {
			results[name] = map[string]any{"error": err.Error()}
			continue
		}
		results[name] = fields
	}
	return results, nil
}

func updateContacts(ctx context.Context, call *registry.Call) (map[string]any, error) {
	params := swapi.Params{{Name: "domainName", Value: call.Args["domain_name"]}}

	for _, role := range []string{"registrant_contact", "technical_contact", "admin_contact", "billing_contact"} {
		if contact, ok := call.Args[role].(map[string]any); ok && len(contact) > 0 {
			params = append(params, swapi.Param{Name: role, Value: contact})
		}
	}

	if len(params) == 1 {
		return nil, registry.InvalidParams("at least one contact must be provided for update")
	}
	return call.Dispatch(ctx, "updateContacts", params)
}
