// Package advanced provides the registry host, DNSSEC, domain category and
// country-specific (.AU, .US) tools.
package advanced

import (
	"context"

	"github.com/domainward/swmcp/internal/registry"
	"github.com/domainward/swmcp/internal/swapi"
)

// Summary describes this tool group for the server instructions.
const Summary = "Advanced operations: registry hosts (glue records), DNSSEC, domain categories, and .AU/.US specific eligibility and registrant tools."

// Tools returns the advanced tool set.
func Tools() []registry.Tool {
	return []registry.Tool{
		{
			Name:        "add_registry_host",
			Description: "Add a registry host (glue record) for a domain.",
			Remote:      "addRegistryHost",
			Fields: []registry.Field{
				{Name: "domain_name", Remote: "domainName", Type: registry.String, Description: "The domain name", Required: true},
				{Name: "host_name", Remote: "hostName", Type: registry.String, Description: "Host name, e.g. ns1.example.com", Required: true},
				{Name: "ip_addresses", Remote: "ipAddresses", Type: registry.StringList, Description: "IP addresses for the host", Required: true, MinItems: 1},
			},
		},
		{
			Name:        "delete_registry_host",
			Description: "Delete a registry host from a domain.",
			Remote:      "deleteRegistryHost",
			Fields:      hostFields(),
		},
		{
			Name:        "add_registry_host_ip",
			Description: "Add an IP address to an existing registry host.",
			Remote:      "addRegistryHostIPAddress",
			Fields:      hostIPFields(),
		},
		{
			Name:        "delete_registry_host_ip",
			Description: "Remove an IP address from a registry host.",
			Remote:      "deleteRegistryHostIPAddress",
			Fields:      hostIPFields(),
		},
		{
			Name:        "list_registry_hosts",
			Description: "List all registry hosts of a domain.",
			Remote:      "listAllRegistryHosts",
			Fields:      domainNameField(),
		},
		{
			Name:        "registry_host_info",
			Description: "Get details of one registry host.",
			Remote:      "registryHostInformation",
			Fields:      hostFields(),
		},
		{
			Name:        "add_dnssec_record",
			Description: "Add a DNSSEC DS record to a domain.",
			Remote:      "addDNSSECRecord",
			Fields:      dnssecFields(),
		},
		{
			Name:        "remove_dnssec_record",
			Description: "Remove a DNSSEC DS record from a domain.",
			Remote:      "removeDNSSECRecord",
			Fields:      dnssecFields(),
		},
		{
			Name:        "list_dnssec_entries",
			Description: "List the DNSSEC entries of a domain.",
			Remote:      "listDNSSECEntries",
			Fields:      domainNameField(),
		},
		{
			Name:        "dnssec_info",
			Description: "Get DNSSEC status information for a domain.",
			Remote:      "DNSSECInformation",
			Fields:      domainNameField(),
		},
		{
			Name:        "create_domain_category",
			Description: "Create a category for organizing domains.",
			Remote:      "createDomainCategory",
			Fields: []registry.Field{
				{Name: "category_name", Remote: "categoryName", Type: registry.String, Description: "Name of the new category", Required: true},
				{Name: "description", Type: registry.String, Description: "Category description"},
			},
		},
		{
			Name:        "update_domain_category",
			Description: "Rename a domain category or change its description.",
			Fields: []registry.Field{
				{Name: "category_id", Type: registry.String, Description: "ID of the category to update", Required: true},
				{Name: "category_name", Type: registry.String, Description: "New category name"},
				{Name: "description", Type: registry.String, Description: "New category description"},
			},
			Handler: updateCategory,
		},
		{
			Name:        "remove_domain_category",
			Description: "Delete a domain category.",
			Remote:      "removeDomainCategory",
			Fields: []registry.Field{
				{Name: "category_id", Remote: "categoryID", Type: registry.String, Description: "ID of the category to delete", Required: true},
			},
		},
		{
			Name:        "assign_domain_category",
			Description: "Assign a domain to a category.",
			Remote:      "assignDomainCategory",
			Fields:      categoryAssignFields(),
		},
		{
			Name:        "unassign_domain_category",
			Description: "Remove a domain from a category.",
			Remote:      "unassignDomainCategory",
			Fields:      categoryAssignFields(),
		},
		{
			Name:        "list_domain_categories",
			Description: "List all domain categories in the account.",
			Remote:      "listDomainCategories",
		},
		{
			Name:        "get_abn_acn_rbn_info",
			Description: "Look up Australian business registration details for .AU eligibility.",
			Remote:      "lookupABNACNRBNInformation",
			Fields: []registry.Field{
				{Name: "lookup_value", Remote: "lookupValue", Type: registry.String, Description: "The ABN, ACN or RBN to look up", Required: true},
				{Name: "lookup_type", Remote: "lookupType", Type: registry.String, Description: "Type of business number", Enum: []string{"ABN", "ACN", "RBN"}, Default: "ABN"},
			},
		},
		{
			Name:        "generate_au_eligibility",
			Description: "Generate .AU eligibility data from an Australian business number.",
			Remote:      "generateAUEligibilityFromBusinessNumber",
			Fields: []registry.Field{
				{Name: "business_number", Remote: "businessNumber", Type: registry.String, Description: "ABN, ACN or RBN", Required: true},
				{Name: "business_type", Remote: "businessType", Type: registry.String, Description: "Type of business number", Enum: []string{"ABN", "ACN", "RBN"}, Required: true},
			},
		},
		{
			Name:        "au_change_registrant_request",
			Description: "Submit a .AU change of registrant request.",
			Remote:      "AUChangeOfRegistrantRequest",
			Fields: []registry.Field{
				{Name: "domain_name", Remote: "domainName", Type: registry.String, Description: "The .AU domain", Required: true},
				{Name: "new_registrant", Remote: "newRegistrant", Type: registry.Object, Description: "New registrant contact details", Required: true},
				{Name: "new_eligibility", Remote: "newEligibility", Type: registry.Object, Description: "New eligibility information", Required: true},
				{Name: "explanation", Type: registry.String, Description: "Reason for the change", Required: true},
			},
		},
		{
			Name:        "retrieve_us_nexus_data",
			Description: "Retrieve the .US nexus data recorded for a domain.",
			Remote:      "retrieveUSNexusData",
			Fields:      domainNameField(),
		},
	}
}

func domainNameField() []registry.Field {
	return []registry.Field{
		{Name: "domain_name", Remote: "domainName", Type: registry.String, Description: "The domain name", Required: true},
	}
}

func hostFields() []registry.Field {
	return []registry.Field{
		{Name: "domain_name", Remote: "domainName", Type: registry.String, Description: "The domain name", Required: true},
		{Name: "host_name", Remote: "hostName", Type: registry.String, Description: "The host name", Required: true},
	}
}

func hostIPFields() []registry.Field {
	return append(hostFields(),
		registry.Field{Name: "ip_address", Remote: "ipAddress", Type: registry.String, Description: "IP address", Required: true},
	)
}

func dnssecFields() []registry.Field {
	return []registry.Field{
		{Name: "domain_name", Remote: "domainName", Type: registry.String, Description: "The domain name", Required: true},
		{Name: "key_tag", Remote: "keyTag", Type: registry.Integer, Description: "Key tag value", Required: true},
		{Name: "algorithm", Type: registry.Integer, Description: "DNSSEC algorithm number", Required: true},
		{Name: "digest_type", Remote: "digestType", Type: registry.Integer, Description: "Digest type number", Required: true},
		{Name: "digest", Type: registry.String, Description: "Digest value", Required: true},
	}
}

func categoryAssignFields() []registry.Field {
	return []registry.Field{
		{Name: "domain_name", Remote: "domainName", Type: registry.String, Description: "The domain name", Required: true},
		{Name: "category_id", Remote: "categoryID", Type: registry.String, Description: "Category ID", Required: true},
	}
}

func updateCategory(ctx context.Context, call *registry.Call) (map[string]any, error) {
	params := swapi.Params{{Name: "categoryID", Value: call.Args["category_id"]}}

	if name, ok := call.Args["category_name"].(string); ok && name != "" {
		params = append(params, swapi.Param{Name: "categoryName", Value: name})
	}
	if desc, ok := call.Args["description"].(string); ok && desc != "" {
		params = append(params, swapi.Param{Name: "description", Value: desc})
	}

	if len(params) == 1 {
		return nil, registry.InvalidParams("at least one field to update must be provided")
	}
	return call.Dispatch(ctx, "updateDomainCategory", params)
}
