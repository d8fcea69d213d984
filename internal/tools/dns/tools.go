// Package dns provides the DNS and routing tools: zones, records, email
// forwarding and URL forwarding.
package dns

import (
	"context"
	"fmt"
	"strings"

	"github.com/domainward/swmcp/internal/registry"
	"github.com/domainward/swmcp/internal/swapi"
)

// Summary describes this tool group for the server instructions.
const Summary = "DNS and routing management: zones, records (single and bulk updates), email forwarding and URL forwarding."

// maxBulkUpdate caps bulk_update_dns requests before any remote call.
const maxBulkUpdate = 50

const defaultTTL = int64(3600)

// Tools returns the dns tool set.
func Tools() []registry.Tool {
	return []registry.Tool{
		{
			Name:        "add_dns_zone",
			Description: "Create a DNS zone for a domain.",
			Remote:      "addDNSZone",
			Fields:      domainNameField(),
		},
		{
			Name:        "delete_dns_zone",
			Description: "Delete the DNS zone for a domain.",
			Remote:      "deleteDNSZone",
			Fields:      domainNameField(),
		},
		{
			Name:        "list_dns_zone",
			Description: "List all records in a domain's DNS zone.",
			Remote:      "listDNSZone",
			Fields:      domainNameField(),
		},
		{
			Name:        "add_dns_record",
			Description: "Add a DNS record to a zone. MX and SRV records require a priority.",
			Fields: []registry.Field{
				{Name: "domain_name", Type: registry.String, Description: "The domain name", Required: true},
				{Name: "record_type", Type: registry.String, Description: "Record type (A, AAAA, CNAME, MX, TXT, SRV, NS)", Required: true},
				{Name: "name", Type: registry.String, Description: "Record name, \"@\" for root", Required: true},
				{Name: "content", Type: registry.String, Description: "Record content", Required: true},
				{Name: "ttl", Type: registry.Integer, Description: "Time to live in seconds", Default: defaultTTL},
				{Name: "priority", Type: registry.Integer, Description: "Priority, required for MX and SRV records"},
			},
			Handler: addRecord,
		},
		{
			Name:        "delete_dns_record",
			Description: "Delete a DNS record from a zone.",
			Remote:      "deleteDNSRecord",
			Fields: []registry.Field{
				{Name: "domain_name", Remote: "domainName", Type: registry.String, Description: "The domain name", Required: true},
				{Name: "record_id", Remote: "recordID", Type: registry.String, Description: "ID of the record to delete", Required: true},
			},
		},
		{
			Name:        "update_dns_record",
			Description: "Update fields of an existing DNS record. At least one field must change.",
			Fields: []registry.Field{
				{Name: "domain_name", Type: registry.String, Description: "The domain name", Required: true},
				{Name: "record_id", Type: registry.String, Description: "ID of the record to update", Required: true},
				{Name: "record_type", Type: registry.String, Description: "New record type"},
				{Name: "name", Type: registry.String, Description: "New record name"},
				{Name: "content", Type: registry.String, Description: "New record content"},
				{Name: "ttl", Type: registry.Integer, Description: "New TTL in seconds"},
				{Name: "priority", Type: registry.Integer, Description: "New priority for MX/SRV records"},
			},
			Handler: updateRecord,
		},
		{
			Name:        "bulk_update_dns",
			Description: "Update up to 50 DNS records of one domain, reporting a per-record result.",
			Fields: []registry.Field{
				{Name: "domain_name", Type: registry.String, Description: "The domain name", Required: true},
				{Name: "records", Type: registry.ObjectList, Description: "Record updates, each with record_id plus the fields to change", Required: true, MinItems: 1, MaxItems: maxBulkUpdate},
			},
			Handler: bulkUpdate,
		},
		{
			Name:        "add_email_forward",
			Description: "Set up email forwarding for a domain.",
			Fields: []registry.Field{
				{Name: "domain_name", Type: registry.String, Description: "The domain name", Required: true},
				{Name: "source_email", Type: registry.String, Description: "Source address, a bare local part is completed with the domain", Required: true},
				{Name: "destination_email", Type: registry.String, Description: "Address to forward to", Required: true},
			},
			Handler: addEmailForward,
		},
		{
			Name:        "delete_email_forward",
			Description: "Remove an email forwarding rule.",
			Fields: []registry.Field{
				{Name: "domain_name", Type: registry.String, Description: "The domain name", Required: true},
				{Name: "source_email", Type: registry.String, Description: "Source address of the rule to remove", Required: true},
			},
			Handler: deleteEmailForward,
		},
		{
			Name:        "list_email_forwards",
			Description: "List all email forwarding rules for a domain.",
			Remote:      "listMailForwards",
			Fields:      domainNameField(),
		},
		{
			Name:        "add_url_forward",
			Description: "Set up URL forwarding for a subdomain.",
			Fields: []registry.Field{
				{Name: "domain_name", Type: registry.String, Description: "The domain name", Required: true},
				{Name: "subdomain", Type: registry.String, Description: "Subdomain to forward, \"@\" for the root", Required: true},
				{Name: "destination_url", Type: registry.String, Description: "URL to forward to", Required: true},
				{Name: "forward_type", Type: registry.String, Description: "301 permanent, 302 temporary, or frame for masked forwarding", Enum: []string{"301", "302", "frame"}, Default: "301"},
				{Name: "forward_title", Type: registry.String, Description: "Page title, used only with frame forwarding"},
			},
			Handler: addURLForward,
		},
		{
			Name:        "delete_url_forward",
			Description: "Remove URL forwarding from a subdomain.",
			Remote:      "deleteSimpleURLForward",
			Fields: []registry.Field{
				{Name: "domain_name", Remote: "domainName", Type: registry.String, Description: "The domain name", Required: true},
				{Name: "subdomain", Type: registry.String, Description: "Subdomain to remove forwarding from", Required: true},
			},
		},
		{
			Name:        "list_url_forwards",
			Description: "List all URL forwarding rules for a domain.",
			Remote:      "listSimpleURLForwards",
			Fields:      domainNameField(),
		},
	}
}

func domainNameField() []registry.Field {
	return []registry.Field{
		{Name: "domain_name", Remote: "domainName", Type: registry.String, Description: "The domain name", Required: true},
	}
}

func addRecord(ctx context.Context, call *registry.Call) (map[string]any, error) {
	recordType := strings.ToUpper(call.Args["record_type"].(string))

	priority, hasPriority := call.Args["priority"].(int64)
	if (recordType == "MX" || recordType == "SRV") && !hasPriority {
		return nil, registry.InvalidParams("priority is required for %s records", recordType)
	}

	params := swapi.Params{
		{Name: "domainName", Value: call.Args["domain_name"]},
		{Name: "type", Value: recordType},
		{Name: "name", Value: call.Args["name"]},
		{Name: "content", Value: call.Args["content"]},
		{Name: "TTL", Value: call.Args["ttl"]},
	}
	if hasPriority && (recordType == "MX" || recordType == "SRV") {
		params = append(params, swapi.Param{Name: "priority", Value: priority})
	}
	return call.Dispatch(ctx, "addDNSRecord", params)
}

func updateRecord(ctx context.Context, call *registry.Call) (map[string]any, error) {
	params, err := updateRecordParams(call.Args)
	if err != nil {
		return nil, err
	}
	return call.Dispatch(ctx, "updateDNSRecord", params)
}

func updateRecordParams(args map[string]any) (swapi.Params, error) {
	params := swapi.Params{
		{Name: "domainName", Value: args["domain_name"]},
		{Name: "recordID", Value: args["record_id"]},
	}
	if t, ok := args["record_type"].(string); ok {
		params = append(params, swapi.Param{Name: "type", Value: strings.ToUpper(t)})
	}
	if name, ok := args["name"].(string); ok {
		params = append(params, swapi.Param{Name: "name", Value: name})
	}
	if content, ok := args["content"].(string); ok {
		params = append(params, swapi.Param{Name: "content", Value: content})
	}
	if ttl, ok := args["ttl"].(int64); ok {
		params = append(params, swapi.Param{Name: "TTL", Value: ttl})
	}
	if priority, ok := args["priority"].(int64); ok {
		params = append(params, swapi.Param{Name: "priority", Value: priority})
	}

	if len(params) == 2 {
		return nil, registry.InvalidParams("at least one field to update must be provided")
	}
	return params, nil
}

func bulkUpdate(ctx context.Context, call *registry.Call) (map[string]any, error) {
	domain := call.Args["domain_name"].(string)
	records := call.Args["records"].([]any)

	updatable := registry.Tool{Fields: []registry.Field{
		{Name: "record_id", Type: registry.String, Required: true},
		{Name: "record_type", Type: registry.String},
		{Name: "name", Type: registry.String},
		{Name: "content", Type: registry.String},
		{Name: "ttl", Type: registry.Integer},
		{Name: "priority", Type: registry.Integer},
	}}

	results := make(map[string]any, len(records))
	for i, item := range records {
		entry := item.(map[string]any)
		id, _ := entry["record_id"].(string)
		if id == "" {
			results[fmt.Sprintf("record_%d", i)] = map[string]any{"error": "missing record_id"}
			continue
		}

		args := make(map[string]any, len(entry))
		for _, f := range updatable.Fields {
			if v, ok := entry[f.Name]; ok {
				args[f.Name] = v
			}
		}
		validated, err := updatable.ValidateArgs(args)
		if err != nil {
			results[id] = map[string]any{"error": err.Error()}
			continue
		}
		validated["domain_name"] = domain
		params, err := updateRecordParams(validated)
		if err != nil {
			results[id] = map[string]any{"error": err.Error()}
			continue
		}

		fields, err := call.Dispatch(ctx, "updateDNSRecord", params)
		if err != nil {
			results[id] = map[string]any{"error": err.Error()}
			continue
		}
		results[id] = fields
	}
	return results, nil
}

// qualifySource completes a bare local part with the domain name.
func qualifySource(source, domain string) string {
	if strings.Contains(source, "@") {
		return source
	}
	return source + "@" + domain
}

func addEmailForward(ctx context.Context, call *registry.Call) (map[string]any, error) {
	domain := call.Args["domain_name"].(string)
	source := qualifySource(call.Args["source_email"].(string), domain)

	return call.Dispatch(ctx, "addMailForward", swapi.Params{
		{Name: "domainName", Value: domain},
		{Name: "sourceEmail", Value: source},
		{Name: "destinationEmail", Value: call.Args["destination_email"]},
	})
}

func deleteEmailForward(ctx context.Context, call *registry.Call) (map[string]any, error) {
	domain := call.Args["domain_name"].(string)
	source := qualifySource(call.Args["source_email"].(string), domain)

	return call.Dispatch(ctx, "deleteMailForward", swapi.Params{
		{Name: "domainName", Value: domain},
		{Name: "sourceEmail", Value: source},
	})
}

func addURLForward(ctx context.Context, call *registry.Call) (map[string]any, error) {
	forwardType := call.Args["forward_type"].(string)

	params := swapi.Params{
		{Name: "domainName", Value: call.Args["domain_name"]},
		{Name: "subdomain", Value: call.Args["subdomain"]},
		{Name: "destinationURL", Value: call.Args["destination_url"]},
		{Name: "type", Value: forwardType},
	}
	if title, ok := call.Args["forward_title"].(string); ok && forwardType == "frame" && title != "" {
		params = append(params, swapi.Param{Name: "title", Value: title})
	}
	return call.Dispatch(ctx, "addSimpleURLForward", params)
}
