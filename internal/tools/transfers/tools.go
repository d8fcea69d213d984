// Package transfers provides the domain transfer tools: inbound and
// outbound transfers, transfer locks and transfer status.
package transfers

import (
	"context"
	"fmt"

	"github.com/domainward/swmcp/internal/registry"
	"github.com/domainward/swmcp/internal/swapi"
)

// Summary describes this tool group for the server instructions.
const Summary = "Domain transfers: eligibility checks, inbound transfers (single and bulk), outbound approvals and rejections, transfer locks and status."

// maxBulkTransfer caps bulk_transfer_domain requests before any remote call.
const maxBulkTransfer = 10

// Tools returns the transfers tool set.
func Tools() []registry.Tool {
	return []registry.Tool{
		{
			Name:        "is_domain_transferrable",
			Description: "Check whether a domain can be transferred in.",
			Remote:      "isDomainTransferrable",
			Fields: []registry.Field{
				{Name: "domain_name", Remote: "domainName", Type: registry.String, Description: "Domain to check", Required: true},
				{Name: "auth_code", Remote: "authCode", Type: registry.String, Description: "EPP/auth code, checked against the current registrar when given"},
			},
		},
		{
			Name:        "transfer_domain",
			Description: "Start an inbound domain transfer.",
			Fields:      transferFields(),
			Handler:     transferDomain,
		},
		{
			Name:        "bulk_transfer_domain",
			Description: "Start up to 10 inbound transfers, reporting a per-domain result.",
			Fields: []registry.Field{
				{Name: "domains", Type: registry.ObjectList, Description: "Transfer requests, each with domain_name, auth_code and optional years and id_protection", Required: true, MinItems: 1, MaxItems: maxBulkTransfer},
			},
			Handler: bulkTransfer,
		},
		{
			Name:        "resend_transfer_email",
			Description: "Resend the transfer approval email for a pending inbound transfer.",
			Remote:      "resendTransferApprovalEmail",
			Fields:      domainNameField(),
		},
		{
			Name:        "cancel_inbound_transfer",
			Description: "Cancel a pending inbound transfer.",
			Remote:      "cancelInboundTransfer",
			Fields:      domainNameField(),
		},
		{
			Name:        "approve_outbound_transfer",
			Description: "Approve an outgoing transfer using its acknowledgment key.",
			Remote:      "approveOutboundTransfer",
			Fields: []registry.Field{
				{Name: "domain_name", Remote: "domainName", Type: registry.String, Description: "Domain being transferred away", Required: true},
				{Name: "ack_key", Remote: "ackKey", Type: registry.String, Description: "Acknowledgment key from the transfer request", Required: true},
			},
		},
		{
			Name:        "reject_outbound_transfer",
			Description: "Reject an outgoing transfer.",
			Remote:      "rejectOutboundTransfer",
			Fields:      domainNameField(),
		},
		{
			Name:        "transfer_lock",
			Description: "Enable the transfer lock for a domain.",
			Remote:      "transferLock",
			Fields:      domainNameField(),
		},
		{
			Name:        "transfer_unlock",
			Description: "Disable the transfer lock for a domain.",
			Remote:      "transferUnlock",
			Fields:      domainNameField(),
		},
		{
			Name:        "get_transfer_status",
			Description: "Summarize the transfer status of a domain.",
			Fields:      domainNameField(),
			Handler:     transferStatus,
		},
	}
}

func domainNameField() []registry.Field {
	return []registry.Field{
		{Name: "domain_name", Remote: "domainName", Type: registry.String, Description: "The domain name", Required: true},
	}
}

func transferFields() []registry.Field {
	return []registry.Field{
		{Name: "domain_name", Type: registry.String, Description: "Domain to transfer", Required: true},
		{Name: "auth_code", Type: registry.String, Description: "EPP/auth code from the current registrar", Required: true},
		{Name: "years", Type: registry.Integer, Description: "Years to add on transfer"},
		{Name: "id_protection", Type: registry.Boolean, Description: "Enable WHOIS privacy after transfer", Default: false},
	}
}

func transferParams(args map[string]any) swapi.Params {
	params := swapi.Params{
		{Name: "domainName", Value: args["domain_name"]},
		{Name: "authCode", Value: args["auth_code"]},
	}
	if years, ok := args["years"].(int64); ok && years > 0 {
		params = append(params, swapi.Param{Name: "years", Value: years})
	}
	if on, _ := args["id_protection"].(bool); on {
		params = append(params, swapi.Param{Name: "idProtection", Value: "on"})
	}
	return params
}

func transferDomain(ctx context.Context, call *registry.Call) (map[string]any, error) {
	return call.Dispatch(ctx, "transferDomain", transferParams(call.Args))
}

func bulkTransfer(ctx context.Context, call *registry.Call) (map[string]any, error) {
	domains := call.Args["domains"].([]any)
	single := registry.Tool{Fields: transferFields()}

	results := make(map[string]any, len(domains))
	for i, item := range domains {
		entry := item.(map[string]any)
		name, _ := entry["domain_name"].(string)
		if name == "" {
			results[fmt.Sprintf("domain_%d", i)] = map[string]any{"error": "missing domain_name"}
			continue
		}
		if code, _ := entry["auth_code"].(string); code == "" {
			results[name] = map[string]any{"error": "missing auth_code"}
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

		fields, err := call.Dispatch(ctx, "transferDomain", transferParams(validated))
		if err != nil {
			results[name] = map[string]any{"error": err.Error()}
			continue
		}
		results[name] = fields
	}
	return results, nil
}

// transferStatus reshapes domainInfo output into a transfer summary. There
// is no dedicated status operation on the remote API.
func transferStatus(ctx context.Context, call *registry.Call) (map[string]any, error) {
	name := call.Args["domain_name"].(string)

	fields, err := call.Dispatch(ctx, "domainInfo", swapi.Params{
		{Name: "domainName", Value: name},
	})
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"domain":            name,
		"status":            fields["status"],
		"transfer_status":   fields["transferStatus"],
		"transfer_date":     fields["transferDate"],
		"current_registrar": fields["registrar"],
		"locked":            fields["locked"],
	}, nil
}
