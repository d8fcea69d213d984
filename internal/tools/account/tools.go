// Package account provides the account management tools: balance,
// transaction history, invoices, renewal reminders, and API diagnostics.
package account

import (
	"context"
	"errors"
	"time"

	"github.com/domainward/swmcp/internal/registry"
	"github.com/domainward/swmcp/internal/swapi"
)

// Summary describes this tool group for the server instructions.
const Summary = "Account management: balance queries, transaction history, invoices, renewal reminders and API connectivity diagnostics."

var now = time.Now

const dateFormat = "2006-01-02"

// Tools returns the account tool set.
func Tools() []registry.Tool {
	return []registry.Tool{
		{
			Name:        "balance_query",
			Description: "Get the current prepaid account balance.",
			Remote:      "balanceQuery",
		},
		{
			Name:        "get_transaction_history",
			Description: "List account transactions over the last N days.",
			Fields: []registry.Field{
				{Name: "days", Type: registry.Integer, Description: "How many days back to include", Default: int64(30)},
				{Name: "limit", Type: registry.Integer, Description: "Maximum number of transactions to return", Default: int64(100)},
			},
			Handler: transactionHistory,
		},
		{
			Name:        "get_invoice_list",
			Description: "List invoices for a year, optionally narrowed to one month.",
			Fields: []registry.Field{
				{Name: "year", Type: registry.Integer, Description: "Invoice year (defaults to the current year)"},
				{Name: "month", Type: registry.Integer, Description: "Invoice month, 1-12"},
			},
			Handler: invoiceList,
		},
		{
			Name:        "domain_renew_required_check",
			Description: "List domains that require renewal within the given window.",
			Remote:      "domainRenewRequired",
			Fields: []registry.Field{
				{Name: "days_ahead", Remote: "daysAhead", Type: registry.Integer, Description: "Window in days", Default: int64(60)},
			},
		},
		{
			Name:        "max_years_domain_renewable",
			Description: "Get the maximum number of years a domain can currently be renewed for.",
			Remote:      "getMaxYearsCanRenewFor",
			Fields: []registry.Field{
				{Name: "domain_name", Remote: "domainName", Type: registry.String, Description: "Domain to check", Required: true},
			},
		},
		{
			Name:        "get_transfer_away_list",
			Description: "List domains transferred away from the account over the last N days.",
			Fields: []registry.Field{
				{Name: "days", Type: registry.Integer, Description: "How many days back to include", Default: int64(30)},
			},
			Handler: transferAwayList,
		},
		{
			Name:        "resend_icann_verification",
			Description: "Resend the ICANN registrant verification email for a domain.",
			Remote:      "resendVerificationEmail",
			Fields: []registry.Field{
				{Name: "domain_name", Remote: "domainName", Type: registry.String, Description: "Domain to resend verification for", Required: true},
			},
		},
		{
			Name:        "test_api_connectivity",
			Description: "Probe the remote API and report connection status, endpoint and balance.",
			Handler:     testConnectivity,
		},
		{
			Name:        "get_api_limits",
			Description: "Show known API rate limits and operational constraints.",
			Handler:     apiLimits,
		},
	}
}

func transactionHistory(ctx context.Context, call *registry.Call) (map[string]any, error) {
	days := call.Args["days"].(int64)
	limit := call.Args["limit"].(int64)

	end := now()
	start := end.AddDate(0, 0, -int(days))
	return call.Dispatch(ctx, "getTransactionHistory", swapi.Params{
		{Name: "startDate", Value: start.Format(dateFormat)},
		{Name: "endDate", Value: end.Format(dateFormat)},
		{Name: "limit", Value: limit},
	})
}

func invoiceList(ctx context.Context, call *registry.Call) (map[string]any, error) {
	year, ok := call.Args["year"].(int64)
	if !ok {
		year = int64(now().Year())
	}
	params := swapi.Params{{Name: "year", Value: year}}

	if month, ok := call.Args["month"].(int64); ok {
		if month < 1 || month > 12 {
			return nil, registry.InvalidParams("argument %q must be between 1 and 12, got %d", "month", month)
		}
		params = append(params, swapi.Param{Name: "month", Value: month})
	}
	return call.Dispatch(ctx, "getInvoiceList", params)
}

func transferAwayList(ctx context.Context, call *registry.Call) (map[string]any, error) {
	days := call.Args["days"].(int64)

	end := now()
	start := end.AddDate(0, 0, -int(days))
	return call.Dispatch(ctx, "getTransferredAwayDomains", swapi.Params{
		{Name: "startDate", Value: start.Format(dateFormat)},
		{Name: "endDate", Value: end.Format(dateFormat)},
	})
}

func testConnectivity(ctx context.Context, call *registry.Call) (map[string]any, error) {
	fields, err := call.Dispatch(ctx, "balanceQuery", nil)
	if err != nil {
		var opErr *swapi.OperationError
		if errors.As(err, &opErr) {
			return map[string]any{
				"status":       "error",
				"message":      opErr.Message,
				"api_endpoint": call.Endpoint,
				"suggestion":   "Check your credentials and IP whitelist settings",
			}, nil
		}
		return map[string]any{
			"status":       "failed",
			"error":        err.Error(),
			"api_endpoint": call.Endpoint,
			"suggestion":   "Verify network connectivity and API endpoint availability",
		}, nil
	}

	return map[string]any{
		"status":          "connected",
		"message":         "API connection successful",
		"api_endpoint":    call.Endpoint,
		"api_version":     "v3.11",
		"account_balance": fields["balance"],
		"timestamp":       now().Format(time.RFC3339),
	}, nil
}

func apiLimits(ctx context.Context, call *registry.Call) (map[string]any, error) {
	return map[string]any{
		"rate_limits": map[string]any{
			"requests_per_second":     10,
			"requests_per_minute":     100,
			"requests_per_hour":       1000,
			"bulk_domain_check_limit": 30,
			"bulk_domain_info_limit":  50,
			"bulk_transfer_limit":     10,
			"bulk_register_limit":     10,
		},
		"timeout_seconds":  30,
		"min_nameservers":  2,
		"max_nameservers":  6,
		"max_domain_years": 10,
		"note":             "These are general limits. Actual limits may vary based on your account.",
	}, nil
}
