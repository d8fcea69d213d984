// Package server assembles the MCP server: it registers the selected tool
// groups, resolves credentials per call, validates arguments and maps
// remote outcomes onto tool results.
package server

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/domainward/swmcp/internal/creds"
	"github.com/domainward/swmcp/internal/registry"
	"github.com/domainward/swmcp/internal/swapi"
	"github.com/domainward/swmcp/internal/tools/account"
	"github.com/domainward/swmcp/internal/tools/advanced"
	"github.com/domainward/swmcp/internal/tools/discovery"
	"github.com/domainward/swmcp/internal/tools/dns"
	"github.com/domainward/swmcp/internal/tools/portfolio"
	"github.com/domainward/swmcp/internal/tools/transfers"
)

const (
	// Name and Version identify the server during the MCP handshake.
	Name    = "Synergy Wholesale"
	Version = "1.0.0"
)

// Backend performs remote calls on behalf of tool handlers.
type Backend interface {
	Dispatch(ctx context.Context, op string, c creds.Credentials, params swapi.Params) (map[string]any, error)
	Endpoint() string
}

type group struct {
	tools   func() []registry.Tool
	summary string
}

var groups = map[string]group{
	"account":   {account.Tools, account.Summary},
	"discovery": {discovery.Tools, discovery.Summary},
	"dns":       {dns.Tools, dns.Summary},
	"portfolio": {portfolio.Tools, portfolio.Summary},
	"transfers": {transfers.Tools, transfers.Summary},
	"advanced":  {advanced.Tools, advanced.Summary},
}

// groupOrder fixes the registration order of tool groups.
var groupOrder = []string{"account", "discovery", "dns", "portfolio", "transfers", "advanced"}

// GroupNames returns all known group names sorted.
func GroupNames() []string {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the MCP server with the given tool groups registered. An empty
// group list enables every group.
func New(resolver *creds.Resolver, backend Backend, enabled []string) (*server.MCPServer, error) {
	selected, err := selectGroups(enabled)
	if err != nil {
		return nil, err
	}

	reg := registry.New()
	for _, name := range selected {
		if err := reg.Register(groups[name].tools()...); err != nil {
			return nil, fmt.Errorf("registering %s tools: %w", name, err)
		}
	}

	s := server.NewMCPServer(Name, Version,
		server.WithInstructions(instructions(selected)),
	)
	for _, tool := range reg.Tools() {
		s.AddTool(toMCPTool(tool), handler(tool, resolver, backend))
	}
	return s, nil
}

func selectGroups(enabled []string) ([]string, error) {
	if len(enabled) == 0 {
		return groupOrder, nil
	}

	want := make(map[string]bool, len(enabled))
	for _, name := range enabled {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if _, ok := groups[name]; !ok {
			return nil, fmt.Errorf("unknown tool group %q (known groups: %s)", name, strings.Join(GroupNames(), ", "))
		}
		want[name] = true
	}
	if len(want) == 0 {
		return groupOrder, nil
	}

	selected := make([]string, 0, len(want))
	for _, name := range groupOrder {
		if want[name] {
			selected = append(selected, name)
		}
	}
	return selected, nil
}

func instructions(selected []string) string {
	var b strings.Builder
	b.WriteString("This server exposes the Synergy Wholesale domain reseller API as tools.\n")
	b.WriteString("Credentials come from configuration or environment. Any tool call may override them with reseller_id and api_key arguments.\n")
	b.WriteString("\nEnabled tool groups:\n")
	for _, name := range selected {
		fmt.Fprintf(&b, "- %s: %s\n", name, groups[name].summary)
	}
	return b.String()
}

func handler(tool *registry.Tool, resolver *creds.Resolver, backend Backend) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		resellerID, _ := args["reseller_id"].(string)
		apiKey, _ := args["api_key"].(string)
		toolArgs := make(map[string]any, len(args))
		for k, v := range args {
			if k == "reseller_id" || k == "api_key" {
				continue
			}
			toolArgs[k] = v
		}

		c, err := resolver.Resolve(resellerID, apiKey)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		validated, err := tool.ValidateArgs(toolArgs)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dispatch := func(ctx context.Context, op string, params swapi.Params) (map[string]any, error) {
			return backend.Dispatch(ctx, op, c, params)
		}

		var fields map[string]any
		if tool.Handler != nil {
			fields, err = tool.Handler(ctx, &registry.Call{
				Args:     validated,
				Dispatch: dispatch,
				Endpoint: backend.Endpoint(),
			})
		} else {
			fields, err = dispatch(ctx, tool.Remote, tool.RemoteParams(validated))
		}
		if err != nil {
			return errorResult(err), nil
		}
		return mcp.NewToolResultStructuredOnly(fields), nil
	}
}

// errorResult maps dispatch failures onto tool results. Remote rejections
// and transport failures become structured error payloads so callers can
// inspect the remote status; local validation errors stay textual.
func errorResult(err error) *mcp.CallToolResult {
	var opErr *swapi.OperationError
	if errors.As(err, &opErr) {
		payload := map[string]any{
			"error":  opErr.Message,
			"status": opErr.Status,
		}
		for k, v := range opErr.Fields {
			if _, taken := payload[k]; !taken {
				payload[k] = v
			}
		}
		result := mcp.NewToolResultStructuredOnly(payload)
		result.IsError = true
		return result
	}

	var trErr *swapi.TransportError
	if errors.As(err, &trErr) {
		result := mcp.NewToolResultStructuredOnly(map[string]any{
			"error":      fmt.Sprintf("Transport error: %v", trErr.Err),
			"method":     trErr.Op,
			"suggestion": "Check network connectivity and API endpoint",
		})
		result.IsError = true
		return result
	}

	return mcp.NewToolResultError(err.Error())
}
