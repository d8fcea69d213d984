package server

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/domainward/swmcp/internal/registry"
)

const credentialNote = " (falls back to the configured default)"

// toMCPTool renders a registry entry as an MCP tool declaration. Every tool
// additionally accepts reseller_id and api_key overrides.
func toMCPTool(t *registry.Tool) mcp.Tool {
	properties := make(map[string]any, len(t.Fields)+2)
	var required []string
	for _, f := range t.Fields {
		properties[f.Name] = fieldSchema(f)
		if f.Required {
			required = append(required, f.Name)
		}
	}

	properties["reseller_id"] = map[string]any{
		"type":        "string",
		"description": "Optional Synergy Wholesale reseller ID" + credentialNote,
	}
	properties["api_key"] = map[string]any{
		"type":        "string",
		"description": "Optional Synergy Wholesale API key" + credentialNote,
	}

	return mcp.Tool{
		Name:        t.Name,
		Description: t.Description,
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: properties,
			Required:   required,
		},
	}
}

func fieldSchema(f registry.Field) map[string]any {
	schema := make(map[string]any, 4)
	switch f.Type {
	case registry.Integer:
		schema["type"] = "integer"
	case registry.Number:
		schema["type"] = "number"
	case registry.Boolean:
		schema["type"] = "boolean"
	case registry.Object:
		schema["type"] = "object"
	case registry.StringList:
		schema["type"] = "array"
		schema["items"] = map[string]any{"type": "string"}
	case registry.ObjectList:
		schema["type"] = "array"
		schema["items"] = map[string]any{"type": "object"}
	default:
		schema["type"] = "string"
	}

	if f.Description != "" {
		schema["description"] = f.Description
	}
	if len(f.Enum) > 0 {
		enum := make([]any, len(f.Enum))
		for i, v := range f.Enum {
			enum[i] = v
		}
		schema["enum"] = enum
	}
	if f.Default != nil {
		schema["default"] = f.Default
	}
	if f.MinItems > 0 {
		schema["minItems"] = f.MinItems
	}
	if f.MaxItems > 0 {
		schema["maxItems"] = f.MaxItems
	}
	return schema
}
