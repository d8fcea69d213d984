// Package registry holds the static tool table: each tool's parameter
// schema, the remote operation it forwards to, and the fixed translation
// from tool argument names to remote parameter names. No business rules
// live here.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/domainward/swmcp/internal/swapi"
)

// ErrNotFound is returned by Lookup for unknown tool names.
var ErrNotFound = errors.New("tool not found")

// FieldType enumerates the parameter types a tool schema may declare.
type FieldType string

const (
	String     FieldType = "string"
	Integer    FieldType = "integer"
	Number     FieldType = "number"
	Boolean    FieldType = "boolean"
	Object     FieldType = "object"
	StringList FieldType = "string_list"
	ObjectList FieldType = "object_list"
)

// Field describes one tool parameter and its fixed remote translation.
type Field struct {
	Name        string
	Type        FieldType
	Description string

	// Remote is the parameter name on the wire. Empty means same as Name.
	Remote string

	Required bool

	// Default is applied when the argument is absent. Nil means the
	// parameter is omitted from the remote call entirely.
	Default any

	// Enum restricts string values when non-empty.
	Enum []string

	// MinItems/MaxItems bound list lengths. Zero means unbounded.
	MinItems int
	MaxItems int
}

// RemoteName returns the wire name for this field.
func (f Field) RemoteName() string {
	if f.Remote != "" {
		return f.Remote
	}
	return f.Name
}

// DispatchFunc issues one outbound remote call. The server binds it to the
// dispatcher with credentials already resolved for the current call.
type DispatchFunc func(ctx context.Context, op string, params swapi.Params) (map[string]any, error)

// Call carries everything a custom handler needs for one invocation.
type Call struct {
	// Args holds the validated, coerced tool arguments.
	Args map[string]any

	// Dispatch performs one remote call with credentials injected.
	Dispatch DispatchFunc

	// Endpoint is the remote API URL, for diagnostic tools.
	Endpoint string
}

// Handler implements a tool whose behavior goes beyond a 1:1 forward
// (bulk loops, date computation, local shaping).
type Handler func(ctx context.Context, call *Call) (map[string]any, error)

// Tool is one registry entry. When Handler is nil the tool is a direct
// pass-through: validated args are translated per the field table and
// dispatched to Remote.
type Tool struct {
	Name        string
	Description string
	Remote      string
	Fields      []Field
	Handler     Handler
}

// ValidateArgs checks presence and types against the field schema and
// returns the coerced arguments keyed by tool-facing names. Defaults are
// applied for absent optional fields. Unknown arguments are rejected.
func (t *Tool) ValidateArgs(args map[string]any) (map[string]any, error) {
	known := make(map[string]Field, len(t.Fields))
	for _, f := range t.Fields {
		known[f.Name] = f
	}
	for name := range args {
		if _, ok := known[name]; !ok {
			return nil, invalidParamsError("unknown argument %q", name)
		}
	}

	out := make(map[string]any, len(args))
	for _, f := range t.Fields {
		value, present := args[f.Name]
		if !present || value == nil {
			if f.Required {
				return nil, invalidParamsError("missing required argument %q", f.Name)
			}
			if f.Default != nil {
				out[f.Name] = f.Default
			}
			continue
		}

		coerced, err := coerceField(f, value)
		if err != nil {
			return nil, err
		}
		out[f.Name] = coerced
	}
	return out, nil
}

// RemoteParams translates validated arguments into remote parameters in
// field declaration order. Absent optional arguments are omitted.
func (t *Tool) RemoteParams(validated map[string]any) swapi.Params {
	params := make(swapi.Params, 0, len(validated))
	for _, f := range t.Fields {
		value, ok := validated[f.Name]
		if !ok {
			continue
		}
		params = append(params, swapi.Param{Name: f.RemoteName(), Value: value})
	}
	return params
}

// Registry is the static name → tool table.
type Registry struct {
	tools map[string]*Tool
	order []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{tools: make(map[string]*Tool)}
}

// Register adds tools to the table. Duplicate names are an error.
func (r *Registry) Register(tools ...Tool) error {
	for _, t := range tools {
		if t.Name == "" {
			return errors.New("registering tool with empty name")
		}
		if _, exists := r.tools[t.Name]; exists {
			return fmt.Errorf("duplicate tool name %q", t.Name)
		}
		tool := t
		r.tools[t.Name] = &tool
		r.order = append(r.order, t.Name)
	}
	return nil
}

// Lookup returns the tool for a name, or an error wrapping ErrNotFound.
func (r *Registry) Lookup(name string) (*Tool, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return t, nil
}

// Tools returns all entries in registration order.
func (r *Registry) Tools() []*Tool {
	out := make([]*Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// Names returns all tool names sorted.
func (r *Registry) Names() []string {
	names := append([]string(nil), r.order...)
	sort.Strings(names)
	return names
}
