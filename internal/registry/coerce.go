package registry

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

func coerceField(f Field, value any) (any, error) {
	switch f.Type {
	case String:
		s, err := coerceString(value, f.Name)
		if err != nil {
			return nil, err
		}
		if err := checkEnum(f, s); err != nil {
			return nil, err
		}
		return s, nil
	case Integer:
		return coerceInteger(value, f.Name)
	case Number:
		return coerceNumber(value, f.Name)
	case Boolean:
		return coerceBoolean(value, f.Name)
	case Object:
		return coerceObject(value, f.Name)
	case StringList:
		items, err := coerceStringList(value, f.Name)
		if err != nil {
			return nil, err
		}
		if err := checkListBounds(f, len(items)); err != nil {
			return nil, err
		}
		return items, nil
	case ObjectList:
		items, err := coerceObjectList(value, f.Name)
		if err != nil {
			return nil, err
		}
		if err := checkListBounds(f, len(items)); err != nil {
			return nil, err
		}
		return items, nil
	default:
		return value, nil
	}
}

func checkEnum(f Field, s string) error {
	if len(f.Enum) == 0 {
		return nil
	}
	for _, allowed := range f.Enum {
		if s == allowed {
			return nil
		}
	}
	return invalidParamsError("argument %q must be one of %s, got %q", f.Name, strings.Join(f.Enum, ", "), s)
}

func checkListBounds(f Field, n int) error {
	if f.MinItems > 0 && n < f.MinItems {
		return invalidParamsError("argument %q must have at least %d items, got %d", f.Name, f.MinItems, n)
	}
	if f.MaxItems > 0 && n > f.MaxItems {
		return invalidParamsError("argument %q must have at most %d items, got %d", f.Name, f.MaxItems, n)
	}
	return nil
}

func coerceString(value any, name string) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", invalidParamsType(name, "string", value)
	}
	return s, nil
}

func coerceInteger(value any, name string) (int64, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case float32:
		f := float64(v)
		if math.Trunc(f) != f {
			return 0, invalidParamsError("argument %q must be integer", name)
		}
		return int64(f), nil
	case float64:
		if math.Trunc(v) != v {
			return 0, invalidParamsError("argument %q must be integer", name)
		}
		return int64(v), nil
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0, invalidParamsError("argument %q must be integer: %v", name, err)
		}
		return i, nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, invalidParamsError("argument %q must be integer: %v", name, err)
		}
		return i, nil
	default:
		return 0, invalidParamsType(name, "integer", value)
	}
}

func coerceNumber(value any, name string) (float64, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, invalidParamsError("argument %q must be number: %v", name, err)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, invalidParamsError("argument %q must be number: %v", name, err)
		}
		return f, nil
	default:
		return 0, invalidParamsType(name, "number", value)
	}
}

func coerceBoolean(value any, name string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, invalidParamsError("argument %q must be boolean: %v", name, err)
		}
		return b, nil
	default:
		return false, invalidParamsType(name, "boolean", value)
	}
}

func coerceObject(value any, name string) (map[string]any, error) {
	switch v := value.(type) {
	case map[string]any:
		return v, nil
	case string:
		var parsed any
		if err := json.Unmarshal([]byte(strings.TrimSpace(v)), &parsed); err != nil {
			return nil, invalidParamsError("argument %q must be JSON object: %v", name, err)
		}
		obj, ok := parsed.(map[string]any)
		if !ok {
			return nil, invalidParamsError("argument %q must be object", name)
		}
		return obj, nil
	default:
		return nil, invalidParamsType(name, "object", value)
	}
}

func coerceStringList(value any, name string) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, invalidParamsError("argument %q[%d] must be string, got %T", name, i, item)
			}
			out = append(out, s)
		}
		return out, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if strings.HasPrefix(trimmed, "[") {
			var parsed []any
			if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
				return nil, invalidParamsError("argument %q must be JSON array: %v", name, err)
			}
			return coerceStringList(parsed, name)
		}
		return []string{v}, nil
	default:
		return nil, invalidParamsType(name, "array of strings", value)
	}
}

func coerceObjectList(value any, name string) ([]any, error) {
	switch v := value.(type) {
	case []any:
		out := make([]any, 0, len(v))
		for i, item := range v {
			obj, err := coerceObject(item, fmt.Sprintf("%s[%d]", name, i))
			if err != nil {
				return nil, err
			}
			out = append(out, obj)
		}
		return out, nil
	case string:
		var parsed []any
		if err := json.Unmarshal([]byte(strings.TrimSpace(v)), &parsed); err != nil {
			return nil, invalidParamsError("argument %q must be JSON array: %v", name, err)
		}
		return coerceObjectList(parsed, name)
	default:
		return nil, invalidParamsType(name, "array of objects", value)
	}
}

// InvalidParams builds a typed invalid-parameters error. Custom tool
// handlers use it for local checks the schema cannot express.
func InvalidParams(format string, args ...any) error {
	return invalidParamsError(format, args...)
}

func invalidParamsType(name, want string, got any) error {
	return invalidParamsError("argument %q must be %s, got %T", name, want, got)
}

func invalidParamsError(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: %s", mcp.ErrInvalidParams, msg)
}
