package swapi

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Namespace is the XML namespace of the Synergy Wholesale API.
const Namespace = "urn:WholesaleSystem"

// Param is one named SOAP parameter.
type Param struct {
	Name  string
	Value any
}

// Params is an ordered parameter list. Order is preserved on the wire so
// that resellerID and apiKey always lead the request body.
type Params []Param

// Get returns the value for a parameter name, if present.
func (p Params) Get(name string) (any, bool) {
	for _, param := range p {
		if param.Name == name {
			return param.Value, true
		}
	}
	return nil, false
}

// rpcBody marshals one remote operation call as the SOAP body content:
// an element named after the operation containing one child per parameter.
type rpcBody struct {
	op     string
	params Params
}

func (b *rpcBody) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{
		Name: xml.Name{Local: b.op},
		Attr: []xml.Attr{{Name: xml.Name{Local: "xmlns"}, Value: Namespace}},
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, p := range b.params {
		if err := encodeParam(e, p.Name, p.Value); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

func encodeParam(e *xml.Encoder, name string, value any) error {
	if value == nil {
		return nil
	}

	start := xml.StartElement{Name: xml.Name{Local: name}}

	switch v := value.(type) {
	case Params:
		if err := e.EncodeToken(start); err != nil {
			return err
		}
		for _, p := range v {
			if err := encodeParam(e, p.Name, p.Value); err != nil {
				return err
			}
		}
		return e.EncodeToken(start.End())
	case map[string]any:
		if err := e.EncodeToken(start); err != nil {
			return err
		}
		for _, key := range sortedKeys(v) {
			if err := encodeParam(e, key, v[key]); err != nil {
				return err
			}
		}
		return e.EncodeToken(start.End())
	case map[string]string:
		if err := e.EncodeToken(start); err != nil {
			return err
		}
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if err := encodeParam(e, key, v[key]); err != nil {
				return err
			}
		}
		return e.EncodeToken(start.End())
	case []string:
		items := make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
		return encodeList(e, start, items)
	case []any:
		return encodeList(e, start, v)
	default:
		return e.EncodeElement(scalarText(v), start)
	}
}

// encodeList writes array parameters as <name><item>…</item>…</name>,
// matching the SOAP array encoding the remote PHP endpoint expects.
func encodeList(e *xml.Encoder, start xml.StartElement, items []any) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, item := range items {
		if err := encodeParam(e, "item", item); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

func scalarText(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// rpcResult unmarshals an operation response into a field map. Element
// values stay strings; nested elements become nested maps and repeated
// element names become slices. Remote field names are preserved exactly.
type rpcResult struct {
	Fields map[string]any
}

func (r *rpcResult) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	value, err := decodeElement(d, start)
	if err != nil {
		return err
	}

	fields, ok := value.(map[string]any)
	if !ok {
		r.Fields = map[string]any{"result": fmt.Sprint(value)}
		return nil
	}
	r.Fields = unwrapReturn(fields)
	return nil
}

// unwrapReturn strips the single <return> wrapper the RPC responses carry,
// so callers see the payload fields directly.
func unwrapReturn(fields map[string]any) map[string]any {
	if len(fields) != 1 {
		return fields
	}
	inner, ok := fields["return"].(map[string]any)
	if !ok {
		return fields
	}
	return inner
}

func decodeElement(d *xml.Decoder, _ xml.StartElement) (any, error) {
	var text strings.Builder
	children := map[string]any{}

	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			child, err := decodeElement(d, t)
			if err != nil {
				return nil, err
			}
			addChild(children, t.Name.Local, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			if len(children) > 0 {
				return children, nil
			}
			return strings.TrimSpace(text.String()), nil
		}
	}
}

// addChild stores a decoded child field, turning repeated names into slices.
func addChild(fields map[string]any, name string, value any) {
	existing, ok := fields[name]
	if !ok {
		fields[name] = value
		return
	}
	if list, ok := existing.([]any); ok {
		fields[name] = append(list, value)
		return
	}
	fields[name] = []any{existing, value}
}
