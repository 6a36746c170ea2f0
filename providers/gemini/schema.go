package gemini

import (
	"strings"

	"google.golang.org/genai"
)

// translateSchema converts a JSON Schema tree (map[string]any) into the
// Gemini schema dialect. Type tokens become the API's uppercase enum values,
// properties and items are translated recursively, and keywords the dialect
// does not accept (additionalProperties, $schema) are dropped by virtue of
// the typed tree having no field for them. A nil input translates to nil.
//
// Non-string "type" values are left unset rather than guessed: the field is
// externally defined and a caller may already hold a dialect-correct value.
func translateSchema(m map[string]interface{}) *genai.Schema {
	if m == nil {
		return nil
	}

	s := &genai.Schema{}

	if t, ok := m["type"].(string); ok && t != "" {
		s.Type = schemaType(t)
	}

	if props, ok := m["properties"].(map[string]interface{}); ok {
		s.Properties = make(map[string]*genai.Schema, len(props))
		for name, v := range props {
			sub, ok := v.(map[string]interface{})
			if !ok {
				continue
			}
			if conv := translateSchema(sub); conv != nil {
				s.Properties[name] = conv
			}
		}
	}

	if items, ok := m["items"].(map[string]interface{}); ok {
		s.Items = translateSchema(items)
	}

	switch r := m["required"].(type) {
	case []interface{}:
		required := make([]string, 0, len(r))
		for _, x := range r {
			if str, ok := x.(string); ok {
				required = append(required, str)
			}
		}
		s.Required = required
	case []string:
		s.Required = r
	}

	if desc, ok := m["description"].(string); ok {
		s.Description = desc
	}

	if format, ok := m["format"].(string); ok {
		s.Format = format
	}

	if enum, ok := m["enum"].([]interface{}); ok {
		values := make([]string, 0, len(enum))
		for _, e := range enum {
			if str, ok := e.(string); ok {
				values = append(values, str)
			}
		}
		s.Enum = values
	}

	return s
}

// schemaType maps a lowercase JSON Schema type token to the Gemini enum.
// Unknown tokens are uppercased as-is so dialect additions pass through.
func schemaType(t string) genai.Type {
	switch t {
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	case "object":
		return genai.TypeObject
	default:
		return genai.Type(strings.ToUpper(t))
	}
}
