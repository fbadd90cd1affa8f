package generator

import (
	"bytes"
	"log/slog"

	json "github.com/goccy/go-json"

	"github.com/restmock/specimport/openapi"
)

// orderedObject is a JSON object that marshals its fields in insertion
// order. Plain maps would sort keys alphabetically and lose the declared
// property order.
type orderedObject []orderedField

type orderedField struct {
	Key   string
	Value any
}

func (o orderedObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(field.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Example synthesizes a plausible value for the schema. Composite values are
// always rebuilt from the schema structure; an author-supplied example wins
// for leaf scalars only. References resolve against defs with a bounded
// depth, so self-referential schemas terminate.
func Example(s *openapi.Schema, defs openapi.Definitions) any {
	return exampleAtDepth(s, defs, 0)
}

// JSONExample synthesizes a value and serializes it to indented JSON.
// Serialization failure is logged and yields an empty string; example
// generation is best-effort and never aborts an import.
func JSONExample(s *openapi.Schema, defs openapi.Definitions) string {
	value := Example(s, defs)
	if value == nil {
		return ""
	}

	res, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		slog.Warn("cannot serialize synthesized example", "error", err)
		return ""
	}
	return string(res)
}

func exampleAtDepth(s *openapi.Schema, defs openapi.Definitions, depth int) any {
	if depth > openapi.MaxResolveDepth {
		return nil
	}
	if s == nil {
		return nil
	}

	if s.IsRef() {
		return exampleAtDepth(openapi.Resolve(s, defs, depth), defs, depth)
	}

	switch s.Type {
	case openapi.TypeObject:
		return objectExample(s, defs, depth)
	case openapi.TypeArray:
		return arrayExample(s, defs, depth)
	}

	// author-supplied examples win for leaf scalars
	if s.Example != nil {
		return s.Example
	}

	switch s.Type {
	case openapi.TypeString:
		return stringExample(s)
	case openapi.TypeInteger:
		return integerExample(s)
	case openapi.TypeNumber:
		return numberExample(s)
	case openapi.TypeBoolean:
		return true
	case "":
		if len(s.Properties) > 0 {
			return objectExample(s, defs, depth)
		}
		return "example"
	default:
		return "example"
	}
}

func objectExample(s *openapi.Schema, defs openapi.Definitions, depth int) any {
	obj := orderedObject{}
	for _, name := range s.PropertyOrder {
		value := exampleAtDepth(s.Properties[name], defs, depth+1)
		if value == nil {
			continue
		}
		obj = append(obj, orderedField{Key: name, Value: value})
	}
	return obj
}

// arrayExample holds exactly one representative element, never the
// runtime-variable length of real arrays.
func arrayExample(s *openapi.Schema, defs openapi.Definitions, depth int) any {
	if s.Items == nil {
		return []any{"example"}
	}
	return []any{exampleAtDepth(s.Items, defs, depth+1)}
}

func stringExample(s *openapi.Schema) any {
	if len(s.Enum) > 0 {
		return s.Enum[0]
	}

	if s.Pattern != "" {
		if example := PatternExample(s.Pattern); example != "" {
			return example
		}
	}

	switch s.Format {
	case openapi.FormatEmail:
		return "example@test.com"
	case openapi.FormatURI:
		return "https://example.com"
	case openapi.FormatUUID:
		return faker.UUID()
	case openapi.FormatDate:
		return "2024-01-01"
	case openapi.FormatDateTime:
		return "2024-01-01T00:00:00Z"
	case openapi.FormatIPv4:
		return "192.168.1.1"
	case openapi.FormatIPv6:
		return "2001:0db8:85a3:0000:0000:8a2e:0370:7334"
	}

	return "string"
}

func integerExample(s *openapi.Schema) any {
	if len(s.Enum) > 0 {
		return s.Enum[0]
	}

	switch {
	case s.Minimum != nil && s.Maximum != nil:
		return int64((*s.Minimum + *s.Maximum) / 2)
	case s.Minimum != nil:
		return int64(*s.Minimum)
	case s.Maximum != nil:
		if *s.Maximum < 100 {
			return int64(*s.Maximum)
		}
		return int64(100)
	}

	return int64(1)
}

func numberExample(s *openapi.Schema) any {
	if len(s.Enum) > 0 {
		return s.Enum[0]
	}

	switch {
	case s.Minimum != nil && s.Maximum != nil:
		return (*s.Minimum + *s.Maximum) / 2
	case s.Minimum != nil:
		return *s.Minimum
	case s.Maximum != nil:
		if *s.Maximum < 100 {
			return *s.Maximum
		}
		return float64(100)
	}

	return 1.0
}
