package openapi

import (
	"strings"

	"github.com/pb33f/libopenapi/datamodel/high/base"
	"gopkg.in/yaml.v3"

	"github.com/restmock/specimport/internal/types"
)

// refName extracts the bare definition name from a JSON pointer reference,
// e.g. "#/components/schemas/Pet" or "#/definitions/Pet" -> "Pet".
func refName(ref string) string {
	if ref == "" {
		return ""
	}
	if idx := strings.LastIndex(ref, "/"); idx >= 0 {
		return ref[idx+1:]
	}
	return ref
}

// decodeNode converts a raw yaml node (enum/example/default payloads in
// libopenapi models) into a plain Go value.
func decodeNode(node *yaml.Node) any {
	if node == nil {
		return nil
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return nil
	}
	return v
}

func decodeNodes(nodes []*yaml.Node) []any {
	if len(nodes) == 0 {
		return nil
	}
	res := make([]any, 0, len(nodes))
	for _, n := range nodes {
		res = append(res, decodeNode(n))
	}
	return res
}

// schemaFromProxy converts a libopenapi schema proxy into the unified Schema.
// References are kept lazy: a proxy pointing at a named definition becomes a
// Ref node and is only resolved at the point of use.
func schemaFromProxy(proxy *base.SchemaProxy, refPath []string) *Schema {
	if proxy == nil {
		return nil
	}

	if proxy.IsReference() {
		if name := refName(proxy.GetReference()); name != "" {
			return &Schema{Ref: name}
		}
	}

	return schemaFromBase(proxy.Schema(), refPath)
}

// schemaFromBase converts a resolved libopenapi schema.
// refPath tracks references entered through composition merging so circular
// allOf/anyOf/oneOf chains terminate.
func schemaFromBase(s *base.Schema, refPath []string) *Schema {
	if s == nil {
		return nil
	}

	typ := ""
	if len(s.Type) > 0 {
		typ = s.Type[0]
	}

	out := &Schema{
		Type:        FixSchemaTypeTypos(typ),
		Format:      s.Format,
		Pattern:     s.Pattern,
		Minimum:     s.Minimum,
		Maximum:     s.Maximum,
		Required:    append([]string(nil), s.Required...),
		Enum:        decodeNodes(s.Enum),
		Example:     decodeNode(s.Example),
		Description: s.Description,
	}

	if s.Items != nil && s.Items.IsA() {
		out.Items = schemaFromProxy(s.Items.A, refPath)
	}

	if s.Properties != nil {
		for pair := s.Properties.First(); pair != nil; pair = pair.Next() {
			out.SetProperty(pair.Key(), schemaFromProxy(pair.Value(), refPath))
		}
	}

	mergeComposition(out, s, refPath)

	if out.Type == "" {
		switch {
		case len(out.Properties) > 0:
			out.Type = TypeObject
		case len(out.Enum) > 0:
			out.Type = GetOpenAPITypeFromValue(out.Enum[0])
		}
	}

	return out
}

// mergeComposition folds allOf members and one picked member of anyOf/oneOf
// into the parent schema: property sets and required lists are unioned,
// declared properties win over merged ones.
func mergeComposition(out *Schema, s *base.Schema, refPath []string) {
	subs := append([]*base.SchemaProxy(nil), s.AllOf...)
	if p := pickSchemaProxy(s.AnyOf); p != nil {
		subs = append(subs, p)
	}
	if p := pickSchemaProxy(s.OneOf); p != nil {
		subs = append(subs, p)
	}
	if len(subs) == 0 {
		return
	}

	for _, sub := range subs {
		if sub == nil {
			continue
		}

		subPath := types.AppendSliceFirstNonEmpty(refPath, sub.GetReference())
		if types.GetSliceMaxRepetitionNumber(subPath) > 1 {
			// circular composition chain
			continue
		}

		merged := schemaFromBase(sub.Schema(), subPath)
		if merged == nil {
			continue
		}

		if out.Type == "" {
			out.Type = merged.Type
		}
		for _, name := range merged.PropertyOrder {
			if _, ok := out.Properties[name]; !ok {
				out.SetProperty(name, merged.Properties[name])
			}
		}
		out.Required = types.SliceUnique(append(out.Required, merged.Required...))
		if out.Items == nil {
			out.Items = merged.Items
		}
		if out.Format == "" {
			out.Format = merged.Format
		}
		if out.Pattern == "" {
			out.Pattern = merged.Pattern
		}
	}

	if len(s.AllOf) > 0 && out.Type == "" {
		out.Type = TypeObject
	}
}

// pickSchemaProxy returns the first non-nil schema proxy with a reference,
// or the first non-nil schema proxy if none of them have one.
func pickSchemaProxy(items []*base.SchemaProxy) *base.SchemaProxy {
	if len(items) == 0 {
		return nil
	}

	var fstNonEmpty *base.SchemaProxy

	for _, item := range items {
		if item == nil {
			continue
		}

		if fstNonEmpty == nil {
			fstNonEmpty = item
		}

		if item.GetReference() != "" {
			return item
		}
	}

	return fstNonEmpty
}
