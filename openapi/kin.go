package openapi

import (
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/restmock/specimport/internal/types"
)

// newKinDocument normalizes an OpenAPI 3.x document parsed with kin-openapi.
//
// kin's model is map-based, so the original property and path declaration
// order is not recoverable; maps are walked in sorted key order to keep the
// output deterministic.
func newKinDocument(content []byte, dialect Dialect) (*Document, error) {
	if dialect == DialectV2 {
		return nil, newParseError(DialectV2, errKinV2Unsupported)
	}

	loader := openapi3.NewLoader()
	model, err := loader.LoadFromData(content)
	if err != nil {
		return nil, newParseError(DialectV3, err)
	}

	doc := &Document{
		Dialect:     DialectV3,
		Definitions: make(Definitions),
	}

	if model.Info != nil {
		doc.Info = Info{
			Title:       model.Info.Title,
			Version:     model.Info.Version,
			Description: model.Info.Description,
		}
	}

	for _, server := range model.Servers {
		if server == nil {
			continue
		}
		doc.Servers = append(doc.Servers, Server{URL: server.URL, Description: server.Description})
	}
	if len(doc.Servers) == 0 {
		doc.Servers = []Server{{URL: "http://localhost:8080", Description: "Default server"}}
	}

	if model.Components != nil {
		for name, ref := range model.Components.Schemas {
			doc.Definitions[name] = kinSchema(ref, nil)
		}
	}

	if model.Paths != nil {
		pathItems := model.Paths.Map()
		for _, path := range sortedKeys(pathItems) {
			operations := pathItems[path].Operations()
			for _, method := range sortedKeys(operations) {
				doc.Operations = append(doc.Operations,
					newKinOperation(path, strings.ToUpper(method), operations[method]))
			}
		}
	}

	return doc, nil
}

func newKinOperation(path, method string, op *openapi3.Operation) *Operation {
	res := &Operation{
		Path:        path,
		Method:      method,
		OperationID: op.OperationID,
		Summary:     op.Summary,
		Description: op.Description,
		Tags:        op.Tags,
	}

	for _, paramRef := range op.Parameters {
		if paramRef == nil || paramRef.Value == nil {
			continue
		}
		param := paramRef.Value
		res.Parameters = append(res.Parameters, &Parameter{
			Name:        param.Name,
			In:          strings.ToLower(param.In),
			Required:    param.Required,
			Description: param.Description,
			Schema:      kinSchema(param.Schema, nil),
			Example:     param.Example,
		})
	}

	if op.RequestBody != nil && op.RequestBody.Value != nil {
		rb := op.RequestBody.Value
		body := &RequestBody{Description: rb.Description}
		for _, contentType := range sortedKeys(rb.Content) {
			body.Contents = append(body.Contents, newKinBodyContent(contentType, rb.Content[contentType]))
		}
		if len(body.Contents) > 0 {
			res.RequestBody = body
		}
	}

	if op.Responses != nil {
		responses := op.Responses.Map()
		for _, statusCode := range sortedKeys(responses) {
			res.Responses = append(res.Responses, newKinResponse(statusCode, responses[statusCode]))
		}
	}

	return res
}

func newKinBodyContent(contentType string, mt *openapi3.MediaType) *BodyContent {
	content := &BodyContent{
		ContentType: contentType,
		Schema:      kinSchema(mt.Schema, nil),
		Example:     mt.Example,
	}

	// fall back to the first named example
	if content.Example == nil && len(mt.Examples) > 0 {
		for _, name := range sortedKeys(mt.Examples) {
			example := mt.Examples[name]
			if example != nil && example.Value != nil && example.Value.Value != nil {
				content.Example = example.Value.Value
				break
			}
		}
	}

	return content
}

func newKinResponse(statusCode string, ref *openapi3.ResponseRef) *Response {
	res := &Response{StatusCode: statusCode}
	if ref == nil || ref.Value == nil {
		return res
	}

	resp := ref.Value
	if resp.Description != nil {
		res.Description = *resp.Description
	}

	for _, contentType := range sortedKeys(resp.Content) {
		res.Contents = append(res.Contents, newKinBodyContent(contentType, resp.Content[contentType]))
	}

	for _, name := range sortedKeys(resp.Headers) {
		headerRef := resp.Headers[name]
		if headerRef == nil || headerRef.Value == nil {
			continue
		}
		header := headerRef.Value
		res.Headers = append(res.Headers, &Header{
			Name:        name,
			Description: header.Description,
			Schema:      kinSchema(header.Schema, nil),
			Example:     header.Example,
		})
	}

	return res
}

// kinSchema converts a kin schema ref into the unified Schema.
// Named references stay lazy, mirroring the libopenapi adapter.
func kinSchema(ref *openapi3.SchemaRef, refPath []string) *Schema {
	if ref == nil {
		return nil
	}

	if name := refName(ref.Ref); name != "" {
		return &Schema{Ref: name}
	}

	s := ref.Value
	if s == nil {
		return nil
	}

	typ := ""
	if s.Type != nil && len(*s.Type) > 0 {
		typ = (*s.Type)[0]
	}

	out := &Schema{
		Type:        FixSchemaTypeTypos(typ),
		Format:      s.Format,
		Pattern:     s.Pattern,
		Minimum:     s.Min,
		Maximum:     s.Max,
		Required:    append([]string(nil), s.Required...),
		Enum:        append([]any(nil), s.Enum...),
		Example:     s.Example,
		Description: s.Description,
	}

	if s.Items != nil {
		out.Items = kinSchema(s.Items, refPath)
	}

	for _, name := range sortedKeys(s.Properties) {
		out.SetProperty(name, kinSchema(s.Properties[name], refPath))
	}

	// fold allOf members and one picked member of anyOf/oneOf
	subs := append(openapi3.SchemaRefs(nil), s.AllOf...)
	if p := pickKinSchemaRef(s.AnyOf); p != nil {
		subs = append(subs, p)
	}
	if p := pickKinSchemaRef(s.OneOf); p != nil {
		subs = append(subs, p)
	}
	for _, sub := range subs {
		if sub == nil {
			continue
		}
		subPath := types.AppendSliceFirstNonEmpty(refPath, sub.Ref)
		if types.GetSliceMaxRepetitionNumber(subPath) > 1 {
			continue
		}
		merged := kinSchema(&openapi3.SchemaRef{Value: sub.Value}, subPath)
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
	}
	if len(s.AllOf) > 0 && out.Type == "" {
		out.Type = TypeObject
	}

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

func pickKinSchemaRef(items openapi3.SchemaRefs) *openapi3.SchemaRef {
	var fstNonEmpty *openapi3.SchemaRef
	for _, item := range items {
		if item == nil {
			continue
		}
		if fstNonEmpty == nil {
			fstNonEmpty = item
		}
		if item.Ref != "" {
			return item
		}
	}
	return fstNonEmpty
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
