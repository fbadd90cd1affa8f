package flatten

import (
	"strings"

	"github.com/restmock/specimport/generator"
	"github.com/restmock/specimport/internal/types"
	"github.com/restmock/specimport/openapi"
)

// Type tags reported on flattened records. Arrays are reported as
// Array<InnerType>, recursively derived.
const (
	TagString   = "String"
	TagInteger  = "Integer"
	TagNumber   = "Number"
	TagBoolean  = "Boolean"
	TagObject   = "Object"
	TagArray    = "Array"
	TagDate     = "Date"
	TagDateTime = "DateTime"
)

// RequestParameters flattens the request side of an operation: one record
// per declared parameter (plus leaf records for composite parameters) and,
// when a body is declared, one synthetic "body" record per content type
// followed by the body's leaf records.
func RequestParameters(op *openapi.Operation, defs openapi.Definitions) []*ParameterRecord {
	var records []*ParameterRecord

	for _, param := range op.Parameters {
		records = append(records, flattenParameter(param, defs)...)
	}

	if op.RequestBody != nil {
		for _, content := range op.RequestBody.Contents {
			records = append(records, bodyRecords(content, op.RequestBody.Description, defs)...)
		}
	}

	return records
}

// ResponseParameters flattens the response side of an operation, grouped by
// status code. Responses without content still produce one placeholder
// record, so every declared status code survives flattening.
func ResponseParameters(op *openapi.Operation, defs openapi.Definitions) []*ResponseParameterRecord {
	var records []*ResponseParameterRecord
	for _, resp := range op.Responses {
		records = append(records, responseRecords(resp, defs)...)
	}
	return records
}

func responseRecords(resp *openapi.Response, defs openapi.Definitions) []*ResponseParameterRecord {
	var records []*ResponseParameterRecord

	for _, content := range resp.Contents {
		for _, rec := range bodyRecords(content, resp.Description, defs) {
			records = append(records, &ResponseParameterRecord{
				ParameterRecord: *rec,
				StatusCode:      resp.StatusCode,
			})
		}
	}

	if len(records) == 0 {
		records = append(records, &ResponseParameterRecord{
			ParameterRecord: ParameterRecord{
				Name:        "body",
				Location:    openapi.ParameterInBody,
				Type:        TagString,
				Description: resp.Description,
			},
			StatusCode: resp.StatusCode,
		})
	}

	for _, header := range resp.Headers {
		records = append(records, headerRecord(resp.StatusCode, header, defs))
	}

	return records
}

// flattenParameter emits the record for one declared parameter and, when the
// parameter schema is composite, the leaf records below it.
func flattenParameter(param *openapi.Parameter, defs openapi.Definitions) []*ParameterRecord {
	record := &ParameterRecord{
		Name:          param.Name,
		Location:      param.In,
		Type:          TagString,
		Required:      param.Required,
		Description:   param.Description,
		HierarchyPath: param.Name,
		Example:       param.Example,
	}

	if param.Schema == nil {
		return []*ParameterRecord{record}
	}

	schema := openapi.Resolve(param.Schema, defs, 0)
	record.Type = typeTag(schema, defs, 0)
	record.Pattern = schema.Pattern
	if record.Pattern != "" {
		record.PatternExample = generator.PatternExample(record.Pattern)
	}
	if record.Example == nil && isScalar(schema) {
		record.Example = generator.Example(schema, defs)
	}

	records := []*ParameterRecord{record}
	if isComposite(schema) {
		records = append(records, walkSchema(schema, param.In, "", param.Name, record, defs, 0)...)
	}
	return records
}

// bodyRecords emits the synthetic "body" record carrying the whole
// synthesized JSON payload, then the queryable leaf records for the same
// schema. Consumers need both the full example payload and the per-field
// metadata.
func bodyRecords(content *openapi.BodyContent, description string, defs openapi.Definitions) []*ParameterRecord {
	schema := openapi.Resolve(content.Schema, defs, 0)

	body := &ParameterRecord{
		Name:        "body",
		Location:    openapi.ParameterInBody,
		ContentType: content.ContentType,
		Type:        typeTag(schema, defs, 0),
		Description: description,
	}

	if full := generator.JSONExample(content.Schema, defs); full != "" {
		body.FullJSONExample = full
		body.Example = full
	} else if content.Example != nil {
		body.Example = content.Example
	}

	records := []*ParameterRecord{body}
	return append(records, walkSchema(schema, openapi.ParameterInBody, content.ContentType, "", nil, defs, 0)...)
}

func headerRecord(statusCode string, header *openapi.Header, defs openapi.Definitions) *ResponseParameterRecord {
	rec := ParameterRecord{
		Name:        header.Name,
		Location:    openapi.ParameterInHeader,
		Type:        TagString,
		Description: header.Description,
		Example:     header.Example,
	}

	if header.Schema != nil {
		schema := openapi.Resolve(header.Schema, defs, 0)
		rec.Type = typeTag(schema, defs, 0)
		rec.Pattern = schema.Pattern
		if rec.Pattern != "" {
			rec.PatternExample = generator.PatternExample(rec.Pattern)
		}
		if rec.Example == nil && isScalar(schema) {
			rec.Example = generator.Example(schema, defs)
		}
	}

	return &ResponseParameterRecord{ParameterRecord: rec, StatusCode: statusCode}
}

// walkSchema emits leaf records for a composite schema, depth-first in
// declared property order. Arrays expand exactly one representative element.
func walkSchema(s *openapi.Schema, location, contentType, parentPath string, parent *ParameterRecord, defs openapi.Definitions, depth int) []*ParameterRecord {
	if depth > openapi.MaxResolveDepth {
		return nil
	}
	s = openapi.Resolve(s, defs, depth)

	switch s.Type {
	case openapi.TypeObject:
		var records []*ParameterRecord
		for _, name := range s.PropertyOrder {
			prop := openapi.Resolve(s.Properties[name], defs, depth)
			path := joinPath(parentPath, name)

			rec := newLeafRecord(name, prop, location, contentType, path, parent, defs)
			rec.Required = types.SliceContains(s.Required, name)
			records = append(records, rec)

			if isComposite(prop) {
				records = append(records, walkSchema(prop, location, contentType, path, rec, defs, depth+1)...)
			}
		}
		return records

	case openapi.TypeArray:
		if s.Items == nil {
			return nil
		}
		path := parentPath + "[0]"
		if parentPath == "" {
			path = "items[0]"
		}
		return walkSchema(s.Items, location, contentType, path, parent, defs, depth+1)

	default:
		// a bare scalar at the root is already covered by the body record
		if parentPath == "" {
			return nil
		}
		return []*ParameterRecord{newLeafRecord(pathName(parentPath), s, location, contentType, parentPath, parent, defs)}
	}
}

func newLeafRecord(name string, s *openapi.Schema, location, contentType, path string, parent *ParameterRecord, defs openapi.Definitions) *ParameterRecord {
	rec := &ParameterRecord{
		Name:          name,
		Location:      location,
		ContentType:   contentType,
		Type:          typeTag(s, defs, 0),
		Pattern:       s.Pattern,
		Description:   s.Description,
		HierarchyPath: path,
		Parent:        parent,
	}

	if rec.Pattern != "" {
		rec.PatternExample = generator.PatternExample(rec.Pattern)
	}
	if isScalar(s) {
		rec.Example = generator.Example(s, defs)
	}

	return rec
}

// typeTag derives the reported type of a schema node. Unresolved and
// unknown nodes default to String.
func typeTag(s *openapi.Schema, defs openapi.Definitions, depth int) string {
	if s == nil || depth > openapi.MaxResolveDepth {
		return TagString
	}
	if s.IsRef() {
		return typeTag(openapi.Resolve(s, defs, depth), defs, depth+1)
	}

	switch s.Type {
	case openapi.TypeString:
		switch s.Format {
		case openapi.FormatDate:
			return TagDate
		case openapi.FormatDateTime:
			return TagDateTime
		}
		return TagString
	case openapi.TypeInteger:
		return TagInteger
	case openapi.TypeNumber:
		return TagNumber
	case openapi.TypeBoolean:
		return TagBoolean
	case openapi.TypeObject:
		return TagObject
	case openapi.TypeArray:
		if s.Items == nil {
			return TagArray
		}
		return TagArray + "<" + typeTag(s.Items, defs, depth+1) + ">"
	}

	return TagString
}

func isComposite(s *openapi.Schema) bool {
	return s != nil && (s.Type == openapi.TypeObject || s.Type == openapi.TypeArray)
}

func isScalar(s *openapi.Schema) bool {
	return s != nil && !s.IsRef() && !isComposite(s)
}

func joinPath(parentPath, name string) string {
	if parentPath == "" {
		return name
	}
	return parentPath + "." + name
}

// pathName returns the last path segment, e.g. "user.tags[0]" -> "tags[0]".
func pathName(path string) string {
	if idx := strings.LastIndex(path, "."); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
