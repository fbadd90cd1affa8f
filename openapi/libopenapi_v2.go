package openapi

import (
	"strings"

	v2high "github.com/pb33f/libopenapi/datamodel/high/v2"
)

// requestContentTypePriority is the preference order used when a v2 operation
// declares multiple consumable content types.
var requestContentTypePriority = []string{
	"application/json", "multipart/form-data", "application/x-www-form-urlencoded",
}

// responseContentTypePriority is the preference order used when a v2 operation
// declares multiple producible content types.
var responseContentTypePriority = []string{
	"application/json", "text/plain", "text/html",
}

// newLibV2Document normalizes a Swagger 2.0 model.
func newLibV2Document(model *v2high.Swagger) *Document {
	doc := &Document{
		Dialect:     DialectV2,
		Definitions: make(Definitions),
	}

	if model.Info != nil {
		doc.Info = Info{
			Title:       model.Info.Title,
			Version:     model.Info.Version,
			Description: model.Info.Description,
		}
	}

	doc.Servers = v2Servers(model)

	if model.Definitions != nil && model.Definitions.Definitions != nil {
		for pair := model.Definitions.Definitions.First(); pair != nil; pair = pair.Next() {
			doc.Definitions[pair.Key()] = schemaFromProxy(pair.Value(), nil)
		}
	}

	if model.Paths != nil && model.Paths.PathItems != nil {
		for pathPair := model.Paths.PathItems.First(); pathPair != nil; pathPair = pathPair.Next() {
			path := pathPair.Key()
			ops := pathPair.Value().GetOperations()
			if ops == nil {
				continue
			}
			for opPair := ops.First(); opPair != nil; opPair = opPair.Next() {
				doc.Operations = append(doc.Operations,
					newLibV2Operation(path, strings.ToUpper(opPair.Key()), opPair.Value()))
			}
		}
	}

	return doc
}

// v2Servers composes base URLs from scheme + host + basePath, one per
// declared scheme. Missing host falls back to a local default.
func v2Servers(model *v2high.Swagger) []Server {
	basePath := model.BasePath

	if model.Host == "" {
		return []Server{{URL: "http://localhost:8080" + basePath, Description: "Default server"}}
	}

	schemes := model.Schemes
	if len(schemes) == 0 {
		schemes = []string{"https"}
	}

	servers := make([]Server, 0, len(schemes))
	for _, scheme := range schemes {
		servers = append(servers, Server{
			URL:         scheme + "://" + model.Host + basePath,
			Description: "Swagger 2.0 server (" + scheme + ")",
		})
	}
	return servers
}

func newLibV2Operation(path, method string, op *v2high.Operation) *Operation {
	res := &Operation{
		Path:        path,
		Method:      method,
		OperationID: op.OperationId,
		Summary:     op.Summary,
		Description: op.Description,
		Tags:        op.Tags,
	}

	for _, param := range op.Parameters {
		if param == nil {
			continue
		}

		// The payload appended to the HTTP request: there can be only one
		// body parameter, and it becomes the request body.
		if param.In == ParameterInBody {
			res.RequestBody = &RequestBody{
				Description: param.Description,
				Contents: []*BodyContent{{
					ContentType: pickContentType(op.Consumes, requestContentTypePriority),
					Schema:      schemaFromProxy(param.Schema, nil),
				}},
			}
			continue
		}

		required := false
		if param.Required != nil {
			required = *param.Required
		}

		res.Parameters = append(res.Parameters, &Parameter{
			Name:        param.Name,
			In:          normalizeV2Location(param.In),
			Required:    required,
			Description: param.Description,
			Schema:      v2ParameterSchema(param),
		})
	}

	if op.Responses != nil {
		contentType := pickContentType(op.Produces, responseContentTypePriority)
		if op.Responses.Codes != nil {
			for pair := op.Responses.Codes.First(); pair != nil; pair = pair.Next() {
				res.Responses = append(res.Responses, newLibV2Response(pair.Key(), pair.Value(), contentType))
			}
		}
		if op.Responses.Default != nil {
			res.Responses = append(res.Responses, newLibV2Response("default", op.Responses.Default, contentType))
		}
	}

	return res
}

func newLibV2Response(statusCode string, resp *v2high.Response, contentType string) *Response {
	res := &Response{
		StatusCode:  statusCode,
		Description: resp.Description,
	}

	if resp.Schema != nil {
		content := &BodyContent{
			ContentType: contentType,
			Schema:      schemaFromProxy(resp.Schema, nil),
		}
		if resp.Examples != nil && resp.Examples.Values != nil {
			if pair := resp.Examples.Values.First(); pair != nil {
				content.Example = decodeNode(pair.Value())
			}
		}
		res.Contents = append(res.Contents, content)
	}

	if resp.Headers != nil {
		for pair := resp.Headers.First(); pair != nil; pair = pair.Next() {
			header := pair.Value()
			schema := &Schema{
				Type:        FixSchemaTypeTypos(header.Type),
				Format:      header.Format,
				Pattern:     header.Pattern,
				Enum:        header.Enum,
				Description: header.Description,
			}
			if header.Items != nil {
				schema.Items = &Schema{
					Type:    FixSchemaTypeTypos(header.Items.Type),
					Format:  header.Items.Format,
					Pattern: header.Items.Pattern,
					Enum:    decodeNodes(header.Items.Enum),
				}
			}
			res.Headers = append(res.Headers, &Header{
				Name:        pair.Key(),
				Description: header.Description,
				Schema:      schema,
			})
		}
	}

	return res
}

// v2ParameterSchema builds the unified schema for a non-body v2 parameter.
// Parameters either carry a full schema or describe the type inline.
func v2ParameterSchema(param *v2high.Parameter) *Schema {
	if param.Schema != nil {
		return schemaFromProxy(param.Schema, nil)
	}

	schema := &Schema{
		Type:        FixSchemaTypeTypos(param.Type),
		Format:      param.Format,
		Pattern:     param.Pattern,
		Enum:        decodeNodes(param.Enum),
		Description: param.Description,
	}

	if param.Minimum != nil {
		minimum := float64(*param.Minimum)
		schema.Minimum = &minimum
	}
	if param.Maximum != nil {
		maximum := float64(*param.Maximum)
		schema.Maximum = &maximum
	}

	if param.Items != nil {
		schema.Items = &Schema{
			Type:    FixSchemaTypeTypos(param.Items.Type),
			Format:  param.Items.Format,
			Pattern: param.Items.Pattern,
			Enum:    decodeNodes(param.Items.Enum),
		}
	}

	return schema
}

// normalizeV2Location maps the v2-only "formData" location to "form".
func normalizeV2Location(in string) string {
	if strings.EqualFold(in, "formData") {
		return ParameterInForm
	}
	return strings.ToLower(in)
}

// pickContentType returns the first declared type matching the priority
// order, the first declared type otherwise, or JSON when none are declared.
func pickContentType(declared, priority []string) string {
	for _, want := range priority {
		for _, have := range declared {
			if have == want {
				return want
			}
		}
	}
	if len(declared) > 0 {
		return declared[0]
	}
	return "application/json"
}
