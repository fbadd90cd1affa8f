package openapi

import (
	"strings"

	v3high "github.com/pb33f/libopenapi/datamodel/high/v3"
)

// newLibV3Document normalizes an OpenAPI 3.x model.
func newLibV3Document(model *v3high.Document) *Document {
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

	if model.Components != nil && model.Components.Schemas != nil {
		for pair := model.Components.Schemas.First(); pair != nil; pair = pair.Next() {
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
					newLibV3Operation(path, strings.ToUpper(opPair.Key()), opPair.Value()))
			}
		}
	}

	return doc
}

func newLibV3Operation(path, method string, op *v3high.Operation) *Operation {
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

		required := false
		if param.Required != nil {
			required = *param.Required
		}

		res.Parameters = append(res.Parameters, &Parameter{
			Name:        param.Name,
			In:          strings.ToLower(param.In),
			Required:    required,
			Description: param.Description,
			Schema:      schemaFromProxy(param.Schema, nil),
			Example:     decodeNode(param.Example),
		})
	}

	if op.RequestBody != nil && op.RequestBody.Content != nil {
		body := &RequestBody{Description: op.RequestBody.Description}
		for pair := op.RequestBody.Content.First(); pair != nil; pair = pair.Next() {
			body.Contents = append(body.Contents, newLibV3BodyContent(pair.Key(), pair.Value()))
		}
		if len(body.Contents) > 0 {
			res.RequestBody = body
		}
	}

	if op.Responses != nil {
		if op.Responses.Codes != nil {
			for pair := op.Responses.Codes.First(); pair != nil; pair = pair.Next() {
				res.Responses = append(res.Responses, newLibV3Response(pair.Key(), pair.Value()))
			}
		}
		if op.Responses.Default != nil {
			res.Responses = append(res.Responses, newLibV3Response("default", op.Responses.Default))
		}
	}

	return res
}

func newLibV3BodyContent(contentType string, mt *v3high.MediaType) *BodyContent {
	content := &BodyContent{
		ContentType: contentType,
		Schema:      schemaFromProxy(mt.Schema, nil),
		Example:     decodeNode(mt.Example),
	}

	// fall back to the first named example
	if content.Example == nil && mt.Examples != nil {
		if pair := mt.Examples.First(); pair != nil && pair.Value() != nil {
			content.Example = decodeNode(pair.Value().Value)
		}
	}

	return content
}

func newLibV3Response(statusCode string, resp *v3high.Response) *Response {
	res := &Response{
		StatusCode:  statusCode,
		Description: resp.Description,
	}

	if resp.Content != nil {
		for pair := resp.Content.First(); pair != nil; pair = pair.Next() {
			res.Contents = append(res.Contents, newLibV3BodyContent(pair.Key(), pair.Value()))
		}
	}

	if resp.Headers != nil {
		for pair := resp.Headers.First(); pair != nil; pair = pair.Next() {
			header := pair.Value()
			res.Headers = append(res.Headers, &Header{
				Name:        pair.Key(),
				Description: header.Description,
				Schema:      schemaFromProxy(header.Schema, nil),
				Example:     decodeNode(header.Example),
			})
		}
	}

	return res
}
