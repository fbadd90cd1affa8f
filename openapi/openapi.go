// Package openapi normalizes Swagger 2.0 and OpenAPI 3.x documents into a
// single internal representation used by the example generator and the
// schema flattener.
//
// Two schema providers are available: libopenapi (the default, covering both
// dialects) and kin-openapi (3.x only). Both only ever produce the unified
// Document/Schema shapes, so downstream consumers never branch on dialect.
package openapi

// Dialect is the detected document family.
type Dialect string

const (
	// DialectV2 is the legacy Swagger 2.0 family.
	DialectV2 Dialect = "v2"
	// DialectV3 is the modern OpenAPI 3.x family.
	DialectV3 Dialect = "v3"
)

const (
	ParameterInPath   = "path"
	ParameterInQuery  = "query"
	ParameterInHeader = "header"
	ParameterInForm   = "form"
	// ParameterInBody Swagger 2.0 only; v3 carries bodies in RequestBody.
	ParameterInBody = "body"
)

// Info holds the document-level metadata.
type Info struct {
	Title       string `json:"title,omitempty"`
	Version     string `json:"version,omitempty"`
	Description string `json:"description,omitempty"`
}

// Server is a single resolved base URL.
// v3 documents list servers explicitly, v2 documents compose them from
// scheme + host + basePath, one Server per declared scheme.
type Server struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// Definitions is the document-wide, read-only table of named schemas.
// It must not be mutated during an import pass.
type Definitions map[string]*Schema

// Document is the normalized result of parsing one Swagger/OpenAPI document.
type Document struct {
	Dialect     Dialect
	Info        Info
	Servers     []Server
	Definitions Definitions
	// Operations in document order: paths as declared, methods as declared
	// within each path item.
	Operations []*Operation
}

// Operation is one (path, method) pair with its normalized request and
// response descriptors.
type Operation struct {
	Path        string
	Method      string
	OperationID string
	Summary     string
	Description string
	Tags        []string

	// Parameters declared outside the body: path, query, header, form.
	Parameters []*Parameter
	// RequestBody is nil when the operation declares no body.
	RequestBody *RequestBody
	// Responses in document order, one per declared status code.
	Responses []*Response
}

// Parameter is a location-tagged parameter descriptor.
type Parameter struct {
	Name        string
	In          string
	Required    bool
	Description string
	Schema      *Schema
	Example     any
}

// RequestBody holds the request payload schemas keyed by content type.
type RequestBody struct {
	Description string
	Contents    []*BodyContent
}

// BodyContent is one content-type -> schema binding of a request or
// response body.
type BodyContent struct {
	ContentType string
	Schema      *Schema
	Example     any
}

// Response is the normalized response for one status code.
// StatusCode keeps the raw document key, so "default" and range keys like
// "2XX" survive normalization.
type Response struct {
	StatusCode  string
	Description string
	Contents    []*BodyContent
	Headers     []*Header
}

// Header is a declared response header.
type Header struct {
	Name        string
	Description string
	Schema      *Schema
	Example     any
}
