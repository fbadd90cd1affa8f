// Package importer runs the full import pipeline over one document:
// detect dialect, normalize, then synthesize examples and flatten every
// operation's request and response sides.
package importer

import (
	"log/slog"
	"strings"

	"github.com/restmock/specimport/flatten"
	"github.com/restmock/specimport/openapi"
)

// DocumentRecord is the normalized document-level metadata of one import.
type DocumentRecord struct {
	Title       string          `json:"title,omitempty"`
	Version     string          `json:"version,omitempty"`
	Description string          `json:"description,omitempty"`
	Dialect     openapi.Dialect `json:"dialect"`
	// Content keeps the original document text for later re-import.
	Content string `json:"content,omitempty"`
	// Source tags how the document was supplied. Imports from raw bytes are
	// tagged "content".
	Source string `json:"source"`
}

// API is one imported (path, method) pair with its flattened request and
// response records.
type API struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	OperationID string `json:"operationId,omitempty"`
	Summary     string `json:"summary,omitempty"`
	Description string `json:"description,omitempty"`
	Tags        string `json:"tags,omitempty"`

	RequestParams  []*flatten.ParameterRecord         `json:"requestParams,omitempty"`
	ResponseParams []*flatten.ResponseParameterRecord `json:"responseParams,omitempty"`
}

// Result is the complete outcome of importing one document.
type Result struct {
	Document DocumentRecord   `json:"document"`
	Servers  []openapi.Server `json:"servers,omitempty"`
	APIs     []*API           `json:"apis,omitempty"`
}

// Option adjusts import behavior.
type Option func(*openapi.ParseOptions)

// WithProvider selects the schema provider used for parsing.
func WithProvider(provider openapi.SchemaProvider) Option {
	return func(o *openapi.ParseOptions) {
		o.Provider = provider
	}
}

// Import runs the pipeline over raw document bytes. Only a parse failure
// aborts; unresolved references, depth limits and synthesis failures degrade
// to partial data on the affected records.
func Import(content []byte, opts ...Option) (*Result, error) {
	options := openapi.NewParseOptions()
	for _, opt := range opts {
		opt(options)
	}

	doc, err := openapi.NewDocumentFromBytesWithOptions(content, options)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Document: DocumentRecord{
			Title:       doc.Info.Title,
			Version:     doc.Info.Version,
			Description: doc.Info.Description,
			Dialect:     doc.Dialect,
			Content:     string(content),
			Source:      "content",
		},
		Servers: doc.Servers,
	}

	for _, op := range doc.Operations {
		res.APIs = append(res.APIs, importOperation(op, doc.Definitions))
	}

	slog.Info("imported document",
		"title", res.Document.Title,
		"dialect", res.Document.Dialect,
		"apis", len(res.APIs))

	return res, nil
}

func importOperation(op *openapi.Operation, defs openapi.Definitions) *API {
	return &API{
		Path:           op.Path,
		Method:         op.Method,
		OperationID:    op.OperationID,
		Summary:        op.Summary,
		Description:    op.Description,
		Tags:           strings.Join(op.Tags, ","),
		RequestParams:  flatten.RequestParameters(op, defs),
		ResponseParams: flatten.ResponseParameters(op, defs),
	}
}
