package openapi

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// SchemaProvider is the name of the underlying document parser.
type SchemaProvider string

const (
	// LibOpenAPIProvider parses both dialects and preserves property order.
	LibOpenAPIProvider SchemaProvider = "libopenapi"
	// KinOpenAPIProvider parses 3.x documents only. Its model is map-based,
	// so property order falls back to a sorted order.
	KinOpenAPIProvider SchemaProvider = "kin-openapi"
)

// ParseOptions controls document parsing.
type ParseOptions struct {
	Provider SchemaProvider
}

// NewParseOptions returns options with the default provider.
func NewParseOptions() *ParseOptions {
	return &ParseOptions{Provider: LibOpenAPIProvider}
}

// versionProbe picks up the top-level dialect markers from either encoding.
// yaml.v3 accepts JSON input, so a single probe covers both.
type versionProbe struct {
	Swagger string `yaml:"swagger"`
	OpenAPI string `yaml:"openapi"`
}

// DetectDialect inspects the top-level version markers of the raw document.
// A `swagger: "2.0"` key selects the legacy dialect, an `openapi: "3.*"` key
// the modern one. Anything else defaults to the modern dialect; only blank or
// undecodable content is an error.
func DetectDialect(content []byte) (Dialect, error) {
	if len(strings.TrimSpace(string(content))) == 0 {
		return "", newParseError(DialectV3, ErrEmptyDocument)
	}

	var probe versionProbe
	if err := yaml.Unmarshal(content, &probe); err != nil {
		return "", newParseError(DialectV3, err)
	}

	if strings.HasPrefix(probe.Swagger, "2.") {
		return DialectV2, nil
	}
	if strings.HasPrefix(probe.OpenAPI, "3.") {
		return DialectV3, nil
	}

	return DialectV3, nil
}

// NewDocumentFromBytes parses raw document bytes with the default provider.
func NewDocumentFromBytes(content []byte) (*Document, error) {
	return NewDocumentFromBytesWithOptions(content, NewParseOptions())
}

// NewDocumentFromBytesWithOptions parses raw document bytes.
// The content may be JSON or YAML; the caller does not need to know which.
func NewDocumentFromBytesWithOptions(content []byte, options *ParseOptions) (*Document, error) {
	if options == nil {
		options = NewParseOptions()
	}

	dialect, err := DetectDialect(content)
	if err != nil {
		return nil, err
	}

	switch options.Provider {
	case KinOpenAPIProvider:
		return newKinDocument(content, dialect)
	default:
		return newLibDocument(content, dialect)
	}
}

// NewDocumentFromFile reads and parses a document from a file path.
func NewDocumentFromFile(filePath string) (*Document, error) {
	src, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return NewDocumentFromBytes(src)
}
