package openapi

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyDocument is returned when the supplied document content is blank.
var ErrEmptyDocument = errors.New("document content is empty")

// errKinV2Unsupported rejects Swagger 2.0 input on the kin-openapi provider,
// which only models OpenAPI 3.x.
var errKinV2Unsupported = errors.New("kin-openapi provider does not support Swagger 2.0 documents")

// ParseError is the only fatal condition of an import: the document text is
// empty, not valid JSON/YAML, or rejected by the underlying model parser.
// Diagnostics carries the parser messages verbatim.
type ParseError struct {
	Dialect     Dialect
	Diagnostics []string
	err         error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("cannot parse %s document", e.Dialect)
	if e.err != nil {
		msg += ": " + e.err.Error()
	}
	if len(e.Diagnostics) > 0 {
		msg += ": " + strings.Join(e.Diagnostics, "; ")
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.err
}

func newParseError(dialect Dialect, err error, diagnostics ...error) *ParseError {
	msgs := make([]string, 0, len(diagnostics))
	for _, d := range diagnostics {
		if d != nil {
			msgs = append(msgs, d.Error())
		}
	}
	return &ParseError{Dialect: dialect, Diagnostics: msgs, err: err}
}
