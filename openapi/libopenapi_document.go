package openapi

import (
	"log/slog"

	"github.com/pb33f/libopenapi"
)

// newLibDocument parses document bytes with libopenapi and builds the model
// for the detected dialect. Build diagnostics are tolerated as long as a
// model was produced; they are logged and the model is used as-is.
func newLibDocument(content []byte, dialect Dialect) (*Document, error) {
	lib, err := libopenapi.NewDocument(content)
	if err != nil {
		return nil, newParseError(dialect, err)
	}

	if dialect == DialectV2 {
		model, errs := lib.BuildV2Model()
		if model == nil {
			return nil, newParseError(DialectV2, nil, errs...)
		}
		for _, e := range errs {
			slog.Warn("ignored error building v2 model", "error", e)
		}
		return newLibV2Document(&model.Model), nil
	}

	model, errs := lib.BuildV3Model()
	if model == nil {
		return nil, newParseError(DialectV3, nil, errs...)
	}
	for _, e := range errs {
		slog.Warn("ignored error building v3 model", "error", e)
	}
	return newLibV3Document(&model.Model), nil
}
