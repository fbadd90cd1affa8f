// Package flatten turns normalized schemas into flat, path-indexed
// parameter records suitable for per-field lookups and UI tables.
package flatten

// ParameterRecord is one flattened request-side field.
//
// HierarchyPath addresses the field inside its declaring structure with
// dotted segments and a single representative array element, e.g.
// "user.tags[0]". Parent links leaf records to the record of the composite
// that declared them; it is nil for top-level records.
type ParameterRecord struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	ContentType string `json:"contentType,omitempty"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`

	Pattern        string `json:"pattern,omitempty"`
	PatternExample string `json:"patternExample,omitempty"`

	// Example is the value used for this field: the author-supplied example
	// when present, a synthesized default otherwise. For the synthetic "body"
	// record it carries the whole example payload as indented JSON, which is
	// also kept in FullJSONExample.
	Example         any    `json:"example,omitempty"`
	FullJSONExample string `json:"fullJsonExample,omitempty"`

	Description   string `json:"description,omitempty"`
	HierarchyPath string `json:"hierarchyPath,omitempty"`

	Parent *ParameterRecord `json:"-"`
}

// ResponseParameterRecord is one flattened response-side field, grouped by
// the status code it belongs to.
type ResponseParameterRecord struct {
	ParameterRecord

	StatusCode string `json:"statusCode"`
}
