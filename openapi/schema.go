package openapi

const (
	TypeArray   = "array"
	TypeBoolean = "boolean"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeObject  = "object"
	TypeString  = "string"
)

const (
	FormatDate     = "date"
	FormatDateTime = "date-time"
	FormatEmail    = "email"
	FormatURI      = "uri"
	FormatUUID     = "uuid"
	FormatIPv4     = "ipv4"
	FormatIPv6     = "ipv6"
)

// Schema is the unified schema node produced by the dialect adapters.
// It is compatible with both supported dialects: adapters only ever produce
// this shape and downstream consumers never see provider-specific models.
//
// A node with a non-empty Ref is an unresolved named reference; it carries no
// other attributes and must be resolved against the document Definitions
// before synthesis or flattening.
type Schema struct {
	Type   string `json:"type,omitempty" yaml:"type,omitempty"`
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	// Ref is the bare definition name, e.g. "Pet" for "#/definitions/Pet".
	Ref string `json:"$ref,omitempty" yaml:"$ref,omitempty"`

	Items *Schema `json:"items,omitempty" yaml:"items,omitempty"`

	// Properties with PropertyOrder preserving the declaration order.
	// The order determines flattening and example-key order.
	Properties    map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	PropertyOrder []string           `json:"-" yaml:"-"`

	Required []string `json:"required,omitempty" yaml:"required,omitempty"`

	Enum    []any    `json:"enum,omitempty" yaml:"enum,omitempty"`
	Pattern string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Minimum *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`

	// Example is the author-supplied example. It takes precedence over
	// synthesized values for scalar nodes only.
	Example any `json:"example,omitempty" yaml:"example,omitempty"`

	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// IsRef reports whether the node is an unresolved named reference.
func (s *Schema) IsRef() bool {
	return s != nil && s.Ref != ""
}

// SetProperty adds a property preserving insertion order.
// Re-setting an existing name replaces the schema in place.
func (s *Schema) SetProperty(name string, prop *Schema) {
	if s.Properties == nil {
		s.Properties = make(map[string]*Schema)
	}
	if _, ok := s.Properties[name]; !ok {
		s.PropertyOrder = append(s.PropertyOrder, name)
	}
	s.Properties[name] = prop
}

// FixSchemaTypeTypos fixes common typos in schema types.
func FixSchemaTypeTypos(typ string) string {
	switch typ {
	case "int":
		return TypeInteger
	case "float":
		return TypeNumber
	case "bool":
		return TypeBoolean
	}

	return typ
}

// GetOpenAPITypeFromValue guesses the schema type of a raw value.
func GetOpenAPITypeFromValue(value any) string {
	switch value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return TypeInteger
	case float32, float64:
		return TypeNumber
	case bool:
		return TypeBoolean
	case string:
		return TypeString
	}

	return ""
}
