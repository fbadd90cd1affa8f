package generator

import (
	"testing"

	assert2 "github.com/stretchr/testify/assert"

	"github.com/restmock/specimport/openapi"
)

func ptr(v float64) *float64 {
	return &v
}

func TestExampleScalars(t *testing.T) {
	assert := assert2.New(t)
	t.Parallel()

	type testCase struct {
		name     string
		schema   *openapi.Schema
		expected any
	}

	testCases := []testCase{
		{"string-default", &openapi.Schema{Type: openapi.TypeString}, "string"},
		{"string-enum-first", &openapi.Schema{Type: openapi.TypeString, Enum: []any{"red", "blue"}}, "red"},
		{"string-format-email", &openapi.Schema{Type: openapi.TypeString, Format: openapi.FormatEmail}, "example@test.com"},
		{"string-format-uri", &openapi.Schema{Type: openapi.TypeString, Format: openapi.FormatURI}, "https://example.com"},
		{"string-format-date", &openapi.Schema{Type: openapi.TypeString, Format: openapi.FormatDate}, "2024-01-01"},
		{"string-format-date-time", &openapi.Schema{Type: openapi.TypeString, Format: openapi.FormatDateTime}, "2024-01-01T00:00:00Z"},
		{"string-format-ipv4", &openapi.Schema{Type: openapi.TypeString, Format: openapi.FormatIPv4}, "192.168.1.1"},
		{"string-format-ipv6", &openapi.Schema{Type: openapi.TypeString, Format: openapi.FormatIPv6}, "2001:0db8:85a3:0000:0000:8a2e:0370:7334"},
		{"integer-default", &openapi.Schema{Type: openapi.TypeInteger}, int64(1)},
		{"integer-midpoint", &openapi.Schema{Type: openapi.TypeInteger, Minimum: ptr(1), Maximum: ptr(9)}, int64(5)},
		{"integer-minimum-only", &openapi.Schema{Type: openapi.TypeInteger, Minimum: ptr(42)}, int64(42)},
		{"integer-small-maximum", &openapi.Schema{Type: openapi.TypeInteger, Maximum: ptr(7)}, int64(7)},
		{"integer-large-maximum", &openapi.Schema{Type: openapi.TypeInteger, Maximum: ptr(5000)}, int64(100)},
		{"integer-enum-first", &openapi.Schema{Type: openapi.TypeInteger, Enum: []any{3, 4}}, 3},
		{"number-default", &openapi.Schema{Type: openapi.TypeNumber}, 1.0},
		{"number-midpoint", &openapi.Schema{Type: openapi.TypeNumber, Minimum: ptr(2), Maximum: ptr(3)}, 2.5},
		{"boolean", &openapi.Schema{Type: openapi.TypeBoolean}, true},
		{"unknown-type", &openapi.Schema{Type: "file"}, "example"},
		{"no-type", &openapi.Schema{}, "example"},
		{"explicit-example-wins", &openapi.Schema{Type: openapi.TypeInteger, Example: 77}, 77},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Example(tc.schema, nil)
			assert.Equal(tc.expected, res)
		})
	}
}

func TestExampleStringPattern(t *testing.T) {
	assert := assert2.New(t)
	t.Parallel()

	res := Example(&openapi.Schema{Type: openapi.TypeString, Pattern: `^\d{4}$`}, nil)
	assert.Len(res, 4)

	// enum still wins over pattern
	res = Example(&openapi.Schema{Type: openapi.TypeString, Pattern: `^\d{4}$`, Enum: []any{"fixed"}}, nil)
	assert.Equal("fixed", res)
}

func TestExampleUUIDFormat(t *testing.T) {
	assert := assert2.New(t)
	t.Parallel()

	res := Example(&openapi.Schema{Type: openapi.TypeString, Format: openapi.FormatUUID}, nil)
	value, ok := res.(string)
	assert.True(ok)
	assert.Len(value, 36)
}

func TestExampleArray(t *testing.T) {
	assert := assert2.New(t)
	t.Parallel()

	t.Run("single-representative-element", func(t *testing.T) {
		schema := &openapi.Schema{
			Type:  openapi.TypeArray,
			Items: &openapi.Schema{Type: openapi.TypeInteger},
		}
		assert.Equal([]any{int64(1)}, Example(schema, nil))
	})

	t.Run("absent-items", func(t *testing.T) {
		schema := &openapi.Schema{Type: openapi.TypeArray}
		assert.Equal([]any{"example"}, Example(schema, nil))
	})
}

func TestExampleObjectRebuiltFromProperties(t *testing.T) {
	assert := assert2.New(t)
	t.Parallel()

	schema := &openapi.Schema{Type: openapi.TypeObject, Example: map[string]any{"stale": true}}
	schema.SetProperty("id", &openapi.Schema{Type: openapi.TypeInteger})

	res, ok := Example(schema, nil).(orderedObject)
	assert.True(ok)
	assert.Len(res, 1)
	assert.Equal("id", res[0].Key)
	assert.Equal(int64(1), res[0].Value)
}

func TestExampleResolvesReferences(t *testing.T) {
	assert := assert2.New(t)
	t.Parallel()

	pet := &openapi.Schema{Type: openapi.TypeObject}
	pet.SetProperty("name", &openapi.Schema{Type: openapi.TypeString})
	defs := openapi.Definitions{"Pet": pet}

	res, ok := Example(&openapi.Schema{Ref: "Pet"}, defs).(orderedObject)
	assert.True(ok)
	assert.Len(res, 1)
	assert.Equal("name", res[0].Key)
	assert.Equal("string", res[0].Value)
}

func TestExampleSelfReferentialTerminates(t *testing.T) {
	assert := assert2.New(t)
	t.Parallel()

	node := &openapi.Schema{Type: openapi.TypeObject}
	node.SetProperty("value", &openapi.Schema{Type: openapi.TypeString})
	node.SetProperty("child", &openapi.Schema{Ref: "Node"})
	defs := openapi.Definitions{"Node": node}

	res := JSONExample(&openapi.Schema{Ref: "Node"}, defs)
	assert.NotEmpty(res)
	assert.Contains(res, `"value"`)
}

func TestJSONExample(t *testing.T) {
	assert := assert2.New(t)
	t.Parallel()

	schema := &openapi.Schema{Type: openapi.TypeObject}
	schema.SetProperty("zeta", &openapi.Schema{Type: openapi.TypeInteger})
	schema.SetProperty("alpha", &openapi.Schema{Type: openapi.TypeString})

	res := JSONExample(schema, nil)
	assert.Equal("{\n  \"zeta\": 1,\n  \"alpha\": \"string\"\n}", res)
}

func TestJSONExampleDeterministic(t *testing.T) {
	assert := assert2.New(t)
	t.Parallel()

	schema := &openapi.Schema{Type: openapi.TypeObject}
	schema.SetProperty("id", &openapi.Schema{Type: openapi.TypeInteger})
	schema.SetProperty("name", &openapi.Schema{Type: openapi.TypeString})
	schema.SetProperty("tags", &openapi.Schema{
		Type:  openapi.TypeArray,
		Items: &openapi.Schema{Type: openapi.TypeString},
	})

	first := JSONExample(schema, nil)
	second := JSONExample(schema, nil)
	assert.Equal(first, second)
}
