package flatten

import (
	"testing"

	assert2 "github.com/stretchr/testify/assert"

	"github.com/restmock/specimport/openapi"
)

func ptr(v float64) *float64 {
	return &v
}

func userSchema() *openapi.Schema {
	s := &openapi.Schema{Type: openapi.TypeObject, Required: []string{"id"}}
	s.SetProperty("id", &openapi.Schema{Type: openapi.TypeInteger})
	s.SetProperty("name", &openapi.Schema{Type: openapi.TypeString})
	return s
}

func TestWalkObjectSchema(t *testing.T) {
	assert := assert2.New(t)
	t.Parallel()

	records := walkSchema(userSchema(), openapi.ParameterInBody, "application/json", "", nil, nil, 0)

	assert.Len(records, 2)

	assert.Equal("id", records[0].Name)
	assert.Equal("id", records[0].HierarchyPath)
	assert.Equal(TagInteger, records[0].Type)
	assert.True(records[0].Required)
	assert.Nil(records[0].Parent)

	assert.Equal("name", records[1].Name)
	assert.Equal("name", records[1].HierarchyPath)
	assert.Equal(TagString, records[1].Type)
	assert.False(records[1].Required)
	assert.Nil(records[1].Parent)
}

func TestWalkArrayOfObjects(t *testing.T) {
	assert := assert2.New(t)
	t.Parallel()

	schema := &openapi.Schema{Type: openapi.TypeArray, Items: userSchema()}

	records := walkSchema(schema, openapi.ParameterInBody, "", "", nil, nil, 0)

	assert.Len(records, 2)
	assert.Equal("items[0].id", records[0].HierarchyPath)
	assert.Equal("items[0].name", records[1].HierarchyPath)
}

func TestWalkNestedArray(t *testing.T) {
	assert := assert2.New(t)
	t.Parallel()

	schema := &openapi.Schema{Type: openapi.TypeObject}
	schema.SetProperty("users", &openapi.Schema{Type: openapi.TypeArray, Items: userSchema()})

	records := walkSchema(schema, openapi.ParameterInBody, "", "", nil, nil, 0)

	assert.Len(records, 3)
	assert.Equal("users", records[0].HierarchyPath)
	assert.Equal("Array<Object>", records[0].Type)
	assert.Equal("users[0].id", records[1].HierarchyPath)
	assert.Equal("users[0].name", records[2].HierarchyPath)

	// leaves link back to the record of the declaring composite
	assert.Same(records[0], records[1].Parent)
	assert.Same(records[0], records[2].Parent)
}

func TestWalkDeterministic(t *testing.T) {
	assert := assert2.New(t)
	t.Parallel()

	schema := userSchema()
	first := walkSchema(schema, openapi.ParameterInBody, "", "", nil, nil, 0)
	second := walkSchema(schema, openapi.ParameterInBody, "", "", nil, nil, 0)

	assert.Equal(len(first), len(second))
	for i := range first {
		assert.Equal(first[i].HierarchyPath, second[i].HierarchyPath)
		assert.Equal(first[i].Type, second[i].Type)
	}
}

func TestTypeTag(t *testing.T) {
	assert := assert2.New(t)
	t.Parallel()

	defs := openapi.Definitions{"User": userSchema()}

	type testCase struct {
		name     string
		schema   *openapi.Schema
		expected string
	}

	testCases := []testCase{
		{"string", &openapi.Schema{Type: openapi.TypeString}, TagString},
		{"date", &openapi.Schema{Type: openapi.TypeString, Format: openapi.FormatDate}, TagDate},
		{"date-time", &openapi.Schema{Type: openapi.TypeString, Format: openapi.FormatDateTime}, TagDateTime},
		{"integer", &openapi.Schema{Type: openapi.TypeInteger}, TagInteger},
		{"number", &openapi.Schema{Type: openapi.TypeNumber}, TagNumber},
		{"boolean", &openapi.Schema{Type: openapi.TypeBoolean}, TagBoolean},
		{"object", &openapi.Schema{Type: openapi.TypeObject}, TagObject},
		{"array-no-items", &openapi.Schema{Type: openapi.TypeArray}, TagArray},
		{"array-of-string", &openapi.Schema{Type: openapi.TypeArray, Items: &openapi.Schema{Type: openapi.TypeString}}, "Array<String>"},
		{"ref", &openapi.Schema{Ref: "User"}, TagObject},
		{"unknown", &openapi.Schema{}, TagString},
		{"nil", nil, TagString},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(tc.expected, typeTag(tc.schema, defs, 0))
		})
	}
}

func TestRequestParameters(t *testing.T) {
	assert := assert2.New(t)
	t.Parallel()

	op := &openapi.Operation{
		Path:   "/search",
		Method: "GET",
		Parameters: []*openapi.Parameter{
			{
				Name:     "page",
				In:       openapi.ParameterInQuery,
				Required: true,
				Schema:   &openapi.Schema{Type: openapi.TypeInteger, Minimum: ptr(1), Maximum: ptr(9)},
			},
			{
				Name:   "code",
				In:     openapi.ParameterInQuery,
				Schema: &openapi.Schema{Type: openapi.TypeString, Pattern: `^\d{4}$`},
			},
		},
	}

	records := RequestParameters(op, nil)
	assert.Len(records, 2)

	page := records[0]
	assert.Equal("page", page.Name)
	assert.Equal(openapi.ParameterInQuery, page.Location)
	assert.Equal(TagInteger, page.Type)
	assert.True(page.Required)
	assert.Equal(int64(5), page.Example)

	code := records[1]
	assert.Equal(`^\d{4}$`, code.Pattern)
	assert.Len(code.PatternExample, 4)
	assert.False(code.Required)
}

func TestRequestParametersBody(t *testing.T) {
	assert := assert2.New(t)
	t.Parallel()

	defs := openapi.Definitions{"User": userSchema()}
	op := &openapi.Operation{
		Path:   "/users",
		Method: "POST",
		RequestBody: &openapi.RequestBody{
			Description: "user to create",
			Contents: []*openapi.BodyContent{
				{ContentType: "application/json", Schema: &openapi.Schema{Ref: "User"}},
			},
		},
	}

	records := RequestParameters(op, defs)
	assert.Len(records, 3)

	body := records[0]
	assert.Equal("body", body.Name)
	assert.Equal(openapi.ParameterInBody, body.Location)
	assert.Equal("application/json", body.ContentType)
	assert.Equal(TagObject, body.Type)
	assert.Equal("user to create", body.Description)
	assert.Contains(body.FullJSONExample, `"id": 1`)
	assert.Contains(body.FullJSONExample, `"name": "string"`)
	assert.Equal(body.FullJSONExample, body.Example)

	assert.Equal("id", records[1].HierarchyPath)
	assert.True(records[1].Required)
	assert.Equal("application/json", records[1].ContentType)
	assert.Equal("name", records[2].HierarchyPath)
	assert.False(records[2].Required)
}

func TestCompositeParameterFlattens(t *testing.T) {
	assert := assert2.New(t)
	t.Parallel()

	op := &openapi.Operation{
		Parameters: []*openapi.Parameter{
			{Name: "filter", In: openapi.ParameterInQuery, Schema: userSchema()},
		},
	}

	records := RequestParameters(op, nil)
	assert.Len(records, 3)

	assert.Equal("filter", records[0].HierarchyPath)
	assert.Equal(TagObject, records[0].Type)
	assert.Equal("filter.id", records[1].HierarchyPath)
	assert.Equal("filter.name", records[2].HierarchyPath)
	assert.Same(records[0], records[1].Parent)
}

func TestResponseParameters(t *testing.T) {
	assert := assert2.New(t)
	t.Parallel()

	defs := openapi.Definitions{"User": userSchema()}
	op := &openapi.Operation{
		Responses: []*openapi.Response{
			{
				StatusCode:  "200",
				Description: "ok",
				Contents: []*openapi.BodyContent{
					{ContentType: "application/json", Schema: &openapi.Schema{Ref: "User"}},
				},
				Headers: []*openapi.Header{
					{Name: "X-Request-Id", Schema: &openapi.Schema{Type: openapi.TypeString, Format: openapi.FormatUUID}},
				},
			},
			{StatusCode: "204", Description: "no content"},
		},
	}

	records := ResponseParameters(op, defs)
	assert.Len(records, 5)

	body := records[0]
	assert.Equal("200", body.StatusCode)
	assert.Equal("body", body.Name)
	assert.Equal(TagObject, body.Type)
	assert.NotEmpty(body.FullJSONExample)

	assert.Equal("id", records[1].HierarchyPath)
	assert.Equal("name", records[2].HierarchyPath)

	header := records[3]
	assert.Equal("200", header.StatusCode)
	assert.Equal("X-Request-Id", header.Name)
	assert.Equal(openapi.ParameterInHeader, header.Location)
	assert.Equal(TagString, header.Type)
	assert.NotNil(header.Example)

	// contentless responses still produce one placeholder row
	placeholder := records[4]
	assert.Equal("204", placeholder.StatusCode)
	assert.Equal("body", placeholder.Name)
	assert.Equal(TagString, placeholder.Type)
	assert.Equal("no content", placeholder.Description)
	assert.Nil(placeholder.Example)
}

func TestHeaderRecordExamplePrecedence(t *testing.T) {
	assert := assert2.New(t)
	t.Parallel()

	t.Run("own-example-wins", func(t *testing.T) {
		header := &openapi.Header{
			Name:    "X-Limit",
			Example: 50,
			Schema:  &openapi.Schema{Type: openapi.TypeInteger, Example: 10},
		}
		rec := headerRecord("200", header, nil)
		assert.Equal(50, rec.Example)
	})

	t.Run("schema-example-fallback", func(t *testing.T) {
		header := &openapi.Header{
			Name:   "X-Limit",
			Schema: &openapi.Schema{Type: openapi.TypeInteger, Example: 10},
		}
		rec := headerRecord("200", header, nil)
		assert.Equal(10, rec.Example)
	})

	t.Run("pattern-example-fallback", func(t *testing.T) {
		header := &openapi.Header{
			Name:   "X-Trace",
			Schema: &openapi.Schema{Type: openapi.TypeString, Pattern: `^\d{6}$`},
		}
		rec := headerRecord("200", header, nil)
		assert.Len(rec.PatternExample, 6)
		assert.Len(rec.Example, 6)
	})
}
