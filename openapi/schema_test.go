package openapi

import (
	"fmt"
	"testing"

	assert2 "github.com/stretchr/testify/assert"
)

func TestFixSchemaTypeTypos(t *testing.T) {
	assert := assert2.New(t)
	t.Parallel()

	type testCase struct {
		name     string
		expected string
	}

	testCases := []testCase{
		{"int", TypeInteger},
		{"float", TypeNumber},
		{"bool", TypeBoolean},
		{"string", TypeString},
		{"unknown", "unknown"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := FixSchemaTypeTypos(tc.name)
			assert.Equal(tc.expected, res)
		})
	}
}

func TestGetOpenAPITypeFromValue(t *testing.T) {
	assert := assert2.New(t)
	t.Parallel()

	type testCase struct {
		value    any
		expected string
	}

	testCases := []testCase{
		{1, TypeInteger},
		{int64(2), TypeInteger},
		{3.14, TypeNumber},
		{true, TypeBoolean},
		{"string", TypeString},
		{func() {}, ""},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("case-%v", tc.value), func(t *testing.T) {
			res := GetOpenAPITypeFromValue(tc.value)
			assert.Equal(tc.expected, res)
		})
	}
}

func TestSetProperty(t *testing.T) {
	assert := assert2.New(t)
	t.Parallel()

	t.Run("preserves-insertion-order", func(t *testing.T) {
		s := &Schema{Type: TypeObject}
		s.SetProperty("zeta", &Schema{Type: TypeString})
		s.SetProperty("alpha", &Schema{Type: TypeInteger})
		s.SetProperty("mid", &Schema{Type: TypeBoolean})

		assert.Equal([]string{"zeta", "alpha", "mid"}, s.PropertyOrder)
	})

	t.Run("reset-keeps-position", func(t *testing.T) {
		s := &Schema{Type: TypeObject}
		s.SetProperty("a", &Schema{Type: TypeString})
		s.SetProperty("b", &Schema{Type: TypeString})
		s.SetProperty("a", &Schema{Type: TypeInteger})

		assert.Equal([]string{"a", "b"}, s.PropertyOrder)
		assert.Equal(TypeInteger, s.Properties["a"].Type)
	})
}

func TestIsRef(t *testing.T) {
	assert := assert2.New(t)
	t.Parallel()

	assert.True((&Schema{Ref: "Pet"}).IsRef())
	assert.False((&Schema{Type: TypeObject}).IsRef())

	var nilSchema *Schema
	assert.False(nilSchema.IsRef())
}
