package schema_test

import (
	"strings"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/configtree/pkg/document"
	"github.com/aretw0/configtree/pkg/schema"
)

// decode parses an inline JSON literal the same way files are parsed.
func decode(t *testing.T, s string) any {
	t.Helper()
	v, err := document.Decode("inline.json", []byte(s))
	require.NoError(t, err)
	return v
}

func newValidator(t *testing.T, opts ...schema.Option) *schema.Validator {
	t.Helper()
	v, err := schema.NewValidator(opts...)
	require.NoError(t, err)
	return v
}

const versionedSchema = `{
	"type": "object",
	"properties": {
		"version": {"type": "number"},
		"name": {"type": "string"}
	},
	"required": ["version", "name"]
}`

func TestValidate_Success(t *testing.T) {
	v := newValidator(t)

	err := v.Validate(decode(t, `{"version": 1, "name": "x"}`), decode(t, versionedSchema))
	assert.NoError(t, err)
}

func TestValidate_TypeMismatch(t *testing.T) {
	v := newValidator(t)

	err := v.Validate(decode(t, `{"version": 1, "name": 123}`), decode(t, versionedSchema))
	require.Error(t, err)

	var failure *schema.ValidationFailure
	require.ErrorAs(t, err, &failure)
	require.Len(t, failure.Violations, 1)

	got := failure.Violations[0]
	assert.Equal(t, "/name", got.InstanceLocation)
	assert.True(t, strings.HasSuffix(got.KeywordLocation, "/type"), "keyword location %q", got.KeywordLocation)
	assert.Contains(t, got.Message, "string")
	assert.True(t, strings.HasPrefix(err.Error(), "/name: "), "error %q", err.Error())
}

func TestValidate_MissingRequiredProperty(t *testing.T) {
	v := newValidator(t)

	err := v.Validate(decode(t, `{"version": 1}`), decode(t, versionedSchema))
	violations := schema.Violations(err)
	require.Len(t, violations, 1)

	assert.Equal(t, "", violations[0].InstanceLocation)
	assert.Contains(t, violations[0].Message, "name")
	assert.True(t, strings.HasPrefix(err.Error(), "(root): "), "error %q", err.Error())
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	v := newValidator(t)

	err := v.Validate(decode(t, `{"version": "one", "name": false}`), decode(t, versionedSchema))
	violations := schema.Violations(err)
	require.Len(t, violations, 2)

	// Sorted by instance location.
	assert.Equal(t, "/name", violations[0].InstanceLocation)
	assert.Equal(t, "/version", violations[1].InstanceLocation)
	assert.Contains(t, err.Error(), "2 validation errors:")
	assert.Contains(t, err.Error(), "1. /name: ")
	assert.Contains(t, err.Error(), "2. /version: ")
}

func TestValidate_Deterministic(t *testing.T) {
	v := newValidator(t)
	doc := decode(t, `{"a": 1, "b": 2, "c": 3, "d": 4}`)
	sch := decode(t, `{
		"properties": {
			"a": {"type": "string"},
			"b": {"type": "string"},
			"c": {"type": "string"},
			"d": {"type": "string"}
		}
	}`)

	first := v.Validate(doc, sch)
	require.Error(t, first)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first.Error(), v.Validate(doc, sch).Error())
	}
}

func TestValidate_InvalidSchema(t *testing.T) {
	v := newValidator(t)

	err := v.Validate(decode(t, `{}`), decode(t, `{"type": 5}`))
	require.Error(t, err)

	var compileErr *schema.CompileError
	assert.ErrorAs(t, err, &compileErr)

	var failure *schema.ValidationFailure
	assert.NotErrorAs(t, err, &failure)
}

const servicesSchema = `{
	"type": "object",
	"properties": {
		"services": {
			"type": "array",
			"items": {"type": "object"},
			"uniqueItemProperties": ["id"]
		}
	}
}`

func TestValidate_UniqueItemProperties(t *testing.T) {
	v := newValidator(t)
	sch := decode(t, servicesSchema)

	t.Run("Distinct Values", func(t *testing.T) {
		err := v.Validate(decode(t, `{"services": [{"id": 1}, {"id": 2}, {"id": "1"}]}`), sch)
		assert.NoError(t, err)
	})

	t.Run("Duplicate Values", func(t *testing.T) {
		err := v.Validate(decode(t, `{"services": [{"id": 1, "n": "a"}, {"id": 2}, {"id": 1.0, "n": "b"}]}`), sch)
		violations := schema.Violations(err)
		require.Len(t, violations, 1)

		assert.Equal(t, "/services", violations[0].InstanceLocation)
		assert.True(t, strings.HasSuffix(violations[0].KeywordLocation, "/uniqueItemProperties"),
			"keyword location %q", violations[0].KeywordLocation)
		assert.Equal(t, "items at index 0 and 2 have duplicate values for property 'id'", violations[0].Message)
	})

	t.Run("Duplicate Object Values", func(t *testing.T) {
		err := v.Validate(decode(t, `{"services": [{"id": {"k": [1]}}, {"id": {"k": [1]}}]}`), sch)
		assert.Len(t, schema.Violations(err), 1)
	})

	t.Run("Both Missing Property", func(t *testing.T) {
		err := v.Validate(decode(t, `{"services": [{"name": "a"}, {"name": "b"}]}`), sch)
		assert.Len(t, schema.Violations(err), 1)
	})

	t.Run("One Missing Property", func(t *testing.T) {
		err := v.Validate(decode(t, `{"services": [{"name": "a"}, {"id": null}]}`), sch)
		assert.NoError(t, err)
	})

	t.Run("Reported With Other Violations", func(t *testing.T) {
		err := v.Validate(decode(t, `{"services": [{"id": 1}, {"id": 1}, 7]}`), sch)
		violations := schema.Violations(err)
		require.Len(t, violations, 2)
		assert.Equal(t, "/services", violations[0].InstanceLocation)
		assert.Equal(t, "/services/2", violations[1].InstanceLocation)
	})

	t.Run("Several Properties", func(t *testing.T) {
		multi := decode(t, `{"type": "array", "uniqueItemProperties": ["id", "name"]}`)
		err := v.Validate(decode(t, `[{"id": 1, "name": "a"}, {"id": 1, "name": "a"}]`), multi)
		assert.Len(t, schema.Violations(err), 2)
	})
}

func TestValidate_UniqueItemPropertiesInvalidKeyword(t *testing.T) {
	v := newValidator(t)

	err := v.Validate(decode(t, `[]`), decode(t, `{"uniqueItemProperties": "id"}`))
	var compileErr *schema.CompileError
	assert.ErrorAs(t, err, &compileErr)

	err = v.Validate(decode(t, `[]`), decode(t, `{"uniqueItemProperties": [1]}`))
	assert.ErrorAs(t, err, &compileErr)
}

func TestValidate_Draft2020(t *testing.T) {
	v := newValidator(t, schema.WithDraft(jsonschema.Draft2020))

	sch := decode(t, `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "array",
		"prefixItems": [{"type": "object"}],
		"uniqueItemProperties": ["id"]
	}`)

	assert.NoError(t, v.Validate(decode(t, `[{"id": "a"}, {"id": "b"}]`), sch))
	assert.Len(t, schema.Violations(v.Validate(decode(t, `[{"id": "a"}, {"id": "a"}]`), sch)), 1)
	assert.Len(t, schema.Violations(v.Validate(decode(t, `["x"]`), sch)), 1)
}
