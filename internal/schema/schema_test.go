package schema_test

import (
	"testing"

	"github.com/isometry/event-schema/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBase = `{
  "openapi": "3.0.0",
  "info": {"version": "1.0.0", "title": "Event"},
  "paths": {},
  "components": {
    "schemas": {
      "AWSEvent": {
        "type": "object",
        "required": ["detail", "id"],
        "properties": {
          "detail": {"$ref": "#/components/schemas/Event"},
          "id": {"type": "string"}
        }
      }
    }
  }
}`

func parseBase(t *testing.T) schema.Document {
	t.Helper()
	doc, err := schema.Parse([]byte(testBase))
	require.NoError(t, err)
	return doc
}

func schemas(t *testing.T, doc schema.Document) map[string]any {
	t.Helper()
	components, ok := doc["components"].(map[string]any)
	require.True(t, ok, "components is not an object")
	s, ok := components["schemas"].(map[string]any)
	require.True(t, ok, "components.schemas is not an object")
	return s
}

func detailRef(t *testing.T, doc schema.Document) any {
	t.Helper()
	envelope := schemas(t, doc)[schema.EnvelopeSchema].(map[string]any)
	detail := envelope["properties"].(map[string]any)["detail"].(map[string]any)
	return detail["$ref"]
}

func TestBuildEventSchema(t *testing.T) {
	testCases := []struct {
		Name  string
		Event string
	}{
		{
			Name:  "pascal_case",
			Event: "OrderPlaced",
		},
		{
			Name:  "camel_case",
			Event: "userSignedUp",
		},
		{
			Name:  "dotted",
			Event: "order.placed",
		},
		{
			Name:  "envelope_name",
			Event: "Event",
		},
		{
			Name:  "empty",
			Event: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			doc := schema.BuildEventSchema(parseBase(t), tc.Event)

			assert.Equal(t, "#/components/schemas/"+tc.Event, detailRef(t, doc))
			assert.Equal(t, map[string]any{
				"type":     "object",
				"required": []any{},
				"properties": map[string]any{
					"id": map[string]any{"type": "string"},
				},
			}, schemas(t, doc)[tc.Event])
			assert.Equal(t, "3.0.0", doc["openapi"])
		})
	}
}

func TestBuildEventSchemaDoesNotMutateBase(t *testing.T) {
	base := parseBase(t)
	pristine := parseBase(t)

	first := schema.BuildEventSchema(base, "OrderPlaced")
	second := schema.BuildEventSchema(base, "OrderCancelled")

	assert.Equal(t, pristine, base)
	assert.NotContains(t, schemas(t, first), "OrderCancelled")
	assert.NotContains(t, schemas(t, second), "OrderPlaced")
	assert.Equal(t, "#/components/schemas/OrderPlaced", detailRef(t, first))
	assert.Equal(t, "#/components/schemas/OrderCancelled", detailRef(t, second))
}

func TestBuildEventSchemaIdempotent(t *testing.T) {
	base := parseBase(t)
	first := schema.BuildEventSchema(base, "OrderPlaced")
	second := schema.BuildEventSchema(base, "OrderPlaced")

	assert.Equal(t, first, second)

	// Results must not alias each other.
	schemas(t, first)["OrderPlaced"].(map[string]any)["type"] = "string"
	assert.Equal(t, "object", schemas(t, second)["OrderPlaced"].(map[string]any)["type"])
}

func TestBuildEventSchemaCreatesMissingPath(t *testing.T) {
	doc := schema.BuildEventSchema(schema.Document{"openapi": "3.0.0"}, "OrderPlaced")

	assert.Equal(t, "#/components/schemas/OrderPlaced", detailRef(t, doc))
	assert.Contains(t, schemas(t, doc), "OrderPlaced")

	doc = schema.BuildEventSchema(nil, "OrderPlaced")
	assert.Equal(t, "#/components/schemas/OrderPlaced", detailRef(t, doc))
}

func TestParse(t *testing.T) {
	testCases := []struct {
		Name    string
		Content string
		Error   bool
	}{
		{
			Name:    "object",
			Content: `{"openapi": "3.0.0"}`,
		},
		{
			Name:    "array",
			Content: `[]`,
			Error:   true,
		},
		{
			Name:    "null",
			Content: `null`,
			Error:   true,
		},
		{
			Name:    "malformed",
			Content: `{"openapi":`,
			Error:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			_, err := schema.Parse([]byte(tc.Content))
			if tc.Error {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDocumentMarshal(t *testing.T) {
	doc := schema.BuildEventSchema(parseBase(t), "OrderPlaced")

	first, err := doc.Marshal()
	require.NoError(t, err)
	second, err := doc.Marshal()
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.Contains(t, string(first), "\n  \"components\": {\n    \"schemas\": {")
	assert.Contains(t, string(first), `"$ref": "#/components/schemas/OrderPlaced"`)
	assert.NotContains(t, string(first), `&`)
	assert.NotEqual(t, byte('\n'), first[len(first)-1])

	parsed, err := schema.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, doc, parsed)
}

func TestClone(t *testing.T) {
	doc := schema.Document{
		"list":   []any{map[string]any{"k": "v"}},
		"nested": schema.Document{"k": "v"},
	}
	clone := schema.Clone(doc)

	clone["list"].([]any)[0].(map[string]any)["k"] = "changed"
	clone["nested"].(map[string]any)["k"] = "changed"

	assert.Equal(t, "v", doc["list"].([]any)[0].(map[string]any)["k"])
	assert.Equal(t, "v", doc["nested"].(schema.Document)["k"])
	assert.Equal(t, schema.Document{}, schema.Clone(nil))
}
