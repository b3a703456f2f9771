// Package schema builds AWS EventBridge event schema documents from the base AWSEvent document.
package schema

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// RefPrefix prefixes every schema reference inside the document.
const RefPrefix = "#/components/schemas/"

// EnvelopeSchema is the name of the envelope schema whose detail property references the event schema.
const EnvelopeSchema = "AWSEvent"

// Document is a decoded OpenAPI 3 schema registry document.
type Document map[string]any

// Parse decodes a JSON document. The top level must be an object.
func Parse(content []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode schema document")
	}
	if doc == nil {
		return nil, errors.New("schema document is not an object")
	}
	return doc, nil
}

// Marshal encodes doc as JSON with two-space indentation and sorted keys.
func (d Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, errors.Wrap(err, "failed to encode schema document")
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// EventSchema returns the minimal schema attached to every generated event.
func EventSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []any{},
		"properties": map[string]any{
			"id": map[string]any{
				"type": "string",
			},
		},
	}
}

// BuildEventSchema returns a copy of base whose envelope detail references a new schema named event.
// Base is never modified. The event name is used verbatim, including the empty string.
func BuildEventSchema(base Document, event string) Document {
	doc := Clone(base)
	schemas := object(object(doc, "components"), "schemas")
	detail := object(object(object(schemas, EnvelopeSchema), "properties"), "detail")
	detail["$ref"] = RefPrefix + event
	schemas[event] = EventSchema()
	return doc
}

// object returns parent[key] as an object, replacing any missing or non-object value.
func object(parent map[string]any, key string) map[string]any {
	if child, ok := parent[key].(map[string]any); ok {
		return child
	}
	child := map[string]any{}
	parent[key] = child
	return child
}
