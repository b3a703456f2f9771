package schema

// Clone returns a deep copy of doc. Nested objects and arrays are never shared with the original.
func Clone(doc Document) Document {
	if doc == nil {
		return Document{}
	}
	return cloneObject(doc)
}

func cloneObject(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch vt := v.(type) {
	case map[string]any:
		return cloneObject(vt)
	case Document:
		return cloneObject(vt)
	case []any:
		out := make([]any, len(vt))
		for i, e := range vt {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
