package models

// Document is the canonical map form a record is persisted as. The document
// store imposes no schema; these maps carry the exact key set written to the
// underlying collection.
type Document = map[string]interface{}

func docString(doc Document, key string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}

func docBool(doc Document, key string) bool {
	if v, ok := doc[key].(bool); ok {
		return v
	}
	return false
}

// docInt tolerates the numeric types the mongo driver decodes into.
func docInt(doc Document, key string) int {
	switch v := doc[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

func docSlice(doc Document, key string) []interface{} {
	switch v := doc[key].(type) {
	case []interface{}:
		return v
	case []Document:
		out := make([]interface{}, len(v))
		for i := range v {
			out[i] = v[i]
		}
		return out
	default:
		return nil
	}
}

func asDocument(v interface{}) Document {
	if d, ok := v.(Document); ok {
		return d
	}
	return nil
}
