package endpoint

import "strconv"

// Field reads a scalar from a decoded JSON object as a string. The API is not
// consistent about quoting codes and identifiers, so numbers and booleans are
// rendered too. Missing keys, null, objects and arrays give "".
func Field(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}
