package transport

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"

	"github.com/google/go-querystring/query"
)

// EncodeForm serializes a GET body into a query string. Maps are flattened
// one level deep: scalars are stringified, slices repeat the key and nested
// objects encode as an empty value. Structs are encoded through their `url`
// tags.
func EncodeForm(body any) (string, error) {
	switch b := body.(type) {
	case nil:
		return "", nil
	case url.Values:
		return b.Encode(), nil
	case map[string]string:
		values := url.Values{}
		for k, v := range b {
			values.Set(k, v)
		}
		return values.Encode(), nil
	case map[string]any:
		values := url.Values{}
		for k, v := range b {
			addFormValue(values, k, v)
		}
		return values.Encode(), nil
	}

	v := reflect.ValueOf(body)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "", nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return "", fmt.Errorf("%w: cannot form-encode body of type %T", ErrInvalidRequest, body)
	}

	values, err := query.Values(body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return values.Encode(), nil
}

func addFormValue(values url.Values, key string, v any) {
	switch val := v.(type) {
	case []string:
		for _, item := range val {
			values.Add(key, item)
		}
	case []any:
		for _, item := range val {
			values.Add(key, formScalar(item))
		}
	default:
		values.Add(key, formScalar(val))
	}
}

func formScalar(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(val)
	case fmt.Stringer:
		return val.String()
	default:
		return ""
	}
}
