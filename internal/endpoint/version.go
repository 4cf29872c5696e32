package endpoint

import (
	"math"
	"reflect"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var (
	json       = jsoniter.ConfigCompatibleWithStandardLibrary
	numberJSON = jsoniter.Config{EscapeHTML: true, SortMapKeys: true, ValidateJsonRawMessage: true, UseNumber: true}.Froze()
)

const (
	VersionField      = "apiVersion"
	DefaultAPIVersion = "002.70"
)

// IsVersionUnset reports whether a version value counts as missing: nil, the
// empty string, false, zero or NaN. Pointers are judged by what they point to.
func IsVersionUnset(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	case reflect.Pointer:
		return rv.IsNil() || IsVersionUnset(rv.Elem().Interface())
	}
	return false
}

// InjectVersion returns body with the API version filled in when it is unset.
// The caller's value is never modified. Maps are copied. Structs whose
// `json:"apiVersion"` field is a string, *string or interface are copied with
// the field set. Any other body that encodes to a JSON object is re-encoded
// as a map[string]any carrying the version. Bodies that do not encode to an
// object are returned as they are.
func InjectVersion(body any) any {
	switch b := body.(type) {
	case nil:
		return map[string]any{VersionField: DefaultAPIVersion}
	case map[string]any:
		if !IsVersionUnset(b[VersionField]) {
			return b
		}
		out := make(map[string]any, len(b)+1)
		for k, v := range b {
			out[k] = v
		}
		out[VersionField] = DefaultAPIVersion
		return out
	case map[string]string:
		if b[VersionField] != "" {
			return b
		}
		out := make(map[string]string, len(b)+1)
		for k, v := range b {
			out[k] = v
		}
		out[VersionField] = DefaultAPIVersion
		return out
	}

	v := reflect.ValueOf(body)
	isPtr := v.Kind() == reflect.Pointer
	if isPtr {
		if v.IsNil() {
			return map[string]any{VersionField: DefaultAPIVersion}
		}
		v = v.Elem()
	}
	if v.Kind() == reflect.Struct {
		if idx := versionFieldIndex(v.Type()); idx >= 0 {
			return injectField(body, v, idx, isPtr)
		}
	}

	return injectObject(body)
}

func injectField(body any, v reflect.Value, idx int, isPtr bool) any {
	if !IsVersionUnset(v.Field(idx).Interface()) {
		return body
	}

	cp := reflect.New(v.Type()).Elem()
	cp.Set(v)
	f := cp.Field(idx)
	switch f.Kind() {
	case reflect.String:
		f.SetString(DefaultAPIVersion)
	case reflect.Pointer:
		version := DefaultAPIVersion
		f.Set(reflect.ValueOf(&version))
	case reflect.Interface:
		f.Set(reflect.ValueOf(DefaultAPIVersion))
	}

	if isPtr {
		return cp.Addr().Interface()
	}
	return cp.Interface()
}


// injectObject goes through the JSON form of body. Numbers are kept as
// json.Number so large identifiers survive the round trip.
func injectObject(body any) any {
	data, err := json.Marshal(body)
	if err != nil {
		return body
	}

	var obj map[string]any
	if err := numberJSON.Unmarshal(data, &obj); err != nil || obj == nil {
		return body
	}
	return InjectVersion(obj)
}

func versionFieldIndex(t reflect.Type) int {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || !versionFieldType(f.Type) {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == VersionField {
			return i
		}
	}
	return -1
}

func versionFieldType(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.String:
		return true
	case reflect.Interface:
		return t.NumMethod() == 0
	case reflect.Pointer:
		return t.Elem().Kind() == reflect.String
	}
	return false
}
