package endpoint_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/payxpert/payxpert-go/internal/endpoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsVersionUnset(t *testing.T) {
	empty, set1 := "", "X"
	unset := []any{nil, "", 0, int64(0), 0.0, false, math.NaN(), (*string)(nil), &empty}
	for _, v := range unset {
		assert.True(t, endpoint.IsVersionUnset(v), "%#v", v)
	}

	set := []any{"X", "002.70", 1, -1, 2.5, true, map[string]any{}, &set1}
	for _, v := range set {
		assert.False(t, endpoint.IsVersionUnset(v), "%#v", v)
	}
}

func TestInjectVersion_Maps(t *testing.T) {
	t.Run("fills empty body", func(t *testing.T) {
		out := endpoint.InjectVersion(map[string]any{})

		assert.Equal(t, map[string]any{"apiVersion": endpoint.DefaultAPIVersion}, out)
	})

	t.Run("keeps truthy caller value", func(t *testing.T) {
		body := map[string]any{"apiVersion": "X", "amount": 10}

		out := endpoint.InjectVersion(body)

		assert.Equal(t, map[string]any{"apiVersion": "X", "amount": 10}, out)
	})

	t.Run("overwrites falsy values", func(t *testing.T) {
		for _, falsy := range []any{0, "", nil, false} {
			out := endpoint.InjectVersion(map[string]any{"apiVersion": falsy})

			assert.Equal(t, map[string]any{"apiVersion": endpoint.DefaultAPIVersion}, out, "%#v", falsy)
		}
	})

	t.Run("does not mutate the caller's map", func(t *testing.T) {
		body := map[string]any{"amount": 10}

		out := endpoint.InjectVersion(body)

		assert.NotContains(t, body, "apiVersion")
		assert.Equal(t, endpoint.DefaultAPIVersion, out.(map[string]any)["apiVersion"])
	})

	t.Run("nil body becomes a version envelope", func(t *testing.T) {
		assert.Equal(t, map[string]any{"apiVersion": endpoint.DefaultAPIVersion}, endpoint.InjectVersion(nil))
	})

	t.Run("string maps get the version too", func(t *testing.T) {
		body := map[string]string{"mode": "native"}

		out := endpoint.InjectVersion(body)

		assert.Equal(t, map[string]string{"mode": "native", "apiVersion": endpoint.DefaultAPIVersion}, out)
		assert.Equal(t, map[string]string{"mode": "native"}, body)
	})

	t.Run("string maps keep a caller version", func(t *testing.T) {
		body := map[string]string{"mode": "pos", "apiVersion": "002.61"}

		assert.Equal(t, body, endpoint.InjectVersion(body))
	})
}

func TestInjectVersion_Structs(t *testing.T) {
	type captureBody struct {
		APIVersion string `json:"apiVersion,omitempty"`
		Amount     int64  `json:"amount"`
	}
	type plainBody struct {
		Amount int64 `json:"amount"`
	}

	t.Run("fills struct copy", func(t *testing.T) {
		body := captureBody{Amount: 400}

		out := endpoint.InjectVersion(body)

		assert.Equal(t, captureBody{APIVersion: endpoint.DefaultAPIVersion, Amount: 400}, out)
		assert.Empty(t, body.APIVersion)
	})

	t.Run("fills a copy of a pointed-to struct", func(t *testing.T) {
		body := &captureBody{Amount: 400}

		out := endpoint.InjectVersion(body)

		assert.Equal(t, &captureBody{APIVersion: endpoint.DefaultAPIVersion, Amount: 400}, out)
		assert.Empty(t, body.APIVersion)
	})

	t.Run("keeps caller version", func(t *testing.T) {
		body := captureBody{APIVersion: "002.61", Amount: 1}

		assert.Equal(t, body, endpoint.InjectVersion(body))
	})

	t.Run("bodies without a version field are sent as an object carrying it", func(t *testing.T) {
		body := plainBody{Amount: 9007199254740993}

		out := endpoint.InjectVersion(body)

		encoded, err := json.Marshal(out)
		require.NoError(t, err)
		assert.JSONEq(t, `{"amount":9007199254740993,"apiVersion":"002.70"}`, string(encoded))
		assert.Equal(t, plainBody{Amount: 9007199254740993}, body)
	})

	t.Run("nil struct pointer becomes a version envelope", func(t *testing.T) {
		assert.Equal(t, map[string]any{"apiVersion": endpoint.DefaultAPIVersion}, endpoint.InjectVersion((*plainBody)(nil)))
	})

	t.Run("values that are not objects pass through", func(t *testing.T) {
		assert.Equal(t, []int{1, 2}, endpoint.InjectVersion([]int{1, 2}))
		assert.Equal(t, "raw", endpoint.InjectVersion("raw"))
	})
}

func TestInjectVersion_FieldKinds(t *testing.T) {
	type pointerBody struct {
		APIVersion *string `json:"apiVersion,omitempty"`
		Mode       string  `json:"mode"`
	}
	type anyBody struct {
		APIVersion any    `json:"apiVersion,omitempty"`
		Mode       string `json:"mode"`
	}

	t.Run("nil *string field is filled", func(t *testing.T) {
		body := pointerBody{Mode: "native"}

		out, ok := endpoint.InjectVersion(body).(pointerBody)

		require.True(t, ok)
		require.NotNil(t, out.APIVersion)
		assert.Equal(t, endpoint.DefaultAPIVersion, *out.APIVersion)
		assert.Nil(t, body.APIVersion)
	})

	t.Run("*string field pointing at a value is kept", func(t *testing.T) {
		version := "002.61"
		body := &pointerBody{APIVersion: &version, Mode: "native"}

		assert.Same(t, body, endpoint.InjectVersion(body))
	})

	t.Run("nil interface field is filled", func(t *testing.T) {
		body := anyBody{Mode: "native"}

		out := endpoint.InjectVersion(body)

		assert.Equal(t, anyBody{APIVersion: endpoint.DefaultAPIVersion, Mode: "native"}, out)
	})

	t.Run("falsy interface field is filled", func(t *testing.T) {
		out := endpoint.InjectVersion(anyBody{APIVersion: 0, Mode: "native"})

		assert.Equal(t, anyBody{APIVersion: endpoint.DefaultAPIVersion, Mode: "native"}, out)
	})
}
