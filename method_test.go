package interpolation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in   string
		want Method
	}{
		{"lagrange", MethodLagrange},
		{"newton-forward", MethodNewtonForward},
		{" Newton-Backward ", MethodNewtonBackward},
		{"newtonDivided", MethodNewtonDivided},
	}
	for _, tt := range tests {
		got, err := ParseMethod(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseMethod("spline")
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestParseMethods(t *testing.T) {
	all, err := ParseMethods(nil)
	require.NoError(t, err)
	assert.Equal(t, Methods(), all)

	ms, err := ParseMethods([]string{"newton-divided", "lagrange"})
	require.NoError(t, err)
	assert.Equal(t, []Method{MethodNewtonDivided, MethodLagrange}, ms)

	_, err = ParseMethods([]string{"lagrange", "cubic"})
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestMethodStrings(t *testing.T) {
	for _, m := range Methods() {
		back, err := ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, back)
		assert.NotEmpty(t, m.Name())
		assert.NotEmpty(t, m.Description())
	}
	assert.Equal(t, "Newton's Divided", MethodNewtonDivided.Name())
	assert.Equal(t, "Method(9)", Method(9).String())
	assert.Empty(t, Method(-1).Description())
}

func TestMethodJSON(t *testing.T) {
	type active struct {
		Method Method `json:"method"`
	}
	b, err := json.Marshal(active{MethodNewtonBackward})
	require.NoError(t, err)
	assert.JSONEq(t, `{"method":"newton-backward"}`, string(b))

	var a active
	require.NoError(t, json.Unmarshal([]byte(`{"method":"newton-forward"}`), &a))
	assert.Equal(t, MethodNewtonForward, a.Method)

	assert.Error(t, json.Unmarshal([]byte(`{"method":"bogus"}`), &a))
	_, err = json.Marshal(active{Method(7)})
	assert.Error(t, err)
}
