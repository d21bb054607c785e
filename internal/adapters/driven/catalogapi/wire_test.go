package catalogapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"abc"`, "abc"},
		{`7`, "7"},
		{`null`, ""},
		{`"64f1c0e2"`, "64f1c0e2"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var f flexString
			require.NoError(t, json.Unmarshal([]byte(tt.in), &f))
			assert.Equal(t, tt.want, string(f))
		})
	}

	var f flexString
	assert.Error(t, json.Unmarshal([]byte(`true`), &f))
}

func TestFlexFloat(t *testing.T) {
	var f flexFloat
	require.NoError(t, json.Unmarshal([]byte(`"12.5"`), &f))
	assert.InDelta(t, 12.5, float64(f), 0.0001)

	require.NoError(t, json.Unmarshal([]byte(`30`), &f))
	assert.InDelta(t, 30.0, float64(f), 0.0001)

	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &f))
}

func TestFlexInt(t *testing.T) {
	var f flexInt
	require.NoError(t, json.Unmarshal([]byte(`"45"`), &f))
	assert.Equal(t, 45, int(f))

	require.NoError(t, json.Unmarshal([]byte(`90`), &f))
	assert.Equal(t, 90, int(f))
}

func TestErrorResponse_Text(t *testing.T) {
	assert.Equal(t, "a", errorResponse{Error: "a", Message: "b"}.text())
	assert.Equal(t, "b", errorResponse{Message: "b"}.text())
	assert.Equal(t, "", errorResponse{}.text())
}
