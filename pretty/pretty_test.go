package pretty

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFprint(t *testing.T) {
	tests := map[string]struct {
		v    any
		want string
	}{
		"object": {
			v:    map[string]any{"status": "OK"},
			want: "{\n    \"status\": \"OK\"\n}\n",
		},
		"nested": {
			v: map[string]any{
				"competition": map[string]any{"id": 2021},
				"standings":   []any{"TOTAL"},
			},
			want: "{\n" +
				"    \"competition\": {\n" +
				"        \"id\": 2021\n" +
				"    },\n" +
				"    \"standings\": [\n" +
				"        \"TOTAL\"\n" +
				"    ]\n" +
				"}\n",
		},
		"scalar": {
			v:    "Brighton & Hove Albion",
			want: "\"Brighton & Hove Albion\"\n",
		},
		"null": {
			v:    nil,
			want: "null\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Fprint(&buf, tt.v))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestFprintUnsupported(t *testing.T) {
	var buf bytes.Buffer
	err := Fprint(&buf, map[string]any{"ch": make(chan int)})
	assert.Error(t, err)
}
