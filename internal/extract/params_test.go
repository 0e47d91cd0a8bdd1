package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan:
// - plain, typed, defaulted, and splat parameter shapes all resolve a name
// - declaration order is preserved
// - punctuation children never produce records

func TestParameters_PythonShapes(t *testing.T) {
	t.Parallel()

	src := `def call(a, b: int, c=1, d: str = "x", *args, **kwargs):
    pass
`
	ex, root, source := parseSource(t, "python", src)

	methods := ex.ExtractMethods(root, source, true)
	require.Len(t, methods, 1)

	params := methods[0].Parameters
	require.Len(t, params, 6)

	assert.Equal(t, ParameterRecord{Name: "a"}, params[0])
	assert.Equal(t, ParameterRecord{Name: "b", Type: "int"}, params[1])
	assert.Equal(t, ParameterRecord{Name: "c", Default: "1"}, params[2])
	assert.Equal(t, ParameterRecord{Name: "d", Type: "str", Default: `"x"`}, params[3])
	assert.Equal(t, "args", params[4].Name)
	assert.Equal(t, "kwargs", params[5].Name)
}

func TestParameters_JavaScriptDefaults(t *testing.T) {
	t.Parallel()

	src := `function send(url, retries = 3) {
    return url;
}
`
	ex, root, source := parseSource(t, "javascript", src)

	methods := ex.ExtractMethods(root, source, true)
	require.Len(t, methods, 1)

	params := methods[0].Parameters
	require.Len(t, params, 2)
	assert.Equal(t, "url", params[0].Name)
	assert.Equal(t, "retries", params[1].Name)
	assert.Equal(t, "3", params[1].Default)
}

func TestParameters_NilNode(t *testing.T) {
	t.Parallel()

	assert.Empty(t, extractParameters(nil, nil))
}
