package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeatlas-io/codeatlas/internal/extract"
	"github.com/codeatlas-io/codeatlas/internal/runner"
)

// Test Plan:
// - a document carries either an extraction or an error per file, never both
// - the JSON round-trips with snake_case keys
// - the text rendering names each file and its entities

func sampleResults() []runner.FileResult {
	return []runner.FileResult{
		{
			Path:     "src/app.py",
			Language: "python",
			Extraction: &extract.FileExtraction{
				Path:     "src/app.py",
				Language: "python",
				Classes: []extract.ClassRecord{{
					Name:     "App",
					Location: extract.Location{File: "src/app.py", StartLine: 1, EndLine: 8},
				}},
				Methods: []extract.MethodRecord{{
					Name:        "run",
					ParamsText:  "()",
					ReturnType:  "void",
					ParentClass: "App",
					Signature:   "void run()",
					Location:    extract.Location{File: "src/app.py", StartLine: 2, EndLine: 4},
					Metrics:     extract.MethodMetrics{CyclomaticComplexity: 1, LineCount: 3},
				}},
				Metrics: extract.FileMetrics{LineCount: 8, ClassCount: 1},
			},
		},
		{
			Path: "src/broken.py",
			Err:  errors.New("read src/broken.py: permission denied"),
		},
	}
}

func TestNewDocument(t *testing.T) {
	t.Parallel()

	doc := NewDocument("/proj", sampleResults())

	assert.NotEmpty(t, doc.ID)
	assert.False(t, doc.GeneratedAt.IsZero())
	assert.Equal(t, "/proj", doc.Root)
	require.Len(t, doc.Files, 2)

	assert.NotNil(t, doc.Files[0].Extraction)
	assert.Empty(t, doc.Files[0].Error)

	assert.Nil(t, doc.Files[1].Extraction)
	assert.Contains(t, doc.Files[1].Error, "permission denied")
}

func TestWriteJSON_SnakeCaseKeys(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, NewDocument("/proj", sampleResults())))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "generated_at")
	assert.Contains(t, decoded, "files")

	out := buf.String()
	assert.Contains(t, out, `"parent_class": "App"`)
	assert.Contains(t, out, `"params_text": "()"`)
	assert.Contains(t, out, `"start_line": 2`)
}

func TestWriteText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, NewDocument("/proj", sampleResults())))

	out := buf.String()
	assert.Contains(t, out, "File: src/app.py (python)")
	assert.Contains(t, out, "- App (lines 1-8)")
	assert.Contains(t, out, "- App.run (lines 2-4)")
	assert.Contains(t, out, "void run()")
	assert.Contains(t, out, "File: src/broken.py")
	assert.Contains(t, out, "error: read src/broken.py: permission denied")
}
