package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// parseSource builds an extractor for lang, parses src, and returns both with
// the tree root. The tree is closed when the test finishes.
func parseSource(t *testing.T, lang, src string) (*Extractor, *sitter.Node, []byte) {
	t.Helper()

	ex, err := New(lang)
	require.NoError(t, err)

	tree, err := ex.ParseSource([]byte(src))
	require.NoError(t, err)
	t.Cleanup(func() { tree.Close() })

	return ex, tree.RootNode(), []byte(src)
}
