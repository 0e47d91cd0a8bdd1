package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

const walkerSource = `def first():
    pass

class Box:
    def second(self):
        pass

    def third(self):
        pass

def fourth():
    pass
`

func TestFindNodes_PreOrder(t *testing.T) {
	t.Parallel()

	_, root, src := parseSource(t, "python", walkerSource)

	nodes := FindNodes(root, []string{"function_definition"})
	require.Len(t, nodes, 4)

	names := make([]string, 0, len(nodes))
	for _, n := range nodes {
		names = append(names, nodeText(n.ChildByFieldName("name"), src))
	}
	// Pre-order: parent before children, siblings left to right.
	assert.Equal(t, []string{"first", "second", "third", "fourth"}, names)
}

func TestFindNodes_MixedTypes(t *testing.T) {
	t.Parallel()

	_, root, _ := parseSource(t, "python", walkerSource)

	nodes := FindNodes(root, []string{"class_definition", "function_definition"})
	require.Len(t, nodes, 5)
	// The class comes after the first function and before its methods.
	assert.Equal(t, "function_definition", nodes[0].Kind())
	assert.Equal(t, "class_definition", nodes[1].Kind())
	assert.Equal(t, "function_definition", nodes[2].Kind())
}

func TestFindNodes_EmptyTypeSet(t *testing.T) {
	t.Parallel()

	_, root, _ := parseSource(t, "python", walkerSource)
	assert.Empty(t, FindNodes(root, nil))
}

func TestWalk_SkipSubtree(t *testing.T) {
	t.Parallel()

	_, root, _ := parseSource(t, "python", walkerSource)

	// Refusing to descend into the class must hide its methods.
	functions := 0
	Walk(root, func(n *sitter.Node) bool {
		if n.Kind() == "class_definition" {
			return false
		}
		if n.Kind() == "function_definition" {
			functions++
		}
		return true
	})
	assert.Equal(t, 2, functions)
}

func TestWalk_NilRoot(t *testing.T) {
	t.Parallel()

	visited := false
	Walk(nil, func(*sitter.Node) bool {
		visited = true
		return true
	})
	assert.False(t, visited)
}

func TestNodeText_OutOfBounds(t *testing.T) {
	t.Parallel()

	_, root, _ := parseSource(t, "python", "x = 1\n")
	assert.Equal(t, "", nodeText(root, []byte("x")))
	assert.Equal(t, "x = 1", nodeText(root.NamedChild(0), []byte("x = 1\n")))
}
