package extract

import sitter "github.com/tree-sitter/go-tree-sitter"

// Walk visits every node under root in pre-order: parent before children,
// siblings left to right. Returning false from visit skips the node's
// subtree. The traversal uses an explicit stack so depth is limited by heap,
// not by the Go call stack.
func Walk(root *sitter.Node, visit func(*sitter.Node) bool) {
	if root == nil {
		return
	}

	stack := []*sitter.Node{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(node) {
			continue
		}

		// Push children in reverse so the leftmost child is visited first.
		for i := int(node.ChildCount()) - 1; i >= 0; i-- {
			if child := node.Child(uint(i)); child != nil {
				stack = append(stack, child)
			}
		}
	}
}

// FindNodes returns all nodes under root whose kind is one of types, in
// pre-order. The order is deterministic and downstream indexing (parameter
// positions, declarator indices) relies on it.
func FindNodes(root *sitter.Node, types []string) []*sitter.Node {
	if len(types) == 0 {
		return nil
	}

	wanted := make(map[string]bool, len(types))
	for _, t := range types {
		wanted[t] = true
	}

	var matches []*sitter.Node
	Walk(root, func(n *sitter.Node) bool {
		if wanted[n.Kind()] {
			matches = append(matches, n)
		}
		return true
	})
	return matches
}

// findNodesFunc is FindNodes with a kind predicate instead of a fixed set.
func findNodesFunc(root *sitter.Node, match func(kind string) bool) []*sitter.Node {
	var matches []*sitter.Node
	Walk(root, func(n *sitter.Node) bool {
		if match(n.Kind()) {
			matches = append(matches, n)
		}
		return true
	})
	return matches
}

// countNodes counts nodes under root whose kind is in the given set.
func countNodes(root *sitter.Node, wanted map[string]bool) int {
	count := 0
	Walk(root, func(n *sitter.Node) bool {
		if wanted[n.Kind()] {
			count++
		}
		return true
	})
	return count
}

// nodeText extracts the source text covered by a node.
func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	start := node.StartByte()
	end := node.EndByte()
	if start >= uint(len(source)) || end > uint(len(source)) || start >= end {
		return ""
	}
	return string(source[start:end])
}
