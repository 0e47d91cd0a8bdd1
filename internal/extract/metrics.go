package extract

import (
	"bytes"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Node kind sets driving the per-method metrics. Kind names are the union of
// the supported grammars; counting a kind a grammar never produces is
// harmless.
var (
	statementKinds = map[string]bool{
		"assignment":                  true,
		"augmented_assignment":        true,
		"lexical_declaration":         true,
		"variable_declaration":        true,
		"local_variable_declaration":  true,
		"local_declaration_statement": true,
		"declaration":                 true,
		"short_var_declaration":       true,
		"let_declaration":             true,
		"call":                        true,
		"call_expression":             true,
	}

	branchKinds = map[string]bool{
		"if_statement":      true,
		"if_expression":     true,
		"elif_clause":       true,
		"switch_statement":  true,
		"switch_expression": true,
		"match_statement":   true,
		"match_expression":  true,
		"case_clause":       true,
		"switch_case":       true,
		"switch_section":    true,
		"when_clause":       true,
	}

	loopKinds = map[string]bool{
		"for_statement":          true,
		"for_in_statement":       true,
		"enhanced_for_statement": true,
		"foreach_statement":      true,
		"for_expression":         true,
		"while_statement":        true,
		"while_expression":       true,
		"do_statement":           true,
		"do_while_statement":     true,
		"loop_expression":        true,
	}

	returnKinds = map[string]bool{
		"return_statement":  true,
		"return_expression": true,
		"yield":             true,
		"yield_expression":  true,
		"yield_statement":   true,
	}

	nestingKinds = map[string]bool{
		"if_statement":           true,
		"if_expression":          true,
		"for_statement":          true,
		"for_in_statement":       true,
		"enhanced_for_statement": true,
		"foreach_statement":      true,
		"for_expression":         true,
		"while_statement":        true,
		"while_expression":       true,
		"do_statement":           true,
		"do_while_statement":     true,
		"switch_statement":       true,
		"switch_expression":      true,
		"match_statement":        true,
		"try_statement":          true,
		"try_expression":         true,
		"loop_expression":        true,
	}
)

func isStatementKind(kind string) bool {
	return statementKinds[kind] || strings.HasSuffix(kind, "_statement")
}

// methodMetrics derives size, branching, and nesting facts for one method
// body. Cyclomatic complexity is the simplified McCabe form: 1 plus branch
// and loop counts, ignoring short-circuit operators and exception handlers.
func methodMetrics(node *sitter.Node) MethodMetrics {
	m := MethodMetrics{
		LineCount: int(node.EndPosition().Row) - int(node.StartPosition().Row) + 1,
	}

	Walk(node, func(n *sitter.Node) bool {
		kind := n.Kind()
		if isStatementKind(kind) {
			m.StatementCount++
		}
		if branchKinds[kind] {
			m.BranchCount++
		}
		if loopKinds[kind] {
			m.LoopCount++
		}
		if returnKinds[kind] {
			m.ReturnCount++
		}
		return true
	})

	m.CyclomaticComplexity = 1 + m.BranchCount + m.LoopCount
	m.NestingDepth = nestingDepth(node)
	return m
}

// nestingDepth finds the deepest chain of control structures under node,
// using an explicit work list so generated or deeply nested source cannot
// exhaust the call stack.
func nestingDepth(root *sitter.Node) int {
	type entry struct {
		node  *sitter.Node
		depth int
	}

	max := 0
	stack := []entry{{root, 0}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		depth := e.depth
		if nestingKinds[e.node.Kind()] {
			depth++
			if depth > max {
				max = depth
			}
		}

		for i := int(e.node.ChildCount()) - 1; i >= 0; i-- {
			if child := e.node.Child(uint(i)); child != nil {
				stack = append(stack, entry{child, depth})
			}
		}
	}
	return max
}

// classMetrics derives whole-class size facts. Comment lines include
// comments anywhere under the class, its methods included.
func classMetrics(node *sitter.Node, methodCount, fieldCount int) ClassMetrics {
	return ClassMetrics{
		LineCount:    int(node.EndPosition().Row) - int(node.StartPosition().Row) + 1,
		CommentLines: commentLines(node),
		MethodCount:  methodCount,
		FieldCount:   fieldCount,
	}
}

// fileMetrics derives whole-file counts. Function count covers top-level
// functions only.
func fileMetrics(root *sitter.Node, source []byte, classes []ClassRecord, methods []MethodRecord) FileMetrics {
	topLevel := 0
	for _, m := range methods {
		if m.ParentClass == "" {
			topLevel++
		}
	}

	return FileMetrics{
		LineCount:     bytes.Count(source, []byte("\n")) + 1,
		CommentLines:  commentLines(root),
		ClassCount:    len(classes),
		FunctionCount: topLevel,
	}
}

// commentLines sums the line spans of every comment node under root.
func commentLines(root *sitter.Node) int {
	total := 0
	Walk(root, func(n *sitter.Node) bool {
		if isCommentKind(n.Kind()) {
			total += int(n.EndPosition().Row) - int(n.StartPosition().Row) + 1
		}
		return true
	})
	return total
}
