package extract

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// resolveDocumentation attaches nearby comments or a docstring to a node by
// layered heuristics, applied in order until one produces text:
//
//  1. the unbroken run of comment siblings immediately preceding the node
//  2. comment nodes on the named-previous-sibling chain not seen in 1
//  3. the same sibling scan relative to the parent (covers declarations
//     wrapped by decorator nodes)
//  4. a bare string literal as the body's first statement (docstring)
//
// This is deliberately not grammar-aware attached-comment resolution: no
// blank-line cutoff is applied, so a comment separated from its target by
// blank lines is still attached.
func resolveDocumentation(node *sitter.Node, source []byte) Documentation {
	texts := precedingComments(node, source)

	if len(texts) == 0 && node.Parent() != nil {
		texts = precedingComments(node.Parent(), source)
	}

	if len(texts) == 0 {
		if doc := bodyDocstring(node, source); doc != "" {
			texts = []string{doc}
		}
	}

	docstring := strings.TrimSpace(strings.Join(texts, "\n"))
	return Documentation{
		Docstring: docstring,
		HasDoc:    docstring != "",
	}
}

// precedingComments collects comment text above a node: first the contiguous
// run of immediate siblings, then any extra comments reachable through the
// named-sibling chain, prepended in source order.
func precedingComments(node *sitter.Node, source []byte) []string {
	var texts []string
	seen := map[uint]bool{}

	for sib := node.PrevSibling(); sib != nil; sib = sib.PrevSibling() {
		if !isCommentKind(sib.Kind()) {
			break
		}
		seen[sib.StartByte()] = true
		texts = append(texts, nodeText(sib, source))
	}
	reverse(texts)

	// The named chain can skip past anonymous tokens the raw chain stops at.
	// It still ends at the first non-comment named sibling so a declaration
	// cannot inherit comments that belong to an earlier one.
	var extra []string
	for sib := node.PrevNamedSibling(); sib != nil; sib = sib.PrevNamedSibling() {
		if !isCommentKind(sib.Kind()) {
			break
		}
		if seen[sib.StartByte()] {
			continue
		}
		extra = append(extra, nodeText(sib, source))
	}
	if len(extra) > 0 {
		reverse(extra)
		texts = append(extra, texts...)
	}

	return texts
}

// bodyDocstring returns the text of the body's first statement when that
// statement is a bare string literal expression.
func bodyDocstring(node *sitter.Node, source []byte) string {
	body := node.ChildByFieldName("body")
	if body == nil || body.NamedChildCount() == 0 {
		return ""
	}

	first := body.NamedChild(0)
	if first == nil || first.Kind() != "expression_statement" || first.NamedChildCount() == 0 {
		return ""
	}

	expr := first.NamedChild(0)
	if expr == nil || !strings.Contains(expr.Kind(), "string") {
		return ""
	}
	return nodeText(expr, source)
}

func isCommentKind(kind string) bool {
	return strings.Contains(kind, "comment")
}
