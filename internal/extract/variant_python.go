package extract

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// receiverFields treats an assignment as a field only when it sits inside a
// class body and its left-hand side references the implicit instance
// receiver (self.name = ...). Everything else is rejected, not an error.
func receiverFields(e *Extractor, node *sitter.Node, source []byte) []FieldRecord {
	parent := e.parentClassName(node, source)
	if parent == "" {
		return nil
	}

	left := nodeText(node.ChildByFieldName("left"), source)
	if !strings.HasPrefix(left, "self.") {
		return nil
	}
	name := strings.TrimPrefix(left, "self.")
	if name == "" {
		return nil
	}

	return []FieldRecord{{
		Name:        name,
		Type:        fieldType(node, source),
		ParentClass: parent,
		Index:       1,
		Location:    locationOf(node),
	}}
}

// staticByDecorator recognizes python static methods: a decorated_definition
// wrapper whose decorator name mentions staticmethod.
func staticByDecorator(node *sitter.Node, source []byte, modifiers []string) bool {
	for p := node.Parent(); p != nil; p = p.Parent() {
		if p.Kind() != "decorated_definition" {
			continue
		}
		for i := uint(0); i < p.ChildCount(); i++ {
			child := p.Child(i)
			if child != nil && child.Kind() == "decorator" &&
				strings.Contains(nodeText(child, source), "staticmethod") {
				return true
			}
		}
	}
	return false
}
