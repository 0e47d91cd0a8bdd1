package extract

import sitter "github.com/tree-sitter/go-tree-sitter"

// declaratorNamedFields handles nominal typed declarations where the field
// name lives on a declarator sub-node rather than on the declaration itself
// (java: field_declaration > variable_declarator > name).
func declaratorNamedFields(e *Extractor, node *sitter.Node, source []byte) []FieldRecord {
	declarator := findChildByKind(node, "variable_declarator")
	if declarator == nil {
		return defaultFields(e, node, source)
	}

	name := nodeText(declarator.ChildByFieldName("name"), source)
	if name == "" {
		name = "anonymous"
	}

	return []FieldRecord{{
		Name:        name,
		Type:        fieldType(node, source),
		Modifiers:   collectModifiers(node, source),
		ParentClass: e.parentClassName(node, source),
		Index:       1,
		Location:    locationOf(node),
	}}
}
