package extract

import sitter "github.com/tree-sitter/go-tree-sitter"

// classSugarFields handles class-sugar languages: direct field definitions
// map one to one, while block-scoped variable declarations count as fields
// only when lexically inside a class body, one record per declarator.
func classSugarFields(e *Extractor, node *sitter.Node, source []byte) []FieldRecord {
	switch node.Kind() {
	case "lexical_declaration", "variable_declaration":
		parent := e.parentClassName(node, source)
		if parent == "" {
			return nil
		}

		declarators := childrenByKind(node, "variable_declarator")
		records := make([]FieldRecord, 0, len(declarators))
		for i, d := range declarators {
			name := nodeText(d.ChildByFieldName("name"), source)
			if name == "" {
				name = "anonymous"
			}
			records = append(records, FieldRecord{
				Name:        name,
				Type:        fieldType(d, source),
				ParentClass: parent,
				Index:       i + 1,
				Location:    locationOf(d),
			})
		}
		return records

	default:
		// field_definition / public_field_definition: the name field differs
		// between the javascript and typescript grammars.
		name := e.fieldText(node, e.cfg.FieldNameField, source)
		if name == "" {
			name = e.fieldText(node, "property", source)
		}
		if name == "" {
			name = e.fieldText(node, "name", source)
		}
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
}
