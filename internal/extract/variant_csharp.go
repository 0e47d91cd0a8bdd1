package extract

import sitter "github.com/tree-sitter/go-tree-sitter"

// multiDeclaratorFields handles property-capable declarations: a field
// declaration with several sibling declarators yields one record per
// declarator (indices 1..N), and a get/set property yields a single record
// flagged as a property.
func multiDeclaratorFields(e *Extractor, node *sitter.Node, source []byte) []FieldRecord {
	if node.Kind() == "property_declaration" {
		name := e.fieldText(node, "name", source)
		if name == "" {
			name = "anonymous"
		}
		return []FieldRecord{{
			Name:        name,
			Type:        fieldType(node, source),
			Modifiers:   collectModifiers(node, source),
			ParentClass: e.parentClassName(node, source),
			IsProperty:  true,
			Index:       1,
			Location:    locationOf(node),
		}}
	}

	varDecl := findChildByKind(node, "variable_declaration")
	if varDecl == nil {
		return defaultFields(e, node, source)
	}

	typ := fieldType(varDecl, source)
	modifiers := collectModifiers(node, source)
	parent := e.parentClassName(node, source)

	declarators := childrenByKind(varDecl, "variable_declarator")
	records := make([]FieldRecord, 0, len(declarators))
	for i, d := range declarators {
		name := nodeText(d.ChildByFieldName("name"), source)
		if name == "" {
			if ident := findChildByKind(d, "identifier"); ident != nil {
				name = nodeText(ident, source)
			}
		}
		if name == "" {
			name = "anonymous"
		}
		records = append(records, FieldRecord{
			Name:        name,
			Type:        typ,
			Modifiers:   modifiers,
			ParentClass: parent,
			Index:       i + 1,
			Location:    locationOf(d),
		})
	}
	return records
}
