package extract

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// phpPropertyFields handles property declarations that wrap each declared
// property in a property_element holding a variable_name, one record per
// element with 1-based indices. The leading $ sigil is stripped from names.
func phpPropertyFields(e *Extractor, node *sitter.Node, source []byte) []FieldRecord {
	elements := childrenByKind(node, "property_element")
	if len(elements) == 0 {
		return defaultFields(e, node, source)
	}

	typ := fieldType(node, source)
	modifiers := collectModifiers(node, source)
	parent := e.parentClassName(node, source)

	records := make([]FieldRecord, 0, len(elements))
	for i, el := range elements {
		name := nodeText(findChildByKind(el, "variable_name"), source)
		name = strings.TrimPrefix(name, "$")
		if name == "" {
			name = "anonymous"
		}
		records = append(records, FieldRecord{
			Name:        name,
			Type:        typ,
			Modifiers:   modifiers,
			ParentClass: parent,
			Index:       i + 1,
			Location:    locationOf(el),
		})
	}
	return records
}
