package extract

import sitter "github.com/tree-sitter/go-tree-sitter"

// Variant is the per-language override point: how a field-type node becomes
// FieldRecords, and how a method is recognized as static. Variants are plain
// function pairs resolved once at factory construction; languages without an
// entry get the generic default.
type Variant struct {
	ExtractFields  func(e *Extractor, node *sitter.Node, source []byte) []FieldRecord
	IsStaticMethod func(node *sitter.Node, source []byte, modifiers []string) bool
}

var variants = map[string]Variant{
	"java":       {ExtractFields: declaratorNamedFields, IsStaticMethod: staticByModifier},
	"python":     {ExtractFields: receiverFields, IsStaticMethod: staticByDecorator},
	"csharp":     {ExtractFields: multiDeclaratorFields, IsStaticMethod: staticByModifier},
	"javascript": {ExtractFields: classSugarFields, IsStaticMethod: staticByModifier},
	"typescript": {ExtractFields: classSugarFields, IsStaticMethod: staticByModifier},
	"tsx":        {ExtractFields: classSugarFields, IsStaticMethod: staticByModifier},
	"php":        {ExtractFields: phpPropertyFields, IsStaticMethod: staticByModifier},
}

func variantFor(langID string) Variant {
	if v, ok := variants[langID]; ok {
		return v
	}
	return Variant{
		ExtractFields:  defaultFields,
		IsStaticMethod: staticByModifier,
	}
}

// defaultFields derives a single FieldRecord from a field-type node using
// the configured name field.
func defaultFields(e *Extractor, node *sitter.Node, source []byte) []FieldRecord {
	name := e.fieldText(node, e.cfg.FieldNameField, source)
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

// staticByModifier is the default static detection: a literal "static"
// modifier on the declaration.
func staticByModifier(node *sitter.Node, source []byte, modifiers []string) bool {
	return hasModifier(modifiers, "static")
}

func fieldType(node *sitter.Node, source []byte) string {
	if t := normalizeType(nodeText(node.ChildByFieldName("type"), source)); t != "" {
		return t
	}
	return "unknown"
}
