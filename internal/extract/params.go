package extract

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// parameterShapes is the vocabulary of node kinds accepted as parameter
// declarations across the supported grammars. Children of the parameters
// node whose kind is neither listed here nor contains "parameter" are
// silently skipped.
var parameterShapes = map[string]bool{
	"identifier":               true,
	"typed_parameter":          true,
	"default_parameter":        true,
	"typed_default_parameter":  true,
	"formal_parameter":         true,
	"required_parameter":       true,
	"optional_parameter":       true,
	"parameter":                true,
	"simple_parameter":         true,
	"spread_parameter":         true,
	"variadic_parameter":       true,
	"parameter_declaration":    true,
	"self_parameter":           true,
	"list_splat_pattern":       true,
	"dictionary_splat_pattern": true,
	"assignment_pattern":       true,
	"rest_pattern":             true,
}

var parameterPunctuation = map[string]bool{
	"(": true,
	")": true,
	",": true,
	";": true,
}

// extractParameters derives one ParameterRecord per accepted child of the
// parameters node, in declaration order.
func extractParameters(paramsNode *sitter.Node, source []byte) []ParameterRecord {
	records := []ParameterRecord{}
	if paramsNode == nil {
		return records
	}

	for i := uint(0); i < paramsNode.ChildCount(); i++ {
		child := paramsNode.Child(i)
		if child == nil {
			continue
		}
		kind := child.Kind()
		if parameterPunctuation[kind] {
			continue
		}
		if !parameterShapes[kind] && !strings.Contains(kind, "parameter") {
			continue
		}
		records = append(records, parameterRecord(child, source))
	}
	return records
}

func parameterRecord(node *sitter.Node, source []byte) ParameterRecord {
	rec := ParameterRecord{
		Name:    parameterName(node, source),
		Type:    normalizeType(nodeText(node.ChildByFieldName("type"), source)),
		Default: parameterDefault(node, source),
	}
	return rec
}

func parameterName(node *sitter.Node, source []byte) string {
	if name := node.ChildByFieldName("name"); name != nil {
		return nodeText(name, source)
	}
	if pattern := node.ChildByFieldName("pattern"); pattern != nil {
		return nodeText(pattern, source)
	}
	// Defaulted javascript parameters are assignment patterns: name on the
	// left, default on the right.
	if left := node.ChildByFieldName("left"); left != nil {
		return nodeText(left, source)
	}
	// Typed shapes without a name field (python typed_parameter) carry the
	// identifier as a plain child.
	if ident := findChildByKind(node, "identifier"); ident != nil {
		return nodeText(ident, source)
	}
	return nodeText(node, source)
}

func parameterDefault(node *sitter.Node, source []byte) string {
	if value := node.ChildByFieldName("value"); value != nil {
		return nodeText(value, source)
	}
	if dv := node.ChildByFieldName("default_value"); dv != nil {
		return nodeText(dv, source)
	}
	if node.Kind() == "assignment_pattern" {
		return nodeText(node.ChildByFieldName("right"), source)
	}
	return ""
}
