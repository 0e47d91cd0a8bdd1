package extract

import (
	"errors"
	"fmt"
)

// ErrUnsupportedLanguage is returned by New for language ids with no
// registered configuration.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// DecoratorStyle selects how decorators/annotations are located for a
// language. Ecosystems disagree on placement, so this is a per-language
// lookup rather than behavior baked into the extractor.
type DecoratorStyle int

const (
	// DecoratorNone - language has no decorator convention.
	DecoratorNone DecoratorStyle = iota
	// DecoratorWrapper - declarations are wrapped by a decorated_definition
	// style ancestor that carries the decorator nodes (python).
	DecoratorWrapper
	// DecoratorSibling - decorator nodes immediately precede the declaration
	// as named siblings.
	DecoratorSibling
	// DecoratorEmbedded - decorator/annotation/attribute nodes live inside
	// the declaration subtree, before its body (java, csharp, typescript).
	DecoratorEmbedded
)

// LanguageConfig declares which node kinds play the class/method/field roles
// for one language and which field holds each entity's name.
type LanguageConfig struct {
	ID string

	ClassTypes     []string
	ClassNameField string

	MethodTypes     []string
	MethodNameField string

	FieldTypes     []string
	FieldNameField string

	DecoratorStyle DecoratorStyle
	// DecoratorTypes are the node kinds recognized as decorators under the
	// selected style. For DecoratorWrapper the first entry is the wrapper
	// node kind and the rest are the decorator kinds inside it.
	DecoratorTypes []string
}

// languageConfigs is the built-in per-language table. Node kind names come
// from the respective tree-sitter grammars.
var languageConfigs = map[string]*LanguageConfig{
	"python": {
		ID:              "python",
		ClassTypes:      []string{"class_definition"},
		ClassNameField:  "name",
		MethodTypes:     []string{"function_definition"},
		MethodNameField: "name",
		FieldTypes:      []string{"assignment"},
		FieldNameField:  "left",
		DecoratorStyle:  DecoratorWrapper,
		DecoratorTypes:  []string{"decorated_definition", "decorator"},
	},
	"javascript": {
		ID:              "javascript",
		ClassTypes:      []string{"class_declaration", "class"},
		ClassNameField:  "name",
		MethodTypes:     []string{"method_definition", "function_declaration", "generator_function_declaration"},
		MethodNameField: "name",
		FieldTypes:      []string{"field_definition", "lexical_declaration", "variable_declaration"},
		FieldNameField:  "property",
		DecoratorStyle:  DecoratorEmbedded,
		DecoratorTypes:  []string{"decorator"},
	},
	"typescript": {
		ID:              "typescript",
		ClassTypes:      []string{"class_declaration", "abstract_class_declaration"},
		ClassNameField:  "name",
		MethodTypes:     []string{"method_definition", "function_declaration", "generator_function_declaration"},
		MethodNameField: "name",
		FieldTypes:      []string{"public_field_definition", "lexical_declaration", "variable_declaration"},
		FieldNameField:  "name",
		DecoratorStyle:  DecoratorEmbedded,
		DecoratorTypes:  []string{"decorator"},
	},
	"tsx": {
		ID:              "tsx",
		ClassTypes:      []string{"class_declaration", "abstract_class_declaration"},
		ClassNameField:  "name",
		MethodTypes:     []string{"method_definition", "function_declaration", "generator_function_declaration"},
		MethodNameField: "name",
		FieldTypes:      []string{"public_field_definition", "lexical_declaration", "variable_declaration"},
		FieldNameField:  "name",
		DecoratorStyle:  DecoratorEmbedded,
		DecoratorTypes:  []string{"decorator"},
	},
	"java": {
		ID:              "java",
		ClassTypes:      []string{"class_declaration", "interface_declaration", "enum_declaration"},
		ClassNameField:  "name",
		MethodTypes:     []string{"method_declaration", "constructor_declaration"},
		MethodNameField: "name",
		FieldTypes:      []string{"field_declaration"},
		FieldNameField:  "name",
		DecoratorStyle:  DecoratorEmbedded,
		DecoratorTypes:  []string{"marker_annotation", "annotation"},
	},
	"csharp": {
		ID:              "csharp",
		ClassTypes:      []string{"class_declaration", "interface_declaration", "struct_declaration", "record_declaration"},
		ClassNameField:  "name",
		MethodTypes:     []string{"method_declaration", "constructor_declaration"},
		MethodNameField: "name",
		FieldTypes:      []string{"field_declaration", "property_declaration"},
		FieldNameField:  "name",
		DecoratorStyle:  DecoratorEmbedded,
		DecoratorTypes:  []string{"attribute_list"},
	},
	"go": {
		ID:              "go",
		ClassTypes:      []string{"type_spec"},
		ClassNameField:  "name",
		MethodTypes:     []string{"function_declaration", "method_declaration"},
		MethodNameField: "name",
		FieldTypes:      []string{"field_declaration"},
		FieldNameField:  "name",
		DecoratorStyle:  DecoratorNone,
	},
	"ruby": {
		ID:              "ruby",
		ClassTypes:      []string{"class", "module"},
		ClassNameField:  "name",
		MethodTypes:     []string{"method", "singleton_method"},
		MethodNameField: "name",
		FieldTypes:      []string{"assignment"},
		FieldNameField:  "left",
		DecoratorStyle:  DecoratorNone,
	},
	"rust": {
		ID:              "rust",
		ClassTypes:      []string{"struct_item", "enum_item", "trait_item"},
		ClassNameField:  "name",
		MethodTypes:     []string{"function_item"},
		MethodNameField: "name",
		FieldTypes:      []string{"field_declaration"},
		FieldNameField:  "name",
		DecoratorStyle:  DecoratorSibling,
		DecoratorTypes:  []string{"attribute_item"},
	},
	"c": {
		ID:              "c",
		ClassTypes:      []string{"struct_specifier"},
		ClassNameField:  "name",
		MethodTypes:     []string{"function_definition"},
		MethodNameField: "declarator",
		FieldTypes:      []string{"field_declaration"},
		FieldNameField:  "declarator",
		DecoratorStyle:  DecoratorNone,
	},
	"php": {
		ID:              "php",
		ClassTypes:      []string{"class_declaration", "interface_declaration", "trait_declaration"},
		ClassNameField:  "name",
		MethodTypes:     []string{"method_declaration", "function_definition"},
		MethodNameField: "name",
		FieldTypes:      []string{"property_declaration"},
		FieldNameField:  "name",
		DecoratorStyle:  DecoratorSibling,
		DecoratorTypes:  []string{"attribute_list"},
	},
}

// ConfigFor returns the built-in configuration for a language id.
func ConfigFor(langID string) (*LanguageConfig, error) {
	cfg, ok := languageConfigs[langID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, langID)
	}
	return cfg, nil
}

// Languages lists the supported language ids in no particular order.
func Languages() []string {
	ids := make([]string, 0, len(languageConfigs))
	for id := range languageConfigs {
		ids = append(ids, id)
	}
	return ids
}

func (c *LanguageConfig) isClassType(kind string) bool {
	for _, t := range c.ClassTypes {
		if t == kind {
			return true
		}
	}
	return false
}
