package extract

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
	c "github.com/tree-sitter/tree-sitter-c/bindings/go"
	csharp "github.com/tree-sitter/tree-sitter-c-sharp/bindings/go"
	golang "github.com/tree-sitter/tree-sitter-go/bindings/go"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	php "github.com/tree-sitter/tree-sitter-php/bindings/go"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	ruby "github.com/tree-sitter/tree-sitter-ruby/bindings/go"
	rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// grammarFor returns the tree-sitter grammar for a supported language id.
func grammarFor(langID string) (*sitter.Language, error) {
	switch langID {
	case "python":
		return sitter.NewLanguage(python.Language()), nil
	case "javascript":
		return sitter.NewLanguage(javascript.Language()), nil
	case "typescript":
		return sitter.NewLanguage(typescript.LanguageTypescript()), nil
	case "tsx":
		return sitter.NewLanguage(typescript.LanguageTSX()), nil
	case "java":
		return sitter.NewLanguage(java.Language()), nil
	case "csharp":
		return sitter.NewLanguage(csharp.Language()), nil
	case "go":
		return sitter.NewLanguage(golang.Language()), nil
	case "ruby":
		return sitter.NewLanguage(ruby.Language()), nil
	case "rust":
		return sitter.NewLanguage(rust.Language()), nil
	case "c":
		return sitter.NewLanguage(c.Language()), nil
	case "php":
		return sitter.NewLanguage(php.LanguagePHP()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, langID)
	}
}
