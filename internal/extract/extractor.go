package extract

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Extractor normalizes one language's syntax trees into the uniform record
// schema. It holds no per-call state: distinct calls (and distinct files) are
// independent and may run concurrently.
type Extractor struct {
	cfg     *LanguageConfig
	grammar *sitter.Language
	variant Variant
}

// New builds an extractor for the given language id. Unknown ids fail fast
// with ErrUnsupportedLanguage; no extractor is constructed.
func New(langID string) (*Extractor, error) {
	cfg, err := ConfigFor(langID)
	if err != nil {
		return nil, err
	}
	grammar, err := grammarFor(langID)
	if err != nil {
		return nil, err
	}
	return &Extractor{
		cfg:     cfg,
		grammar: grammar,
		variant: variantFor(langID),
	}, nil
}

// Language returns the extractor's language id.
func (e *Extractor) Language() string {
	return e.cfg.ID
}

// Config returns the extractor's language configuration.
func (e *Extractor) Config() *LanguageConfig {
	return e.cfg
}

// ParseSource parses source text with the extractor's grammar and returns the
// tree. The caller owns the tree and must Close it.
func (e *Extractor) ParseSource(source []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(e.grammar); err != nil {
		return nil, fmt.Errorf("set %s grammar: %w", e.cfg.ID, err)
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse %s source", e.cfg.ID)
	}
	return tree, nil
}

// ExtractAll runs class, method, and field extraction over one tree and
// derives the file-level metrics.
func (e *Extractor) ExtractAll(root *sitter.Node, source []byte) *FileExtraction {
	classes := e.ExtractClasses(root, source)
	methods := e.ExtractMethods(root, source, true)
	fields := e.ExtractFields(root, source)

	return &FileExtraction{
		Language: e.cfg.ID,
		Classes:  classes,
		Methods:  methods,
		Fields:   fields,
		Metrics:  fileMetrics(root, source, classes, methods),
	}
}

// ExtractSource parses source text and extracts it in one call, stamping the
// file path into every record location. Convenience for batch callers.
func (e *Extractor) ExtractSource(path string, source []byte) (*FileExtraction, error) {
	tree, err := e.ParseSource(source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	fx := e.ExtractAll(tree.RootNode(), source)
	fx.Path = path
	for i := range fx.Classes {
		fx.Classes[i].Location.File = path
	}
	for i := range fx.Methods {
		fx.Methods[i].Location.File = path
	}
	for i := range fx.Fields {
		fx.Fields[i].Location.File = path
	}
	return fx, nil
}

// ExtractClasses yields one ClassRecord per class-type node, in pre-order.
func (e *Extractor) ExtractClasses(root *sitter.Node, source []byte) []ClassRecord {
	nodes := FindNodes(root, e.cfg.ClassTypes)
	records := make([]ClassRecord, 0, len(nodes))
	for _, node := range nodes {
		records = append(records, e.classRecord(node, source))
	}
	return records
}

func (e *Extractor) classRecord(node *sitter.Node, source []byte) ClassRecord {
	name := e.fieldText(node, e.cfg.ClassNameField, source)
	if name == "" {
		name = "anonymous"
	}

	// Counts come from the same type-driven search used for method/field
	// extraction, scoped to the class body when the grammar exposes one.
	scope := node
	if body := node.ChildByFieldName("body"); body != nil {
		scope = body
	}
	methodCount := len(FindNodes(scope, e.cfg.MethodTypes))
	fieldCount := len(FindNodes(scope, e.cfg.FieldTypes))

	return ClassRecord{
		Name: name,
		// Collected across the whole subtree; modifiers of a nested class
		// are over-counted here. Known limitation.
		Modifiers:     collectModifiers(node, source),
		MethodCount:   methodCount,
		FieldCount:    fieldCount,
		Location:      locationOf(node),
		Documentation: resolveDocumentation(node, source),
		Metrics:       classMetrics(node, methodCount, fieldCount),
	}
}

// ExtractMethods yields one MethodRecord per method-type node. With
// includeClassMethods false, methods nested inside a class are filtered out
// and only top-level functions remain.
func (e *Extractor) ExtractMethods(root *sitter.Node, source []byte, includeClassMethods bool) []MethodRecord {
	nodes := FindNodes(root, e.cfg.MethodTypes)
	records := make([]MethodRecord, 0, len(nodes))
	for _, node := range nodes {
		rec := e.methodRecord(node, source)
		if !includeClassMethods && rec.ParentClass != "" {
			continue
		}
		records = append(records, rec)
	}
	return records
}

func (e *Extractor) methodRecord(node *sitter.Node, source []byte) MethodRecord {
	name := e.fieldText(node, e.cfg.MethodNameField, source)
	if name == "" {
		name = "anonymous"
	}

	paramsNode := node.ChildByFieldName("parameters")
	if paramsNode == nil {
		// c hangs the parameter list on the function_declarator inside the
		// definition, not on the definition itself.
		for d := node.ChildByFieldName("declarator"); d != nil; d = d.ChildByFieldName("declarator") {
			if p := d.ChildByFieldName("parameters"); p != nil {
				paramsNode = p
				break
			}
		}
	}
	paramsText := "()"
	if paramsNode != nil {
		paramsText = nodeText(paramsNode, source)
	}
	params := extractParameters(paramsNode, source)

	// Grammars disagree on the return-type field name: "type" (java, c),
	// "return_type" (python, typescript, php, rust), "returns" (csharp),
	// "result" (go).
	returnType := ""
	for _, field := range []string{"type", "return_type", "returns", "result"} {
		if returnType = normalizeType(e.fieldText(node, field, source)); returnType != "" {
			break
		}
	}
	if returnType == "" {
		returnType = "void"
	}

	modifiers := collectModifiers(node, source)
	decorators := e.decorators(node, source)

	return MethodRecord{
		Name:          name,
		Parameters:    params,
		ParamsText:    paramsText,
		ReturnType:    returnType,
		Modifiers:     modifiers,
		AccessControl: accessControl(modifiers),
		IsStatic:      e.variant.IsStaticMethod(node, source, modifiers),
		IsAsync:       strings.HasPrefix(nodeText(node, source), "async"),
		IsOverride:    isOverride(modifiers, decorators),
		Decorators:    decorators,
		ParentClass:   e.parentClassName(node, source),
		Signature:     returnType + " " + name + paramsText,
		Location:      locationOf(node),
		Documentation: resolveDocumentation(node, source),
		Metrics:       methodMetrics(node),
	}
}

// ExtractFields yields FieldRecords via the language variant. Field-type
// nodes the variant rejects (e.g. an assignment that does not touch the
// instance receiver) are skipped, not errors.
func (e *Extractor) ExtractFields(root *sitter.Node, source []byte) []FieldRecord {
	nodes := FindNodes(root, e.cfg.FieldTypes)
	records := make([]FieldRecord, 0, len(nodes))
	for _, node := range nodes {
		records = append(records, e.variant.ExtractFields(e, node, source)...)
	}
	return records
}

// fieldText returns the text of the child in the given grammar field, or "".
// Declarator-style grammars (c) nest the same field repeatedly down to the
// identifier, so the lookup follows the chain to its innermost node.
func (e *Extractor) fieldText(node *sitter.Node, field string, source []byte) string {
	if node == nil || field == "" {
		return ""
	}
	child := node.ChildByFieldName(field)
	for child != nil {
		next := child.ChildByFieldName(field)
		if next == nil {
			break
		}
		child = next
	}
	return nodeText(child, source)
}

// parentClassName resolves the nearest enclosing class-type ancestor's name.
// Empty means top-level.
func (e *Extractor) parentClassName(node *sitter.Node, source []byte) string {
	for p := node.Parent(); p != nil; p = p.Parent() {
		if e.cfg.isClassType(p.Kind()) {
			name := e.fieldText(p, e.cfg.ClassNameField, source)
			if name == "" {
				name = "anonymous"
			}
			return name
		}
	}
	return ""
}

// decorators resolves decorator/annotation text per the language's placement
// convention.
func (e *Extractor) decorators(node *sitter.Node, source []byte) []string {
	if e.cfg.DecoratorStyle == DecoratorNone || len(e.cfg.DecoratorTypes) == 0 {
		return nil
	}

	var texts []string
	switch e.cfg.DecoratorStyle {
	case DecoratorWrapper:
		wrapperKind := e.cfg.DecoratorTypes[0]
		decoKinds := e.cfg.DecoratorTypes[1:]
		parent := node.Parent()
		if parent == nil || parent.Kind() != wrapperKind {
			return nil
		}
		for i := uint(0); i < parent.ChildCount(); i++ {
			child := parent.Child(i)
			if child != nil && kindIn(child.Kind(), decoKinds) {
				texts = append(texts, nodeText(child, source))
			}
		}

	case DecoratorSibling:
		// Collect the unbroken run of decorator siblings directly above the
		// declaration, then restore source order.
		for sib := node.PrevNamedSibling(); sib != nil; sib = sib.PrevNamedSibling() {
			if !kindIn(sib.Kind(), e.cfg.DecoratorTypes) {
				break
			}
			texts = append(texts, nodeText(sib, source))
		}
		reverse(texts)

	case DecoratorEmbedded:
		// Annotations live inside the declaration subtree, ahead of the body
		// (java keeps them inside the modifiers node, csharp as attribute
		// lists, typescript as leading decorator children).
		bodyStart := node.EndByte()
		if body := node.ChildByFieldName("body"); body != nil {
			bodyStart = body.StartByte()
		}
		for _, deco := range FindNodes(node, e.cfg.DecoratorTypes) {
			if deco.StartByte() < bodyStart {
				texts = append(texts, nodeText(deco, source))
			}
		}
	}
	return texts
}

// collectModifiers gathers the text of every descendant modifier-kind node,
// split into individual keywords, first occurrence wins.
func collectModifiers(node *sitter.Node, source []byte) []string {
	nodes := findNodesFunc(node, func(kind string) bool {
		return strings.Contains(kind, "modifier")
	})

	var modifiers []string
	seen := map[string]bool{}
	for _, n := range nodes {
		for _, word := range strings.Fields(nodeText(n, source)) {
			if !seen[word] {
				seen[word] = true
				modifiers = append(modifiers, word)
			}
		}
	}
	return modifiers
}

// accessControl picks the declared visibility keyword, defaulting when the
// language or declaration has none.
func accessControl(modifiers []string) string {
	for _, m := range modifiers {
		switch m {
		case "public", "private", "protected", "internal":
			return m
		}
	}
	return "default"
}

func isOverride(modifiers, decorators []string) bool {
	for _, m := range modifiers {
		if m == "override" {
			return true
		}
	}
	for _, d := range decorators {
		// Matches both @Override style annotations and overrides() markers.
		if strings.Contains(strings.ToLower(d), "override") {
			return true
		}
	}
	return false
}

func hasModifier(modifiers []string, want string) bool {
	for _, m := range modifiers {
		if m == want {
			return true
		}
	}
	return false
}

// normalizeType strips the annotation punctuation some grammars keep inside
// the type field (typescript's ": number", python's "-> int").
func normalizeType(t string) string {
	t = strings.TrimSpace(t)
	t = strings.TrimPrefix(t, ":")
	t = strings.TrimPrefix(t, "->")
	return strings.TrimSpace(t)
}

func kindIn(kind string, kinds []string) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// findChildByKind returns the first direct child with the given kind.
func findChildByKind(node *sitter.Node, kind string) *sitter.Node {
	if node == nil {
		return nil
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		if child := node.Child(i); child != nil && child.Kind() == kind {
			return child
		}
	}
	return nil
}

// childrenByKind returns all direct children with the given kind, in order.
func childrenByKind(node *sitter.Node, kind string) []*sitter.Node {
	var children []*sitter.Node
	if node == nil {
		return children
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		if child := node.Child(i); child != nil && child.Kind() == kind {
			children = append(children, child)
		}
	}
	return children
}
