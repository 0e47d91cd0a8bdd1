package extract

import sitter "github.com/tree-sitter/go-tree-sitter"

// Location is the 1-based source span of an extracted entity. It is derived
// once from the node and never refers back to the tree.
type Location struct {
	File      string `json:"file,omitempty"`
	StartLine int    `json:"start_line"`
	StartCol  int    `json:"start_col"`
	EndLine   int    `json:"end_line"`
	EndCol    int    `json:"end_col"`
}

// locationOf converts a node's 0-based span to a Location.
func locationOf(node *sitter.Node) Location {
	start := node.StartPosition()
	end := node.EndPosition()
	return Location{
		StartLine: int(start.Row) + 1,
		StartCol:  int(start.Column) + 1,
		EndLine:   int(end.Row) + 1,
		EndCol:    int(end.Column) + 1,
	}
}

// Documentation is the resolved comment or docstring text for an entity.
type Documentation struct {
	Docstring string `json:"docstring,omitempty"`
	HasDoc    bool   `json:"has_doc"`
}

// ParameterRecord is one declared parameter, in declaration order.
type ParameterRecord struct {
	Name    string `json:"name"`
	Type    string `json:"type,omitempty"`
	Default string `json:"default,omitempty"`
}

// MethodMetrics holds size and branching facts about a method body.
type MethodMetrics struct {
	LineCount            int `json:"line_count"`
	StatementCount       int `json:"statement_count"`
	BranchCount          int `json:"branch_count"`
	LoopCount            int `json:"loop_count"`
	CyclomaticComplexity int `json:"cyclomatic_complexity"`
	ReturnCount          int `json:"return_count"`
	NestingDepth         int `json:"nesting_depth"`
}

// ClassMetrics holds size facts about a class body.
type ClassMetrics struct {
	LineCount    int `json:"line_count"`
	CommentLines int `json:"comment_lines"`
	MethodCount  int `json:"method_count"`
	FieldCount   int `json:"field_count"`
}

// FileMetrics holds whole-file counts.
type FileMetrics struct {
	LineCount     int `json:"line_count"`
	CommentLines  int `json:"comment_lines"`
	ClassCount    int `json:"class_count"`
	FunctionCount int `json:"function_count"`
}

// ClassRecord is one class-like declaration (class, interface, enum, struct,
// trait - whatever the language config maps to the class role).
type ClassRecord struct {
	Name          string        `json:"name"`
	Modifiers     []string      `json:"modifiers,omitempty"`
	MethodCount   int           `json:"method_count"`
	FieldCount    int           `json:"field_count"`
	Location      Location      `json:"location"`
	Documentation Documentation `json:"documentation"`
	Metrics       ClassMetrics  `json:"metrics"`
}

// MethodRecord is one method or top-level function. ParentClass is empty for
// top-level functions and names the nearest enclosing class otherwise.
type MethodRecord struct {
	Name          string            `json:"name"`
	Parameters    []ParameterRecord `json:"parameters"`
	ParamsText    string            `json:"params_text"`
	ReturnType    string            `json:"return_type"`
	Modifiers     []string          `json:"modifiers,omitempty"`
	AccessControl string            `json:"access_control"`
	IsStatic      bool              `json:"is_static"`
	IsAsync       bool              `json:"is_async"`
	IsOverride    bool              `json:"is_override"`
	Decorators    []string          `json:"decorators,omitempty"`
	ParentClass   string            `json:"parent_class,omitempty"`
	Signature     string            `json:"signature"`
	Location      Location          `json:"location"`
	Documentation Documentation     `json:"documentation"`
	Metrics       MethodMetrics     `json:"metrics"`
}

// FieldRecord is one declared field or property. Index is 1-based within the
// declaration statement that produced it, so a multi-declarator statement
// yields records with indices 1..N.
type FieldRecord struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Modifiers   []string `json:"modifiers,omitempty"`
	ParentClass string   `json:"parent_class,omitempty"`
	IsProperty  bool     `json:"is_property,omitempty"`
	Index       int      `json:"index"`
	Location    Location `json:"location"`
}

// FileExtraction is the normalized record set produced by one ExtractAll call.
type FileExtraction struct {
	Language string         `json:"language"`
	Path     string         `json:"path,omitempty"`
	Classes  []ClassRecord  `json:"classes"`
	Methods  []MethodRecord `json:"methods"`
	Fields   []FieldRecord  `json:"fields"`
	Metrics  FileMetrics    `json:"metrics"`
}
