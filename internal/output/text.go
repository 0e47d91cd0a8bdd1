package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/codeatlas-io/codeatlas/internal/extract"
)

// WriteText renders the document as human/LLM-readable text, one section per
// file with line-range annotations.
func WriteText(w io.Writer, doc *Document) error {
	var sb strings.Builder

	for i, file := range doc.Files {
		if i > 0 {
			sb.WriteString("\n")
		}
		formatFile(&sb, file)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func formatFile(sb *strings.Builder, file FileReport) {
	fmt.Fprintf(sb, "File: %s", file.Path)
	if file.Language != "" {
		fmt.Fprintf(sb, " (%s)", file.Language)
	}
	sb.WriteString("\n")

	if file.Error != "" {
		fmt.Fprintf(sb, "  error: %s\n", file.Error)
		return
	}
	fx := file.Extraction
	if fx == nil {
		return
	}

	fmt.Fprintf(sb, "  %d lines, %d comment lines, %d classes, %d top-level functions\n",
		fx.Metrics.LineCount, fx.Metrics.CommentLines, fx.Metrics.ClassCount, fx.Metrics.FunctionCount)

	if len(fx.Classes) > 0 {
		sb.WriteString("\nClasses:\n")
		for _, class := range fx.Classes {
			fmt.Fprintf(sb, "  - %s %s\n", class.Name, formatLineRange(class.Location))
			fmt.Fprintf(sb, "    %d methods, %d fields, %d comment lines\n",
				class.MethodCount, class.FieldCount, class.Metrics.CommentLines)
			if class.Documentation.HasDoc {
				fmt.Fprintf(sb, "    doc: %s\n", firstLine(class.Documentation.Docstring))
			}
		}
	}

	if len(fx.Methods) > 0 {
		sb.WriteString("\nMethods:\n")
		for _, method := range fx.Methods {
			name := method.Name
			if method.ParentClass != "" {
				name = method.ParentClass + "." + name
			}
			fmt.Fprintf(sb, "  - %s %s\n", name, formatLineRange(method.Location))
			fmt.Fprintf(sb, "    %s\n", method.Signature)
			fmt.Fprintf(sb, "    complexity %d, nesting %d, %d statements\n",
				method.Metrics.CyclomaticComplexity, method.Metrics.NestingDepth, method.Metrics.StatementCount)
			if method.Documentation.HasDoc {
				fmt.Fprintf(sb, "    doc: %s\n", firstLine(method.Documentation.Docstring))
			}
		}
	}

	if len(fx.Fields) > 0 {
		sb.WriteString("\nFields:\n")
		for _, field := range fx.Fields {
			name := field.Name
			if field.ParentClass != "" {
				name = field.ParentClass + "." + name
			}
			kind := "field"
			if field.IsProperty {
				kind = "property"
			}
			fmt.Fprintf(sb, "  - %s: %s (%s) %s\n", name, field.Type, kind, formatLineRange(field.Location))
		}
	}
}

func formatLineRange(loc extract.Location) string {
	if loc.StartLine == loc.EndLine {
		return fmt.Sprintf("(line %d)", loc.StartLine)
	}
	return fmt.Sprintf("(lines %d-%d)", loc.StartLine, loc.EndLine)
}

func firstLine(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		return text[:idx]
	}
	return text
}
