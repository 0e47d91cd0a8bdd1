package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan:
// - one record per class/method node, in pre-order
// - name fallback, return type default, zero-parameter text
// - nearest enclosing class wins for nested declarations
// - top-level filtering is a subset of the full method list
// - repeated extraction of the same tree is identical

const calculatorJava = `public class Calculator {
    // Adds two operands.
    // Operands are not validated.
    // Overflow wraps silently.
    // Returns the sum.
    public int add(int a, int b) {
        return a + b;
    }

    private static int clamp(int v) {
        return v;
    }
}
`

func TestExtractClasses_Java(t *testing.T) {
	t.Parallel()

	ex, root, src := parseSource(t, "java", calculatorJava)

	classes := ex.ExtractClasses(root, src)
	require.Len(t, classes, 1)

	cls := classes[0]
	assert.Equal(t, "Calculator", cls.Name)
	assert.Equal(t, 2, cls.MethodCount)
	assert.Equal(t, 0, cls.FieldCount)
	assert.Contains(t, cls.Modifiers, "public")
	assert.Equal(t, 1, cls.Location.StartLine)
	assert.Equal(t, 2, cls.Metrics.MethodCount)
}

func TestExtractMethods_CalculatorAdd(t *testing.T) {
	t.Parallel()

	ex, root, src := parseSource(t, "java", calculatorJava)

	methods := ex.ExtractMethods(root, src, true)
	require.Len(t, methods, 2)

	add := methods[0]
	assert.Equal(t, "add", add.Name)
	assert.Equal(t, "int", add.ReturnType)
	assert.Equal(t, "(int a, int b)", add.ParamsText)
	assert.Equal(t, "int add(int a, int b)", add.Signature)
	assert.Equal(t, "Calculator", add.ParentClass)
	assert.Equal(t, "public", add.AccessControl)
	assert.False(t, add.IsStatic)

	require.Len(t, add.Parameters, 2)
	assert.Equal(t, ParameterRecord{Name: "a", Type: "int"}, add.Parameters[0])
	assert.Equal(t, ParameterRecord{Name: "b", Type: "int"}, add.Parameters[1])

	require.True(t, add.Documentation.HasDoc)
	assert.Contains(t, add.Documentation.Docstring, "Adds two operands.")
	assert.Contains(t, add.Documentation.Docstring, "Returns the sum.")

	clamp := methods[1]
	assert.Equal(t, "clamp", clamp.Name)
	assert.Equal(t, "private", clamp.AccessControl)
	assert.True(t, clamp.IsStatic)
	assert.False(t, clamp.Documentation.HasDoc)
}

func TestExtractMethods_ReturnTypeDefault(t *testing.T) {
	t.Parallel()

	ex, root, src := parseSource(t, "python", "def greet():\n    pass\n")

	methods := ex.ExtractMethods(root, src, true)
	require.Len(t, methods, 1)
	assert.Equal(t, "greet", methods[0].Name)
	assert.Equal(t, "void", methods[0].ReturnType)
	assert.Equal(t, "()", methods[0].ParamsText)
	assert.Empty(t, methods[0].Parameters)
	assert.Equal(t, "", methods[0].ParentClass)
}

func TestExtractMethods_AsyncDetection(t *testing.T) {
	t.Parallel()

	ex, root, src := parseSource(t, "python", "async def fetch(url):\n    return url\n")

	methods := ex.ExtractMethods(root, src, true)
	require.Len(t, methods, 1)
	assert.True(t, methods[0].IsAsync)
}

func TestParentClass_NearestAncestorWins(t *testing.T) {
	t.Parallel()

	src := `class Outer:
    class Inner:
        def method(self):
            pass
`
	ex, root, source := parseSource(t, "python", src)

	methods := ex.ExtractMethods(root, source, true)
	require.Len(t, methods, 1)
	assert.Equal(t, "Inner", methods[0].ParentClass)

	classes := ex.ExtractClasses(root, source)
	require.Len(t, classes, 2)
	assert.Equal(t, "Outer", classes[0].Name)
	assert.Equal(t, "Inner", classes[1].Name)
	// Outer's counts include the nested class body.
	assert.Equal(t, 1, classes[0].MethodCount)
}

func TestExtractMethods_TopLevelOnly(t *testing.T) {
	t.Parallel()

	src := `def standalone():
    pass

class Service:
    def handle(self):
        pass
`
	ex, root, source := parseSource(t, "python", src)

	all := ex.ExtractMethods(root, source, true)
	require.Len(t, all, 2)

	topLevel := ex.ExtractMethods(root, source, false)
	require.Len(t, topLevel, 1)
	assert.Equal(t, "standalone", topLevel[0].Name)

	// Every top-level record also appears in the full list, unchanged.
	assert.Equal(t, all[0], topLevel[0])
}

func TestExtractAll_Deterministic(t *testing.T) {
	t.Parallel()

	ex, root, src := parseSource(t, "java", calculatorJava)

	first := ex.ExtractAll(root, src)
	second := ex.ExtractAll(root, src)
	assert.Equal(t, first, second)
}

func TestExtractSource_StampsPath(t *testing.T) {
	t.Parallel()

	ex, err := New("python")
	require.NoError(t, err)

	fx, err := ex.ExtractSource("pkg/app.py", []byte("class App:\n    def run(self):\n        pass\n"))
	require.NoError(t, err)

	assert.Equal(t, "pkg/app.py", fx.Path)
	require.Len(t, fx.Classes, 1)
	require.Len(t, fx.Methods, 1)
	assert.Equal(t, "pkg/app.py", fx.Classes[0].Location.File)
	assert.Equal(t, "pkg/app.py", fx.Methods[0].Location.File)
}

func TestNew_UnsupportedLanguage(t *testing.T) {
	t.Parallel()

	_, err := New("cobol")
	require.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestExtractMethods_CDeclaratorChain(t *testing.T) {
	t.Parallel()

	src := `int main(int argc) {
    return 0;
}
`
	ex, root, source := parseSource(t, "c", src)

	methods := ex.ExtractMethods(root, source, true)
	require.Len(t, methods, 1)

	m := methods[0]
	assert.Equal(t, "main", m.Name, "name resolves through the declarator chain")
	assert.Equal(t, "int", m.ReturnType)
	assert.Equal(t, "(int argc)", m.ParamsText, "parameter list sits on the nested declarator")
	assert.Equal(t, "int main(int argc)", m.Signature)
	require.Len(t, m.Parameters, 1)
	assert.Equal(t, "argc", m.Parameters[0].Name)
	assert.Equal(t, "int", m.Parameters[0].Type)
}

func TestLocation_OneBasedLines(t *testing.T) {
	t.Parallel()

	ex, root, src := parseSource(t, "python", "\n\ndef late():\n    pass\n")

	methods := ex.ExtractMethods(root, src, true)
	require.Len(t, methods, 1)
	assert.Equal(t, 3, methods[0].Location.StartLine)
	assert.Equal(t, 4, methods[0].Location.EndLine)
	assert.Equal(t, 1, methods[0].Location.StartCol)
}
