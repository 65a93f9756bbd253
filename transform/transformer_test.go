package transform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khulnasoft-bot/code-translator/core"
)

func TestTransformPythonToJavascript(t *testing.T) {
	tr := New()

	result := tr.Transform("def greet(name):\n    print(name)", "python", "javascript")
	require.NotNil(t, result)
	assert.Equal(t, "function greet(name) {\n  console.log(name);\n}", result.Code)
	assert.Equal(t, "python", result.Source)
	assert.Equal(t, "javascript", result.Target)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 1, result.Stats.Functions)
	assert.Equal(t, 2, result.Stats.LinesTransformed)
	assert.False(t, result.Stats.MixedLanguage)

	require.Len(t, result.Lines, 2)
	assert.Equal(t, "def greet(name):", result.Lines[0].Original)
	assert.Equal(t, "function greet(name) {", result.Lines[0].Transformed)
	assert.Equal(t, core.ChangeModified, result.Lines[0].Kind)
}

func TestTransformConditionalChain(t *testing.T) {
	tr := New()

	in := "if x > 5:\n    print(\"big\")\nelse:\n    print(\"small\")"
	result := tr.Transform(in, "python", "javascript")
	want := "if (x > 5) {\n" +
		"  console.log(\"big\");\n" +
		"} else {\n" +
		"  console.log(\"small\");\n" +
		"}"
	assert.Equal(t, want, result.Code)
}

func TestTransformClassToStructTarget(t *testing.T) {
	tr := New()

	in := "class Animal:\n    def speak(self):\n        print(\"generic\")"
	result := tr.Transform(in, "python", "go")

	assert.True(t, strings.HasPrefix(result.Code, "package main\n\n"), "got %q", result.Code)
	assert.Contains(t, result.Code, "type Animal struct {")
	assert.Contains(t, result.Code, "fmt.Println(\"generic\")")

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "no classes") && strings.Contains(w, "Animal") {
			found = true
		}
	}
	assert.True(t, found, "expected a struct-substitution warning, got %v", result.Warnings)
	assert.Equal(t, 1, result.Stats.Classes)
}

func TestTransformHybridInput(t *testing.T) {
	tr := New()

	in := "def f(x)\n    if x > 0 {\n        return x\n    }"
	result := tr.Transform(in, "python", "javascript")

	assert.Equal(t, "function f(x) {\n  if (x > 0) {\n    return x;\n  }\n}", result.Code)
	assert.True(t, result.Stats.MixedLanguage)
	assert.True(t, result.Stats.Normalized)

	mixed, colon := false, false
	for _, w := range result.Warnings {
		if strings.Contains(w, "mixed-language") {
			mixed = true
		}
		if strings.Contains(w, "missing ':'") {
			colon = true
		}
	}
	assert.True(t, mixed, "expected mixed-language warning, got %v", result.Warnings)
	assert.True(t, colon, "expected colon-repair warning, got %v", result.Warnings)
}

func TestTransformPythonToRuby(t *testing.T) {
	tr := New()

	result := tr.Transform("def greet(name):\n    print(name)", "python", "ruby")
	assert.Equal(t, "def greet(name)\n    puts name\nend", result.Code)
	assert.Empty(t, result.Errors)
}

func TestTransformJavascriptToRuby(t *testing.T) {
	tr := New()

	in := "function f(x) {\n  if (x > 0) {\n    return x;\n  }\n}"
	result := tr.Transform(in, "javascript", "ruby")
	assert.Equal(t, "def f(x)\n  if x > 0\n    return x\n  end\nend", result.Code)
}

func TestTransformSteppedLoopToPHP(t *testing.T) {
	tr := New()

	result := tr.Transform("for i in range(0, 10, 2):\n    print(i)", "python", "php")
	assert.Contains(t, result.Code, "for ($i = 0; $i < 10; $i += 2) {")
	assert.NotContains(t, result.Code, "$i++")
}

func TestTransformNeverDoublesTerminators(t *testing.T) {
	tr := New()

	result := tr.Transform(`console.log("hi");`, "javascript", "java")
	assert.Equal(t, `System.out.println("hi");`, result.Code)
	assert.NotContains(t, result.Code, ";;")
}

func TestTransformIdentityPair(t *testing.T) {
	tr := New()

	code := "def f():\n    pass"
	for _, lang := range tr.Registry().All() {
		result := tr.Transform(code, lang.ID, lang.ID)
		assert.Equal(t, code, result.Code, "identity for %s", lang.ID)
		assert.Empty(t, result.Errors)
		assert.Zero(t, result.Stats.LinesTransformed)
		for _, line := range result.Lines {
			assert.Equal(t, core.ChangeUnchanged, line.Kind)
		}
	}

	// Alias resolving to the same language is still an identity pair.
	result := tr.Transform(code, "py", "python")
	assert.Equal(t, code, result.Code)
}

func TestTransformUnknownSourceFallsBack(t *testing.T) {
	tr := New()

	result := tr.Transform("print(1)", "klingon", "javascript")
	assert.Equal(t, "console.log(1);", result.Code)
	assert.Empty(t, result.Errors)

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, `unknown source language "klingon"`) {
			found = true
		}
	}
	assert.True(t, found, "expected fallback warning, got %v", result.Warnings)
}

func TestTransformUnknownTargetPair(t *testing.T) {
	tr := New()

	result := tr.Transform("print(1)", "python", "klingon")
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "python -> klingon")
	assert.True(t, strings.HasPrefix(result.Code,
		"# unsupported translation pair: python -> klingon\n"), "got %q", result.Code)
	assert.Contains(t, result.Code, "print(1)")
}

func TestTransformUnknownBothSidesSameName(t *testing.T) {
	tr := New()

	result := tr.Transform("whatever", "klingon", "KLINGON")
	assert.Equal(t, "whatever", result.Code)
	assert.Empty(t, result.Errors)

	// The caller's identifiers are echoed, not relabeled to the default.
	assert.Equal(t, "klingon", result.Source)
	assert.Equal(t, "KLINGON", result.Target)
}

func TestTransformUnknownPairKeepsSourceWarning(t *testing.T) {
	tr := New()

	result := tr.Transform("print(1)", "klingon", "vulcan")
	require.NotEmpty(t, result.Errors)

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, `unknown source language "klingon"`) {
			found = true
		}
	}
	assert.True(t, found, "expected the source fallback warning to survive, got %v", result.Warnings)
}

func TestTransformImportStats(t *testing.T) {
	tr := New()

	result := tr.Transform("import os\nimport sys\nx = 1", "python", "go")
	assert.Equal(t, 2, result.Stats.Imports)
	assert.Contains(t, result.Code, `import "os"`)
	assert.Contains(t, result.Code, `import "sys"`)
}

func TestTransformDeduplicatesWarnings(t *testing.T) {
	tr := New()

	// The same advisory must not appear once per offending line.
	result := tr.Transform("class A:\n    pass\nclass A:\n    pass", "python", "go")
	seen := map[string]int{}
	for _, w := range result.Warnings {
		seen[w]++
		assert.Equal(t, 1, seen[w], "duplicated warning %q", w)
	}
}

func TestTransformBuildsSummary(t *testing.T) {
	tr := New()

	result := tr.Transform("def greet(name):\n    print(name)", "python", "javascript")
	require.NotEmpty(t, result.Summary)
	assert.Equal(t, core.NodeFunction, result.Summary[0].Type)
	assert.Equal(t, "greet", result.Summary[0].Name)
}

func TestTransformNeverPanics(t *testing.T) {
	tr := New()

	inputs := []string{
		"",
		"\n\n\n",
		"}}}}{{{{",
		"def def def (((",
		"完全に無効な入力 \x00 \xff",
		strings.Repeat("if x:\n", 50),
	}
	langs := tr.Registry().All()
	for _, in := range inputs {
		for _, src := range langs {
			for _, dst := range langs {
				result := tr.Transform(in, src.ID, dst.ID)
				require.NotNil(t, result, "%s -> %s on %q", src.ID, dst.ID, in)
			}
		}
	}
}

func TestTransformStableWhenRepeated(t *testing.T) {
	tr := New()

	in := "def greet(name):\n    print(name)"
	first := tr.Transform(in, "python", "javascript")
	second := tr.Transform(first.Code, "javascript", "javascript")
	assert.Equal(t, first.Code, second.Code)
}
