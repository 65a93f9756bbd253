package transform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khulnasoft-bot/code-translator/languages"
)

func lang(t *testing.T, id string) *languages.Language {
	t.Helper()
	l, ok := languages.NewRegistry().Lookup(id)
	require.True(t, ok, "language %q", id)
	return l
}

func TestPostProcessAppendsMissingClosers(t *testing.T) {
	out := PostProcess("function f() {\nconsole.log(x);", lang(t, "javascript"))
	assert.Equal(t, "function f() {\n  console.log(x);\n}", out)
}

func TestPostProcessDropsExcessClosers(t *testing.T) {
	out := PostProcess("console.log(x);\n}\n}", lang(t, "javascript"))
	assert.Equal(t, "console.log(x);", out)
}

func TestPostProcessBalancedOutput(t *testing.T) {
	// Every brace target ends up with matching opener and closer counts.
	inputs := []string{
		"function f() {\nif (x) {\nreturn 1;",
		"}\nconsole.log(x);",
		"if (a) {\n} else {\nconsole.log(b);",
	}
	for _, id := range []string{"javascript", "java", "go", "php"} {
		dst := lang(t, id)
		for _, in := range inputs {
			out := PostProcess(in, dst)
			assert.Equal(t, strings.Count(out, "{"), strings.Count(out, "}"),
				"%s: unbalanced output %q", id, out)
		}
	}
}

func TestPostProcessRelevel(t *testing.T) {
	in := "function f() {\nif (x) {\nreturn 1;\n}\n}"
	out := PostProcess(in, lang(t, "javascript"))
	assert.Equal(t, "function f() {\n  if (x) {\n    return 1;\n  }\n}", out)

	// Tabs for go.
	out = PostProcess("func f() {\nfor x > 0 {\nx--\n}\n}", lang(t, "go"))
	assert.Equal(t, "package main\n\nfunc f() {\n\tfor x > 0 {\n\t\tx--\n\t}\n}", out)
}

func TestPostProcessStripBracesForIndentTargets(t *testing.T) {
	in := "def f(x):\n    if x > 0:\n        return x\n    }\n}"
	out := PostProcess(in, lang(t, "python"))
	assert.Equal(t, "def f(x):\n    if x > 0:\n        return x", out)

	// A trailing opener left behind by a partial rewrite is removed too.
	out = PostProcess("while x > 0 {", lang(t, "python"))
	assert.Equal(t, "while x > 0", out)
}

func TestPostProcessKeywordClosers(t *testing.T) {
	rb := lang(t, "ruby")

	// Colon-source shape: blocks close on dedent.
	out := PostProcess("def greet(name)\n    puts name", rb)
	assert.Equal(t, "def greet(name)\n    puts name\nend", out)

	// Brace-source shape: closer-only lines become end, at their own depth.
	out = PostProcess("def f(x)\n  if x > 0\n    return x\n  }\n}", rb)
	assert.Equal(t, "def f(x)\n  if x > 0\n    return x\n  end\nend", out)

	// Unindented brace source still closes at the markers, not on dedent.
	out = PostProcess("def f(x)\nputs x\n}", rb)
	assert.Equal(t, "def f(x)\nputs x\nend", out)

	// else continues the block; one end closes the whole conditional.
	out = PostProcess("if x > 5\n  puts \"big\"\nelse\n  puts \"small\"", rb)
	assert.Equal(t, "if x > 5\n  puts \"big\"\nelse\n  puts \"small\"\nend", out)

	// do-blocks open like keyword headers.
	out = PostProcess("items.each do |item|\n  puts item", rb)
	assert.Equal(t, "items.each do |item|\n  puts item\nend", out)
}

func TestPostProcessStripsTerminatorsForGo(t *testing.T) {
	out := PostProcess("x := 5;\nfmt.Println(x);", lang(t, "go"))
	assert.Equal(t, "package main\n\nx := 5\nfmt.Println(x)", out)
}

func TestPostProcessTopLevelDecl(t *testing.T) {
	out := PostProcess("func main() {\nfmt.Println(1)\n}", lang(t, "go"))
	assert.True(t, strings.HasPrefix(out, "package main\n\n"), "got %q", out)

	// Present already: not duplicated.
	in := "package main\n\nfunc main() {\n}"
	out = PostProcess(in, lang(t, "go"))
	assert.Equal(t, 1, strings.Count(out, "package main"))
}

func TestPostProcessEmptyInput(t *testing.T) {
	assert.Equal(t, "", PostProcess("", lang(t, "python")))
}
