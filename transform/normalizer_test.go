package transform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khulnasoft-bot/code-translator/languages"
)

func newTestNormalizer() (*Normalizer, *languages.Registry) {
	registry := languages.NewRegistry()
	return NewNormalizer(registry, NewDetector(registry)), registry
}

func TestNormalizeCleanInputUntouched(t *testing.T) {
	n, r := newTestNormalizer()

	code := "def greet(name):\n    print(name)"
	res := n.Normalize(code, r.LookupOrDefault("python"))
	assert.Equal(t, code, res.Normalized)
	assert.False(t, res.Changed)
}

func TestNormalizeLineEndings(t *testing.T) {
	n, r := newTestNormalizer()

	res := n.Normalize("x = 1\r\ny = 2\r", r.LookupOrDefault("python"))
	assert.Equal(t, "x = 1\ny = 2\n", res.Normalized)
	assert.True(t, res.Changed)
}

func TestNormalizeMissingColon(t *testing.T) {
	n, r := newTestNormalizer()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"def header", "def f(x)", "def f(x):"},
		{"if header", "if x > 5", "if x > 5:"},
		{"while header", "while True", "while True:"},
		{"class header", "class Foo", "class Foo:"},
		{"already has colon", "if x > 5:", "if x > 5:"},
		{"brace already opens the block", "if x > 0 {", "if x > 0 {"},
		{"dangling else left alone", "else", "else"},
		{"plain statement untouched", "print(x)", "print(x)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := n.Normalize(tt.in, r.LookupOrDefault("python"))
			assert.Equal(t, tt.want, res.Normalized)
		})
	}
}

func TestNormalizeHybridInput(t *testing.T) {
	n, r := newTestNormalizer()

	// The colon is added to the def header; the brace-delimited if line is
	// left exactly as written.
	code := "def f(x)\n    if x > 0 {\n        return x\n    }"
	res := n.Normalize(code, r.LookupOrDefault("python"))
	assert.Equal(t, "def f(x):\n    if x > 0 {\n        return x\n    }", res.Normalized)
	assert.True(t, res.Changed)

	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "mixed-language") {
			found = true
		}
	}
	assert.True(t, found, "expected a mixed-language advisory, got %v", res.Warnings)
}

func TestNormalizeMissingBrace(t *testing.T) {
	n, r := newTestNormalizer()

	js := r.LookupOrDefault("javascript")

	res := n.Normalize("if (x > 5)\n  console.log(x);", js)
	assert.Equal(t, "if (x > 5) {\n  console.log(x);", res.Normalized)

	// Opening brace on the following line counts as already delimited.
	res = n.Normalize("if (x > 5)\n{\n  console.log(x);\n}", js)
	assert.Equal(t, "if (x > 5)\n{\n  console.log(x);\n}", res.Normalized)
}

func TestNormalizeElseIfSpelling(t *testing.T) {
	n, r := newTestNormalizer()

	res := n.Normalize("else if x > 5:", r.LookupOrDefault("python"))
	assert.Equal(t, "elif x > 5:", res.Normalized)

	res = n.Normalize("} elif (x > 5) {", r.LookupOrDefault("javascript"))
	assert.Equal(t, "} else if (x > 5) {", res.Normalized)
}

func TestNormalizeQuotesAndTerminators(t *testing.T) {
	n, r := newTestNormalizer()

	js := r.LookupOrDefault("javascript")

	res := n.Normalize("let x = 'hello';;;", js)
	assert.Equal(t, `let x = "hello";`, res.Normalized)

	// Escaped quotes survive.
	res = n.Normalize(`let y = "it\'s";`, js)
	assert.Equal(t, `let y = "it\'s";`, res.Normalized)

	// Comment lines are never rewritten.
	res = n.Normalize("// don't touch", js)
	assert.Equal(t, "// don't touch", res.Normalized)
}

func TestNormalizeOperatorSpelling(t *testing.T) {
	n, r := newTestNormalizer()

	res := n.Normalize("if x && y:", r.LookupOrDefault("python"))
	assert.Equal(t, "if x and y:", res.Normalized)

	res = n.Normalize("if (a and b) {", r.LookupOrDefault("javascript"))
	assert.Equal(t, "if (a && b) {", res.Normalized)
}

func TestNormalizeIdempotent(t *testing.T) {
	n, r := newTestNormalizer()

	inputs := []string{
		"def f(x)\n    if x > 0 {\n        return x\n    }",
		"def greet(name):\n    print(name)",
		"if x && y\nprint('ok');;",
		"",
		"random text that is not code",
	}
	py := r.LookupOrDefault("python")
	for _, in := range inputs {
		once := n.Normalize(in, py).Normalized
		twice := n.Normalize(once, py).Normalized
		require.Equal(t, once, twice, "normalization must be idempotent for %q", in)
	}
}
