package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khulnasoft-bot/code-translator/core"
)

func TestBuildSummaryPython(t *testing.T) {
	code := "import os\n" +
		"\n" +
		"class Animal:\n" +
		"    def speak(self):\n" +
		"        print(\"hi\")\n" +
		"x = 1"
	nodes := BuildSummary(code, lang(t, "python"))
	require.Len(t, nodes, 3)

	assert.Equal(t, core.NodeImport, nodes[0].Type)
	assert.Equal(t, 1, nodes[0].StartLine)

	class := nodes[1]
	assert.Equal(t, core.NodeClass, class.Type)
	assert.Equal(t, "Animal", class.Name)
	assert.Equal(t, 3, class.StartLine)
	assert.Equal(t, 5, class.EndLine)
	require.Len(t, class.Children, 1)

	fn := class.Children[0]
	assert.Equal(t, core.NodeFunction, fn.Type)
	assert.Equal(t, "speak", fn.Name)
	assert.Equal(t, 4, fn.StartLine)
	assert.Equal(t, 5, fn.EndLine)
	require.Len(t, fn.Children, 1)
	assert.Equal(t, core.NodeStatement, fn.Children[0].Type)

	assert.Equal(t, core.NodeVariable, nodes[2].Type)
	assert.Equal(t, "x", nodes[2].Name)
	assert.Equal(t, 6, nodes[2].StartLine)
}

func TestBuildSummaryGo(t *testing.T) {
	code := "package main\n" +
		"\n" +
		"func main() {\n" +
		"\tfmt.Println(1)\n" +
		"}"
	nodes := BuildSummary(code, lang(t, "go"))
	require.Len(t, nodes, 2)

	assert.Equal(t, core.NodeImport, nodes[0].Type)

	fn := nodes[1]
	assert.Equal(t, core.NodeFunction, fn.Type)
	assert.Equal(t, "main", fn.Name)
	assert.Equal(t, 3, fn.StartLine)
	assert.Equal(t, 5, fn.EndLine)
}

func TestBuildSummaryClassifiesConstructs(t *testing.T) {
	tests := []struct {
		line string
		want core.NodeType
	}{
		{"for i in range(10):", core.NodeLoop},
		{"while (x > 0) {", core.NodeLoop},
		{"if x > 5:", core.NodeConditional},
		{"} else {", core.NodeConditional},
		{"elif x < 0:", core.NodeConditional},
		{"from math import sqrt", core.NodeImport},
		{"let x = 5;", core.NodeVariable},
		{"$price = 10;", core.NodeVariable},
		{"x := 5", core.NodeVariable},
		{"return x", core.NodeStatement},
		{"# a note", core.NodeComment},
	}
	py := lang(t, "python")
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			nodes := BuildSummary(tt.line, py)
			require.Len(t, nodes, 1)
			assert.Equal(t, tt.want, nodes[0].Type)
		})
	}
}

func TestBuildSummaryIncludeIsImportForC(t *testing.T) {
	// "#" opens a comment in python but not in c; the classifier is
	// profile-aware.
	nodes := BuildSummary("#include <stdio.h>", lang(t, "c"))
	require.Len(t, nodes, 1)
	assert.Equal(t, core.NodeImport, nodes[0].Type)
}

func TestBuildSummarySkipsDelimiters(t *testing.T) {
	code := "def f()\n" + // ruby-style header
		"  puts 1\n" +
		"end"
	nodes := BuildSummary(code, lang(t, "ruby"))
	require.Len(t, nodes, 1)
	assert.Equal(t, core.NodeFunction, nodes[0].Type)

	nodes = BuildSummary("if (x) {\nconsole.log(x);\n}", lang(t, "javascript"))
	require.Len(t, nodes, 1)
	assert.Equal(t, core.NodeConditional, nodes[0].Type)
	require.Len(t, nodes[0].Children, 1)
}

func TestBuildSummaryNestsFlatBraceCode(t *testing.T) {
	// Brace blocks nest even when the text carries no indentation; the
	// pending opener count stands in for it.
	nodes := BuildSummary("function f() {\nif (x) {\nreturn 1;\n}\n}", lang(t, "javascript"))
	require.Len(t, nodes, 1)

	fn := nodes[0]
	assert.Equal(t, core.NodeFunction, fn.Type)
	require.Len(t, fn.Children, 1)

	cond := fn.Children[0]
	assert.Equal(t, core.NodeConditional, cond.Type)
	require.Len(t, cond.Children, 1)
	assert.Equal(t, core.NodeStatement, cond.Children[0].Type)
}

func TestBuildSummaryEmpty(t *testing.T) {
	assert.Empty(t, BuildSummary("", lang(t, "python")))
	assert.Empty(t, BuildSummary("\n\n", lang(t, "python")))
}
