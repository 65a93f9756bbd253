package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khulnasoft-bot/code-translator/core"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestLanguagesCommand(t *testing.T) {
	out, err := execute(t, "", "languages")
	require.NoError(t, err)
	for _, id := range []string{"python", "javascript", "go", "ruby", "php"} {
		assert.Contains(t, out, id)
	}
}

func TestDetectCommand(t *testing.T) {
	out, err := execute(t, "def f():\n    print(1)\n", "detect")
	require.NoError(t, err)
	assert.Contains(t, out, "language: python")
}

func TestTranslateCommandStdin(t *testing.T) {
	out, err := execute(t, "def greet(name):\n    print(name)\n",
		"translate", "--from", "python", "--to", "javascript", "--no-history")
	require.NoError(t, err)
	assert.Contains(t, out, "function greet(name) {")
	assert.Contains(t, out, "console.log(name);")
}

func TestTranslateCommandJSON(t *testing.T) {
	out, err := execute(t, "print(1)\n",
		"translate", "-f", "python", "-t", "go", "--json", "--no-history")
	require.NoError(t, err)

	var result core.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "python", result.Source)
	assert.Equal(t, "go", result.Target)
	assert.Contains(t, result.Code, "fmt.Println(1)")
}

func TestTranslateCommandRequiresTarget(t *testing.T) {
	_, err := execute(t, "print(1)\n", "translate", "--no-history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--to is required")
}

func TestSummaryCommand(t *testing.T) {
	out, err := execute(t, "def greet(name):\n    print(name)\n",
		"summary", "-l", "python")
	require.NoError(t, err)
	assert.Contains(t, out, "function greet")
}

func TestDetectCommandJavascript(t *testing.T) {
	out, err := execute(t, "console.log(1);\n", "detect")
	require.NoError(t, err)
	assert.Contains(t, out, "language: javascript")
}
