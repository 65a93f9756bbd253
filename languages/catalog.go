// Package languages is the registry of supported languages: for each one a
// lexical fingerprint used by detection plus the output idiom metadata the
// rule engine and post-processor consume. Pure data, no behavior beyond
// lookup.
package languages

import (
	"regexp"
	"strings"
)

// Family groups languages that share surface syntax closely enough that one
// set of line recognizers covers them.
type Family string

const (
	FamilyPython Family = "python"
	FamilyJS     Family = "js"
	FamilyCLike  Family = "clike"
	FamilyGo     Family = "go"
	FamilyRuby   Family = "ruby"
	FamilyPHP    Family = "php"
)

// Fingerprint is one weighted indicator pattern diagnostic of a language.
type Fingerprint struct {
	Pattern *regexp.Regexp
	Weight  int
}

// Language bundles everything the pipeline needs to know about one
// supported language: detection fingerprints plus output idiom metadata.
type Language struct {
	ID         string
	Aliases    []string
	Extensions []string
	Family     Family

	Fingerprints []Fingerprint

	// Block and statement conventions.
	Braces      bool   // brace-delimited blocks; false means colon/keyword blocks
	Terminator  string // statement terminator, "" when the language uses none
	IndentUnit  string
	ColonBlock  bool   // block headers end with ":"
	BlockCloser string // keyword closing a block ("end" for ruby), "" otherwise

	// Comment prefixes recognized at the start of a trimmed line.
	CommentPrefixes []string
	// LineComment is the prefix used when the engine has to synthesize a
	// comment (e.g. the unsupported-pair banner).
	LineComment string

	// Idiom metadata consumed by the rule emitters.
	FuncKeyword   string // "def", "function", "func"; "" for C-style headers
	DeclKeyword   string // "let", "var", "auto"; "" for bare assignment
	VarSigil      string // "$" for php
	PrintFormat   string // fmt with one %s verb for the argument text
	TrueLit       string
	FalseLit      string
	NullLit       string
	ElseIfKeyword string // "elif", "else if", "elsif", "elseif"
	WordOperators bool   // and/or/not instead of &&/||/!
	HasClasses    bool
	TopLevelDecl  string // synthesized when absent, e.g. "package main"
}

func pat(weight int, expr string) Fingerprint {
	return Fingerprint{Pattern: regexp.MustCompile(expr), Weight: weight}
}

// builtin is the fixed, ordered set of supported languages. Order matters:
// it is the tie-break priority for detection.
var builtin = []*Language{
	{
		ID:         "python",
		Aliases:    []string{"py", "python3"},
		Extensions: []string{".py", ".pyw"},
		Family:     FamilyPython,
		Fingerprints: []Fingerprint{
			pat(3, `(?m)^\s*def\s+\w+\s*\(.*\)\s*:`),
			pat(2, `(?m)^\s*def\s+\w+\s*\(`),
			pat(3, `(?m)^\s*elif\b`),
			pat(2, `(?m)^\s*from\s+[\w.]+\s+import\b`),
			pat(2, `\bself\b`),
			pat(2, `\bNone\b`),
			pat(1, `(?m)^\s*(?:if|for|while|class)\b[^{;]*:\s*$`),
			pat(1, `\bprint\s*\(`),
		},
		IndentUnit:      "    ",
		ColonBlock:      true,
		CommentPrefixes: []string{"#"},
		LineComment:     "#",
		FuncKeyword:     "def",
		PrintFormat:     "print(%s)",
		TrueLit:         "True",
		FalseLit:        "False",
		NullLit:         "None",
		ElseIfKeyword:   "elif",
		WordOperators:   true,
		HasClasses:      true,
	},
	{
		ID:         "javascript",
		Aliases:    []string{"js", "node", "ecmascript"},
		Extensions: []string{".js", ".mjs", ".cjs", ".jsx"},
		Family:     FamilyJS,
		Fingerprints: []Fingerprint{
			pat(3, `\bfunction\s+\w+\s*\(`),
			pat(3, `console\.log\s*\(`),
			pat(2, `\b(?:let|const)\s+\w+\s*=`),
			pat(2, `===|!==`),
			pat(1, `=>`),
			pat(1, `(?m)\{\s*$`),
		},
		Braces:          true,
		Terminator:      ";",
		IndentUnit:      "  ",
		CommentPrefixes: []string{"//", "/*", "*"},
		LineComment:     "//",
		FuncKeyword:     "function",
		DeclKeyword:     "let",
		PrintFormat:     "console.log(%s)",
		TrueLit:         "true",
		FalseLit:        "false",
		NullLit:         "null",
		ElseIfKeyword:   "else if",
		HasClasses:      true,
	},
	{
		ID:         "typescript",
		Aliases:    []string{"ts"},
		Extensions: []string{".ts", ".tsx"},
		Family:     FamilyJS,
		Fingerprints: []Fingerprint{
			pat(3, `\binterface\s+\w+`),
			pat(3, `:\s*(?:string|number|boolean|void|any)\b`),
			pat(2, `\btype\s+\w+\s*=`),
			pat(1, `\benum\s+\w+`),
		},
		Braces:          true,
		Terminator:      ";",
		IndentUnit:      "  ",
		CommentPrefixes: []string{"//", "/*", "*"},
		LineComment:     "//",
		FuncKeyword:     "function",
		DeclKeyword:     "let",
		PrintFormat:     "console.log(%s)",
		TrueLit:         "true",
		FalseLit:        "false",
		NullLit:         "null",
		ElseIfKeyword:   "else if",
		HasClasses:      true,
	},
	{
		ID:         "java",
		Extensions: []string{".java"},
		Family:     FamilyCLike,
		Fingerprints: []Fingerprint{
			pat(3, `System\.out\.println\s*\(`),
			pat(3, `\bpublic\s+(?:static\s+)?\w+`),
			pat(2, `(?m)^\s*import\s+java\.`),
			pat(2, `\bpublic\s+class\s+\w+`),
			pat(1, `\bnew\s+\w+\s*\(`),
		},
		Braces:          true,
		Terminator:      ";",
		IndentUnit:      "    ",
		CommentPrefixes: []string{"//", "/*", "*"},
		LineComment:     "//",
		DeclKeyword:     "var",
		PrintFormat:     "System.out.println(%s)",
		TrueLit:         "true",
		FalseLit:        "false",
		NullLit:         "null",
		ElseIfKeyword:   "else if",
		HasClasses:      true,
	},
	{
		ID:         "csharp",
		Aliases:    []string{"c#", "cs", "dotnet"},
		Extensions: []string{".cs"},
		Family:     FamilyCLike,
		Fingerprints: []Fingerprint{
			pat(3, `Console\.WriteLine\s*\(`),
			pat(3, `(?m)^\s*using\s+System`),
			pat(2, `\bnamespace\s+\w+`),
			pat(1, `\bstring\[\]\s+args\b`),
		},
		Braces:          true,
		Terminator:      ";",
		IndentUnit:      "    ",
		CommentPrefixes: []string{"//", "/*", "*"},
		LineComment:     "//",
		DeclKeyword:     "var",
		PrintFormat:     "Console.WriteLine(%s)",
		TrueLit:         "true",
		FalseLit:        "false",
		NullLit:         "null",
		ElseIfKeyword:   "else if",
		HasClasses:      true,
	},
	{
		ID:         "cpp",
		Aliases:    []string{"c++", "cplusplus"},
		Extensions: []string{".cpp", ".cc", ".cxx", ".hpp"},
		Family:     FamilyCLike,
		Fingerprints: []Fingerprint{
			pat(3, `std::|\bcout\s*<<`),
			pat(2, `#include\s*<\w+>`),
			pat(2, `\bnullptr\b`),
			pat(1, `\btemplate\s*<`),
		},
		Braces:          true,
		Terminator:      ";",
		IndentUnit:      "    ",
		CommentPrefixes: []string{"//", "/*", "*"},
		LineComment:     "//",
		DeclKeyword:     "auto",
		PrintFormat:     "std::cout << %s << std::endl",
		TrueLit:         "true",
		FalseLit:        "false",
		NullLit:         "nullptr",
		ElseIfKeyword:   "else if",
		HasClasses:      true,
	},
	{
		ID:         "c",
		Extensions: []string{".c", ".h"},
		Family:     FamilyCLike,
		Fingerprints: []Fingerprint{
			pat(3, `\bprintf\s*\(`),
			pat(2, `#include\s*<\w+\.h>`),
			pat(2, `\bNULL\b`),
			pat(1, `\bmalloc\s*\(`),
		},
		Braces:          true,
		Terminator:      ";",
		IndentUnit:      "    ",
		CommentPrefixes: []string{"//", "/*", "*"},
		LineComment:     "//",
		PrintFormat:     "printf(%s)",
		TrueLit:         "true",
		FalseLit:        "false",
		NullLit:         "NULL",
		ElseIfKeyword:   "else if",
	},
	{
		ID:         "go",
		Aliases:    []string{"golang"},
		Extensions: []string{".go"},
		Family:     FamilyGo,
		Fingerprints: []Fingerprint{
			pat(3, `\bfunc\s+\w+\s*\(`),
			pat(3, `:=`),
			pat(2, `(?m)^\s*package\s+\w+`),
			pat(2, `fmt\.Print`),
			pat(1, `\bnil\b`),
		},
		Braces:          true,
		IndentUnit:      "\t",
		CommentPrefixes: []string{"//", "/*", "*"},
		LineComment:     "//",
		FuncKeyword:     "func",
		PrintFormat:     "fmt.Println(%s)",
		TrueLit:         "true",
		FalseLit:        "false",
		NullLit:         "nil",
		ElseIfKeyword:   "else if",
		TopLevelDecl:    "package main",
	},
	{
		ID:         "ruby",
		Aliases:    []string{"rb"},
		Extensions: []string{".rb"},
		Family:     FamilyRuby,
		Fingerprints: []Fingerprint{
			pat(3, `\bputs\s`),
			pat(3, `(?m)^\s*elsif\b`),
			pat(2, `(?m)^\s*end\s*$`),
			pat(2, `\battr_accessor\b`),
			pat(1, `\brequire\s+['"]`),
		},
		IndentUnit:      "  ",
		BlockCloser:     "end",
		CommentPrefixes: []string{"#"},
		LineComment:     "#",
		FuncKeyword:     "def",
		PrintFormat:     "puts %s",
		TrueLit:         "true",
		FalseLit:        "false",
		NullLit:         "nil",
		ElseIfKeyword:   "elsif",
		WordOperators:   true,
		HasClasses:      true,
	},
	{
		ID:         "php",
		Extensions: []string{".php"},
		Family:     FamilyPHP,
		Fingerprints: []Fingerprint{
			pat(3, `<\?php`),
			pat(3, `\becho\s`),
			pat(2, `\$\w+\s*=`),
			pat(1, `->\w+\(`),
		},
		Braces:          true,
		Terminator:      ";",
		IndentUnit:      "    ",
		CommentPrefixes: []string{"//", "#", "/*", "*"},
		LineComment:     "//",
		FuncKeyword:     "function",
		VarSigil:        "$",
		PrintFormat:     "echo %s",
		TrueLit:         "true",
		FalseLit:        "false",
		NullLit:         "null",
		ElseIfKeyword:   "elseif",
		HasClasses:      true,
	},
}

// DefaultID is the designated fallback language for unrecognized
// identifiers.
const DefaultID = "python"

// Registry is the constructed-once, immutable set of language profiles.
type Registry struct {
	ordered []*Language
	byKey   map[string]*Language
	byExt   map[string]*Language
}

// NewRegistry builds the registry over the builtin language set.
func NewRegistry() *Registry {
	r := &Registry{
		ordered: builtin,
		byKey:   make(map[string]*Language),
		byExt:   make(map[string]*Language),
	}
	for _, lang := range builtin {
		r.byKey[lang.ID] = lang
		for _, a := range lang.Aliases {
			r.byKey[strings.ToLower(a)] = lang
		}
		for _, ext := range lang.Extensions {
			if _, taken := r.byExt[ext]; !taken {
				r.byExt[ext] = lang
			}
		}
	}
	return r
}

// Lookup resolves an identifier or alias, case-insensitively.
func (r *Registry) Lookup(id string) (*Language, bool) {
	lang, ok := r.byKey[strings.ToLower(strings.TrimSpace(id))]
	return lang, ok
}

// LookupOrDefault resolves an identifier, falling back to the default
// language for anything unrecognized.
func (r *Registry) LookupOrDefault(id string) *Language {
	if lang, ok := r.Lookup(id); ok {
		return lang
	}
	return r.byKey[DefaultID]
}

// Default returns the designated fallback language.
func (r *Registry) Default() *Language {
	return r.byKey[DefaultID]
}

// ByExtension resolves a file extension (with or without leading dot).
func (r *Registry) ByExtension(ext string) (*Language, bool) {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	lang, ok := r.byExt[ext]
	return lang, ok
}

// All returns the profiles in registry (priority) order.
func (r *Registry) All() []*Language {
	out := make([]*Language, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// IsComment reports whether a trimmed line is a comment in this language.
func (l *Language) IsComment(trimmed string) bool {
	for _, p := range l.CommentPrefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}

// Extension returns the canonical file extension for the language.
func (l *Language) Extension() string {
	if len(l.Extensions) == 0 {
		return ""
	}
	return l.Extensions[0]
}
