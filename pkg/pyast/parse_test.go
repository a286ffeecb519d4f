package pyast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_DefinitionSpans(t *testing.T) {
	req := require.New(t)
	src := "def foo():\n" +
		"    x = 1\n" +
		"\n" +
		"    y = 2\n" +
		"def bar():\n" +
		"    pass\n"

	mod, err := Parse(src)
	req.NoError(err)
	req.Len(mod.Body, 2)

	foo := mod.Body[0]
	req.Equal(StmtFunction, foo.Kind)
	req.Equal("foo", foo.Name)
	req.Equal(0, foo.StartLine)
	req.Equal(3, foo.EndLine) // last body statement, not the blank before it
	req.Len(foo.Body, 2)

	bar := mod.Body[1]
	req.Equal("bar", bar.Name)
	req.Equal(4, bar.StartLine)
	req.Equal(5, bar.EndLine)
}

func TestParse_NestedDefinitions(t *testing.T) {
	req := require.New(t)
	src := "class A:\n" +
		"    def m(self):\n" +
		"        if True:\n" +
		"            return 1\n" +
		"        return 2\n"

	mod, err := Parse(src)
	req.NoError(err)
	req.Len(mod.Body, 1)

	a := mod.Body[0]
	req.Equal(StmtClass, a.Kind)
	req.Equal("A", a.Name)
	req.Equal(4, a.EndLine)

	m := a.Body[0]
	req.Equal(StmtFunction, m.Kind)
	req.Equal("m", m.Name)
	req.Equal(1, m.StartLine)
	req.Equal(4, m.EndLine)

	var defs []*Stmt
	mod.Walk(func(s *Stmt) {
		if s.IsDef() {
			defs = append(defs, s)
		}
	})
	req.Len(defs, 2)
}

func TestParse_AsyncDefAndDecorators(t *testing.T) {
	req := require.New(t)
	src := "@decorator\n" +
		"async def handler(request):\n" +
		"    return request\n"

	mod, err := Parse(src)
	req.NoError(err)
	req.Len(mod.Body, 2)
	req.Equal(StmtOther, mod.Body[0].Kind)

	handler := mod.Body[1]
	req.Equal(StmtFunction, handler.Kind)
	req.Equal("handler", handler.Name)
	req.Equal(1, handler.StartLine)
	req.Equal(2, handler.EndLine)
}

func TestParse_Imports(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name string
		src  string
		want Import
	}{
		{
			name: "plain import",
			src:  "import os\n",
			want: Import{Module: "os", StartLine: 0, EndLine: 0},
		},
		{
			name: "aliased import",
			src:  "import numpy as np\n",
			want: Import{Module: "numpy", StartLine: 0, EndLine: 0},
		},
		{
			name: "from import",
			src:  "from rigby.config import RigbyConfig\n",
			want: Import{Module: "rigby.config", Names: []string{"RigbyConfig"}, IsFrom: true, StartLine: 0, EndLine: 0},
		},
		{
			name: "relative from import",
			src:  "from .config import RigbyConfig\n",
			want: Import{Module: "config", Names: []string{"RigbyConfig"}, IsFrom: true, StartLine: 0, EndLine: 0},
		},
		{
			name: "bare relative import",
			src:  "from . import helpers\n",
			want: Import{Module: "", Names: []string{"helpers"}, IsFrom: true, StartLine: 0, EndLine: 0},
		},
		{
			name: "aliased from import",
			src:  "from pathlib import Path as P\n",
			want: Import{Module: "pathlib", Names: []string{"Path"}, IsFrom: true, StartLine: 0, EndLine: 0},
		},
		{
			name: "parenthesized multi-line",
			src:  "from typing import (\n    Dict,\n    List,\n)\n",
			want: Import{Module: "typing", Names: []string{"Dict", "List"}, IsFrom: true, StartLine: 0, EndLine: 3},
		},
		{
			name: "backslash continuation",
			src:  "from typing import List, \\\n    Dict\n",
			want: Import{Module: "typing", Names: []string{"List", "Dict"}, IsFrom: true, StartLine: 0, EndLine: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mod, err := Parse(tt.src)
			req.NoError(err)
			req.Len(mod.Body, 1)
			req.Equal(StmtImport, mod.Body[0].Kind)
			req.Len(mod.Body[0].Imports, 1)
			req.Equal(tt.want, mod.Body[0].Imports[0])
		})
	}
}

func TestParse_MultiModuleImport(t *testing.T) {
	req := require.New(t)
	mod, err := Parse("import os, sys\n")
	req.NoError(err)
	req.Len(mod.Body, 1)
	imps := mod.Body[0].Imports
	req.Len(imps, 2)
	req.Equal("os", imps[0].Module)
	req.Equal("sys", imps[1].Module)
}

func TestParse_NestedImportCollected(t *testing.T) {
	req := require.New(t)
	src := "def load():\n" +
		"    import json\n" +
		"    return json\n"

	mod, err := Parse(src)
	req.NoError(err)

	var imports []Import
	mod.Walk(func(s *Stmt) {
		imports = append(imports, s.Imports...)
	})
	req.Len(imports, 1)
	req.Equal("json", imports[0].Module)
	req.Equal(1, imports[0].StartLine)
}

func TestParse_Docstring(t *testing.T) {
	req := require.New(t)
	src := "def foo():\n" +
		"    \"\"\"Summary.\n" +
		"\n" +
		"    Details.\n" +
		"    \"\"\"\n" +
		"    return 1\n"

	mod, err := Parse(src)
	req.NoError(err)

	foo := mod.Body[0]
	doc := foo.Docstring()
	req.NotNil(doc)
	req.Equal(StmtString, doc.Kind)
	req.Equal(1, doc.StartLine)
	req.Equal(4, doc.EndLine)

	// A function whose first statement is not a string has no docstring.
	mod, err = Parse("def bar():\n    return 1\n")
	req.NoError(err)
	req.Nil(mod.Body[0].Docstring())
}

func TestParse_CommentsAndStringsIgnored(t *testing.T) {
	req := require.New(t)
	src := "# import fake\n" +
		"x = \"import nothing\"\n" +
		"y = 'def not_a_def(): pass'  # def neither\n"

	mod, err := Parse(src)
	req.NoError(err)
	req.Len(mod.Body, 2)
	for _, s := range mod.Body {
		req.Equal(StmtOther, s.Kind)
		req.Empty(s.Imports)
	}
}

func TestParse_SyntaxErrors(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name string
		src  string
		line int
	}{
		{"unterminated single-quoted string", "x = \"abc\n", 1},
		{"unterminated triple-quoted string", "x = \"\"\"abc\ndef\n", 1},
		{"unclosed bracket", "foo(1, 2\n", 1},
		{"unmatched closing bracket", "foo)\n", 1},
		{"unexpected indent", "x = 1\n    y = 2\n", 2},
		{"module level unindent", "    x = 1\ny = 2\n", 2},
		{"trailing line continuation", "x = 1 + \\\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			req.Error(err)
			var synErr *SyntaxError
			req.ErrorAs(err, &synErr)
			req.Equal(tt.line, synErr.Line)
		})
	}
}

func TestParse_InlineBodyIsLeaf(t *testing.T) {
	req := require.New(t)
	mod, err := Parse("def f(): return 1\nx = 2\n")
	req.NoError(err)
	req.Len(mod.Body, 2)

	f := mod.Body[0]
	req.Equal(StmtFunction, f.Kind)
	req.Empty(f.Body)
	req.Equal(0, f.EndLine)
}
