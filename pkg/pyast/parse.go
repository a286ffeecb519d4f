package pyast

import (
	"regexp"
	"strings"

	"github.com/rigby-dev/rigby/pkg/utils"
)

var (
	defRe    = regexp.MustCompile(`^(?:async\s+)?def\s+([A-Za-z_][A-Za-z0-9_]*)`)
	classRe  = regexp.MustCompile(`^class\s+([A-Za-z_][A-Za-z0-9_]*)`)
	stringRe = regexp.MustCompile(`^[rRbBuUfF]{0,2}["']`)
)

// Parse builds a structural syntax tree for one Python source file. It fails
// with a *SyntaxError for text it cannot attribute to a statement block;
// callers treat that as a per-file failure and do not recover from it.
func Parse(src string) (*Module, error) {
	lls, err := scanLogicalLines(utils.SplitLines(src))
	if err != nil {
		return nil, err
	}

	mod := &Module{}
	type frame struct {
		indent int
		body   *[]*Stmt
	}
	stack := []frame{{indent: -1, body: &mod.Body}}

	for _, ll := range lls {
		if stack[0].indent < 0 {
			stack[0].indent = ll.indent
		}
		for len(stack) > 1 && ll.indent < stack[len(stack)-1].indent {
			stack = stack[:len(stack)-1]
		}
		top := &stack[len(stack)-1]
		if ll.indent > top.indent {
			body := *top.body
			if len(body) == 0 || !body[len(body)-1].opensBlock {
				return nil, &SyntaxError{Line: ll.start + 1, Msg: "unexpected indent"}
			}
			parent := body[len(body)-1]
			stack = append(stack, frame{indent: ll.indent, body: &parent.Body})
			top = &stack[len(stack)-1]
		} else if ll.indent != top.indent {
			return nil, &SyntaxError{Line: ll.start + 1, Msg: "unindent does not match outer indentation level"}
		}
		*top.body = append(*top.body, newStmt(ll))
	}

	fixEnds(mod.Body)
	return mod, nil
}

// newStmt classifies one logical line. Statements joined by top-level
// semicolons share the line span; the first decides the statement kind, and
// imports are collected from every segment.
func newStmt(ll logicalLine) *Stmt {
	s := &Stmt{
		Kind:       StmtOther,
		StartLine:  ll.start,
		EndLine:    ll.end,
		opensBlock: strings.HasSuffix(ll.text, ":"),
	}

	segments := strings.Split(ll.text, ";")
	for i, seg := range segments {
		seg = strings.TrimSpace(seg)
		imps := parseImports(seg, ll.start, ll.end)
		s.Imports = append(s.Imports, imps...)
		if i != 0 {
			continue
		}
		switch {
		case len(imps) > 0:
			s.Kind = StmtImport
		case defRe.MatchString(seg):
			s.Kind = StmtFunction
			s.Name = defRe.FindStringSubmatch(seg)[1]
		case classRe.MatchString(seg):
			s.Kind = StmtClass
			s.Name = classRe.FindStringSubmatch(seg)[1]
		case stringRe.MatchString(seg):
			s.Kind = StmtString
		}
	}
	return s
}

// parseImports recognizes "import a.b as c, d" and
// "from x import (a as y, b)" in scrubbed statement text.
func parseImports(text string, start, end int) []Import {
	if rest, ok := strings.CutPrefix(text, "from "); ok {
		idx := strings.Index(rest, " import")
		if idx < 0 {
			return nil
		}
		module := strings.TrimLeft(strings.TrimSpace(rest[:idx]), ".")
		namesPart := strings.NewReplacer("(", " ", ")", " ").Replace(rest[idx+len(" import"):])
		var names []string
		for _, n := range strings.Split(namesPart, ",") {
			fields := strings.Fields(n)
			if len(fields) == 0 {
				continue
			}
			names = append(names, fields[0])
		}
		if len(names) == 0 {
			return nil
		}
		return []Import{{Module: module, Names: names, IsFrom: true, StartLine: start, EndLine: end}}
	}

	if rest, ok := strings.CutPrefix(text, "import "); ok {
		var imps []Import
		for _, entry := range strings.Split(rest, ",") {
			fields := strings.Fields(entry)
			if len(fields) == 0 {
				continue
			}
			imps = append(imps, Import{Module: fields[0], StartLine: start, EndLine: end})
		}
		return imps
	}

	return nil
}

// fixEnds extends block statement spans to cover their bodies, bottom-up.
func fixEnds(body []*Stmt) int {
	end := -1
	for _, s := range body {
		if len(s.Body) > 0 {
			if childEnd := fixEnds(s.Body); childEnd > s.EndLine {
				s.EndLine = childEnd
			}
		}
		if s.EndLine > end {
			end = s.EndLine
		}
	}
	return end
}
