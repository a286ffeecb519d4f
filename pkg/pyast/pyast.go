// Package pyast provides a lightweight structural parser for Python source.
//
// It recovers exactly the shape the cleaning passes need: function and class
// definitions with inclusive 0-based line spans and nested bodies, import
// statements with their module path and imported names, and leading
// string-literal statements for docstring detection. It is not a full Python
// parser; expressions are never interpreted beyond string/bracket tracking.
package pyast

import "fmt"

// StmtKind tags a parsed statement.
type StmtKind int

const (
	StmtOther StmtKind = iota
	StmtFunction
	StmtClass
	StmtString
	StmtImport
)

// String returns the lowercase kind name, used as a sort key component.
func (k StmtKind) String() string {
	switch k {
	case StmtFunction:
		return "function"
	case StmtClass:
		return "class"
	case StmtString:
		return "string"
	case StmtImport:
		return "import"
	default:
		return "other"
	}
}

// Import represents a single import or from-import statement.
type Import struct {
	Module    string   // dotted module path, "" for a bare relative from-import
	Names     []string // imported names for a from-import, empty otherwise
	IsFrom    bool
	StartLine int // 0-based, inclusive
	EndLine   int // 0-based, inclusive; covers parenthesized multi-line forms
}

// Stmt is one logical statement. Block statements (def, class, if, for, ...)
// carry their body statements; a block's EndLine is the end line of its last
// body statement, so trailing blank lines are never part of a statement span.
type Stmt struct {
	Kind      StmtKind
	Name      string   // definition name for def/class statements
	Imports   []Import // parsed imports for import statements
	Body      []*Stmt
	StartLine int // 0-based, inclusive
	EndLine   int // 0-based, inclusive

	opensBlock bool
}

// IsDef reports whether the statement is a function or class definition.
func (s *Stmt) IsDef() bool {
	return s.Kind == StmtFunction || s.Kind == StmtClass
}

// Docstring returns the leading string-literal statement of a definition
// body, or nil when the definition has no docstring.
func (s *Stmt) Docstring() *Stmt {
	if s.IsDef() && len(s.Body) > 0 && s.Body[0].Kind == StmtString {
		return s.Body[0]
	}
	return nil
}

// Module is the parse result for one source file.
type Module struct {
	Body []*Stmt
}

// Walk visits every statement in the tree in pre-order.
func (m *Module) Walk(fn func(*Stmt)) {
	walkStmts(m.Body, fn)
}

func walkStmts(body []*Stmt, fn func(*Stmt)) {
	for _, s := range body {
		fn(s)
		walkStmts(s.Body, fn)
	}
}

// SyntaxError reports source text the parser cannot make sense of.
type SyntaxError struct {
	Line int // 1-based
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d: %s", e.Line, e.Msg)
}
