// Package parser turns a token stream into LLL's program tree: statement and
// expression nodes, each carrying the line/column of the token it
// originated from (spec.md §3/§4.2).
package parser

// Position is the 1-based source location a node was parsed from.
type Position struct {
	Line   int
	Column int
}

// Node is implemented by every statement and expression node.
type Node interface {
	Pos() Position
}

// Statement is implemented by every statement-level node.
type Statement interface {
	Node
	stmtNode()
}

// Expression is implemented by every expression-level node.
type Expression interface {
	Node
	exprNode()
}

// Program is the root of a parsed source file: a flat list of top-level
// statements.
type Program struct {
	Statements []Statement
}

// --- Statements ---------------------------------------------------------

// LetStatement declares a mutable binding. TypeAnnotation is parsed but
// unused (spec.md §1 Non-goals: "type annotations are parsed but unused").
// Value is nil when no initializer was given; the evaluator defaults it.
type LetStatement struct {
	Position
	Name           string
	TypeAnnotation string
	Value          Expression
}

func (s *LetStatement) stmtNode() {}
func (s *LetStatement) Pos() Position { return s.Position }

// ConstStatement declares an immutable binding; its initializer is required
// by the grammar.
type ConstStatement struct {
	Position
	Name           string
	TypeAnnotation string
	Value          Expression
}

func (s *ConstStatement) stmtNode() {}
func (s *ConstStatement) Pos() Position { return s.Position }

// AssignStatement mutates an existing plain binding.
type AssignStatement struct {
	Position
	Name  string
	Value Expression
}

func (s *AssignStatement) stmtNode() {}
func (s *AssignStatement) Pos() Position { return s.Position }

// IndexAssignStatement mutates a single array slot: `name[index] = value`.
type IndexAssignStatement struct {
	Position
	Name  string
	Index Expression
	Value Expression
}

func (s *IndexAssignStatement) stmtNode() {}
func (s *IndexAssignStatement) Pos() Position { return s.Position }

// IfBranch is one `if`/`else if` guard-and-body pair.
type IfBranch struct {
	Condition Expression
	Body      []Statement
}

// IfStatement models `if ... then ... (else if ... then ...)* (else ...)? end`.
type IfStatement struct {
	Position
	Branches []IfBranch
	Else     []Statement // nil when no else clause
}

func (s *IfStatement) stmtNode() {}
func (s *IfStatement) Pos() Position { return s.Position }

// WhileStatement re-evaluates Condition before each iteration.
type WhileStatement struct {
	Position
	Condition Expression
	Body      []Statement
}

func (s *WhileStatement) stmtNode() {}
func (s *WhileStatement) Pos() Position { return s.Position }

// ForInStatement binds each element of Iterable to Var in turn.
type ForInStatement struct {
	Position
	Var      string
	Iterable Expression
	Body     []Statement
}

func (s *ForInStatement) stmtNode() {}
func (s *ForInStatement) Pos() Position { return s.Position }

// Param is one declared function parameter; Type is parsed but unused.
type Param struct {
	Name string
	Type string
}

// FuncDeclStatement declares a named closure, bound as a constant under
// Name in the environment active at the point of declaration.
type FuncDeclStatement struct {
	Position
	Name       string
	Params     []Param
	ReturnType string
	Body       []Statement
}

func (s *FuncDeclStatement) stmtNode() {}
func (s *FuncDeclStatement) Pos() Position { return s.Position }

// ReturnStatement's Value is nil when the statement omits a value.
type ReturnStatement struct {
	Position
	Value Expression
}

func (s *ReturnStatement) stmtNode() {}
func (s *ReturnStatement) Pos() Position { return s.Position }

type BreakStatement struct{ Position }

func (s *BreakStatement) stmtNode() {}
func (s *BreakStatement) Pos() Position { return s.Position }

type ContinueStatement struct{ Position }

func (s *ContinueStatement) stmtNode() {}
func (s *ContinueStatement) Pos() Position { return s.Position }

// ImportStatement names a module path, literal from the source text.
type ImportStatement struct {
	Position
	Path string
}

func (s *ImportStatement) stmtNode() {}
func (s *ImportStatement) Pos() Position { return s.Position }

// TryStatement catches a RuntimeError raised anywhere in Body, binding its
// message string to CatchVar for CatchBody. Control-flow signals are never
// caught (spec.md §4.4/§7).
type TryStatement struct {
	Position
	Body      []Statement
	CatchVar  string
	CatchBody []Statement
}

func (s *TryStatement) stmtNode() {}
func (s *TryStatement) Pos() Position { return s.Position }

// ExpressionStatement evaluates Expr for its side effects, discarding the
// result.
type ExpressionStatement struct {
	Position
	Expr Expression
}

func (s *ExpressionStatement) stmtNode() {}
func (s *ExpressionStatement) Pos() Position { return s.Position }

// --- Expressions ---------------------------------------------------------

// BinaryExpression is any two-operand operator application; Op is the
// lexer token literal ("+", "==", "and", ...).
type BinaryExpression struct {
	Position
	Op    string
	Left  Expression
	Right Expression
}

func (e *BinaryExpression) exprNode() {}
func (e *BinaryExpression) Pos() Position { return e.Position }

// UnaryExpression is `-x` or `not x`.
type UnaryExpression struct {
	Position
	Op      string
	Operand Expression
}

func (e *UnaryExpression) exprNode() {}
func (e *UnaryExpression) Pos() Position { return e.Position }

// CallExpression calls the named function; the callee is always a bare
// identifier (spec.md §9: "first-class functions in call position only").
type CallExpression struct {
	Position
	Name string
	Args []Expression
}

func (e *CallExpression) exprNode() {}
func (e *CallExpression) Pos() Position { return e.Position }

// IndexExpression is `target[index]`, chainable.
type IndexExpression struct {
	Position
	Target Expression
	Index  Expression
}

func (e *IndexExpression) exprNode() {}
func (e *IndexExpression) Pos() Position { return e.Position }

// ArrayLiteral is `[e1, e2, ...]`.
type ArrayLiteral struct {
	Position
	Elements []Expression
}

func (e *ArrayLiteral) exprNode() {}
func (e *ArrayLiteral) Pos() Position { return e.Position }

// NumberLiteral carries the "is float" marker exactly as the lexer saw it
// in source (spec.md §3/§9's "Number domain" note).
type NumberLiteral struct {
	Position
	Value   float64
	IsFloat bool
}

func (e *NumberLiteral) exprNode() {}
func (e *NumberLiteral) Pos() Position { return e.Position }

type StringLiteral struct {
	Position
	Value string
}

func (e *StringLiteral) exprNode() {}
func (e *StringLiteral) Pos() Position { return e.Position }

type BooleanLiteral struct {
	Position
	Value bool
}

func (e *BooleanLiteral) exprNode() {}
func (e *BooleanLiteral) Pos() Position { return e.Position }

type NilLiteral struct{ Position }

func (e *NilLiteral) exprNode() {}
func (e *NilLiteral) Pos() Position { return e.Position }

// Identifier references a bound name.
type Identifier struct {
	Position
	Name string
}

func (e *Identifier) exprNode() {}
func (e *Identifier) Pos() Position { return e.Position }
