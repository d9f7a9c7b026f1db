// Package ast defines the Azalea abstract syntax tree: a Program holding
// Declarations, whose bodies are Blocks of Statements over Pratt-parsed
// Expressions. Every node retains the Tokens it was built from so
// later stages can recover spans for diagnostics.
package ast

import "github.com/azalea-lang/azalea/internal/token"

// Node is the common interface implemented by every AST node.
type Node interface {
	// FirstToken returns the leftmost token the node was built from, used
	// to anchor diagnostics.
	FirstToken() token.Token
}

// Program is the root of a parsed compilation unit.
type Program struct {
	Declarations []Declaration
}

func (p *Program) FirstToken() token.Token {
	if len(p.Declarations) == 0 {
		return token.Token{}
	}
	return p.Declarations[0].FirstToken()
}

// Declaration is implemented by Function, Choice, and Struct.
type Declaration interface {
	Node
	declarationNode()
}

// Function is a top-level function declaration: its signature plus body.
type Function struct {
	Signature  FuncSignature
	Definition FuncDefinition
}

func (*Function) declarationNode()         {}
func (f *Function) FirstToken() token.Token { return f.Signature.FirstToken() }

// TypedField is a (name, type) pair, used by Struct fields.
type TypedField struct {
	Name token.Token
	Type token.Token
}

// Choice is a sum-type declaration: a name plus an ordered list of variant
// names (the "choice { ... }" grammar).
type Choice struct {
	Name     token.Token
	Variants []token.Token
}

func (*Choice) declarationNode()         {}
func (c *Choice) FirstToken() token.Token { return c.Name }

// Struct is a product-type declaration: a name plus an ordered list of
// typed fields.
type Struct struct {
	Name        token.Token
	TypedFields []TypedField
}

func (*Struct) declarationNode()         {}
func (s *Struct) FirstToken() token.Token { return s.Name }

// FuncSignature is the "name :: (param types) -> return type" prefix of a
// function declaration.
type FuncSignature struct {
	Name       token.Token
	ParamTypes []token.Token
	ReturnType *token.Token // nil when the signature omits "-> Type"
}

func (s FuncSignature) FirstToken() token.Token { return s.Name }

// FuncDefinition is the "name params... = { body }" suffix of a function
// declaration; Name must match the corresponding FuncSignature.Name.
type FuncDefinition struct {
	Name   token.Token
	Params []token.Token
	Body   Block
}

func (d FuncDefinition) FirstToken() token.Token { return d.Name }

// Block is an ordered sequence of statements optionally followed by a
// tail expression (the block's value, if any).
type Block struct {
	Statements []Statement
	TailExpr   Expression // nil if the block has no tail expression
	OpenBrace  token.Token
	CloseBrace token.Token
}

func (b Block) FirstToken() token.Token { return b.OpenBrace }

// Statement is implemented by every statement node.
type Statement interface {
	Node
	statementNode()
}

// VarBindingInit is "let name [:: type] <- rvalue ;".
type VarBindingInit struct {
	Let      token.Token
	Name     token.Token
	TypeHint *token.Token // nil if omitted
	RHS      RValue
}

func (*VarBindingInit) statementNode()          {}
func (s *VarBindingInit) FirstToken() token.Token { return s.Let }

// VarBindingMut is "name <- expr ;", reassigning an existing binding.
type VarBindingMut struct {
	Name token.Token
	Expr Expression
}

func (*VarBindingMut) statementNode()          {}
func (s *VarBindingMut) FirstToken() token.Token { return s.Name }

// Selection is "if ... [elif ...] [else ...]".
type Selection struct {
	If   IfComp
	Elif *ElifComp // nil if absent
	Else *ElseComp // nil if absent
}

func (*Selection) statementNode()          {}
func (s *Selection) FirstToken() token.Token { return s.If.FirstToken() }

// IndefiniteLoop is "while expr { block }".
type IndefiniteLoop struct {
	While token.Token
	Expr  Expression
	Block Block
}

func (*IndefiniteLoop) statementNode()          {}
func (s *IndefiniteLoop) FirstToken() token.Token { return s.While }

// DefiniteLoop is "for index in low .. high { block }".
type DefiniteLoop struct {
	For   token.Token
	Index token.Token
	Low   token.Token
	High  token.Token
	Block Block
}

func (*DefiniteLoop) statementNode()          {}
func (s *DefiniteLoop) FirstToken() token.Token { return s.For }

// FuncCall is a bare function-call statement: "name(args) ;".
type FuncCall struct {
	Name token.Token
	Args []Expression
}

func (*FuncCall) statementNode()          {}
func (s *FuncCall) FirstToken() token.Token { return s.Name }

// RValue is the right-hand side of a VarBindingInit: implemented by Expr,
// List, StructLit, and RValueCall.
type RValue interface {
	Node
	rvalueNode()
}

// Expr wraps a plain expression RHS. ExprVal is nil for an empty RHS, which
// the parser reports as var-bind-missing-rhs before returning a zero Expr.
type Expr struct {
	ExprVal Expression
}

func (*Expr) rvalueNode()          {}
func (e *Expr) FirstToken() token.Token {
	if e.ExprVal == nil {
		return token.Token{}
	}
	return e.ExprVal.FirstToken()
}

// List is a literal "[e1, e2, ...]" RHS.
type List struct {
	LBracket token.Token
	Exprs    []Expression
}

func (*List) rvalueNode()          {}
func (l *List) FirstToken() token.Token { return l.LBracket }

// StructLit is a "Name(e1, e2, ...)" struct-literal RHS.
type StructLit struct {
	Name  token.Token
	Exprs []Expression
}

func (*StructLit) rvalueNode()          {}
func (s *StructLit) FirstToken() token.Token { return s.Name }

// RValueCall is a "name(e1, e2, ...)" function-call RHS.
type RValueCall struct {
	Name  token.Token
	Exprs []Expression
}

func (*RValueCall) rvalueNode()          {}
func (c *RValueCall) FirstToken() token.Token { return c.Name }

// IfComp is the "if expr { block }" component of a Selection.
type IfComp struct {
	If    token.Token
	Expr  Expression
	Block Block
}

func (c IfComp) FirstToken() token.Token { return c.If }

// ElifComp is the "elif expr { block }" component of a Selection. Only
// valid when an IfComp precedes it.
type ElifComp struct {
	Elif  token.Token
	Expr  Expression
	Block Block
}

func (c ElifComp) FirstToken() token.Token { return c.Elif }

// ElseComp is the "else { block }" component of a Selection. May appear
// with or without an ElifComp.
type ElseComp struct {
	Else  token.Token
	Block Block
}

func (c ElseComp) FirstToken() token.Token { return c.Else }

// Expression is the uniform S-expression representation of every parsed
// expression: either an Atom (a single literal/identifier token) or a Cons
// cell (an operator token plus its operands). Downstream code must
// pattern-match on the operator token's Kind, not the node's Go type, to
// interpret arithmetic, logical, cast, and subscript forms.
type Expression interface {
	Node
	expressionNode()
}

// Atom is a leaf expression: a single literal or identifier token.
type Atom struct {
	Token token.Token
}

func (*Atom) expressionNode()        {}
func (a *Atom) FirstToken() token.Token { return a.Token }

// Cons is an interior expression node: an operator token plus its ordered
// operands. Binary operators have two operands; prefix "-" and postfix "["
// have one and two respectively (the postfix "[" operand pair is
// [receiver, index]).
type Cons struct {
	Operator token.Token
	Operands []Expression
}

func (*Cons) expressionNode()        {}
func (c *Cons) FirstToken() token.Token {
	if len(c.Operands) == 0 {
		return c.Operator
	}
	return c.Operands[0].FirstToken()
}
