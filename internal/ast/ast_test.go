package ast_test

import (
	"testing"

	"github.com/azalea-lang/azalea/internal/ast"
	"github.com/azalea-lang/azalea/internal/token"
)

func tok(kind token.Kind, raw string, offset int) token.Token {
	return token.Token{Kind: kind, Raw: raw, Offset: offset}
}

func TestProgram_FirstTokenEmptyIsZeroValue(t *testing.T) {
	p := &ast.Program{}
	if got := p.FirstToken(); got != (token.Token{}) {
		t.Fatalf("expected zero-value token for empty program, got %+v", got)
	}
}

func TestProgram_FirstTokenDelegatesToFirstDeclaration(t *testing.T) {
	name := tok(token.Ident, "add", 0)
	fn := &ast.Function{Signature: ast.FuncSignature{Name: name}}
	p := &ast.Program{Declarations: []ast.Declaration{fn}}
	if got := p.FirstToken(); got != name {
		t.Fatalf("FirstToken() = %+v, want %+v", got, name)
	}
}

func TestFunction_FirstTokenIsSignatureName(t *testing.T) {
	name := tok(token.Ident, "add", 5)
	fn := &ast.Function{Signature: ast.FuncSignature{Name: name}}
	if got := fn.FirstToken(); got != name {
		t.Fatalf("FirstToken() = %+v, want %+v", got, name)
	}
}

func TestChoice_FirstTokenIsName(t *testing.T) {
	name := tok(token.Ident, "Color", 0)
	c := &ast.Choice{Name: name, Variants: []token.Token{
		tok(token.Ident, "Red", 10),
		tok(token.Ident, "Blue", 15),
	}}
	if got := c.FirstToken(); got != name {
		t.Fatalf("FirstToken() = %+v, want %+v", got, name)
	}
	if len(c.Variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(c.Variants))
	}
}

func TestStruct_FirstTokenIsName(t *testing.T) {
	name := tok(token.Ident, "Point", 0)
	s := &ast.Struct{Name: name, TypedFields: []ast.TypedField{
		{Name: tok(token.Ident, "x", 10), Type: tok(token.IntTy, "int", 12)},
	}}
	if got := s.FirstToken(); got != name {
		t.Fatalf("FirstToken() = %+v, want %+v", got, name)
	}
}

func TestBlock_FirstTokenIsOpenBrace(t *testing.T) {
	brace := tok(token.LBracket, "{", 0)
	b := ast.Block{OpenBrace: brace, CloseBrace: tok(token.RBracket, "}", 10)}
	if got := b.FirstToken(); got != brace {
		t.Fatalf("FirstToken() = %+v, want %+v", got, brace)
	}
}

func TestVarBindingInit_FirstTokenIsLet(t *testing.T) {
	let := tok(token.LetKw, "let", 0)
	s := &ast.VarBindingInit{Let: let, Name: tok(token.Ident, "x", 4)}
	if got := s.FirstToken(); got != let {
		t.Fatalf("FirstToken() = %+v, want %+v", got, let)
	}
}

func TestVarBindingMut_FirstTokenIsName(t *testing.T) {
	name := tok(token.Ident, "x", 0)
	s := &ast.VarBindingMut{Name: name}
	if got := s.FirstToken(); got != name {
		t.Fatalf("FirstToken() = %+v, want %+v", got, name)
	}
}

func TestSelection_FirstTokenIsIfToken(t *testing.T) {
	ifTok := tok(token.IfKw, "if", 0)
	s := &ast.Selection{If: ast.IfComp{If: ifTok}}
	if got := s.FirstToken(); got != ifTok {
		t.Fatalf("FirstToken() = %+v, want %+v", got, ifTok)
	}
}

func TestIndefiniteLoop_FirstTokenIsWhile(t *testing.T) {
	while := tok(token.WhileKw, "while", 0)
	s := &ast.IndefiniteLoop{While: while}
	if got := s.FirstToken(); got != while {
		t.Fatalf("FirstToken() = %+v, want %+v", got, while)
	}
}

func TestDefiniteLoop_FirstTokenIsFor(t *testing.T) {
	forTok := tok(token.ForKw, "for", 0)
	s := &ast.DefiniteLoop{For: forTok, Index: tok(token.Ident, "i", 4)}
	if got := s.FirstToken(); got != forTok {
		t.Fatalf("FirstToken() = %+v, want %+v", got, forTok)
	}
}

func TestFuncCall_FirstTokenIsName(t *testing.T) {
	name := tok(token.Ident, "doThing", 0)
	s := &ast.FuncCall{Name: name}
	if got := s.FirstToken(); got != name {
		t.Fatalf("FirstToken() = %+v, want %+v", got, name)
	}
}

func TestExpr_FirstTokenNilExprValIsZeroValue(t *testing.T) {
	e := &ast.Expr{}
	if got := e.FirstToken(); got != (token.Token{}) {
		t.Fatalf("expected zero-value token for nil ExprVal, got %+v", got)
	}
}

func TestExpr_FirstTokenDelegatesToExprVal(t *testing.T) {
	lit := tok(token.NumLit, "1", 0)
	e := &ast.Expr{ExprVal: &ast.Atom{Token: lit}}
	if got := e.FirstToken(); got != lit {
		t.Fatalf("FirstToken() = %+v, want %+v", got, lit)
	}
}

func TestList_FirstTokenIsLBracket(t *testing.T) {
	lb := tok(token.LSBracket, "[", 0)
	l := &ast.List{LBracket: lb}
	if got := l.FirstToken(); got != lb {
		t.Fatalf("FirstToken() = %+v, want %+v", got, lb)
	}
}

func TestStructLit_FirstTokenIsName(t *testing.T) {
	name := tok(token.Ident, "Point", 0)
	s := &ast.StructLit{Name: name}
	if got := s.FirstToken(); got != name {
		t.Fatalf("FirstToken() = %+v, want %+v", got, name)
	}
}

func TestRValueCall_FirstTokenIsName(t *testing.T) {
	name := tok(token.Ident, "add", 0)
	c := &ast.RValueCall{Name: name}
	if got := c.FirstToken(); got != name {
		t.Fatalf("FirstToken() = %+v, want %+v", got, name)
	}
}

func TestIfElifElseComp_FirstTokens(t *testing.T) {
	ifTok := tok(token.IfKw, "if", 0)
	elifTok := tok(token.ElifKw, "elif", 10)
	elseTok := tok(token.ElseKw, "else", 20)

	ic := ast.IfComp{If: ifTok}
	ec := ast.ElifComp{Elif: elifTok}
	elc := ast.ElseComp{Else: elseTok}

	if got := ic.FirstToken(); got != ifTok {
		t.Fatalf("IfComp.FirstToken() = %+v, want %+v", got, ifTok)
	}
	if got := ec.FirstToken(); got != elifTok {
		t.Fatalf("ElifComp.FirstToken() = %+v, want %+v", got, elifTok)
	}
	if got := elc.FirstToken(); got != elseTok {
		t.Fatalf("ElseComp.FirstToken() = %+v, want %+v", got, elseTok)
	}
}

func TestAtom_FirstTokenIsItsToken(t *testing.T) {
	lit := tok(token.NumLit, "42", 0)
	a := &ast.Atom{Token: lit}
	if got := a.FirstToken(); got != lit {
		t.Fatalf("FirstToken() = %+v, want %+v", got, lit)
	}
}

func TestCons_FirstTokenDelegatesToFirstOperand(t *testing.T) {
	a := tok(token.Ident, "a", 0)
	b := tok(token.Ident, "b", 4)
	plus := tok(token.Plus, "+", 2)
	c := &ast.Cons{Operator: plus, Operands: []ast.Expression{
		&ast.Atom{Token: a},
		&ast.Atom{Token: b},
	}}
	if got := c.FirstToken(); got != a {
		t.Fatalf("FirstToken() = %+v, want %+v", got, a)
	}
}

func TestCons_FirstTokenWithNoOperandsIsOperator(t *testing.T) {
	minus := tok(token.Minus, "-", 0)
	c := &ast.Cons{Operator: minus}
	if got := c.FirstToken(); got != minus {
		t.Fatalf("FirstToken() = %+v, want %+v", got, minus)
	}
}

func TestNestedConsBuildsPrefixMinusThenInfixPlus(t *testing.T) {
	// "-a + b" => Cons('+', [Cons('-', [a]), b])
	a := &ast.Atom{Token: tok(token.Ident, "a", 1)}
	b := &ast.Atom{Token: tok(token.Ident, "b", 6)}
	neg := &ast.Cons{Operator: tok(token.Minus, "-", 0), Operands: []ast.Expression{a}}
	sum := &ast.Cons{Operator: tok(token.Plus, "+", 3), Operands: []ast.Expression{neg, b}}

	if got := sum.FirstToken(); got != a.Token {
		t.Fatalf("FirstToken() = %+v, want %+v", got, a.Token)
	}
	if len(sum.Operands) != 2 {
		t.Fatalf("expected 2 operands, got %d", len(sum.Operands))
	}
	if _, ok := sum.Operands[0].(*ast.Cons); !ok {
		t.Fatalf("expected first operand to be a Cons, got %T", sum.Operands[0])
	}
}
