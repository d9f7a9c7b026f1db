package parser

import (
	"github.com/azalea-lang/azalea/internal/ast"
	"github.com/azalea-lang/azalea/internal/diag"
	"github.com/azalea-lang/azalea/internal/token"
)

const prefixMinusBP = 13

// infixBindingPower returns the (left, right) binding powers for an infix or
// postfix operator. ok is false for any token that
// isn't one of these operators.
func infixBindingPower(k token.Kind) (left, right int, ok bool) {
	switch k {
	case token.OrKw:
		return 1, 2, true
	case token.AndKw:
		return 3, 4, true
	case token.Eq, token.Lt, token.Lte, token.Gt, token.Gte:
		return 5, 6, true
	case token.Plus, token.Minus:
		return 7, 8, true
	case token.Mul, token.Div:
		return 9, 10, true
	case token.AsKw:
		return 11, 12, true
	case token.LSBracket:
		return 15, 0, true
	default:
		return 0, 0, false
	}
}

// isExpressionTerminator reports whether k is one of the tokens that end an
// expression without themselves being consumed.
func isExpressionTerminator(k token.Kind) bool {
	switch k {
	case token.Semicolon, token.RParn, token.RSBracket, token.LBracket, token.RBracket, token.EOF:
		return true
	default:
		return false
	}
}

// canStartExpression reports whether k can begin a parsePrimary: a prefix
// "-", an opening "(", or a literal/identifier atom.
func canStartExpression(k token.Kind) bool {
	switch k {
	case token.Minus, token.LParn, token.NumLit, token.FloatLit, token.BoolLit, token.Ident:
		return true
	default:
		return false
	}
}

// requireCondition parses the boolean condition expression for an if, elif,
// or while construct, named by kw. A missing condition (e.g. "if { }") is
// reported as missing-expression-at(kw) rather than parsePrimary's generic
// unexpected-token diagnostic.
func (p *Parser) requireCondition(kw string) ast.Expression {
	cur := p.current()
	if !canStartExpression(cur.Kind) {
		p.addDiag(diag.CodeMissingExpressionAtKw, p.offsetOf(cur),
			"missing expression after '"+kw+"'",
			"expected a condition here", "")
		return nil
	}
	return p.parseExpression(0)
}

// requireOperand parses the operand of a binary or prefix operator. Unlike
// parsePrimary's generic "expected an expression" fallback, a missing
// operand here is reported as incomplete-binary-op, anchored at the token
// where the operand was expected.
func (p *Parser) requireOperand(minBP int) ast.Expression {
	cur := p.current()
	if !canStartExpression(cur.Kind) {
		p.addDiag(diag.CodeIncompleteBinaryOp, p.offsetOf(cur),
			"incomplete binary operation",
			"expected an operand here", "")
		return nil
	}
	return p.parseExpression(minBP)
}

// parseExpression is the Pratt loop: parse a primary, then repeatedly fold in
// infix/postfix operators whose left binding power is at least minBP.
// Returns nil on a parse failure (a diagnostic has already been recorded).
func (p *Parser) parseExpression(minBP int) ast.Expression {
	lhs := p.parsePrimary()
	if lhs == nil {
		return nil
	}

	for {
		cur := p.current()
		if isExpressionTerminator(cur.Kind) {
			return lhs
		}
		lbp, rbp, ok := infixBindingPower(cur.Kind)
		if !ok || lbp < minBP {
			return lhs
		}
		p.advance()

		switch cur.Kind {
		case token.LSBracket:
			inner := p.parseExpression(0)
			if inner == nil {
				return nil
			}
			if _, ok := p.consume(token.RSBracket); !ok {
				return nil
			}
			lhs = &ast.Cons{Operator: cur, Operands: []ast.Expression{lhs, inner}}

		case token.AsKw:
			rhsTok := p.current()
			if !rhsTok.IsType() {
				p.addDiag(diag.CodeMissingType, p.offsetOf(rhsTok),
					"expected a type after 'as'",
					"expected int, float, bool, text, or a type name", "")
				return nil
			}
			p.advance()
			lhs = &ast.Cons{Operator: cur, Operands: []ast.Expression{lhs, &ast.Atom{Token: rhsTok}}}

		default:
			rhs := p.requireOperand(rbp)
			if rhs == nil {
				return nil
			}
			lhs = &ast.Cons{Operator: cur, Operands: []ast.Expression{lhs, rhs}}
		}
	}
}

// parsePrimary parses a prefix-minus expression, a parenthesized expression,
// or a bare literal/identifier atom.
func (p *Parser) parsePrimary() ast.Expression {
	cur := p.current()

	switch cur.Kind {
	case token.Minus:
		p.advance()
		operand := p.requireOperand(prefixMinusBP)
		if operand == nil {
			return nil
		}
		return &ast.Cons{Operator: cur, Operands: []ast.Expression{operand}}

	case token.LParn:
		p.advance()
		inner := p.parseExpression(0)
		if inner == nil {
			return nil
		}
		if _, ok := p.consume(token.RParn); !ok {
			return nil
		}
		return inner

	case token.NumLit, token.FloatLit, token.BoolLit, token.Ident:
		p.advance()
		return &ast.Atom{Token: cur}

	default:
		p.addDiag(diag.CodeUnexpectedToken, p.offsetOf(cur),
			"expected an expression",
			"expected a literal, identifier, '-', or '('", "")
		return nil
	}
}
