package parser

import (
	"github.com/azalea-lang/azalea/internal/ast"
	"github.com/azalea-lang/azalea/internal/diag"
	"github.com/azalea-lang/azalea/internal/token"
)

// checkSeparator inspects the token following one successfully parsed list
// item: a Sep advances past it (recording a missing-comma diagnostic if it's
// immediately followed by the closer, a stray trailing comma); anything else
// but the closer itself is a missing comma. Neither case aborts the
// surrounding list.
func (p *Parser) checkSeparator(closer token.Kind) {
	switch p.current().Kind {
	case token.Sep:
		p.advance()
		if p.current().Kind == closer {
			cur := p.current()
			p.addDiag(diag.CodeMissingComma, p.offsetOf(cur),
				"stray trailing comma", "remove the trailing comma before the closing delimiter", "")
		}
	case closer:
		// fine — loop terminates next iteration
	default:
		cur := p.current()
		p.addDiag(diag.CodeMissingComma, p.offsetOf(cur),
			"missing comma", "expected ',' between list items", "")
	}
}

// parseTypeList parses a comma-separated list of type tokens, up to (not
// including) the next RParn.
func (p *Parser) parseTypeList() ([]token.Token, bool) {
	var out []token.Token
	for p.current().Kind != token.RParn && p.current().Kind != token.EOF {
		t, ok := p.parseTypeToken()
		if !ok {
			return nil, false
		}
		out = append(out, t)
		if p.current().Kind == token.RParn {
			break
		}
		p.checkSeparator(token.RParn)
	}
	return out, true
}

// parseIdentList parses a comma-separated list of bare identifiers, up to
// (not including) the next RBracket.
func (p *Parser) parseIdentList() ([]token.Token, bool) {
	var out []token.Token
	for p.current().Kind != token.RBracket && p.current().Kind != token.EOF {
		t, ok := p.consume(token.Ident)
		if !ok {
			return nil, false
		}
		out = append(out, t)
		if p.current().Kind == token.RBracket {
			break
		}
		p.checkSeparator(token.RBracket)
	}
	return out, true
}

// parseTypedFieldList parses a comma-separated list of `Name "::" Type`
// pairs, up to (not including) the next RBracket.
func (p *Parser) parseTypedFieldList() ([]ast.TypedField, bool) {
	var out []ast.TypedField
	for p.current().Kind != token.RBracket && p.current().Kind != token.EOF {
		name, ok := p.consume(token.Ident)
		if !ok {
			return nil, false
		}
		if _, ok := p.consume(token.TQualifier); !ok {
			return nil, false
		}
		ty, ok := p.parseTypeToken()
		if !ok {
			return nil, false
		}
		out = append(out, ast.TypedField{Name: name, Type: ty})
		if p.current().Kind == token.RBracket {
			break
		}
		p.checkSeparator(token.RBracket)
	}
	return out, true
}

// parseExprList parses a comma-separated list of expressions, up to (not
// including) the given closer.
func (p *Parser) parseExprList(closer token.Kind) ([]ast.Expression, bool) {
	var out []ast.Expression
	for p.current().Kind != closer && p.current().Kind != token.EOF {
		expr := p.parseExpression(0)
		if expr == nil {
			return nil, false
		}
		out = append(out, expr)
		if p.current().Kind == closer {
			break
		}
		p.checkSeparator(closer)
	}
	return out, true
}
