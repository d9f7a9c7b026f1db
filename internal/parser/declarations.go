package parser

import (
	"github.com/azalea-lang/azalea/internal/ast"
	"github.com/azalea-lang/azalea/internal/diag"
	"github.com/azalea-lang/azalea/internal/symtab"
	"github.com/azalea-lang/azalea/internal/token"
)

var declNameKinds = []token.Kind{token.Ident, token.MainKw}

// parseDeclaration dispatches on the three-token prefix `Ident "::" (...)`
// a declaration name, the "::" qualifier, then one of
// StructKw, ChoiceKw, or LParn decides which sub-rule parses the rest. The
// lookahead here is non-consuming, so there is nothing to rewind before
// handing off to the chosen sub-parser.
func (p *Parser) parseDeclaration() (ast.Declaration, bool) {
	if _, ok := p.optionalPeek(declNameKinds...); !ok {
		cur := p.current()
		p.addDiag(diag.CodeUnexpectedToken, p.offsetOf(cur),
			"expected a declaration",
			"expected an identifier or 'main' to begin a declaration", "")
		return nil, false
	}

	third := p.peekAt(2)
	switch third.Kind {
	case token.StructKw:
		return p.parseStructDecl()
	case token.ChoiceKw:
		return p.parseChoiceDecl()
	case token.LParn:
		return p.parseFuncDecl()
	default:
		p.addDiag(diag.CodeUnexpectedToken, p.offsetOf(third),
			"expected 'structure', 'choice', or '(' after '::'",
			"unrecognized declaration form", "")
		return nil, false
	}
}

func (p *Parser) parseTypeToken() (token.Token, bool) {
	t := p.current()
	if !t.IsType() {
		p.addDiag(diag.CodeMissingType, p.offsetOf(t),
			"expected a type",
			"expected int, float, bool, text, or a type name", "")
		return token.Token{}, false
	}
	p.advance()
	return t, true
}

func (p *Parser) parseStructDecl() (*ast.Struct, bool) {
	name, ok := p.consume(declNameKinds...)
	if !ok {
		return nil, false
	}
	if _, ok := p.consume(token.TQualifier); !ok {
		return nil, false
	}
	if _, ok := p.consume(token.StructKw); !ok {
		return nil, false
	}
	if _, ok := p.consume(token.LBracket); !ok {
		return nil, false
	}

	var fields []ast.TypedField
	if p.current().Kind != token.RBracket {
		fields, ok = p.parseTypedFieldList()
		if !ok {
			return nil, false
		}
	}
	if _, ok := p.consume(token.RBracket); !ok {
		return nil, false
	}

	p.symtab.Append(symtab.Node{
		Name: name, Type: symtab.TStruct{}, Kind: symtab.KindStructVar,
		Depth: p.depth, Breadth: p.currentBreadth(),
	})
	return &ast.Struct{Name: name, TypedFields: fields}, true
}

func (p *Parser) parseChoiceDecl() (*ast.Choice, bool) {
	name, ok := p.consume(declNameKinds...)
	if !ok {
		return nil, false
	}
	if _, ok := p.consume(token.TQualifier); !ok {
		return nil, false
	}
	if _, ok := p.consume(token.ChoiceKw); !ok {
		return nil, false
	}
	if _, ok := p.consume(token.LBracket); !ok {
		return nil, false
	}

	var variants []token.Token
	if p.current().Kind != token.RBracket {
		variants, ok = p.parseIdentList()
		if !ok {
			return nil, false
		}
	}
	if _, ok := p.consume(token.RBracket); !ok {
		return nil, false
	}

	p.symtab.Append(symtab.Node{
		Name: name, Type: symtab.TChoice{}, Kind: symtab.KindChoiceVar,
		Depth: p.depth, Breadth: p.currentBreadth(),
	})
	return &ast.Choice{Name: name, Variants: variants}, true
}

// parseFuncDecl parses `Name "::" "(" TypeList? ")" ("->" Type)? Name Ident* "=" Block`.
// The second Name (FuncDefinition.Name) must echo the signature's name.
func (p *Parser) parseFuncDecl() (*ast.Function, bool) {
	sigName, ok := p.consume(declNameKinds...)
	if !ok {
		return nil, false
	}
	if _, ok := p.consume(token.TQualifier); !ok {
		return nil, false
	}
	if _, ok := p.consume(token.LParn); !ok {
		return nil, false
	}

	var paramTypes []token.Token
	if p.current().Kind != token.RParn {
		paramTypes, ok = p.parseTypeList()
		if !ok {
			return nil, false
		}
	}
	if _, ok := p.consume(token.RParn); !ok {
		return nil, false
	}

	var retType *token.Token
	present, t, ok := p.consume2OrNoneType(token.RetArrow, diag.CodeMissingType,
		"expected a return type after '->'",
		"expected int, float, bool, text, or a type name", "")
	if !ok {
		return nil, false
	}
	if present {
		retType = &t
	}

	defName, ok := p.consume(declNameKinds...)
	if !ok {
		return nil, false
	}
	if defName.Raw != sigName.Raw {
		p.addDiag(diag.CodeUnexpectedToken, p.offsetOf(defName),
			"function definition name does not match its signature",
			"expected "+sigName.Raw, "")
		return nil, false
	}

	var params []token.Token
	for p.current().Kind == token.Ident {
		params = append(params, p.current())
		p.advance()
	}

	if _, ok := p.consume(token.FnDef); !ok {
		return nil, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}

	p.symtab.Append(symtab.Node{
		Name: sigName, Type: symtab.TFunc{}, Kind: symtab.KindFuncCall,
		Depth: 0, Breadth: len(paramTypes),
	})
	for _, parm := range params {
		p.symtab.Append(symtab.Node{
			Name: parm, Type: symtab.TUndetermined{}, Kind: symtab.KindFuncParm,
			Depth: 0, Breadth: len(paramTypes),
		})
	}

	return &ast.Function{
		Signature:  ast.FuncSignature{Name: sigName, ParamTypes: paramTypes, ReturnType: retType},
		Definition: ast.FuncDefinition{Name: defName, Params: params, Body: body},
	}, true
}
