package parser

import (
	"github.com/azalea-lang/azalea/internal/ast"
	"github.com/azalea-lang/azalea/internal/diag"
	"github.com/azalea-lang/azalea/internal/symtab"
	"github.com/azalea-lang/azalea/internal/token"
)

// parseBlock parses `"{" Statement* Expression? "}"`. Statements are
// recognized by their leading keyword, or by `Ident "<-"` (reassignment) and
// `Ident "("` (a bare call statement); anything else begins the optional tail
// expression, which runs directly up to the closing brace with no semicolon.
func (p *Parser) parseBlock() (ast.Block, bool) {
	open, ok := p.consume(token.LBracket)
	if !ok {
		return ast.Block{}, false
	}
	p.enterBlock()
	defer p.exitBlock()

	var stmts []ast.Statement
	for {
		cur := p.current()
		if cur.Kind == token.RBracket {
			break
		}
		if cur.Kind == token.EOF {
			p.addDiag(diag.CodeUnexpectedToken, p.offsetOf(cur),
				"unexpected end of input inside a block", "expected '}'", "")
			return ast.Block{}, false
		}

		stmt, isStmt, ok := p.tryParseStatement(cur)
		if !ok {
			return ast.Block{}, false
		}
		if !isStmt {
			break
		}
		stmts = append(stmts, stmt)
	}

	var tail ast.Expression
	if p.current().Kind != token.RBracket {
		tail = p.parseExpression(0)
		if tail == nil {
			return ast.Block{}, false
		}
	}

	closeTok, ok := p.consume(token.RBracket)
	if !ok {
		return ast.Block{}, false
	}
	return ast.Block{Statements: stmts, TailExpr: tail, OpenBrace: open, CloseBrace: closeTok}, true
}

// tryParseStatement parses one statement if the current token begins one.
// isStmt is false (with ok true) when cur instead begins the block's tail
// expression.
func (p *Parser) tryParseStatement(cur token.Token) (stmt ast.Statement, isStmt, ok bool) {
	switch cur.Kind {
	case token.LetKw:
		s, ok := p.parseVarBindingInit()
		return s, true, ok
	case token.IfKw:
		s, ok := p.parseSelection()
		return s, true, ok
	case token.WhileKw:
		s, ok := p.parseIndefiniteLoop()
		return s, true, ok
	case token.ForKw:
		s, ok := p.parseDefiniteLoop()
		return s, true, ok
	case token.Ident:
		if _, ok := p.optionalPeekNext(token.Assign); ok {
			s, ok := p.parseVarBindingMut()
			return s, true, ok
		}
		if _, ok := p.optionalPeekNext(token.LParn); ok {
			s, ok := p.parseFuncCallStmt()
			return s, true, ok
		}
		return nil, false, true
	default:
		return nil, false, true
	}
}

func typeTagFromHint(hint *token.Token) symtab.TypeTag {
	if hint == nil {
		return symtab.TUndetermined{}
	}
	switch hint.Kind {
	case token.IntTy:
		return symtab.TPrim{Prim: symtab.PrimU32}
	case token.FloatTy:
		return symtab.TPrim{Prim: symtab.PrimF32}
	case token.BoolTy:
		return symtab.TPrim{Prim: symtab.PrimBool}
	case token.TextTy:
		return symtab.TPrim{Prim: symtab.PrimText}
	default:
		return symtab.TUndetermined{}
	}
}

func (p *Parser) parseVarBindingInit() (*ast.VarBindingInit, bool) {
	let, ok := p.consume(token.LetKw)
	if !ok {
		return nil, false
	}
	name, ok := p.consume(token.Ident)
	if !ok {
		return nil, false
	}

	var typeHint *token.Token
	present, t, ok := p.consume2OrNoneType(token.TQualifier, diag.CodeMissingType,
		"expected a type after '::'",
		"expected int, float, bool, text, or a type name", "")
	if !ok {
		return nil, false
	}
	if present {
		typeHint = &t
	}

	if _, ok := p.consume(token.Assign); !ok {
		return nil, false
	}
	rhs, ok := p.parseRValue()
	if !ok {
		return nil, false
	}
	if _, ok := p.consume(token.Semicolon); !ok {
		return nil, false
	}

	p.symtab.Append(symtab.Node{
		Name: name, Type: typeTagFromHint(typeHint), Kind: kindFromRValue(rhs),
		Depth: p.depth, Breadth: p.currentBreadth(),
	})
	return &ast.VarBindingInit{Let: let, Name: name, TypeHint: typeHint, RHS: rhs}, true
}

// kindFromRValue derives a binding's symbol Kind from the shape of its
// parsed right-hand side: a list literal or struct literal carries its own
// distinct Kind, anything else (a plain expression or a function call) is
// an ordinary value binding.
func kindFromRValue(rhs ast.RValue) symtab.Kind {
	switch rhs.(type) {
	case *ast.List:
		return symtab.KindListVar
	case *ast.StructLit:
		return symtab.KindStructVar
	default:
		return symtab.KindPrimVar
	}
}

// parseRValue parses the right-hand side of a var binding: a list literal, a
// struct literal or function call (syntactically identical — disambiguated
// by whether the callee name starts with an uppercase letter, matching the
// convention that struct names are capitalized), or a plain expression. An
// empty RHS (bare ";") is reported as var-bind-missing-rhs.
func (p *Parser) parseRValue() (ast.RValue, bool) {
	cur := p.current()

	if cur.Kind == token.LSBracket {
		p.advance()
		exprs, ok := p.parseExprList(token.RSBracket)
		if !ok {
			return nil, false
		}
		if _, ok := p.consume(token.RSBracket); !ok {
			return nil, false
		}
		return &ast.List{LBracket: cur, Exprs: exprs}, true
	}

	if cur.Kind == token.Ident {
		if _, ok := p.optionalPeekNext(token.LParn); ok {
			name := cur
			p.advance()
			p.advance()
			exprs, ok := p.parseExprList(token.RParn)
			if !ok {
				return nil, false
			}
			if _, ok := p.consume(token.RParn); !ok {
				return nil, false
			}
			if isUpperLeading(name.Raw) {
				return &ast.StructLit{Name: name, Exprs: exprs}, true
			}
			return &ast.RValueCall{Name: name, Exprs: exprs}, true
		}
	}

	if cur.Kind == token.Semicolon {
		p.addDiag(diag.CodeVarBindMissingRHS, p.offsetOf(cur),
			"variable binding is missing its right-hand side",
			"expected an expression before ';'", "")
		return &ast.Expr{}, true
	}

	expr := p.parseExpression(0)
	if expr == nil {
		return nil, false
	}
	return &ast.Expr{ExprVal: expr}, true
}

func isUpperLeading(s string) bool {
	return len(s) > 0 && s[0] >= 'A' && s[0] <= 'Z'
}

func (p *Parser) parseVarBindingMut() (*ast.VarBindingMut, bool) {
	name, ok := p.consume(token.Ident)
	if !ok {
		return nil, false
	}
	if _, ok := p.consume(token.Assign); !ok {
		return nil, false
	}
	expr := p.parseExpression(0)
	if expr == nil {
		return nil, false
	}
	if _, ok := p.consume(token.Semicolon); !ok {
		return nil, false
	}
	return &ast.VarBindingMut{Name: name, Expr: expr}, true
}

// parseSelection parses `"if" Expr Block ("elif" Expr Block)? ("else" Block)?`.
// An "elif" encountered after "else" has already been parsed is a parse
// error: the grammar only reserves one elif slot,
// and it must precede any else.
func (p *Parser) parseSelection() (*ast.Selection, bool) {
	ifTok, ok := p.consume(token.IfKw)
	if !ok {
		return nil, false
	}
	ifExpr := p.requireCondition("if")
	if ifExpr == nil {
		return nil, false
	}
	ifBlock, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	sel := &ast.Selection{If: ast.IfComp{If: ifTok, Expr: ifExpr, Block: ifBlock}}

	if _, ok := p.optionalPeek(token.ElifKw); ok {
		elifTok := p.current()
		p.advance()
		elifExpr := p.requireCondition("elif")
		if elifExpr == nil {
			return nil, false
		}
		elifBlock, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		sel.Elif = &ast.ElifComp{Elif: elifTok, Expr: elifExpr, Block: elifBlock}
	}

	if _, ok := p.optionalPeek(token.ElseKw); ok {
		elseTok := p.current()
		p.advance()
		elseBlock, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		sel.Else = &ast.ElseComp{Else: elseTok, Block: elseBlock}
	}

	if _, ok := p.optionalPeek(token.ElifKw); ok {
		cur := p.current()
		p.addDiag(diag.CodeUnexpectedToken, p.offsetOf(cur),
			"'elif' cannot follow 'else'",
			"move this 'elif' before the 'else' branch, or remove it", "")
		return nil, false
	}

	return sel, true
}

func (p *Parser) parseIndefiniteLoop() (*ast.IndefiniteLoop, bool) {
	whileTok, ok := p.consume(token.WhileKw)
	if !ok {
		return nil, false
	}
	expr := p.requireCondition("while")
	if expr == nil {
		return nil, false
	}
	block, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	return &ast.IndefiniteLoop{While: whileTok, Expr: expr, Block: block}, true
}

func (p *Parser) parseDefiniteLoop() (*ast.DefiniteLoop, bool) {
	forTok, ok := p.consume(token.ForKw)
	if !ok {
		return nil, false
	}
	index, ok := p.consume(token.Ident)
	if !ok {
		return nil, false
	}
	if _, ok := p.consume(token.InKw); !ok {
		return nil, false
	}
	low, ok := p.consume(token.NumLit)
	if !ok {
		return nil, false
	}
	if _, ok := p.consume(token.ExRange); !ok {
		return nil, false
	}
	high, ok := p.consume(token.NumLit)
	if !ok {
		return nil, false
	}

	p.enterBlock()
	p.symtab.Append(symtab.Node{
		Name: index, Type: symtab.TPrim{Prim: symtab.PrimU32}, Kind: symtab.KindForLoopIndex,
		Depth: p.depth, Breadth: p.currentBreadth(),
	})
	p.exitBlock()

	block, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	return &ast.DefiniteLoop{For: forTok, Index: index, Low: low, High: high, Block: block}, true
}

func (p *Parser) parseFuncCallStmt() (*ast.FuncCall, bool) {
	name, ok := p.consume(token.Ident)
	if !ok {
		return nil, false
	}
	if _, ok := p.consume(token.LParn); !ok {
		return nil, false
	}
	args, ok := p.parseExprList(token.RParn)
	if !ok {
		return nil, false
	}
	if _, ok := p.consume(token.RParn); !ok {
		return nil, false
	}
	if _, ok := p.consume(token.Semicolon); !ok {
		return nil, false
	}
	return &ast.FuncCall{Name: name, Args: args}, true
}
