// Package parser implements the Azalea recursive-descent parser: Pratt-style
// expression parsing driven by a binding-power table, declaration dispatch by
// three-token lookahead, and symbol-table emission as definitions and
// bindings are recognized.
package parser

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/azalea-lang/azalea/internal/ast"
	"github.com/azalea-lang/azalea/internal/diag"
	"github.com/azalea-lang/azalea/internal/symtab"
	"github.com/azalea-lang/azalea/internal/token"
)

// ParseFail is returned the moment any consume-style primitive fails; the
// parser does not attempt error recovery or synchronization.
type ParseFail struct {
	Path string
}

func (e *ParseFail) Error() string {
	return fmt.Sprintf("parser: failed on %q", e.Path)
}

// Parser consumes a token stream produced by internal/lexer and builds a
// Program plus a symbol table. The cursor is a single position counter,
// advanced with saturating arithmetic so it never runs outside [0, len(tokens)].
type Parser struct {
	tokens []token.Token
	src    string
	path   string
	pos    int

	symtab symtab.Table
	diags  []diag.Diagnostic

	depth     int
	breadthAt map[int]int
}

// New constructs a Parser over a lexed token stream. src is the cleaned
// source the tokens were scanned from, used only to render diagnostics.
func New(tokens []token.Token, src, path string) *Parser {
	return &Parser{
		tokens:    tokens,
		src:       src,
		path:      path,
		breadthAt: make(map[int]int),
	}
}

// Diagnostics returns every diagnostic recorded while parsing.
func (p *Parser) Diagnostics() []diag.Diagnostic { return p.diags }

// SymbolTable returns the symbol table populated while parsing.
func (p *Parser) SymbolTable() *symtab.Table { return &p.symtab }

// Parse parses the full token stream into a Program.
func (p *Parser) Parse() (*ast.Program, error) {
	prog := &ast.Program{}
	for p.current().Kind != token.EOF {
		decl, ok := p.parseDeclaration()
		if !ok {
			return prog, errors.WithStack(&ParseFail{Path: p.path})
		}
		prog.Declarations = append(prog.Declarations, decl)
	}
	return prog, nil
}

// --- cursor primitives -----------------------------------------------------

// current returns the token at the cursor without advancing. Reading past
// the end of the stream returns the trailing EOF token, the saturating
// behavior the cursor invariant requires.
func (p *Parser) current() token.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

// peekAt returns the token n slots ahead of the cursor, saturating at the
// final (EOF) token.
func (p *Parser) peekAt(n int) token.Token {
	i := p.pos + n
	if i < 0 {
		i = 0
	}
	if i >= len(p.tokens) {
		i = len(p.tokens) - 1
	}
	return p.tokens[i]
}

func (p *Parser) advance() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
}

func (p *Parser) offsetOf(t token.Token) int { return t.Offset }

func (p *Parser) addDiag(code diag.Code, offset int, title, label, note string) {
	p.diags = append(p.diags, diag.New(code, offset, title, label, note, p.src).WithPath(p.path))
}

func oneOf(k token.Kind, kinds []token.Kind) bool {
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

func kindList(kinds []token.Kind) string {
	s := ""
	for i, k := range kinds {
		if i > 0 {
			s += " or "
		}
		s += string(k)
	}
	return s
}

// peek returns the current token if its kind is in kinds; otherwise it
// records an unexpected-token diagnostic and reports failure.
func (p *Parser) peek(kinds ...token.Kind) (token.Token, bool) {
	cur := p.current()
	if oneOf(cur.Kind, kinds) {
		return cur, true
	}
	p.addDiag(diag.CodeUnexpectedToken, p.offsetOf(cur),
		fmt.Sprintf("unexpected token %q", cur.Raw),
		fmt.Sprintf("expected %s", kindList(kinds)), "")
	return token.Token{}, false
}

// optionalPeek is peek without the diagnostic: it reports a plain boolean
// miss, used for lookahead-driven dispatch.
func (p *Parser) optionalPeek(kinds ...token.Kind) (token.Token, bool) {
	cur := p.current()
	if oneOf(cur.Kind, kinds) {
		return cur, true
	}
	return token.Token{}, false
}

// optionalPeekNext is optionalPeek one token ahead of the cursor.
func (p *Parser) optionalPeekNext(kinds ...token.Kind) (token.Token, bool) {
	nxt := p.peekAt(1)
	if oneOf(nxt.Kind, kinds) {
		return nxt, true
	}
	return token.Token{}, false
}

// consume is peek followed by an advance on success.
func (p *Parser) consume(kinds ...token.Kind) (token.Token, bool) {
	t, ok := p.peek(kinds...)
	if !ok {
		return token.Token{}, false
	}
	p.advance()
	return t, true
}

// consume2OrNone consumes a and b in sequence, or neither: a partial match
// (a present, b absent) is an error anchored at the token actually found,
// reported under failCode. present is false when a itself was absent (not
// an error — the whole optional construct was simply omitted).
func (p *Parser) consume2OrNone(a, b token.Kind, failCode diag.Code, title, label, note string) (present bool, first, second token.Token, ok bool) {
	first, hit := p.optionalPeek(a)
	if !hit {
		return false, token.Token{}, token.Token{}, true
	}
	p.advance()
	second, hit = p.optionalPeek(b)
	if !hit {
		cur := p.current()
		p.addDiag(failCode, p.offsetOf(cur), title, label, note)
		return true, first, token.Token{}, false
	}
	p.advance()
	return true, first, second, true
}

// consume2OrNoneType is consume2OrNone specialized for an "a followed by a
// type token" pair (the type-qualifier and return-arrow sites all share this
// shape): a is a fixed kind, b is any token satisfying Token.IsType.
func (p *Parser) consume2OrNoneType(a token.Kind, failCode diag.Code, title, label, note string) (present bool, second token.Token, ok bool) {
	_, hit := p.optionalPeek(a)
	if !hit {
		return false, token.Token{}, true
	}
	p.advance()
	t := p.current()
	if !t.IsType() {
		p.addDiag(failCode, p.offsetOf(t), title, label, note)
		return true, token.Token{}, false
	}
	p.advance()
	return true, t, true
}

// --- scope bookkeeping ------------------------------------------------------

func (p *Parser) enterBlock() {
	p.depth++
	p.breadthAt[p.depth]++
}

func (p *Parser) exitBlock() { p.depth-- }

func (p *Parser) currentBreadth() int { return p.breadthAt[p.depth] }
