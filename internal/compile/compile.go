// Package compile wires the Preprocessor, Lexer, Parser, and duplicate-symbol
// passes behind a single entry point, and declares the interfaces external
// collaborators (the CLI driver, the AST JSON writer, the fuzz mutator)
// implement without the core packages depending on them directly.
package compile

import (
	"github.com/azalea-lang/azalea/internal/ast"
	"github.com/azalea-lang/azalea/internal/diag"
	"github.com/azalea-lang/azalea/internal/lexer"
	"github.com/azalea-lang/azalea/internal/parser"
	"github.com/azalea-lang/azalea/internal/preprocess"
	"github.com/azalea-lang/azalea/internal/symtab"
)

// SourceLoader reads the raw source for a compile unit. Implemented by the
// CLI driver (os.ReadFile in cmd/azalea); core packages never touch the
// filesystem directly.
type SourceLoader interface {
	Load(path string) ([]byte, error)
}

// ASTSerializer renders a parsed Program for external consumption — the
// optional "serialize" build feature. internal/astjson provides the
// concrete implementation.
type ASTSerializer interface {
	Serialize(prog *ast.Program) ([]byte, error)
}

// InputMutator pre-mutates raw source bytes before preprocessing — the
// optional "fuzz" build feature. internal/fuzz provides the concrete
// xorshift32 implementation.
type InputMutator interface {
	Mutate(src []byte) []byte
}

// Options configures a Compile call.
type Options struct {
	// Mutator, if non-nil, runs over raw before preprocessing (the "fuzz"
	// build feature wires this in; the default build leaves it nil).
	Mutator InputMutator
}

// Compile runs the full front-end pipeline: optional fuzz mutation, then
// Preprocessor -> Lexer -> Parser -> duplicate-symbol checks. It returns as
// much of the Program and SymbolTable as were built before the failure, so a
// caller running in verbose mode can still dump partial state.
func Compile(raw []byte, path string, opts Options) (*ast.Program, *symtab.Table, []diag.Diagnostic, error) {
	if opts.Mutator != nil {
		raw = opts.Mutator.Mutate(raw)
	}

	pp := preprocess.New(string(raw), path)
	pp, err := pp.NormalizeToASCII()
	if err != nil {
		return nil, nil, pp.Diagnostics(), err
	}
	pp, err = pp.RemoveMultiLineComments()
	if err != nil {
		return nil, nil, pp.Diagnostics(), err
	}
	pp, err = pp.RemoveSingleLineComments()
	if err != nil {
		return nil, nil, pp.Diagnostics(), err
	}
	cleaned := pp.Cleaned()

	lx := lexer.New(cleaned, path)
	toks, err := lx.Lex()
	if err != nil {
		return nil, nil, lx.Diagnostics(), err
	}

	p := parser.New(toks, cleaned, path)
	prog, err := p.Parse()
	if err != nil {
		return prog, p.SymbolTable(), p.Diagnostics(), err
	}

	if dup := p.SymbolTable().CheckAll(); dup != nil {
		return prog, p.SymbolTable(), p.Diagnostics(), dup
	}

	return prog, p.SymbolTable(), p.Diagnostics(), nil
}
