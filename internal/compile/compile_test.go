package compile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/azalea-lang/azalea/internal/ast"
	"github.com/azalea-lang/azalea/internal/compile"
)

func TestCompile_SimpleFunctionSucceeds(t *testing.T) {
	src := "add :: (int, int) -> int add x y = { x + y }"
	prog, tbl, diags, err := compile.Compile([]byte(src), "main.az", compile.Options{})
	require.NoErrorf(t, err, "diags: %+v", diags)
	require.Len(t, prog.Declarations, 1)
	require.NotZero(t, tbl.Len(), "expected the symbol table to record the function")
}

func TestCompile_BadCharacterFailsAtPreprocessStage(t *testing.T) {
	_, _, diags, err := compile.Compile([]byte("let x <- \x01;"), "main.az", compile.Options{})
	require.Error(t, err)
	require.NotEmpty(t, diags)
	require.Equal(t, "bad-character", string(diags[0].Code))
}

func TestCompile_InvalidIdentFailsAtLexStage(t *testing.T) {
	_, _, diags, err := compile.Compile([]byte("let 1x <- 2;"), "main.az", compile.Options{})
	if err == nil {
		t.Fatal("expected a lexer failure")
	}
	found := false
	for _, d := range diags {
		if d.Code == "invalid-ident" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an invalid-ident diagnostic, got %+v", diags)
	}
}

func TestCompile_DuplicateFunctionFailsAtSymbolStage(t *testing.T) {
	src := "foo :: (int) -> int foo x = { x } foo :: (int) -> int foo x = { x }"
	_, _, _, err := compile.Compile([]byte(src), "main.az", compile.Options{})
	if err == nil {
		t.Fatal("expected a duplicate-definition failure")
	}
}

type mutatorFunc func([]byte) []byte

func (f mutatorFunc) Mutate(src []byte) []byte { return f(src) }

func TestCompile_MutatorRunsBeforePreprocessing(t *testing.T) {
	ran := false
	// The raw input holds a byte the preprocessor rejects; compiling only
	// succeeds if the mutator's clean replacement is what gets preprocessed.
	mut := mutatorFunc(func(src []byte) []byte {
		ran = true
		return []byte("add :: (int) -> int add x = { x }")
	})
	_, _, _, err := compile.Compile([]byte("add :: (int) -> int add x = { \x01 }"), "main.az", compile.Options{Mutator: mut})
	if err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}
	if !ran {
		t.Fatal("expected the mutator to run")
	}
}

var _ compile.ASTSerializer = serializerStub{}

type serializerStub struct{}

func (serializerStub) Serialize(prog *ast.Program) ([]byte, error) { return nil, nil }
