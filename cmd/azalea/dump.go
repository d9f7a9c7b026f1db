package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/azalea-lang/azalea/internal/ast"
)

// dumpProgram writes a colorized, indented walk of prog to cmd's stdout for
// --verbose-parse. It is a debugging aid, not the "serialize" build
// feature's JSON output (internal/astjson), which has its own schema.
func dumpProgram(cmd *cobra.Command, prog *ast.Program) {
	var b strings.Builder
	for i, d := range prog.Declarations {
		dumpDeclaration(&b, 0, d)
		if i < len(prog.Declarations)-1 {
			b.WriteByte('\n')
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), color.CyanString("%s", b.String()))
}

func indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}

func dumpDeclaration(b *strings.Builder, depth int, d ast.Declaration) {
	indent(b, depth)
	switch v := d.(type) {
	case *ast.Function:
		fmt.Fprintf(b, "Function %s\n", v.Signature.Name.Raw)
		dumpBlock(b, depth+1, v.Definition.Body)
	case *ast.Choice:
		fmt.Fprintf(b, "Choice %s (%d variants)\n", v.Name.Raw, len(v.Variants))
	case *ast.Struct:
		fmt.Fprintf(b, "Struct %s (%d fields)\n", v.Name.Raw, len(v.TypedFields))
	}
}

func dumpBlock(b *strings.Builder, depth int, blk ast.Block) {
	for _, s := range blk.Statements {
		dumpStatement(b, depth, s)
	}
	if blk.TailExpr != nil {
		indent(b, depth)
		fmt.Fprintf(b, "tail: %s\n", dumpExpr(blk.TailExpr))
	}
}

func dumpStatement(b *strings.Builder, depth int, s ast.Statement) {
	indent(b, depth)
	switch v := s.(type) {
	case *ast.VarBindingInit:
		fmt.Fprintf(b, "let %s = %s\n", v.Name.Raw, dumpRValue(v.RHS))
	case *ast.VarBindingMut:
		fmt.Fprintf(b, "%s <- %s\n", v.Name.Raw, dumpExpr(v.Expr))
	case *ast.Selection:
		fmt.Fprintf(b, "if %s\n", dumpExpr(v.If.Expr))
		dumpBlock(b, depth+1, v.If.Block)
	case *ast.IndefiniteLoop:
		fmt.Fprintf(b, "while %s\n", dumpExpr(v.Expr))
		dumpBlock(b, depth+1, v.Block)
	case *ast.DefiniteLoop:
		fmt.Fprintf(b, "for %s in %s..%s\n", v.Index.Raw, v.Low.Raw, v.High.Raw)
		dumpBlock(b, depth+1, v.Block)
	case *ast.FuncCall:
		fmt.Fprintf(b, "%s(...)\n", v.Name.Raw)
	}
}

func dumpRValue(r ast.RValue) string {
	switch v := r.(type) {
	case *ast.Expr:
		if v.ExprVal == nil {
			return "<missing>"
		}
		return dumpExpr(v.ExprVal)
	case *ast.List:
		return fmt.Sprintf("[%d items]", len(v.Exprs))
	case *ast.StructLit:
		return fmt.Sprintf("%s(...)", v.Name.Raw)
	case *ast.RValueCall:
		return fmt.Sprintf("%s(...)", v.Name.Raw)
	default:
		return "?"
	}
}

func dumpExpr(e ast.Expression) string {
	switch v := e.(type) {
	case *ast.Atom:
		return v.Token.Raw
	case *ast.Cons:
		parts := make([]string, len(v.Operands))
		for i, o := range v.Operands {
			parts[i] = dumpExpr(o)
		}
		return fmt.Sprintf("(%s %s)", v.Operator.Raw, strings.Join(parts, " "))
	default:
		return "?"
	}
}
