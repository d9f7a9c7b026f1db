//go:build serialize

// Package astjson implements the optional AST JSON dump build feature: each
// node is rendered as an object tagged by its variant name; token fields
// are rendered as their raw content; span, kind, offset, and reserved
// fields are omitted.
package astjson

import (
	"encoding/json"

	"github.com/azalea-lang/azalea/internal/ast"
	"github.com/azalea-lang/azalea/internal/token"
)

// Serializer implements compile.ASTSerializer via encoding/json.
type Serializer struct{}

// Serialize renders prog as pretty-printed JSON.
func (Serializer) Serialize(prog *ast.Program) ([]byte, error) {
	return json.MarshalIndent(program(prog), "", "  ")
}

func program(p *ast.Program) map[string]any {
	decls := make([]any, len(p.Declarations))
	for i, d := range p.Declarations {
		decls[i] = declaration(d)
	}
	return map[string]any{"Program": map[string]any{"Declarations": decls}}
}

func declaration(d ast.Declaration) map[string]any {
	switch v := d.(type) {
	case *ast.Function:
		return map[string]any{"Function": map[string]any{
			"Signature":  funcSignature(v.Signature),
			"Definition": funcDefinition(v.Definition),
		}}
	case *ast.Choice:
		return map[string]any{"Choice": map[string]any{
			"Name":     v.Name.Raw,
			"Variants": tokenRaws(v.Variants),
		}}
	case *ast.Struct:
		fields := make([]any, len(v.TypedFields))
		for i, f := range v.TypedFields {
			fields[i] = map[string]any{"Name": f.Name.Raw, "Type": f.Type.Raw}
		}
		return map[string]any{"Struct": map[string]any{
			"Name":        v.Name.Raw,
			"TypedFields": fields,
		}}
	default:
		return map[string]any{"Unknown": nil}
	}
}

func funcSignature(s ast.FuncSignature) map[string]any {
	out := map[string]any{
		"Name":       s.Name.Raw,
		"ParamTypes": tokenRaws(s.ParamTypes),
	}
	if s.ReturnType != nil {
		out["ReturnType"] = s.ReturnType.Raw
	}
	return out
}

func funcDefinition(d ast.FuncDefinition) map[string]any {
	return map[string]any{
		"Name":   d.Name.Raw,
		"Params": tokenRaws(d.Params),
		"Body":   block(d.Body),
	}
}

func block(b ast.Block) map[string]any {
	stmts := make([]any, len(b.Statements))
	for i, s := range b.Statements {
		stmts[i] = statement(s)
	}
	out := map[string]any{"Statements": stmts}
	if b.TailExpr != nil {
		out["TailExpr"] = expression(b.TailExpr)
	}
	return out
}

func statement(s ast.Statement) map[string]any {
	switch v := s.(type) {
	case *ast.VarBindingInit:
		out := map[string]any{"Name": v.Name.Raw, "RHS": rvalue(v.RHS)}
		if v.TypeHint != nil {
			out["TypeHint"] = v.TypeHint.Raw
		}
		return map[string]any{"VarBindingInit": out}
	case *ast.VarBindingMut:
		return map[string]any{"VarBindingMut": map[string]any{
			"Name": v.Name.Raw, "Expr": expression(v.Expr),
		}}
	case *ast.Selection:
		out := map[string]any{"If": ifComp(v.If)}
		if v.Elif != nil {
			out["Elif"] = elifComp(*v.Elif)
		}
		if v.Else != nil {
			out["Else"] = elseComp(*v.Else)
		}
		return map[string]any{"Selection": out}
	case *ast.IndefiniteLoop:
		return map[string]any{"IndefiniteLoop": map[string]any{
			"Expr": expression(v.Expr), "Block": block(v.Block),
		}}
	case *ast.DefiniteLoop:
		return map[string]any{"DefiniteLoop": map[string]any{
			"Index": v.Index.Raw, "Low": v.Low.Raw, "High": v.High.Raw, "Block": block(v.Block),
		}}
	case *ast.FuncCall:
		return map[string]any{"FuncCall": map[string]any{
			"Name": v.Name.Raw, "Args": expressions(v.Args),
		}}
	default:
		return map[string]any{"Unknown": nil}
	}
}

func ifComp(c ast.IfComp) map[string]any {
	return map[string]any{"Expr": expression(c.Expr), "Block": block(c.Block)}
}

func elifComp(c ast.ElifComp) map[string]any {
	return map[string]any{"Expr": expression(c.Expr), "Block": block(c.Block)}
}

func elseComp(c ast.ElseComp) map[string]any {
	return map[string]any{"Block": block(c.Block)}
}

func rvalue(r ast.RValue) map[string]any {
	switch v := r.(type) {
	case *ast.Expr:
		if v.ExprVal == nil {
			return map[string]any{"Expr": nil}
		}
		return map[string]any{"Expr": expression(v.ExprVal)}
	case *ast.List:
		return map[string]any{"List": expressions(v.Exprs)}
	case *ast.StructLit:
		return map[string]any{"Struct": map[string]any{"Name": v.Name.Raw, "Exprs": expressions(v.Exprs)}}
	case *ast.RValueCall:
		return map[string]any{"FuncCall": map[string]any{"Name": v.Name.Raw, "Exprs": expressions(v.Exprs)}}
	default:
		return map[string]any{"Unknown": nil}
	}
}

func expression(e ast.Expression) map[string]any {
	switch v := e.(type) {
	case *ast.Atom:
		return map[string]any{"Atom": v.Token.Raw}
	case *ast.Cons:
		return map[string]any{"Cons": map[string]any{
			"Operator": v.Operator.Raw,
			"Operands": expressions(v.Operands),
		}}
	default:
		return map[string]any{"Unknown": nil}
	}
}

func expressions(es []ast.Expression) []any {
	out := make([]any, len(es))
	for i, e := range es {
		out[i] = expression(e)
	}
	return out
}

func tokenRaws(ts []token.Token) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Raw
	}
	return out
}
