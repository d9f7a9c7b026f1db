// Package symtab implements the Azalea symbol table: an append-only record
// of every declared name the parser encounters, plus the three linear
// duplicate-definition passes run over it afterward.
package symtab

import "github.com/azalea-lang/azalea/internal/token"

// Prim enumerates the primitive scalar types.
type Prim int

const (
	PrimU32 Prim = iota
	PrimF32
	PrimBool
	PrimText
)

// TypeTag is implemented by every SymbolNode.Type variant.
type TypeTag interface{ typeTagNode() }

// TPrim is a primitive scalar type.
type TPrim struct{ Prim Prim }

func (TPrim) typeTagNode() {}

// TStruct marks a symbol as a structure type/value.
type TStruct struct{}

func (TStruct) typeTagNode() {}

// TChoice marks a symbol as a choice type/value.
type TChoice struct{}

func (TChoice) typeTagNode() {}

// TFunc marks a symbol as a function.
type TFunc struct{}

func (TFunc) typeTagNode() {}

// TList is a homogeneous list of a primitive element type.
type TList struct{ Elem Prim }

func (TList) typeTagNode() {}

// TUndetermined marks a symbol whose type hasn't been resolved yet (e.g. a
// var binding with no type hint).
type TUndetermined struct{}

func (TUndetermined) typeTagNode() {}

// Kind enumerates the roles a symbol can play. It is derivable from Type
// but kept mutable: a node may later be refined as more of the declaration
// is parsed.
type Kind int

const (
	KindFuncCall Kind = iota
	KindGlobal
	KindPrimVar
	KindStructVar
	KindListVar
	KindChoiceVar
	KindForLoopIndex
	KindFuncParm
)

// Node is one entry in the symbol table.
type Node struct {
	Name    token.Token
	Type    TypeTag
	Kind    Kind
	Depth   int
	Breadth int
}

// Table is the append-only sequence of declared symbols, built during
// parsing and queried during the duplicate-definition passes.
type Table struct {
	nodes []Node
}

// Append records a new symbol.
func (t *Table) Append(n Node) { t.nodes = append(t.nodes, n) }

// Nodes returns every recorded symbol, in declaration order.
func (t *Table) Nodes() []Node { return t.nodes }

// Len reports how many symbols have been recorded.
func (t *Table) Len() int { return len(t.nodes) }

// Family identifies which of the three duplicate-check passes a symbol
// belongs to.
type Family int

const (
	FamilyFunc Family = iota
	FamilyChoice
	FamilyStruct
)

// DupError reports a duplicate definition found by one of the three passes.
type DupError struct {
	Family Family
	First  token.Token
	Second token.Token
}

func (e *DupError) Error() string {
	return "duplicate definition of " + e.Second.Raw
}

// kindsForFamily maps a Family to the Kind values that belong to it. A
// symbol qualifies for a duplicate pass purely by Kind, matching how the
// parser tags function/choice/struct declarations.
func kindsForFamily(f Family) []Kind {
	switch f {
	case FamilyFunc:
		return []Kind{KindFuncCall}
	case FamilyChoice:
		return []Kind{KindChoiceVar}
	case FamilyStruct:
		return []Kind{KindStructVar}
	}
	return nil
}

func matchesFamily(k Kind, f Family) bool {
	for _, want := range kindsForFamily(f) {
		if k == want {
			return true
		}
	}
	return false
}

// CheckDuplicates runs the linear O(n^2) pass for one family: every pair of
// symbols of that family whose name tokens share raw content is a
// duplicate definition. It stops and reports the first offending pair,
// anchored at the second (later) occurrence.
func (t *Table) CheckDuplicates(f Family) *DupError {
	var family []Node
	for _, n := range t.nodes {
		if matchesFamily(n.Kind, f) {
			family = append(family, n)
		}
	}
	for i := 0; i < len(family); i++ {
		for j := i + 1; j < len(family); j++ {
			if family[i].Name.Raw == family[j].Name.Raw {
				return &DupError{Family: f, First: family[i].Name, Second: family[j].Name}
			}
		}
	}
	return nil
}

// CheckAll runs all three duplicate passes in order (Func, Choice, Struct)
// and returns the first failure encountered, or nil if the table is clean.
func (t *Table) CheckAll() *DupError {
	for _, f := range []Family{FamilyFunc, FamilyChoice, FamilyStruct} {
		if err := t.CheckDuplicates(f); err != nil {
			return err
		}
	}
	return nil
}
