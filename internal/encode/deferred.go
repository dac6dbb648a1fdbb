package encode

import "mvconfig-generator/internal/schema"

// DeferredExpr is a value left for the C compiler to evaluate: the number
// of elements in an array pattern, computed from its storage size.
type DeferredExpr struct {
	Symbol string
	Struct string
}

// Count returns the element count expression for target.
func Count(target *schema.Pattern) DeferredExpr {
	return DeferredExpr{Symbol: target.SymbolName, Struct: target.StructName}
}

func (d DeferredExpr) String() string {
	return "sizeof(" + d.Symbol + ") / sizeof(struct " + d.Struct + ")"
}
