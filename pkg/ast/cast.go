package ast

// Cast asserts that e has the given kind and returns e unchanged,
// panicking otherwise. It is the Go analog of the original's
// expression_cast<Kind>(expr): a debug-only narrowing operation that
// exists to document an assumption at a call site, not to perform any
// actual conversion (§4.2.3) — unlike a type assertion on an interface,
// there's no representation change here, since every kind already shares
// the same *Expression type.
func Cast(e *Expression, kind Kind) *Expression {
	if e.kind != kind {
		unexpectedKind("Cast", e.kind)
	}
	return e
}
