package ast

import "fmt"

// This file holds one constructor per kind in the closed enumeration.
// Each allocates a node from the given Arena, fills in exactly the fields
// its kind uses (see expression.go's field-by-field doc comments), and
// asserts the invariants from §3.2.4 that the type system can't express
// on its own. A constructor never returns an error: malformed input here
// is a caller bug (a parser/decoder contract violation), not a recoverable
// condition, so these panic the same way the kind-specific accessors do.

func (a *Arena) NewClass(span Span) *Expression {
	e := a.alloc()
	e.kind = KindClass
	e.span = span
	return e
}

func (a *Arena) NewInvalidExpr(span Span) *Expression {
	e := a.alloc()
	e.kind = KindInvalidExpr
	e.span = span
	return e
}

func (a *Arena) NewMissing(span Span) *Expression {
	e := a.alloc()
	e.kind = KindMissing
	e.span = span
	return e
}

func (a *Arena) NewNew(span Span, children []*Expression) *Expression {
	e := a.alloc()
	e.kind = KindNew
	e.span = span
	e.children = MakeArray(a, children)
	return e
}

func (a *Arena) NewTemplate(span Span, children []*Expression) *Expression {
	e := a.alloc()
	e.kind = KindTemplate
	e.span = span
	e.children = MakeArray(a, children)
	return e
}

func (a *Arena) NewTypeof(operatorBegin int, child *Expression) *Expression {
	e := a.alloc()
	e.kind = KindTypeof
	e.operatorBegin = operatorBegin
	e.single[0] = child
	return e
}

func (a *Arena) NewArray(span Span, children []*Expression) *Expression {
	e := a.alloc()
	e.kind = KindArray
	e.span = span
	e.children = MakeArray(a, children)
	return e
}

// NewArrowFunction constructs an arrow function whose span must be derived
// from its parameter list's opening position (e.g. "(x) => x").
func (a *Arena) NewArrowFunction(children []*Expression, attrs FunctionAttributes, paramListBegin int, end int) *Expression {
	e := a.alloc()
	e.kind = KindArrowFunction
	e.children = MakeArray(a, children)
	e.attrs = attrs
	e.operatorBegin = paramListBegin
	e.hasParamListBegin = true
	e.end = end
	return e
}

// NewArrowFunctionWithoutParamList constructs an arrow function whose span
// must fall back to its first parameter's span (no parenthesized param
// list, e.g. "x => x"). Requires a non-empty children slice (§3.2.2).
func (a *Arena) NewArrowFunctionWithoutParamList(children []*Expression, attrs FunctionAttributes, end int) *Expression {
	if len(children) == 0 {
		panic("ast: NewArrowFunctionWithoutParamList requires at least one parameter")
	}
	e := a.alloc()
	e.kind = KindArrowFunction
	e.children = MakeArray(a, children)
	e.attrs = attrs
	e.hasParamListBegin = false
	e.end = end
	return e
}

func (a *Arena) NewAngleTypeAssertion(bracketedTypeSpan Span, child *Expression) *Expression {
	e := a.alloc()
	e.kind = KindAngleTypeAssertion
	e.span = bracketedTypeSpan
	e.single[0] = child
	return e
}

func (a *Arena) NewAsTypeAssertion(child *Expression, asBegin int, end int) *Expression {
	e := a.alloc()
	e.kind = KindAsTypeAssertion
	e.single[0] = child
	e.operatorBegin = asBegin
	e.end = end
	return e
}

func (a *Arena) NewAssignment(lhs, rhs *Expression, operatorSpan Span) *Expression {
	e := a.alloc()
	e.kind = KindAssignment
	e.pair[0] = lhs
	e.pair[1] = rhs
	e.operatorSpan = operatorSpan
	return e
}

func (a *Arena) NewAwait(operatorBegin int, child *Expression) *Expression {
	e := a.alloc()
	e.kind = KindAwait
	e.operatorBegin = operatorBegin
	e.single[0] = child
	return e
}

// NewBinaryOperator requires len(children) == len(operatorSpans)+1 and at
// least two children — one operator span sits strictly between each pair
// of adjacent operands (§3.2.4, §8 AST property 6).
func (a *Arena) NewBinaryOperator(children []*Expression, operatorSpans []Span) *Expression {
	if len(children) < 2 || len(children) != len(operatorSpans)+1 {
		panic("ast: NewBinaryOperator requires len(children) == len(operatorSpans)+1 and len(children) >= 2")
	}
	e := a.alloc()
	e.kind = KindBinaryOperator
	e.children = MakeArray(a, children)
	e.operatorSpans = MakeArray(a, operatorSpans)
	return e
}

// NewCall requires a non-empty children slice: index 0 is the callee,
// the rest are arguments.
func (a *Arena) NewCall(children []*Expression, leftParenBegin int, end int) *Expression {
	if len(children) == 0 {
		panic("ast: NewCall requires a callee at children[0]")
	}
	e := a.alloc()
	e.kind = KindCall
	e.children = MakeArray(a, children)
	e.operatorBegin = leftParenBegin
	e.end = end
	return e
}

// CallLeftParenSpan returns the one-byte span of a Call node's opening
// parenthesis. Valid only for Call.
func (e *Expression) CallLeftParenSpan() Span {
	if e.kind != KindCall {
		unexpectedKind("CallLeftParenSpan", e.kind)
	}
	return Span{Begin: e.operatorBegin, End: e.operatorBegin + 1}
}

func (a *Arena) NewCompoundAssignment(lhs, rhs *Expression, operatorSpan Span) *Expression {
	e := a.alloc()
	e.kind = KindCompoundAssignment
	e.pair[0] = lhs
	e.pair[1] = rhs
	e.operatorSpan = operatorSpan
	return e
}

func (a *Arena) NewConditional(condition, trueBranch, falseBranch *Expression) *Expression {
	e := a.alloc()
	e.kind = KindConditional
	e.triple[0] = condition
	e.triple[1] = trueBranch
	e.triple[2] = falseBranch
	return e
}

func (a *Arena) NewConditionalAssignment(lhs, rhs *Expression, operatorSpan Span) *Expression {
	e := a.alloc()
	e.kind = KindConditionalAssignment
	e.pair[0] = lhs
	e.pair[1] = rhs
	e.operatorSpan = operatorSpan
	return e
}

// AssignmentOperatorSpan returns the span of the '='/compound-assignment
// operator itself, distinct from the node's overall Span(). The original
// uses this to diagnose likely typos (e.g. "did you mean '==='?"). Valid
// only for Assignment, CompoundAssignment, and ConditionalAssignment.
func (e *Expression) AssignmentOperatorSpan() Span {
	switch e.kind {
	case KindAssignment, KindCompoundAssignment, KindConditionalAssignment:
		return e.operatorSpan
	default:
		unexpectedKind("AssignmentOperatorSpan", e.kind)
		panic("unreachable")
	}
}

func (a *Arena) NewDelete(operatorBegin int, child *Expression) *Expression {
	e := a.alloc()
	e.kind = KindDelete
	e.operatorBegin = operatorBegin
	e.single[0] = child
	return e
}

func (a *Arena) NewDot(object *Expression, property Identifier) *Expression {
	e := a.alloc()
	e.kind = KindDot
	e.single[0] = object
	e.identifier = property
	return e
}

func (a *Arena) NewFunction(span Span, attrs FunctionAttributes) *Expression {
	e := a.alloc()
	e.kind = KindFunction
	e.span = span
	e.attrs = attrs
	return e
}

func (a *Arena) NewImport(span Span) *Expression {
	e := a.alloc()
	e.kind = KindImport
	e.span = span
	return e
}

func (a *Arena) NewIndex(container, subscript *Expression, end int) *Expression {
	e := a.alloc()
	e.kind = KindIndex
	e.pair[0] = container
	e.pair[1] = subscript
	e.end = end
	return e
}

func (a *Arena) NewJSXElement(span Span, tag Identifier, children []*Expression) *Expression {
	e := a.alloc()
	e.kind = KindJSXElement
	e.span = span
	e.identifier = tag
	e.children = MakeArray(a, children)
	return e
}

func (a *Arena) NewJSXElementWithMembers(span Span, members []Identifier, children []*Expression) *Expression {
	if len(members) < 2 {
		panic("ast: NewJSXElementWithMembers requires at least two members")
	}
	e := a.alloc()
	e.kind = KindJSXElementWithMembers
	e.span = span
	e.members = MakeArray(a, members)
	e.children = MakeArray(a, children)
	return e
}

func (a *Arena) NewJSXElementWithNamespace(span Span, namespace, tag Identifier, children []*Expression) *Expression {
	e := a.alloc()
	e.kind = KindJSXElementWithNamespace
	e.span = span
	e.namespaceIdentifier = namespace
	e.tag = tag
	e.children = MakeArray(a, children)
	return e
}

func (a *Arena) NewJSXFragment(span Span, children []*Expression) *Expression {
	e := a.alloc()
	e.kind = KindJSXFragment
	e.span = span
	e.children = MakeArray(a, children)
	return e
}

// NewLiteral's firstByte sniffs the source's first byte at construction
// time so IsNull/IsRegexp don't need a source buffer reference later.
func (a *Arena) NewLiteral(span Span, firstByte byte) *Expression {
	e := a.alloc()
	e.kind = KindLiteral
	e.span = span
	e.firstByte = firstByte
	return e
}

func (a *Arena) NewNamedFunction(span Span, name Identifier, attrs FunctionAttributes) *Expression {
	e := a.alloc()
	e.kind = KindNamedFunction
	e.span = span
	e.identifier = name
	e.attrs = attrs
	return e
}

func (a *Arena) NewNewTarget(span Span) *Expression {
	e := a.alloc()
	e.kind = KindNewTarget
	e.span = span
	return e
}

func (a *Arena) NewNonNullAssertion(child *Expression, end int) *Expression {
	e := a.alloc()
	e.kind = KindNonNullAssertion
	e.single[0] = child
	e.end = end
	return e
}

// NewObject requires every entry to have a non-nil Value (§3.2.3).
func (a *Arena) NewObject(span Span, entries []ObjectPropertyValuePair) *Expression {
	for i, entry := range entries {
		if entry.Value == nil {
			panic(fmt.Sprintf("ast: NewObject entry %d has nil Value", i))
		}
	}
	e := a.alloc()
	e.kind = KindObject
	e.span = span
	e.entries = MakeArray(a, entries)
	return e
}

func (a *Arena) NewOptional(child *Expression, end int) *Expression {
	e := a.alloc()
	e.kind = KindOptional
	e.single[0] = child
	e.end = end
	return e
}

func (a *Arena) NewParen(span Span, child *Expression) *Expression {
	e := a.alloc()
	e.kind = KindParen
	e.span = span
	e.single[0] = child
	return e
}

func (a *Arena) NewParenEmpty(span Span) *Expression {
	if span.Size() < 2 {
		panic("ast: NewParenEmpty requires a span covering at least '()'")
	}
	e := a.alloc()
	e.kind = KindParenEmpty
	e.span = span
	return e
}

func (a *Arena) NewPrivateVariable(name Identifier) *Expression {
	e := a.alloc()
	e.kind = KindPrivateVariable
	e.identifier = name
	return e
}

func (a *Arena) NewRwUnaryPrefix(operatorBegin int, child *Expression) *Expression {
	e := a.alloc()
	e.kind = KindRwUnaryPrefix
	e.operatorBegin = operatorBegin
	e.single[0] = child
	return e
}

func (a *Arena) NewRwUnarySuffix(child *Expression, end int) *Expression {
	e := a.alloc()
	e.kind = KindRwUnarySuffix
	e.single[0] = child
	e.end = end
	return e
}

func (a *Arena) NewSpread(operatorBegin int, child *Expression) *Expression {
	e := a.alloc()
	e.kind = KindSpread
	e.operatorBegin = operatorBegin
	e.single[0] = child
	return e
}

func (a *Arena) NewSuper(span Span) *Expression {
	e := a.alloc()
	e.kind = KindSuper
	e.span = span
	return e
}

// NewTaggedTemplateLiteral requires a non-empty children slice: index 0
// is the tag expression, the rest are the template's substitutions.
func (a *Arena) NewTaggedTemplateLiteral(children []*Expression, end int) *Expression {
	if len(children) == 0 {
		panic("ast: NewTaggedTemplateLiteral requires a tag at children[0]")
	}
	e := a.alloc()
	e.kind = KindTaggedTemplateLiteral
	e.children = MakeArray(a, children)
	e.end = end
	return e
}

func (a *Arena) NewThisVariable(span Span) *Expression {
	e := a.alloc()
	e.kind = KindThisVariable
	e.span = span
	return e
}

func (a *Arena) NewTrailingComma(children []*Expression, end int) *Expression {
	if len(children) == 0 {
		panic("ast: NewTrailingComma requires at least one child")
	}
	e := a.alloc()
	e.kind = KindTrailingComma
	e.children = MakeArray(a, children)
	e.end = end
	return e
}

func (a *Arena) NewTypeAnnotated(child *Expression, colonOffset int, end int, typeAnnotationTrace []byte) *Expression {
	e := a.alloc()
	e.kind = KindTypeAnnotated
	e.single[0] = child
	e.colonOffset = colonOffset
	e.end = end
	e.typeAnnotationTrace = MakeArray(a, typeAnnotationTrace)
	return e
}

// ColonSpan returns the one-byte span of a TypeAnnotated node's ':'.
// Valid only for TypeAnnotated.
func (e *Expression) ColonSpan() Span {
	if e.kind != KindTypeAnnotated {
		unexpectedKind("ColonSpan", e.kind)
	}
	return Span{Begin: e.colonOffset, End: e.colonOffset + 1}
}

// TypeAnnotationTrace returns the buffered visitor-event bytes recorded
// while parsing the type annotation. Valid only for TypeAnnotated.
func (e *Expression) TypeAnnotationTrace() []byte {
	if e.kind != KindTypeAnnotated {
		unexpectedKind("TypeAnnotationTrace", e.kind)
	}
	return e.typeAnnotationTrace
}

func (a *Arena) NewUnaryOperator(operatorBegin int, child *Expression) *Expression {
	e := a.alloc()
	e.kind = KindUnaryOperator
	e.operatorBegin = operatorBegin
	e.single[0] = child
	return e
}

func (a *Arena) NewVariable(name Identifier, tokenType TokenType) *Expression {
	e := a.alloc()
	e.kind = KindVariable
	e.identifier = name
	e.tokenType = tokenType
	return e
}

func (a *Arena) NewYieldMany(operatorBegin int, child *Expression) *Expression {
	e := a.alloc()
	e.kind = KindYieldMany
	e.operatorBegin = operatorBegin
	e.single[0] = child
	return e
}

func (a *Arena) NewYieldNone(span Span) *Expression {
	e := a.alloc()
	e.kind = KindYieldNone
	e.span = span
	return e
}

func (a *Arena) NewYieldOne(operatorBegin int, child *Expression) *Expression {
	e := a.alloc()
	e.kind = KindYieldOne
	e.operatorBegin = operatorBegin
	e.single[0] = child
	return e
}
