package ast

// Expression is the single node type for every kind in the closed
// enumeration (§3.2.1). There is no per-kind Go type and no virtual
// dispatch: Kind is the only thing distinguishing one node from another,
// and every accessor below switches on it, the same way the original's
// expression::children()/span()/... switch on expression_kind. This is
// the Go-idiomatic analog of "an enum plus one variant payload per kind"
// — Go has no tagged unions, so the variant payload is folded into one
// struct whose fields are reused across kinds (documented per field
// below), rather than boxed behind an interface. A single flat struct
// also happens to be exactly what a bump arena wants to allocate: fixed
// size, no embedded pointers to itself, trivially zero-valued.
//
// Every Expression lives in an Arena and is reached only through a
// *Expression handle; nodes never own other nodes — the arena owns all of
// them — and a parent's pointer fields are non-owning references into the
// same arena. Its slice fields are copies made by MakeArray, which live on
// the Go heap rather than in the arena's pages.
type Expression struct {
	kind Kind

	// span holds the node's own source coverage for every kind in the
	// "span-carrying" group (§4.2.1) — stored directly rather than
	// derived from children. It is also reused, for a few kinds, to hold
	// a span that Span() derivation needs but that isn't the node's own
	// full coverage: angleTypeAssertion's bracketed-type span.
	span Span

	// single holds the one child of every "single-child wrapper" kind
	// (§4.2.2): the prefix-operator family, dot's receiver, paren,
	// optional, non_null_assertion, angle_type_assertion,
	// as_type_assertion, rw_unary_suffix, type_annotated.
	single [1]*Expression
	// pair holds the two children of assignment/compound_assignment/
	// conditional_assignment (lhs, rhs) and of index (container,
	// subscript).
	pair [2]*Expression
	// triple holds conditional's three children (condition, true-branch,
	// false-branch).
	triple [3]*Expression
	// children holds every variadic kind's child slice: _new, _template,
	// array, arrow_function's parameters, binary_operator, call (callee
	// at index 0, arguments after), the jsx_* family,
	// tagged_template_literal (tag at index 0, template parts after),
	// trailing_comma.
	children []*Expression

	// operatorSpans holds binary_operator's N-1 operator spans, one
	// between each pair of adjacent children.
	operatorSpans []Span
	// operatorSpan holds the '='/compound-assignment operator's own span
	// for assignment/compound_assignment/conditional_assignment, distinct
	// from the node's overall Span(). The original uses this for a
	// "did you mean '==='?" diagnostic.
	operatorSpan Span

	// identifier holds: dot's property name, jsx_element's tag,
	// named_function's name, private_variable's and variable's name.
	identifier Identifier
	// tokenType holds variable's token type only.
	tokenType TokenType

	// namespaceIdentifier holds jsx_element_with_namespace's namespace
	// (the part before ':').
	namespaceIdentifier Identifier
	// tag holds jsx_element_with_namespace's tag (the part after ':').
	tag Identifier
	// members holds jsx_element_with_members' member-access chain.
	members []Identifier

	// entries holds object's property/value/init triples.
	entries []ObjectPropertyValuePair

	// attrs holds arrow_function/function/named_function's async*generator
	// attributes.
	attrs FunctionAttributes

	// operatorBegin holds, depending on kind, the byte offset of: the
	// prefix operator (prefix-operator family), call's left paren,
	// as_type_assertion's "as" keyword, and — when hasParamListBegin is
	// set — arrow_function's parameter-list start.
	operatorBegin int
	// end holds, depending on kind, the node's own trailing edge where
	// Span() can't derive it from a child alone: arrow_function's and
	// call's and as_type_assertion's and type_annotated's span end,
	// index's subscript end, non_null_assertion's '!' end,
	// optional's '?' end, rw_unary_suffix's operator end,
	// tagged_template_literal's template end, trailing_comma's ',' end.
	end int
	// hasParamListBegin distinguishes arrow_function's two constructors:
	// when true, operatorBegin is the parameter list's opening position;
	// when false, Span() falls back to the first parameter's span, and
	// children must be non-empty (§3.2.2 invariant).
	hasParamListBegin bool

	// colonOffset holds type_annotated's ':' position.
	colonOffset int
	// typeAnnotationTrace holds type_annotated's buffered parse-visitor
	// events, replayed later by the parser/visitor subsystem. It is an
	// opaque, trivially-relocatable byte slice as far as this package is
	// concerned (§9 design notes) — nothing in this package inspects its
	// contents.
	typeAnnotationTrace []byte

	// firstByte holds literal's first source byte, sniffed once at
	// construction time so IsNull/IsRegexp don't need access to the
	// source buffer (spans here are offsets, not buffer pointers).
	firstByte byte
}

// Kind returns the node's closed-enum tag. It never changes after
// construction.
func (e *Expression) Kind() Kind {
	return e.kind
}

// Span returns the node's total source coverage, derived per the rules in
// §4.2.1.
func (e *Expression) Span() Span {
	switch e.kind {
	case KindClass, KindInvalidExpr, KindMissing, KindNew, KindTemplate,
		KindArray, KindFunction, KindImport, KindLiteral, KindNamedFunction,
		KindNewTarget, KindObject, KindParen, KindParenEmpty, KindSuper,
		KindThisVariable, KindYieldNone,
		KindJSXElement, KindJSXElementWithMembers, KindJSXElementWithNamespace, KindJSXFragment:
		return e.span

	case KindAssignment, KindCompoundAssignment, KindConditionalAssignment:
		return Span{Begin: e.pair[0].Span().Begin, End: e.pair[1].Span().End}

	case KindDelete, KindTypeof, KindAwait, KindRwUnaryPrefix, KindSpread,
		KindUnaryOperator, KindYieldMany, KindYieldOne:
		return Span{Begin: e.operatorBegin, End: e.single[0].Span().End}

	case KindAngleTypeAssertion:
		return Span{Begin: e.span.Begin, End: e.single[0].Span().End}

	case KindArrowFunction:
		if e.hasParamListBegin {
			return Span{Begin: e.operatorBegin, End: e.end}
		}
		return Span{Begin: e.children[0].Span().Begin, End: e.end}

	case KindAsTypeAssertion:
		return Span{Begin: e.single[0].Span().Begin, End: e.end}

	case KindBinaryOperator:
		return Span{Begin: e.children[0].Span().Begin, End: e.children[len(e.children)-1].Span().End}

	case KindCall:
		return Span{Begin: e.children[0].Span().Begin, End: e.end}

	case KindConditional:
		return Span{Begin: e.triple[0].Span().Begin, End: e.triple[2].Span().End}

	case KindDot:
		return Span{Begin: e.single[0].Span().Begin, End: e.identifier.Span().End}

	case KindIndex:
		return Span{Begin: e.pair[0].Span().Begin, End: e.end}

	case KindNonNullAssertion:
		return Span{Begin: e.single[0].Span().Begin, End: e.end}

	case KindOptional:
		return Span{Begin: e.single[0].Span().Begin, End: e.end}

	case KindPrivateVariable:
		return e.identifier.Span()

	case KindRwUnarySuffix:
		return Span{Begin: e.single[0].Span().Begin, End: e.end}

	case KindTaggedTemplateLiteral:
		return Span{Begin: e.children[0].Span().Begin, End: e.end}

	case KindTrailingComma:
		return Span{Begin: e.children[0].Span().Begin, End: e.end}

	case KindTypeAnnotated:
		return Span{Begin: e.single[0].Span().Begin, End: e.end}

	case KindVariable:
		return e.identifier.Span()

	default:
		panic("ast: Span: unhandled kind " + e.kind.String())
	}
}

// Children returns the node's 0..N subordinate expressions (§4.2.2).
// Every kind returns a well-defined (possibly empty) slice — unlike
// kind-specific accessors, Children never signals UnexpectedKind, so that
// a consumer holding only Kind/Span/Children can always fully traverse a
// tree (§6.2).
func (e *Expression) Children() []*Expression {
	switch e.kind {
	case KindDelete, KindTypeof, KindAwait, KindRwUnaryPrefix, KindSpread,
		KindUnaryOperator, KindYieldMany, KindYieldOne,
		KindDot, KindParen, KindOptional, KindNonNullAssertion,
		KindAngleTypeAssertion, KindAsTypeAssertion, KindRwUnarySuffix,
		KindTypeAnnotated:
		return e.single[:]

	case KindAssignment, KindCompoundAssignment, KindConditionalAssignment, KindIndex:
		return e.pair[:]

	case KindConditional:
		return e.triple[:]

	case KindNew, KindTemplate, KindArray, KindArrowFunction, KindBinaryOperator,
		KindCall, KindJSXElement, KindJSXElementWithMembers, KindJSXElementWithNamespace,
		KindJSXFragment, KindTaggedTemplateLiteral, KindTrailingComma:
		return e.children

	case KindObject:
		// Entries-adaptor (§4.2.2, "object-via-entries-adaptor"): flatten
		// each entry's optional property, required value, and optional
		// init, in that order, across all entries.
		out := make([]*Expression, 0, len(e.entries)*2)
		for _, entry := range e.entries {
			if entry.Property != nil {
				out = append(out, entry.Property)
			}
			out = append(out, entry.Value)
			if entry.Init != nil {
				out = append(out, entry.Init)
			}
		}
		return out

	default:
		return nil
	}
}

// ChildCount returns len(Children()).
func (e *Expression) ChildCount() int {
	return len(e.Children())
}

// Child returns Children()[i].
func (e *Expression) Child(i int) *Expression {
	return e.Children()[i]
}

// WithoutParen strips surrounding paren wrappers, transitively. Calling it
// on a non-paren node returns the same pointer (§8 AST property 4); it is
// idempotent (§8 AST property 3).
func (e *Expression) WithoutParen() *Expression {
	cur := e
	for cur.kind == KindParen {
		cur = cur.single[0]
	}
	return cur
}

// VariableIdentifier returns the node's identifier. Valid only for Dot,
// JSXElement, NamedFunction, PrivateVariable, and Variable.
func (e *Expression) VariableIdentifier() Identifier {
	switch e.kind {
	case KindDot, KindJSXElement, KindNamedFunction, KindPrivateVariable, KindVariable:
		return e.identifier
	default:
		unexpectedKind("VariableIdentifier", e.kind)
		panic("unreachable")
	}
}

// VariableIdentifierTokenType returns the lexical form of a Variable
// node's name. Valid only for Variable.
func (e *Expression) VariableIdentifierTokenType() TokenType {
	if e.kind != KindVariable {
		unexpectedKind("VariableIdentifierTokenType", e.kind)
	}
	return e.tokenType
}

// ObjectEntryCount returns the number of entries in an Object node. Valid
// only for Object.
func (e *Expression) ObjectEntryCount() int {
	if e.kind != KindObject {
		unexpectedKind("ObjectEntryCount", e.kind)
	}
	return len(e.entries)
}

// ObjectEntry returns the i'th entry of an Object node. Valid only for
// Object.
func (e *Expression) ObjectEntry(i int) ObjectPropertyValuePair {
	if e.kind != KindObject {
		unexpectedKind("ObjectEntry", e.kind)
	}
	return e.entries[i]
}

// Attributes returns the async/generator attributes of a function-like
// node. Valid only for ArrowFunction, Function, and NamedFunction.
func (e *Expression) Attributes() FunctionAttributes {
	switch e.kind {
	case KindArrowFunction, KindFunction, KindNamedFunction:
		return e.attrs
	default:
		unexpectedKind("Attributes", e.kind)
		panic("unreachable")
	}
}

// IsNull reports whether a Literal node's span begins with 'n' (i.e. is
// the literal "null"). Valid only for Literal.
func (e *Expression) IsNull() bool {
	if e.kind != KindLiteral {
		unexpectedKind("IsNull", e.kind)
	}
	return e.firstByte == 'n'
}

// IsRegexp reports whether a Literal node's span begins with '/' (i.e. is
// a regular-expression literal). Valid only for Literal. IsNull and
// IsRegexp are mutually exclusive (§8 AST property 7).
func (e *Expression) IsRegexp() bool {
	if e.kind != KindLiteral {
		unexpectedKind("IsRegexp", e.kind)
	}
	return e.firstByte == '/'
}

// Namespace returns a jsx_element_with_namespace node's namespace (the
// part before ':'). Valid only for JSXElementWithNamespace.
func (e *Expression) Namespace() Identifier {
	if e.kind != KindJSXElementWithNamespace {
		unexpectedKind("Namespace", e.kind)
	}
	return e.namespaceIdentifier
}

// Tag returns a jsx_element_with_namespace node's tag (the part after
// ':', e.g. "rect" in "<svg:rect>"). Valid only for
// JSXElementWithNamespace.
func (e *Expression) Tag() Identifier {
	if e.kind != KindJSXElementWithNamespace {
		unexpectedKind("Tag", e.kind)
	}
	return e.tag
}

// Members returns a jsx_element_with_members node's member-access chain.
// Valid only for JSXElementWithMembers.
func (e *Expression) Members() []Identifier {
	if e.kind != KindJSXElementWithMembers {
		unexpectedKind("Members", e.kind)
	}
	return e.members
}

// IsIntrinsic reports whether a JSX element refers to an intrinsic
// (HTML-like) tag rather than a user component (§8 AST property 9,
// GLOSSARY "Intrinsic JSX tag"). Valid for JSXElement,
// JSXElementWithMembers, and JSXElementWithNamespace.
func (e *Expression) IsIntrinsic() bool {
	switch e.kind {
	case KindJSXElement:
		return isIntrinsicTag(e.identifier)
	case KindJSXElementWithMembers:
		return false
	case KindJSXElementWithNamespace:
		return true
	default:
		unexpectedKind("IsIntrinsic", e.kind)
		panic("unreachable")
	}
}

func isIntrinsicTag(tag Identifier) bool {
	name := tag.NormalizedName()
	if name == "" {
		return false
	}
	first := name[0]
	if first >= 'a' && first <= 'z' {
		return true
	}
	for i := 0; i < len(name); i++ {
		if name[i] == '-' {
			return true
		}
	}
	return false
}

// ParenEmptySpans returns the three spans a missing-expression-between-
// parentheses diagnostic needs (§6.4): the whole "()" span, the left
// paren alone, and the right paren alone. Valid only for ParenEmpty.
func (e *Expression) ParenEmptySpans() (whole, left, right Span) {
	if e.kind != KindParenEmpty {
		unexpectedKind("ParenEmptySpans", e.kind)
	}
	whole = e.span
	left = Span{Begin: whole.Begin, End: whole.Begin + 1}
	right = Span{Begin: whole.End - 1, End: whole.End}
	return whole, left, right
}

// DiagnosticReporter is the external diagnostic-reporting collaborator
// named in §6.4. This package only ever hands it spans; it defines no
// diagnostic taxonomy of its own.
type DiagnosticReporter interface {
	ReportMissingExpressionBetweenParentheses(leftParenToRightParen, leftParen, rightParen Span)
}

// ReportMissingExpressionError hands reporter the triple of spans for a
// "()" with nothing inside (§6.4). Valid only for ParenEmpty.
func (e *Expression) ReportMissingExpressionError(reporter DiagnosticReporter) {
	whole, left, right := e.ParenEmptySpans()
	reporter.ReportMissingExpressionBetweenParentheses(whole, left, right)
}
