package ast

// Kind is the closed tag identifying an expression node's variant. It is
// set once at construction and never mutates (§3.2.4). There is no base
// "expression" class carrying state beyond this tag — every other field
// on Expression is kind-specific payload, reached through the switch-based
// accessors in this package.
type Kind uint8

const (
	KindInvalid Kind = iota // zero value is intentionally not a valid node kind

	KindClass
	KindDelete
	KindInvalidExpr
	KindMissing
	KindNew
	KindTemplate
	KindTypeof
	KindArray
	KindArrowFunction
	KindAngleTypeAssertion // TypeScript only
	KindAsTypeAssertion    // TypeScript only
	KindAssignment
	KindAwait
	KindBinaryOperator
	KindCall
	KindCompoundAssignment
	KindConditional
	KindConditionalAssignment
	KindDot
	KindFunction
	KindImport
	KindIndex
	KindJSXElement
	KindJSXElementWithMembers
	KindJSXElementWithNamespace
	KindJSXFragment
	KindLiteral
	KindNamedFunction
	KindNewTarget
	KindNonNullAssertion // TypeScript only
	KindObject
	KindOptional // TypeScript only
	KindParen
	KindParenEmpty
	KindPrivateVariable
	KindRwUnaryPrefix
	KindRwUnarySuffix
	KindSpread
	KindSuper
	KindTaggedTemplateLiteral
	KindThisVariable
	KindTrailingComma
	KindTypeAnnotated // TypeScript only
	KindUnaryOperator
	KindVariable
	KindYieldMany
	KindYieldNone
	KindYieldOne

	kindCount
)

var kindNames = [kindCount]string{
	KindInvalid:                 "invalid(zero value)",
	KindClass:                   "_class",
	KindDelete:                  "_delete",
	KindInvalidExpr:             "_invalid",
	KindMissing:                 "_missing",
	KindNew:                     "_new",
	KindTemplate:                "_template",
	KindTypeof:                  "_typeof",
	KindArray:                   "array",
	KindArrowFunction:           "arrow_function",
	KindAngleTypeAssertion:      "angle_type_assertion",
	KindAsTypeAssertion:         "as_type_assertion",
	KindAssignment:              "assignment",
	KindAwait:                   "await",
	KindBinaryOperator:          "binary_operator",
	KindCall:                    "call",
	KindCompoundAssignment:      "compound_assignment",
	KindConditional:             "conditional",
	KindConditionalAssignment:   "conditional_assignment",
	KindDot:                     "dot",
	KindFunction:                "function",
	KindImport:                  "import",
	KindIndex:                   "index",
	KindJSXElement:              "jsx_element",
	KindJSXElementWithMembers:   "jsx_element_with_members",
	KindJSXElementWithNamespace: "jsx_element_with_namespace",
	KindJSXFragment:             "jsx_fragment",
	KindLiteral:                 "literal",
	KindNamedFunction:           "named_function",
	KindNewTarget:               "new_target",
	KindNonNullAssertion:        "non_null_assertion",
	KindObject:                  "object",
	KindOptional:                "optional",
	KindParen:                   "paren",
	KindParenEmpty:              "paren_empty",
	KindPrivateVariable:         "private_variable",
	KindRwUnaryPrefix:           "rw_unary_prefix",
	KindRwUnarySuffix:           "rw_unary_suffix",
	KindSpread:                  "spread",
	KindSuper:                   "super",
	KindTaggedTemplateLiteral:   "tagged_template_literal",
	KindThisVariable:            "this_variable",
	KindTrailingComma:           "trailing_comma",
	KindTypeAnnotated:           "type_annotated",
	KindUnaryOperator:           "unary_operator",
	KindVariable:                "variable",
	KindYieldMany:               "yield_many",
	KindYieldNone:               "yield_none",
	KindYieldOne:                "yield_one",
}

func (k Kind) String() string {
	if k >= kindCount {
		return "unknown_kind"
	}
	return kindNames[k]
}
