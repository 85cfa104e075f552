package ast

import "github.com/jslang/exprtrace/pkg/source"

// Span, Identifier, and TokenType are the shared primitives from §3.1,
// re-exported here so callers of this package don't need a second import
// for the types that appear all over its API.
type (
	Span       = source.Span
	Identifier = source.Identifier
	TokenType  = source.TokenType
)

const (
	TokenIdentifier    = source.TokenIdentifier
	TokenKeywordAsync  = source.TokenKeywordAsync
	TokenKeywordAwait  = source.TokenKeywordAwait
	TokenKeywordGet    = source.TokenKeywordGet
	TokenKeywordLet    = source.TokenKeywordLet
	TokenKeywordOf     = source.TokenKeywordOf
	TokenKeywordSet    = source.TokenKeywordSet
	TokenKeywordStatic = source.TokenKeywordStatic
	TokenKeywordYield  = source.TokenKeywordYield
)
