package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jslang/exprtrace/pkg/source"
)

func newTestArena() *Arena {
	return NewArena(Config{})
}

func ident(begin, end int, name string) Identifier {
	return source.NewIdentifier(source.NewSpan(begin, end), name)
}

func TestSpanBounds(t *testing.T) {
	a := newTestArena()

	lhs := a.NewVariable(ident(0, 1, "x"), TokenIdentifier)
	rhs := a.NewLiteral(source.NewSpan(4, 5), '1')
	assign := a.NewAssignment(lhs, rhs, source.NewSpan(2, 3))

	got := assign.Span()
	assert.Equal(t, 0, got.Begin)
	assert.Equal(t, 5, got.End)
}

func TestBinaryOperatorSpanCoversAllOperands(t *testing.T) {
	a := newTestArena()
	x := a.NewVariable(ident(0, 1, "x"), TokenIdentifier)
	y := a.NewVariable(ident(4, 5, "y"), TokenIdentifier)
	z := a.NewVariable(ident(8, 9, "z"), TokenIdentifier)
	op := a.NewBinaryOperator(
		[]*Expression{x, y, z},
		[]source.Span{source.NewSpan(2, 3), source.NewSpan(6, 7)},
	)

	span := op.Span()
	assert.Equal(t, 0, span.Begin)
	assert.Equal(t, 9, span.End)
	assert.Equal(t, 3, op.ChildCount())
}

func TestBinaryOperatorRejectsMismatchedSpanCount(t *testing.T) {
	a := newTestArena()
	x := a.NewVariable(ident(0, 1, "x"), TokenIdentifier)
	y := a.NewVariable(ident(4, 5, "y"), TokenIdentifier)

	assert.Panics(t, func() {
		a.NewBinaryOperator([]*Expression{x, y}, nil)
	})
}

func TestChildrenBoundsMatchChildCount(t *testing.T) {
	a := newTestArena()
	elems := []*Expression{
		a.NewLiteral(source.NewSpan(1, 2), '1'),
		a.NewLiteral(source.NewSpan(4, 5), '2'),
	}
	arr := a.NewArray(source.NewSpan(0, 6), elems)

	require.Equal(t, 2, arr.ChildCount())
	assert.Same(t, elems[0], arr.Child(0))
	assert.Same(t, elems[1], arr.Child(1))
}

func TestChildlessKindsReturnEmptyChildren(t *testing.T) {
	a := newTestArena()
	for _, e := range []*Expression{
		a.NewClass(source.NewSpan(0, 5)),
		a.NewInvalidExpr(source.NewSpan(0, 1)),
		a.NewMissing(source.NewSpan(0, 0)),
		a.NewFunction(source.NewSpan(0, 8), FunctionAttributesNormal),
		a.NewImport(source.NewSpan(0, 6)),
		a.NewLiteral(source.NewSpan(0, 1), '1'),
		a.NewNamedFunction(source.NewSpan(0, 8), ident(9, 10, "f"), FunctionAttributesNormal),
		a.NewNewTarget(source.NewSpan(0, 10)),
		a.NewPrivateVariable(ident(0, 5, "#x")),
		a.NewSuper(source.NewSpan(0, 5)),
		a.NewThisVariable(source.NewSpan(0, 4)),
		a.NewVariable(ident(0, 1, "x"), TokenIdentifier),
		a.NewYieldNone(source.NewSpan(0, 5)),
		a.NewParenEmpty(source.NewSpan(0, 2)),
	} {
		assert.Equal(t, 0, e.ChildCount(), "kind %s should have no children", e.Kind())
	}
}

func TestWithoutParenIsIdempotentAndIdentityOnNonParen(t *testing.T) {
	a := newTestArena()
	v := a.NewVariable(ident(0, 1, "x"), TokenIdentifier)

	assert.Same(t, v, v.WithoutParen())

	p1 := a.NewParen(source.NewSpan(0, 3), v)
	p2 := a.NewParen(source.NewSpan(0, 5), p1)

	once := p2.WithoutParen()
	assert.Same(t, v, once)
	assert.Same(t, once, once.WithoutParen())
}

func TestDotSpanCoversObjectAndPropertyName(t *testing.T) {
	a := newTestArena()
	obj := a.NewVariable(ident(0, 3, "foo"), TokenIdentifier)
	dot := a.NewDot(obj, ident(4, 10, "length"))

	span := dot.Span()
	assert.Equal(t, 0, span.Begin)
	assert.Equal(t, 10, span.End)
	assert.Equal(t, "length", dot.VariableIdentifier().NormalizedName())
}

func TestLiteralIsNullAndIsRegexpAreMutuallyExclusive(t *testing.T) {
	a := newTestArena()
	null := a.NewLiteral(source.NewSpan(0, 4), 'n')
	assert.True(t, null.IsNull())
	assert.False(t, null.IsRegexp())

	re := a.NewLiteral(source.NewSpan(0, 4), '/')
	assert.False(t, re.IsNull())
	assert.True(t, re.IsRegexp())

	num := a.NewLiteral(source.NewSpan(0, 1), '1')
	assert.False(t, num.IsNull())
	assert.False(t, num.IsRegexp())
}

func TestAccessorsPanicOnUnexpectedKind(t *testing.T) {
	a := newTestArena()
	lit := a.NewLiteral(source.NewSpan(0, 1), '1')

	assert.Panics(t, func() { lit.VariableIdentifier() })
	assert.Panics(t, func() { lit.Attributes() })
	assert.Panics(t, func() { lit.ObjectEntryCount() })

	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r)
			err, ok := r.(*UnexpectedKindError)
			require.True(t, ok)
			assert.Equal(t, KindLiteral, err.Kind)
		}()
		lit.VariableIdentifierTokenType()
	}()
}

func TestJSXIntrinsicPredicate(t *testing.T) {
	a := newTestArena()
	lower := a.NewJSXElement(source.NewSpan(0, 4), ident(1, 4, "div"), nil)
	upper := a.NewJSXElement(source.NewSpan(0, 4), ident(1, 4, "Foo"), nil)
	dashed := a.NewJSXElement(source.NewSpan(0, 8), ident(1, 8, "my-tag"), nil)

	assert.True(t, lower.IsIntrinsic())
	assert.False(t, upper.IsIntrinsic())
	assert.True(t, dashed.IsIntrinsic())

	members := a.NewJSXElementWithMembers(source.NewSpan(0, 10), []Identifier{ident(1, 2, "A"), ident(3, 4, "B")}, nil)
	assert.False(t, members.IsIntrinsic())

	withNS := a.NewJSXElementWithNamespace(source.NewSpan(0, 10), ident(1, 4, "svg"), ident(5, 9, "rect"), nil)
	assert.True(t, withNS.IsIntrinsic())
}

func TestParenEmptyReportsMissingExpression(t *testing.T) {
	a := newTestArena()
	e := a.NewParenEmpty(source.NewSpan(10, 12))

	var gotWhole, gotLeft, gotRight Span
	reporter := fakeReporter(func(whole, left, right Span) {
		gotWhole, gotLeft, gotRight = whole, left, right
	})
	e.ReportMissingExpressionError(reporter)

	assert.Equal(t, source.NewSpan(10, 12), gotWhole)
	assert.Equal(t, source.NewSpan(10, 11), gotLeft)
	assert.Equal(t, source.NewSpan(11, 12), gotRight)
}

type fakeReporter func(whole, left, right Span)

func (f fakeReporter) ReportMissingExpressionBetweenParentheses(whole, left, right Span) {
	f(whole, left, right)
}
