package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jslang/exprtrace/pkg/source"
)

func TestObjectShorthandPredicate(t *testing.T) {
	a := newTestArena()

	// { x } — property and value occupy the same span.
	shorthandVar := a.NewVariable(ident(2, 3, "x"), TokenIdentifier)
	shorthandProp := a.NewLiteral(source.NewSpan(2, 3), 'x')
	shorthand := ObjectPropertyValuePair{Property: shorthandProp, Value: shorthandVar}
	assert.True(t, shorthand.IsMergedPropertyAndValueShorthand())

	// { x: x } — property and value occupy distinct spans.
	prop := a.NewLiteral(source.NewSpan(2, 3), 'x')
	val := a.NewVariable(ident(5, 6, "x"), TokenIdentifier)
	explicit := ObjectPropertyValuePair{Property: prop, Value: val}
	assert.False(t, explicit.IsMergedPropertyAndValueShorthand())

	// { ...x } — no property at all.
	spread := ObjectPropertyValuePair{Value: a.NewSpread(2, shorthandVar)}
	assert.False(t, spread.IsMergedPropertyAndValueShorthand())
}

func TestObjectEntriesAdaptorFlattensInOrder(t *testing.T) {
	a := newTestArena()

	prop := a.NewLiteral(source.NewSpan(2, 5), 'k')
	val := a.NewVariable(ident(7, 8, "v"), TokenIdentifier)
	init := a.NewLiteral(source.NewSpan(11, 12), '1')

	obj := a.NewObject(source.NewSpan(0, 13), []ObjectPropertyValuePair{
		{Property: prop, Value: val, Init: init, InitEqualBegin: 9},
	})

	assert.Equal(t, 1, obj.ObjectEntryCount())
	children := obj.Children()
	assert.Equal(t, []*Expression{prop, val, init}, children)
}

func TestObjectEntryInitEqualsSpanRequiresInit(t *testing.T) {
	e := ObjectPropertyValuePair{Value: &Expression{}}
	assert.Panics(t, func() { e.InitEqualsSpan() })
}
