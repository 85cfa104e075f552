package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jslang/exprtrace/pkg/source"
)

func TestArenaAllocatesAcrossPageBoundaries(t *testing.T) {
	a := NewArena(Config{PageSize: 4})

	var nodes []*Expression
	for i := 0; i < 10; i++ {
		nodes = append(nodes, a.NewLiteral(source.NewSpan(i, i+1), '1'))
	}
	require.Len(t, a.pages, 3)

	for i, n := range nodes {
		assert.Equal(t, i, n.Span().Begin)
	}
}

func TestArenaNodesStayAtStableAddresses(t *testing.T) {
	a := NewArena(Config{PageSize: 2})

	first := a.NewLiteral(source.NewSpan(0, 1), '1')
	for i := 0; i < 20; i++ {
		a.NewLiteral(source.NewSpan(i, i+1), '1')
	}

	assert.Equal(t, 0, first.Span().Begin)
}

func TestMakeArrayReturnsIndependentCopy(t *testing.T) {
	a := NewArena(Config{})
	src := []int{1, 2, 3}

	out := MakeArray(a, src)
	src[0] = 99

	assert.Equal(t, []int{1, 2, 3}, out)
}

func TestBuilderAdoptProducesEquivalentSlice(t *testing.T) {
	a := NewArena(Config{})
	b := NewBuilder[int](0)
	b.Add(1)
	b.Add(2)
	b.Add(3)

	assert.Equal(t, 3, b.Len())
	assert.Equal(t, []int{1, 2, 3}, Adopt(a, b))
}

func TestConfigValidateRejectsNegativePageSize(t *testing.T) {
	assert.NoError(t, Config{}.Validate())
	assert.NoError(t, Config{PageSize: 64}.Validate())
	assert.Error(t, Config{PageSize: -1}.Validate())
	assert.Error(t, Config{MaxPages: -1}.Validate())
}

func TestArenaPanicsOnAllocationFailureWhenPageCapExceeded(t *testing.T) {
	a := NewArena(Config{PageSize: 2, MaxPages: 1})

	a.NewLiteral(source.NewSpan(0, 1), '1')
	a.NewLiteral(source.NewSpan(0, 1), '1')

	defer func() {
		assert.Equal(t, &AllocationFailureError{MaxPages: 1}, recover())
	}()
	a.NewLiteral(source.NewSpan(0, 1), '1')
}
