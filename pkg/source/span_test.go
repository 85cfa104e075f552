package source

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestNewSpanPanicsWhenBeginAfterEnd(t *testing.T) {
	assert.Panics(t, func() { NewSpan(5, 1) })
}

func TestSpanSizeAndEmpty(t *testing.T) {
	s := NewSpan(3, 7)
	assert.Equal(t, 4, s.Size())
	assert.False(t, s.Empty())

	e := NewSpan(3, 3)
	assert.Equal(t, 0, e.Size())
	assert.True(t, e.Empty())
}

func TestUnionCoversBoth(t *testing.T) {
	got := Union(NewSpan(5, 10), NewSpan(2, 7))
	want := NewSpan(2, 10)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Union() mismatch (-want +got):\n%s", diff)
	}
}

func TestIdentifierAccessors(t *testing.T) {
	id := NewIdentifier(NewSpan(0, 3), "foo")
	assert.Equal(t, NewSpan(0, 3), id.Span())
	assert.Equal(t, "foo", id.NormalizedName())
}
