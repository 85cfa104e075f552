package ast

import (
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	astlog "github.com/jslang/exprtrace/pkg/util/log"
)

// defaultPageSize is the number of Expression slots per arena page when no
// explicit Config is supplied.
const defaultPageSize = 256

// Arena owns every Expression node handed out through it. Nodes are bump-
// allocated from fixed-capacity pages; a page, once allocated, is never
// grown or moved, so a *Expression handed to a caller stays valid and at
// the same address for the arena's entire lifetime (§3.2.4, §4.1) — the
// Go analog of the original's "trivially relocatable, backed by a
// monotonic buffer" guarantee, achieved here by never reallocating a page
// rather than by any relocation step. Arena is not safe for concurrent
// use without external synchronization, matching the original's
// single-threaded-parse assumption.
type Arena struct {
	pageSize int
	maxPages int // 0 means unlimited
	pages    [][]Expression
	cur      []Expression // tail of pages[len(pages)-1], the not-yet-used portion
}

// Config configures an Arena's page size and, optionally, a hard cap on
// the number of pages it may allocate. Zero values select defaultPageSize
// and "unlimited" respectively.
type Config struct {
	PageSize int `yaml:"page_size"`
	MaxPages int `yaml:"max_pages"`
}

// Validate rejects negative page sizes and negative page caps; zero means
// "use the default" / "unlimited".
func (c Config) Validate() error {
	if c.PageSize < 0 {
		return errInvalidPageSize
	}
	if c.MaxPages < 0 {
		return errInvalidMaxPages
	}
	return nil
}

// NewArena constructs an empty Arena using cfg's page size and page cap.
func NewArena(cfg Config) *Arena {
	pageSize := cfg.PageSize
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	return &Arena{pageSize: pageSize, maxPages: cfg.MaxPages}
}

// AllocationFailureError is the Go realization of §7's AllocationFailure
// taxonomy entry: the arena has hit its configured page cap and cannot
// grow further. Fatal — there is no recovery path, matching "allocation
// failure is fatal" (§4.1).
type AllocationFailureError struct {
	MaxPages int
}

func (e *AllocationFailureError) Error() string {
	return fmt.Sprintf("ast: arena exhausted its %d-page limit", e.MaxPages)
}

func (a *Arena) newPage() {
	if a.maxPages != 0 && len(a.pages) >= a.maxPages {
		err := &AllocationFailureError{MaxPages: a.maxPages}
		level.Error(astlog.Logger).Log("msg", "arena allocation failure", "err", err)
		panic(err)
	}
	page := make([]Expression, a.pageSize)
	a.pages = append(a.pages, page)
	a.cur = a.pages[len(a.pages)-1]
	metricArenaPagesAllocated.Inc()
}

// alloc returns a pointer to a freshly zeroed Expression slot. The
// returned pointer never moves and never aliases another live node.
func (a *Arena) alloc() *Expression {
	if len(a.cur) == 0 {
		a.newPage()
	}
	e := &a.cur[0]
	a.cur = a.cur[1:]
	metricArenaNodesAllocated.Inc()
	return e
}

// MakeArray copies src into a new slice and returns the copy. The copy is
// an ordinary Go heap allocation: it is not placed in the arena's pages,
// and a is not used to allocate it. This is a free function, not a method, because a method on *Arena
// cannot introduce a type parameter beyond the receiver's own — Go has
// no generic methods in that sense, only generic functions and generic
// types with their own parameters.
func MakeArray[T any](a *Arena, src []T) []T {
	if len(src) == 0 {
		return nil
	}
	out := make([]T, len(src))
	copy(out, src)
	return out
}

// Builder accumulates a sequence of T values for later copying into a
// final slice via Adopt. It exists for callers that build up a
// child list incrementally (e.g. parsing array elements one at a time)
// and don't know the final length up front.
type Builder[T any] struct {
	items []T
}

// NewBuilder returns an empty Builder, optionally pre-sized.
func NewBuilder[T any](capacity int) *Builder[T] {
	return &Builder[T]{items: make([]T, 0, capacity)}
}

// Add appends v to the builder.
func (b *Builder[T]) Add(v T) {
	b.items = append(b.items, v)
}

// Len returns the number of items added so far.
func (b *Builder[T]) Len() int {
	return len(b.items)
}

// Adopt finalizes b into a copied slice, equivalent to
// MakeArray(a, b.items). Like MakeArray, this must be a free function:
// Builder's T is fixed at NewBuilder time, but Adopt is called against an
// *Arena that has no type parameter of its own.
func Adopt[T any](a *Arena, b *Builder[T]) []T {
	return MakeArray(a, b.items)
}

var (
	metricArenaPagesAllocated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "exprtrace",
		Subsystem: "ast",
		Name:      "arena_pages_allocated_total",
		Help:      "Number of fixed-capacity pages allocated across all arenas.",
	})
	metricArenaNodesAllocated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "exprtrace",
		Subsystem: "ast",
		Name:      "arena_nodes_allocated_total",
		Help:      "Number of Expression nodes allocated across all arenas.",
	})
)
