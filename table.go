package rle

import (
	"cmp"
	"iter"
	"slices"

	"github.com/ChevyRay/rle/errs"
	"github.com/ChevyRay/rle/internal/options"
)

// Table is the symbol table shared by the encoders and decoders.
//
// A Table stores every distinct element once. Elements keep the Index they
// were assigned on first insertion, and a second, sorted view over those
// indices makes lookups O(log n). Two elements that compare equal under the
// table's ordering are the same symbol; the first one inserted is kept.
//
// The zero Table has no ordering and cannot be used; construct tables with
// New, NewFunc, FromSlice or FromSeq.
//
// A Table is not safe for concurrent mutation. Read-only operations and the
// read-only encoders/decoders may run concurrently as long as nothing
// mutates the table meanwhile.
type Table[T any] struct {
	items   []T     // insertion order; position is the element's Index
	sorted  []Index // indices into items, ascending by element value
	compare func(a, b T) int
}

type tableConfig struct {
	capacity int
}

// TableOption configures a Table at construction time.
type TableOption = options.Option[*tableConfig]

// WithCapacity pre-allocates room for n distinct elements.
// Negative values are ignored.
func WithCapacity(n int) TableOption {
	return options.NoError(func(cfg *tableConfig) {
		cfg.capacity = max(n, 0)
	})
}

// New creates an empty Table ordered by cmp.Compare.
func New[T cmp.Ordered](opts ...TableOption) *Table[T] {
	return NewFunc(cmp.Compare[T], opts...)
}

// NewFunc creates an empty Table ordered by compare, which must define a
// total order: negative when a < b, zero when equal, positive when a > b.
//
// Panics if compare is nil.
func NewFunc[T any](compare func(a, b T) int, opts ...TableOption) *Table[T] {
	if compare == nil {
		panic("rle: NewFunc called with a nil compare function")
	}

	cfg := &tableConfig{}
	_ = options.Apply(cfg, opts...) // table options cannot fail

	return &Table[T]{
		items:   make([]T, 0, cfg.capacity),
		sorted:  make([]Index, 0, cfg.capacity),
		compare: compare,
	}
}

// FromSlice creates a Table holding the distinct elements of items, indexed
// in first-occurrence order.
func FromSlice[T cmp.Ordered](items []T, opts ...TableOption) *Table[T] {
	t := New[T](append([]TableOption{WithCapacity(len(items))}, opts...)...)
	t.ExtendFromSlice(items)

	return t
}

// FromSeq creates a Table holding the distinct elements yielded by seq,
// indexed in first-occurrence order.
func FromSeq[T cmp.Ordered](seq iter.Seq[T], opts ...TableOption) *Table[T] {
	t := New[T](opts...)
	t.Extend(seq)

	return t
}

// search binary-searches the sorted view for item and returns the insertion
// point in sorted, plus whether an equal element is already stored there.
// It panics with errs.ErrNoComparison on a zero-value Table.
func (t *Table[T]) search(item T) (int, bool) {
	if t.compare == nil {
		panic(errs.ErrNoComparison)
	}

	return slices.BinarySearchFunc(t.sorted, item, func(idx Index, target T) int {
		return t.compare(t.items[idx], target)
	})
}

// InsertOrGet returns the Index of item, appending it to the table first if
// no equal element is stored yet.
//
// Lookups are O(log n); an insertion additionally shifts the sorted view,
// which is O(n).
func (t *Table[T]) InsertOrGet(item T) Index {
	pos, found := t.search(item)
	if found {
		return t.sorted[pos]
	}

	idx := Index(len(t.items))
	t.items = append(t.items, item)
	t.sorted = slices.Insert(t.sorted, pos, idx)

	return idx
}

// Insert adds item to the table. Inserting an element that is already
// present is a no-op.
func (t *Table[T]) Insert(item T) {
	t.InsertOrGet(item)
}

// IndexOf returns the Index of item without modifying the table.
func (t *Table[T]) IndexOf(item T) (Index, bool) {
	pos, found := t.search(item)
	if !found {
		return 0, false
	}

	return t.sorted[pos], true
}

// Contains reports whether an element equal to item is stored.
func (t *Table[T]) Contains(item T) bool {
	_, found := t.search(item)
	return found
}

// Get returns the element at idx, or false if idx is out of bounds.
func (t *Table[T]) Get(idx Index) (T, bool) {
	if idx >= Index(len(t.items)) {
		var zero T
		return zero, false
	}

	return t.items[idx], true
}

// Slice returns the elements with indices in [lo, hi), or false if the range
// is out of bounds. The returned slice aliases the table and must not be
// modified.
func (t *Table[T]) Slice(lo, hi Index) ([]T, bool) {
	if lo > hi || hi > Index(len(t.items)) {
		return nil, false
	}

	return t.items[lo:hi:hi], true
}

// Len returns the number of distinct elements stored.
func (t *Table[T]) Len() int {
	return len(t.items)
}

// Clear removes every element. Allocated capacity is retained, and all
// previously issued indices become invalid.
func (t *Table[T]) Clear() {
	clear(t.items)
	t.items = t.items[:0]
	t.sorted = t.sorted[:0]
}

// Extend inserts every element yielded by seq.
func (t *Table[T]) Extend(seq iter.Seq[T]) {
	for item := range seq {
		t.InsertOrGet(item)
	}
}

// ExtendFromSlice inserts every element of items.
func (t *Table[T]) ExtendFromSlice(items []T) {
	for _, item := range items {
		t.InsertOrGet(item)
	}
}

// All iterates over the stored elements and their indices in insertion
// order. The sequence can be ranged over any number of times.
func (t *Table[T]) All() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		for i, item := range t.items {
			if !yield(Index(i), item) {
				return
			}
		}
	}
}

// Values iterates over the stored elements in insertion order.
func (t *Table[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range t.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Sorted iterates over the stored elements in ascending order.
func (t *Table[T]) Sorted() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, idx := range t.sorted {
			if !yield(t.items[idx]) {
				return
			}
		}
	}
}

// SortedAll iterates over the stored elements in ascending order together
// with their indices.
func (t *Table[T]) SortedAll() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		for _, idx := range t.sorted {
			if !yield(idx, t.items[idx]) {
				return
			}
		}
	}
}

// Items returns a copy of the stored elements in insertion order.
func (t *Table[T]) Items() []T {
	return slices.Clone(t.items)
}

// Clone returns an independent copy of the table with the same ordering and
// index assignment.
func (t *Table[T]) Clone() *Table[T] {
	return &Table[T]{
		items:   slices.Clone(t.items),
		sorted:  slices.Clone(t.sorted),
		compare: t.compare,
	}
}

// equal reports whether a and b are the same symbol under the table ordering.
func (t *Table[T]) equal(a, b T) bool {
	return t.compare(a, b) == 0
}
