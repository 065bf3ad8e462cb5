package rle

import "iter"

// runLength returns the length of the maximal run of elements equal to
// items[pos], starting at pos.
func (t *Table[T]) runLength(items []T, pos int) int {
	n := 1
	for pos+n < len(items) && t.equal(items[pos], items[pos+n]) {
		n++
	}

	return n
}

// Encoder run-length encodes a slice of elements against a table it does not
// modify. Runs are greedy and leftmost-maximal with no cap on their length.
//
// An Encoder is a single-pass cursor. The table must not be mutated while
// the Encoder is in use.
type Encoder[T any] struct {
	table *Table[T]
	items []T
	pos   int
}

// Encode returns an Encoder over items.
//
// Every element is checked before any run is produced; if one is missing
// from the table, Encode returns a *MissingItemError holding the position of
// the first missing element and no Encoder.
//
// Parameters:
//   - items: Sequence to encode; it must not change while the Encoder is in use
//
// Returns:
//   - *Encoder[T]: Cursor over the runs of items
//   - error: *MissingItemError if an element is not in the table
func (t *Table[T]) Encode(items []T) (*Encoder[T], error) {
	for i, item := range items {
		if !t.Contains(item) {
			return nil, &MissingItemError{Position: i}
		}
	}

	return &Encoder[T]{table: t, items: items}, nil
}

// Next returns the next run, or false once the input is exhausted.
func (e *Encoder[T]) Next() (Run, bool) {
	if e.pos >= len(e.items) {
		return Run{}, false
	}

	n := e.table.runLength(e.items, e.pos)
	idx, _ := e.table.IndexOf(e.items[e.pos])
	e.pos += n

	return Run{Index: idx, Length: n}, true
}

// All returns the remaining runs as a sequence. Ranging over it consumes
// the Encoder.
func (e *Encoder[T]) All() iter.Seq[Run] {
	return func(yield func(Run) bool) {
		for {
			r, ok := e.Next()
			if !ok || !yield(r) {
				return
			}
		}
	}
}

// Runs encodes items and collects every run into a slice.
func (t *Table[T]) Runs(items []T) ([]Run, error) {
	enc, err := t.Encode(items)
	if err != nil {
		return nil, err
	}

	runs := make([]Run, 0, estimateRuns(len(items)))
	for r := range enc.All() {
		runs = append(runs, r)
	}

	return runs, nil
}

// EncoderMut run-length encodes a slice of elements and inserts every
// element it has not seen into the table, in first-occurrence order.
// It cannot fail.
//
// The EncoderMut needs exclusive use of the table until it is exhausted or
// abandoned. Symbols inserted before an abandoned encode stay valid.
type EncoderMut[T any] struct {
	table *Table[T]
	items []T
	pos   int
}

// EncodeMut returns an EncoderMut over items.
//
// Parameters:
//   - items: Sequence to encode; new elements are inserted in first-occurrence order
//
// Returns:
//   - *EncoderMut[T]: Cursor over the runs of items
func (t *Table[T]) EncodeMut(items []T) *EncoderMut[T] {
	return &EncoderMut[T]{table: t, items: items}
}

// Next returns the next run, inserting its element into the table if
// needed, or false once the input is exhausted.
func (e *EncoderMut[T]) Next() (Run, bool) {
	if e.pos >= len(e.items) {
		return Run{}, false
	}

	n := e.table.runLength(e.items, e.pos)
	idx := e.table.InsertOrGet(e.items[e.pos])
	e.pos += n

	return Run{Index: idx, Length: n}, true
}

// All returns the remaining runs as a sequence. Ranging over it consumes
// the EncoderMut.
func (e *EncoderMut[T]) All() iter.Seq[Run] {
	return func(yield func(Run) bool) {
		for {
			r, ok := e.Next()
			if !ok || !yield(r) {
				return
			}
		}
	}
}

// RunsMut encodes items, growing the table as needed, and collects every
// run into a slice.
func (t *Table[T]) RunsMut(items []T) []Run {
	runs := make([]Run, 0, estimateRuns(len(items)))
	for r := range t.EncodeMut(items).All() {
		runs = append(runs, r)
	}

	return runs
}

// estimateRuns guesses a starting capacity for collected runs.
func estimateRuns(n int) int {
	return min(n, 64)
}
