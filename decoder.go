package rle

import "iter"

// resolve yields the next element of the cursor's pending run. An index the
// table cannot resolve ends the output and is recorded as an
// *IndexOutOfRangeError.
func (t *Table[T]) resolve(cur *runCursor) (T, error) {
	idx := cur.take()
	item, ok := t.Get(idx)
	if !ok {
		cur.reset()
		return item, &IndexOutOfRangeError{Index: idx, Len: t.Len()}
	}

	return item, nil
}

// Decoder expands a sequence of runs back into elements.
//
// Output ends at the first run whose index the table cannot resolve; Err
// then reports an *IndexOutOfRangeError. Runs with a Length below 1 yield
// their element once.
type Decoder[T any] struct {
	table *Table[T]
	runs  []Run
	cur   runCursor
	err   error
}

// Decode returns a Decoder over runs.
//
// Parameters:
//   - runs: Runs produced against a table with the same index assignment
//
// Returns:
//   - *Decoder[T]: Cursor over the decoded elements; check Err after the last one
func (t *Table[T]) Decode(runs []Run) *Decoder[T] {
	return &Decoder[T]{table: t, runs: runs}
}

// Next returns the next decoded element, or false when the runs are
// exhausted or an index failed to resolve.
func (d *Decoder[T]) Next() (T, bool) {
	var zero T
	if d.err != nil {
		return zero, false
	}

	if d.cur.idle() {
		if len(d.runs) == 0 {
			return zero, false
		}
		d.cur.load(d.runs[0])
		d.runs = d.runs[1:]
	}

	item, err := d.table.resolve(&d.cur)
	if err != nil {
		d.err = err
		return zero, false
	}

	return item, true
}

// Err returns the error that ended decoding early, or nil if the input was
// decoded completely (or is still being decoded).
func (d *Decoder[T]) Err() error {
	return d.err
}

// All returns the remaining elements as a sequence. Ranging over it
// consumes the Decoder; check Err afterwards.
func (d *Decoder[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := d.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// AppendDecodedRuns decodes runs and appends the elements to dst.
// On an unresolvable index it returns the elements decoded so far together
// with the error.
func (t *Table[T]) AppendDecodedRuns(dst []T, runs []Run) ([]T, error) {
	dec := t.Decode(runs)
	for item := range dec.All() {
		dst = append(dst, item)
	}

	return dst, dec.Err()
}
