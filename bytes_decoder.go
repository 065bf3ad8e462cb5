package rle

import (
	"fmt"
	"iter"

	"github.com/ChevyRay/rle/errs"
)

// BytesDecoder expands a byte record stream back into elements.
//
// Output ends early when a record's index cannot be resolved or when a
// record announces a length byte that is missing; Err reports which.
// An explicit length of 0 yields the element once.
type BytesDecoder[T any] struct {
	table *Table[T]
	data  []byte
	cur   runCursor
	err   error
}

// DecodeBytes returns a BytesDecoder over data. The table must assign the
// same indices as the one used to encode the stream.
//
// Parameters:
//   - data: Byte record stream
//
// Returns:
//   - *BytesDecoder[T]: Cursor over the decoded elements; Err reports an
//     unresolvable index (*IndexOutOfRangeError) or errs.ErrTruncatedRecord
func (t *Table[T]) DecodeBytes(data []byte) *BytesDecoder[T] {
	return &BytesDecoder[T]{table: t, data: data}
}

// readRecord consumes one byte record from the input.
func (d *BytesDecoder[T]) readRecord() (Run, bool) {
	if len(d.data) == 0 {
		return Run{}, false
	}

	head := d.data[0]
	d.data = d.data[1:]
	r := Run{Index: Index(head >> 1), Length: 1}

	if head&lengthFlag != 0 {
		if len(d.data) == 0 {
			d.err = fmt.Errorf("%w: record for index %d has no length byte", errs.ErrTruncatedRecord, r.Index)
			return Run{}, false
		}
		r.Length = int(d.data[0])
		d.data = d.data[1:]
	}

	return r, true
}

// Next returns the next decoded element, or false at the end of the stream
// or on a decoding failure.
func (d *BytesDecoder[T]) Next() (T, bool) {
	var zero T
	if d.err != nil {
		return zero, false
	}

	if d.cur.idle() {
		r, ok := d.readRecord()
		if !ok {
			return zero, false
		}
		d.cur.load(r)
	}

	item, err := d.table.resolve(&d.cur)
	if err != nil {
		d.err = err
		return zero, false
	}

	return item, true
}

// Err returns the error that ended decoding early, or nil.
func (d *BytesDecoder[T]) Err() error {
	return d.err
}

// All returns the remaining elements as a sequence. Ranging over it
// consumes the BytesDecoder; check Err afterwards.
func (d *BytesDecoder[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := d.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// AppendDecoded decodes the byte stream data and appends the elements to
// dst. On a decoding failure it returns the elements decoded so far
// together with the error.
func (t *Table[T]) AppendDecoded(dst []T, data []byte) ([]T, error) {
	dec := t.DecodeBytes(data)
	for item := range dec.All() {
		dst = append(dst, item)
	}

	return dst, dec.Err()
}
