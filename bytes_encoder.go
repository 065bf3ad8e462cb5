package rle

import (
	"io"
	"iter"

	"github.com/ChevyRay/rle/internal/pool"
)

// recordPacker turns runs into byte records. Each record is one byte
// holding the index in bits 1-7 and the length-follows flag in bit 0,
// optionally followed by a length byte in [2, MaxRunLength]. Runs longer than
// MaxRunLength stay pending and are chained into further records with the
// same index.
type recordPacker struct {
	cur       runCursor
	lenByte   byte
	lenQueued bool
}

// queued returns the length byte of the previous record, if one is due.
func (p *recordPacker) queued() (byte, bool) {
	if !p.lenQueued {
		return 0, false
	}
	p.lenQueued = false

	return p.lenByte, true
}

// head emits the first byte of the next record of the pending run.
func (p *recordPacker) head() byte {
	idx, n := p.cur.takeChunk(MaxRunLength)
	b := byte(idx) << 1
	if n > 1 {
		p.lenByte = byte(n)
		p.lenQueued = true
		b |= lengthFlag
	}

	return b
}

// BytesEncoder packs the runs of a read-only Encoder into the byte record
// format. See EncodeBytes.
type BytesEncoder[T any] struct {
	runs   *Encoder[T]
	packer recordPacker
}

// EncodeBytes returns a BytesEncoder over items.
//
// Byte records store the index in 7 bits, so the table must hold fewer than
// MaxByteTableLen elements; otherwise EncodeBytes returns a
// *TableTooLargeError before anything is encoded. Elements missing from the
// table produce a *MissingItemError as with Encode.
//
// Record layout:
//
//	bit 0 of byte 0:    1 if a length byte follows
//	bits 1-7 of byte 0: table index (0-127)
//	byte 1 (optional):  run length (1-127); absent means length 1
//
// Parameters:
//   - items: Sequence to encode
//
// Returns:
//   - *BytesEncoder[T]: Cursor over the bytes of the record stream
//   - error: *TableTooLargeError if the table holds MaxByteTableLen or more
//     elements, otherwise *MissingItemError if an element is not in the table
func (t *Table[T]) EncodeBytes(items []T) (*BytesEncoder[T], error) {
	if t.Len() >= MaxByteTableLen {
		return nil, &TableTooLargeError{Size: t.Len()}
	}

	enc, err := t.Encode(items)
	if err != nil {
		return nil, err
	}

	return &BytesEncoder[T]{runs: enc}, nil
}

// Next returns the next byte of the stream, or false at the end.
func (e *BytesEncoder[T]) Next() (byte, bool) {
	if b, ok := e.packer.queued(); ok {
		return b, true
	}

	if e.packer.cur.idle() {
		r, ok := e.runs.Next()
		if !ok {
			return 0, false
		}
		e.packer.cur.load(r)
	}

	return e.packer.head(), true
}

// All returns the remaining bytes as a sequence. Ranging over it consumes
// the BytesEncoder.
func (e *BytesEncoder[T]) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for {
			b, ok := e.Next()
			if !ok || !yield(b) {
				return
			}
		}
	}
}

// AppendBytes byte-encodes items and appends the stream to dst.
// On error dst is returned unchanged.
func (t *Table[T]) AppendBytes(dst []byte, items []T) ([]byte, error) {
	enc, err := t.EncodeBytes(items)
	if err != nil {
		return dst, err
	}

	for b := range enc.All() {
		dst = append(dst, b)
	}

	return dst, nil
}

// WriteBytes byte-encodes items into a pooled buffer and writes the stream
// to w. Nothing is written if encoding fails.
func (t *Table[T]) WriteBytes(w io.Writer, items []T) (int64, error) {
	enc, err := t.EncodeBytes(items)
	if err != nil {
		return 0, err
	}

	buf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(buf)

	for b := range enc.All() {
		_ = buf.WriteByte(b)
	}

	return buf.WriteTo(w)
}

// BytesEncoderMut packs the runs of an EncoderMut into the byte record
// format, growing the table as new elements appear. See EncodeBytesMut.
type BytesEncoderMut[T any] struct {
	runs   *EncoderMut[T]
	packer recordPacker
	err    error
}

// EncodeBytesMut returns a BytesEncoderMut over items.
//
// Because the table grows while encoding, each run's index is checked as it
// is produced. The first run whose index exceeds MaxByteIndex stops the
// stream: Next returns false and Err reports a *TableTooLargeError with the
// table length at that moment. A stream cut short this way is not
// decodable, so callers must check Err (or use All, which yields the error)
// before using the bytes. Elements inserted up to that point remain in the
// table.
//
// Parameters:
//   - items: Sequence to encode; new elements are inserted in first-occurrence order
//
// Returns:
//   - *BytesEncoderMut[T]: Cursor over the bytes of the record stream; an
//     index overflow is reported by Err and by All
func (t *Table[T]) EncodeBytesMut(items []T) *BytesEncoderMut[T] {
	return &BytesEncoderMut[T]{runs: t.EncodeMut(items)}
}

// Next returns the next byte of the stream, or false at the end of the
// input or after an index overflow.
func (e *BytesEncoderMut[T]) Next() (byte, bool) {
	if e.err != nil {
		return 0, false
	}

	if b, ok := e.packer.queued(); ok {
		return b, true
	}

	if e.packer.cur.idle() {
		r, ok := e.runs.Next()
		if !ok {
			return 0, false
		}
		if r.Index > MaxByteIndex {
			e.err = &TableTooLargeError{Size: e.runs.table.Len()}
			return 0, false
		}
		e.packer.cur.load(r)
	}

	return e.packer.head(), true
}

// Err returns the overflow error that stopped the stream, or nil.
func (e *BytesEncoderMut[T]) Err() error {
	return e.err
}

// All returns the remaining bytes paired with a nil error. If an index
// overflows, the sequence ends with a single (0, err) pair.
func (e *BytesEncoderMut[T]) All() iter.Seq2[byte, error] {
	return func(yield func(byte, error) bool) {
		for {
			b, ok := e.Next()
			if !ok {
				if e.err != nil {
					yield(0, e.err)
				}
				return
			}
			if !yield(b, nil) {
				return
			}
		}
	}
}

// AppendBytesMut byte-encodes items, growing the table as needed, and
// appends the stream to dst. On error dst is returned unchanged; elements
// inserted before the overflow remain in the table.
func (t *Table[T]) AppendBytesMut(dst []byte, items []T) ([]byte, error) {
	out := dst
	for b, err := range t.EncodeBytesMut(items).All() {
		if err != nil {
			return dst, err
		}
		out = append(out, b)
	}

	return out, nil
}
