// Package rle run-length encodes sequences of any totally ordered element
// type against a symbol table.
//
// A Table stores each distinct element once and gives it a stable Index.
// Sequences are encoded as runs of (Index, Length) pairs, and runs can be
// packed further into a compact byte format for tables of up to 127 symbols.
//
// # Core Features
//
//   - Generic symbol table with insertion-order indices and a sorted lookup view
//   - Read-only encoding against an existing table, or mutating encoding that
//     grows the table as new elements appear
//   - Bit-exact 1-2 byte record format with a 7-bit index and chained runs
//   - Pull-based cursors (Next) and range-over-func sequences (All)
//   - JSON persistence of the element list; see the snapshot package for a
//     checksummed, optionally compressed container
//
// # Basic Usage
//
// Build a table, then encode a sequence into runs:
//
//	table := rle.FromSlice([]rune("ABC"))
//	enc, err := table.Encode([]rune("AAAAABBBBBBBBBBCCCAAAAAAAAAA"))
//	if err != nil {
//	    return err
//	}
//	for run := range enc.All() {
//	    item, _ := table.Get(run.Index)
//	    fmt.Printf("%d%c ", run.Length, item)
//	}
//	// 5A 10B 3C 10A
//
// Or let the table be built while encoding straight to bytes:
//
//	table := rle.New[rune]()
//	data, err := table.AppendBytesMut(nil, []rune("AAAAABBBBBBBBBBCCCAAAAAAAAAA"))
//	// data: 01 05 03 0A 05 03 01 0A
//
//	decoded, err := table.AppendDecoded(nil, data)
//
// # Byte Format
//
// Each record is one or two bytes:
//
//	byte 0, bit 0:     length-follows flag
//	byte 0, bits 1-7:  table index (0-127)
//	byte 1:            run length (1-127), present only if the flag is set
//
// A record without a length byte stands for a run of one. Runs longer than
// 127 are written as several consecutive records with the same index. The
// table itself is not part of the stream; both sides must hold tables with
// the same index assignment.
//
// # Errors
//
// Encode and EncodeBytes validate their input before producing anything and
// return *MissingItemError or *TableTooLargeError. EncodeBytesMut checks
// each index as the table grows and stops at the first overflow; its Err
// method (or the error yielded by All) must be checked, since a truncated
// stream cannot be decoded. The decoders stop at the first index the table
// cannot resolve and report it through Err. All error values match the
// sentinels of package errs under errors.Is.
//
// # Thread Safety
//
// A Table is not safe for concurrent mutation. Read-only encoders and
// decoders may share a table across goroutines as long as nothing mutates
// it. EncodeMut and EncodeBytesMut need exclusive use of the table until
// they are exhausted or dropped.
package rle
