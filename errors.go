package rle

import (
	"fmt"

	"github.com/ChevyRay/rle/errs"
)

// MissingItemError is returned by the read-only encoders when an element is
// not present in the table. It matches errs.ErrTableMissingItems.
type MissingItemError struct {
	// Position is the 0-based offset of the first offending element in the
	// input slice.
	Position int
}

func (e *MissingItemError) Error() string {
	return fmt.Sprintf("%s: item at [%d] is not in the table", errs.ErrTableMissingItems, e.Position)
}

func (e *MissingItemError) Unwrap() error {
	return errs.ErrTableMissingItems
}

// TableTooLargeError is returned when a byte encoding needs an index that
// does not fit in 7 bits. It matches errs.ErrTableTooLarge.
type TableTooLargeError struct {
	// Size is the table length at the time of the failure.
	Size int
}

func (e *TableTooLargeError) Error() string {
	return fmt.Sprintf("%s: table size is %d, byte encoding supports at most %d items",
		errs.ErrTableTooLarge, e.Size, MaxByteTableLen-1)
}

func (e *TableTooLargeError) Unwrap() error {
	return errs.ErrTableTooLarge
}

// IndexOutOfRangeError is reported by the decoders when a run refers to an
// index the table does not hold. It matches errs.ErrIndexOutOfRange.
type IndexOutOfRangeError struct {
	Index Index
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%s: index %d, table length %d", errs.ErrIndexOutOfRange, e.Index, e.Len)
}

func (e *IndexOutOfRangeError) Unwrap() error {
	return errs.ErrIndexOutOfRange
}
