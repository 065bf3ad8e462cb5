// Package errs holds the sentinel errors returned by rle and its helper
// packages. Callers match them with errors.Is; the concrete error values
// returned by the rle package carry the offending size, position or index.
package errs

import "errors"

var (
	// ErrTableTooLarge indicates a byte encoding was attempted against a table
	// whose indices no longer fit in the 7 bits of a byte record.
	ErrTableTooLarge = errors.New("table too large for byte encoding")

	// ErrTableMissingItems indicates a read-only encode found an element that
	// is not present in the table.
	ErrTableMissingItems = errors.New("item not in table")

	// ErrIndexOutOfRange indicates a decoder met a run whose index does not
	// resolve in the table.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrTruncatedRecord indicates a byte record announced a length byte that
	// is missing from the input.
	ErrTruncatedRecord = errors.New("truncated byte record")

	// ErrNoComparison indicates a Table was used without an element ordering,
	// typically a zero-value Table that was not built with New or NewFunc.
	ErrNoComparison = errors.New("table has no comparison function")

	// ErrInvalidElement indicates a table element cannot be serialized
	// without changing its value, such as a string holding invalid UTF-8.
	ErrInvalidElement = errors.New("element cannot be serialized unchanged")

	// ErrInvalidSnapshot indicates the snapshot data is malformed.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrUnsupportedVersion indicates the snapshot was written by an unknown version.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")

	// ErrChecksumMismatch indicates the snapshot payload does not match its checksum.
	ErrChecksumMismatch = errors.New("snapshot checksum mismatch")

	// ErrInvalidFormat indicates an unknown snapshot element-list format.
	ErrInvalidFormat = errors.New("invalid snapshot format")

	// ErrInvalidCompression indicates an unknown compression type.
	ErrInvalidCompression = errors.New("invalid compression type")
)
