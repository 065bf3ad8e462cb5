// Package snapshot persists rle symbol tables in a small checksummed
// container.
//
// Byte streams produced by the rle encoders do not carry the table they were
// encoded against, so the receiving side needs a table with the same index
// assignment. A snapshot stores the table's element list in insertion order,
// which is all that is needed to rebuild it.
//
// # Container Layout
//
//	offset size field
//	0      4    magic "RLET"
//	4      1    version (1)
//	5      1    element list format (format.SnapshotFormat)
//	6      1    compression (format.CompressionType)
//	7      1    flags (bit 0: header integers are big-endian)
//	8      4    element count
//	12     4    payload length, as stored
//	16     8    xxHash64 of the uncompressed payload
//	24     ...  payload
//
// The element list is a JSON array (default) or a YAML sequence, optionally
// compressed with one of the codecs of package compress.
//
// # Usage
//
//	data, err := snapshot.Encode(table,
//	    snapshot.WithCompression(format.CompressionZstd),
//	)
//
//	restored, err := snapshot.Decode[string](data)
//
// Tables with a custom ordering are restored with DecodeInto:
//
//	restored := rle.NewFunc(comparePoints)
//	err := snapshot.DecodeInto(data, restored)
//
// Fingerprint gives a cheap way to check that two peers hold the same table
// before exchanging byte streams.
package snapshot
