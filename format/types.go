// Package format defines the enumerations shared by the snapshot container
// and the compression codecs.
package format

type (
	CompressionType uint8
	SnapshotFormat  uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	SnapshotJSON SnapshotFormat = 0x1 // SnapshotJSON stores the element list as a JSON array.
	SnapshotYAML SnapshotFormat = 0x2 // SnapshotYAML stores the element list as a YAML sequence.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is one of the known compression types.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

func (f SnapshotFormat) String() string {
	switch f {
	case SnapshotJSON:
		return "JSON"
	case SnapshotYAML:
		return "YAML"
	default:
		return "Unknown"
	}
}

// IsValid reports whether f is one of the known snapshot formats.
func (f SnapshotFormat) IsValid() bool {
	return f == SnapshotJSON || f == SnapshotYAML
}
