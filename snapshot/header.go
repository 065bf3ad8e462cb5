package snapshot

import (
	"fmt"

	"github.com/ChevyRay/rle/endian"
	"github.com/ChevyRay/rle/errs"
	"github.com/ChevyRay/rle/format"
)

const (
	// Magic identifies a snapshot container.
	Magic = "RLET"

	// Version is the container version written by Encode.
	Version uint8 = 1

	// HeaderSize is the fixed size of the container header in bytes.
	HeaderSize = 24

	flagBigEndian uint8 = 0x01
	knownFlags          = flagBigEndian
)

// Header is the decoded fixed-size header of a snapshot.
type Header struct {
	Version     uint8
	Format      format.SnapshotFormat
	Compression format.CompressionType
	BigEndian   bool
	Count       uint32 // number of table elements
	PayloadLen  uint32 // stored (possibly compressed) payload size
	Checksum    uint64 // xxHash64 of the uncompressed payload
}

func (h Header) engine() endian.EndianEngine {
	return endian.Select(h.BigEndian)
}

// appendTo appends the encoded header to dst.
func (h Header) appendTo(dst []byte) []byte {
	engine := h.engine()

	var flags uint8
	if h.BigEndian {
		flags |= flagBigEndian
	}

	dst = append(dst, Magic...)
	dst = append(dst, h.Version, uint8(h.Format), uint8(h.Compression), flags)
	dst = engine.AppendUint32(dst, h.Count)
	dst = engine.AppendUint32(dst, h.PayloadLen)
	dst = engine.AppendUint64(dst, h.Checksum)

	return dst
}

// ReadHeader decodes and validates the header at the start of data.
//
// It does not look at the payload beyond checking that data is long enough
// to hold it.
//
// Returns:
//   - Header: The decoded header
//   - error: errs.ErrInvalidSnapshot for short input, a bad magic or unknown
//     flags; errs.ErrUnsupportedVersion, errs.ErrInvalidFormat or
//     errs.ErrInvalidCompression for unknown field values
func ReadHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: need %d header bytes, got %d", errs.ErrInvalidSnapshot, HeaderSize, len(data))
	}

	if string(data[0:4]) != Magic {
		return Header{}, fmt.Errorf("%w: bad magic %q", errs.ErrInvalidSnapshot, data[0:4])
	}

	h := Header{
		Version:     data[4],
		Format:      format.SnapshotFormat(data[5]),
		Compression: format.CompressionType(data[6]),
	}

	if h.Version != Version {
		return Header{}, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}

	flags := data[7]
	if flags&^knownFlags != 0 {
		return Header{}, fmt.Errorf("%w: unknown flags 0x%02x", errs.ErrInvalidSnapshot, flags)
	}
	h.BigEndian = flags&flagBigEndian != 0

	if !h.Format.IsValid() {
		return Header{}, fmt.Errorf("%w: 0x%02x", errs.ErrInvalidFormat, uint8(h.Format))
	}

	if !h.Compression.IsValid() {
		return Header{}, fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompression, uint8(h.Compression))
	}

	engine := h.engine()
	h.Count = engine.Uint32(data[8:12])
	h.PayloadLen = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])

	if uint64(len(data)-HeaderSize) != uint64(h.PayloadLen) {
		return Header{}, fmt.Errorf("%w: payload is %d bytes, header says %d",
			errs.ErrInvalidSnapshot, len(data)-HeaderSize, h.PayloadLen)
	}

	return h, nil
}
