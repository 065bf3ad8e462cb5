package snapshot

import (
	"cmp"
	"encoding/json"
	"fmt"
	"math"

	"sigs.k8s.io/yaml"

	"github.com/ChevyRay/rle"
	"github.com/ChevyRay/rle/compress"
	"github.com/ChevyRay/rle/endian"
	"github.com/ChevyRay/rle/errs"
	"github.com/ChevyRay/rle/format"
	"github.com/ChevyRay/rle/internal/hash"
	"github.com/ChevyRay/rle/internal/options"
	"github.com/ChevyRay/rle/internal/pool"
)

// Encode serializes the element list of t into a snapshot container.
//
// Parameters:
//   - t: Table to persist; it is only read
//   - opts: Format, compression and byte order options
//
// Returns:
//   - []byte: The encoded container, owned by the caller
//   - error: Invalid option, compression failure, or errs.ErrInvalidElement
//     for an element that would not survive serialization unchanged
func Encode[T any](t *rle.Table[T], opts ...Option) ([]byte, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if uint64(t.Len()) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d elements do not fit the header", errs.ErrInvalidSnapshot, t.Len())
	}

	payload, err := marshalItems(t, cfg.format)
	if err != nil {
		return nil, err
	}
	checksum := hash.Sum(payload)

	codec, err := compress.CreateCodec(cfg.compression, "snapshot")
	if err != nil {
		return nil, err
	}
	stored, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("snapshot: compress payload: %w", err)
	}
	if uint64(len(stored)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: payload of %d bytes does not fit the header", errs.ErrInvalidSnapshot, len(stored))
	}

	h := Header{
		Version:     Version,
		Format:      cfg.format,
		Compression: cfg.compression,
		BigEndian:   endian.IsBigEndian(cfg.engine),
		Count:       uint32(t.Len()),
		PayloadLen:  uint32(len(stored)),
		Checksum:    checksum,
	}

	buf := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(buf)

	buf.Grow(HeaderSize + len(stored))
	buf.B = h.appendTo(buf.B)
	buf.MustWrite(stored)

	return buf.Clone(), nil
}

// Decode restores a table of an ordered element type from a snapshot.
func Decode[T cmp.Ordered](data []byte) (*rle.Table[T], error) {
	t := rle.New[T]()
	if err := DecodeInto(data, t); err != nil {
		return nil, err
	}

	return t, nil
}

// DecodeInto replaces the contents of t with the elements stored in data.
// t supplies the ordering, which must be the one the snapshot was taken
// with for indices to line up. On error t is left unchanged.
//
// Returns:
//   - error: Any header error of ReadHeader, errs.ErrChecksumMismatch if the
//     payload was altered, errs.ErrInvalidSnapshot if the stored element count
//     does not match the decoded list
func DecodeInto[T any](data []byte, t *rle.Table[T]) error {
	h, err := ReadHeader(data)
	if err != nil {
		return err
	}

	codec, err := compress.CreateCodec(h.Compression, "snapshot")
	if err != nil {
		return err
	}
	payload, err := codec.Decompress(data[HeaderSize:])
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidSnapshot, err)
	}

	if sum := hash.Sum(payload); sum != h.Checksum {
		return fmt.Errorf("%w: got %016x, want %016x", errs.ErrChecksumMismatch, sum, h.Checksum)
	}

	restored := t.Clone()
	if err := unmarshalItems(payload, h.Format, restored); err != nil {
		return err
	}

	if restored.Len() != int(h.Count) {
		return fmt.Errorf("%w: header lists %d elements, payload holds %d distinct",
			errs.ErrInvalidSnapshot, h.Count, restored.Len())
	}

	*t = *restored

	return nil
}

// Fingerprint returns the xxHash64 of the table's canonical JSON element
// list. Tables with equal fingerprints assign the same index to every
// element, so byte streams can be exchanged between them. Tables holding
// strings that are not valid UTF-8 have no fingerprint and return
// errs.ErrInvalidElement.
func Fingerprint[T any](t *rle.Table[T]) (uint64, error) {
	d := hash.NewDigest()
	if err := json.NewEncoder(d).Encode(t); err != nil {
		return 0, fmt.Errorf("snapshot: fingerprint: %w", err)
	}

	return d.Sum64(), nil
}

func marshalItems[T any](t *rle.Table[T], f format.SnapshotFormat) ([]byte, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("%w: 0x%02x", errs.ErrInvalidFormat, uint8(f))
	}

	// YAML goes through JSON so both formats reject the same elements and
	// element errors keep their chain.
	payload, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("snapshot: marshal %s items: %w", f, err)
	}

	if f == format.SnapshotYAML {
		payload, err = yaml.JSONToYAML(payload)
		if err != nil {
			return nil, fmt.Errorf("snapshot: marshal %s items: %w", f, err)
		}
	}

	return payload, nil
}

func unmarshalItems[T any](payload []byte, f format.SnapshotFormat, t *rle.Table[T]) error {
	var err error

	switch f {
	case format.SnapshotJSON:
		err = json.Unmarshal(payload, t)
	case format.SnapshotYAML:
		err = yaml.Unmarshal(payload, t)
	default:
		return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidFormat, uint8(f))
	}

	if err != nil {
		return fmt.Errorf("%w: %s items: %w", errs.ErrInvalidSnapshot, f, err)
	}

	return nil
}
