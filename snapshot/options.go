package snapshot

import (
	"fmt"

	"github.com/ChevyRay/rle/endian"
	"github.com/ChevyRay/rle/errs"
	"github.com/ChevyRay/rle/format"
	"github.com/ChevyRay/rle/internal/options"
)

type config struct {
	format      format.SnapshotFormat
	compression format.CompressionType
	engine      endian.EndianEngine
}

func defaultConfig() *config {
	return &config{
		format:      format.SnapshotJSON,
		compression: format.CompressionNone,
		engine:      endian.GetLittleEndianEngine(),
	}
}

// Option configures Encode.
type Option = options.Option[*config]

// WithFormat selects how the element list is serialized.
// The default is format.SnapshotJSON.
func WithFormat(f format.SnapshotFormat) Option {
	return options.New(func(cfg *config) error {
		if !f.IsValid() {
			return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidFormat, uint8(f))
		}
		cfg.format = f

		return nil
	})
}

// WithCompression selects the codec applied to the serialized element list.
// The default is format.CompressionNone.
func WithCompression(c format.CompressionType) Option {
	return options.New(func(cfg *config) error {
		if !c.IsValid() {
			return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompression, uint8(c))
		}
		cfg.compression = c

		return nil
	})
}

// WithLittleEndian writes the header integers little-endian. This is the default.
func WithLittleEndian() Option {
	return options.NoError(func(cfg *config) {
		cfg.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian writes the header integers big-endian.
func WithBigEndian() Option {
	return options.NoError(func(cfg *config) {
		cfg.engine = endian.GetBigEndianEngine()
	})
}
