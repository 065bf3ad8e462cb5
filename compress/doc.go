// Package compress provides the compression codecs applied to snapshot
// payloads and packed RLE byte streams.
//
// Run-length encoding removes repetition along one axis only. A table's
// element list, or a stream of byte records with recurring patterns, often
// still shrinks under a general-purpose compressor, so the snapshot package
// lets callers pick one of the codecs here for its payload.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): payload is stored as is
//   - Zstd (format.CompressionZstd): best ratio, moderate speed
//   - S2 (format.CompressionS2): balanced speed and ratio
//   - LZ4 (format.CompressionLZ4): fastest decompression
//
// Codecs are obtained by type:
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//
// Measure reports sizes and timings of one round trip, which is handy when
// choosing an algorithm for a given table:
//
//	stats, err := compress.Measure(format.CompressionZstd, payload)
//	fmt.Printf("%.1f%% saved\n", stats.SpaceSavings())
//
// # Zstd Backends
//
// Zstd uses the pure Go github.com/klauspost/compress/zstd by default.
// Building with cgo enabled and the gozstd tag switches to
// github.com/valyala/gozstd, the C libzstd binding. Both produce standard
// zstd frames, so data written by one decodes with the other.
//
// # Thread Safety
//
// All codecs are safe for concurrent use. Encoder and decoder state is kept
// in sync.Pools rather than in the codec values.
package compress
