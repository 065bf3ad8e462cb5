package compress

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ChevyRay/rle/errs"
	"github.com/ChevyRay/rle/format"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp": NewNoOpCompressor(),
		"LZ4":  NewLZ4Compressor(),
		"S2":   NewS2Compressor(),
		"Zstd": NewZstdCompressor(),
	}
}

// packedStream imitates a byte record stream: index bytes with the length
// flag set, each followed by a run length.
func packedStream(records int) []byte {
	data := make([]byte, 0, records*2)
	for i := range records {
		data = append(data, byte(i%5)<<1|0x01, byte(1+(i*37)%127))
	}

	return data
}

func TestCreateCodec(t *testing.T) {
	tests := []struct {
		compression format.CompressionType
		want        Codec
	}{
		{format.CompressionNone, NoOpCompressor{}},
		{format.CompressionZstd, ZstdCompressor{}},
		{format.CompressionS2, S2Compressor{}},
		{format.CompressionLZ4, LZ4Compressor{}},
	}

	for _, tt := range tests {
		t.Run(tt.compression.String(), func(t *testing.T) {
			codec, err := CreateCodec(tt.compression, "snapshot")
			require.NoError(t, err)
			require.IsType(t, tt.want, codec)

			shared, err := GetCodec(tt.compression)
			require.NoError(t, err)
			require.IsType(t, tt.want, shared)
		})
	}

	_, err := CreateCodec(format.CompressionType(0x7F), "snapshot")
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
	require.Contains(t, err.Error(), "snapshot")

	_, err = GetCodec(0)
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestCompressionStats_Calculations(t *testing.T) {
	tests := []struct {
		name      string
		stats     CompressionStats
		wantRatio float64
		wantSaved float64
	}{
		{name: "half", stats: CompressionStats{OriginalSize: 1000, CompressedSize: 500}, wantRatio: 0.5, wantSaved: 50},
		{name: "none", stats: CompressionStats{OriginalSize: 1000, CompressedSize: 1000}, wantRatio: 1, wantSaved: 0},
		{name: "expanded", stats: CompressionStats{OriginalSize: 100, CompressedSize: 125}, wantRatio: 1.25, wantSaved: -25},
		{name: "empty", stats: CompressionStats{}, wantRatio: 0, wantSaved: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.wantRatio, tt.stats.CompressionRatio(), 1e-9)
			require.InDelta(t, tt.wantSaved, tt.stats.SpaceSavings(), 1e-9)
		})
	}
}

func TestMeasure(t *testing.T) {
	data := packedStream(4096)

	for _, ct := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			stats, err := Measure(ct, data)
			require.NoError(t, err)
			require.Equal(t, ct, stats.Algorithm)
			require.Equal(t, int64(len(data)), stats.OriginalSize)
			require.Positive(t, stats.CompressedSize)
			if ct != format.CompressionNone {
				require.Less(t, stats.CompressionRatio(), 1.0, "a periodic stream must shrink")
			}
		})
	}

	_, err := Measure(format.CompressionType(9), data)
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Nil(t, compressed)

			decompressed, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Nil(t, decompressed)

			compressed, err = codec.Compress([]byte{})
			require.NoError(t, err)

			decompressed, err = codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{name: "single_record", data: []byte{0x00}},
		{name: "json_items", data: []byte(`["GET","PUT","DELETE","PATCH"]`)},
		{name: "packed_stream", data: packedStream(8192)},
		{name: "one_long_run", data: bytes.Repeat([]byte{0x01, 0x7F}, 64*1024)},
		{
			name: "mixed",
			data: func() []byte {
				data := make([]byte, 4096)
				for i := range data {
					if i%100 < 50 {
						data[i] = byte(i % 256)
					} else {
						data[i] = byte((i*7 + i*i) % 256)
					}
				}

				return data
			}(),
		},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					compressed, err := codec.Compress(tc.data)
					require.NoError(t, err)
					require.NotNil(t, compressed)

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, tc.data, decompressed)
				})
			}
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	invalidInputs := []struct {
		name string
		data []byte
	}{
		{name: "random_bytes", data: []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{name: "text_as_compressed", data: []byte("this is not compressed data")},
		{name: "corrupted_header", data: []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			if codecName == "NoOp" {
				t.Skip("NoOp codec doesn't validate data")
			}

			for _, input := range invalidInputs {
				t.Run(input.name, func(t *testing.T) {
					_, err := codec.Decompress(input.data)
					require.Error(t, err)
				})
			}
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	const numGoroutines = 16
	data := packedStream(1024)

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			var wg sync.WaitGroup
			errCh := make(chan error, numGoroutines)
			for range numGoroutines {
				wg.Add(1)
				go func() {
					defer wg.Done()

					out, err := codec.Compress(data)
					if err != nil {
						errCh <- err
						return
					}
					back, err := codec.Decompress(out)
					if err != nil {
						errCh <- err
						return
					}
					if !bytes.Equal(back, data) {
						errCh <- fmt.Errorf("%s: round trip mismatch", codecName)
					}
				}()
			}
			wg.Wait()
			close(errCh)

			for err := range errCh {
				require.NoError(t, err)
			}

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, data, decompressed)
		})
	}
}

func TestLZ4_LargeExpansionRatio(t *testing.T) {
	// a long run of one record compresses far beyond the initial 4x buffer
	data := bytes.Repeat([]byte{0x00}, 1024*1024)
	codec := NewLZ4Compressor()

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Less(t, len(compressed)*4, len(data))

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}
