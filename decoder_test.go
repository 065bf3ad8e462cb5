package rle

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ChevyRay/rle/errs"
)

func TestDecoder_Scenario(t *testing.T) {
	table := FromSlice([]rune("ABC"))

	dec := table.Decode([]Run{{0, 5}, {1, 10}, {2, 3}, {0, 10}})
	require.Equal(t, scenario, string(slices.Collect(dec.All())))
	require.NoError(t, dec.Err())
}

func TestDecoder_RoundTrip(t *testing.T) {
	inputs := []string{"", "A", "ABBA", scenario, asciiArt}

	for _, in := range inputs {
		table := New[rune]()
		runs := table.RunsMut([]rune(in))

		out, err := table.AppendDecodedRuns(nil, runs)
		require.NoError(t, err)
		require.Equal(t, in, string(out))
	}
}

func TestDecoder_NonPositiveLength(t *testing.T) {
	table := FromSlice([]rune("AB"))

	out, err := table.AppendDecodedRuns(nil, []Run{{0, 0}, {1, -3}, {0, 2}})
	require.NoError(t, err)
	require.Equal(t, "ABAA", string(out))
}

func TestDecoder_IndexOutOfRange(t *testing.T) {
	table := FromSlice([]rune("ABC"))

	dec := table.Decode([]Run{{0, 2}, {5, 1}, {1, 1}})
	require.Equal(t, "AA", string(slices.Collect(dec.All())))

	err := dec.Err()
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)

	var oor *IndexOutOfRangeError
	require.True(t, errors.As(err, &oor))
	require.Equal(t, Index(5), oor.Index)
	require.Equal(t, 3, oor.Len)

	_, ok := dec.Next()
	require.False(t, ok, "decoder stays stopped after an error")
}

func TestDecoder_AppendKeepsPrefix(t *testing.T) {
	table := FromSlice([]int{7, 8})

	out, err := table.AppendDecodedRuns([]int{1}, []Run{{1, 2}, {9, 1}})
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
	require.Equal(t, []int{1, 8, 8}, out)
}

func BenchmarkDecoder_Runs(b *testing.B) {
	input := []rune(asciiArt)
	table := FromSlice(input)
	runs, err := table.Runs(input)
	if err != nil {
		b.Fatal(err)
	}

	dst := make([]rune, 0, len(input))
	b.SetBytes(int64(len(input)))
	for b.Loop() {
		dst, _ = table.AppendDecodedRuns(dst[:0], runs)
	}
}
