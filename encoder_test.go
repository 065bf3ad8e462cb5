package rle

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ChevyRay/rle/errs"
)

const scenario = "AAAAABBBBBBBBBBCCCAAAAAAAAAA"

func TestEncoder_Scenario(t *testing.T) {
	table := FromSlice([]rune("ABC"))

	enc, err := table.Encode([]rune(scenario))
	require.NoError(t, err)

	runs := slices.Collect(enc.All())
	require.Equal(t, []Run{{0, 5}, {1, 10}, {2, 3}, {0, 10}}, runs)

	_, ok := enc.Next()
	require.False(t, ok, "encoder is exhausted after All")
}

func TestEncoder_Runs(t *testing.T) {
	tests := []struct {
		name  string
		table string
		input string
		want  []Run
	}{
		{name: "empty input", table: "AB", input: "", want: []Run{}},
		{name: "single element", table: "AB", input: "B", want: []Run{{1, 1}}},
		{name: "alternating", table: "AB", input: "ABAB", want: []Run{{0, 1}, {1, 1}, {0, 1}, {1, 1}}},
		{name: "one long run", table: "Z", input: string(slices.Repeat([]rune("Z"), 1000)), want: []Run{{0, 1000}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := FromSlice([]rune(tt.table))
			runs, err := table.Runs([]rune(tt.input))
			require.NoError(t, err)
			require.Equal(t, tt.want, runs)
		})
	}
}

func TestEncoder_RunsCoverInput(t *testing.T) {
	input := []rune("xxyyyzxxxxwwz")
	table := FromSlice(input)

	runs, err := table.Runs(input)
	require.NoError(t, err)

	total := 0
	for i, r := range runs {
		require.GreaterOrEqual(t, r.Length, 1)
		if i > 0 {
			require.NotEqual(t, runs[i-1].Index, r.Index, "adjacent runs must differ")
		}
		total += r.Length
	}
	require.Equal(t, len(input), total)
}

func TestEncoder_MissingItem(t *testing.T) {
	table := FromSlice([]rune("AB"))

	enc, err := table.Encode([]rune("ABXAY"))
	require.Nil(t, enc)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrTableMissingItems)

	var missing *MissingItemError
	require.True(t, errors.As(err, &missing))
	require.Equal(t, 2, missing.Position)

	_, err = table.Runs([]rune("Q"))
	require.ErrorIs(t, err, errs.ErrTableMissingItems)
	require.True(t, errors.As(err, &missing))
	require.Zero(t, missing.Position)
	require.Equal(t, 2, table.Len(), "read-only encoding never inserts")
}

func TestEncoderMut_BuildsTable(t *testing.T) {
	table := New[rune]()

	runs := slices.Collect(table.EncodeMut([]rune(scenario)).All())
	require.Equal(t, []Run{{0, 5}, {1, 10}, {2, 3}, {0, 10}}, runs)
	require.Equal(t, []rune("ABC"), table.Items())
}

func TestEncoderMut_ExistingTable(t *testing.T) {
	table := FromSlice([]rune("CB"))

	runs := table.RunsMut([]rune("AABBCD"))
	require.Equal(t, []Run{{2, 2}, {1, 2}, {0, 1}, {3, 1}}, runs)
	require.Equal(t, []rune("CBAD"), table.Items())
}

func TestEncoderMut_AbandonedKeepsInsertions(t *testing.T) {
	table := New[int]()
	enc := table.EncodeMut([]int{1, 1, 2, 3, 4})

	r, ok := enc.Next()
	require.True(t, ok)
	require.Equal(t, Run{0, 2}, r)

	r, ok = enc.Next()
	require.True(t, ok)
	require.Equal(t, Run{1, 1}, r)

	require.Equal(t, []int{1, 2}, table.Items())
}

func TestEncoderMut_MatchesReadOnly(t *testing.T) {
	input := []string{"get", "get", "put", "get", "del", "del", "del"}

	mut := New[string]()
	mutRuns := mut.RunsMut(input)

	readOnly := FromSlice(input)
	runs, err := readOnly.Runs(input)
	require.NoError(t, err)

	require.Equal(t, runs, mutRuns)
	require.Equal(t, readOnly.Items(), mut.Items())
}

func TestEncoder_StopEarly(t *testing.T) {
	table := FromSlice([]rune("AB"))
	enc, err := table.Encode([]rune("AABBA"))
	require.NoError(t, err)

	for r := range enc.All() {
		require.Equal(t, Run{0, 2}, r)
		break
	}

	r, ok := enc.Next()
	require.True(t, ok, "breaking out of All leaves the rest for Next")
	require.Equal(t, Run{1, 2}, r)
}

func BenchmarkEncoder_Runs(b *testing.B) {
	input := []rune(asciiArt)
	table := FromSlice(input)

	b.SetBytes(int64(len(input)))
	for b.Loop() {
		_, _ = table.Runs(input)
	}
}
