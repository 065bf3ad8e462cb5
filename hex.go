package rle

import (
	"fmt"
	"iter"
	"strings"
)

// String formats the run as INDEX:LENGTH in uppercase hexadecimal.
func (r Run) String() string {
	var sb strings.Builder
	appendRunHex(&sb, r)

	return sb.String()
}

func appendRunHex(sb *strings.Builder, r Run) {
	fmt.Fprintf(sb, "%X:%X", r.Index, r.Length)
}

// FormatRuns renders runs as a diagnostic string of comma-terminated
// INDEX:LENGTH tokens in uppercase hexadecimal, e.g. "0:5,1:A,2:3,0:A,".
// The format is meant for logs and debugging and has no decoder.
func FormatRuns(runs iter.Seq[Run]) string {
	var sb strings.Builder
	for r := range runs {
		appendRunHex(&sb, r)
		sb.WriteByte(',')
	}

	return sb.String()
}

// EncodeHexString run-length encodes items and renders the runs with
// FormatRuns. It fails like Encode when an element is missing.
func (t *Table[T]) EncodeHexString(items []T) (string, error) {
	enc, err := t.Encode(items)
	if err != nil {
		return "", err
	}

	return FormatRuns(enc.All()), nil
}
