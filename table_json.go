package rle

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/ChevyRay/rle/errs"
)

// MarshalJSON encodes the table as a JSON array of its elements in
// insertion order. The sorted view is not stored; it is rebuilt on load.
//
// JSON strings cannot carry invalid UTF-8, so a string element that is not
// valid UTF-8 fails with errs.ErrInvalidElement instead of being replaced by
// U+FFFD.
func (t *Table[T]) MarshalJSON() ([]byte, error) {
	items := t.items
	if items == nil {
		items = []T{}
	}

	for i, item := range items {
		if s, ok := any(item).(string); ok && !utf8.ValidString(s) {
			return nil, fmt.Errorf("%w: item at [%d] is not valid UTF-8", errs.ErrInvalidElement, i)
		}
	}

	return json.Marshal(items)
}

// UnmarshalJSON replaces the table contents with the elements of a JSON
// array, re-inserting them in order so indices match the array positions.
// Elements that compare equal to an earlier one collapse into it, which
// shifts the indices of everything after them.
//
// The receiver must already carry an ordering (see New and NewFunc); a
// zero-value Table returns errs.ErrNoComparison.
func (t *Table[T]) UnmarshalJSON(data []byte) error {
	if t.compare == nil {
		return fmt.Errorf("rle: unmarshal table: %w", errs.ErrNoComparison)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("rle: unmarshal table: %w", err)
	}

	t.Clear()
	t.ExtendFromSlice(items)

	return nil
}
