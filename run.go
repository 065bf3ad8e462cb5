package rle

// Index identifies an element by its position in a Table's insertion order.
// Once issued, an Index never changes for the lifetime of the table (or until
// Clear).
type Index uint

const (
	// MaxRunLength is the longest run a single byte record can carry.
	// Longer runs are chained into several records sharing one index.
	MaxRunLength = 127

	// MaxByteIndex is the largest index that fits in the 7 index bits of a
	// byte record.
	MaxByteIndex Index = 127

	// MaxByteTableLen is the exclusive upper bound on table size for the
	// read-only byte encoder.
	MaxByteTableLen = 128

	// lengthFlag marks a byte record whose run length follows in the next byte.
	lengthFlag byte = 0x01
)

// Run is a span of equal consecutive elements: the table element at Index
// repeated Length times.
type Run struct {
	Index  Index
	Length int
}

// runCursor holds the one pending run shared by both decoders and both byte
// encoders. The zero value is idle.
type runCursor struct {
	index     Index
	remaining int
}

func (c *runCursor) idle() bool {
	return c.remaining <= 0
}

// load starts a new run. Lengths below 1 are treated as 1 so that every
// loaded run produces at least one element.
func (c *runCursor) load(r Run) {
	c.index = r.Index
	c.remaining = max(r.Length, 1)
}

// take consumes one element of the pending run.
func (c *runCursor) take() Index {
	c.remaining--
	return c.index
}

// takeChunk consumes up to limit elements of the pending run and reports how
// many were taken.
func (c *runCursor) takeChunk(limit int) (Index, int) {
	n := min(c.remaining, limit)
	c.remaining -= n

	return c.index, n
}

func (c *runCursor) reset() {
	*c = runCursor{}
}
