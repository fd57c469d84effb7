package search

// Bound marks how a stored value relates to the true value.
type Bound uint8

const (
	BoundExact Bound = iota
	BoundLower
	BoundUpper
)

type ttEntry struct {
	key   uint64
	depth int
	value int
	bound Bound
}

// TranspositionTable caches search results by position hash. Owned by one search at a time.
type TranspositionTable struct {
	entries []ttEntry
	mask    uint64
	hits    int
	stores  int
}

// NewTranspositionTable sizes the table to the next power of two at or above size.
func NewTranspositionTable(size int) *TranspositionTable {
	n := 1
	for n < size {
		n <<= 1
	}

	return &TranspositionTable{entries: make([]ttEntry, n), mask: uint64(n - 1)}
}

func (that *TranspositionTable) Probe(key uint64, depth int) (int, Bound, bool) {
	e := &that.entries[key&that.mask]
	if e.key != key || e.depth < depth || e.depth == 0 {
		return 0, BoundExact, false
	}

	that.hits++

	return e.value, e.bound, true
}

// Store keeps the deeper of the old and new results for a slot.
func (that *TranspositionTable) Store(key uint64, depth, value int, bound Bound) {
	e := &that.entries[key&that.mask]
	if e.key == key && e.depth > depth {
		return
	}

	*e = ttEntry{key: key, depth: depth, value: value, bound: bound}
	that.stores++
}

func (that *TranspositionTable) Clear() {
	clear(that.entries)
	that.hits, that.stores = 0, 0
}

func (that *TranspositionTable) Hits() int {
	return that.hits
}
