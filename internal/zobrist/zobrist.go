// Package zobrist provides position hash keys that are updated incrementally on make/undo.
package zobrist

import "sync"

// Table holds one random key per (cell, state) pair for a board shape.
type Table struct {
	rows   int
	cols   int
	states int
	cells  []uint64
	moveNo []uint64
}

type tableKey struct {
	rows, cols, states int
}

type store struct {
	mu     sync.Mutex
	tables map[tableKey]*Table
}

var tables = &store{tables: make(map[tableKey]*Table)}

// Get returns the shared table for the board shape, creating it deterministically on first use.
func Get(rows, cols, states int) *Table {
	tables.mu.Lock()
	defer tables.mu.Unlock()

	key := tableKey{rows: rows, cols: cols, states: states}
	if t, ok := tables.tables[key]; ok {
		return t
	}

	rng := splitmix64{state: 0x9e3779b97f4a7c15 ^ uint64(rows<<20|cols<<8|states)}
	t := &Table{
		rows:   rows,
		cols:   cols,
		states: states,
		cells:  make([]uint64, rows*cols*states),
		moveNo: make([]uint64, 64),
	}

	for i := range t.cells {
		t.cells[i] = rng.next()
	}

	for i := range t.moveNo {
		t.moveNo[i] = rng.next()
	}

	tables.tables[key] = t

	return t
}

// Cell returns the key for a cell in the given state. State 0 means empty and hashes to 0.
func (that *Table) Cell(row, col, state int) uint64 {
	if state == 0 {
		return 0
	}

	return that.cells[(row*that.cols+col)*that.states+state]
}

// MoveNumber returns a key used to disambiguate otherwise identical positions (ko).
func (that *Table) MoveNumber(n int) uint64 {
	return that.moveNo[n%len(that.moveNo)]
}

// Key is a running hash. XOR makes apply and revert the same operation.
type Key struct {
	table *Table
	value uint64
}

func NewKey(table *Table) *Key {
	return &Key{table: table}
}

// Toggle flips a cell state in or out of the hash.
func (that *Key) Toggle(row, col, state int) {
	that.value ^= that.table.Cell(row, col, state)
}

func (that *Key) ToggleMoveNumber(n int) {
	that.value ^= that.table.MoveNumber(n)
}

func (that *Key) Value() uint64 {
	return that.value
}

func (that *Key) Copy() *Key {
	return &Key{table: that.table, value: that.value}
}

func (that *Key) Reset() {
	that.value = 0
}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return z ^ (z >> 31)
}
