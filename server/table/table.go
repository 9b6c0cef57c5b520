// Package table holds two-axis tables keyed by hand categories. Every cell
// holds one value type; cells start unset.
package table

import (
	"errors"
	"fmt"

	"easybj/server/engine"
)

var (
	ErrKeyNotFound = errors.New("key not found")
	ErrUnset       = errors.New("cell unset")
)

// Grid is the read-only view renderers work with.
type Grid interface {
	Cols() []engine.Category
	Rows() []engine.Category
	Unit() string
	Cell(row, col engine.Category) (any, error)
}

type cell[V any] struct {
	v   V
	set bool
}

// Table is fixed in shape at construction. The value type is the type
// parameter, so a wrong-typed write does not compile.
type Table[V any] struct {
	unit  string
	cols  []engine.Category
	rows  []engine.Category
	colAt map[engine.Category]int
	rowAt map[engine.Category]int
	cells []cell[V]
}

func New[V any](cols, rows []engine.Category, unit string) *Table[V] {
	t := &Table[V]{
		unit:  unit,
		cols:  append([]engine.Category(nil), cols...),
		rows:  append([]engine.Category(nil), rows...),
		colAt: index(cols),
		rowAt: index(rows),
	}
	t.cells = make([]cell[V], len(t.rows)*len(t.cols))
	return t
}

func index(labels []engine.Category) map[engine.Category]int {
	m := make(map[engine.Category]int, len(labels))
	for i, l := range labels {
		if _, dup := m[l]; dup {
			panic(fmt.Sprintf("table: duplicate label %s", l))
		}
		m[l] = i
	}
	return m
}

func (t *Table[V]) Cols() []engine.Category { return append([]engine.Category(nil), t.cols...) }
func (t *Table[V]) Rows() []engine.Category { return append([]engine.Category(nil), t.rows...) }
func (t *Table[V]) Unit() string            { return t.unit }

func (t *Table[V]) slot(row, col engine.Category) (*cell[V], error) {
	r, ok := t.rowAt[row]
	if !ok {
		return nil, fmt.Errorf("%w: row %s", ErrKeyNotFound, row)
	}
	c, ok := t.colAt[col]
	if !ok {
		return nil, fmt.Errorf("%w: column %s", ErrKeyNotFound, col)
	}
	return &t.cells[r*len(t.cols)+c], nil
}

// Set writes a cell, overwriting any earlier value.
func (t *Table[V]) Set(row, col engine.Category, v V) error {
	s, err := t.slot(row, col)
	if err != nil {
		return err
	}
	s.v, s.set = v, true
	return nil
}

// Get returns ErrUnset for a cell that was never written or was cleared.
func (t *Table[V]) Get(row, col engine.Category) (V, error) {
	var zero V
	s, err := t.slot(row, col)
	if err != nil {
		return zero, err
	}
	if !s.set {
		return zero, fmt.Errorf("%w: %s,%s", ErrUnset, row, col)
	}
	return s.v, nil
}

func (t *Table[V]) Clear(row, col engine.Category) error {
	s, err := t.slot(row, col)
	if err != nil {
		return err
	}
	*s = cell[V]{}
	return nil
}

// MustSet and MustGet are for build steps, where a bad key or a missing
// dependency is a bug.
func (t *Table[V]) MustSet(row, col engine.Category, v V) {
	if err := t.Set(row, col, v); err != nil {
		panic(err)
	}
}

func (t *Table[V]) MustGet(row, col engine.Category) V {
	v, err := t.Get(row, col)
	if err != nil {
		panic(err)
	}
	return v
}

func (t *Table[V]) Cell(row, col engine.Category) (any, error) {
	v, err := t.Get(row, col)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Complete reports whether every cell holds a value.
func (t *Table[V]) Complete() bool {
	for _, c := range t.cells {
		if !c.set {
			return false
		}
	}
	return true
}

// Row finds a row label by its code. Codes are unique within one axis.
func (t *Table[V]) Row(code string) (engine.Category, error) { return find(t.rows, "row", code) }
func (t *Table[V]) Col(code string) (engine.Category, error) { return find(t.cols, "column", code) }

func find(labels []engine.Category, axis, code string) (engine.Category, error) {
	for _, l := range labels {
		if l.String() == code {
			return l, nil
		}
	}
	return engine.Category{}, fmt.Errorf("%w: %s %q", ErrKeyNotFound, axis, code)
}
