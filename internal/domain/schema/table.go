package schema

import (
	"cmp"
	"slices"

	"github.com/leengari/kidb/internal/domain/data"
	"github.com/leengari/kidb/internal/query/filter"
)

// Table is an immutable, ordered set of Ki records.
// Every derived table (Filter, Select, SortBy) owns its own row slice, so
// a Table can be shared by any number of concurrent readers without locking.
type Table struct {
	Name string
	rows []data.Record
}

// NewTable creates a table from rows. The slice is copied to prevent
// later mutation by the caller.
func NewTable(name string, rows []data.Record) *Table {
	cp := make([]data.Record, len(rows))
	copy(cp, rows)
	return &Table{Name: name, rows: cp}
}

// Columns returns the fixed field set of every table
func (t *Table) Columns() []data.Field {
	return data.Fields()
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns a copy of all rows in table order
func (t *Table) Rows() []data.Record {
	rows := make([]data.Record, len(t.rows))
	copy(rows, t.rows)
	return rows
}

// Row returns the record at position i
func (t *Table) Row(i int) data.Record {
	return t.rows[i]
}

// Select returns a new table holding the rows that match the predicate,
// in their original order
func (t *Table) Select(pred filter.PredicateFunc) *Table {
	var result []data.Record
	for _, row := range t.rows {
		if pred(row) {
			result = append(result, row)
		}
	}
	return &Table{Name: t.Name, rows: result}
}

// Filter applies membership criteria. Empty criteria return the table itself.
func (t *Table) Filter(criteria filter.Criteria) *Table {
	if criteria.IsEmpty() {
		return t
	}
	return t.Select(criteria.Predicate())
}

// UniqueValues returns the distinct values of a field in first-occurrence
// order. Missing Ki values are skipped.
func (t *Table) UniqueValues(field data.Field) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)

	for _, row := range t.rows {
		val, ok := row.Value(field)
		if !ok {
			continue
		}
		if _, dup := seen[val]; dup {
			continue
		}
		seen[val] = struct{}{}
		values = append(values, val)
	}
	return values
}

// SortBy returns a new table stably sorted ascending on a field
func (t *Table) SortBy(field data.Field) *Table {
	rows := t.Rows()
	slices.SortStableFunc(rows, func(a, b data.Record) int {
		av, _ := a.Value(field)
		bv, _ := b.Value(field)
		return cmp.Compare(av, bv)
	})
	return &Table{Name: t.Name, rows: rows}
}
