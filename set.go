package query

import "github.com/pkg/errors"

// Set is an UPDATE ... SET entry.
type Set struct {
	ColumnName string
	Value      any
	DbType     DbType
	// IsExpression emits Value as raw SQL instead of binding it.
	IsExpression bool
}

// Sets is an insertion-ordered collection of Set entries keyed by column name.
type Sets struct {
	items []Set
	index map[string]int
}

// Add sets column to a bound value of inferred type.
func (s *Sets) Add(column string, value any) error {
	return s.AddSet(Set{ColumnName: column, Value: value})
}

// AddWithType sets column to a bound value of the given type.
func (s *Sets) AddWithType(column string, value any, dbType DbType) error {
	return s.AddSet(Set{ColumnName: column, Value: value, DbType: dbType})
}

// AddExpression sets column to raw SQL, e.g. "[count] + 1".
func (s *Sets) AddExpression(column, expression string) error {
	return s.AddSet(Set{ColumnName: column, Value: expression, IsExpression: true})
}

// AddSet appends set. A column already present yields ErrDuplicateKey and
// leaves the collection unchanged.
func (s *Sets) AddSet(set Set) error {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if _, ok := s.index[set.ColumnName]; ok {
		return errors.Wrapf(ErrDuplicateKey, "set column %q", set.ColumnName)
	}
	s.index[set.ColumnName] = len(s.items)
	s.items = append(s.items, set)
	return nil
}

// Get returns the entry of column.
func (s *Sets) Get(column string) (Set, bool) {
	if s == nil {
		return Set{}, false
	}
	i, ok := s.index[column]
	if !ok {
		return Set{}, false
	}
	return s.items[i], true
}

// Len returns the number of entries.
func (s *Sets) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Items returns the entries in insertion order.
func (s *Sets) Items() []Set {
	if s == nil {
		return nil
	}
	return s.items
}
