package query

// Value is an INSERT ... VALUES entry.
type Value struct {
	ColumnName string
	Value      any
	DbType     DbType
	// IsExpression emits Value as raw SQL instead of binding it.
	IsExpression bool
}

// Values is the ordered list of inserted columns and their values.
type Values struct {
	items []Value
}

// NewValues returns an empty list.
func NewValues() *Values {
	return &Values{}
}

// Add appends a bound value of inferred type.
func (v *Values) Add(column string, value any) *Values {
	v.items = append(v.items, Value{ColumnName: column, Value: value})
	return v
}

// AddWithType appends a bound value of the given type.
func (v *Values) AddWithType(column string, value any, dbType DbType) *Values {
	v.items = append(v.items, Value{ColumnName: column, Value: value, DbType: dbType})
	return v
}

// AddExpression appends raw SQL, e.g. "CURRENT_TIMESTAMP".
func (v *Values) AddExpression(column, expression string) *Values {
	v.items = append(v.items, Value{ColumnName: column, Value: expression, IsExpression: true})
	return v
}

// Len returns the number of values.
func (v *Values) Len() int {
	if v == nil {
		return 0
	}
	return len(v.items)
}

// Items returns the values in order.
func (v *Values) Items() []Value {
	if v == nil {
		return nil
	}
	return v.items
}

// Names returns the column names in order.
func (v *Values) Names() []string {
	names := make([]string, 0, v.Len())
	for _, item := range v.Items() {
		names = append(names, item.ColumnName)
	}
	return names
}
