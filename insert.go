package query

// Insert is an INSERT statement. Exactly one of Values and Select supplies
// the inserted rows.
type Insert struct {
	With *With
	Into *TableSource
	// Values is the single inserted row, it also names the columns.
	Values *Values
	// Columns names the columns filled by Select.
	Columns []string
	Select  *Select
}

// NewInsert returns an empty INSERT.
func NewInsert() *Insert {
	return &Insert{
		With:   &With{},
		Values: &Values{},
	}
}

func (i *Insert) buildWith(b *QueryBuilder) error {
	return b.BuildInsert(i)
}

// AddWith appends a common table expression.
func (i *Insert) AddWith(name, query string, columns ...string) *Insert {
	if i.With == nil {
		i.With = &With{}
	}
	i.With.Add(name, query, columns...)
	return i
}

// SetInto sets the target table.
func (i *Insert) SetInto(name string, alias ...string) *Insert {
	i.Into = NewTableSource(name, alias...)
	return i
}

// SetIntoTable sets the target table.
func (i *Insert) SetIntoTable(table *TableSource) *Insert {
	i.Into = table
	return i
}

// AddValue appends a bound value of inferred type.
func (i *Insert) AddValue(column string, value any) *Insert {
	i.values().Add(column, value)
	return i
}

// AddValueWithType appends a bound value of the given type.
func (i *Insert) AddValueWithType(column string, value any, dbType DbType) *Insert {
	i.values().AddWithType(column, value, dbType)
	return i
}

// AddValueExpression appends raw SQL as the value of column.
func (i *Insert) AddValueExpression(column, expression string) *Insert {
	i.values().AddExpression(column, expression)
	return i
}

// SetColumns sets the column list of an INSERT ... SELECT.
func (i *Insert) SetColumns(columns ...string) *Insert {
	i.Columns = columns
	return i
}

// SetSelect inserts the rows of s.
func (i *Insert) SetSelect(s *Select) *Insert {
	i.Select = s
	return i
}

func (i *Insert) values() *Values {
	if i.Values == nil {
		i.Values = &Values{}
	}
	return i.Values
}
