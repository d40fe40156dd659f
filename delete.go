package query

// Delete is a DELETE statement.
type Delete struct {
	With   *With
	From   *TableSource
	Wheres *Conditions
}

// NewDelete returns an empty DELETE.
func NewDelete() *Delete {
	return &Delete{
		With:   &With{},
		Wheres: &Conditions{},
	}
}

func (d *Delete) buildWith(b *QueryBuilder) error {
	return b.BuildDelete(d)
}

// AddWith appends a common table expression.
func (d *Delete) AddWith(name, query string, columns ...string) *Delete {
	if d.With == nil {
		d.With = &With{}
	}
	d.With.Add(name, query, columns...)
	return d
}

// SetFrom sets the table to delete from, keeping joins already added.
func (d *Delete) SetFrom(name string, alias ...string) *Delete {
	from := NewTableSource(name, alias...)
	if d.From != nil {
		from.Joins = d.From.Joins
	}
	d.From = from
	return d
}

// SetFromTable sets the table to delete from.
func (d *Delete) SetFromTable(table *TableSource) *Delete {
	d.From = table
	return d
}

// AddJoin joins table to the deleted one. Rows are deleted from the FROM
// table only.
func (d *Delete) AddJoin(joinType JoinType, table *TableSource, on string) *Delete {
	if d.From == nil {
		d.From = &TableSource{}
	}
	d.From.AddJoin(joinType, table, on)
	return d
}

// AddWhere appends "field operator value" joined with AND.
func (d *Delete) AddWhere(fieldName, operator string, value any) *Delete {
	d.wheres().And(fieldName, operator, value)
	return d
}

// AddWhereOr appends "field operator value" joined with OR.
func (d *Delete) AddWhereOr(fieldName, operator string, value any) *Delete {
	d.wheres().Or(fieldName, operator, value)
	return d
}

// AddWhereOp appends a typed-operator condition joined with AND.
func (d *Delete) AddWhereOp(fieldName string, opType OpType, value any) *Delete {
	d.wheres().AndOp(fieldName, opType, value)
	return d
}

// AddWhereExpression appends a condition with a raw right-hand side.
func (d *Delete) AddWhereExpression(fieldName, operator, expression string) *Delete {
	d.wheres().AndExpression(fieldName, operator, expression)
	return d
}

// AddWhereCondition appends conditions as they are.
func (d *Delete) AddWhereCondition(conditions ...*SearchCondition) *Delete {
	d.wheres().Add(conditions...)
	return d
}

func (d *Delete) wheres() *Conditions {
	if d.Wheres == nil {
		d.Wheres = &Conditions{}
	}
	return d.Wheres
}
