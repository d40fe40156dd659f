package query

// Update is an UPDATE statement.
//
// Joins on Table follow the UPDATE target, the MySQL form. A separate From
// carries the joined sources of the UPDATE ... FROM form:
//
//	query.NewUpdate().
//		SetTable("", "u").
//		AddSet("name", "alice").
//		SetFrom("users", "u").
//		AddFromJoin(query.JoinTypeInner, query.NewTableSource("orders", "o"), "o.user_id = u.id")
type Update struct {
	With   *With
	Table  *TableSource
	Sets   *Sets
	From   *TableSource
	Wheres *Conditions

	err error // first error of the fluent API
}

// NewUpdate returns an empty UPDATE.
func NewUpdate() *Update {
	return &Update{
		With:   &With{},
		Sets:   &Sets{},
		Wheres: &Conditions{},
	}
}

func (u *Update) buildWith(b *QueryBuilder) error {
	return b.BuildUpdate(u)
}

// Err returns the first error met by the fluent API, e.g. a duplicate
// SET column. Building the statement returns it too.
func (u *Update) Err() error {
	return u.err
}

// AddWith appends a common table expression.
func (u *Update) AddWith(name, query string, columns ...string) *Update {
	if u.With == nil {
		u.With = &With{}
	}
	u.With.Add(name, query, columns...)
	return u
}

// SetTable sets the target table. An empty name with an alias targets the
// alias of a FROM source.
func (u *Update) SetTable(name string, alias ...string) *Update {
	table := NewTableSource(name, alias...)
	if u.Table != nil {
		table.Joins = u.Table.Joins
	}
	u.Table = table
	return u
}

// SetTableSource sets the target table.
func (u *Update) SetTableSource(table *TableSource) *Update {
	u.Table = table
	return u
}

// AddJoin joins table to the UPDATE target.
func (u *Update) AddJoin(joinType JoinType, table *TableSource, on string) *Update {
	if u.Table == nil {
		u.Table = &TableSource{}
	}
	u.Table.AddJoin(joinType, table, on)
	return u
}

// AddSet sets column to a bound value of inferred type.
func (u *Update) AddSet(column string, value any) *Update {
	return u.record(u.sets().Add(column, value))
}

// AddSetWithType sets column to a bound value of the given type.
func (u *Update) AddSetWithType(column string, value any, dbType DbType) *Update {
	return u.record(u.sets().AddWithType(column, value, dbType))
}

// AddSetExpression sets column to raw SQL.
func (u *Update) AddSetExpression(column, expression string) *Update {
	return u.record(u.sets().AddExpression(column, expression))
}

// SetFrom sets the FROM source of the UPDATE ... FROM form, keeping joins
// already added.
func (u *Update) SetFrom(name string, alias ...string) *Update {
	from := NewTableSource(name, alias...)
	if u.From != nil {
		from.Joins = u.From.Joins
	}
	u.From = from
	return u
}

// SetFromTable sets the FROM source.
func (u *Update) SetFromTable(table *TableSource) *Update {
	u.From = table
	return u
}

// AddFromJoin joins table to the FROM source.
func (u *Update) AddFromJoin(joinType JoinType, table *TableSource, on string) *Update {
	if u.From == nil {
		u.From = &TableSource{}
	}
	u.From.AddJoin(joinType, table, on)
	return u
}

// AddWhere appends "field operator value" joined with AND.
func (u *Update) AddWhere(fieldName, operator string, value any) *Update {
	u.wheres().And(fieldName, operator, value)
	return u
}

// AddWhereOr appends "field operator value" joined with OR.
func (u *Update) AddWhereOr(fieldName, operator string, value any) *Update {
	u.wheres().Or(fieldName, operator, value)
	return u
}

// AddWhereOp appends a typed-operator condition joined with AND.
func (u *Update) AddWhereOp(fieldName string, opType OpType, value any) *Update {
	u.wheres().AndOp(fieldName, opType, value)
	return u
}

// AddWhereExpression appends a condition with a raw right-hand side.
func (u *Update) AddWhereExpression(fieldName, operator, expression string) *Update {
	u.wheres().AndExpression(fieldName, operator, expression)
	return u
}

// AddWhereCondition appends conditions as they are.
func (u *Update) AddWhereCondition(conditions ...*SearchCondition) *Update {
	u.wheres().Add(conditions...)
	return u
}

func (u *Update) record(err error) *Update {
	if err != nil && u.err == nil {
		u.err = err
	}
	return u
}

func (u *Update) sets() *Sets {
	if u.Sets == nil {
		u.Sets = &Sets{}
	}
	return u.Sets
}

func (u *Update) wheres() *Conditions {
	if u.Wheres == nil {
		u.Wheres = &Conditions{}
	}
	return u.Wheres
}
