package query

// SelectType is the set quantifier of a SELECT.
type SelectType int

// select types
const (
	SelectTypeNone SelectType = iota
	SelectTypeAll
	SelectTypeDistinct
)

func (t SelectType) String() string {
	switch t {
	case SelectTypeAll:
		return "ALL"
	case SelectTypeDistinct:
		return "DISTINCT"
	default:
		return ""
	}
}

// Select is a SELECT statement.
type Select struct {
	With       *With
	SelectType SelectType
	From       *TableSource
	Fields     *Fields
	Wheres     *Conditions
	Groups     *Groups
	Havings    *Conditions
	Orders     *Orders
	// Limit and Offset count rows, zero means unset.
	Limit  int
	Offset int
	// For is the SQL Server FOR JSON clause.
	For *ForJson
}

// NewSelect returns an empty SELECT.
func NewSelect() *Select {
	return &Select{
		With:    &With{},
		Fields:  &Fields{},
		Wheres:  &Conditions{},
		Groups:  &Groups{},
		Havings: &Conditions{},
		Orders:  &Orders{},
	}
}

func (s *Select) buildWith(b *QueryBuilder) error {
	return b.BuildSelect(s)
}

// AddWith appends a common table expression.
func (s *Select) AddWith(name, query string, columns ...string) *Select {
	if s.With == nil {
		s.With = &With{}
	}
	s.With.Add(name, query, columns...)
	return s
}

// Distinct selects distinct rows.
func (s *Select) Distinct() *Select {
	s.SelectType = SelectTypeDistinct
	return s
}

// All emits SELECT ALL.
func (s *Select) All() *Select {
	s.SelectType = SelectTypeAll
	return s
}

// SetFrom sets the FROM table with an optional alias, keeping joins
// already added.
func (s *Select) SetFrom(name string, alias ...string) *Select {
	from := NewTableSource(name, alias...)
	if s.From != nil {
		from.Joins = s.From.Joins
	}
	s.From = from
	return s
}

// SetFromTable sets the FROM table.
func (s *Select) SetFromTable(table *TableSource) *Select {
	s.From = table
	return s
}

// AddJoin joins table to the FROM table.
//
//	s.SetFrom("users", "u").
//		AddJoin(query.JoinTypeLeft, query.NewTableSource("orders", "o"), "o.user_id = u.id")
func (s *Select) AddJoin(joinType JoinType, table *TableSource, on string) *Select {
	if s.From == nil {
		s.From = &TableSource{}
	}
	s.From.AddJoin(joinType, table, on)
	return s
}

// AddField appends a column with an optional alias.
func (s *Select) AddField(name string, alias ...string) *Select {
	s.fields().Add(name, alias...)
	return s
}

// AddFieldExpression appends a raw expression, e.g. "COUNT(*)".
func (s *Select) AddFieldExpression(expression string, alias ...string) *Select {
	s.fields().AddExpression(expression, alias...)
	return s
}

// AddWhere appends "field operator value" joined with AND.
func (s *Select) AddWhere(fieldName, operator string, value any) *Select {
	s.wheres().And(fieldName, operator, value)
	return s
}

// AddWhereOr appends "field operator value" joined with OR.
func (s *Select) AddWhereOr(fieldName, operator string, value any) *Select {
	s.wheres().Or(fieldName, operator, value)
	return s
}

// AddWhereOp appends a typed-operator condition joined with AND.
func (s *Select) AddWhereOp(fieldName string, opType OpType, value any) *Select {
	s.wheres().AndOp(fieldName, opType, value)
	return s
}

// AddWhereExpression appends a condition with a raw right-hand side.
func (s *Select) AddWhereExpression(fieldName, operator, expression string) *Select {
	s.wheres().AndExpression(fieldName, operator, expression)
	return s
}

// AddWhereCondition appends conditions as they are.
func (s *Select) AddWhereCondition(conditions ...*SearchCondition) *Select {
	s.wheres().Add(conditions...)
	return s
}

// AddGroup appends GROUP BY columns.
func (s *Select) AddGroup(columns ...string) *Select {
	if s.Groups == nil {
		s.Groups = &Groups{}
	}
	s.Groups.Add(columns...)
	return s
}

// AddGroupExpression appends a raw GROUP BY expression.
func (s *Select) AddGroupExpression(expression string) *Select {
	if s.Groups == nil {
		s.Groups = &Groups{}
	}
	s.Groups.AddExpression(expression)
	return s
}

// AddHaving appends "field operator value" to HAVING, joined with AND.
func (s *Select) AddHaving(fieldName, operator string, value any) *Select {
	s.havings().And(fieldName, operator, value)
	return s
}

// AddHavingOr appends "field operator value" to HAVING, joined with OR.
func (s *Select) AddHavingOr(fieldName, operator string, value any) *Select {
	s.havings().Or(fieldName, operator, value)
	return s
}

// AddHavingOp appends a typed-operator condition to HAVING.
func (s *Select) AddHavingOp(fieldName string, opType OpType, value any) *Select {
	s.havings().AndOp(fieldName, opType, value)
	return s
}

// AddHavingExpression appends a HAVING condition with a raw right-hand side.
func (s *Select) AddHavingExpression(fieldName, operator, expression string) *Select {
	s.havings().AndExpression(fieldName, operator, expression)
	return s
}

// AddHavingCondition appends HAVING conditions as they are.
func (s *Select) AddHavingCondition(conditions ...*SearchCondition) *Select {
	s.havings().Add(conditions...)
	return s
}

// AddOrder appends an ORDER BY column.
func (s *Select) AddOrder(column string, otype OType) *Select {
	if s.Orders == nil {
		s.Orders = &Orders{}
	}
	s.Orders.Add(column, otype)
	return s
}

// AddOrderExpression appends a raw ORDER BY expression.
func (s *Select) AddOrderExpression(expression string, otype OType) *Select {
	if s.Orders == nil {
		s.Orders = &Orders{}
	}
	s.Orders.AddExpression(expression, otype)
	return s
}

// SetLimit sets the row count, zero to unset.
func (s *Select) SetLimit(limit int) *Select {
	s.Limit = limit
	return s
}

// SetOffset sets the rows to skip, zero to unset.
func (s *Select) SetOffset(offset int) *Select {
	s.Offset = offset
	return s
}

// SetForJson sets the FOR JSON clause.
func (s *Select) SetForJson(forJson *ForJson) *Select {
	s.For = forJson
	return s
}

func (s *Select) fields() *Fields {
	if s.Fields == nil {
		s.Fields = &Fields{}
	}
	return s.Fields
}

func (s *Select) wheres() *Conditions {
	if s.Wheres == nil {
		s.Wheres = &Conditions{}
	}
	return s.Wheres
}

func (s *Select) havings() *Conditions {
	if s.Havings == nil {
		s.Havings = &Conditions{}
	}
	return s.Havings
}
