package query

import "github.com/izayoijiichan/izayoi-data-query/internal/util"

// TableSource is a table reference with optional schema, alias and joins.
// A TableSource with an empty name stands for its alias, e.g. the target of
//
//	UPDATE u SET ... FROM users AS u JOIN ...
type TableSource struct {
	Schema string
	Name   string
	Alias  string
	Joins  *Joins
}

// NewTableSource returns a TableSource with an optional alias.
func NewTableSource(name string, alias ...string) *TableSource {
	t := &TableSource{
		Name:  name,
		Joins: &Joins{},
	}
	if len(alias) > 0 {
		t.Alias = alias[0]
	}
	return t
}

// SetSchema sets the schema name.
func (t *TableSource) SetSchema(schema string) *TableSource {
	t.Schema = schema
	return t
}

// SetName sets the table name.
func (t *TableSource) SetName(name string) *TableSource {
	t.Name = name
	return t
}

// SetAlias sets the alias.
func (t *TableSource) SetAlias(alias string) *TableSource {
	t.Alias = alias
	return t
}

// AddJoin appends a join to the table.
func (t *TableSource) AddJoin(joinType JoinType, table *TableSource, on string) *TableSource {
	if t.Joins == nil {
		t.Joins = &Joins{}
	}
	t.Joins.Add(joinType, table, on)
	return t
}

// IsZero reports whether the table names nothing.
func (t *TableSource) IsZero() bool {
	return t == nil || (t.Name == "" && t.Alias == "")
}

// HasJoins reports whether any join is attached.
func (t *TableSource) HasJoins() bool {
	return t != nil && t.Joins.Len() > 0
}

// Reference returns the name the rest of a query refers to the table by:
// the alias if set, the name otherwise.
func (t *TableSource) Reference() string {
	return util.Coalesce(t.Alias, t.Name)
}

// ToQuery renders the table with its alias, e.g. "[dbo].[users] AS [u]".
// Joins are not included, see Joins.ToQuery.
func (t *TableSource) ToQuery(q QuotationMarks) string {
	return t.render(q, true)
}

func (t *TableSource) render(q QuotationMarks, aliasAs bool) string {
	if t.Name == "" {
		return q.Enclose(t.Alias, true)
	}
	name := q.Enclose(t.Name, true)
	if t.Schema != "" {
		name = q.Enclose(t.Schema, true) + "." + name
	}
	if t.Alias == "" {
		return name
	}
	if aliasAs {
		return name + " AS " + q.Enclose(t.Alias, true)
	}
	return name + " " + q.Enclose(t.Alias, true)
}
