package query

import "strings"

// JoinType is the kind of a join.
type JoinType int

// join types
const (
	JoinTypeCross JoinType = iota
	JoinTypeInner
	JoinTypeLeft
	JoinTypeLeftOuter
	JoinTypeRight
	JoinTypeRightOuter
	JoinTypeFull
	JoinTypeFullOuter
)

// String returns the join keyword, e.g. "LEFT OUTER JOIN".
func (t JoinType) String() string {
	switch t {
	case JoinTypeCross:
		return "CROSS JOIN"
	case JoinTypeInner:
		return "INNER JOIN"
	case JoinTypeLeft:
		return "LEFT JOIN"
	case JoinTypeLeftOuter:
		return "LEFT OUTER JOIN"
	case JoinTypeRight:
		return "RIGHT JOIN"
	case JoinTypeRightOuter:
		return "RIGHT OUTER JOIN"
	case JoinTypeFull:
		return "FULL JOIN"
	case JoinTypeFullOuter:
		return "FULL OUTER JOIN"
	default:
		return "JOIN"
	}
}

// Join joins a table on a raw ON predicate. The predicate is emitted as is.
type Join struct {
	Type  JoinType
	Table *TableSource
	On    string
}

// ToQuery renders the join, e.g. "INNER JOIN [orders] AS [o] ON o.user_id = u.id".
func (j *Join) ToQuery(q QuotationMarks) string {
	return j.render(q, true)
}

func (j *Join) render(q QuotationMarks, aliasAs bool) string {
	text := j.Type.String() + " " + j.Table.render(q, aliasAs)
	if j.Type == JoinTypeCross || j.On == "" {
		return text
	}
	return text + " ON " + j.On
}

// Joins is an ordered list of joins.
type Joins struct {
	items []*Join
}

// Add appends a join.
func (j *Joins) Add(joinType JoinType, table *TableSource, on string) *Joins {
	j.items = append(j.items, &Join{
		Type:  joinType,
		Table: table,
		On:    on,
	})
	return j
}

// Len returns the number of joins.
func (j *Joins) Len() int {
	if j == nil {
		return 0
	}
	return len(j.items)
}

// Items returns the joins in order.
func (j *Joins) Items() []*Join {
	if j == nil {
		return nil
	}
	return j.items
}

// ToQuery renders the joins separated by spaces.
func (j *Joins) ToQuery(q QuotationMarks) string {
	return strings.Join(j.render(q, true), " ")
}

func (j *Joins) render(q QuotationMarks, aliasAs bool) []string {
	result := make([]string, 0, j.Len())
	for _, join := range j.Items() {
		result = append(result, join.render(q, aliasAs))
	}
	return result
}
