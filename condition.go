package query

import (
	"strings"

	"github.com/izayoijiichan/izayoi-data-query/internal/util"
)

// Connector joins a search condition to the previous one.
type Connector int

// connectors
const (
	ConnectorNone Connector = iota
	ConnectorAnd
	ConnectorOr
)

func (c Connector) String() string {
	switch c {
	case ConnectorAnd:
		return "AND"
	case ConnectorOr:
		return "OR"
	default:
		return ""
	}
}

// OpType is the operator of a search condition. OpTypeNone means the
// condition carries a symbolic Operator such as ">=".
type OpType int

// operator types
const (
	OpTypeNone OpType = iota
	OpTypeLike
	OpTypeNotLike
	OpTypeBetween
	OpTypeNotBetween
	OpTypeIsNull
	OpTypeIsNotNull
	OpTypeIn
	OpTypeNotIn
	OpTypeEqual
	OpTypeNotEqual
)

var opTypeTexts = map[OpType]string{
	OpTypeLike:       "LIKE",
	OpTypeNotLike:    "NOT LIKE",
	OpTypeBetween:    "BETWEEN",
	OpTypeNotBetween: "NOT BETWEEN",
	OpTypeIsNull:     "IS NULL",
	OpTypeIsNotNull:  "IS NOT NULL",
	OpTypeIn:         "IN",
	OpTypeNotIn:      "NOT IN",
	OpTypeEqual:      "=",
	OpTypeNotEqual:   "<>",
}

// String returns the SQL text of the operator.
func (t OpType) String() string {
	return opTypeTexts[t]
}

// ParseOpType returns the OpType spelled by operator, e.g. "not like" or "<>".
func ParseOpType(operator string) (OpType, bool) {
	normalized := strings.ToUpper(strings.Join(strings.Fields(operator), " "))
	for t, text := range opTypeTexts {
		if text == normalized {
			return t, true
		}
	}
	return OpTypeNone, false
}

// SearchCondition is a WHERE or HAVING predicate.
type SearchCondition struct {
	// Connector is ignored for the first condition of a list and defaults
	// to AND for the others.
	Connector Connector
	// LeftEnclose and RightEnclose wrap the predicate, e.g. "(" and ")".
	LeftEnclose  string
	RightEnclose string
	FieldName    string
	Operator     string
	OpType       OpType
	Value        any
	DbType       DbType
	// IsExpression emits Value as raw SQL instead of binding it.
	IsExpression bool
}

// NewSearchCondition returns a condition with a symbolic operator. Operators
// with an OpType equivalent, like "=" or "LIKE", are stored with it.
func NewSearchCondition(fieldName, operator string, value any) *SearchCondition {
	c := &SearchCondition{
		FieldName: fieldName,
		Operator:  operator,
		Value:     value,
	}
	if t, ok := ParseOpType(operator); ok {
		c.OpType = t
	}
	return c
}

// NewSearchConditionOp returns a condition with a typed operator.
func NewSearchConditionOp(fieldName string, opType OpType, value any) *SearchCondition {
	return &SearchCondition{
		FieldName: fieldName,
		Operator:  opType.String(),
		OpType:    opType,
		Value:     value,
	}
}

// WithConnector sets the connector.
func (c *SearchCondition) WithConnector(connector Connector) *SearchCondition {
	c.Connector = connector
	return c
}

// WithEnclose sets the characters wrapping the predicate.
func (c *SearchCondition) WithEnclose(left, right string) *SearchCondition {
	c.LeftEnclose = left
	c.RightEnclose = right
	return c
}

// WithDbType sets an explicit database type.
func (c *SearchCondition) WithDbType(dbType DbType) *SearchCondition {
	c.DbType = dbType
	return c
}

// AsExpression marks the value as raw SQL.
func (c *SearchCondition) AsExpression() *SearchCondition {
	c.IsExpression = true
	return c
}

func (c *SearchCondition) operatorText() string {
	if c.OpType != OpTypeNone {
		return c.OpType.String()
	}
	return strings.TrimSpace(c.Operator)
}

// bindsValue reports whether the condition takes a right-hand operand.
func (c *SearchCondition) bindsValue() bool {
	return c.OpType != OpTypeIsNull && c.OpType != OpTypeIsNotNull
}

// Conditions is an ordered list of search conditions.
type Conditions struct {
	items []*SearchCondition
}

// Add appends conditions, skipping nil ones.
func (c *Conditions) Add(conditions ...*SearchCondition) *Conditions {
	c.items = append(c.items, util.Filter(conditions, func(condition *SearchCondition) bool {
		return condition != nil
	})...)
	return c
}

// And appends "field operator value" joined with AND.
func (c *Conditions) And(fieldName, operator string, value any) *Conditions {
	return c.Add(NewSearchCondition(fieldName, operator, value).WithConnector(ConnectorAnd))
}

// Or appends "field operator value" joined with OR.
func (c *Conditions) Or(fieldName, operator string, value any) *Conditions {
	return c.Add(NewSearchCondition(fieldName, operator, value).WithConnector(ConnectorOr))
}

// AndOp appends a typed-operator condition joined with AND.
func (c *Conditions) AndOp(fieldName string, opType OpType, value any) *Conditions {
	return c.Add(NewSearchConditionOp(fieldName, opType, value).WithConnector(ConnectorAnd))
}

// OrOp appends a typed-operator condition joined with OR.
func (c *Conditions) OrOp(fieldName string, opType OpType, value any) *Conditions {
	return c.Add(NewSearchConditionOp(fieldName, opType, value).WithConnector(ConnectorOr))
}

// AndExpression appends a condition whose right-hand side is raw SQL, joined with AND.
func (c *Conditions) AndExpression(fieldName, operator, expression string) *Conditions {
	return c.Add(NewSearchCondition(fieldName, operator, expression).WithConnector(ConnectorAnd).AsExpression())
}

// OrExpression appends a condition whose right-hand side is raw SQL, joined with OR.
func (c *Conditions) OrExpression(fieldName, operator, expression string) *Conditions {
	return c.Add(NewSearchCondition(fieldName, operator, expression).WithConnector(ConnectorOr).AsExpression())
}

// Len returns the number of conditions.
func (c *Conditions) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Items returns the conditions in order.
func (c *Conditions) Items() []*SearchCondition {
	if c == nil {
		return nil
	}
	return c.items
}
