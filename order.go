package query

import "strings"

// OType is the sort direction.
type OType int

// sort directions
const (
	OTypeNone OType = iota
	OTypeAsc
	OTypeDesc
)

func (t OType) String() string {
	switch t {
	case OTypeAsc:
		return "ASC"
	case OTypeDesc:
		return "DESC"
	default:
		return ""
	}
}

// Order is an ORDER BY entry.
type Order struct {
	Column       string
	OType        OType
	IsExpression bool
}

// ToQuery renders the entry, e.g. "[created_at] DESC".
func (o Order) ToQuery(q QuotationMarks) string {
	column := o.Column
	if !o.IsExpression {
		column = q.Enclose(o.Column, true)
	}
	if o.OType == OTypeNone {
		return column
	}
	return column + " " + o.OType.String()
}

// Orders is an ordered list of ORDER BY entries.
type Orders struct {
	items []Order
}

// Add appends a column.
func (o *Orders) Add(column string, otype OType) *Orders {
	o.items = append(o.items, Order{Column: column, OType: otype})
	return o
}

// AddExpression appends a raw expression.
func (o *Orders) AddExpression(expression string, otype OType) *Orders {
	o.items = append(o.items, Order{Column: expression, OType: otype, IsExpression: true})
	return o
}

// Len returns the number of entries.
func (o *Orders) Len() int {
	if o == nil {
		return 0
	}
	return len(o.items)
}

// Items returns the entries in order.
func (o *Orders) Items() []Order {
	if o == nil {
		return nil
	}
	return o.items
}

// ToQuery renders the entries separated by commas.
func (o *Orders) ToQuery(q QuotationMarks) string {
	return strings.Join(o.render(q), ", ")
}

func (o *Orders) render(q QuotationMarks) []string {
	result := make([]string, 0, o.Len())
	for _, order := range o.Items() {
		result = append(result, order.ToQuery(q))
	}
	return result
}
