package query

import "strings"

// Group is a GROUP BY entry.
type Group struct {
	Column       string
	IsExpression bool
}

// ToQuery renders the entry.
func (g Group) ToQuery(q QuotationMarks) string {
	if g.IsExpression {
		return g.Column
	}
	return q.Enclose(g.Column, true)
}

// Groups is an ordered list of GROUP BY entries.
type Groups struct {
	items []Group
}

// Add appends columns.
func (g *Groups) Add(columns ...string) *Groups {
	for _, column := range columns {
		g.items = append(g.items, Group{Column: column})
	}
	return g
}

// AddExpression appends a raw expression.
func (g *Groups) AddExpression(expression string) *Groups {
	g.items = append(g.items, Group{Column: expression, IsExpression: true})
	return g
}

// Len returns the number of entries.
func (g *Groups) Len() int {
	if g == nil {
		return 0
	}
	return len(g.items)
}

// Items returns the entries in order.
func (g *Groups) Items() []Group {
	if g == nil {
		return nil
	}
	return g.items
}

// ToQuery renders the entries separated by commas.
func (g *Groups) ToQuery(q QuotationMarks) string {
	return strings.Join(g.render(q), ", ")
}

func (g *Groups) render(q QuotationMarks) []string {
	result := make([]string, 0, g.Len())
	for _, group := range g.Items() {
		result = append(result, group.ToQuery(q))
	}
	return result
}
