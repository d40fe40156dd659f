package query

import "strings"

// CommonTableExpression is a named subquery of a WITH clause. Query is raw
// SQL text and binds no parameters.
type CommonTableExpression struct {
	Name    string
	Columns []string
	Query   string
}

// ToQuery renders the expression, e.g. "[recent] ([id]) AS (SELECT ...)".
func (c CommonTableExpression) ToQuery(q QuotationMarks) string {
	sb := strings.Builder{}
	sb.WriteString(q.Enclose(c.Name, true))
	if len(c.Columns) > 0 {
		sb.WriteString(" (")
		for i, column := range c.Columns {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(q.Enclose(column, true))
		}
		sb.WriteString(")")
	}
	sb.WriteString(" AS (")
	sb.WriteString(c.Query)
	sb.WriteString(")")
	return sb.String()
}

// With is the WITH clause shared by all statements.
type With struct {
	Recursive bool
	items     []CommonTableExpression
}

// Add appends a common table expression.
func (w *With) Add(name, query string, columns ...string) *With {
	w.items = append(w.items, CommonTableExpression{
		Name:    name,
		Columns: columns,
		Query:   query,
	})
	return w
}

// SetRecursive marks the clause as recursive.
func (w *With) SetRecursive(recursive bool) *With {
	w.Recursive = recursive
	return w
}

// Len returns the number of expressions.
func (w *With) Len() int {
	if w == nil {
		return 0
	}
	return len(w.items)
}

// Items returns the expressions in order.
func (w *With) Items() []CommonTableExpression {
	if w == nil {
		return nil
	}
	return w.items
}

// ToQuery renders the whole clause on one line, "" when empty.
func (w *With) ToQuery(q QuotationMarks) string {
	if w.Len() == 0 {
		return ""
	}
	return w.keyword(true) + " " + strings.Join(w.render(q), ", ")
}

func (w *With) keyword(recursiveKeyword bool) string {
	if w.Recursive && recursiveKeyword {
		return "WITH RECURSIVE"
	}
	return "WITH"
}

func (w *With) render(q QuotationMarks) []string {
	result := make([]string, 0, w.Len())
	for _, cte := range w.Items() {
		result = append(result, cte.ToQuery(q))
	}
	return result
}
