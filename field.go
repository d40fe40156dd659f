package query

import "strings"

// Field is a projected column or expression.
type Field struct {
	Name  string
	Alias string
	// IsExpression emits Name as is instead of enclosing it.
	IsExpression bool
}

// ToQuery renders the field, e.g. "[u].[name] AS [user_name]".
func (f Field) ToQuery(q QuotationMarks) string {
	name := f.Name
	if !f.IsExpression {
		name = q.Enclose(f.Name, true)
	}
	if f.Alias == "" {
		return name
	}
	return name + " AS " + q.Enclose(f.Alias, true)
}

// Fields is an ordered list of fields. Duplicates are kept.
type Fields struct {
	items []Field
}

// Add appends a column with an optional alias.
func (f *Fields) Add(name string, alias ...string) *Fields {
	f.items = append(f.items, Field{Name: name, Alias: firstOrEmpty(alias)})
	return f
}

// AddExpression appends a raw expression with an optional alias.
func (f *Fields) AddExpression(expression string, alias ...string) *Fields {
	f.items = append(f.items, Field{Name: expression, Alias: firstOrEmpty(alias), IsExpression: true})
	return f
}

// Len returns the number of fields.
func (f *Fields) Len() int {
	if f == nil {
		return 0
	}
	return len(f.items)
}

// Items returns the fields in order.
func (f *Fields) Items() []Field {
	if f == nil {
		return nil
	}
	return f.items
}

// ToQuery renders the fields separated by commas.
func (f *Fields) ToQuery(q QuotationMarks) string {
	return strings.Join(f.render(q), ", ")
}

func (f *Fields) render(q QuotationMarks) []string {
	result := make([]string, 0, f.Len())
	for _, field := range f.Items() {
		result = append(result, field.ToQuery(q))
	}
	return result
}

func firstOrEmpty(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
