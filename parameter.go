package query

import (
	"database/sql"
	"strings"

	"github.com/pkg/errors"
)

// ParameterPrefix starts every bind parameter name in the query text.
const ParameterPrefix = "@"

// ParameterDirection is the direction of a bind parameter.
type ParameterDirection int

// parameter directions
const (
	ParameterDirectionInput ParameterDirection = iota + 1
	ParameterDirectionOutput
	ParameterDirectionInputOutput
	ParameterDirectionReturnValue
)

func (d ParameterDirection) String() string {
	switch d {
	case ParameterDirectionInput:
		return "Input"
	case ParameterDirectionOutput:
		return "Output"
	case ParameterDirectionInputOutput:
		return "InputOutput"
	case ParameterDirectionReturnValue:
		return "ReturnValue"
	default:
		return "Unknown"
	}
}

// BindParameter is a named placeholder and the value bound to it.
type BindParameter struct {
	Name      string
	DbType    DbType
	Direction ParameterDirection
	Value     any
}

// NewBindParameter returns an input parameter. An unspecified dbType is
// inferred from value.
func NewBindParameter(name string, value any, dbType DbType) BindParameter {
	return BindParameter{
		Name:      name,
		DbType:    resolveDbType(dbType, value),
		Direction: ParameterDirectionInput,
		Value:     value,
	}
}

// NamedArg returns the parameter as a database/sql named argument.
// database/sql wants names starting with a letter, so the prefix is dropped.
func (p BindParameter) NamedArg() sql.NamedArg {
	value := p.Value
	if value == DBNull {
		value = nil
	}
	return sql.Named(strings.TrimPrefix(p.Name, ParameterPrefix), value)
}

// BindParameterCollection is an ordered list of bind parameters indexed by name.
type BindParameterCollection struct {
	items []BindParameter
	index map[string]int
}

// NewBindParameterCollection returns an empty collection.
func NewBindParameterCollection() *BindParameterCollection {
	return &BindParameterCollection{
		index: make(map[string]int),
	}
}

// Add appends p. A name already in the collection yields ErrDuplicateKey.
func (c *BindParameterCollection) Add(p BindParameter) error {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if _, ok := c.index[p.Name]; ok {
		return errors.Wrapf(ErrDuplicateKey, "bind parameter %s", p.Name)
	}
	c.index[p.Name] = len(c.items)
	c.items = append(c.items, p)
	return nil
}

// Append adds an input parameter built from name, value and dbType.
func (c *BindParameterCollection) Append(name string, value any, dbType DbType) error {
	return c.Add(NewBindParameter(name, value, dbType))
}

// Len returns the number of parameters.
func (c *BindParameterCollection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// At returns the i-th parameter.
func (c *BindParameterCollection) At(i int) BindParameter {
	return c.items[i]
}

// Get returns the parameter with the given name.
func (c *BindParameterCollection) Get(name string) (BindParameter, bool) {
	if c == nil {
		return BindParameter{}, false
	}
	i, ok := c.index[name]
	if !ok {
		return BindParameter{}, false
	}
	return c.items[i], true
}

// Contains reports whether a parameter with the given name exists.
func (c *BindParameterCollection) Contains(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Items returns a copy of the parameters in order.
func (c *BindParameterCollection) Items() []BindParameter {
	if c == nil {
		return nil
	}
	result := make([]BindParameter, len(c.items))
	copy(result, c.items)
	return result
}

// Names returns the parameter names in order.
func (c *BindParameterCollection) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.items))
	for i, p := range c.items {
		names[i] = p.Name
	}
	return names
}

// Args returns the parameters as database/sql named arguments, ready for
// (*sql.DB).ExecContext and friends.
func (c *BindParameterCollection) Args() []any {
	if c == nil {
		return nil
	}
	args := make([]any, len(c.items))
	for i, p := range c.items {
		args[i] = p.NamedArg()
	}
	return args
}

// Clear removes all parameters.
func (c *BindParameterCollection) Clear() {
	c.items = c.items[:0]
	c.index = make(map[string]int)
}
