package document

import (
	"fmt"
	"strings"

	query "github.com/izayoijiichan/izayoi-data-query"
	"github.com/pkg/errors"
)

// Table is a table reference.
type Table struct {
	Name   string `yaml:"name"`
	Alias  string `yaml:"alias"`
	Schema string `yaml:"schema"`
}

func (t *Table) model() *query.TableSource {
	return query.NewTableSource(t.Name, t.Alias).SetSchema(t.Schema)
}

// Join joins Table on the raw predicate On. Type defaults to inner.
type Join struct {
	Type  string `yaml:"type"`
	Table Table  `yaml:"table"`
	On    string `yaml:"on"`
}

var joinTypes = map[string]query.JoinType{
	"":            query.JoinTypeInner,
	"inner":       query.JoinTypeInner,
	"cross":       query.JoinTypeCross,
	"left":        query.JoinTypeLeft,
	"left outer":  query.JoinTypeLeftOuter,
	"right":       query.JoinTypeRight,
	"right outer": query.JoinTypeRightOuter,
	"full":        query.JoinTypeFull,
	"full outer":  query.JoinTypeFullOuter,
}

func addJoins(table *query.TableSource, joins []Join) error {
	for _, j := range joins {
		joinType, err := lookup(joinTypes, j.Type, "join type")
		if err != nil {
			return err
		}
		table.AddJoin(joinType, j.Table.model(), j.On)
	}
	return nil
}

// CTE is a common table expression.
type CTE struct {
	Name    string   `yaml:"name"`
	Columns []string `yaml:"columns"`
	Query   string   `yaml:"query"`
}

func withModel(ctes []CTE, recursive bool) *query.With {
	w := &query.With{}
	for _, cte := range ctes {
		w.Add(cte.Name, cte.Query, cte.Columns...)
	}
	return w.SetRecursive(recursive)
}

// Field is a projected column, or raw SQL when Expression is set.
type Field struct {
	Name       string `yaml:"name"`
	Alias      string `yaml:"alias"`
	Expression bool   `yaml:"expression"`
}

// Condition is a WHERE or HAVING predicate.
type Condition struct {
	Connector  string       `yaml:"connector"`
	Left       string       `yaml:"left"`
	Right      string       `yaml:"right"`
	Field      string       `yaml:"field"`
	Op         string       `yaml:"op"`
	Value      any          `yaml:"value"`
	Type       query.DbType `yaml:"type"`
	Expression bool         `yaml:"expression"`
}

var connectors = map[string]query.Connector{
	"":    query.ConnectorNone,
	"and": query.ConnectorAnd,
	"or":  query.ConnectorOr,
}

func conditionModels(conditions []Condition) ([]*query.SearchCondition, error) {
	result := make([]*query.SearchCondition, 0, len(conditions))
	for _, c := range conditions {
		if c.Op == "" {
			return nil, errors.Errorf("condition on %q has no op", c.Field)
		}
		connector, err := lookup(connectors, c.Connector, "connector")
		if err != nil {
			return nil, err
		}
		value := c.Value
		if c.Expression {
			value = fmt.Sprint(c.Value)
		}
		condition := query.NewSearchCondition(c.Field, c.Op, value).
			WithConnector(connector).
			WithEnclose(c.Left, c.Right).
			WithDbType(c.Type)
		if c.Expression {
			condition.AsExpression()
		}
		result = append(result, condition)
	}
	return result, nil
}

// Group is a GROUP BY entry.
type Group struct {
	Column     string `yaml:"column"`
	Expression bool   `yaml:"expression"`
}

// Order is an ORDER BY entry. Dir is asc, desc or empty.
type Order struct {
	Column     string `yaml:"column"`
	Dir        string `yaml:"dir"`
	Expression bool   `yaml:"expression"`
}

var directions = map[string]query.OType{
	"":     query.OTypeNone,
	"asc":  query.OTypeAsc,
	"desc": query.OTypeDesc,
}

// JSON is the SQL Server FOR JSON clause. Mode is auto or path.
type JSON struct {
	Mode                string `yaml:"mode"`
	Root                string `yaml:"root"`
	IncludeNullValues   bool   `yaml:"include_null_values"`
	WithoutArrayWrapper bool   `yaml:"without_array_wrapper"`
}

var jsonModes = map[string]query.JsonMode{
	"":     query.JsonModeNone,
	"auto": query.JsonModeAuto,
	"path": query.JsonModePath,
}

func (j *JSON) model() (*query.ForJson, error) {
	mode, err := lookup(jsonModes, j.Mode, "json mode")
	if err != nil {
		return nil, err
	}
	return &query.ForJson{
		Mode:                mode,
		Root:                j.Root,
		IncludeNullValues:   j.IncludeNullValues,
		WithoutArrayWrapper: j.WithoutArrayWrapper,
	}, nil
}

// Assignment is a SET or VALUES entry. Type is a DbType name such as Int32,
// empty to infer it from the value.
type Assignment struct {
	Column     string       `yaml:"column"`
	Value      any          `yaml:"value"`
	Type       query.DbType `yaml:"type"`
	Expression bool         `yaml:"expression"`
}

func lookup[T any](names map[string]T, name, what string) (T, error) {
	v, ok := names[strings.ToLower(strings.Join(strings.Fields(name), " "))]
	if !ok {
		var zero T
		return zero, errors.Wrapf(ErrUnknownName, "%s %q", what, name)
	}
	return v, nil
}
