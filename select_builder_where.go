package query

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/izayoijiichan/izayoi-data-query/internal/clauses"
	"github.com/pkg/errors"
)

// parameter name prefixes, by clause
const (
	whereParameterPrefix  = "w"
	havingParameterPrefix = "h"
	setParameterPrefix    = "s"
	valueParameterPrefix  = "v"
)

// parameterName returns the placeholder of the index-th entry of a clause,
// e.g. "@w_0".
func parameterName(prefix string, index int) string {
	return ParameterPrefix + prefix + "_" + strconv.Itoa(index)
}

func (b *SelectQueryBuilder) bind(name string, value any, dbType DbType) error {
	return b.params.Append(name, value, dbType)
}

func (b *SelectQueryBuilder) writeConditions(w *clauses.Writer, keyword string, conditions *Conditions, prefix string) error {
	if conditions.Len() == 0 {
		return nil
	}
	items := make([]string, 0, conditions.Len())
	for i, c := range conditions.Items() {
		text, err := b.renderCondition(c, parameterName(prefix, i), i == 0)
		if err != nil {
			return err
		}
		items = append(items, text)
	}
	w.Clause(keyword, items, clauses.Space)
	return nil
}

// renderCondition renders c, binding its value as name. The connector of the
// first condition is dropped.
func (b *SelectQueryBuilder) renderCondition(c *SearchCondition, name string, first bool) (string, error) {
	operand, err := b.operand(c, name)
	if err != nil {
		return "", err
	}
	sb := strings.Builder{}
	if !first {
		connector := c.Connector
		if connector == ConnectorNone {
			connector = ConnectorAnd
		}
		sb.WriteString(connector.String())
		sb.WriteByte(' ')
	}
	sb.WriteString(c.LeftEnclose)
	if c.FieldName != "" {
		sb.WriteString(b.conditionField(c.FieldName))
		sb.WriteByte(' ')
	}
	sb.WriteString(c.operatorText())
	if operand != "" {
		sb.WriteByte(' ')
		sb.WriteString(operand)
	}
	sb.WriteString(c.RightEnclose)
	return sb.String(), nil
}

// conditionField encloses plain column names. Function calls such as
// "LOWER(name)" are left as they are.
func (b *SelectQueryBuilder) conditionField(name string) string {
	if strings.Contains(name, "(") {
		return name
	}
	return b.option.QuotationMarks.Enclose(name, true)
}

// operand renders the right-hand side of c, binding what it needs.
// List operators expand a slice value into one parameter per element,
// named name_0, name_1 and so on.
func (b *SelectQueryBuilder) operand(c *SearchCondition, name string) (string, error) {
	if !c.bindsValue() {
		return "", nil
	}
	if c.IsExpression {
		text := fmt.Sprint(c.Value)
		if (c.OpType == OpTypeIn || c.OpType == OpTypeNotIn) && !strings.HasPrefix(strings.TrimSpace(text), "(") {
			text = "(" + text + ")"
		}
		return text, nil
	}
	switch c.OpType {
	case OpTypeIn, OpTypeNotIn:
		values, ok := listValues(c.Value)
		if !ok {
			if err := b.bind(name, c.Value, c.DbType); err != nil {
				return "", err
			}
			return "(" + name + ")", nil
		}
		if len(values) == 0 {
			return "(NULL)", nil
		}
		names, err := b.bindList(name, values, c.DbType)
		if err != nil {
			return "", err
		}
		return "(" + strings.Join(names, ", ") + ")", nil
	case OpTypeBetween, OpTypeNotBetween:
		values, ok := listValues(c.Value)
		if !ok || len(values) != 2 {
			return "", errors.Wrapf(ErrInvalidConditionValue, "%s of %s takes two values", c.operatorText(), c.FieldName)
		}
		names, err := b.bindList(name, values, c.DbType)
		if err != nil {
			return "", err
		}
		return names[0] + " AND " + names[1], nil
	}
	if err := b.bind(name, c.Value, c.DbType); err != nil {
		return "", err
	}
	return name, nil
}

func (b *SelectQueryBuilder) bindList(name string, values []any, dbType DbType) ([]string, error) {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = name + "_" + strconv.Itoa(i)
		if err := b.bind(names[i], v, dbType); err != nil {
			return nil, err
		}
	}
	return names, nil
}

// listValues flattens a slice or array value. Strings and byte slices are
// single values.
func listValues(value any) ([]any, bool) {
	switch v := value.(type) {
	case nil, string, []byte:
		return nil, false
	case []any:
		return v, true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, false
	}
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}
	values := make([]any, rv.Len())
	for i := range values {
		values[i] = rv.Index(i).Interface()
	}
	return values, true
}
