package query

import (
	"database/sql/driver"
	"encoding/hex"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

type debugger struct {
	debug  bool // debug mode
	name   string
	logger *zap.Logger
}

// Debug enables debug mode which logs the interpolated query.
func (d *debugger) Debug(name ...string) {
	d.debug = true
	if len(name) == 0 {
		d.name = "query"
		return
	}
	d.name = strings.Replace(strings.Join(name, "_"), " ", "_", -1)
}

// logIfDebug logs the query and its interpolated form at debug level.
func (d *debugger) logIfDebug(query string, params *BindParameterCollection) {
	if !d.debug || d.logger == nil {
		return
	}
	d.logger.Debug("query built",
		zap.String("name", d.name),
		zap.String("query", query),
		zap.Int("parameters", params.Len()),
		zap.String("interpolated", Interpolate(query, params)),
	)
}

// Interpolate replaces the placeholders of query with the literal values of
// params. The result is meant for reading, never for execution.
func Interpolate(query string, params *BindParameterCollection) string {
	items := params.Items()
	if len(items) == 0 {
		return query
	}
	// longest names first, so @w_1 never matches the head of @w_10
	sort.SliceStable(items, func(i, j int) bool {
		return len(items[i].Name) > len(items[j].Name)
	})
	pairs := make([]string, 0, len(items)*2)
	for _, p := range items {
		pairs = append(pairs, p.Name, literal(p.Value))
	}
	return strings.NewReplacer(pairs...).Replace(query)
}

func literal(value any) string {
	if value == nil || value == DBNull || isNilPointer(value) {
		return "NULL"
	}
	if valuer, ok := value.(driver.Valuer); ok {
		v, err := valuer.Value()
		if err != nil {
			return "?"
		}
		if _, again := v.(driver.Valuer); again {
			return fmt.Sprint(v)
		}
		return literal(v)
	}
	switch v := value.(type) {
	case string:
		return quote(v)
	case []byte:
		return "X'" + hex.EncodeToString(v) + "'"
	case bool:
		if v {
			return "TRUE"
		}
		return "FALSE"
	case time.Time:
		return quote(v.Format("2006-01-02 15:04:05.999999999"))
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case fmt.Stringer:
		return quote(v.String())
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer:
		return literal(rv.Elem().Interface())
	case reflect.String:
		return quote(rv.String())
	}
	return fmt.Sprint(value)
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
