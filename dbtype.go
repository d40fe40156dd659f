package query

import (
	"database/sql"
	"encoding/json"
	"math"
	"reflect"
	"strings"
	"time"
	"unsafe"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DbType is the database type of a bind parameter.
type DbType int

// db types
const (
	// DbTypeUnspecified asks the builder to infer the type from the value.
	DbTypeUnspecified DbType = iota
	DbTypeAnsiString
	DbTypeBinary
	DbTypeByte
	DbTypeBoolean
	DbTypeCurrency
	DbTypeDate
	DbTypeDateTime
	DbTypeDecimal
	DbTypeDouble
	DbTypeGuid
	DbTypeInt16
	DbTypeInt32
	DbTypeInt64
	DbTypeObject
	DbTypeSByte
	DbTypeSingle
	DbTypeString
	DbTypeTime
	DbTypeUInt16
	DbTypeUInt32
	DbTypeUInt64
	DbTypeVarNumeric
	DbTypeAnsiStringFixedLength
	DbTypeStringFixedLength
	DbTypeXml
	DbTypeDateTime2
	DbTypeDateTimeOffset
)

var dbTypeNames = [...]string{
	DbTypeUnspecified:           "Unspecified",
	DbTypeAnsiString:            "AnsiString",
	DbTypeBinary:                "Binary",
	DbTypeByte:                  "Byte",
	DbTypeBoolean:               "Boolean",
	DbTypeCurrency:              "Currency",
	DbTypeDate:                  "Date",
	DbTypeDateTime:              "DateTime",
	DbTypeDecimal:               "Decimal",
	DbTypeDouble:                "Double",
	DbTypeGuid:                  "Guid",
	DbTypeInt16:                 "Int16",
	DbTypeInt32:                 "Int32",
	DbTypeInt64:                 "Int64",
	DbTypeObject:                "Object",
	DbTypeSByte:                 "SByte",
	DbTypeSingle:                "Single",
	DbTypeString:                "String",
	DbTypeTime:                  "Time",
	DbTypeUInt16:                "UInt16",
	DbTypeUInt32:                "UInt32",
	DbTypeUInt64:                "UInt64",
	DbTypeVarNumeric:            "VarNumeric",
	DbTypeAnsiStringFixedLength: "AnsiStringFixedLength",
	DbTypeStringFixedLength:     "StringFixedLength",
	DbTypeXml:                   "Xml",
	DbTypeDateTime2:             "DateTime2",
	DbTypeDateTimeOffset:        "DateTimeOffset",
}

func (t DbType) String() string {
	if t >= 0 && int(t) < len(dbTypeNames) {
		return dbTypeNames[t]
	}
	return "Unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (t DbType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ParseDbType returns the DbType named name, e.g. "Int32" or "ansistring".
func ParseDbType(name string) (DbType, bool) {
	for i, n := range dbTypeNames {
		if strings.EqualFold(n, name) {
			return DbType(i), true
		}
	}
	return DbTypeUnspecified, false
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *DbType) UnmarshalText(text []byte) error {
	parsed, ok := ParseDbType(string(text))
	if !ok {
		return errors.Errorf("unknown db type %q", text)
	}
	*t = parsed
	return nil
}

// DbTyper is implemented by values that know their database type,
// typically named integer types used as enumerations:
//
//	type Status int16
//
//	func (s Status) DbType() query.DbType { return query.IntegerDbType(s) }
type DbTyper interface {
	DbType() DbType
}

// dbNull is the type of DBNull.
type dbNull struct{}

// DBNull is an explicit database NULL value.
var DBNull = dbNull{}

// DbType implements DbTyper.
func (dbNull) DbType() DbType { return DbTypeObject }

// Integer is the set of integer types, named ones included.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// IntegerDbType returns the database type of the integer type underlying T.
func IntegerDbType[T Integer](v T) DbType {
	signed := ^T(0) < 0
	switch unsafe.Sizeof(v) {
	case 1:
		if signed {
			return DbTypeSByte
		}
		return DbTypeByte
	case 2:
		if signed {
			return DbTypeInt16
		}
		return DbTypeUInt16
	case 4:
		if signed {
			return DbTypeInt32
		}
		return DbTypeUInt32
	default:
		if signed {
			return DbTypeInt64
		}
		return DbTypeUInt64
	}
}

// JudgeDbType returns the database type of value.
// Nil yields DbTypeObject, slices and nullable wrappers yield the type of
// their element and values of unrecognized types yield DbTypeString.
// A nil pointer still yields the type of its element.
func JudgeDbType(value any) DbType {
	switch v := value.(type) {
	case nil:
		return DbTypeObject
	case DbTyper:
		if isNilPointer(v) {
			return nilDbTyperType(v)
		}
		return v.DbType()

	case string, *string, []string, sql.NullString:
		return DbTypeString
	case bool, *bool, []bool, sql.NullBool:
		return DbTypeBoolean
	case []byte:
		return DbTypeBinary

	case int:
		return intDbType(int64(v))
	case *int:
		if v == nil {
			return DbTypeInt32
		}
		return intDbType(int64(*v))
	case []int:
		return DbTypeInt32
	case uint:
		return uintDbType(uint64(v))
	case *uint:
		if v == nil {
			return DbTypeUInt32
		}
		return uintDbType(uint64(*v))
	case []uint:
		return DbTypeUInt32

	case int8, *int8, []int8:
		return DbTypeSByte
	case int16, *int16, []int16, sql.NullInt16:
		return DbTypeInt16
	case int32, *int32, []int32, sql.NullInt32:
		// rune is an alias of int32, Go has no distinct char type
		return DbTypeInt32
	case int64, *int64, []int64, sql.NullInt64:
		return DbTypeInt64
	case uint8, *uint8, sql.NullByte:
		return DbTypeByte
	case uint16, *uint16, []uint16:
		return DbTypeUInt16
	case uint32, *uint32, []uint32:
		return DbTypeUInt32
	case uint64, *uint64, []uint64:
		return DbTypeUInt64

	case float32, *float32, []float32:
		return DbTypeSingle
	case float64, *float64, []float64, sql.NullFloat64:
		return DbTypeDouble
	case json.Number, *json.Number, []json.Number:
		return DbTypeDecimal

	case time.Time, *time.Time, []time.Time, sql.NullTime:
		return DbTypeDateTime
	case time.Duration, *time.Duration, []time.Duration:
		return DbTypeTime

	case uuid.UUID, *uuid.UUID, []uuid.UUID, uuid.NullUUID:
		return DbTypeGuid

	case []any:
		if len(v) == 0 {
			return DbTypeObject
		}
		return JudgeDbType(v[0])
	default:
		return DbTypeString
	}
}

// nilDbTyperType returns the type a nil pointer to a DbTyper stands for, the
// type of a pointer to the zero element. Calling DbType on the nil pointer
// itself panics for value receivers.
func nilDbTyperType(v DbTyper) DbType {
	elem := reflect.TypeOf(v).Elem()
	if typer, ok := reflect.New(elem).Interface().(DbTyper); ok {
		return typer.DbType()
	}
	return DbTypeObject
}

func isNilPointer(value any) bool {
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// intDbType keeps Go int values that fit 32 bits on Int32, as an untyped
// integer literal would be bound elsewhere.
func intDbType(v int64) DbType {
	if v >= math.MinInt32 && v <= math.MaxInt32 {
		return DbTypeInt32
	}
	return DbTypeInt64
}

func uintDbType(v uint64) DbType {
	if v <= math.MaxUint32 {
		return DbTypeUInt32
	}
	return DbTypeUInt64
}

// resolveDbType returns dbType unless it is unspecified, in which case the
// type is inferred from value.
func resolveDbType(dbType DbType, value any) DbType {
	if dbType != DbTypeUnspecified {
		return dbType
	}
	return JudgeDbType(value)
}
