package query

import (
	"database/sql"
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type status int16

func (s status) DbType() DbType { return IntegerDbType(s) }

type flags uint8

func (f flags) DbType() DbType { return IntegerDbType(f) }

func TestJudgeDbType(t *testing.T) {
	var (
		nilInt  *int
		nilTime *time.Time
		n       = 5
	)
	testCases := []struct {
		value any
		want  DbType
	}{
		{nil, DbTypeObject},
		{DBNull, DbTypeObject},
		{"s", DbTypeString},
		{[]string{"a"}, DbTypeString},
		{sql.NullString{}, DbTypeString},
		{true, DbTypeBoolean},
		{[]byte{1}, DbTypeBinary},
		{int8(1), DbTypeSByte},
		{uint8(1), DbTypeByte},
		{int16(1), DbTypeInt16},
		{uint16(1), DbTypeUInt16},
		{int32(1), DbTypeInt32},
		{'a', DbTypeInt32},
		{uint32(1), DbTypeUInt32},
		{int64(1), DbTypeInt64},
		{uint64(1), DbTypeUInt64},
		{1, DbTypeInt32},
		{math.MaxInt32 + 1, DbTypeInt64},
		{uint(1), DbTypeUInt32},
		{uint(math.MaxUint32 + 1), DbTypeUInt64},
		{&n, DbTypeInt32},
		{nilInt, DbTypeInt32},
		{float32(1), DbTypeSingle},
		{1.5, DbTypeDouble},
		{sql.NullFloat64{}, DbTypeDouble},
		{json.Number("1.25"), DbTypeDecimal},
		{time.Now(), DbTypeDateTime},
		{nilTime, DbTypeDateTime},
		{time.Second, DbTypeTime},
		{uuid.New(), DbTypeGuid},
		{[]any{int64(1), "a"}, DbTypeInt64},
		{[]any{}, DbTypeObject},
		{status(1), DbTypeInt16},
		{flags(1), DbTypeByte},
		{(*status)(nil), DbTypeInt16},
		{(*flags)(nil), DbTypeByte},
		{struct{}{}, DbTypeString},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, JudgeDbType(tc.value), "%#v", tc.value)
	}
}

func TestIntegerDbType(t *testing.T) {
	assert.Equal(t, DbTypeInt64, IntegerDbType(int64(0)))
	assert.Equal(t, DbTypeUInt32, IntegerDbType(uint32(0)))
	assert.Equal(t, DbTypeSByte, IntegerDbType(int8(0)))
	assert.Equal(t, DbTypeUInt16, IntegerDbType(uint16(0)))
}

func TestDbTypeString(t *testing.T) {
	assert.Equal(t, "Int32", DbTypeInt32.String())
	assert.Equal(t, "DateTimeOffset", DbTypeDateTimeOffset.String())
	text, err := DbTypeGuid.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "Guid", string(text))
}

func TestResolveDbType(t *testing.T) {
	assert.Equal(t, DbTypeAnsiString, resolveDbType(DbTypeAnsiString, 1))
	assert.Equal(t, DbTypeInt32, resolveDbType(DbTypeUnspecified, 1))
}

func TestParseDbType(t *testing.T) {
	dbType, ok := ParseDbType("ansistring")
	assert.True(t, ok)
	assert.Equal(t, DbTypeAnsiString, dbType)
	_, ok = ParseDbType("varchar")
	assert.False(t, ok)

	var parsed DbType
	assert.NoError(t, parsed.UnmarshalText([]byte("Guid")))
	assert.Equal(t, DbTypeGuid, parsed)
	assert.Error(t, parsed.UnmarshalText([]byte("nope")))
}
