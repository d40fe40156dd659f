package query

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolate(t *testing.T) {
	params := NewBindParameterCollection()
	for i := 0; i < 11; i++ {
		require.NoError(t, params.Append(parameterName(whereParameterPrefix, i), i, DbTypeUnspecified))
	}
	assert.Equal(t, "a = 1 AND b = 10", Interpolate("a = @w_1 AND b = @w_10", params))
}

func TestLiteral(t *testing.T) {
	name := "x"
	var nilName *string
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	testCases := []struct {
		value any
		want  string
	}{
		{nil, "NULL"},
		{DBNull, "NULL"},
		{"it's", "'it''s'"},
		{true, "TRUE"},
		{false, "FALSE"},
		{42, "42"},
		{uint8(7), "7"},
		{1.5, "1.5"},
		{[]byte{0xca, 0xfe}, "X'cafe'"},
		{&name, "'x'"},
		{nilName, "NULL"},
		{time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), "'2024-01-02 03:04:05'"},
		{sql.NullString{String: "y", Valid: true}, "'y'"},
		{sql.NullInt64{}, "NULL"},
		{id, "'6ba7b810-9dad-11d1-80b4-00c04fd430c8'"},
		{&id, "'6ba7b810-9dad-11d1-80b4-00c04fd430c8'"},
		{(*uuid.UUID)(nil), "NULL"},
		{(*status)(nil), "NULL"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, literal(tc.value), "%#v", tc.value)
	}
}
