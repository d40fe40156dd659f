package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuotationMarksEnclose(t *testing.T) {
	bracket := NewQuotationMarks("[", "]")
	testCases := []struct {
		marks        QuotationMarks
		identifier   string
		excludeEmpty bool
		want         string
	}{
		{bracket, "name", true, "[name]"},
		{bracket, "u.name", true, "[u].[name]"},
		{bracket, "dbo.users.id", true, "[dbo].[users].[id]"},
		{bracket, "u.*", true, "[u].*"},
		{bracket, "*", true, "*"},
		{bracket, "[name]", true, "[name]"},
		{bracket, "[u].name", true, "[u].[name]"},
		{bracket, "", true, ""},
		{bracket, "", false, "[]"},
		{bracket, "a]b", true, "[a]]b]"},
		{bracket, "u.a]b", true, "[u].[a]]b]"},
		{NewQuotationMarks("`", "`"), "u.name", true, "`u`.`name`"},
		{NewQuotationMarks("`", "`"), "a`b", true, "`a``b`"},
		{NewQuotationMarks(`"`, `"`), `say"hi`, true, `"say""hi"`},
		{NewQuotationMarks(`"`, `"`), "name", true, `"name"`},
		{QuotationMarks{}, "u.name", true, "u.name"},
		{QuotationMarks{}, "", false, ""},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, tc.marks.Enclose(tc.identifier, tc.excludeEmpty), "%q", tc.identifier)
	}
}
