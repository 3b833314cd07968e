package queryfilter_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testsel/testsel/internal/queryfilter"
)

func parseError(t *testing.T, query string) *queryfilter.InvalidQueryError {
	t.Helper()

	_, err := queryfilter.Parse(query)

	var queryErr *queryfilter.InvalidQueryError
	require.True(t, errors.As(err, &queryErr))

	return queryErr
}

func TestFormatDiagnosticMixedOperators(t *testing.T) {
	t.Parallel()

	result := queryfilter.FormatDiagnostic(parseError(t, "/(foo)|(bar)&(baz)"), 0, false)

	assert.Contains(t, result, "Query filter error: Mixed logical operators")
	assert.Contains(t, result, " --> --filter '/(foo)|(bar)&(baz)'")
	assert.Contains(t, result, "     /(foo)|(bar)&(baz)\n")
	assert.Contains(t, result, "\n                 ^ logical expressions cannot mix '|' and '&' without grouping parentheses\n")
	assert.Contains(t, result, "hint: Group operands that use a different operator")
	assert.NotContains(t, result, "\x1b[")
}

func TestFormatDiagnosticWithFilterIndex(t *testing.T) {
	t.Parallel()

	result := queryfilter.FormatDiagnostic(parseError(t, "/1/!*"), 2, false)

	assert.Contains(t, result, " --> --filter[2] '/1/!*'")
	assert.Contains(t, result, "   ^ Filter expression '!*' is not valid: this would exclude all tests")
	assert.NotContains(t, result, "hint:")
}

func TestFormatDiagnosticWithColor(t *testing.T) {
	t.Parallel()

	result := queryfilter.FormatDiagnostic(parseError(t, "asm"), 0, true)

	assert.Contains(t, result, "\x1b[")
	assert.Contains(t, result, "Did you mean '/asm'?")
}

func TestGetHint(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		query    string
		contains string
	}{
		{"", "Use '/' to select every test."},
		{"asm1", "Did you mean '/asm1'?"},
		{"/[foo=bar", "Did you mean '[foo=bar]'?"},
		{"/asm/[foo=bar/x", "Did you mean '[foo=bar]'?"},
		{"/1/2/3/4/5", "at most four positional segments"},
		{"/1/a*b", "Escape a literal '*' as '&#x2a;'"},
		{"/[name]", "'name=value' or 'name!=value'"},
		{"/[a=b]x", "followed by '/' or the end of the query, e.g. '/[a=b]/x'"},
		{"/![a=b]", "Use the '!=' operator"},
		{"/!(a)", "Negate each operand inside its parentheses"},
		{"/(a)&b", "Logical operators join parenthesized operands"},
	}

	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			t.Parallel()

			queryErr := parseError(t, tc.query)
			assert.Contains(t, queryfilter.GetHint(queryErr.Code, queryErr.Query, queryErr.Position), tc.contains)
		})
	}
}
