package queryfilter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testsel/testsel/internal/queryfilter"
)

func TestCompilePattern(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		pattern  string
		matches  []string
		misses   []string
		matchAll bool
	}{
		{pattern: "", matches: []string{"", "anything"}, matchAll: true},
		{pattern: "*", matches: []string{"", "anything"}, matchAll: true},
		{pattern: "Foo", matches: []string{"Foo", "foo", "FOO"}, misses: []string{"Foobar", "xFoo", ""}},
		{pattern: "Foo*", matches: []string{"Foo", "foobar"}, misses: []string{"xFoo"}},
		{pattern: "*Foo", matches: []string{"Foo", "barFOO"}, misses: []string{"Foox"}},
		{pattern: "*Foo*", matches: []string{"Foo", "xfOOx"}, misses: []string{"Fo"}},
		{pattern: "a?b", matches: []string{"a?b"}, misses: []string{"axb"}},
		{pattern: "[x]", matches: []string{"[x]"}, misses: []string{"x"}},
		{pattern: "a&#x2a;b", matches: []string{"a*b"}, misses: []string{"aXb"}},
	}

	for _, tc := range testCases {
		t.Run(tc.pattern, func(t *testing.T) {
			t.Parallel()

			pattern, err := queryfilter.CompilePattern(tc.pattern)
			require.NoError(t, err)

			assert.Equal(t, tc.pattern, pattern.String())
			assert.Equal(t, tc.matchAll, pattern.MatchesAll())

			for _, value := range tc.matches {
				assert.True(t, pattern.Match(value), "expected %q to match %q", tc.pattern, value)
			}

			for _, value := range tc.misses {
				assert.False(t, pattern.Match(value), "expected %q not to match %q", tc.pattern, value)
			}
		})
	}
}

func TestCompilePatternErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		pattern  string
		expected string
	}{
		{"**", "Filter expression '**' is not valid: wildcards must include text in the middle"},
		{"a*b", "Filter expression 'a*b' is not valid: wildcards may only be at the beginning and/or end of a filter expression"},
		{"**a", "Filter expression '**a' is not valid: wildcards may only be at the beginning and/or end of a filter expression"},
		{"*a*b*", "Filter expression '*a*b*' is not valid: wildcards may only be at the beginning and/or end of a filter expression"},
	}

	for _, tc := range testCases {
		t.Run(tc.pattern, func(t *testing.T) {
			t.Parallel()

			_, err := queryfilter.CompilePattern(tc.pattern)

			var exprErr *queryfilter.ExpressionError
			require.ErrorAs(t, err, &exprErr)
			assert.Equal(t, queryfilter.FilterExpression, exprErr.Kind)
			assert.EqualError(t, err, tc.expected)
		})
	}
}
