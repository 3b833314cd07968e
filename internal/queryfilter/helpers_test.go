package queryfilter_test

import (
	"github.com/testsel/testsel/internal/testcase"
)

// getTestCase returns the default test case `name1.class1.method1`, with an optional trait pair.
func getTestCase(trait ...string) *testcase.TestCase {
	tc := &testcase.TestCase{
		Namespace: "name1",
		Class:     "class1",
		Method:    "method1",
	}

	if len(trait) == 2 { //nolint:mnd
		tc.TraitValues = testcase.Traits{trait[0]: {trait[1]}}
	}

	return tc
}

// makeWildcards returns value as an exact, suffix, prefix and substring pattern.
func makeWildcards(value string) []string {
	return []string{
		value,
		"*" + value[1:],
		value[:len(value)-1] + "*",
		"*" + value[1:len(value)-1] + "*",
	}
}
