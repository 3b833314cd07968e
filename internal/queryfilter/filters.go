package queryfilter

import (
	"errors"
)

// Filters holds several compiled queries that are evaluated with intersection (AND) semantics:
// a test is selected only if every query selects it.
type Filters []Filter

// ParseQueries compiles each query and returns them as Filters.
// All compile errors are collected and returned joined. An empty slice of queries produces empty Filters,
// which select every test.
func ParseQueries(queries []string) (Filters, error) {
	filters := make(Filters, 0, len(queries))

	var parseErrors []error

	for _, query := range queries {
		filter, err := Parse(query)
		if err != nil {
			parseErrors = append(parseErrors, err)
			continue
		}

		filters = append(filters, filter)
	}

	if len(parseErrors) > 0 {
		return filters, errors.Join(parseErrors...)
	}

	return filters, nil
}

// Match reports whether every filter selects the test case.
func (f Filters) Match(assemblyName string, testCase TestCase) bool {
	for _, filter := range f {
		if !filter.Filter(assemblyName, testCase) {
			return false
		}
	}

	return true
}

// Combine folds the filters into a single Filter, dropping filters that match everything.
func (f Filters) Combine() Filter {
	filters := make([]Filter, 0, len(f))

	for _, filter := range f {
		if _, ok := filter.(Pass); ok {
			continue
		}

		filters = append(filters, filter)
	}

	switch len(filters) {
	case 0:
		return Pass{}
	case 1:
		return filters[0]
	}

	return &LogicalAnd{Filters: filters}
}
