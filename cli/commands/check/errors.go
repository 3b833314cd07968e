package check

import "fmt"

// InvalidQueriesError reports how many of the checked queries failed to compile.
type InvalidQueriesError struct {
	Invalid int
	Total   int
}

func NewInvalidQueriesError(invalid, total int) *InvalidQueriesError {
	return &InvalidQueriesError{Invalid: invalid, Total: total}
}

func (err InvalidQueriesError) Error() string {
	return fmt.Sprintf("%d of %d query filters are not valid", err.Invalid, err.Total)
}
