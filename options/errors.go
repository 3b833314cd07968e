package options

import (
	"fmt"
	"strings"
)

// UnsupportedFormatError is returned for an unknown --format value.
type UnsupportedFormatError struct {
	format string
}

func NewUnsupportedFormatError(format string) *UnsupportedFormatError {
	return &UnsupportedFormatError{format: format}
}

func (err UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported output format %q, valid values: %s", err.format, strings.Join(Formats, ", "))
}

// UnsupportedSortError is returned for an unknown --sort value.
type UnsupportedSortError struct {
	sort string
}

func NewUnsupportedSortError(sort string) *UnsupportedSortError {
	return &UnsupportedSortError{sort: sort}
}

func (err UnsupportedSortError) Error() string {
	return fmt.Sprintf("unsupported sort order %q, valid values: %s", err.sort, strings.Join(SortOrders, ", "))
}
