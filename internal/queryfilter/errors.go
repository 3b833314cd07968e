package queryfilter

import (
	"fmt"

	"github.com/testsel/testsel/internal/errors"
)

// ErrorCode categorizes query errors for hint lookup.
type ErrorCode int

const (
	ErrorCodeUnknown ErrorCode = iota
	ErrorCodeMissingLeadingSlash
	ErrorCodeTooManySegments
	ErrorCodeMissingClosingBracket
	ErrorCodeUnexpectedAfterBracket
	ErrorCodeNegatedTraitBlock
	ErrorCodeNegatedGroup
	ErrorCodeMissingClosingParen
	ErrorCodeMixedOperators
	ErrorCodeUnexpectedAfterParen
	ErrorCodeTrailingOperator
	ErrorCodeOperatorWithoutGroup
	ErrorCodeMissingNegatedSegment
	ErrorCodeExcludesAllTests
	ErrorCodeInvalidWildcard
	ErrorCodeMalformedTrait
	ErrorCodeNegatedTrait
)

const (
	maxSegments = 4

	reasonMissingLeadingSlash   = "query must begin with '/'"
	reasonMissingClosingBracket = "saw opening '[' without ending ']'"
	reasonNegatedTraitBlock     = "negate a trait expression with 'name!=value'"
	reasonNegatedGroup          = "negating operator '!' must be inside parenthesis, not outside"
	reasonMissingClosingParen   = "open '(' does not have matching closing ')'"
	reasonMixedOperators        = "logical expressions cannot mix '|' and '&' without grouping parentheses"
	reasonMissingNegatedSegment = "missing the segment query to negate"
	reasonExcludesAllTests      = "this would exclude all tests"
	reasonMalformedTrait        = "trait queries must be 'name=value' or 'name!=value'"
)

var reasonTooManySegments = fmt.Sprintf("too many segments (max %d)", maxSegments)

// InvalidQueryError is returned when a query cannot be compiled.
type InvalidQueryError struct {
	// Query is the original query text.
	Query string
	// Reason is the human readable cause, without the query prefix.
	Reason string
	// Position is the byte offset in Query where the problem was detected.
	Position int
	// Code is used for hint lookup.
	Code ErrorCode
}

func (err *InvalidQueryError) Error() string {
	return fmt.Sprintf("Query filter '%s' is not valid: %s", err.Query, err.Reason)
}

func newInvalidQueryError(query string, position int, code ErrorCode, reason string) error {
	return errors.New(&InvalidQueryError{
		Query:    query,
		Reason:   reason,
		Position: position,
		Code:     code,
	})
}

// ExpressionKind names the kind of atom an ExpressionError was raised for.
type ExpressionKind string

const (
	FilterExpression ExpressionKind = "Filter"
	TraitExpression  ExpressionKind = "Trait"
)

// ExpressionError describes an invalid pattern or trait atom.
type ExpressionError struct {
	Kind       ExpressionKind
	Expression string
	Reason     string
}

func (err *ExpressionError) Error() string {
	return fmt.Sprintf("%s expression '%s' is not valid: %s", err.Kind, err.Expression, err.Reason)
}
