package queryfilter

import (
	"fmt"
	"strings"

	"github.com/mgutz/ansi"
)

var (
	colorArrow = ansi.ColorCode("blue+b")
	colorCaret = ansi.ColorCode("red+b")
	colorHint  = ansi.ColorCode("cyan+b")
)

var errorTitles = map[ErrorCode]string{
	ErrorCodeMissingLeadingSlash:    "Missing leading slash",
	ErrorCodeTooManySegments:        "Too many segments",
	ErrorCodeMissingClosingBracket:  "Unclosed trait expression",
	ErrorCodeUnexpectedAfterBracket: "Unexpected character",
	ErrorCodeNegatedTraitBlock:      "Invalid negation",
	ErrorCodeNegatedGroup:           "Invalid negation",
	ErrorCodeMissingClosingParen:    "Unclosed parenthesis",
	ErrorCodeMixedOperators:         "Mixed logical operators",
	ErrorCodeUnexpectedAfterParen:   "Unexpected character",
	ErrorCodeTrailingOperator:       "Incomplete logical expression",
	ErrorCodeOperatorWithoutGroup:   "Incomplete logical expression",
	ErrorCodeMissingNegatedSegment:  "Invalid negation",
	ErrorCodeExcludesAllTests:       "Invalid negation",
	ErrorCodeInvalidWildcard:        "Invalid wildcard",
	ErrorCodeMalformedTrait:         "Invalid trait expression",
	ErrorCodeNegatedTrait:           "Invalid negation",
}

// Title returns a short headline for the error.
func (err *InvalidQueryError) Title() string {
	if title, ok := errorTitles[err.Code]; ok {
		return title
	}

	return "Invalid query"
}

// FormatDiagnostic produces a caret diagnostic for an invalid query, for example:
//
//	Query filter error: Mixed logical operators
//	 --> --filter '/(foo)|(bar)&(baz)'
//
//	     /(foo)|(bar)&(baz)
//	                 ^ logical expressions cannot mix '|' and '&' without grouping parentheses
//
//	  hint: Group operands that use a different operator, e.g. '((a)|(b))&(c)'
//
// A positive filterIndex is shown when several queries were given.
func FormatDiagnostic(err *InvalidQueryError, filterIndex int, useColor bool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Query filter error: %s\n", err.Title())

	arrow := " --> "
	if useColor {
		arrow = colorArrow + arrow + ansi.Reset
	}

	if filterIndex > 0 {
		fmt.Fprintf(&sb, "%s--filter[%d] '%s'\n", arrow, filterIndex, err.Query)
	} else {
		fmt.Fprintf(&sb, "%s--filter '%s'\n", arrow, err.Query)
	}

	sb.WriteString("\n")

	const indent = "     "

	fmt.Fprintf(&sb, "%s%s\n", indent, err.Query)

	position := min(max(err.Position, 0), len(err.Query))
	caret := "^"

	if useColor {
		caret = colorCaret + caret + ansi.Reset
	}

	fmt.Fprintf(&sb, "%s%s%s %s\n", indent, strings.Repeat(" ", position), caret, err.Reason)

	if hint := GetHint(err.Code, err.Query, err.Position); hint != "" {
		sb.WriteString("\n")

		if useColor {
			fmt.Fprintf(&sb, "  %shint:%s %s\n", colorHint, ansi.Reset, hint)
		} else {
			fmt.Fprintf(&sb, "  hint: %s\n", hint)
		}
	}

	return sb.String()
}
