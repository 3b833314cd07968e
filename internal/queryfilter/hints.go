package queryfilter

import (
	"fmt"
	"strings"
)

// GetHint returns a hint for fixing an invalid query, or an empty string if there is nothing to add.
func GetHint(code ErrorCode, query string, position int) string {
	switch code {
	case ErrorCodeMissingLeadingSlash:
		return getMissingLeadingSlashHint(query)
	case ErrorCodeTooManySegments:
		return "Queries have at most four positional segments: '/assembly/namespace/class/method'. Escape a literal '/' as '&#x2f;'."
	case ErrorCodeMissingClosingBracket:
		return getMissingClosingBracketHint(query, position)
	case ErrorCodeUnexpectedAfterBracket:
		return "A trait expression '[...]' must be the whole segment, followed by '/' or the end of the query, e.g. '/[a=b]/x'. Escape a literal ']' as '&#x5d;'."
	case ErrorCodeNegatedTraitBlock, ErrorCodeNegatedTrait:
		return "Use the '!=' operator to exclude a trait, e.g. '[name!=value]'."
	case ErrorCodeNegatedGroup:
		return "Negate each operand inside its parentheses, e.g. '(!a)&(!b)' instead of '!((a)|(b))'."
	case ErrorCodeMissingClosingParen:
		return "Every operand of a logical expression is enclosed in parentheses. Escape a literal '(' as '&#x28;'."
	case ErrorCodeMixedOperators:
		return "Group operands that use a different operator, e.g. '((a)|(b))&(c)'."
	case ErrorCodeUnexpectedAfterParen, ErrorCodeTrailingOperator, ErrorCodeOperatorWithoutGroup:
		return "Logical operators join parenthesized operands, e.g. '(a)|(b)' or '(a)&(b)'."
	case ErrorCodeInvalidWildcard:
		return "Wildcards may start and/or end a pattern, e.g. 'Foo*', '*Foo' or '*Foo*'. Escape a literal '*' as '&#x2a;'."
	case ErrorCodeMalformedTrait:
		return "Traits are matched with 'name=value' or 'name!=value'. Escape a literal '=' as '&#x3d;'."

	// These have error messages that are self-explanatory.
	case ErrorCodeMissingNegatedSegment, ErrorCodeExcludesAllTests, ErrorCodeUnknown:
		return ""
	}

	return ""
}

func getMissingLeadingSlashHint(query string) string {
	if query == "" {
		return "Use '/' to select every test."
	}

	return fmt.Sprintf("Did you mean '/%s'?", query)
}

func getMissingClosingBracketHint(query string, position int) string {
	if position < 0 || position >= len(query) {
		return "Trait expressions must be enclosed in '[]'. e.g. '[Category=Unit]'"
	}

	content, _, _ := strings.Cut(query[position+1:], "/")

	return fmt.Sprintf("Trait expressions must be enclosed in '[]'. Did you mean '[%s]'?", content)
}
