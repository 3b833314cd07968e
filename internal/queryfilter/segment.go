package queryfilter

import "strings"

// segmentAtom returns the atom parser for a positional segment, building leaves with factory.
func segmentAtom(factory func(*Pattern) Filter) atomParser {
	return func(query, text string, pos int, negated, inside bool) (Filter, error) {
		if negated {
			switch text {
			case "":
				return nil, expressionError(query, pos-1, ErrorCodeMissingNegatedSegment, FilterExpression, "!", reasonMissingNegatedSegment)
			case wildcard:
				return nil, expressionError(query, pos-1, ErrorCodeExcludesAllTests, FilterExpression, "!*", reasonExcludesAllTests)
			}
		}

		if text == "" || text == wildcard {
			if inside {
				return Pass{}, nil
			}

			return nil, nil
		}

		pattern, err := CompilePattern(text)
		if err != nil {
			return nil, wrapExpressionError(query, pos, text, err)
		}

		filter := factory(pattern)
		if negated {
			return &LogicalNot{Inner: filter}, nil
		}

		return filter, nil
	}
}

func expressionError(query string, pos int, code ErrorCode, kind ExpressionKind, expression, reason string) error {
	err := &ExpressionError{Kind: kind, Expression: expression, Reason: reason}

	return newInvalidQueryError(query, pos, code, err.Error())
}

// wrapExpressionError converts a pattern compile error into an InvalidQueryError pointing into text.
func wrapExpressionError(query string, pos int, text string, err error) error {
	if len(text) > 2 {
		if idx := strings.Index(text[1:len(text)-1], wildcard); idx >= 0 {
			pos += idx + 1
		}
	}

	return newInvalidQueryError(query, pos, ErrorCodeInvalidWildcard, err.Error())
}
