package queryfilter

import "strings"

// traitAtom parses `name=value` and `name!=value` atoms. Either side may use wildcards.
func traitAtom(query, text string, pos int, negated, _ bool) (Filter, error) {
	if negated {
		return nil, expressionError(query, pos-1, ErrorCodeNegatedTrait, TraitExpression, "!"+text, reasonNegatedTraitBlock)
	}

	equalIdx := strings.IndexByte(text, '=')
	equalLen := 1

	if equalIdx > 0 && text[equalIdx-1] == negation {
		equalIdx--
		equalLen++
	}

	if equalIdx <= 0 || equalIdx+equalLen >= len(text) {
		return nil, expressionError(query, pos, ErrorCodeMalformedTrait, TraitExpression, text, reasonMalformedTrait)
	}

	rawName, rawValue := text[:equalIdx], text[equalIdx+equalLen:]

	name, err := CompilePattern(rawName)
	if err != nil {
		return nil, wrapExpressionError(query, pos, rawName, err)
	}

	value, err := CompilePattern(rawValue)
	if err != nil {
		return nil, wrapExpressionError(query, pos+equalIdx+equalLen, rawValue, err)
	}

	var filter Filter = &Trait{Name: name, Value: value}
	if equalLen == 2 {
		filter = &LogicalNot{Inner: filter}
	}

	return filter, nil
}
