package queryfilter

import (
	"fmt"
	"strings"
)

const (
	segmentSeparator = '/'
	traitOpen        = '['
	traitClose       = ']'
	groupOpen        = '('
	groupClose       = ')'
	negation         = '!'
	orOperator       = '|'
	andOperator      = '&'
)

// segmentFactories builds the leaf filter for each positional segment.
var segmentFactories = [maxSegments]func(*Pattern) Filter{
	func(p *Pattern) Filter { return &Assembly{Pattern: p} },
	func(p *Pattern) Filter { return &Namespace{Pattern: p} },
	func(p *Pattern) Filter { return &ClassSimpleName{Pattern: p} },
	func(p *Pattern) Filter { return &MethodSimpleName{Pattern: p} },
}

// Parse compiles a query into a Filter.
//
// Positional segments are combined with AND. A query whose segments all match everything compiles to Pass,
// and a query with a single effective segment returns that segment's filter unwrapped.
func Parse(query string) (Filter, error) {
	if query == "" || query[0] != segmentSeparator {
		return nil, newInvalidQueryError(query, 0, ErrorCodeMissingLeadingSlash, reasonMissingLeadingSlash)
	}

	var (
		filters []Filter
		pos     = 1
	)

	for slot := 0; pos < len(query); slot++ {
		var (
			filter Filter
			err    error
		)

		switch {
		case strings.HasPrefix(query[pos:], "!["):
			return nil, newInvalidQueryError(query, pos, ErrorCodeNegatedTraitBlock, reasonNegatedTraitBlock)

		case query[pos] == traitOpen:
			filter, pos, err = parseTraitBlock(query, pos)

		default:
			if slot >= maxSegments {
				return nil, newInvalidQueryError(query, pos, ErrorCodeTooManySegments, reasonTooManySegments)
			}

			parser := &expressionParser{
				query: query,
				end:   len(query),
				atom:  segmentAtom(segmentFactories[slot]),
			}

			filter, pos, err = parser.parse(pos, false)
		}

		if err != nil {
			return nil, err
		}

		if filter != nil {
			filters = append(filters, filter)
		}
	}

	switch len(filters) {
	case 0:
		return Pass{}, nil
	case 1:
		return filters[0], nil
	}

	return &LogicalAnd{Filters: filters}, nil
}

// parseTraitBlock parses the `[...]` block starting at pos and returns the position after its trailing separator.
func parseTraitBlock(query string, pos int) (Filter, int, error) {
	closeIdx := strings.IndexByte(query[pos+1:], traitClose)
	if closeIdx < 0 {
		return nil, 0, newInvalidQueryError(query, pos, ErrorCodeMissingClosingBracket, reasonMissingClosingBracket)
	}

	end := pos + 1 + closeIdx

	if next := end + 1; next < len(query) && query[next] != segmentSeparator {
		reason := fmt.Sprintf("unexpected character '%c' after closing ']'", query[next])
		return nil, 0, newInvalidQueryError(query, next, ErrorCodeUnexpectedAfterBracket, reason)
	}

	parser := &expressionParser{
		query: query,
		end:   end,
		trait: true,
		atom:  traitAtom,
	}

	filter, _, err := parser.parse(pos+1, false)
	if err != nil {
		return nil, 0, err
	}

	return filter, end + 2, nil
}

// atomParser compiles the text of a single atom. It returns a nil Filter for atoms that match everything
// at the top level of a segment.
type atomParser func(query, text string, pos int, negated, inside bool) (Filter, error)

// expressionParser is the logical-expression grammar shared by segments and trait blocks:
//
//	expression = ["!"] atom | group
//	group      = "(" expression ")" { op "(" expression ")" }
//
// Only one kind of op may be used per group. Positions are byte offsets into query, and end is
// the exclusive end of the region being parsed.
type expressionParser struct {
	atom  atomParser
	query string
	end   int
	trait bool
}

func (p *expressionParser) parse(pos int, inside bool) (Filter, int, error) {
	negated := false
	if pos < p.end && p.query[pos] == negation {
		negated = true
		pos++
	}

	if pos < p.end && p.query[pos] == groupOpen {
		if negated {
			if p.trait {
				return nil, 0, p.errorAt(pos-1, ErrorCodeNegatedTraitBlock, reasonNegatedTraitBlock)
			}

			return nil, 0, p.errorAt(pos-1, ErrorCodeNegatedGroup, reasonNegatedGroup)
		}

		return p.parseGroup(pos+1, inside)
	}

	return p.parseAtom(pos, negated, inside)
}

func (p *expressionParser) parseGroup(pos int, inside bool) (Filter, int, error) {
	var (
		operator byte
		children []Filter
	)

	combine := func(last Filter) Filter {
		switch operator {
		case orOperator:
			return &LogicalOr{Filters: append(children, last)}
		case andOperator:
			return &LogicalAnd{Filters: append(children, last)}
		}

		return last
	}

	for {
		inner, next, err := p.parse(pos, true)
		if err != nil {
			return nil, 0, err
		}

		pos = next

		if pos >= p.end {
			if inside {
				return nil, 0, p.errorAt(pos, ErrorCodeMissingClosingParen, reasonMissingClosingParen)
			}

			return combine(inner), pos, nil
		}

		char := p.query[pos]

		if (char == segmentSeparator && !inside && !p.trait) || (char == groupClose && inside) {
			return combine(inner), pos + 1, nil
		}

		switch char {
		case orOperator, andOperator:
			if operator != 0 && operator != char {
				return nil, 0, p.errorAt(pos, ErrorCodeMixedOperators, reasonMixedOperators)
			}

			operator = char
			children = append(children, inner)
		default:
			reason := fmt.Sprintf("unexpected character '%c' after closing parenthesis", char)
			return nil, 0, p.errorAt(pos, ErrorCodeUnexpectedAfterParen, reason)
		}

		if pos+1 >= p.end {
			reason := fmt.Sprintf("logical operator '%c' cannot end a query", char)
			return nil, 0, p.errorAt(pos, ErrorCodeTrailingOperator, reason)
		}

		if p.query[pos+1] != groupOpen {
			reason := fmt.Sprintf("logical operator '%c' must be followed by an open parenthesis", char)
			return nil, 0, p.errorAt(pos+1, ErrorCodeOperatorWithoutGroup, reason)
		}

		pos += 2
	}
}

func (p *expressionParser) parseAtom(pos int, negated, inside bool) (Filter, int, error) {
	stop := p.end

	switch {
	case inside:
		idx := strings.IndexByte(p.query[pos:p.end], groupClose)
		if idx < 0 {
			return nil, 0, p.errorAt(p.end, ErrorCodeMissingClosingParen, reasonMissingClosingParen)
		}

		stop = pos + idx
	case !p.trait:
		if idx := strings.IndexByte(p.query[pos:p.end], segmentSeparator); idx >= 0 {
			stop = pos + idx
		}
	}

	filter, err := p.atom(p.query, p.query[pos:stop], pos, negated, inside)
	if err != nil {
		return nil, 0, err
	}

	if stop < p.end {
		stop++
	}

	return filter, stop, nil
}

func (p *expressionParser) errorAt(pos int, code ErrorCode, reason string) error {
	return newInvalidQueryError(p.query, pos, code, reason)
}
