package queryfilter

import (
	"strings"

	"github.com/gobwas/glob"
)

const wildcard = "*"

const (
	reasonWildcardNoText   = "wildcards must include text in the middle"
	reasonWildcardInterior = "wildcards may only be at the beginning and/or end of a filter expression"
)

// Pattern is a compiled wildcard pattern. The zero value is not usable, use CompilePattern.
type Pattern struct {
	raw  string
	glob glob.Glob
}

// CompilePattern validates and compiles a pattern that may start and/or end with '*'.
// The text between the wildcards is unescaped after validation, so `&#x2a;` matches a literal '*'.
func CompilePattern(raw string) (*Pattern, error) {
	if raw == "" || raw == wildcard {
		return &Pattern{raw: raw}, nil
	}

	text := raw
	prefix, suffix := "", ""

	if rest, ok := strings.CutPrefix(text, wildcard); ok {
		text, prefix = rest, wildcard
	}

	if rest, ok := strings.CutSuffix(text, wildcard); ok {
		text, suffix = rest, wildcard
	}

	if text == "" {
		return nil, &ExpressionError{Kind: FilterExpression, Expression: raw, Reason: reasonWildcardNoText}
	}

	if strings.Contains(text, wildcard) {
		return nil, &ExpressionError{Kind: FilterExpression, Expression: raw, Reason: reasonWildcardInterior}
	}

	g, err := glob.Compile(prefix + glob.QuoteMeta(strings.ToLower(Unescape(text))) + suffix)
	if err != nil {
		return nil, &ExpressionError{Kind: FilterExpression, Expression: raw, Reason: err.Error()}
	}

	return &Pattern{raw: raw, glob: g}, nil
}

// MatchesAll returns true if the pattern accepts any input.
func (p *Pattern) MatchesAll() bool {
	return p.glob == nil
}

// Match reports whether value matches the pattern, ignoring case.
func (p *Pattern) Match(value string) bool {
	if p.glob == nil {
		return true
	}

	return p.glob.Match(strings.ToLower(value))
}

// String returns the pattern as it was written in the query.
func (p *Pattern) String() string {
	return p.raw
}
