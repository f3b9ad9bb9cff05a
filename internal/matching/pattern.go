package matching

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern is a compiled case-insensitive field predicate.
// A nil *Pattern matches every value.
type Pattern struct {
	expr string
	re   *regexp.Regexp
}

// Compile compiles expr into a Pattern.
// An empty expr yields a nil Pattern, which matches everything.
func Compile(expr string) (*Pattern, error) {
	if expr == "" {
		return nil, nil
	}
	re, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", expr, err)
	}
	return &Pattern{expr: expr, re: re}, nil
}

// MustCompile is like Compile but panics on a malformed expression.
// Intended for tests and package-level literals.
func MustCompile(expr string) *Pattern {
	p, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Match reports whether value satisfies the pattern.
func (p *Pattern) Match(value string) bool {
	if p == nil {
		return true
	}
	return p.re.MatchString(value)
}

// String returns the source expression.
func (p *Pattern) String() string {
	if p == nil {
		return ""
	}
	return p.expr
}

// Match tests value against an uncompiled pattern.
// An empty pattern always matches. A malformed regular expression falls back
// to a case-insensitive literal substring test instead of failing.
func Match(value, pattern string) bool {
	if pattern == "" {
		return true
	}
	p, err := Compile(pattern)
	if err != nil {
		return strings.Contains(strings.ToLower(value), strings.ToLower(pattern))
	}
	return p.Match(value)
}
