package validator

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/dmitrymomot/rtokit/pkg/rto"
)

// MinLen checks the length of strings (in runes) and collections.
func MinLen(min int, opts ...rto.RuleOption) rto.Rule {
	return newRule("min_length", func(v any, _ rto.View) bool {
		n, ok := length(v)
		return ok && n >= min
	}, fmt.Sprintf("'%%s' must be longer than or equal to %d characters.", min), opts)
}

// MaxLen checks the length of strings (in runes) and collections.
func MaxLen(max int, opts ...rto.RuleOption) rto.Rule {
	return newRule("max_length", func(v any, _ rto.View) bool {
		n, ok := length(v)
		return ok && n <= max
	}, fmt.Sprintf("'%%s' must be shorter than or equal to %d characters.", max), opts)
}

// Matches checks strings against pattern. The pattern is compiled once, when
// the rule is declared, and panics if invalid.
func Matches(pattern string, opts ...rto.RuleOption) rto.Rule {
	re := regexp.MustCompile(pattern)
	return newRule("matches", func(v any, _ rto.View) bool {
		s, ok := v.(string)
		return ok && re.MatchString(s)
	}, fmt.Sprintf("'%%s' must match %s regular expression.", strings.ReplaceAll(pattern, "%", "%%")), opts)
}

// IsEmail validates a bare address: no display name, a non-empty local part
// and a dotted domain.
func IsEmail(opts ...rto.RuleOption) rto.Rule {
	return newRule("is_email", func(v any, _ rto.View) bool {
		s, ok := v.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return false
		}
		addr, err := mail.ParseAddress(s)
		if err != nil || addr.Address != s || addr.Name != "" {
			return false
		}
		local, domain, found := strings.Cut(addr.Address, "@")
		if !found || local == "" {
			return false
		}
		return strings.Contains(domain, ".") &&
			!strings.HasPrefix(domain, ".") &&
			!strings.HasSuffix(domain, ".") &&
			!strings.Contains(domain, "..")
	}, "'%s' must be an email.", opts)
}
