package schema

import (
	"context"
	"regexp"
	"strconv"
	"unicode/utf8"

	veffect "github.com/chrismichaelps/veffect-sub000"
	"github.com/chrismichaelps/veffect-sub000/formats"
	"github.com/chrismichaelps/veffect-sub000/i18n"
)

// StringSchema validates string inputs through a linear predicate chain.
// Chaining methods are copy-on-write: every call returns a new schema and the
// receiver is never mutated.
type StringSchema struct {
	checks []stringCheck
}

type stringCheck struct {
	fn  func(string) bool
	msg string
}

// String returns a schema accepting any string.
func String() *StringSchema { return &StringSchema{} }

func (s *StringSchema) with(c stringCheck) *StringSchema {
	checks := make([]stringCheck, len(s.checks), len(s.checks)+1)
	copy(checks, s.checks)
	return &StringSchema{checks: append(checks, c)}
}

// Min requires at least n characters (runes).
func (s *StringSchema) Min(n int) *StringSchema {
	return s.with(stringCheck{
		fn:  func(v string) bool { return utf8.RuneCountInString(v) >= n },
		msg: i18n.T("too_short", map[string]string{"min": strconv.Itoa(n)}),
	})
}

// Max requires at most n characters (runes).
func (s *StringSchema) Max(n int) *StringSchema {
	return s.with(stringCheck{
		fn:  func(v string) bool { return utf8.RuneCountInString(v) <= n },
		msg: i18n.T("too_long", map[string]string{"max": strconv.Itoa(n)}),
	})
}

// Length requires exactly n characters (runes).
func (s *StringSchema) Length(n int) *StringSchema {
	return s.with(stringCheck{
		fn:  func(v string) bool { return utf8.RuneCountInString(v) == n },
		msg: i18n.T("wrong_size", map[string]string{"size": strconv.Itoa(n)}),
	})
}

// NonEmpty rejects the empty string.
func (s *StringSchema) NonEmpty() *StringSchema { return s.Min(1) }

// Pattern requires the value to match re.
func (s *StringSchema) Pattern(re *regexp.Regexp) *StringSchema {
	return s.with(stringCheck{fn: re.MatchString, msg: i18n.T("pattern", nil)})
}

func (s *StringSchema) format(name string, fn func(string) bool) *StringSchema {
	return s.with(stringCheck{fn: fn, msg: i18n.T("invalid_format", map[string]string{"format": name})})
}

// Email requires an email address.
func (s *StringSchema) Email() *StringSchema { return s.format("email", formats.Email) }

// URL requires an absolute URL.
func (s *StringSchema) URL() *StringSchema { return s.format("url", formats.URL) }

// UUID requires a canonical UUID.
func (s *StringSchema) UUID() *StringSchema { return s.format("uuid", formats.UUID) }

// DateTime requires an RFC 3339 date-time.
func (s *StringSchema) DateTime() *StringSchema { return s.format("date-time", formats.DateTime) }

// Duration requires an ISO 8601 duration.
func (s *StringSchema) Duration() *StringSchema { return s.format("duration", formats.Duration) }

// IP requires a v4 or v6 address.
func (s *StringSchema) IP() *StringSchema { return s.format("ip", formats.IP) }

// CIDR requires a CIDR block.
func (s *StringSchema) CIDR() *StringSchema { return s.format("cidr", formats.CIDR) }

// Base64 requires standard base64 content.
func (s *StringSchema) Base64() *StringSchema { return s.format("base64", formats.Base64) }

// Emoji requires emoji-only content.
func (s *StringSchema) Emoji() *StringSchema { return s.format("emoji", formats.Emoji) }

func (s *StringSchema) Validator() veffect.Validator[string] {
	checks := s.checks
	return veffect.NewValidator(func(ctx context.Context, in any, opt veffect.Options) veffect.Outcome[string] {
		v, ok := in.(string)
		if !ok {
			return veffect.Fail[string](veffect.TypeError(opt.Path, "string", veffect.ReceivedLabel(in)))
		}
		for _, c := range checks {
			if !c.fn(v) {
				return veffect.Fail[string](veffect.NewError(veffect.KindString, opt.Path, c.msg))
			}
		}
		return veffect.Succeed(v)
	})
}
