package schema

import (
	"context"
	"time"

	veffect "github.com/chrismichaelps/veffect-sub000"
	"github.com/chrismichaelps/veffect-sub000/i18n"
)

// DateSchema validates instants. It accepts time.Time directly and coerces
// RFC 3339 strings, mirroring the wire form dates take in JSON documents.
type DateSchema struct {
	checks []dateCheck
}

type dateCheck struct {
	fn  func(time.Time) bool
	msg string
}

// Date returns a schema accepting any instant.
func Date() *DateSchema { return &DateSchema{} }

func (s *DateSchema) with(c dateCheck) *DateSchema {
	checks := make([]dateCheck, len(s.checks), len(s.checks)+1)
	copy(checks, s.checks)
	return &DateSchema{checks: append(checks, c)}
}

// Min requires the instant not to be before t.
func (s *DateSchema) Min(t time.Time) *DateSchema {
	return s.with(dateCheck{
		fn:  func(v time.Time) bool { return !v.Before(t) },
		msg: i18n.T("date_too_early", map[string]string{"min": t.Format(time.RFC3339)}),
	})
}

// Max requires the instant not to be after t.
func (s *DateSchema) Max(t time.Time) *DateSchema {
	return s.with(dateCheck{
		fn:  func(v time.Time) bool { return !v.After(t) },
		msg: i18n.T("date_too_late", map[string]string{"max": t.Format(time.RFC3339)}),
	})
}

func (s *DateSchema) Validator() veffect.Validator[time.Time] {
	checks := s.checks
	return veffect.NewValidator(func(ctx context.Context, in any, opt veffect.Options) veffect.Outcome[time.Time] {
		var v time.Time
		switch t := in.(type) {
		case time.Time:
			v = t
		case string:
			parsed, err := time.Parse(time.RFC3339Nano, t)
			if err != nil {
				return veffect.Fail[time.Time](veffect.TypeError(opt.Path, "date", "string"))
			}
			v = parsed
		default:
			return veffect.Fail[time.Time](veffect.TypeError(opt.Path, "date", veffect.ReceivedLabel(in)))
		}
		for _, c := range checks {
			if !c.fn(v) {
				return veffect.Fail[time.Time](veffect.NewError(veffect.KindDate, opt.Path, c.msg))
			}
		}
		return veffect.Succeed(v)
	})
}
