package schema

import (
	"context"
	"encoding/json"
	"math/big"

	veffect "github.com/chrismichaelps/veffect-sub000"
	"github.com/chrismichaelps/veffect-sub000/i18n"
)

// BigIntSchema validates arbitrary-precision integers. It accepts *big.Int,
// Go integers, integral json.Number, and decimal strings.
type BigIntSchema struct {
	checks []bigintCheck
}

type bigintCheck struct {
	fn  func(*big.Int) bool
	msg string
}

// BigInt returns a schema accepting any integer.
func BigInt() *BigIntSchema { return &BigIntSchema{} }

func (s *BigIntSchema) with(c bigintCheck) *BigIntSchema {
	checks := make([]bigintCheck, len(s.checks), len(s.checks)+1)
	copy(checks, s.checks)
	return &BigIntSchema{checks: append(checks, c)}
}

// Min requires v >= n.
func (s *BigIntSchema) Min(n *big.Int) *BigIntSchema {
	return s.with(bigintCheck{
		fn:  func(v *big.Int) bool { return v.Cmp(n) >= 0 },
		msg: i18n.T("too_small", map[string]string{"min": n.String()}),
	})
}

// Max requires v <= n.
func (s *BigIntSchema) Max(n *big.Int) *BigIntSchema {
	return s.with(bigintCheck{
		fn:  func(v *big.Int) bool { return v.Cmp(n) <= 0 },
		msg: i18n.T("too_big", map[string]string{"max": n.String()}),
	})
}

// Positive requires v > 0.
func (s *BigIntSchema) Positive() *BigIntSchema {
	return s.with(bigintCheck{
		fn:  func(v *big.Int) bool { return v.Sign() > 0 },
		msg: "must be positive",
	})
}

// Negative requires v < 0.
func (s *BigIntSchema) Negative() *BigIntSchema {
	return s.with(bigintCheck{
		fn:  func(v *big.Int) bool { return v.Sign() < 0 },
		msg: "must be negative",
	})
}

func bigintValue(in any) (*big.Int, bool) {
	switch t := in.(type) {
	case *big.Int:
		return t, true
	case int:
		return big.NewInt(int64(t)), true
	case int64:
		return big.NewInt(t), true
	case uint64:
		return new(big.Int).SetUint64(t), true
	case json.Number:
		if z, ok := new(big.Int).SetString(t.String(), 10); ok {
			return z, true
		}
	case string:
		if z, ok := new(big.Int).SetString(t, 10); ok {
			return z, true
		}
	}
	return nil, false
}

func (s *BigIntSchema) Validator() veffect.Validator[*big.Int] {
	checks := s.checks
	return veffect.NewValidator(func(ctx context.Context, in any, opt veffect.Options) veffect.Outcome[*big.Int] {
		v, ok := bigintValue(in)
		if !ok {
			return veffect.Fail[*big.Int](veffect.TypeError(opt.Path, "bigint", veffect.ReceivedLabel(in)))
		}
		for _, c := range checks {
			if !c.fn(v) {
				return veffect.Fail[*big.Int](veffect.NewError(veffect.KindBigInt, opt.Path, c.msg))
			}
		}
		return veffect.Succeed(v)
	})
}
