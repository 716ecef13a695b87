package veffect

import (
	"context"
	"testing"
)

func intAttempt(ctx context.Context, in any, opt Options) Outcome[int] {
	n, ok := in.(int)
	if !ok {
		return Fail[int](TypeError(opt.Path, "number", ReceivedLabel(in)))
	}
	return Succeed(n)
}

func TestValidator_SurfacesAgree(t *testing.T) {
	ctx := context.Background()
	v := NewValidator(intAttempt)

	if out := v.Validate(ctx, 7, Options{}); !out.OK() || out.Value != 7 {
		t.Fatalf("Validate success expected, got %+v", out)
	}
	if got, err := v.Parse(ctx, 7); err != nil || got != 7 {
		t.Fatalf("Parse success expected, got %v err=%v", got, err)
	}
	if res := v.SafeParse(ctx, 7); !res.Success || res.Data != 7 {
		t.Fatalf("SafeParse success expected, got %+v", res)
	}
	if got, err := v.ParseAsync(ctx, 7); err != nil || got != 7 {
		t.Fatalf("ParseAsync success expected, got %v err=%v", got, err)
	}

	if out := v.Validate(ctx, "x", Options{}); out.OK() {
		t.Fatalf("Validate failure expected")
	}
	if _, err := v.Parse(ctx, "x"); err == nil {
		t.Fatalf("Parse failure expected")
	}
	if res := v.SafeParse(ctx, "x"); res.Success || res.Error == nil {
		t.Fatalf("SafeParse failure expected, got %+v", res)
	}
}

func TestValidator_ParseReturnsValidationError(t *testing.T) {
	_, err := NewValidator(intAttempt).Parse(context.Background(), "x")
	ve, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("expected a validation error, got %T", err)
	}
	if ve.Kind != KindType || ve.Expected != "number" || ve.Received != "string" {
		t.Fatalf("unexpected error detail: %+v", ve)
	}
}

func TestValidator_SafeParseRecoversPanic(t *testing.T) {
	v := NewValidator(func(ctx context.Context, in any, opt Options) Outcome[int] {
		panic("boom")
	})
	res := v.SafeParse(context.Background(), 1)
	if res.Success || res.Error == nil || res.Error.Kind != KindCustom {
		t.Fatalf("expected a custom failure from recovered panic, got %+v", res)
	}
}

func TestValidator_AsyncModeFlag(t *testing.T) {
	var sawAsync bool
	v := NewValidator(func(ctx context.Context, in any, opt Options) Outcome[int] {
		sawAsync = IsAsyncMode(ctx)
		return Succeed(0)
	})
	ctx := context.Background()
	if _, err := v.Parse(ctx, nil); err != nil || sawAsync {
		t.Fatalf("Parse must not enable async mode")
	}
	if _, err := v.ParseAsync(ctx, nil); err != nil || !sawAsync {
		t.Fatalf("ParseAsync must enable async mode")
	}
}
