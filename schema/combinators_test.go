package schema_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	veffect "github.com/chrismichaelps/veffect-sub000"
	s "github.com/chrismichaelps/veffect-sub000/schema"
)

func TestRefine_RunsAfterBaseChecks(t *testing.T) {
	ctx := context.Background()
	even := s.Refine[float64](s.Number().Int(), func(v float64) bool { return int64(v)%2 == 0 }, "must be even")

	if _, err := veffect.Parse(ctx, even, 3); err == nil {
		t.Fatalf("odd must fail the refinement")
	}
	// base type failure wins; the predicate must not run on garbage
	_, err := veffect.Parse(ctx, even, "x")
	ve, _ := veffect.AsValidationError(err)
	if ve == nil || ve.Kind != veffect.KindType {
		t.Fatalf("expected invalid_type before refinement, got %v", err)
	}
	if v, err := veffect.Parse(ctx, even, 4); err != nil || v != 4 {
		t.Fatalf("expected ok, got %v err=%v", v, err)
	}
}

func TestRefineLazy_MessageFromValue(t *testing.T) {
	short := s.RefineLazy[string](s.String(),
		func(v string) bool { return len(v) <= 3 },
		func(v string) string { return "got " + v })
	_, err := veffect.Parse(context.Background(), short, "abcdef")
	ve, _ := veffect.AsValidationError(err)
	if ve == nil || ve.Message != "got abcdef" {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestRefineAsync_SurfaceGating(t *testing.T) {
	ctx := context.Background()
	var calls int
	checked := s.RefineAsync[string](s.String(), func(ctx context.Context, v string) (bool, error) {
		calls++
		return v != "taken", nil
	}, "name already taken")

	// synchronous surface fails at the refinement without running it
	_, err := veffect.Parse(ctx, checked, "fresh")
	ve, _ := veffect.AsValidationError(err)
	if ve == nil || ve.Kind != veffect.KindRefinement || calls != 0 {
		t.Fatalf("sync surface must fail without invoking the predicate, err=%v calls=%d", err, calls)
	}

	if v, err := veffect.ParseAsync(ctx, checked, "fresh"); err != nil || v != "fresh" {
		t.Fatalf("async surface expected ok, got %v err=%v", v, err)
	}
	if _, err := veffect.ParseAsync(ctx, checked, "taken"); err == nil {
		t.Fatalf("failing predicate must fail on the async surface")
	}
}

func TestRefineAsync_PredicateError(t *testing.T) {
	checked := s.RefineAsync[string](s.String(), func(ctx context.Context, v string) (bool, error) {
		return false, errors.New("lookup unavailable")
	}, "")
	_, err := veffect.ParseAsync(context.Background(), checked, "x")
	ve, _ := veffect.AsValidationError(err)
	if ve == nil || ve.Kind != veffect.KindCustom || !strings.Contains(ve.Message, "lookup unavailable") {
		t.Fatalf("predicate error must surface as custom, got %v", err)
	}
}

func TestTransform_MapsAfterValidation(t *testing.T) {
	ctx := context.Background()
	length := s.Transform[string, int](s.String().Min(1), func(v string) (int, error) {
		return len(v), nil
	})
	if v, err := veffect.Parse(ctx, length, "abc"); err != nil || v != 3 {
		t.Fatalf("expected 3, got %v err=%v", v, err)
	}
	// validation failure stops before the mapper
	if _, err := veffect.Parse(ctx, length, ""); err == nil {
		t.Fatalf("empty string must fail before the mapper runs")
	}
}

func TestTransform_MapperError(t *testing.T) {
	parsed := s.Transform[string, int](s.String(), func(v string) (int, error) {
		return 0, errors.New("cannot interpret")
	})
	_, err := veffect.Parse(context.Background(), parsed, "x")
	ve, _ := veffect.AsValidationError(err)
	if ve == nil || ve.Kind != veffect.KindCustom {
		t.Fatalf("mapper error must be a custom failure, got %v", err)
	}
}

func TestDefault_SubstitutesOnlyForAbsence(t *testing.T) {
	ctx := context.Background()
	port := s.Default[float64](s.Number().Min(1024), 8080)

	if v, err := veffect.Parse(ctx, port, veffect.Absent); err != nil || v != 8080 {
		t.Fatalf("absent must take the default, got %v err=%v", v, err)
	}
	// explicit null is not absence
	if _, err := veffect.Parse(ctx, port, nil); err == nil {
		t.Fatalf("null must not take the default")
	}
	// supplied values still run the base checks
	if _, err := veffect.Parse(ctx, port, 80); err == nil {
		t.Fatalf("80 must fail Min(1024)")
	}
}

func TestDefault_ValueBypassesBaseChecks(t *testing.T) {
	// The substituted default is not revalidated against the base schema.
	port := s.Default[float64](s.Number().Min(1024), 80)
	v, err := veffect.Parse(context.Background(), port, veffect.Absent)
	if err != nil || v != 80 {
		t.Fatalf("default must substitute without base checks, got %v err=%v", v, err)
	}
}

func TestDefaultFunc_FreshValuePerCall(t *testing.T) {
	ctx := context.Background()
	n := 0
	counter := s.DefaultFunc[float64](s.Number(), func() float64 { n++; return float64(n) })
	if v, _ := veffect.Parse(ctx, counter, veffect.Absent); v != 1 {
		t.Fatalf("first call expected 1, got %v", v)
	}
	if v, _ := veffect.Parse(ctx, counter, veffect.Absent); v != 2 {
		t.Fatalf("second call expected 2, got %v", v)
	}
}

func TestOptionalNullableNullish_OptStates(t *testing.T) {
	ctx := context.Background()

	opt := s.Optional[string](s.String())
	if v, err := veffect.Parse(ctx, opt, veffect.Absent); err != nil || v.Present {
		t.Fatalf("optional absent expected None, got %+v err=%v", v, err)
	}
	if _, err := veffect.Parse(ctx, opt, nil); err == nil {
		t.Fatalf("optional must still reject null")
	}

	nullable := s.Nullable[string](s.String())
	if v, err := veffect.Parse(ctx, nullable, nil); err != nil || !v.Present || !v.Null {
		t.Fatalf("nullable null expected Null, got %+v err=%v", v, err)
	}
	if _, err := veffect.Parse(ctx, nullable, veffect.Absent); err == nil {
		t.Fatalf("nullable must still reject absence")
	}

	nullish := s.Nullish[string](s.String())
	if v, err := veffect.Parse(ctx, nullish, veffect.Absent); err != nil || v.Present {
		t.Fatalf("nullish absent expected None, err=%v", err)
	}
	if v, err := veffect.Parse(ctx, nullish, nil); err != nil || !v.Null {
		t.Fatalf("nullish null expected Null, err=%v", err)
	}
	if v, err := veffect.Parse(ctx, nullish, "x"); err != nil || v.Value != "x" || !v.Present || v.Null {
		t.Fatalf("nullish value expected Some, got %+v err=%v", v, err)
	}
}

func TestAdapterWidening_Idempotent(t *testing.T) {
	ctx := context.Background()
	field := s.Of[string](s.String()).Optional().Optional().Nullable().Nullable()
	if res := field.Validate(ctx, veffect.Absent, veffect.Options{}); res.Err != nil || !veffect.IsAbsent(res.Value) {
		t.Fatalf("absent must pass through, got %+v", res)
	}
	if res := field.Validate(ctx, nil, veffect.Options{}); res.Err != nil || res.Value != nil {
		t.Fatalf("null must validate to nil, got %+v", res)
	}
	if res := field.Validate(ctx, "x", veffect.Options{}); res.Err != nil || res.Value != "x" {
		t.Fatalf("value must pass the base schema, got %+v", res)
	}
}
