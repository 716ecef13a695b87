package schema_test

import (
	"context"
	"strings"
	"testing"

	veffect "github.com/chrismichaelps/veffect-sub000"
	s "github.com/chrismichaelps/veffect-sub000/schema"
)

func shapeMembers() (*s.ObjectSchema, *s.ObjectSchema) {
	circle := s.Object().
		Field("kind", s.Of[string](s.Literal("circle"))).
		Field("radius", s.Of[float64](s.Number().Positive())).
		MustBuild()
	square := s.Object().
		Field("kind", s.Of[string](s.Literal("square"))).
		Field("side", s.Of[float64](s.Number().Positive())).
		MustBuild()
	return circle, square
}

func TestDiscriminatedUnion_RoutesByTag(t *testing.T) {
	ctx := context.Background()
	circle, square := shapeMembers()
	shape := s.MustDiscriminatedUnion("kind", circle, square)

	v, err := veffect.Parse(ctx, shape, map[string]any{"kind": "circle", "radius": 2})
	if err != nil || v["radius"] != float64(2) {
		t.Fatalf("expected circle, got %v err=%v", v, err)
	}

	// the routed member validates fully; other members are never consulted
	_, err = veffect.Parse(ctx, shape, map[string]any{"kind": "square", "side": -1})
	ve, _ := veffect.AsValidationError(err)
	if ve == nil {
		t.Fatalf("expected member failure")
	}
	leaves := ve.Flatten()
	if len(leaves) != 1 || leaves[0].Path.Pointer() != "/side" {
		t.Fatalf("unexpected leaves: %+v", leaves)
	}
}

func TestDiscriminatedUnion_MissingTag(t *testing.T) {
	circle, square := shapeMembers()
	shape := s.MustDiscriminatedUnion("kind", circle, square)
	_, err := veffect.Parse(context.Background(), shape, map[string]any{"radius": 2})
	ve, _ := veffect.AsValidationError(err)
	if ve == nil || ve.Path.Pointer() != "/kind" {
		t.Fatalf("missing tag must be reported at the tag path, got %v", err)
	}
}

func TestDiscriminatedUnion_UnmatchedTag(t *testing.T) {
	circle, square := shapeMembers()
	shape := s.MustDiscriminatedUnion("kind", circle, square)
	_, err := veffect.Parse(context.Background(), shape, map[string]any{"kind": "triangle"})
	ve, _ := veffect.AsValidationError(err)
	if ve == nil {
		t.Fatalf("expected failure for unmatched tag")
	}
	want := "No schema matched for discriminated union with 'kind' value: triangle"
	if ve.Message != want {
		t.Fatalf("unexpected message: %q", ve.Message)
	}
}

func TestDiscriminatedUnion_ConstructionErrors(t *testing.T) {
	plain := s.Object().Field("kind", s.Of[string](s.String())).MustBuild()
	if _, err := s.DiscriminatedUnion("kind", plain); err == nil {
		t.Fatalf("a non-literal tag field must be a construction error")
	}
	circle, _ := shapeMembers()
	if _, err := s.DiscriminatedUnion("kind", circle, circle); err == nil {
		t.Fatalf("duplicate tag values must be a construction error")
	}
	if _, err := s.DiscriminatedUnion("missing", circle); err == nil {
		t.Fatalf("an absent tag field must be a construction error")
	}
}

func TestDiscriminatedUnion_NumericTagFromJSON(t *testing.T) {
	v1 := s.Object().
		Field("version", s.Of[float64](s.Literal(float64(1)))).
		Field("payload", s.Of[string](s.String())).
		MustBuild()
	v2 := s.Object().
		Field("version", s.Of[float64](s.Literal(float64(2)))).
		Field("payload", s.Of[string](s.String())).
		Field("trace", s.Of[string](s.String())).
		MustBuild()
	msg := s.MustDiscriminatedUnion("version", v1, v2)

	// json.Number tags arrive when the input came through ParseJSON
	out, err := veffect.ParseJSON(context.Background(), msg, []byte(`{"version":1,"payload":"x"}`))
	if err != nil {
		t.Fatalf("numeric tag must route: %v", err)
	}
	if out["payload"] != "x" {
		t.Fatalf("unexpected output: %v", out)
	}
	if !strings.Contains(veffect.ReceivedLabel(out["version"]), "number") {
		t.Fatalf("tag should remain numeric, got %T", out["version"])
	}
}
