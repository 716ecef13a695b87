package veffect_test

import (
	"context"
	"strings"
	"testing"

	veffect "github.com/chrismichaelps/veffect-sub000"
	s "github.com/chrismichaelps/veffect-sub000/schema"
)

func TestParseJSON_ObjectRoundTrip(t *testing.T) {
	ctx := context.Background()
	user := s.Object().
		Field("name", s.Of[string](s.String().Min(1))).
		Field("age", s.Of[float64](s.Number().Int().Min(0))).
		MustBuild()

	v, err := veffect.ParseJSON(ctx, user, []byte(`{"name":"alice","age":30}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v["name"] != "alice" || v["age"] != float64(30) {
		t.Fatalf("unexpected output: %v", v)
	}
}

func TestParseJSON_MalformedDocument(t *testing.T) {
	_, err := veffect.ParseJSON(context.Background(), s.String(), []byte(`{"truncated`))
	ve, ok := veffect.AsValidationError(err)
	if !ok || ve.Kind != veffect.KindCustom {
		t.Fatalf("expected a custom parse failure, got %v", err)
	}
}

func TestParseJSONReader_ValidationFailureCarriesPath(t *testing.T) {
	user := s.Object().
		Field("name", s.Of[string](s.String().Min(10))).
		MustBuild()
	_, err := veffect.ParseJSONReader(context.Background(), user, strings.NewReader(`{"name":"x"}`))
	ve, ok := veffect.AsValidationError(err)
	if !ok {
		t.Fatalf("expected a validation error, got %v", err)
	}
	leaves := ve.Flatten()
	if len(leaves) != 1 || leaves[0].Path.Pointer() != "/name" {
		t.Fatalf("unexpected leaves: %+v", leaves)
	}
}

func TestParseYAML_NormalizesMappings(t *testing.T) {
	doc := []byte("name: bob\ntags:\n  - a\n  - b\n")
	schema := s.Object().
		Field("name", s.Of[string](s.String())).
		Field("tags", s.Of[[]string](s.Array[string](s.String()))).
		MustBuild()
	v, err := veffect.ParseYAML(context.Background(), schema, doc)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	tags, ok := v["tags"].([]string)
	if !ok || len(tags) != 2 || tags[0] != "a" {
		t.Fatalf("unexpected tags: %#v", v["tags"])
	}
}

func TestParseJSON_NumbersKeepPrecision(t *testing.T) {
	// Not exactly representable as float64; json.Number keeps the digits.
	schema := s.BigInt()
	v, err := veffect.ParseJSON(context.Background(), schema, []byte(`1152921504606846977`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v.String() != "1152921504606846977" {
		t.Fatalf("precision lost: %s", v.String())
	}
}
