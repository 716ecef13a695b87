package i18n_test

import (
	"testing"

	"github.com/chrismichaelps/veffect-sub000/i18n"
)

func TestTranslator_EnglishDefault(t *testing.T) {
	got := i18n.T("invalid_type", map[string]string{"expected": "string", "received": "number"})
	if got != "expected string, received number" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestTranslator_SpanishWithEnglishFallback(t *testing.T) {
	i18n.SetLanguage("es")
	defer i18n.SetLanguage("en")

	if got := i18n.T("required", nil); got != "falta una propiedad requerida" {
		t.Fatalf("unexpected es message: %q", got)
	}
	// not_integer has no es entry and must fall back to en
	if got := i18n.T("not_integer", nil); got != "must be an integer" {
		t.Fatalf("expected en fallback, got %q", got)
	}
}

func TestTranslator_UnknownCodeReturnsCode(t *testing.T) {
	if got := i18n.T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("unexpected: %q", got)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, data map[string]string) string { return "CODE:" + code }

func TestTranslator_CustomAndReset(t *testing.T) {
	i18n.SetTranslator(upperTranslator{})
	if got := i18n.T("required", nil); got != "CODE:required" {
		t.Fatalf("custom translator not used: %q", got)
	}
	i18n.SetTranslator(nil)
	if got := i18n.T("required", nil); got != "required property missing" {
		t.Fatalf("reset did not restore the dictionary: %q", got)
	}
}
