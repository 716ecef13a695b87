package i18n

import "strings"

// Translator retrieves localized messages for error codes.
// data provides optional metadata to interpolate into the message (for
// example, "min" or "expected"); placeholders use the {name} form.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var raw string
	if t.lang == "es" {
		raw = esMessages[code]
	}
	if raw == "" {
		raw = enMessages[code]
	}
	if raw == "" {
		return code
	}
	return interpolate(raw, data)
}

var enMessages = map[string]string{
	"invalid_type":          "expected {expected}, received {received}",
	"required":              "required property missing",
	"unknown_key":           "unknown key",
	"too_small":             "must be greater than or equal to {min}",
	"too_big":               "must be less than or equal to {max}",
	"not_greater":           "must be greater than {limit}",
	"not_less":              "must be less than {limit}",
	"date_too_early":        "must not be before {min}",
	"date_too_late":         "must not be after {max}",
	"too_short":             "must contain at least {min} element(s)",
	"too_long":              "must contain at most {max} element(s)",
	"wrong_size":            "must contain exactly {size} element(s)",
	"pattern":               "does not match the expected pattern",
	"invalid_enum":          "not a permitted value",
	"invalid_format":        "invalid {format}",
	"not_integer":           "must be an integer",
	"not_finite":            "must be a finite number",
	"not_multiple":          "must be a multiple of {step}",
	"refinement_failed":     "refinement failed",
	"async_refinement":      "asynchronous refinement requires the asynchronous surface",
	"transform_failed":      "transform failed",
	"object_invalid":        "one or more properties failed validation",
	"array_invalid":         "one or more elements failed validation",
	"tuple_invalid":         "one or more positions failed validation",
	"tuple_arity":           "expected tuple of length {expected}, received {received}",
	"record_invalid":        "one or more entries failed validation",
	"map_invalid":           "one or more entries failed validation",
	"set_invalid":           "one or more elements failed validation",
	"duplicate_element":     "duplicate element in set",
	"union_no_match":        "no union member matched the input",
	"union_null":            "no union member accepts null",
	"union_missing":         "no union member accepts a missing value",
	"union_empty_object":    "no union member accepts an empty object",
	"discriminator_missing": "missing discriminator field '{field}'",
	"intersection_failed":   "one or more intersection members failed validation",
	"parse_error":           "input could not be parsed",
	"internal_error":        "unexpected error during validation",
}

var esMessages = map[string]string{
	"invalid_type":      "se esperaba {expected}, se recibió {received}",
	"required":          "falta una propiedad requerida",
	"unknown_key":       "clave desconocida",
	"too_small":         "debe ser mayor o igual que {min}",
	"too_big":           "debe ser menor o igual que {max}",
	"not_greater":       "debe ser mayor que {limit}",
	"not_less":          "debe ser menor que {limit}",
	"date_too_early":    "no debe ser anterior a {min}",
	"date_too_late":     "no debe ser posterior a {max}",
	"too_short":         "debe contener al menos {min} elemento(s)",
	"too_long":          "debe contener como máximo {max} elemento(s)",
	"wrong_size":        "debe contener exactamente {size} elemento(s)",
	"pattern":           "no coincide con el patrón esperado",
	"invalid_enum":      "no es un valor permitido",
	"invalid_format":    "{format} no válido",
	"refinement_failed": "el refinamiento falló",
	"transform_failed":  "la transformación falló",
	"union_no_match":    "ningún miembro de la unión coincidió",
	"parse_error":       "no se pudo analizar la entrada",
}

func interpolate(msg string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"es").
func SetLanguage(lang string) {
	if lang != "es" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
